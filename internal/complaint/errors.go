package complaint

import "errors"

// Domain-specific errors for the complaint package.
var (
	ErrEmptyCitizenName = errors.New("citizen name is empty")
	ErrEmptyMessage     = errors.New("complaint message is empty")
	ErrEmptyAudio       = errors.New("audio payload is empty")
	ErrEmptyImage       = errors.New("image payload is empty")

	// ErrTranscription marks a transcription engine fault. Unlike
	// classification and reply, it is fatal to the request.
	ErrTranscription = errors.New("failed to transcribe audio")

	// ErrTranscriberUnavailable is returned when no speech-to-text
	// model was configured at startup.
	ErrTranscriberUnavailable = errors.New("voice transcription is not available")

	ErrComplaintNotFound = errors.New("complaint not found")
)
