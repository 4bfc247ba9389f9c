package complaint

import "context"

// UseCase defines the business logic interface for the complaint domain.
type UseCase interface {
	// HandleText runs the full pipeline (classify, route, reply,
	// persist) for a text complaint.
	HandleText(ctx context.Context, input TextInput) (SubmitOutput, error)

	// HandleVoice transcribes the audio payload and feeds the
	// transcript through the text pipeline. Transcription faults are
	// fatal to the request.
	HandleVoice(ctx context.Context, input VoiceInput) (SubmitOutput, error)

	// HandleImage classifies an incident image. Never persists and
	// never fails on decode/inference faults.
	HandleImage(ctx context.Context, input ImageInput) (ImageOutput, error)

	// List returns a page of persisted complaints.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Detail returns a single persisted complaint by ID.
	Detail(ctx context.Context, id int64) (DetailOutput, error)
}
