package usecase

import (
	"context"
	"fmt"
	"strings"

	"smartcity-complaints/internal/complaint"
)

// HandleVoice transcribes the audio payload and feeds the transcript
// through the text pipeline. Transcription faults are fatal: a garbled
// transcript would poison every downstream stage.
func (uc *implUseCase) HandleVoice(ctx context.Context, input complaint.VoiceInput) (complaint.SubmitOutput, error) {
	if strings.TrimSpace(input.CitizenName) == "" {
		return complaint.SubmitOutput{}, complaint.ErrEmptyCitizenName
	}
	if len(input.Audio) == 0 {
		return complaint.SubmitOutput{}, complaint.ErrEmptyAudio
	}
	if uc.transcriber == nil {
		return complaint.SubmitOutput{}, complaint.ErrTranscriberUnavailable
	}

	uc.l.Infof(ctx, "HandleVoice: citizen=%s audio_bytes=%d", input.CitizenName, len(input.Audio))

	result, err := uc.transcriber.Transcribe(ctx, input.Audio)
	if err != nil {
		uc.l.Errorf(ctx, "HandleVoice: transcription failed: %v", err)
		return complaint.SubmitOutput{}, fmt.Errorf("%w: %v", complaint.ErrTranscription, err)
	}

	for _, seg := range result.Segments {
		uc.l.Debugf(ctx, "HandleVoice: segment %d [%s - %s] %s", seg.Num, seg.Start, seg.End, seg.Text)
	}

	return uc.HandleText(ctx, complaint.TextInput{
		CitizenName: input.CitizenName,
		Message:     result.Text,
	})
}
