package usecase

import (
	"context"
	"strings"

	"smartcity-complaints/internal/complaint"
)

// HandleText runs the full pipeline for a direct text complaint.
func (uc *implUseCase) HandleText(ctx context.Context, input complaint.TextInput) (complaint.SubmitOutput, error) {
	if strings.TrimSpace(input.CitizenName) == "" {
		return complaint.SubmitOutput{}, complaint.ErrEmptyCitizenName
	}
	if strings.TrimSpace(input.Message) == "" {
		return complaint.SubmitOutput{}, complaint.ErrEmptyMessage
	}

	uc.l.Infof(ctx, "HandleText: citizen=%s message_length=%d", input.CitizenName, len(input.Message))

	st := complaint.NewPipelineState(input.CitizenName, input.Message)
	return uc.runPipeline(ctx, st)
}
