package usecase

import (
	"context"
	"fmt"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/internal/complaint/repository"
)

// pipelineStage is one step of the complaint pipeline. Stages run
// strictly in order on the same state record; each writes exactly the
// fields it owns.
type pipelineStage struct {
	name string
	run  func(ctx context.Context, st *complaint.PipelineState) error
}

// runPipeline drives the state through classify → route → reply →
// persist. The first three stages degrade internally and never error;
// only persist can fail, in which case the whole run fails and the
// in-memory results are discarded.
func (uc *implUseCase) runPipeline(ctx context.Context, st *complaint.PipelineState) (complaint.SubmitOutput, error) {
	stages := []pipelineStage{
		{name: StageClassify, run: uc.classifyStage},
		{name: StageRoute, run: uc.routeStage},
		{name: StageReply, run: uc.replyStage},
		{name: StagePersist, run: uc.persistStage},
	}

	for _, stage := range stages {
		if err := stage.run(ctx, st); err != nil {
			return complaint.SubmitOutput{}, fmt.Errorf("%s stage: %w", stage.name, err)
		}
		uc.l.Debugf(ctx, "pipeline: %s stage done category=%s action=%s", stage.name, st.Category, st.Action)
	}

	return complaint.SubmitOutput{Complaint: st.Saved}, nil
}

// classifyStage writes st.Category. Never fails: classification faults
// degrade to CategoryUnknown.
func (uc *implUseCase) classifyStage(ctx context.Context, st *complaint.PipelineState) error {
	st.Category = uc.classifyMessage(ctx, st.Message)
	return nil
}

// routeStage writes st.Action from the category routing table.
func (uc *implUseCase) routeStage(ctx context.Context, st *complaint.PipelineState) error {
	st.Action = Route(st.Category)
	return nil
}

// replyStage writes st.Reply. Never fails: generative faults degrade to
// the fixed fallback reply.
func (uc *implUseCase) replyStage(ctx context.Context, st *complaint.PipelineState) error {
	st.Reply = uc.generateReply(ctx, st.CitizenName, st.Message, st.Category, st.Action)
	return nil
}

// persistStage commits the finalized record and writes st.Saved. A
// storage fault fails the whole pipeline run.
func (uc *implUseCase) persistStage(ctx context.Context, st *complaint.PipelineState) error {
	saved, err := uc.repo.CreateComplaint(ctx, repository.CreateComplaintOptions{
		CitizenName: st.CitizenName,
		Message:     st.Message,
		Category:    st.Category,
		Reply:       st.Reply,
		Action:      st.Action,
	})
	if err != nil {
		uc.l.Errorf(ctx, "pipeline: persist failed: %v", err)
		return err
	}

	st.Saved = saved
	return nil
}
