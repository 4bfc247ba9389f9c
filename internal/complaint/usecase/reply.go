package usecase

import (
	"context"
	"fmt"
	"strings"

	"smartcity-complaints/internal/complaint"
)

// generateReply produces the acknowledgment text for the citizen. It
// always returns a non-empty string: template mode composes it locally,
// and model-mode faults fall back to the fixed acknowledgment.
func (uc *implUseCase) generateReply(ctx context.Context, citizenName, message, category, action string) string {
	if uc.replyMode == complaint.ReplyModeTemplate {
		return fmt.Sprintf(TemplateReply, category, action)
	}

	prompt := fmt.Sprintf(PromptReply, citizenName, category, message)

	raw, err := uc.llm.Generate(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "reply: model call failed, using fallback: %v", err)
		return FallbackReply
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		uc.l.Warnf(ctx, "reply: model returned no content, using fallback")
		return FallbackReply
	}
	return reply
}
