package usecase

import (
	"context"
	"fmt"
	"strings"

	"smartcity-complaints/internal/complaint"
)

// classifyMessage resolves the complaint category via the model
// endpoint. All failure modes (call failure, empty output, no category
// term in the output) degrade to CategoryUnknown; the pipeline never
// aborts on classification.
func (uc *implUseCase) classifyMessage(ctx context.Context, message string) string {
	key := normalizeMessage(message)
	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "classify: cache hit category=%s", cached)
		return cached
	}

	prompt := fmt.Sprintf(PromptClassify, message)

	raw, err := uc.llm.Generate(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "classify: model call failed, degrading to unknown: %v", err)
		return complaint.CategoryUnknown
	}

	category := matchCategory(raw)
	if category == complaint.CategoryUnknown {
		uc.l.Infof(ctx, "classify: no category term in model output %q", truncate(raw, 120))
		// Unknown is not cached: it may be a transient model hiccup.
		return category
	}

	uc.cache.Add(key, category)
	return category
}

// matchCategory scans the model output for category names in the fixed
// priority order and returns the first (normalized) hit, or
// CategoryUnknown when nothing matches.
func matchCategory(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return complaint.CategoryUnknown
	}

	for _, cat := range complaint.CategoryScanOrder {
		if strings.Contains(text, cat) {
			return complaint.NormalizeCategory(cat)
		}
	}
	return complaint.CategoryUnknown
}

func normalizeMessage(message string) string {
	return strings.ToLower(strings.Join(strings.Fields(message), " "))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
