package ports

import (
	"context"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

// TextGenerator produces free-form text from a prompt. Implementations wrap
// an external generative-text API; the insight service treats it as an
// injected capability so prompt building and fallbacks stay testable.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// InsightCache is an optional store for generated insights. A miss is
// reported via found=false, not an error.
type InsightCache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// InsightService produces a narrative insight for an assessment. The result
// is always a displayable string: configuration gaps and external failures
// are folded into localized fallback text, never surfaced as errors.
type InsightService interface {
	Generate(ctx context.Context, a domain.Assessment) string
}
