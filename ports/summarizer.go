package ports

import (
	"context"

	"lifelens/internal/analysis"
)

// Summarizer turns a bounded evidence payload into a short markdown
// narrative. Implementations see only the payload, never the raw dataset.
type Summarizer interface {
	Summarize(ctx context.Context, ev analysis.Evidence) (string, error)
}
