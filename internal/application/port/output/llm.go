package output

import (
	"context"

	"moving-quote-agent/internal/domain/entity"
)

// ExtractorPort is the outbound AI surface. Both calls delegate all language
// understanding to the remote model; parsing of the response is
// deterministic.
type ExtractorPort interface {
	// ExtractProfile converts a free-text moving request into structured
	// fields. Fields the model cannot find come back empty, never invented.
	ExtractProfile(ctx context.Context, text string) (entity.ExtractedProfile, error)

	// GenerateAnalysis produces the executive-summary text for the report
	// from the profile and the quotes gathered for it.
	GenerateAnalysis(ctx context.Context, profile entity.ExtractedProfile, quotes []entity.QuoteOption) (string, error)
}
