package input

import (
	"context"

	"moving-quote-agent/internal/domain/entity"
)

// Scheduler drives the browser demo: find a moving company's contact form,
// fill it from the profile, submit it once, and report the outcome.
type Scheduler interface {
	Schedule(ctx context.Context, company string, profile entity.ExtractedProfile) (*entity.SubmissionOutcome, error)
}
