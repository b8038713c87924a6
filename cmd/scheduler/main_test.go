package main

import (
	"context"
	"errors"
	"testing"

	"moving-quote-agent/internal/di"
	"moving-quote-agent/internal/domain/entity"
	"moving-quote-agent/internal/infrastructure/logger"
	"moving-quote-agent/internal/infrastructure/narrator"
	"moving-quote-agent/internal/usecase/extraction"

	"github.com/stretchr/testify/assert"
)

type stubExtractor struct {
	profile entity.ExtractedProfile
	err     error
}

func (s *stubExtractor) ExtractProfile(ctx context.Context, text string) (entity.ExtractedProfile, error) {
	return s.profile, s.err
}

func (s *stubExtractor) GenerateAnalysis(ctx context.Context, profile entity.ExtractedProfile, quotes []entity.QuoteOption) (string, error) {
	return "", nil
}

type stubScheduler struct {
	outcome *entity.SubmissionOutcome
	err     error
}

func (s *stubScheduler) Schedule(ctx context.Context, company string, profile entity.ExtractedProfile) (*entity.SubmissionOutcome, error) {
	return s.outcome, s.err
}

func stubContainer(ext *stubExtractor, sched *stubScheduler) *di.SchedulerContainer {
	log := logger.NewNop()
	return &di.SchedulerContainer{
		Extraction: extraction.New(ext, log),
		Scheduler:  sched,
		Narrator:   narrator.Silent{},
		Logger:     log,
	}
}

func TestRun_ConfirmedSubmission(t *testing.T) {
	container := stubContainer(
		&stubExtractor{profile: entity.ExtractedProfile{Name: "Jane", Origin: "Chicago", Destination: "Denver"}},
		&stubScheduler{outcome: &entity.SubmissionOutcome{
			Status:    entity.SubmissionConfirmed,
			Submitted: true,
		}},
	)

	code := run(context.Background(), container, "QuickMove Pro", "moving from Chicago to Denver")

	assert.Zero(t, code)
	container.Close()
}

func TestRun_UncertainSubmissionStillSucceeds(t *testing.T) {
	container := stubContainer(
		&stubExtractor{profile: entity.ExtractedProfile{Name: "Jane"}},
		&stubScheduler{outcome: &entity.SubmissionOutcome{
			Status:    entity.SubmissionUncertain,
			Submitted: true,
			Reason:    "no confirmation indicator within wait window",
		}},
	)

	code := run(context.Background(), container, "Movers Inc", "moving soon")

	assert.Zero(t, code)
	container.Close()
}

func TestRun_ExtractionFailureReturnsNonzeroAndCloseStillRuns(t *testing.T) {
	container := stubContainer(
		&stubExtractor{err: errors.New("model unreachable")},
		&stubScheduler{},
	)

	code := run(context.Background(), container, "Movers Inc", "gibberish")

	assert.Equal(t, 1, code)
	// run must return instead of exiting so the caller can release resources.
	assert.NotPanics(t, container.Close)
}

func TestRun_FailedOutcomeReturnsNonzero(t *testing.T) {
	container := stubContainer(
		&stubExtractor{profile: entity.ExtractedProfile{Name: "Jane"}},
		&stubScheduler{outcome: &entity.SubmissionOutcome{
			Status: entity.SubmissionFailed,
			Reason: "no form fields matched any selector candidate",
		}},
	)

	code := run(context.Background(), container, "Movers Inc", "moving soon")

	assert.Equal(t, 1, code)
	assert.NotPanics(t, container.Close)
}

func TestRun_SchedulerErrorReturnsNonzero(t *testing.T) {
	container := stubContainer(
		&stubExtractor{profile: entity.ExtractedProfile{Name: "Jane"}},
		&stubScheduler{err: context.DeadlineExceeded},
	)

	code := run(context.Background(), container, "Movers Inc", "moving soon")

	assert.Equal(t, 1, code)
	assert.NotPanics(t, container.Close)
}
