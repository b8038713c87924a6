package quote

import (
	"context"
	"errors"
	"testing"

	"moving-quote-agent/internal/domain/entity"
	"moving-quote-agent/internal/infrastructure/logger"
	"moving-quote-agent/internal/usecase/compare"
	"moving-quote-agent/internal/usecase/extraction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockExtractor struct {
	profile     entity.ExtractedProfile
	extractErr  error
	analysis    string
	analysisErr error

	analysisCalls int
}

func (m *mockExtractor) ExtractProfile(ctx context.Context, text string) (entity.ExtractedProfile, error) {
	return m.profile, m.extractErr
}

func (m *mockExtractor) GenerateAnalysis(ctx context.Context, profile entity.ExtractedProfile, quotes []entity.QuoteOption) (string, error) {
	m.analysisCalls++
	return m.analysis, m.analysisErr
}

func newTestUseCase(ext *mockExtractor) *UseCase {
	log := logger.NewNop()
	return New(extraction.New(ext, log), compare.New(nil), ext, log)
}

func TestRequestQuotes_FullFlow(t *testing.T) {
	ext := &mockExtractor{
		profile: entity.ExtractedProfile{
			Name:        "Jane Doe",
			Email:       "jane@example.com",
			Phone:       "555-0134",
			Origin:      "Chicago, IL",
			Destination: "Denver, CO",
			MoveDate:    "June 15",
		},
		analysis: "QuickMove Pro offers the best value for this route.",
	}

	result, err := newTestUseCase(ext).RequestQuotes(context.Background(), "I am moving from Chicago to Denver")
	require.NoError(t, err)

	assert.NotEmpty(t, result.RequestID)
	assert.Equal(t, "Jane Doe", result.Profile.Name)
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.Comparison.Options, 3)
	assert.Equal(t, result.Comparison.Options[0].Company, result.Comparison.Cheapest)
	assert.Equal(t, ext.analysis, result.Analysis)
	assert.Equal(t, 1, ext.analysisCalls)
}

func TestRequestQuotes_DistinctRequestIDs(t *testing.T) {
	ext := &mockExtractor{profile: entity.ExtractedProfile{Name: "Jane"}}
	uc := newTestUseCase(ext)

	first, err := uc.RequestQuotes(context.Background(), "moving soon")
	require.NoError(t, err)
	second, err := uc.RequestQuotes(context.Background(), "moving soon")
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)
}

func TestRequestQuotes_MissingFieldsBecomeWarnings(t *testing.T) {
	ext := &mockExtractor{
		profile: entity.ExtractedProfile{Name: "Jane", Origin: "Chicago"},
	}

	result, err := newTestUseCase(ext).RequestQuotes(context.Background(), "I'm Jane, leaving Chicago")
	require.NoError(t, err)

	assert.Contains(t, result.Warnings, "missing email")
	assert.Contains(t, result.Warnings, "missing destination")
	assert.Empty(t, result.Profile.Email, "absent fields stay empty")
}

func TestRequestQuotes_ExtractionFailureSurfaces(t *testing.T) {
	ext := &mockExtractor{extractErr: errors.New("model unreachable")}

	_, err := newTestUseCase(ext).RequestQuotes(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract profile")
	assert.Zero(t, ext.analysisCalls, "no analysis without a profile")
}

func TestRequestQuotes_AnalysisFailureDegradesGracefully(t *testing.T) {
	ext := &mockExtractor{
		profile:     entity.ExtractedProfile{Name: "Jane", Origin: "Chicago", Destination: "Denver"},
		analysisErr: errors.New("rate limited"),
	}

	result, err := newTestUseCase(ext).RequestQuotes(context.Background(), "text")
	require.NoError(t, err)

	assert.Empty(t, result.Analysis)
	assert.Contains(t, result.Warnings, "analysis unavailable")
	assert.NotEmpty(t, result.Comparison.Options, "pricing still delivered")
}
