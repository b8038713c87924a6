package quote

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"moving-quote-agent/internal/application/port/input"
	"moving-quote-agent/internal/application/port/output"
	"moving-quote-agent/internal/usecase/compare"
	"moving-quote-agent/internal/usecase/extraction"
)

var _ input.QuoteService = (*UseCase)(nil)

// UseCase chains the chat flow end to end: extract structured fields from
// the request text, price the move with every catalog company, and ask the
// model for an executive summary of the result.
type UseCase struct {
	extraction *extraction.UseCase
	compare    *compare.UseCase
	extractor  output.ExtractorPort
	logger     output.LoggerPort
}

func New(ext *extraction.UseCase, cmp *compare.UseCase, extractor output.ExtractorPort, logger output.LoggerPort) *UseCase {
	return &UseCase{
		extraction: ext,
		compare:    cmp,
		extractor:  extractor,
		logger:     logger,
	}
}

func (uc *UseCase) RequestQuotes(ctx context.Context, text string) (*input.QuoteResult, error) {
	requestID := uuid.New().String()
	uc.logger.Info("Quote request received", "request_id", requestID, "text_len", len(text))

	extracted, err := uc.extraction.Extract(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract profile: %w", err)
	}

	comparison := uc.compare.Compare(extracted.Profile)

	analysis, err := uc.extractor.GenerateAnalysis(ctx, extracted.Profile, comparison.Options)
	if err != nil {
		// The comparison is still useful without the narrative on top.
		uc.logger.Warn("Analysis generation failed", "request_id", requestID, "error", err)
		extracted.Warnings = append(extracted.Warnings, "analysis unavailable")
		analysis = ""
	}

	uc.logger.Info("Quote request completed",
		"request_id", requestID,
		"cheapest", comparison.Cheapest,
		"options", len(comparison.Options))

	return &input.QuoteResult{
		RequestID:  requestID,
		Profile:    extracted.Profile,
		Warnings:   extracted.Warnings,
		Comparison: comparison,
		Analysis:   analysis,
	}, nil
}
