package input

import (
	"context"

	"moving-quote-agent/internal/domain/entity"
)

// QuoteResult is everything the quote flow produces for one request.
type QuoteResult struct {
	RequestID  string                  `json:"request_id"`
	Profile    entity.ExtractedProfile `json:"profile"`
	Warnings   []string                `json:"warnings,omitempty"`
	Comparison entity.QuoteComparison  `json:"comparison"`
	Analysis   string                  `json:"analysis"`
}

// QuoteService runs the full chat flow: extract, compare, analyze.
type QuoteService interface {
	RequestQuotes(ctx context.Context, text string) (*QuoteResult, error)
}
