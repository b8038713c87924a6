package extraction

import (
	"context"
	"fmt"

	"moving-quote-agent/internal/application/port/output"
	"moving-quote-agent/internal/domain/entity"
)

type UseCase struct {
	extractor output.ExtractorPort
	logger    output.LoggerPort
}

func New(extractor output.ExtractorPort, logger output.LoggerPort) *UseCase {
	return &UseCase{
		extractor: extractor,
		logger:    logger,
	}
}

// Extract runs AI extraction over free text and annotates missing fields as
// warnings. A partial profile is a normal result; only a completely empty
// one, or a transport failure, is an error.
func (uc *UseCase) Extract(ctx context.Context, text string) (*entity.ExtractionResult, error) {
	profile, err := uc.extractor.ExtractProfile(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("ai extraction failed: %w", err)
	}

	if profile.IsEmpty() {
		return nil, fmt.Errorf("no moving details recognized in the request")
	}

	result := &entity.ExtractionResult{
		Profile:  profile,
		Warnings: missingFieldWarnings(profile),
	}

	uc.logger.Info("Extraction completed",
		"warnings", len(result.Warnings),
		"origin", profile.Origin,
		"destination", profile.Destination)

	return result, nil
}

func missingFieldWarnings(p entity.ExtractedProfile) []string {
	var warnings []string
	checks := []struct {
		value string
		label string
	}{
		{p.Name, "name"},
		{p.Email, "email"},
		{p.Phone, "phone"},
		{p.Origin, "origin"},
		{p.Destination, "destination"},
		{p.MoveDate, "move date"},
	}
	for _, c := range checks {
		if c.value == "" {
			warnings = append(warnings, "missing "+c.label)
		}
	}
	return warnings
}
