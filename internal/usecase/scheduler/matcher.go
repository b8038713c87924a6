package scheduler

import (
	"context"
	"fmt"
	"sort"

	"moving-quote-agent/internal/application/port/output"
	"moving-quote-agent/internal/domain/entity"
)

// Matcher maps semantic profile fields onto whatever inputs the loaded page
// happens to have, using the ordered candidate list. It never fails hard: a
// field with no interactable match is skipped with a warning.
type Matcher struct {
	byKind map[entity.FieldKind][]entity.FormFieldCandidate
	logger output.LoggerPort
}

func NewMatcher(candidates []entity.FormFieldCandidate, logger output.LoggerPort) *Matcher {
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}

	byKind := make(map[entity.FieldKind][]entity.FormFieldCandidate)
	for _, c := range candidates {
		byKind[c.Kind] = append(byKind[c.Kind], c)
	}
	for kind := range byKind {
		list := byKind[kind]
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rank < list[j].Rank })
		byKind[kind] = list
	}

	return &Matcher{byKind: byKind, logger: logger}
}

// Fill walks the profile fields in a fixed order and fills the first
// interactable candidate for each. Fields with no profile value are not
// attempted and produce no warning; the extraction layer already reported
// those gaps.
func (m *Matcher) Fill(ctx context.Context, browser output.BrowserPort, profile entity.ExtractedProfile) entity.FillReport {
	report := entity.FillReport{Filled: make(map[entity.FieldKind]string)}

	values := fieldValues(profile)
	for _, kind := range fillOrder {
		value := values[kind]
		if value == "" {
			continue
		}

		selector, found := m.fillField(ctx, browser, kind, value)
		if !found {
			warning := fmt.Sprintf("no interactable field for %s, skipped", kind)
			report.Warnings = append(report.Warnings, warning)
			m.logger.Warn("Field skipped", "kind", kind)
			continue
		}

		report.Filled[kind] = selector
		m.logger.Debug("Field filled", "kind", kind, "selector", selector)
	}

	return report
}

func (m *Matcher) fillField(ctx context.Context, browser output.BrowserPort, kind entity.FieldKind, value string) (string, bool) {
	for _, candidate := range m.byKind[kind] {
		if !browser.Interactable(ctx, candidate.Selector) {
			continue
		}
		if err := browser.Fill(ctx, candidate.Selector, value); err != nil {
			m.logger.Warn("Fill failed, trying next candidate",
				"kind", kind, "selector", candidate.Selector, "error", err)
			continue
		}
		return candidate.Selector, true
	}
	return "", false
}

// Submit triggers the form's submit control exactly once. Selector
// candidates are tried first; when none match, any button or link whose
// visible text carries a call-to-action keyword is the fallback.
func (m *Matcher) Submit(ctx context.Context, browser output.BrowserPort) (string, error) {
	for _, selector := range submitCandidates {
		if !browser.Interactable(ctx, selector) {
			continue
		}
		if err := browser.Click(ctx, selector); err != nil {
			return "", fmt.Errorf("submit click failed: %w", err)
		}
		return selector, nil
	}

	if err := browser.ClickByText(ctx, ctaSelector, ctaPattern); err != nil {
		return "", fmt.Errorf("no submit control found: %w", err)
	}
	return "text match: " + ctaPattern, nil
}

func fieldValues(p entity.ExtractedProfile) map[entity.FieldKind]string {
	return map[entity.FieldKind]string{
		entity.FieldName:        p.Name,
		entity.FieldEmail:       p.Email,
		entity.FieldPhone:       p.Phone,
		entity.FieldOrigin:      p.Origin,
		entity.FieldDestination: p.Destination,
		entity.FieldDate:        p.MoveDate,
		entity.FieldMessage:     p.ContactMessage(),
	}
}
