package scheduler

import "moving-quote-agent/internal/domain/entity"

// DefaultCandidates is the prioritized selector list for contact forms in
// the wild. Per field kind, candidates are tried by ascending rank: exact
// input types first, then attribute-name matches, then placeholder text.
// The `i` flag keeps attribute matching case-insensitive.
func DefaultCandidates() []entity.FormFieldCandidate {
	return []entity.FormFieldCandidate{
		{Kind: entity.FieldName, Selector: `input[name*="name" i]:not([name*="company" i])`, Rank: 0},
		{Kind: entity.FieldName, Selector: `#name`, Rank: 1},
		{Kind: entity.FieldName, Selector: `input[placeholder*="name" i]`, Rank: 2},

		{Kind: entity.FieldEmail, Selector: `input[type="email"]`, Rank: 0},
		{Kind: entity.FieldEmail, Selector: `input[name*="email" i]`, Rank: 1},
		{Kind: entity.FieldEmail, Selector: `#email`, Rank: 2},
		{Kind: entity.FieldEmail, Selector: `input[placeholder*="email" i]`, Rank: 3},

		{Kind: entity.FieldPhone, Selector: `input[type="tel"]`, Rank: 0},
		{Kind: entity.FieldPhone, Selector: `input[name*="phone" i]`, Rank: 1},
		{Kind: entity.FieldPhone, Selector: `#phone`, Rank: 2},

		{Kind: entity.FieldOrigin, Selector: `input[name*="origin" i]`, Rank: 0},
		{Kind: entity.FieldOrigin, Selector: `input[name*="from" i]`, Rank: 1},
		{Kind: entity.FieldOrigin, Selector: `input[id*="pickup" i]`, Rank: 2},
		{Kind: entity.FieldOrigin, Selector: `input[placeholder*="moving from" i]`, Rank: 3},

		{Kind: entity.FieldDestination, Selector: `input[name*="dest" i]`, Rank: 0},
		{Kind: entity.FieldDestination, Selector: `input[id*="dropoff" i]`, Rank: 1},
		{Kind: entity.FieldDestination, Selector: `input[placeholder*="moving to" i]`, Rank: 2},

		{Kind: entity.FieldDate, Selector: `input[type="date"]`, Rank: 0},
		{Kind: entity.FieldDate, Selector: `input[name*="date" i]`, Rank: 1},

		{Kind: entity.FieldMessage, Selector: `textarea`, Rank: 0},
		{Kind: entity.FieldMessage, Selector: `input[name*="message" i]`, Rank: 1},
		{Kind: entity.FieldMessage, Selector: `input[name*="details" i]`, Rank: 2},
	}
}

// fillOrder fixes the sequence fields are attempted in, so runs against the
// same page are reproducible.
var fillOrder = []entity.FieldKind{
	entity.FieldName,
	entity.FieldEmail,
	entity.FieldPhone,
	entity.FieldOrigin,
	entity.FieldDestination,
	entity.FieldDate,
	entity.FieldMessage,
}

// submitCandidates locates the submit control, in priority order.
var submitCandidates = []string{
	`button[type="submit"]`,
	`input[type="submit"]`,
	`form button`,
}

// ctaPattern is the fallback: any clickable whose visible text carries a
// call-to-action keyword.
const (
	ctaSelector = `button, input[type="button"], a`
	ctaPattern  = `submit|send|request|quote`
)

// contactLinkPattern finds the link from a company homepage to its contact
// or quote form.
const (
	contactLinkSelector = `a, button`
	contactLinkPattern  = `contact|get quote|free estimate|request quote`
)
