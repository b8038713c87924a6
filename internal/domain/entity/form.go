package entity

// FieldKind tags a form input with the semantic profile field it should
// receive.
type FieldKind string

const (
	FieldName        FieldKind = "name"
	FieldEmail       FieldKind = "email"
	FieldPhone       FieldKind = "phone"
	FieldOrigin      FieldKind = "origin"
	FieldDestination FieldKind = "destination"
	FieldDate        FieldKind = "date"
	FieldMessage     FieldKind = "message"
)

// FormFieldCandidate pairs a selector pattern with the field kind it is
// expected to match. Candidates for the same kind are evaluated by ascending
// Rank; the first selector whose first document-order match is interactable
// wins.
type FormFieldCandidate struct {
	Kind     FieldKind
	Selector string
	Rank     int
}

// FillReport records what the matcher managed to fill on a page. Skipped
// fields are warnings, not failures.
type FillReport struct {
	Filled   map[FieldKind]string // kind -> selector that took the value
	Warnings []string
}

// FilledCount returns the number of fields that received a value.
func (r FillReport) FilledCount() int {
	return len(r.Filled)
}

// SubmissionStatus classifies the outcome of a single submit attempt.
type SubmissionStatus string

const (
	// SubmissionConfirmed means a confirmation indicator appeared after submit.
	SubmissionConfirmed SubmissionStatus = "confirmed"
	// SubmissionUncertain means the form was submitted but no indicator was
	// seen within the bounded wait.
	SubmissionUncertain SubmissionStatus = "uncertain"
	// SubmissionFailed means no submit was attempted or the attempt errored.
	SubmissionFailed SubmissionStatus = "failed"
)

// SubmissionOutcome is the result the scheduler flow reports to the user.
type SubmissionOutcome struct {
	Status    SubmissionStatus
	Submitted bool
	Reason    string
	Fill      FillReport
}
