package entity

// ExtractedProfile holds the structured fields pulled out of a moving
// request. Every field is optional; an empty string means the AI found
// nothing for it.
type ExtractedProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	MoveDate    string `json:"move_date"`
}

// IsEmpty reports whether extraction produced nothing at all.
func (p ExtractedProfile) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.Phone == "" &&
		p.Origin == "" && p.Destination == "" && p.MoveDate == ""
}

// ContactMessage renders the profile as a short message for contact forms
// that only expose a free-text field.
func (p ExtractedProfile) ContactMessage() string {
	msg := "Requesting a moving quote"
	if p.Origin != "" && p.Destination != "" {
		msg = "Moving from " + p.Origin + " to " + p.Destination
	}
	if p.MoveDate != "" {
		msg += " around " + p.MoveDate
	}
	return msg
}

// ExtractionResult carries the partial profile together with warnings about
// fields the AI could not find. Missing fields are gaps to display, not
// errors, so the flow never aborts on them.
type ExtractionResult struct {
	Profile  ExtractedProfile `json:"profile"`
	Warnings []string         `json:"warnings,omitempty"`
}
