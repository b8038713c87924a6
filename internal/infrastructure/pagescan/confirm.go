package pagescan

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Confirmation phrases and selectors are deliberately explicit: a page counts
// as confirmed only when one of these matches, everything else is reported as
// uncertain.
var (
	confirmationPhrases = []string{
		"thank you",
		"thanks for",
		"we have received",
		"successfully submitted",
		"request received",
		"we'll be in touch",
		"we will be in touch",
		"confirmation",
	}

	confirmationSelectors = `.success, .thank-you, .confirmation, [class*="success" i]`
)

// DetectConfirmation reports whether the page shows a recognizable
// form-submission confirmation, and which indicator matched.
func DetectConfirmation(rawHTML string) (bool, string) {
	text := strings.ToLower(VisibleText(rawHTML))
	for _, phrase := range confirmationPhrases {
		if strings.Contains(text, phrase) {
			return true, "phrase: " + phrase
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return false, ""
	}

	found := ""
	doc.Find(confirmationSelectors).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) != "" {
			class, _ := s.Attr("class")
			found = "element: " + class
			return false
		}
		return true
	})

	return found != "", found
}
