package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"moving-quote-agent/internal/domain/entity"
	"moving-quote-agent/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBrowser simulates a page as a set of interactable selectors.
type fakeBrowser struct {
	interactable   map[string]bool
	fillErrors     map[string]error
	clickErr       error
	clickByTextErr error

	filled     map[string]string
	clicked    []string
	textClicks []string
	html       string
	navErr     error
	currentURL string
}

func newFakeBrowser(selectors ...string) *fakeBrowser {
	f := &fakeBrowser{
		interactable: make(map[string]bool),
		fillErrors:   make(map[string]error),
		filled:       make(map[string]string),
		currentURL:   "https://example.com",
	}
	for _, s := range selectors {
		f.interactable[s] = true
	}
	return f
}

func (f *fakeBrowser) Navigate(ctx context.Context, url string) error {
	if f.navErr != nil {
		return f.navErr
	}
	f.currentURL = url
	return nil
}

func (f *fakeBrowser) Click(ctx context.Context, selector string) error {
	if f.clickErr != nil {
		return f.clickErr
	}
	f.clicked = append(f.clicked, selector)
	return nil
}

func (f *fakeBrowser) ClickByText(ctx context.Context, selector, pattern string) error {
	if f.clickByTextErr != nil {
		return f.clickByTextErr
	}
	f.textClicks = append(f.textClicks, selector+"|"+pattern)
	return nil
}

func (f *fakeBrowser) Fill(ctx context.Context, selector, text string) error {
	if err := f.fillErrors[selector]; err != nil {
		return err
	}
	f.filled[selector] = text
	return nil
}

func (f *fakeBrowser) Interactable(ctx context.Context, selector string) bool {
	return f.interactable[selector]
}

func (f *fakeBrowser) WaitStable(ctx context.Context, timeout time.Duration) error { return nil }

func (f *fakeBrowser) GetPageContent(ctx context.Context) (*entity.PageContent, error) {
	return &entity.PageContent{URL: f.currentURL, HTML: f.html}, nil
}

func (f *fakeBrowser) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	return nil, errors.New("no screenshot in fake")
}

func (f *fakeBrowser) CurrentURL() string { return f.currentURL }
func (f *fakeBrowser) Close()             {}

func testProfile() entity.ExtractedProfile {
	return entity.ExtractedProfile{
		Name:        "Jane Doe",
		Email:       "jane@x.com",
		Phone:       "555-1234",
		Origin:      "Chicago",
		Destination: "Denver",
		MoveDate:    "June",
	}
}

func TestMatcher_Fill_PlaceholderEmailBeatsGenericInput(t *testing.T) {
	// The page has a generic text input and an input whose placeholder
	// mentions email. Only the latter satisfies an email candidate.
	browser := newFakeBrowser(`input[placeholder*="email" i]`)
	m := NewMatcher(nil, logger.NewNop())

	report := m.Fill(context.Background(), browser, entity.ExtractedProfile{Email: "jane@x.com"})

	require.Contains(t, report.Filled, entity.FieldEmail)
	assert.Equal(t, `input[placeholder*="email" i]`, report.Filled[entity.FieldEmail])
	assert.Equal(t, "jane@x.com", browser.filled[`input[placeholder*="email" i]`])
}

func TestMatcher_Fill_LowerRankWinsWhenBothMatch(t *testing.T) {
	browser := newFakeBrowser(`input[type="email"]`, `input[name*="email" i]`)
	m := NewMatcher(nil, logger.NewNop())

	report := m.Fill(context.Background(), browser, entity.ExtractedProfile{Email: "jane@x.com"})

	assert.Equal(t, `input[type="email"]`, report.Filled[entity.FieldEmail])
	_, filledSecond := browser.filled[`input[name*="email" i]`]
	assert.False(t, filledSecond, "only the winning candidate gets filled")
}

func TestMatcher_Fill_MissingFieldSkippedWithWarning(t *testing.T) {
	browser := newFakeBrowser(`input[type="email"]`)
	m := NewMatcher(nil, logger.NewNop())

	report := m.Fill(context.Background(), browser, entity.ExtractedProfile{
		Name:  "Jane Doe",
		Email: "jane@x.com",
	})

	assert.Contains(t, report.Filled, entity.FieldEmail)
	assert.NotContains(t, report.Filled, entity.FieldName)

	found := false
	for _, w := range report.Warnings {
		if w == "no interactable field for name, skipped" {
			found = true
		}
	}
	assert.True(t, found, "skipped field must be recorded as a warning")
}

func TestMatcher_Fill_EmptyProfileValueNotAttempted(t *testing.T) {
	browser := newFakeBrowser(`input[type="email"]`, `input[type="tel"]`)
	m := NewMatcher(nil, logger.NewNop())

	report := m.Fill(context.Background(), browser, entity.ExtractedProfile{Email: "jane@x.com"})

	assert.NotContains(t, report.Filled, entity.FieldPhone)
	for _, w := range report.Warnings {
		assert.NotContains(t, w, "phone", "absent profile values are not warnings here")
	}
}

func TestMatcher_Fill_ErrorFallsToNextCandidate(t *testing.T) {
	browser := newFakeBrowser(`input[type="email"]`, `input[name*="email" i]`)
	browser.fillErrors[`input[type="email"]`] = errors.New("element detached")
	m := NewMatcher(nil, logger.NewNop())

	report := m.Fill(context.Background(), browser, entity.ExtractedProfile{Email: "jane@x.com"})

	assert.Equal(t, `input[name*="email" i]`, report.Filled[entity.FieldEmail])
}

func TestMatcher_Fill_NothingMatches(t *testing.T) {
	browser := newFakeBrowser() // bare page
	m := NewMatcher(nil, logger.NewNop())

	report := m.Fill(context.Background(), browser, testProfile())

	assert.Zero(t, report.FilledCount())
	assert.NotEmpty(t, report.Warnings)
}

func TestMatcher_Submit_PrefersSubmitButton(t *testing.T) {
	browser := newFakeBrowser(`button[type="submit"]`, `form button`)
	m := NewMatcher(nil, logger.NewNop())

	control, err := m.Submit(context.Background(), browser)
	require.NoError(t, err)

	assert.Equal(t, `button[type="submit"]`, control)
	assert.Equal(t, []string{`button[type="submit"]`}, browser.clicked)
	assert.Empty(t, browser.textClicks)
}

func TestMatcher_Submit_FallsBackToCallToActionText(t *testing.T) {
	browser := newFakeBrowser() // no submit-typed control
	m := NewMatcher(nil, logger.NewNop())

	control, err := m.Submit(context.Background(), browser)
	require.NoError(t, err)

	assert.Contains(t, control, ctaPattern)
	require.Len(t, browser.textClicks, 1)
	assert.Contains(t, browser.textClicks[0], "submit|send|request|quote")
}

func TestMatcher_Submit_NoControlAnywhere(t *testing.T) {
	browser := newFakeBrowser()
	browser.clickByTextErr = errors.New("no element matched")
	m := NewMatcher(nil, logger.NewNop())

	_, err := m.Submit(context.Background(), browser)
	assert.Error(t, err)
}

func TestMatcher_CustomCandidatesSortedByRank(t *testing.T) {
	candidates := []entity.FormFieldCandidate{
		{Kind: entity.FieldName, Selector: "#fallback", Rank: 5},
		{Kind: entity.FieldName, Selector: "#primary", Rank: 1},
	}
	browser := newFakeBrowser("#fallback", "#primary")
	m := NewMatcher(candidates, logger.NewNop())

	report := m.Fill(context.Background(), browser, entity.ExtractedProfile{Name: "Jane"})

	assert.Equal(t, "#primary", report.Filled[entity.FieldName])
}
