package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"moving-quote-agent/internal/domain/entity"
	"moving-quote-agent/internal/infrastructure/logger"
	"moving-quote-agent/internal/infrastructure/narrator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(browser *fakeBrowser) *UseCase {
	return New(
		browser,
		NewMatcher(nil, logger.NewNop()),
		narrator.Silent{},
		logger.NewNop(),
		WithConfirmWait(10*time.Millisecond),
	)
}

func TestSchedule_ConfirmedWhenPageThanksTheUser(t *testing.T) {
	browser := newFakeBrowser(
		`input[type="email"]`,
		`input[name*="name" i]:not([name*="company" i])`,
		`button[type="submit"]`,
	)
	browser.html = `<html><body><div class="success">Thank you! We have received your request.</div></body></html>`

	outcome, err := newTestUseCase(browser).Schedule(context.Background(), "QuickMove Pro", testProfile())
	require.NoError(t, err)

	assert.Equal(t, entity.SubmissionConfirmed, outcome.Status)
	assert.True(t, outcome.Submitted)
	assert.NotEmpty(t, outcome.Reason)
	assert.Equal(t, 2, outcome.Fill.FilledCount())
}

func TestSchedule_UncertainWithoutConfirmationIndicator(t *testing.T) {
	browser := newFakeBrowser(`input[type="email"]`, `button[type="submit"]`)
	browser.html = `<html><body><h1>Movers Inc</h1></body></html>`

	outcome, err := newTestUseCase(browser).Schedule(context.Background(), "Movers Inc", testProfile())
	require.NoError(t, err)

	assert.Equal(t, entity.SubmissionUncertain, outcome.Status)
	assert.True(t, outcome.Submitted)
}

func TestSchedule_ZeroFieldsFilledSkipsSubmit(t *testing.T) {
	browser := newFakeBrowser() // page with no recognizable inputs

	outcome, err := newTestUseCase(browser).Schedule(context.Background(), "Movers Inc", testProfile())
	require.NoError(t, err)

	assert.Equal(t, entity.SubmissionFailed, outcome.Status)
	assert.False(t, outcome.Submitted)
	assert.Empty(t, browser.clicked[1:], "only the search result click, never a submit")
	assert.Contains(t, outcome.Reason, "no form fields matched")
}

func TestSchedule_NavigationFailureIsAnOutcomeNotAnError(t *testing.T) {
	browser := newFakeBrowser()
	browser.navErr = errors.New("net::ERR_NAME_NOT_RESOLVED")

	outcome, err := newTestUseCase(browser).Schedule(context.Background(), "Movers Inc", testProfile())
	require.NoError(t, err)

	assert.Equal(t, entity.SubmissionFailed, outcome.Status)
	assert.Contains(t, outcome.Reason, "search navigation failed")
}

func TestSchedule_CanceledContextIsAnError(t *testing.T) {
	browser := newFakeBrowser()
	browser.navErr = context.Canceled

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestUseCase(browser).Schedule(ctx, "Movers Inc", testProfile())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSchedule_MissingContactLinkFallsThroughToCurrentPage(t *testing.T) {
	browser := newFakeBrowser(`input[type="email"]`, `button[type="submit"]`)
	browser.clickByTextErr = errors.New("no element matched")
	browser.html = `<html><body>ok</body></html>`

	outcome, err := newTestUseCase(browser).Schedule(context.Background(), "Movers Inc", testProfile())
	require.NoError(t, err)

	// Filling proceeds on the landing page itself.
	assert.True(t, outcome.Submitted)
}

func TestSchedule_SavesCleanedPageSnapshot(t *testing.T) {
	browser := newFakeBrowser(`input[type="email"]`, `button[type="submit"]`)
	browser.html = `<html><body><script>track()</script>` +
		`<div class="success">Thank you! We have received your request.</div></body></html>`

	dir := t.TempDir()
	uc := New(browser, NewMatcher(nil, logger.NewNop()), narrator.Silent{}, logger.NewNop(),
		WithConfirmWait(10*time.Millisecond),
		WithArtifactsDir(dir),
	)

	_, err := uc.Schedule(context.Background(), "Movers Inc", testProfile())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "screenshot unavailable in the fake, snapshot still written")

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Thank you")
	assert.NotContains(t, string(data), "track()", "scripts are stripped from the snapshot")
}

func TestSchedule_SearchURLEncodesCompanyName(t *testing.T) {
	browser := newFakeBrowser()

	uc := New(browser, NewMatcher(nil, logger.NewNop()), narrator.Silent{}, logger.NewNop(),
		WithSearchBase("https://search.test/?q="))
	_, err := uc.Schedule(context.Background(), "Smith & Sons", testProfile())
	require.NoError(t, err)

	assert.Contains(t, browser.currentURL, "Smith+%26+Sons")
}
