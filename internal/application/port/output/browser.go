package output

import (
	"context"
	"time"

	"moving-quote-agent/internal/domain/entity"
)

// BrowserPort abstracts the browser so the scheduling flow and the form
// matcher can be tested without a real Chromium.
type BrowserPort interface {
	Navigate(ctx context.Context, url string) error

	// Click clicks the first element matching selector.
	Click(ctx context.Context, selector string) error

	// ClickByText clicks the first element matching selector whose visible
	// text matches the given regular expression (case-insensitive).
	ClickByText(ctx context.Context, selector, textPattern string) error

	// Fill writes text into the first element matching selector, replacing
	// any existing value.
	Fill(ctx context.Context, selector, text string) error

	// Interactable reports whether the first document-order match for
	// selector exists, is visible, and is enabled.
	Interactable(ctx context.Context, selector string) bool

	// WaitStable blocks until the page settles or the timeout elapses.
	// An elapsed timeout is not an error.
	WaitStable(ctx context.Context, timeout time.Duration) error

	GetPageContent(ctx context.Context) (*entity.PageContent, error)
	Screenshot(ctx context.Context) (*entity.Screenshot, error)

	CurrentURL() string
	Close()
}
