package scheduler

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"moving-quote-agent/internal/application/port/input"
	"moving-quote-agent/internal/application/port/output"
	"moving-quote-agent/internal/domain/entity"
	"moving-quote-agent/internal/infrastructure/pagescan"
)

var _ input.Scheduler = (*UseCase)(nil)

const (
	defaultSearchBase  = "https://www.google.com/search?q="
	defaultConfirmWait = 8 * time.Second
)

type UseCase struct {
	browser     output.BrowserPort
	matcher     *Matcher
	narrator    output.NarratorPort
	logger      output.LoggerPort
	searchBase  string
	confirmWait time.Duration
	// artifactsDir receives the final-page screenshot; empty disables it.
	artifactsDir string
}

type Option func(*UseCase)

func WithSearchBase(base string) Option {
	return func(uc *UseCase) { uc.searchBase = base }
}

func WithConfirmWait(d time.Duration) Option {
	return func(uc *UseCase) { uc.confirmWait = d }
}

func WithArtifactsDir(dir string) Option {
	return func(uc *UseCase) { uc.artifactsDir = dir }
}

func New(browser output.BrowserPort, matcher *Matcher, narrator output.NarratorPort, logger output.LoggerPort, opts ...Option) *UseCase {
	uc := &UseCase{
		browser:     browser,
		matcher:     matcher,
		narrator:    narrator,
		logger:      logger,
		searchBase:  defaultSearchBase,
		confirmWait: defaultConfirmWait,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Schedule runs the whole demo sequence: search for the company, open its
// site, find the contact form, fill it from the profile, submit once, and
// check for a confirmation indicator. Every degradation short of a canceled
// context becomes a reported outcome, never a crash.
func (uc *UseCase) Schedule(ctx context.Context, company string, profile entity.ExtractedProfile) (*entity.SubmissionOutcome, error) {
	uc.narrator.Step("Searching for %s", company)
	searchURL := uc.searchBase + url.QueryEscape(company+" moving company contact")
	if err := uc.browser.Navigate(ctx, searchURL); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return failed(fmt.Sprintf("search navigation failed: %v", err)), nil
	}
	uc.narrator.Detail("%s", uc.browser.CurrentURL())

	uc.narrator.Step("Opening company website")
	if err := uc.browser.Click(ctx, "h3"); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return failed(fmt.Sprintf("could not open a search result: %v", err)), nil
	}
	uc.narrator.Detail("%s", uc.browser.CurrentURL())

	uc.narrator.Step("Looking for a contact form")
	if err := uc.browser.ClickByText(ctx, contactLinkSelector, contactLinkPattern); err != nil {
		// The landing page itself may carry the form.
		uc.narrator.Warn("no contact link found, trying the current page")
		uc.logger.Warn("Contact link not found", "error", err)
	} else {
		uc.narrator.Success("contact page opened")
	}

	uc.narrator.Step("Filling customer information")
	report := uc.matcher.Fill(ctx, uc.browser, profile)
	for kind, selector := range report.Filled {
		uc.narrator.Success("%s -> %s", kind, selector)
	}
	for _, warning := range report.Warnings {
		uc.narrator.Warn("%s", warning)
	}

	if report.FilledCount() == 0 {
		uc.narrator.Failure("no form fields matched, not submitting")
		outcome := failed("no form fields matched any selector candidate")
		outcome.Fill = report
		return outcome, nil
	}

	uc.narrator.Step("Submitting the request")
	control, err := uc.matcher.Submit(ctx, uc.browser)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		uc.narrator.Failure("%v", err)
		outcome := failed(err.Error())
		outcome.Fill = report
		return outcome, nil
	}
	uc.narrator.Success("submitted via %s", control)

	uc.narrator.Step("Waiting for confirmation")
	uc.browser.WaitStable(ctx, uc.confirmWait)

	outcome := &entity.SubmissionOutcome{Submitted: true, Fill: report}
	page, err := uc.browser.GetPageContent(ctx)
	if err != nil {
		outcome.Status = entity.SubmissionUncertain
		outcome.Reason = fmt.Sprintf("could not read page after submit: %v", err)
	} else if ok, indicator := pagescan.DetectConfirmation(page.HTML); ok {
		outcome.Status = entity.SubmissionConfirmed
		outcome.Reason = indicator
	} else {
		outcome.Status = entity.SubmissionUncertain
		outcome.Reason = "no confirmation indicator within wait window"
	}

	switch outcome.Status {
	case entity.SubmissionConfirmed:
		uc.narrator.Success("confirmation detected (%s)", outcome.Reason)
	default:
		uc.narrator.Warn("outcome uncertain: %s", outcome.Reason)
	}

	uc.saveArtifacts(ctx)

	return outcome, nil
}

// saveArtifacts keeps evidence of the final page: a screenshot plus the
// cleaned markup, so an uncertain outcome can be diagnosed after the run.
// All failures here are logged, never fatal.
func (uc *UseCase) saveArtifacts(ctx context.Context) {
	if uc.artifactsDir == "" {
		return
	}

	if err := os.MkdirAll(uc.artifactsDir, 0o755); err != nil {
		uc.logger.Warn("Artifacts dir unavailable", "error", err)
		return
	}
	stamp := time.Now().Format("20060102_150405")

	if shot, err := uc.browser.Screenshot(ctx); err != nil {
		uc.logger.Warn("Screenshot failed", "error", err)
	} else {
		path := filepath.Join(uc.artifactsDir, fmt.Sprintf("schedule_%s.%s", stamp, shot.Format))
		if err := os.WriteFile(path, shot.Data, 0o644); err != nil {
			uc.logger.Warn("Screenshot write failed", "error", err)
		} else {
			uc.narrator.Detail("screenshot saved to %s", path)
		}
	}

	if page, err := uc.browser.GetPageContent(ctx); err != nil {
		uc.logger.Warn("Page snapshot failed", "error", err)
	} else {
		path := filepath.Join(uc.artifactsDir, fmt.Sprintf("schedule_%s.html", stamp))
		if err := os.WriteFile(path, []byte(pagescan.CleanHTML(page.HTML, nil)), 0o644); err != nil {
			uc.logger.Warn("Page snapshot write failed", "error", err)
		} else {
			uc.narrator.Detail("page snapshot saved to %s", path)
		}
	}
}

func failed(reason string) *entity.SubmissionOutcome {
	return &entity.SubmissionOutcome{
		Status: entity.SubmissionFailed,
		Reason: reason,
	}
}
