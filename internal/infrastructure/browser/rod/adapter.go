package rod

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"time"

	"moving-quote-agent/internal/application/port/output"
	"moving-quote-agent/internal/domain/entity"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

var _ output.BrowserPort = (*BrowserAdapter)(nil)

type BrowserAdapter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	timeout  time.Duration
	probe    time.Duration
}

type BrowserConfig struct {
	Headless   bool
	SlowMotion time.Duration
	Timeout    time.Duration
	// ProbeTimeout bounds each Interactable lookup. Kept short so walking a
	// candidate list with many misses stays fast.
	ProbeTimeout time.Duration
	NoSandbox    bool
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Headless:     false,
		SlowMotion:   500 * time.Millisecond,
		Timeout:      10 * time.Second,
		ProbeTimeout: 2 * time.Second,
		NoSandbox:    true,
	}
}

func NewBrowserAdapter(ctx context.Context, cfg BrowserConfig) (*BrowserAdapter, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().
		ControlURL(url).
		SlowMotion(cfg.SlowMotion).
		MustConnect()

	page := browser.MustPage("about:blank")

	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 2 * time.Second
	}

	return &BrowserAdapter{
		browser:  browser,
		launcher: l,
		page:     page,
		timeout:  cfg.Timeout,
		probe:    cfg.ProbeTimeout,
	}, nil
}

func (b *BrowserAdapter) Navigate(ctx context.Context, url string) error {
	if err := b.page.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	if err := b.page.Context(ctx).WaitLoad(); err != nil {
		return fmt.Errorf("page load failed: %w", err)
	}
	b.page.WaitIdle(5 * time.Second)
	return nil
}

func (b *BrowserAdapter) Click(ctx context.Context, selector string) error {
	el, err := b.page.Context(ctx).Timeout(b.timeout).Element(selector)
	if err != nil {
		return fmt.Errorf("element not found: %s: %w", selector, err)
	}

	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %s: %w", selector, err)
	}

	b.page.WaitIdle(2 * time.Second)
	return nil
}

func (b *BrowserAdapter) ClickByText(ctx context.Context, selector, textPattern string) error {
	el, err := b.page.Context(ctx).Timeout(b.timeout).ElementR(selector, "(?i)"+textPattern)
	if err != nil {
		return fmt.Errorf("no %s with text %q: %w", selector, textPattern, err)
	}

	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}

	b.page.WaitIdle(2 * time.Second)
	return nil
}

func (b *BrowserAdapter) Fill(ctx context.Context, selector, text string) error {
	el, err := b.page.Context(ctx).Timeout(b.timeout).Element(selector)
	if err != nil {
		return fmt.Errorf("field not found: %s: %w", selector, err)
	}

	if err := el.SelectAllText(); err == nil {
		_ = el.Input("")
	}

	if err := el.Input(text); err != nil {
		return fmt.Errorf("input failed: %s: %w", selector, err)
	}

	return nil
}

// Interactable checks the first document-order match only: a later match
// being visible does not rescue a hidden first one. This keeps the heuristic
// predictable on pages with duplicated hidden forms.
func (b *BrowserAdapter) Interactable(ctx context.Context, selector string) bool {
	el, err := b.page.Context(ctx).Timeout(b.probe).Element(selector)
	if err != nil {
		return false
	}

	visible, err := el.Visible()
	if err != nil || !visible {
		return false
	}

	disabled, err := el.Property("disabled")
	if err == nil && disabled.Bool() {
		return false
	}

	return true
}

func (b *BrowserAdapter) WaitStable(ctx context.Context, timeout time.Duration) error {
	// rod treats an elapsed idle window as success, which matches the port
	// contract: a timeout here is not an error.
	b.page.Context(ctx).WaitIdle(timeout)
	return nil
}

func (b *BrowserAdapter) GetPageContent(ctx context.Context) (*entity.PageContent, error) {
	info, err := b.page.Context(ctx).Info()
	if err != nil {
		return nil, fmt.Errorf("page info failed: %w", err)
	}

	html, err := b.page.Context(ctx).HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to get HTML: %w", err)
	}

	return &entity.PageContent{
		URL:   info.URL,
		Title: info.Title,
		HTML:  html,
	}, nil
}

func (b *BrowserAdapter) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	imgBytes, err := b.page.Context(ctx).Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	if img.Bounds().Dx() > 1280 {
		img = imaging.Resize(img, 1280, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 75}); err != nil {
		return nil, fmt.Errorf("jpeg encode failed: %w", err)
	}

	return &entity.Screenshot{
		Data:   buf.Bytes(),
		Format: "jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

func (b *BrowserAdapter) CurrentURL() string {
	return b.page.MustInfo().URL
}

func (b *BrowserAdapter) Close() {
	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
}
