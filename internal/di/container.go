package di

import (
	"context"
	"fmt"
	"time"

	"moving-quote-agent/internal/application/port/input"
	"moving-quote-agent/internal/application/port/output"
	"moving-quote-agent/internal/infrastructure/browser/rod"
	"moving-quote-agent/internal/infrastructure/env"
	"moving-quote-agent/internal/infrastructure/llm/openai"
	"moving-quote-agent/internal/infrastructure/logger"
	"moving-quote-agent/internal/infrastructure/narrator"
	"moving-quote-agent/internal/infrastructure/web"
	"moving-quote-agent/internal/usecase/compare"
	"moving-quote-agent/internal/usecase/extraction"
	"moving-quote-agent/internal/usecase/quote"
	"moving-quote-agent/internal/usecase/report"
	"moving-quote-agent/internal/usecase/scheduler"
)

// QuoteContainer wires the chat flow: HTTP server on top of extraction,
// comparison and report rendering.
type QuoteContainer struct {
	Server *web.Server
	Quotes input.QuoteService
	Logger output.LoggerPort
}

type QuoteConfig struct {
	APIKey   string
	Model    string
	BaseURL  string
	Addr     string
	GinMode  string
	LogLevel string
}

func NewQuoteContainer(cfg QuoteConfig) (*QuoteContainer, error) {
	log, err := logger.New(cfg.LogLevel, "json")
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	llmCfg := openai.DefaultConfig(cfg.APIKey, cfg.Model)
	if cfg.BaseURL != "" {
		llmCfg.BaseURL = cfg.BaseURL
	}
	llmCfg.Logger = log
	extractor := openai.NewExtractorAdapter(llmCfg)

	quotes := quote.New(
		extraction.New(extractor, log),
		compare.New(nil),
		extractor,
		log,
	)

	webCfg := web.DefaultConfig()
	if cfg.Addr != "" {
		webCfg.Addr = cfg.Addr
	}
	if cfg.GinMode != "" {
		webCfg.Mode = cfg.GinMode
	}
	server := web.NewServer(webCfg, quotes, report.NewRenderer(), log)

	return &QuoteContainer{
		Server: server,
		Quotes: quotes,
		Logger: log,
	}, nil
}

func (c *QuoteContainer) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

// SchedulerContainer wires the browser demo: extraction plus the form
// driver behind a live Chromium instance.
type SchedulerContainer struct {
	Browser    output.BrowserPort
	Extraction *extraction.UseCase
	Scheduler  input.Scheduler
	Narrator   output.NarratorPort
	Logger     output.LoggerPort
}

type SchedulerConfig struct {
	APIKey       string
	Model        string
	BaseURL      string
	Headless     bool
	SlowMotion   time.Duration
	ConfirmWait  time.Duration
	ArtifactsDir string
	LogLevel     string
}

func NewSchedulerContainer(ctx context.Context, cfg SchedulerConfig) (*SchedulerContainer, error) {
	log, err := logger.New(cfg.LogLevel, "console")
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = cfg.Headless
	if cfg.SlowMotion > 0 {
		browserCfg.SlowMotion = cfg.SlowMotion
	}
	browser, err := rod.NewBrowserAdapter(ctx, browserCfg)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("create browser: %w", err)
	}

	llmCfg := openai.DefaultConfig(cfg.APIKey, cfg.Model)
	if cfg.BaseURL != "" {
		llmCfg.BaseURL = cfg.BaseURL
	}
	llmCfg.Logger = log
	extractor := openai.NewExtractorAdapter(llmCfg)

	console := narrator.NewConsoleNarrator()
	matcher := scheduler.NewMatcher(nil, log)

	var opts []scheduler.Option
	if cfg.ConfirmWait > 0 {
		opts = append(opts, scheduler.WithConfirmWait(cfg.ConfirmWait))
	}
	if cfg.ArtifactsDir != "" {
		opts = append(opts, scheduler.WithArtifactsDir(cfg.ArtifactsDir))
	}

	return &SchedulerContainer{
		Browser:    browser,
		Extraction: extraction.New(extractor, log),
		Scheduler:  scheduler.New(browser, matcher, console, log, opts...),
		Narrator:   console,
		Logger:     log,
	}, nil
}

func (c *SchedulerContainer) Close() {
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

// LoadQuoteConfig reads the server configuration from the environment.
func LoadQuoteConfig(envService *env.EnvService) QuoteConfig {
	return QuoteConfig{
		APIKey:   envService.MustGet("OPENROUTER_API_KEY"),
		Model:    getOr(envService, "OPENROUTER_MODEL_NAME", "openai/gpt-4o-mini"),
		BaseURL:  envService.Get("OPENROUTER_BASE_URL"),
		Addr:     getOr(envService, "HTTP_ADDR", ":8080"),
		GinMode:  envService.Get("GIN_MODE"),
		LogLevel: getOr(envService, "LOG_LEVEL", "info"),
	}
}

// LoadSchedulerConfig reads the browser demo configuration from the
// environment.
func LoadSchedulerConfig(envService *env.EnvService) SchedulerConfig {
	return SchedulerConfig{
		APIKey:       envService.MustGet("OPENROUTER_API_KEY"),
		Model:        getOr(envService, "OPENROUTER_MODEL_NAME", "openai/gpt-4o-mini"),
		BaseURL:      envService.Get("OPENROUTER_BASE_URL"),
		Headless:     envService.GetBool("BROWSER_HEADLESS", false),
		SlowMotion:   envService.GetDuration("BROWSER_SLOW_MOTION", 0),
		ConfirmWait:  envService.GetDuration("CONFIRM_WAIT", 0),
		ArtifactsDir: getOr(envService, "ARTIFACTS_DIR", "artifacts"),
		LogLevel:     getOr(envService, "LOG_LEVEL", "info"),
	}
}

func getOr(envService *env.EnvService, key, defaultValue string) string {
	if v := envService.Get(key); v != "" {
		return v
	}
	return defaultValue
}
