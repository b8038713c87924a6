package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"moving-quote-agent/internal/application/port/output"
	"moving-quote-agent/internal/domain/entity"
	"moving-quote-agent/internal/infrastructure/prompts"

	"github.com/sashabaranov/go-openai"
)

var _ output.ExtractorPort = (*ExtractorAdapter)(nil)

// ExtractorAdapter talks to any OpenAI-compatible chat-completions endpoint.
// Extraction runs at temperature 0 with a JSON response format; the response
// parsing below is pure, so the same model output always yields the same
// profile.
type ExtractorAdapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Logger  output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: "https://openrouter.ai/api/v1",
	}
}

func NewExtractorAdapter(cfg Config) *ExtractorAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &ExtractorAdapter{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

func (a *ExtractorAdapter) ExtractProfile(ctx context.Context, text string) (entity.ExtractedProfile, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.ExtractionPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return entity.ExtractedProfile{}, fmt.Errorf("extraction request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return entity.ExtractedProfile{}, fmt.Errorf("no choices in extraction response")
	}

	profile, err := parseProfile(resp.Choices[0].Message.Content)
	if err != nil {
		return entity.ExtractedProfile{}, err
	}

	if a.logger != nil {
		a.logger.Debug("Profile extracted",
			"hasName", profile.Name != "",
			"hasEmail", profile.Email != "",
			"hasRoute", profile.Origin != "" && profile.Destination != "")
	}

	return profile, nil
}

func (a *ExtractorAdapter) GenerateAnalysis(ctx context.Context, profile entity.ExtractedProfile, quotes []entity.QuoteOption) (string, error) {
	data, err := json.Marshal(struct {
		Customer entity.ExtractedProfile `json:"customer"`
		Quotes   []entity.QuoteOption    `json:"quotes"`
	}{profile, quotes})
	if err != nil {
		return "", fmt.Errorf("marshal report data: %w", err)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.ReportPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(data)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("analysis request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in analysis response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

var (
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
	emailRe      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// parseProfile decodes the model's JSON answer. Models occasionally wrap the
// object in prose or a code fence, so the first {...} span is taken. An email
// that does not look like an address is dropped rather than passed along.
func parseProfile(content string) (entity.ExtractedProfile, error) {
	raw := jsonObjectRe.FindString(content)
	if raw == "" {
		return entity.ExtractedProfile{}, fmt.Errorf("no JSON object in extraction response")
	}

	var profile entity.ExtractedProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return entity.ExtractedProfile{}, fmt.Errorf("decode extraction response: %w", err)
	}

	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)
	profile.Phone = strings.TrimSpace(profile.Phone)
	profile.Origin = strings.TrimSpace(profile.Origin)
	profile.Destination = strings.TrimSpace(profile.Destination)
	profile.MoveDate = strings.TrimSpace(profile.MoveDate)

	if profile.Email != "" && !emailRe.MatchString(profile.Email) {
		profile.Email = ""
	}

	return profile, nil
}
