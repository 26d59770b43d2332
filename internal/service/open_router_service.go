package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fadilmartias/careervision/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const careerAssistantRole = "You are a career assistant. You answer questions about a user's own career history, skills and job or course recommendations."

type OpenRouterService struct {
	client *resty.Client
	model  string
}

func NewOpenRouterService() (*OpenRouterService, error) {
	cfg := config.LoadOpenRouterConfig()
	if cfg.APIKey == "" {
		return nil, errors.New("OPENROUTER_API_KEY not set")
	}
	return newOpenRouterService(cfg), nil
}

func newOpenRouterService(cfg *config.OpenRouterConfig) *OpenRouterService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &OpenRouterService{client: client, model: cfg.Model}
}

func (s *OpenRouterService) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "system", "content": careerAssistantRole},
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		slog.Warn("openrouter returned error status",
			slog.Int("status", resp.StatusCode()),
			slog.String("message", gjson.Get(resp.String(), "error.message").String()))
		return "", fmt.Errorf("openrouter returned status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no response from LLM")
	}
	return text, nil
}
