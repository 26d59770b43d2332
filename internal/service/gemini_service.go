package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fadilmartias/careervision/internal/config"
	"google.golang.org/genai"
)

type generateFunc func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

type GeminiService struct {
	Model             string
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestTimeout    time.Duration
	generate          generateFunc
	// CircuitCooldown is how long an open breaker refuses calls before one
	// trial call is let through.
	CircuitCooldown   time.Duration
	consecutiveErrors atomic.Int32
	circuitBreakerMax int32
	openedAt          atomic.Int64
	now               func() time.Time
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	cfg := config.LoadGeminiConfig()
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newGeminiService(cfg, client.Models.GenerateContent), nil
}

func newGeminiService(cfg *config.GeminiConfig, generate generateFunc) *GeminiService {
	return &GeminiService{
		Model:             cfg.Model,
		MaxRetries:        cfg.MaxRetries,
		BaseDelay:         time.Second,
		MaxDelay:          30 * time.Second,
		RequestTimeout:    cfg.RequestTimeout,
		CircuitCooldown:   30 * time.Second,
		generate:          generate,
		circuitBreakerMax: 5,
		now:               time.Now,
	}
}

func (s *GeminiService) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := s.GenerateContent(ctx, s.Model, prompt)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// GenerateContent retries retryable failures with exponential backoff. After
// circuitBreakerMax consecutive failures it refuses calls for CircuitCooldown,
// then lets a single trial call through.
func (s *GeminiService) GenerateContent(ctx context.Context, model string, prompt string) (*genai.GenerateContentResponse, error) {
	if model == "" {
		return nil, errors.New("model name cannot be empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, errors.New("prompt cannot be empty")
	}
	if !s.allow() {
		return nil, fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", s.consecutiveErrors.Load())
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			slog.Info("retrying gemini generate content",
				slog.Int("attempt", attempt), slog.Int("max_retries", s.MaxRetries), slog.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return nil, fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		genConfig := &genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.2)),
		}
		result, err := s.generate(timeoutCtx, model, genai.Text(prompt), genConfig)
		if err == nil {
			s.consecutiveErrors.Store(0)
			if err := s.validateGenerateResponse(result); err != nil {
				return nil, fmt.Errorf("invalid response: %w", err)
			}
			return result, nil
		}

		lastErr = err
		if !s.isRetryableError(err) {
			slog.Warn("gemini non-retryable error", slog.Any("error", err))
			s.recordFailure(ctx, err)
			return nil, fmt.Errorf("generate content failed: %w", err)
		}
		slog.Warn("gemini retryable error", slog.Int("attempt", attempt+1), slog.Any("error", err))
	}

	s.recordFailure(ctx, lastErr)
	return nil, fmt.Errorf("max retries (%d) exceeded for GenerateContent: %w", s.MaxRetries, lastErr)
}

// allow reports whether a call may proceed. Once the cooldown has elapsed
// exactly one caller wins the swap and re-arms the cooldown for the rest.
func (s *GeminiService) allow() bool {
	if s.consecutiveErrors.Load() < s.circuitBreakerMax {
		return true
	}
	opened := s.openedAt.Load()
	now := s.now().UnixNano()
	if now-opened < int64(s.CircuitCooldown) {
		return false
	}
	return s.openedAt.CompareAndSwap(opened, now)
}

// recordFailure ignores cancellations and deadlines, which say nothing
// about the backend's health.
func (s *GeminiService) recordFailure(ctx context.Context, err error) {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	if s.consecutiveErrors.Add(1) >= s.circuitBreakerMax {
		s.openedAt.Store(s.now().UnixNano())
	}
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}
	jitter := time.Duration(float64(delay) * 0.25)
	return delay - jitter/2
}

func (s *GeminiService) isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429, 500, 502, 503, 504:
			return true
		default:
			return false
		}
	}

	errMsg := err.Error()
	for _, transient := range []string{
		"connection refused", "connection reset", "timeout", "temporary failure", "EOF",
		"Error 429", "Error 500", "Error 502", "Error 503", "Error 504", "RESOURCE_EXHAUSTED", "UNAVAILABLE",
	} {
		if strings.Contains(errMsg, transient) {
			return true
		}
	}
	return false
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return errors.New("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return errors.New("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return errors.New("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return errors.New("no parts in content")
	}
	return nil
}

func (s *GeminiService) ResetCircuitBreaker() {
	s.consecutiveErrors.Store(0)
	s.openedAt.Store(0)
	slog.Info("gemini circuit breaker reset")
}

func (s *GeminiService) CircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	n := s.consecutiveErrors.Load()
	open := n >= s.circuitBreakerMax && s.now().UnixNano()-s.openedAt.Load() < int64(s.CircuitCooldown)
	return int(n), open
}
