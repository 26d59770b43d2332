package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/careervision/internal/config"
)

//go:generate mockgen -source=./text_completer.go -destination=./mocks/text_completer.mock.go -package=svcmocks

// TextCompleter turns a prompt into generated text.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewTextCompleter builds the backend selected by LLM_PROVIDER.
func NewTextCompleter(ctx context.Context) (TextCompleter, error) {
	switch provider := config.LoadLLMConfig().Provider; provider {
	case config.LLMProviderGemini:
		return NewGeminiService(ctx)
	case config.LLMProviderOpenRouter:
		return NewOpenRouterService()
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}

type unavailableCompleter struct {
	err error
}

// Unavailable is used when no backend could be built; every call fails with err.
func Unavailable(err error) TextCompleter {
	return unavailableCompleter{err: err}
}

func (u unavailableCompleter) Complete(context.Context, string) (string, error) {
	return "", u.err
}
