package config

import (
	"strings"
	"sync"
)

const (
	LLMProviderGemini     = "gemini"
	LLMProviderOpenRouter = "openrouter"
)

type LLMConfig struct {
	Provider string
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

// LoadLLMConfig picks the text-completion backend used by the question router.
func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		llmConfig = &LLMConfig{
			Provider: strings.ToLower(getEnv("LLM_PROVIDER", LLMProviderGemini)),
		}
	})
	return llmConfig
}
