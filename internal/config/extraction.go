package config

import "sync"

type ExtractionConfig struct {
	// RulesFile points to a JSON rule table. Empty keeps the built-in rules.
	RulesFile string
}

var (
	extractionConfig *ExtractionConfig
	extractionOnce   sync.Once
)

func LoadExtractionConfig() *ExtractionConfig {
	extractionOnce.Do(func() {
		extractionConfig = &ExtractionConfig{
			RulesFile: getEnv("EXTRACTION_RULES_FILE", ""),
		}
	})
	return extractionConfig
}
