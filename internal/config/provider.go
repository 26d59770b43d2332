package config

import (
	"strings"
	"sync"
	"time"
)

const (
	ProviderModeAuto     = "auto"
	ProviderModeLive     = "live"
	ProviderModeFallback = "fallback"
)

// ProviderSourceConfig holds the credentials of one external job or course source.
type ProviderSourceConfig struct {
	BaseURL string
	APIKey  string
}

type ProviderConfig struct {
	Mode     string
	Timeout  time.Duration
	CacheTTL time.Duration
	Sources  map[string]ProviderSourceConfig
}

var (
	providerConfig *ProviderConfig
	providerOnce   sync.Once
)

func LoadProviderConfig() *ProviderConfig {
	providerOnce.Do(func() {
		providerConfig = &ProviderConfig{
			Mode:     strings.ToLower(getEnv("PROVIDER_MODE", ProviderModeAuto)),
			Timeout:  getEnvDuration("PROVIDER_TIMEOUT", 12*time.Second),
			CacheTTL: getEnvDuration("PROVIDER_CACHE_TTL", 30*time.Minute),
			Sources: map[string]ProviderSourceConfig{
				"linkedin": {
					BaseURL: getEnv("LINKEDIN_BASE_URL", "https://api.linkedin.com/v2"),
					APIKey:  getEnv("LINKEDIN_API_KEY", ""),
				},
				"indeed": {
					BaseURL: getEnv("INDEED_BASE_URL", "https://api.indeed.com/ads"),
					APIKey:  getEnv("INDEED_API_KEY", ""),
				},
				"unstop": {
					BaseURL: getEnv("UNSTOP_BASE_URL", "https://api.unstop.com"),
					APIKey:  getEnv("UNSTOP_API_KEY", ""),
				},
				"coursera": {
					BaseURL: getEnv("COURSERA_BASE_URL", "https://api.coursera.org/api"),
					APIKey:  getEnv("COURSERA_API_KEY", ""),
				},
				"udemy": {
					BaseURL: getEnv("UDEMY_BASE_URL", "https://www.udemy.com/api-2.0"),
					APIKey:  getEnv("UDEMY_API_KEY", ""),
				},
				"edx": {
					BaseURL: getEnv("EDX_BASE_URL", "https://api.edx.org/catalog/v1"),
					APIKey:  getEnv("EDX_API_KEY", ""),
				},
			},
		}
	})
	return providerConfig
}

// UseLive decides the strategy of a single source. In auto mode a source goes
// live only when its API key is present.
func (c *ProviderConfig) UseLive(source string) bool {
	switch c.Mode {
	case ProviderModeLive:
		return true
	case ProviderModeFallback:
		return false
	default:
		return c.Sources[source].APIKey != ""
	}
}
