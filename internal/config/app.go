package config

import (
	"log/slog"
	"os"
	"sync"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			slog.Warn("APP_ENV not set, using default", slog.String("env", env))
		}
		appConfig = &AppConfig{
			Name:    getEnv("APP_NAME", "careervision"),
			Env:     env,
			Port:    getEnv("APP_PORT", ":3000"),
			BaseURL: os.Getenv("APP_URL"),
		}
	})
	return appConfig
}

// IsProduction hides diagnostic detail from API responses.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
