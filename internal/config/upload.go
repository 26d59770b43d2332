package config

import (
	"sync"
	"time"
)

type UploadConfig struct {
	Dir            string
	MaxBytes       int64
	ProcessTimeout time.Duration
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		uploadConfig = &UploadConfig{
			Dir:            getEnv("UPLOAD_DIR", "./uploads/resumes"),
			MaxBytes:       int64(getEnvInt("UPLOAD_MAX_BYTES", 10*1024*1024)),
			ProcessTimeout: getEnvDuration("RESUME_PROCESS_TIMEOUT", 2*time.Minute),
		}
	})
	return uploadConfig
}
