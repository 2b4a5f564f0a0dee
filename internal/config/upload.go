package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type UploadConfig struct {
	MaxBytes  int64
	RateLimit int
}

var (
	uploadConfig *UploadConfig
	uploadOnce   sync.Once
)

func LoadUploadConfig() *UploadConfig {
	uploadOnce.Do(func() {
		uploadConfig = &UploadConfig{
			MaxBytes:  10 * 1024 * 1024,
			RateLimit: 10,
		}
		if v := os.Getenv("UPLOAD_MAX_BYTES"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n <= 0 {
				log.Printf("Warning: invalid UPLOAD_MAX_BYTES %q, keeping %d", v, uploadConfig.MaxBytes)
			} else {
				uploadConfig.MaxBytes = n
			}
		}
		if v := os.Getenv("UPLOAD_RATE_LIMIT"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				log.Printf("Warning: invalid UPLOAD_RATE_LIMIT %q, keeping %d", v, uploadConfig.RateLimit)
			} else {
				uploadConfig.RateLimit = n
			}
		}
	})
	return uploadConfig
}
