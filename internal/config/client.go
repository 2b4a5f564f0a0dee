package config

import (
	"os"
	"sync"
	"time"
)

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

var (
	clientConfig *ClientConfig
	clientOnce   sync.Once
)

// LoadClientConfig configures submissionctl. SUBMISSIONS_API_URL defaults to
// the local server.
func LoadClientConfig() *ClientConfig {
	clientOnce.Do(func() {
		timeout := 30 * time.Second
		if d, err := time.ParseDuration(os.Getenv("SUBMISSIONS_API_TIMEOUT")); err == nil && d > 0 {
			timeout = d
		}
		clientConfig = &ClientConfig{
			BaseURL: envOr("SUBMISSIONS_API_URL", "http://localhost:8080"),
			Timeout: timeout,
		}
	})
	return clientConfig
}
