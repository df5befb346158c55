// internal/services/spelling/check-spelling/config.go
package checkspelling

import "time"

type Config struct {
	BaseURL string
	Engine  string
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		BaseURL: "http://localhost:5001",
		Engine:  "네이버",
		Timeout: 10 * time.Second,
	}
}
