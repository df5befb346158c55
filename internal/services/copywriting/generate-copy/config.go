// internal/services/copywriting/generate-copy/config.go
package generatecopy

type Config struct {
	DefaultButtonText string
}

func LoadConfig() *Config {
	return &Config{
		DefaultButtonText: "확인",
	}
}
