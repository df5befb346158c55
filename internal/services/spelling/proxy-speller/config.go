// internal/services/spelling/proxy-speller/config.go
package proxyspeller

import "time"

type Config struct {
	UpstreamURL string
	PassportURL string
	MaxLength   int
	Timeout     time.Duration
	CacheTTL    time.Duration
	PassportTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		UpstreamURL: "https://m.search.naver.com/p/csearch/ocontent/util/SpellerProxy",
		PassportURL: "https://search.naver.com/search.naver?where=nexearch&sm=top_hty&fbm=1&ie=utf8&query=%EB%A7%9E%EC%B6%A4%EB%B2%95%EA%B2%80%EC%82%AC%EA%B8%B0",
		MaxLength:   500,
		Timeout:     10 * time.Second,
		CacheTTL:    10 * time.Minute,
		PassportTTL: time.Hour,
	}
}
