// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Copy     CopyConfig     `mapstructure:"copy"`
	Spelling SpellingConfig `mapstructure:"spelling"`
	Registry RegistryConfig `mapstructure:"registry"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	RequestTimeout  int    `mapstructure:"request_timeout"`  // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// --- Specific Configuration Sections ---

// CopyConfig holds settings for the template store and the copy generator.
type CopyConfig struct {
	TemplatesDir      string `mapstructure:"templates_dir"`
	DefaultButtonText string `mapstructure:"default_button_text"`
}

// SpellingConfig holds settings for the spell-check adapter and the speller proxy.
type SpellingConfig struct {
	// Adapter side: where the checking service lives.
	BaseURL string `mapstructure:"base_url"`
	Engine  string `mapstructure:"engine"`
	Timeout int    `mapstructure:"timeout"` // milliseconds

	// Proxy side: the upstream speller the proxy talks to.
	UpstreamURL string `mapstructure:"upstream_url"`
	PassportURL string `mapstructure:"passport_url"`
	MaxLength   int    `mapstructure:"max_length"`
	CacheTTL    int    `mapstructure:"cache_ttl"`    // seconds
	PassportTTL int    `mapstructure:"passport_ttl"` // seconds
}

// RegistryConfig points at an operation registry that replaces the embedded one.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
