package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sanhariharan/invesplannner/domain"
)

const EnvPrefix = "INVESPLANNER"

// Config holds application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	AI         AIConfig         `mapstructure:"ai"`
	Allocation AllocationConfig `mapstructure:"allocation"`
	Projection ProjectionConfig `mapstructure:"projection"`
	Cache      CacheConfig      `mapstructure:"cache"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	CORS       CORSConfig       `mapstructure:"cors"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	TrustProxy      bool          `mapstructure:"trust_proxy"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type AIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	InitTimeout time.Duration `mapstructure:"init_timeout"`
	Extractor   string        `mapstructure:"extractor"`
}

type AllocationConfig struct {
	Variant string `mapstructure:"variant"`
}

type ProjectionConfig struct {
	AnnualReturn float64 `mapstructure:"annual_return"`
	Currency     string  `mapstructure:"currency"`
}

type CacheConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity"`
	Refill   time.Duration `mapstructure:"refill"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.trust_proxy", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 20*time.Second)
	v.SetDefault("ai.init_timeout", 30*time.Second)
	v.SetDefault("ai.extractor", "heuristic")

	v.SetDefault("allocation.variant", "extended")

	v.SetDefault("projection.annual_return", 0.07)
	v.SetDefault("projection.currency", "USD")

	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.ttl", time.Hour)

	v.SetDefault("rate_limit.capacity", 5)
	v.SetDefault("rate_limit.refill", time.Minute)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load reads configuration from defaults, an optional config file and the
// environment, in increasing order of precedence. A .env file in the working
// directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("ai.api_key", EnvPrefix+"_AI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later at wiring time.
func (c *Config) Validate() error {
	switch c.Allocation.Variant {
	case "extended", "simple":
	default:
		return fmt.Errorf("allocation.variant must be extended or simple, got %q", c.Allocation.Variant)
	}
	switch c.AI.Extractor {
	case "heuristic", "placeholder":
	default:
		return fmt.Errorf("ai.extractor must be heuristic or placeholder, got %q", c.AI.Extractor)
	}
	if c.AI.Timeout <= 0 || c.AI.InitTimeout <= 0 {
		return fmt.Errorf("ai timeouts must be positive")
	}
	if c.RateLimit.Capacity <= 0 || c.RateLimit.Refill <= 0 {
		return fmt.Errorf("rate_limit capacity and refill must be positive")
	}
	if err := domain.CheckAnnualReturn(c.Projection.AnnualReturn); err != nil {
		return fmt.Errorf("projection.annual_return: %w", err)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
