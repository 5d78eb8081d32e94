package model

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete nidus-extract configuration
type Config struct {
	Tagger       TaggerConfig       `yaml:"tagger" mapstructure:"tagger"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	Logging      LoggingConfig      `yaml:"logging" mapstructure:"logging"`
	LLM          LLMConfig          `yaml:"llm" mapstructure:"llm"`
}

// TaggerConfig selects the lexical and lemma tagger backends
type TaggerConfig struct {
	Lexical string `yaml:"lexical" mapstructure:"lexical"` // rules, prose
	Lemma   string `yaml:"lemma" mapstructure:"lemma"`     // rules, golem
}

// CacheConfig controls memoisation of extracted graphs
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskDir   string        `yaml:"disk_dir" mapstructure:"disk_dir"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls the batch worker pool
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitingConfig throttles batch extraction
type RateLimitingConfig struct {
	TranscriptsPerSecond float64 `yaml:"transcripts_per_second" mapstructure:"transcripts_per_second"` // 0 disables throttling
	BurstSize            int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig controls how graphs are rendered
type OutputConfig struct {
	Format      string `yaml:"format" mapstructure:"format"` // json, yaml
	IncludeTags bool   `yaml:"include_tags" mapstructure:"include_tags"`
	Verbose     bool   `yaml:"verbose" mapstructure:"verbose"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json, console
}

// LLMConfig configures the optional narrative summary
type LLMConfig struct {
	Provider    string `yaml:"provider" mapstructure:"provider"` // "" (disabled), openai, anthropic, ollama
	Model       string `yaml:"model" mapstructure:"model"`
	APIKey      string `yaml:"-" mapstructure:"api_key"`
	BaseURL     string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout     int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens   int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	StrictFacts bool   `yaml:"strict_facts" mapstructure:"strict_facts"`
	HTTPProxy   string `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy  string `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy     string `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Tagger: TaggerConfig{
			Lexical: "rules",
			Lemma:   "rules",
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskDir:   ".nidus-cache",
			DiskTTL:   7 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			TranscriptsPerSecond: 0,
			BurstSize:            5,
		},
		Output: OutputConfig{
			Format:      "json",
			IncludeTags: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		LLM: LLMConfig{
			Timeout:     30,
			MaxTokens:   400,
			StrictFacts: true,
		},
	}
}

// Validate returns every problem found in the configuration
func (c *Config) Validate() error {
	var errs []error

	switch c.Tagger.Lexical {
	case "rules", "prose":
	default:
		errs = append(errs, fmt.Errorf("tagger.lexical %q is invalid; valid values: rules, prose", c.Tagger.Lexical))
	}
	switch c.Tagger.Lemma {
	case "rules", "golem":
	default:
		errs = append(errs, fmt.Errorf("tagger.lemma %q is invalid; valid values: rules, golem", c.Tagger.Lemma))
	}
	switch c.Output.Format {
	case "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("output.format %q is invalid; valid values: json, yaml", c.Output.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is invalid; valid values: debug, info, warn, error", c.Logging.Level))
	}
	switch c.LLM.Provider {
	case "", "openai", "anthropic", "ollama":
	default:
		errs = append(errs, fmt.Errorf("llm.provider %q is invalid; valid values: openai, anthropic, ollama", c.LLM.Provider))
	}
	if c.Concurrency.Workers < 1 {
		errs = append(errs, fmt.Errorf("concurrency.workers must be at least 1, got %d", c.Concurrency.Workers))
	}
	if c.RateLimiting.TranscriptsPerSecond < 0 {
		errs = append(errs, errors.New("rate_limiting.transcripts_per_second must not be negative"))
	}
	if c.Cache.Enabled && c.Cache.DiskDir == "" {
		errs = append(errs, errors.New("cache.disk_dir is required when the cache is enabled"))
	}

	return errors.Join(errs...)
}
