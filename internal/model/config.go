package model

import "time"

// Config is the complete runtime configuration, assembled from defaults,
// the YAML config file, GAZEX_* environment variables and CLI flags.
type Config struct {
	Logging     LoggingConfig     `yaml:"logging" json:"logging"`
	Segmenter   SegmenterConfig   `yaml:"segmenter" json:"segmenter"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Escalation  EscalationConfig  `yaml:"escalation" json:"escalation"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" json:"rate_limit"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// LoggingConfig controls the injected zap logger.
type LoggingConfig struct {
	File       string `yaml:"file" json:"file"`               // log file path, empty disables the file sink
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"` // rotate after this many megabytes
	MaxBackups int    `yaml:"max_backups" json:"max_backups"` // rotated files to keep
	Level      string `yaml:"level" json:"level"`             // debug, info, warn, error
	Console    bool   `yaml:"console" json:"console"`         // also log to stderr
}

// SegmenterConfig tunes the legal-text segmenter.
type SegmenterConfig struct {
	// MinChunkLen drops chunks shorter than this many characters after
	// trimming. A chunk of exactly this length is kept.
	MinChunkLen int `yaml:"min_chunk_len" json:"min_chunk_len"`
}

// LLMConfig holds the external extraction collaborator configuration.
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // openai, anthropic, ollama, "" (disabled)
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // from env only, never persisted
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds per call
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// EscalationConfig is the configurable predicate for LLM escalation.
type EscalationConfig struct {
	// Force escalates every segment regardless of heuristic confidence.
	Force bool `yaml:"force" json:"force"`
	// RequiredFields lists heuristic fields whose absence triggers
	// escalation. Recognized: name, cui, reg_number, address, caen, capital.
	RequiredFields []string `yaml:"required_fields" json:"required_fields"`
}

// ConcurrencyConfig bounds the escalation worker pool.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// RateLimitConfig throttles LLM API calls.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// CacheConfig controls memoization of LLM extraction results.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Dir     string        `yaml:"dir" json:"dir"` // disk tier location, empty for memory only
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// OutputConfig controls result writing.
type OutputConfig struct {
	NDJSON  string `yaml:"ndjson" json:"ndjson"` // aggregate NDJSON filename
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns sensible defaults for all sections.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			File:       "gazex.log",
			MaxSizeMB:  5,
			MaxBackups: 3,
			Level:      "info",
			Console:    true,
		},
		Segmenter: SegmenterConfig{
			MinChunkLen: 80,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   60,
			MaxTokens: 2000,
		},
		Escalation: EscalationConfig{
			Force:          false,
			RequiredFields: []string{"name", "cui", "address"},
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			BurstSize:         2,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Output: OutputConfig{
			NDJSON: "companies.ndjson",
		},
	}
}
