package model

import "time"

// Config holds the full labelcheck configuration
type Config struct {
	OCR         OCRConfig         `yaml:"ocr"`
	Cache       CacheConfig       `yaml:"cache"`
	Server      ServerConfig      `yaml:"server"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// OCRConfig configures the external OCR collaborator
type OCRConfig struct {
	Languages  []string      `yaml:"languages"`  // Tesseract language hints
	Timeout    time.Duration `yaml:"timeout"`    // Per-extraction timeout
	Preprocess bool          `yaml:"preprocess"` // Grayscale/contrast/upscale before recognition
	MinWidth   int           `yaml:"min_width"`  // Upscale images narrower than this (pixels)
}

// CacheConfig configures extracted-text caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`        // Disk cache directory ("" disables the disk layer)
	MemoryTTL time.Duration `yaml:"memory_ttl"` // TTL for the in-memory layer
	DiskTTL   time.Duration `yaml:"disk_ttl"`   // TTL for the disk layer
}

// ServerConfig configures the HTTP transport
type ServerConfig struct {
	Host              string  `yaml:"host"`
	Port              int     `yaml:"port"`
	MaxImageBytes     int64   `yaml:"max_image_bytes"`     // Upload size ceiling
	RequestsPerSecond float64 `yaml:"requests_per_second"` // Per-client rate limit
	BurstSize         int     `yaml:"burst_size"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"` // Concurrent verifications in batch mode
}

// LLMConfig configures the optional verdict explainer
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // From environment only, never persisted
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig configures CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Languages:  []string{"eng"},
			Timeout:    30 * time.Second,
			Preprocess: true,
			MinWidth:   1200,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			MaxImageBytes:     10 << 20, // 10 MiB
			RequestsPerSecond: 5,
			BurstSize:         10,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 500,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
