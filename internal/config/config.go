package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Downstream indexer (optional)
	IndexerURL    string
	IndexerAPIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Heuristic tunables for the outline engine. Defaults mirror the
	// documented heuristic constants; they are configuration, not magic.
	HeadingDelta  float64
	MinHeadingLen int
	TitleLineCap  int
	TitleFontDrop float64

	// Batch harness directories
	InputDir  string
	OutputDir string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("OUTLINER_API_KEY"),

		IndexerURL:    os.Getenv("INDEXER_URL"),
		IndexerAPIKey: os.Getenv("INDEXER_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		HeadingDelta:  envFloat("HEADING_DELTA", 2.0),
		MinHeadingLen: envInt("MIN_HEADING_LEN", 3),
		TitleLineCap:  envInt("TITLE_LINE_CAP", 3),
		TitleFontDrop: envFloat("TITLE_FONT_DROP", 2.0),

		InputDir:  envOr("INPUT_DIR", "/app/input"),
		OutputDir: envOr("OUTPUT_DIR", "/app/output"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.HeadingDelta <= 0 {
		cfg.HeadingDelta = 2.0
	}
	if cfg.MinHeadingLen <= 0 {
		cfg.MinHeadingLen = 3
	}
	if cfg.TitleLineCap <= 0 {
		cfg.TitleLineCap = 3
	}
	if cfg.TitleFontDrop <= 0 {
		cfg.TitleFontDrop = 2.0
	}

	return cfg
}

// Validate checks the settings the HTTP server cannot run without. The
// batch harness does not need them.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OUTLINER_API_KEY is required")
	}
	if c.IndexerURL != "" && c.IndexerAPIKey == "" {
		return fmt.Errorf("INDEXER_API_KEY is required when INDEXER_URL is set")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
