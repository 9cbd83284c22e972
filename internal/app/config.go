package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Synthesis defaults
	DefaultVoice string
	StrictVoices bool
	Timeout      time.Duration
	MaxRetries   int
	CacheSize    int

	// Optional persistent cache
	DatabaseURL string

	// Error monitoring
	SentryDSN string
}

func LoadConfigFromEnv() Config {
	timeout, err := time.ParseDuration(getenv("EDGEVOX_TIMEOUT", "20s"))
	if err != nil {
		timeout = 20 * time.Second
	}

	return Config{
		DefaultVoice: getenv("EDGEVOX_VOICE", "en-US-JennyNeural"),
		StrictVoices: getenv("EDGEVOX_STRICT_VOICES", "") == "true",
		Timeout:      timeout,
		MaxRetries:   retriesFromEnv(),
		CacheSize:    getenvIntClamped("EDGEVOX_CACHE_SIZE", 128, 1, 10000),

		DatabaseURL: getenv("DATABASE_URL", ""),
		SentryDSN:   getenv("SENTRY_DSN", ""),
	}
}

// retriesFromEnv reads EDGEVOX_MAX_RETRIES, where 0 means no retries. The
// client encodes "no retries" as a negative value because its zero value
// selects the default, so 0 is translated here.
func retriesFromEnv() int {
	n := getenvIntClamped("EDGEVOX_MAX_RETRIES", 2, 0, 10)
	if n == 0 {
		return -1
	}
	return n
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getenvIntClamped reads an integer from the environment, falling back to
// def on absence or parse failure and clamping into [min, max].
func getenvIntClamped(k string, def, min, max int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
