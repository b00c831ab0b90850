package main

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"log/slog"

	"golang.org/x/crypto/sha3"

	"github.com/nem2030/nem2030/crypto/ed25519"
)

// Config holds the command-line settings.
type Config struct {
	Verbosity int
	LogFormat string
	Metrics   bool
	Hasher    string
	CacheSize int
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Verbosity: 3,
		LogFormat: "text",
		Hasher:    "sha512",
		CacheSize: ed25519.DefaultPointCacheSize,
	}
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 5 {
		return fmt.Errorf("config: verbosity %d out of range 0-5", c.Verbosity)
	}
	switch c.LogFormat {
	case "text", "json", "color":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	switch c.Hasher {
	case "sha512", "keccak512":
	default:
		return fmt.Errorf("config: unknown hasher %q", c.Hasher)
	}
	if c.CacheSize <= 0 {
		return errors.New("config: cache size must be positive")
	}
	return nil
}

// NewHash returns the constructor for the configured 512-bit hash.
func (c *Config) NewHash() func() hash.Hash {
	if c.Hasher == "keccak512" {
		return sha3.NewLegacyKeccak512
	}
	return sha512.New
}

// VerbosityToLogLevel maps 0 (silent) through 5 (trace) to an slog level.
func VerbosityToLogLevel(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelError + 8
	case v == 1:
		return slog.LevelError
	case v == 2:
		return slog.LevelWarn
	case v == 3:
		return slog.LevelInfo
	case v == 4:
		return slog.LevelDebug
	default:
		return slog.LevelDebug - 4
	}
}
