// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvSampleRate  = "TENSORAUDIO_SAMPLE_RATE"
	EnvChannels    = "TENSORAUDIO_CHANNELS"
	EnvSampleCount = "TENSORAUDIO_SAMPLE_COUNT"
	EnvLogLevel    = "TENSORAUDIO_LOG_LEVEL"
)

// Load reads the YAML configuration file at path on top of [Default],
// applies environment overrides and validates the result. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
			return nil, err
		}
		return cfg, Validate(cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, Validate(cfg)
}

// LoadFromReader decodes a YAML config from r and validates it. The
// environment is not consulted.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg, err := decode(r)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}

	return cfg, nil
}

// LoadEnvFile loads variables from a .env file into the process
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %q: %w", path, err)
	}

	return nil
}

// ApplyEnv overrides cfg with the TENSORAUDIO_* variables found by lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvSampleRate, &cfg.Audio.SampleRate},
		{EnvChannels, &cfg.Audio.Channels},
		{EnvSampleCount, &cfg.Audio.SampleCount},
	}

	var errs []error
	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q is not an integer", v.key, raw))
			continue
		}
		*v.dst = n
	}

	if raw, ok := lookup(EnvLogLevel); ok && raw != "" {
		cfg.LogLevel = LogLevel(raw)
	}

	return errors.Join(errs...)
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if cfg.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate %d must be greater than 0", cfg.Audio.SampleRate))
	}
	if cfg.Audio.Channels <= 0 {
		errs = append(errs, fmt.Errorf("audio.channels %d must be greater than 0", cfg.Audio.Channels))
	}
	if cfg.Audio.SampleCount <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_count %d must be greater than 0", cfg.Audio.SampleCount))
	}
	if _, err := cfg.Capture.AudioEncoding(); err != nil {
		errs = append(errs, fmt.Errorf("capture.encoding: %w", err))
	}
	if cfg.Capture.BufferFrames < 0 {
		errs = append(errs, fmt.Errorf("capture.buffer_frames %d must not be negative", cfg.Capture.BufferFrames))
	}
	if cfg.Capture.MaxQueuedFrames < 0 {
		errs = append(errs, fmt.Errorf("capture.max_queued_frames %d must not be negative", cfg.Capture.MaxQueuedFrames))
	}

	return errors.Join(errs...)
}
