// SPDX-License-Identifier: EPL-2.0

// Package config holds the tensoraudio command line configuration.
package config

import (
	"fmt"

	"github.com/ik5/tensoraudio/audio"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}

	return false
}

// Encoding names accepted for capture.encoding.
const (
	EncodingFloat = "float"
	EncodingPCM16 = "pcm16"
)

// Config is the root configuration.
type Config struct {
	LogLevel LogLevel      `yaml:"log_level"`
	Audio    AudioConfig   `yaml:"audio"`
	Capture  CaptureConfig `yaml:"capture"`
}

// AudioConfig describes the tensor a model expects.
type AudioConfig struct {
	SampleRate  int `yaml:"sample_rate"`
	Channels    int `yaml:"channels"`
	SampleCount int `yaml:"sample_count"`
}

// CaptureConfig tunes the microphone device.
type CaptureConfig struct {
	Encoding        string `yaml:"encoding"`
	BufferFrames    int    `yaml:"buffer_frames"`
	MaxQueuedFrames int    `yaml:"max_queued_frames"`
}

// Default returns a configuration for a 16kHz mono model taking 15600
// samples, a common audio classifier input.
func Default() *Config {
	return &Config{
		LogLevel: LogInfo,
		Audio: AudioConfig{
			SampleRate:  16000,
			Channels:    1,
			SampleCount: 15600,
		},
		Capture: CaptureConfig{
			Encoding: EncodingFloat,
		},
	}
}

// Format returns the tensor format.
func (c *Config) Format() (audio.Format, error) {
	return audio.NewFormat(c.Audio.Channels, c.Audio.SampleRate)
}

// AudioEncoding maps capture.encoding to an audio.Encoding.
func (c CaptureConfig) AudioEncoding() (audio.Encoding, error) {
	switch c.Encoding {
	case "", EncodingFloat:
		return audio.EncodingPCMFloat, nil
	case EncodingPCM16:
		return audio.EncodingPCM16, nil
	}

	return audio.EncodingInvalid, fmt.Errorf("%w: %q", audio.ErrUnsupportedEncoding, c.Encoding)
}
