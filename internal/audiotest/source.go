// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides fake sources and records for tests.
package audiotest

import (
	"io"
	"math"
)

// Source generates frames from a waveform function. It satisfies
// audio.Source.
type Source struct {
	sampleRate int
	channels   int
	frames     int // frames to generate in total
	pos        int // frames generated so far
	wave       func(frame, channel int) float32
	closed     bool
}

// NewSource returns a Source producing frames frames of wave.
func NewSource(sampleRate, channels, frames int, wave func(frame, channel int) float32) *Source {
	return &Source{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		wave:       wave,
	}
}

// NewSilence produces zeros.
func NewSilence(sampleRate, channels, frames int) *Source {
	return NewConstant(sampleRate, channels, frames, 0)
}

// NewConstant produces value on every channel.
func NewConstant(sampleRate, channels, frames int, value float32) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSine produces a sine wave of frequency Hz on every channel.
func NewSine(sampleRate, channels, frames int, frequency float64) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// FromSamples replays interleaved samples; a trailing partial frame is dropped.
func FromSamples(sampleRate, channels int, samples []float32) *Source {
	return NewSource(sampleRate, channels, len(samples)/channels, func(frame, channel int) float32 {
		return samples[frame*channels+channel]
	})
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

// Reset rewinds the source to its first frame.
func (s *Source) Reset() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	count := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range count {
		for c := range s.channels {
			dst[f*s.channels+c] = s.wave(s.pos+f, c)
		}
	}
	s.pos += count

	if s.pos >= s.frames {
		return count * s.channels, io.EOF
	}

	return count * s.channels, nil
}
