// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// DefaultChannels is the channel count used by MonoFormat.
const DefaultChannels = 1

// Format describes interleaved audio: how many channels and at what rate.
// The zero value is not a valid format; build one with NewFormat.
type Format struct {
	channels   int
	sampleRate int
}

// NewFormat validates and returns a Format.
func NewFormat(channels, sampleRate int) (Format, error) {
	if channels <= 0 {
		return Format{}, fmt.Errorf("%w: number of channels should be greater than 0, got %d",
			ErrInvalidArgument, channels)
	}
	if sampleRate <= 0 {
		return Format{}, fmt.Errorf("%w: sample rate should be greater than 0, got %d",
			ErrInvalidArgument, sampleRate)
	}

	return Format{channels: channels, sampleRate: sampleRate}, nil
}

// MonoFormat returns a single channel Format at sampleRate.
func MonoFormat(sampleRate int) (Format, error) {
	return NewFormat(DefaultChannels, sampleRate)
}

func (f Format) Channels() int   { return f.channels }
func (f Format) SampleRate() int { return f.sampleRate }

// IsZero reports whether f was never built through NewFormat.
func (f Format) IsZero() bool { return f == Format{} }

func (f Format) String() string {
	return fmt.Sprintf("%dHz/%dch", f.sampleRate, f.channels)
}
