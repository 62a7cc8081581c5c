// SPDX-License-Identifier: EPL-2.0

// Package pcmint adapts go-audio integer PCM decoders to audio.Source.
package pcmint

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/tensoraudio/audio"
)

var (
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrMissingFormat       = errors.New("missing stream format")
)

// Reader is the part of the go-audio wav and aiff decoders a Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM from a Reader and normalises it to [-1, 1).
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	scale      float32
	bias       int
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec. Unsigned 8-bit input (WAV) is re-centred around zero.
func NewSource(dec Reader, bitDepth int, unsigned8 bool) (*Source, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrMissingFormat
	}

	scale, err := Scale(bitDepth)
	if err != nil {
		return nil, err
	}

	s := &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      scale,
	}
	if bitDepth == 8 && unsigned8 {
		s.bias = 128
	}

	return s, nil
}

// Scale returns the full-scale magnitude for a bit depth.
func Scale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8:
		return 1 << 7, nil
	case 16:
		return 1 << 15, nil
	case 24:
		return 1 << 23, nil
	case 32:
		return 1 << 31, nil
	}

	return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}

	return 4096
}

// ReadSamples fills dst with whole frames. len(dst) must be a multiple of
// Channels(); a truncated trailing frame in the stream is dropped.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	short := n < len(dst)
	n -= n % s.channels
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("pcm source: %w", err)
		}

		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v-s.bias) / s.scale
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("pcm source: %w", err)
	}
	if short || errors.Is(err, io.EOF) {
		return n, io.EOF
	}

	return n, nil
}
