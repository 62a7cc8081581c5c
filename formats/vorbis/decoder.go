// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/tensoraudio/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst. oggvorbis counts interleaved
// values, not frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("vorbis: %w", err)
	}
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
