// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/tensoraudio/audio"
	"github.com/ik5/tensoraudio/utils"
)

// go-mp3 always decodes to interleaved stereo.
const channels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // samples, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if s.done {
		return 0, io.EOF
	}

	// 16-bit little-endian PCM, two bytes per sample
	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.dec, s.buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
	case err != nil:
		return 0, fmt.Errorf("mp3: %w", err)
	}

	// drop a trailing partial frame
	samples := n / 2
	samples -= samples % channels

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / utils.PCM16FileScale
	}

	if s.done {
		return samples, io.EOF
	}

	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
