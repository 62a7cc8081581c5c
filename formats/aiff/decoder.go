// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/tensoraudio/audio"
	"github.com/ik5/tensoraudio/internal/pcmint"
)

// newSource wraps a decoder. AIFF samples are always signed.
func newSource(dec pcmint.Reader, bitDepth int) (audio.Source, error) {
	src, err := pcmint.NewSource(dec, bitDepth, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return src, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	return newSource(dec, int(dec.BitDepth))
}
