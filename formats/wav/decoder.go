// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/tensoraudio/audio"
	"github.com/ik5/tensoraudio/internal/pcmint"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// Decode reads the WAV header from r and returns a Source over its PCM data.
// Inputs that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	src, err := pcmint.NewSource(dec, int(dec.BitDepth), true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	return src, nil
}
