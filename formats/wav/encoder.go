// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/tensoraudio/audio"
)

// WriteInt16 writes interleaved 16-bit samples as a PCM WAV in format.
// The length of samples must be a multiple of the channel count.
func WriteInt16(w io.WriteSeeker, format audio.Format, samples []int16) error {
	if format.IsZero() {
		return fmt.Errorf("%w: zero format", audio.ErrInvalidArgument)
	}
	if len(samples)%format.Channels() != 0 {
		return fmt.Errorf("%w: %d samples do not fill %d channels",
			audio.ErrInvalidArgument, len(samples), format.Channels())
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(w, format.SampleRate(), 16, format.Channels(), formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: format.Channels(),
			SampleRate:  format.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising wav: %w", err)
	}

	return nil
}

// EncodeFrame writes a TensorAudio snapshot, oldest sample first.
func EncodeFrame(w io.WriteSeeker, format audio.Format, frame audio.Frame) error {
	return WriteInt16(w, format, frame.Int16s())
}
