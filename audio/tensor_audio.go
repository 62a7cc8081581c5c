// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/tensoraudio/utils"
)

// TensorAudio is a fixed window of interleaved audio in a given Format,
// ready to be handed to a model as a float tensor. It accepts PCM float and
// PCM 16-bit input; 16-bit samples are normalised with utils.Int16ToFloat32.
type TensorAudio struct {
	format      Format
	sampleCount int
	buffer      *RingBuffer
}

// NewTensorAudio creates a TensorAudio holding sampleCount frames, i.e.
// sampleCount * format.Channels() float values.
func NewTensorAudio(format Format, sampleCount int) (*TensorAudio, error) {
	if format.IsZero() {
		return nil, fmt.Errorf("%w: format is not initialised", ErrInvalidArgument)
	}
	if sampleCount <= 0 {
		return nil, fmt.Errorf("%w: sample count should be greater than 0, got %d",
			ErrInvalidArgument, sampleCount)
	}

	buffer, err := NewRingBuffer(sampleCount * format.Channels())
	if err != nil {
		return nil, err
	}

	return &TensorAudio{
		format:      format,
		sampleCount: sampleCount,
		buffer:      buffer,
	}, nil
}

func (t *TensorAudio) Format() Format { return t.format }

// SampleCount returns the number of frames (per channel samples) held.
func (t *TensorAudio) SampleCount() int { return t.sampleCount }

// Capacity returns the number of float values held.
func (t *TensorAudio) Capacity() int { return t.buffer.Capacity() }

// Frame returns the current oldest-first contents.
func (t *TensorAudio) Frame() Frame { return t.buffer.Snapshot() }

// Clear fills the window with silence.
func (t *TensorAudio) Clear() { t.buffer.Clear() }

// LoadFloat32 stores src[offset:offset+length], interleaved PCM float, in
// the window. length must be a multiple of the channel count.
func (t *TensorAudio) LoadFloat32(src []float32, offset, length int) error {
	if length%t.format.Channels() != 0 {
		return fmt.Errorf("%w: size (%d) needs to be a multiple of the number of channels (%d)",
			ErrInvalidArgument, length, t.format.Channels())
	}

	return t.buffer.Load(src, offset, length)
}

// LoadFloat32s stores all of src.
func (t *TensorAudio) LoadFloat32s(src []float32) error {
	return t.LoadFloat32(src, 0, len(src))
}

// LoadInt16 converts src[offset:offset+length], interleaved PCM 16-bit, to
// PCM float and stores it.
func (t *TensorAudio) LoadInt16(src []int16, offset, length int) error {
	if err := checkRange(offset, length, len(src)); err != nil {
		return err
	}

	converted := make([]float32, length)
	utils.Int16sToFloat32s(converted, src[offset:offset+length])

	return t.LoadFloat32s(converted)
}

// LoadInt16s converts and stores all of src.
func (t *TensorAudio) LoadInt16s(src []int16) error {
	return t.LoadInt16(src, 0, len(src))
}
