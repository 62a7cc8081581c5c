// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/tensoraudio/utils"

// Frame is an immutable, oldest-first copy of a ring buffer's contents.
// Values are normalised PCM float, nominally in [-1, 1].
type Frame struct {
	samples []float32
}

// Len returns the number of float values in the frame.
func (f Frame) Len() int { return len(f.samples) }

// At returns the i-th value, 0 being the oldest.
func (f Frame) At(i int) float32 { return f.samples[i] }

// Samples returns a copy of the frame's values.
func (f Frame) Samples() []float32 {
	out := make([]float32, len(f.samples))
	copy(out, f.samples)

	return out
}

// Shape returns the model input shape for the frame: a batch of one.
func (f Frame) Shape() [2]int { return [2]int{1, len(f.samples)} }

// Int16s converts the frame to 16-bit PCM, clamping values outside [-1, 1].
func (f Frame) Int16s() []int16 {
	out := make([]int16, len(f.samples))
	utils.Float32sToInt16s(out, f.samples)

	return out
}
