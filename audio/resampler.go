// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/tensoraudio/utils"
)

// Resampler streams src at a new sample rate using Catmull-Rom interpolation
// over a four frame history. Channel count is preserved. When downsampling
// the input goes through a one-pole low-pass filter first.
type Resampler struct {
	src      Source
	rate     int
	channels int
	step     float64 // source frames per output frame

	// hist[1] and hist[2] bracket the output position; real marks frames
	// that came from src rather than edge padding.
	hist   [4][]float32
	real   [4]bool
	pos    float64
	primed bool

	in           []float32
	inPos, inLen int
	srcDone      bool

	smooth []float32
	alpha  float32
	warm   bool
}

// NewResampler wraps src so it produces dstRate frames per second.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 {
		return nil, fmt.Errorf("%w: target rate should be greater than 0, got %d",
			ErrInvalidArgument, dstRate)
	}
	if src.SampleRate() <= 0 || src.Channels() <= 0 {
		return nil, fmt.Errorf("%w: source reports %dHz/%dch",
			ErrInvalidArgument, src.SampleRate(), src.Channels())
	}

	channels := src.Channels()

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
		in:       make([]float32, 1024*channels),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}
	if r.step > 1 {
		r.smooth = make([]float32, channels)
		r.alpha = float32(1 / r.step)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}

	return nil
}

// pull copies the next source frame into frame. It reports false once the
// source is exhausted. A read that yields nothing and no error also counts
// as exhaustion.
func (r *Resampler) pull(frame []float32) (bool, error) {
	for r.inPos >= r.inLen {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("resampler: %w", err)
		}
		if err != nil || n == 0 {
			r.srcDone = true
		}
	}

	copy(frame, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.smooth != nil {
		if !r.warm {
			copy(r.smooth, frame)
			r.warm = true
		}
		for c := range frame {
			r.smooth[c] += r.alpha * (frame[c] - r.smooth[c])
			frame[c] = r.smooth[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	ok, err := r.pull(r.hist[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	r.real[1] = true
	copy(r.hist[0], r.hist[1])

	for i := 2; i < len(r.hist); i++ {
		ok, err := r.pull(r.hist[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.hist[i], r.hist[i-1])
		}
		r.real[i] = ok
	}

	r.primed = true

	return nil
}

func (r *Resampler) advance() error {
	r.hist[0], r.hist[1], r.hist[2], r.hist[3] = r.hist[1], r.hist[2], r.hist[3], r.hist[0]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]

	ok, err := r.pull(r.hist[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.hist[3], r.hist[2])
	}
	r.real[3] = ok

	return nil
}

// ReadSamples fills dst with resampled frames. len(dst) must be a multiple
// of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			if err := r.advance(); err != nil {
				return written, err
			}
			r.pos--
		}

		if !r.real[1] || (r.pos > 0 && !r.real[2]) {
			return written, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(
				r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written += r.channels
		r.pos += r.step
	}

	return written, nil
}
