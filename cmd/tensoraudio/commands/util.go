// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/tensoraudio/audio"
	"github.com/ik5/tensoraudio/formats/wav"
)

// printFrame writes a one-line summary of a window.
func printFrame(w io.Writer, format audio.Format, frame audio.Frame) {
	var peak, sum float64
	for i := range frame.Len() {
		v := float64(frame.At(i))
		peak = max(peak, math.Abs(v))
		sum += v * v
	}

	rms := 0.0
	if frame.Len() > 0 {
		rms = math.Sqrt(sum / float64(frame.Len()))
	}

	fmt.Fprintf(w, "format=%s shape=%v peak=%.4f rms=%.4f\n", format, frame.Shape(), peak, rms)
}

// saveFrame writes frame as a 16-bit WAV file when path is set.
func saveFrame(path string, format audio.Format, frame audio.Frame) error {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := wav.EncodeFrame(f, format, frame); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
