// SPDX-License-Identifier: EPL-2.0

package pcmint

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/tensoraudio/audio"
)

// fakeReader serves data in PCMBuffer-sized chunks.
type fakeReader struct {
	format *goaudio.Format
	data   []int
	pos    int
	err    error
}

func (f *fakeReader) Format() *goaudio.Format { return f.format }

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n

	return n, nil
}

func mono(data ...int) *fakeReader {
	return &fakeReader{
		format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		data:   data,
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth int
		want  float32
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
	}

	for _, tt := range tests {
		got, err := Scale(tt.depth)
		if err != nil || got != tt.want {
			t.Errorf("Scale(%d) = %v, %v, want %v", tt.depth, got, err, tt.want)
		}
	}

	if _, err := Scale(12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Scale(12) error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestSource_Normalises(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		depth    int
		unsigned bool
		data     []int
		want     []float32
	}{
		{name: "16-bit", depth: 16, data: []int{16384, -32768, 0}, want: []float32{0.5, -1, 0}},
		{name: "signed 8-bit", depth: 8, data: []int{64, -128}, want: []float32{0.5, -1}},
		{name: "unsigned 8-bit", depth: 8, unsigned: true, data: []int{192, 0, 128}, want: []float32{0.5, -1, 0}},
		{name: "24-bit", depth: 24, data: []int{-4194304}, want: []float32{-0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := NewSource(mono(tt.data...), tt.depth, tt.unsigned)
			if err != nil {
				t.Fatal(err)
			}

			dst := make([]float32, 8)
			n, err := src.ReadSamples(dst)
			if !errors.Is(err, io.EOF) {
				t.Errorf("short read error = %v, want io.EOF", err)
			}
			if n != len(tt.want) {
				t.Fatalf("n = %d, want %d", n, len(tt.want))
			}
			for i, w := range tt.want {
				if dst[i] != w {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
				}
			}
		})
	}
}

func TestSource_FullThenEOF(t *testing.T) {
	t.Parallel()

	src, _ := NewSource(mono(1, 2, 3, 4), 16, false)
	dst := make([]float32, 4)

	if n, err := src.ReadSamples(dst); n != 4 || err != nil {
		t.Fatalf("first read = %d, %v", n, err)
	}
	if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("second read = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt chunk")
	r := mono(1)
	r.err = boom

	src, _ := NewSource(r, 16, false)
	if _, err := src.ReadSamples(make([]float32, 2)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestNewSource_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := NewSource(&fakeReader{}, 16, false); !errors.Is(err, ErrMissingFormat) {
		t.Errorf("nil format error = %v, want ErrMissingFormat", err)
	}
	if _, err := NewSource(mono(), 20, false); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("20-bit error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func stereo(data ...int) *fakeReader {
	return &fakeReader{
		format: &goaudio.Format{NumChannels: 2, SampleRate: 8000},
		data:   data,
	}
}

func TestSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := stereo(1, 2, 3, 4)
	src, _ := NewSource(r, 16, false)

	n, err := src.ReadSamples(make([]float32, 3))
	if n != 0 || !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() = %d, %v, want 0, ErrInvalidDstSize", n, err)
	}
	if r.pos != 0 {
		t.Errorf("decoder advanced to %d on a rejected read", r.pos)
	}
}

func TestSource_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	src, _ := NewSource(stereo(1<<14, -1<<14, 1<<14), 16, false)
	dst := make([]float32, 4)

	n, err := src.ReadSamples(dst)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() = %d, %v, want 2, io.EOF", n, err)
	}
	if dst[0] != 0.5 || dst[1] != -0.5 {
		t.Errorf("frame = %v, want [0.5 -0.5]", dst[:2])
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	r := &fakeReader{format: &goaudio.Format{NumChannels: 2, SampleRate: 44100}}
	src, _ := NewSource(r, 16, false)

	if src.SampleRate() != 44100 || src.Channels() != 2 || src.BufSize() != 4096 {
		t.Errorf("metadata = %d Hz, %d ch, buf %d", src.SampleRate(), src.Channels(), src.BufSize())
	}
}
