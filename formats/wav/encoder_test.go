// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/tensoraudio/audio"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })

	return f
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 64*src.Channels())
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestWriteInt16_RoundTrip(t *testing.T) {
	t.Parallel()

	format, _ := audio.NewFormat(2, 22050)
	samples := []int16{0, 16384, -16384, 32767, -32768, 100}

	f := tempFile(t)
	if err := WriteInt16(f, format, samples); err != nil {
		t.Fatalf("WriteInt16() error = %v", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("decoded %d Hz / %d ch, want 22050 Hz / 2 ch", src.SampleRate(), src.Channels())
	}

	got := readAll(t, src)
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		if want := float32(s) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestWriteInt16_Invalid(t *testing.T) {
	t.Parallel()

	stereo, _ := audio.NewFormat(2, 8000)

	tests := []struct {
		name    string
		format  audio.Format
		samples []int16
	}{
		{name: "zero format", format: audio.Format{}, samples: []int16{1}},
		{name: "partial frame", format: stereo, samples: []int16{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := WriteInt16(tempFile(t), tt.format, tt.samples)
			if !errors.Is(err, audio.ErrInvalidArgument) {
				t.Errorf("WriteInt16() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestEncodeFrame(t *testing.T) {
	t.Parallel()

	format, _ := audio.MonoFormat(16000)
	tensor, _ := audio.NewTensorAudio(format, 4)
	if err := tensor.LoadFloat32s([]float32{0.5, -0.5, 1, -1}); err != nil {
		t.Fatal(err)
	}

	f := tempFile(t)
	if err := EncodeFrame(f, format, tensor.Frame()); err != nil {
		t.Fatalf("EncodeFrame() error = %v", err)
	}
	f.Seek(0, io.SeekStart)

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	got := readAll(t, src)
	want := tensor.Frame().Int16s()
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != float32(want[i])/32768 {
			t.Errorf("sample %d = %v, want %v", i, got[i], float32(want[i])/32768)
		}
	}
}

func BenchmarkWriteInt16(b *testing.B) {
	format, _ := audio.MonoFormat(16000)
	samples := make([]int16, 16000)
	path := filepath.Join(b.TempDir(), "bench.wav")

	b.ReportAllocs()

	for b.Loop() {
		f, err := os.Create(path)
		if err != nil {
			b.Fatal(err)
		}
		if err := WriteInt16(f, format, samples); err != nil {
			b.Fatal(err)
		}
		f.Close()
	}
}
