// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/tensoraudio/audio"
)

func newRing(t *testing.T, capacity int) *audio.RingBuffer {
	t.Helper()

	rb, err := audio.NewRingBuffer(capacity)
	if err != nil {
		t.Fatalf("NewRingBuffer(%d) error = %v", capacity, err)
	}

	return rb
}

func TestNewRingBuffer_InvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1, -100} {
		_, err := audio.NewRingBuffer(capacity)
		if !errors.Is(err, audio.ErrInvalidArgument) {
			t.Errorf("NewRingBuffer(%d) error = %v, want ErrInvalidArgument", capacity, err)
		}
	}
}

func TestRingBuffer_StartsSilent(t *testing.T) {
	t.Parallel()

	rb := newRing(t, 6)

	if rb.Capacity() != 6 {
		t.Errorf("Capacity() = %d, want 6", rb.Capacity())
	}
	if got := rb.Snapshot().Samples(); !slices.Equal(got, make([]float32, 6)) {
		t.Errorf("Snapshot() = %v, want zeros", got)
	}
}

func TestRingBuffer_Load(t *testing.T) {
	t.Parallel()

	type load struct {
		samples        []float32
		offset, length int
	}

	tests := []struct {
		name     string
		capacity int
		loads    []load
		want     []float32
	}{
		{
			name:     "partial fill is zero padded at the front",
			capacity: 4,
			loads:    []load{{[]float32{2, 0}, 0, 2}},
			want:     []float32{0, 0, 2, 0},
		},
		{
			name:     "second load reaches the end",
			capacity: 4,
			loads:    []load{{[]float32{2, 0}, 0, 2}, {[]float32{2, 3}, 0, 2}},
			want:     []float32{2, 0, 2, 3},
		},
		{
			name:     "overflow keeps the tail of the slice",
			capacity: 4,
			loads:    []load{{[]float32{2, 3, 4, 5, 6, 7, 8, 9}, 1, 6}},
			want:     []float32{5, 6, 7, 8},
		},
		{
			name:     "write crossing the end wraps",
			capacity: 4,
			loads:    []load{{[]float32{1, 2, 3}, 0, 3}, {[]float32{4, 5, 6}, 0, 3}},
			want:     []float32{3, 4, 5, 6},
		},
		{
			name:     "exact capacity load",
			capacity: 3,
			loads:    []load{{[]float32{9, 9}, 0, 2}, {[]float32{1, 2, 3}, 0, 3}},
			want:     []float32{1, 2, 3},
		},
		{
			name:     "empty load is a no-op",
			capacity: 2,
			loads:    []load{{[]float32{7, 8}, 0, 2}, {nil, 0, 0}},
			want:     []float32{7, 8},
		},
		{
			name:     "five values into four slots",
			capacity: 4,
			loads:    []load{{[]float32{1, 2, 3, 4, 5}, 0, 5}},
			want:     []float32{2, 3, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rb := newRing(t, tt.capacity)
			for _, l := range tt.loads {
				if err := rb.Load(l.samples, l.offset, l.length); err != nil {
					t.Fatalf("Load(%v, %d, %d) error = %v", l.samples, l.offset, l.length, err)
				}
			}

			if got := rb.Snapshot().Samples(); !slices.Equal(got, tt.want) {
				t.Errorf("Snapshot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRingBuffer_SequentialLoadsMatchCombined(t *testing.T) {
	t.Parallel()

	const capacity = 5
	stream := make([]float32, 23)
	for i := range stream {
		stream[i] = float32(i + 1)
	}

	for _, chunks := range [][]int{{3, 4, 2, 6, 8}, {1, 1, 1, 20}, {5, 5, 5, 5, 3}, {23}, {7, 9, 7}} {
		rb := newRing(t, capacity)
		start := 0
		for _, n := range chunks {
			if err := rb.Load(stream, start, n); err != nil {
				t.Fatalf("Load(stream, %d, %d) error = %v", start, n, err)
			}
			start += n
		}

		want := stream[len(stream)-capacity:]
		if got := rb.Snapshot().Samples(); !slices.Equal(got, want) {
			t.Errorf("chunks %v: Snapshot() = %v, want %v", chunks, got, want)
		}
	}
}

func TestRingBuffer_OutOfRangeLeavesBufferUnchanged(t *testing.T) {
	t.Parallel()

	rb := newRing(t, 4)
	if err := rb.Load([]float32{1, 2, 3}, 0, 3); err != nil {
		t.Fatal(err)
	}
	before := rb.Snapshot().Samples()

	tests := []struct {
		name           string
		samples        []float32
		offset, length int
	}{
		{"past end", make([]float32, 100), 99, 2},
		{"negative offset", make([]float32, 4), -1, 2},
		{"negative length", make([]float32, 4), 0, -1},
		{"empty source", nil, 0, 1},
	}

	for _, tt := range tests {
		err := rb.Load(tt.samples, tt.offset, tt.length)
		if !errors.Is(err, audio.ErrIndexOutOfRange) {
			t.Errorf("%s: Load() error = %v, want ErrIndexOutOfRange", tt.name, err)
		}
		if got := rb.Snapshot().Samples(); !slices.Equal(got, before) {
			t.Errorf("%s: buffer changed to %v, want %v", tt.name, got, before)
		}
	}

	// The cursor must not have moved either.
	if err := rb.Load([]float32{4}, 0, 1); err != nil {
		t.Fatal(err)
	}
	if got := rb.Snapshot().Samples(); !slices.Equal(got, []float32{1, 2, 3, 4}) {
		t.Errorf("Snapshot() after recovery = %v, want [1 2 3 4]", got)
	}
}

func TestRingBuffer_SnapshotDoesNotAlias(t *testing.T) {
	t.Parallel()

	rb := newRing(t, 3)
	_ = rb.Load([]float32{1, 2, 3}, 0, 3)

	frame := rb.Snapshot()
	samples := frame.Samples()
	samples[0] = 100

	if frame.At(0) != 1 {
		t.Errorf("Frame changed through Samples() copy: %v", frame.At(0))
	}
	if got := rb.Snapshot().At(0); got != 1 {
		t.Errorf("buffer changed through snapshot: %v", got)
	}

	src := []float32{7, 8, 9}
	_ = rb.Load(src, 0, 3)
	src[0] = -5
	if got := rb.Snapshot().At(0); got != 7 {
		t.Errorf("buffer aliases loaded slice: %v", got)
	}
}

func TestRingBuffer_Window(t *testing.T) {
	t.Parallel()

	rb := newRing(t, 5)
	_ = rb.Load([]float32{1, 2, 3, 4, 5, 6, 7}, 0, 7)

	got, err := rb.Window(1, 3)
	if err != nil {
		t.Fatalf("Window(1, 3) error = %v", err)
	}
	if want := []float32{4, 5, 6}; !slices.Equal(got, want) {
		t.Errorf("Window(1, 3) = %v, want %v", got, want)
	}

	if _, err := rb.Window(3, 3); !errors.Is(err, audio.ErrIndexOutOfRange) {
		t.Errorf("Window(3, 3) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestRingBuffer_Clear(t *testing.T) {
	t.Parallel()

	rb := newRing(t, 3)
	_ = rb.Load([]float32{1, 2}, 0, 2)
	rb.Clear()

	if got := rb.Snapshot().Samples(); !slices.Equal(got, []float32{0, 0, 0}) {
		t.Fatalf("Snapshot() after Clear() = %v", got)
	}

	_ = rb.Load([]float32{4}, 0, 1)
	if got := rb.Snapshot().Samples(); !slices.Equal(got, []float32{0, 0, 4}) {
		t.Errorf("Snapshot() = %v, want [0 0 4]", got)
	}
}

func TestRingBuffer_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	rb := newRing(t, 64)
	chunk := make([]float32, 48)
	for i := range chunk {
		chunk[i] = 1
	}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = rb.Load(chunk, 0, len(chunk))
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				if n := rb.Snapshot().Len(); n != 64 {
					t.Errorf("Snapshot().Len() = %d, want 64", n)
				}
			}
		}()
	}
	wg.Wait()

	for i, v := range rb.Snapshot().Samples() {
		if v != 1 {
			t.Fatalf("sample %d = %v, want 1", i, v)
		}
	}
}

func BenchmarkRingBuffer_Load(b *testing.B) {
	rb, _ := audio.NewRingBuffer(15600)
	chunk := make([]float32, 1600)

	b.ReportAllocs()

	for b.Loop() {
		_ = rb.Load(chunk, 0, len(chunk))
	}
}

func BenchmarkRingBuffer_Snapshot(b *testing.B) {
	rb, _ := audio.NewRingBuffer(15600)

	b.ReportAllocs()

	for b.Loop() {
		_ = rb.Snapshot()
	}
}
