// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sync"
)

// RingBuffer keeps the most recent Capacity() float samples written to it.
// Older samples are overwritten once it is full. All methods are safe for
// concurrent use.
type RingBuffer struct {
	buf  []float32
	next int // slot the next sample is written to

	mtx *sync.Mutex
}

// NewRingBuffer allocates a zero filled buffer of capacity samples.
func NewRingBuffer(capacity int) (*RingBuffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: ring buffer capacity should be greater than 0, got %d",
			ErrInvalidArgument, capacity)
	}

	return &RingBuffer{
		buf: make([]float32, capacity),
		mtx: &sync.Mutex{},
	}, nil
}

// Capacity returns the fixed number of samples the buffer holds.
func (rb *RingBuffer) Capacity() int { return len(rb.buf) }

// Load writes samples[offset:offset+length] into the buffer. When length is
// larger than the capacity only the last Capacity() samples of the slice are
// kept. Nothing is written if the slice is out of range.
func (rb *RingBuffer) Load(samples []float32, offset, length int) error {
	if err := checkRange(offset, length, len(samples)); err != nil {
		return err
	}

	rb.mtx.Lock()
	defer rb.mtx.Unlock()

	size := len(rb.buf)
	if length > size {
		offset += length - size
		length = size
	}

	if rb.next+length < size {
		copy(rb.buf[rb.next:], samples[offset:offset+length])
	} else {
		tail := size - rb.next
		copy(rb.buf[rb.next:], samples[offset:offset+tail])
		copy(rb.buf, samples[offset+tail:offset+length])
	}

	rb.next = (rb.next + length) % size

	return nil
}

// Snapshot returns the buffer contents ordered oldest to newest.
func (rb *RingBuffer) Snapshot() Frame {
	rb.mtx.Lock()
	defer rb.mtx.Unlock()

	return Frame{samples: rb.ordered()}
}

// Window returns size samples of the oldest-first view starting at offset.
func (rb *RingBuffer) Window(offset, size int) ([]float32, error) {
	if err := checkRange(offset, size, len(rb.buf)); err != nil {
		return nil, err
	}

	rb.mtx.Lock()
	defer rb.mtx.Unlock()

	return rb.ordered()[offset : offset+size], nil
}

// Clear zeroes the buffer and rewinds the write cursor.
func (rb *RingBuffer) Clear() {
	rb.mtx.Lock()
	defer rb.mtx.Unlock()

	clear(rb.buf)
	rb.next = 0
}

// ordered must be called with rb.mtx held.
func (rb *RingBuffer) ordered() []float32 {
	out := make([]float32, len(rb.buf))
	n := copy(out, rb.buf[rb.next:])
	copy(out[n:], rb.buf[:rb.next])

	return out
}

func checkRange(offset, length, total int) error {
	if offset < 0 || length < 0 || offset+length > total {
		return fmt.Errorf("%w: offset (%d) + size (%d) should <= len (%d)",
			ErrIndexOutOfRange, offset, length, total)
	}

	return nil
}
