// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

// Encoding is the sample encoding a Record delivers.
type Encoding int

const (
	EncodingInvalid Encoding = iota
	EncodingPCM16
	EncodingPCM8
	EncodingPCMFloat
	EncodingPCM24Packed
	EncodingPCM32
)

func (e Encoding) String() string {
	switch e {
	case EncodingPCM16:
		return "pcm16"
	case EncodingPCM8:
		return "pcm8"
	case EncodingPCMFloat:
		return "pcm_float"
	case EncodingPCM24Packed:
		return "pcm24_packed"
	case EncodingPCM32:
		return "pcm32"
	}

	return fmt.Sprintf("encoding(%d)", int(e))
}

// ReadStatus is a negative value returned by a Record read in place of a
// sample count.
type ReadStatus int

const (
	ReadError                 ReadStatus = -1
	ReadErrorBadValue         ReadStatus = -2
	ReadErrorInvalidOperation ReadStatus = -3
	ReadErrorDeadObject       ReadStatus = -6
)

func (s ReadStatus) String() string {
	switch s {
	case ReadError:
		return "ERROR"
	case ReadErrorBadValue:
		return "ERROR_BAD_VALUE"
	case ReadErrorInvalidOperation:
		return "ERROR_INVALID_OPERATION"
	case ReadErrorDeadObject:
		return "ERROR_DEAD_OBJECT"
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// fatal reports whether s is one of the known error statuses.
func (s ReadStatus) fatal() bool {
	switch s {
	case ReadError, ReadErrorBadValue, ReadErrorInvalidOperation, ReadErrorDeadObject:
		return true
	}

	return false
}

// CaptureError carries the status of a failed Record read.
type CaptureError struct {
	Status ReadStatus
}

func (e *CaptureError) Error() string {
	return "capture failure: record read returned " + e.Status.String()
}

func (e *CaptureError) Is(target error) bool { return target == ErrCaptureFailure }

// Record is a live capture source, such as a microphone. Reads never block:
// they return the number of samples copied into dst (possibly 0) or a
// negative ReadStatus.
type Record interface {
	Format() Format
	Encoding() Encoding
	// BufferSizeInFrames is the most frames a single read can deliver.
	BufferSizeInFrames() int
	ReadFloat32(dst []float32) int
	ReadInt16(dst []int16) int
}

// LoadRecord pulls whatever r has available into the window and returns the
// number of values loaded. A poll without new data returns 0 and no error.
func (t *TensorAudio) LoadRecord(r Record) (int, error) {
	if r.Format() != t.format {
		return 0, fmt.Errorf("%w: record is %s, tensor expects %s",
			ErrIncompatibleFormat, r.Format(), t.format)
	}

	size := r.Format().Channels() * r.BufferSizeInFrames()

	var n int
	switch r.Encoding() {
	case EncodingPCMFloat:
		data := make([]float32, size)
		n = r.ReadFloat32(data)
		if n > 0 {
			if err := t.LoadFloat32(data, 0, n); err != nil {
				return 0, err
			}
			return n, nil
		}
	case EncodingPCM16:
		data := make([]int16, size)
		n = r.ReadInt16(data)
		if n > 0 {
			if err := t.LoadInt16(data, 0, n); err != nil {
				return 0, err
			}
			return n, nil
		}
	default:
		return 0, fmt.Errorf("%w: got %s", ErrUnsupportedEncoding, r.Encoding())
	}

	if status := ReadStatus(n); status.fatal() {
		return 0, &CaptureError{Status: status}
	}

	return 0, nil
}

// IsCaptureStatus reports whether err is a capture failure with the given status.
func IsCaptureStatus(err error, status ReadStatus) bool {
	var ce *CaptureError
	return errors.As(err, &ce) && ce.Status == status
}
