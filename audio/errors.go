// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidArgument reports a malformed format, size or sample count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange reports an (offset, length) slice outside the source.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrIncompatibleFormat reports a record whose format differs from the tensor's.
	ErrIncompatibleFormat = errors.New("incompatible audio format")

	// ErrUnsupportedEncoding reports a record encoding other than PCM float or PCM 16-bit.
	ErrUnsupportedEncoding = errors.New("unsupported encoding, requires PCM 16-bit or PCM float")

	// ErrCaptureFailure is matched by every *CaptureError.
	ErrCaptureFailure = errors.New("capture failure")

	// ErrUseAfterClose reports use of a released resource.
	ErrUseAfterClose = errors.New("use after close")
)
