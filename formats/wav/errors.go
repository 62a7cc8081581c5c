// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a header without a usable stream format.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrOnlyPCMSupported indicates a compressed or floating point WAV.
	ErrOnlyPCMSupported = errors.New("only integer PCM WAV is supported")
)
