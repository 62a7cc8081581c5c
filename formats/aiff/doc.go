// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Signed integer PCM at 8, 16, 24 or 32 bits is supported, in any channel
// count and sample rate. Samples come out as interleaved float32 in [-1, 1).
//
//	f, _ := os.Open("speech.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not FORM/AIFF
//	}
//
// Readers that cannot seek are buffered in memory first.
package aiff
