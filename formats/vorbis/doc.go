// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// The Source reports the channel count and sample rate from the stream
// header and yields interleaved float32 samples as decoded.
package vorbis
