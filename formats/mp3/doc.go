// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit interleaved stereo, so the Source reports
// two channels whatever the file holds. Use audio.NewChannelMixer to fold it
// to mono before loading a mono TensorAudio:
//
//	src, _ := mp3.Decoder{}.Decode(f)
//	mono, _ := audio.NewChannelMixer(src, 1)
package mp3
