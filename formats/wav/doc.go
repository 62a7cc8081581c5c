// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// The Decoder accepts integer PCM at 8, 16, 24 or 32 bits and yields an
// audio.Source of interleaved float32 samples in [-1, 1). 8-bit WAV data is
// unsigned and is re-centred on zero.
//
//	f, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// WriteInt16 and EncodeFrame produce 16-bit PCM files. EncodeFrame is the
// usual way to dump the contents of a TensorAudio for listening:
//
//	out, _ := os.Create("window.wav")
//	err := wav.EncodeFrame(out, tensor.Format(), tensor.Frame())
//
// The encoder seeks back to patch the header sizes, so the writer must
// implement io.WriteSeeker.
package wav
