// SPDX-License-Identifier: EPL-2.0

// Package tensoraudio fills fixed-size audio windows for on-device audio
// models.
//
// The core type is audio.TensorAudio: a ring buffer of float32 samples sized
// to a model's input, which always holds the newest sampleCount frames it
// was given. It can be loaded from float or 16-bit slices, from a live
// audio.Record such as capture.Device, or from any decoded audio.Source.
//
// # Quick Start
//
// Load the first second of a file into a tensor shaped like the file:
//
//	tensor, err := tensoraudio.FromFile("speech.wav", 16000, 0)
//	if err != nil {
//	    return err
//	}
//	frame := tensor.Frame() // oldest sample first
//
// Stream a file of any rate and channel layout into an existing tensor:
//
//	format, _ := audio.MonoFormat(16000)
//	tensor, _ := audio.NewTensorAudio(format, 15600)
//
//	src, _ := tensoraudio.Open("music.mp3")
//	defer src.Close()
//	frames, err := tensoraudio.Feed(tensor, src, 4096)
//
// # Supported Formats
//
// DefaultRegistry decodes files by extension:
//   - WAV (integer PCM) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Live Capture
//
// capture.Device serves a microphone through the non-blocking audio.Record
// contract:
//
//	dev, _ := capture.Open(capture.Config{Format: format}, logger)
//	defer dev.Close()
//	_ = dev.Start()
//	n, err := tensor.LoadRecord(dev)
//
// A failed read is reported as an *audio.CaptureError carrying the status.
package tensoraudio
