// SPDX-License-Identifier: EPL-2.0

// Package audio holds the in-memory side of model audio input.
//
// # Tensor Audio
//
// A TensorAudio is a fixed window over an unbounded stream of interleaved
// samples. It keeps the most recent SampleCount() frames of a Format and
// hands them out oldest first:
//
//	format, _ := audio.NewFormat(1, 16000)
//	tensor, _ := audio.NewTensorAudio(format, 15600)
//
//	_ = tensor.LoadInt16s(pcm)     // 16-bit PCM, scaled by 1/32767
//	_ = tensor.LoadFloat32s(floats) // PCM float in [-1, 1]
//
//	frame := tensor.Frame()         // len == 15600, oldest sample first
//
// Loads larger than the window keep only their tail. Loads must be a whole
// number of frames; a failing load never changes the window.
//
// # Ring Buffer
//
// RingBuffer is the storage behind TensorAudio. It never grows, and Snapshot
// always returns a copy, so a Frame can be kept or modified freely.
//
// # Live Capture
//
// A Record is a non-blocking capture source such as a microphone (see the
// capture package). TensorAudio.LoadRecord polls it once:
//
//	for range ticker.C {
//	    n, err := tensor.LoadRecord(mic)
//	    if err != nil {
//	        return err // format mismatch, bad encoding or a dead device
//	    }
//	    if n == 0 {
//	        continue // nothing new yet
//	    }
//	    classify(tensor.Frame())
//	}
//
// # Streams
//
// Decoded files are Sources. Resampler and ChannelMixer convert a Source to
// the rate and channel count a tensor expects, and Registry picks a Decoder
// by container name.
//
// # Errors
//
// Failures wrap one of the sentinel errors (ErrInvalidArgument,
// ErrIndexOutOfRange, ErrIncompatibleFormat, ErrUnsupportedEncoding,
// ErrCaptureFailure) and are meant to be checked with errors.Is. A failed
// capture read is a *CaptureError carrying the ReadStatus.
package audio
