// SPDX-License-Identifier: EPL-2.0

// Package capture records from the default microphone through miniaudio
// (github.com/gen2brain/malgo) and serves the audio through the
// non-blocking audio.Record contract.
//
// The miniaudio callback appends each period to a bounded queue; reads
// drain it without waiting. When the queue is full the oldest frames are
// dropped, matching what a TensorAudio keeps anyway.
package capture
