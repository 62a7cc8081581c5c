// SPDX-License-Identifier: EPL-2.0

// Command tensoraudio inspects audio files and fills model-sized audio
// windows from files or the microphone.
//
// Usage:
//
//	tensoraudio [flags] <command> [args]
//
// Commands:
//
//	info    - show the format and length of audio files
//	load    - load a window from a file, optionally saving it as WAV
//	listen  - record a window from the default microphone
package main

import (
	"fmt"
	"os"

	"github.com/ik5/tensoraudio/cmd/tensoraudio/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
