// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/tensoraudio"
	"github.com/ik5/tensoraudio/audio"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>...",
		Short: "Show format and length of audio files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := a.info(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) info(w io.Writer, path string) error {
	src, err := tensoraudio.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	format, err := audio.SourceFormat(src)
	if err != nil {
		return err
	}

	frames, err := countFrames(src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	duration := time.Duration(float64(frames) / float64(format.SampleRate()) * float64(time.Second))
	fmt.Fprintf(w, "%s: format=%s frames=%d duration=%s\n", path, format, frames, duration.Round(time.Millisecond))
	a.logger.Debug("inspected file", "path", path, "frames", frames)

	return nil
}

func countFrames(src audio.Source) (int, error) {
	ch := src.Channels()
	buf := make([]float32, max(src.BufSize()/ch, 1)*ch)

	total := 0
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			return total / ch, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
