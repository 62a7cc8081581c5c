// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/tensoraudio/audio"
	"github.com/ik5/tensoraudio/capture"
)

type listenOptions struct {
	duration time.Duration
	out      string
}

func newListenCmd(a *app) *cobra.Command {
	opts := &listenOptions{}

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Record a window from the default microphone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			tensor, err := a.listen(ctx, opts.duration)
			if err != nil {
				return err
			}

			printFrame(cmd.OutOrStdout(), tensor.Format(), tensor.Frame())

			return saveFrame(opts.out, tensor.Format(), tensor.Frame())
		},
	}

	cmd.Flags().DurationVarP(&opts.duration, "duration", "d", time.Second, "how long to record")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the window to a WAV file")

	return cmd
}

func (a *app) listen(ctx context.Context, duration time.Duration) (*audio.TensorAudio, error) {
	format, err := a.cfg.Format()
	if err != nil {
		return nil, err
	}
	encoding, err := a.cfg.Capture.AudioEncoding()
	if err != nil {
		return nil, err
	}

	tensor, err := audio.NewTensorAudio(format, a.cfg.Audio.SampleCount)
	if err != nil {
		return nil, err
	}

	dev, err := capture.Open(capture.Config{
		Format:          format,
		Encoding:        encoding,
		BufferFrames:    a.cfg.Capture.BufferFrames,
		MaxQueuedFrames: a.cfg.Capture.MaxQueuedFrames,
	}, a.logger)
	if err != nil {
		return nil, err
	}
	defer dev.Close()

	if err := dev.Start(); err != nil {
		return nil, err
	}

	return tensor, a.pump(ctx, tensor, dev, duration)
}

// pump drains rec into tensor every buffer period until duration elapses.
func (a *app) pump(ctx context.Context, tensor *audio.TensorAudio, rec audio.Record, duration time.Duration) error {
	period := time.Duration(rec.BufferSizeInFrames()) * time.Second / time.Duration(rec.Format().SampleRate())
	ticker := time.NewTicker(max(period/2, 10*time.Millisecond))
	defer ticker.Stop()

	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	total := 0
	for {
		select {
		case <-ctx.Done():
			// pick up whatever arrived last
			n, err := tensor.LoadRecord(rec)
			if err != nil {
				return err
			}
			a.logger.Info("recording finished", "samples", total+n)
			return nil
		case <-ticker.C:
			n, err := tensor.LoadRecord(rec)
			if err != nil {
				return err
			}
			total += n
		}
	}
}
