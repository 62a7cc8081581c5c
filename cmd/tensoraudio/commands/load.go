// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"

	"github.com/ik5/tensoraudio"
	"github.com/ik5/tensoraudio/audio"
)

type loadOptions struct {
	samples  int
	offset   int
	resample bool
	out      string
}

func newLoadCmd(a *app) *cobra.Command {
	opts := &loadOptions{}

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a window from an audio file",
		Long: `Load a window from an audio file.

By default the window keeps the file's own format and holds up to --samples
frames starting --offset frames in. With --resample the whole file is
streamed into a window in the configured format, so the window ends up
holding the last audio.sample_count frames.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				tensor *audio.TensorAudio
				err    error
			)
			if opts.resample {
				tensor, err = a.feedFile(args[0])
			} else {
				samples := opts.samples
				if samples <= 0 {
					samples = a.cfg.Audio.SampleCount
				}
				tensor, err = tensoraudio.FromFile(args[0], samples, opts.offset)
			}
			if err != nil {
				return err
			}

			printFrame(cmd.OutOrStdout(), tensor.Format(), tensor.Frame())

			return saveFrame(opts.out, tensor.Format(), tensor.Frame())
		},
	}

	cmd.Flags().IntVar(&opts.samples, "samples", 0, "frames to load (default audio.sample_count)")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "frames to skip at the start of the file")
	cmd.Flags().BoolVar(&opts.resample, "resample", false, "convert to the configured format")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the window to a WAV file")

	return cmd
}

func (a *app) feedFile(path string) (*audio.TensorAudio, error) {
	format, err := a.cfg.Format()
	if err != nil {
		return nil, err
	}
	tensor, err := audio.NewTensorAudio(format, a.cfg.Audio.SampleCount)
	if err != nil {
		return nil, err
	}

	src, err := tensoraudio.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	frames, err := tensoraudio.Feed(tensor, src, 4096*format.Channels())
	if err != nil {
		return nil, err
	}
	a.logger.Debug("fed file", "path", path, "frames", frames, "format", format.String())

	return tensor, nil
}
