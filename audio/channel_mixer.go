// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer converts a Source to another channel count: many to mono by
// averaging, mono to many by duplication, or unchanged.
type ChannelMixer struct {
	src      Source
	channels int
	tmp      []float32
}

func NewChannelMixer(src Source, channels int) (*ChannelMixer, error) {
	in := src.Channels()
	if channels <= 0 || (channels != in && channels != 1 && in != 1) {
		return nil, fmt.Errorf("%w: cannot mix %d channels into %d",
			ErrInvalidArgument, in, channels)
	}

	return &ChannelMixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 0, 4096),
	}, nil
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.channels }
func (m *ChannelMixer) BufSize() int    { return m.src.BufSize() }

func (m *ChannelMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("channel mixer: %w", err)
	}

	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	in := m.src.Channels()
	if in == m.channels {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / m.channels
	need := frames * in
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	got := n / in

	if m.channels == 1 {
		scale := 1 / float32(in)
		for f := range got {
			var sum float32
			for _, s := range m.tmp[f*in : (f+1)*in] {
				sum += s
			}
			dst[f] = sum * scale
		}

		return got, err
	}

	for f := range got {
		v := m.tmp[f]
		for c := range m.channels {
			dst[f*m.channels+c] = v
		}
	}

	return got * m.channels, err
}
