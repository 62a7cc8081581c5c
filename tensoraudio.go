// SPDX-License-Identifier: EPL-2.0

package tensoraudio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/tensoraudio/audio"
	"github.com/ik5/tensoraudio/formats/aiff"
	"github.com/ik5/tensoraudio/formats/mp3"
	"github.com/ik5/tensoraudio/formats/vorbis"
	"github.com/ik5/tensoraudio/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})

	return r
}

// fileSource closes the underlying file with the decoded stream.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}

// Open decodes path with the decoder registered for its extension. Closing
// the returned Source closes the file.
func Open(path string) (audio.Source, error) {
	return OpenWith(DefaultRegistry(), path)
}

// OpenWith is Open with a caller supplied registry.
func OpenWith(registry *audio.Registry, path string) (audio.Source, error) {
	dec, ok := registry.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// FromFile decodes path and returns a TensorAudio in the file's own format
// holding at most sampleCount frames, starting offset frames into the file.
func FromFile(path string, sampleCount, offset int) (*audio.TensorAudio, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return FromSource(src, sampleCount, offset)
}

// FromSource reads up to sampleCount frames from src after skipping offset
// frames. The tensor is sized to the frames actually read, so a short
// stream gives a smaller tensor. src is not closed.
func FromSource(src audio.Source, sampleCount, offset int) (*audio.TensorAudio, error) {
	if sampleCount <= 0 {
		return nil, fmt.Errorf("%w: sample count should be greater than 0", audio.ErrInvalidArgument)
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset cannot be negative", audio.ErrInvalidArgument)
	}

	format, err := audio.SourceFormat(src)
	if err != nil {
		return nil, err
	}

	samples, err := readFrames(src, offset, sampleCount)
	if err != nil {
		return nil, err
	}

	frames := len(samples) / format.Channels()
	if frames == 0 {
		return nil, fmt.Errorf("%w: no audio after offset %d", audio.ErrIndexOutOfRange, offset)
	}

	t, err := audio.NewTensorAudio(format, frames)
	if err != nil {
		return nil, err
	}
	if err := t.LoadFloat32(samples, 0, frames*format.Channels()); err != nil {
		return nil, err
	}

	return t, nil
}

// readFrames skips skip frames of src and returns the next count frames,
// or fewer if the stream ends first.
func readFrames(src audio.Source, skip, count int) ([]float32, error) {
	ch := src.Channels()
	size := max(src.BufSize()/ch, 1) * ch
	buf := make([]float32, size)

	skipSamples := skip * ch
	want := count * ch
	out := make([]float32, 0, want)

	for len(out) < want {
		n, err := src.ReadSamples(buf)

		chunk := buf[:n]
		if skipSamples > 0 {
			drop := min(skipSamples, n)
			skipSamples -= drop
			chunk = chunk[drop:]
		}
		out = append(out, chunk[:min(len(chunk), want-len(out))]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading audio: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return out, nil
}

// Feed streams src into t until src is exhausted, mixing channels and
// resampling to t's format first when they differ. bufSize is the read
// size in samples. It returns the number of frames loaded; t keeps only
// the newest of them. src is not closed.
func Feed(t *audio.TensorAudio, src audio.Source, bufSize int) (int, error) {
	format := t.Format()
	ch := format.Channels()

	if bufSize < ch {
		return 0, fmt.Errorf("%w: buffer size %d is smaller than one frame",
			audio.ErrInvalidArgument, bufSize)
	}

	stream := src
	if stream.Channels() != ch {
		mixed, err := audio.NewChannelMixer(stream, ch)
		if err != nil {
			return 0, err
		}
		stream = mixed
	}
	if stream.SampleRate() != format.SampleRate() {
		resampled, err := audio.NewResampler(stream, format.SampleRate())
		if err != nil {
			return 0, err
		}
		stream = resampled
	}

	buf := make([]float32, bufSize-bufSize%ch)
	frames := 0

	for {
		n, err := stream.ReadSamples(buf)
		if n > 0 {
			if lerr := t.LoadFloat32(buf, 0, n); lerr != nil {
				return frames, lerr
			}
			frames += n / ch
		}

		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("feeding tensor: %w", err)
		}
		if n == 0 {
			return frames, nil
		}
	}
}
