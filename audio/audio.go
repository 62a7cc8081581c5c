// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Source is a stream of interleaved PCM float samples.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1,1] and returns
	// the number of float32 values written (not frames). n == 0 with io.EOF
	// means the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	Close() error
}

// SourceFormat returns the Format of src.
func SourceFormat(src Source) (Format, error) {
	return NewFormat(src.Channels(), src.SampleRate())
}

// Decoder constructs a Source from an encoded input.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps container names ("wav", "mp3", ...) to decoders. Names are
// case insensitive and may be given with a leading dot.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// Lookup picks the decoder for a file name by its extension.
func (r *Registry) Lookup(path string) (Decoder, bool) {
	return r.Get(filepath.Ext(path))
}

// Formats returns the registered names, sorted.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
