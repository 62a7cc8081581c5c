// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/ik5/tensoraudio/audio"
)

// Config describes the capture stream.
type Config struct {
	Format audio.Format
	// Encoding is audio.EncodingPCMFloat or audio.EncodingPCM16.
	// The zero value selects float.
	Encoding audio.Encoding
	// BufferFrames is the suggested read size and the device period.
	// Defaults to 100ms of audio.
	BufferFrames int
	// MaxQueuedFrames bounds the unread audio. Defaults to 10 buffers.
	MaxQueuedFrames int
}

func (c Config) withDefaults() (Config, error) {
	if c.Format.IsZero() {
		return c, fmt.Errorf("%w: capture format is required", audio.ErrInvalidArgument)
	}
	if c.Encoding == audio.EncodingInvalid {
		c.Encoding = audio.EncodingPCMFloat
	}
	if c.Encoding != audio.EncodingPCMFloat && c.Encoding != audio.EncodingPCM16 {
		return c, fmt.Errorf("%w: %s", audio.ErrUnsupportedEncoding, c.Encoding)
	}
	if c.BufferFrames <= 0 {
		c.BufferFrames = max(c.Format.SampleRate()/10, 1)
	}
	if c.MaxQueuedFrames < c.BufferFrames {
		c.MaxQueuedFrames = 10 * c.BufferFrames
	}

	return c, nil
}

// Device is a live microphone. It implements audio.Record and is safe for
// concurrent use.
type Device struct {
	cfg      Config
	logger   *slog.Logger
	eng      engine
	bytesPer int // bytes per sample

	// life serialises Start, Stop and Close. The engine is only driven
	// under life, never under mtx: stopping a device waits for the
	// in-flight data callback, which needs mtx.
	life    *sync.Mutex
	started bool

	mtx     *sync.Mutex
	queue   []byte
	dropped uint64
	closed  bool // written under both locks
}

var _ audio.Record = (*Device)(nil)

// Open initialises the default capture device. Call Start to begin
// recording and Close to release the device.
func Open(cfg Config, logger *slog.Logger) (*Device, error) {
	d, err := newDevice(cfg, logger)
	if err != nil {
		return nil, err
	}

	eng, err := openMalgo(d.cfg, d.onData)
	if err != nil {
		return nil, err
	}
	d.eng = eng

	d.logger.Info("capture device opened",
		"format", d.cfg.Format.String(),
		"encoding", d.cfg.Encoding.String(),
		"buffer_frames", d.cfg.BufferFrames)

	return d, nil
}

func newDevice(cfg Config, logger *slog.Logger) (*Device, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	bytesPer := 4
	if cfg.Encoding == audio.EncodingPCM16 {
		bytesPer = 2
	}

	return &Device{
		cfg:      cfg,
		logger:   logger.With("component", "capture"),
		bytesPer: bytesPer,
		life:     &sync.Mutex{},
		mtx:      &sync.Mutex{},
		queue:    make([]byte, 0, cfg.MaxQueuedFrames*cfg.Format.Channels()*bytesPer),
	}, nil
}

func (d *Device) Format() audio.Format     { return d.cfg.Format }
func (d *Device) Encoding() audio.Encoding { return d.cfg.Encoding }
func (d *Device) BufferSizeInFrames() int  { return d.cfg.BufferFrames }

func (d *Device) Start() error {
	d.life.Lock()
	defer d.life.Unlock()

	if d.closed {
		return audio.ErrUseAfterClose
	}
	if d.started {
		return nil
	}
	if err := d.eng.Start(); err != nil {
		return err
	}
	d.started = true
	d.logger.Debug("capture started")

	return nil
}

// Stop pauses recording. Queued audio stays readable.
func (d *Device) Stop() error {
	d.life.Lock()
	defer d.life.Unlock()

	if d.closed {
		return audio.ErrUseAfterClose
	}
	if !d.started {
		return nil
	}
	if err := d.eng.Stop(); err != nil {
		return err
	}
	d.started = false
	d.logger.Debug("capture stopped")

	return nil
}

// Close releases the device. It is safe to call more than once.
func (d *Device) Close() error {
	d.life.Lock()
	defer d.life.Unlock()

	if d.closed {
		return nil
	}
	if d.started {
		if err := d.eng.Stop(); err != nil {
			d.logger.Warn("stopping capture device on close", "error", err)
		}
		d.started = false
	}
	d.eng.Close()

	d.mtx.Lock()
	d.closed = true
	d.queue = nil
	dropped := d.dropped
	d.mtx.Unlock()

	d.logger.Info("capture device closed", "dropped_frames", dropped)

	return nil
}

// Dropped returns the number of frames discarded because nobody read them
// in time.
func (d *Device) Dropped() uint64 {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return d.dropped
}

// onData runs on the audio thread.
func (d *Device) onData(input []byte) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.closed {
		return
	}

	frameBytes := d.cfg.Format.Channels() * d.bytesPer
	limit := d.cfg.MaxQueuedFrames * frameBytes

	if len(input) > limit {
		d.dropped += uint64((len(input) - limit) / frameBytes)
		input = input[len(input)-limit:]
	}
	if over := len(d.queue) + len(input) - limit; over > 0 {
		d.dropped += uint64(over / frameBytes)
		d.queue = append(d.queue[:0], d.queue[over:]...)
	}
	d.queue = append(d.queue, input...)
}

// take removes up to maxSamples whole frames from the queue, or returns a
// status when no read is possible.
func (d *Device) take(enc audio.Encoding, maxSamples int) ([]byte, audio.ReadStatus) {
	if d.closed {
		return nil, audio.ReadErrorDeadObject
	}
	if enc != d.cfg.Encoding {
		return nil, audio.ReadErrorInvalidOperation
	}

	ch := d.cfg.Format.Channels()
	if maxSamples < ch {
		return nil, audio.ReadErrorBadValue
	}

	samples := min(maxSamples-maxSamples%ch, len(d.queue)/d.bytesPer)
	n := samples * d.bytesPer
	out := d.queue[:n:n]
	d.queue = d.queue[n:]

	return out, 0
}

// ReadFloat32 implements audio.Record. It never blocks.
func (d *Device) ReadFloat32(dst []float32) int {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	data, status := d.take(audio.EncodingPCMFloat, len(dst))
	if status != 0 {
		return int(status)
	}

	n := len(data) / 4
	for i := range n {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}

	return n
}

// ReadInt16 implements audio.Record. It never blocks.
func (d *Device) ReadInt16(dst []int16) int {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	data, status := d.take(audio.EncodingPCM16, len(dst))
	if status != 0 {
		return int(status)
	}

	n := len(data) / 2
	for i := range n {
		dst[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}

	return n
}
