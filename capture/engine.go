// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"

	"github.com/gen2brain/malgo"

	"github.com/ik5/tensoraudio/audio"
)

// engine is the hardware side of a Device.
type engine interface {
	Start() error
	Stop() error
	Close()
}

type malgoEngine struct {
	ctx *malgo.AllocatedContext
	dev *malgo.Device
}

func (e *malgoEngine) Start() error {
	if err := e.dev.Start(); err != nil {
		return fmt.Errorf("starting capture device: %w", err)
	}

	return nil
}

func (e *malgoEngine) Stop() error {
	if err := e.dev.Stop(); err != nil {
		return fmt.Errorf("stopping capture device: %w", err)
	}

	return nil
}

func (e *malgoEngine) Close() {
	e.dev.Uninit()
	_ = e.ctx.Uninit()
	e.ctx.Free()
}

func malgoFormat(enc audio.Encoding) (malgo.FormatType, error) {
	switch enc {
	case audio.EncodingPCMFloat:
		return malgo.FormatF32, nil
	case audio.EncodingPCM16:
		return malgo.FormatS16, nil
	}

	return malgo.FormatUnknown, fmt.Errorf("%w: %s", audio.ErrUnsupportedEncoding, enc)
}

// openMalgo initialises a capture device that hands every period to onData.
func openMalgo(cfg Config, onData func([]byte)) (*malgoEngine, error) {
	format, err := malgoFormat(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("initialising audio context: %w", err)
	}

	devCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	devCfg.Capture.Format = format
	devCfg.Capture.Channels = uint32(cfg.Format.Channels())
	devCfg.SampleRate = uint32(cfg.Format.SampleRate())
	devCfg.PeriodSizeInFrames = uint32(cfg.BufferFrames)
	devCfg.Alsa.NoMMap = 1

	dev, err := malgo.InitDevice(ctx.Context, devCfg, malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			onData(input)
		},
	})
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("initialising capture device: %w", err)
	}

	return &malgoEngine{ctx: ctx, dev: dev}, nil
}
