// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ik5/tensoraudio/audio"
)

func TestNewFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		channels   int
		sampleRate int
		wantErr    string
	}{
		{name: "mono", channels: 1, sampleRate: 16000},
		{name: "five channels", channels: 5, sampleRate: 2},
		{name: "zero channels", channels: 0, sampleRate: 16000, wantErr: "channels"},
		{name: "negative channels", channels: -2, sampleRate: 16000, wantErr: "channels"},
		{name: "zero rate", channels: 1, sampleRate: 0, wantErr: "sample rate"},
		{name: "negative rate", channels: 1, sampleRate: -1, wantErr: "sample rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := audio.NewFormat(tt.channels, tt.sampleRate)
			if tt.wantErr != "" {
				if !errors.Is(err, audio.ErrInvalidArgument) {
					t.Fatalf("NewFormat() error = %v, want ErrInvalidArgument", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("NewFormat() error = %q, want it to mention %q", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewFormat() error = %v", err)
			}
			if f.Channels() != tt.channels || f.SampleRate() != tt.sampleRate {
				t.Errorf("NewFormat() = %v, want %dHz/%dch", f, tt.sampleRate, tt.channels)
			}
		})
	}
}

func TestMonoFormat(t *testing.T) {
	t.Parallel()

	f, err := audio.MonoFormat(20)
	if err != nil {
		t.Fatal(err)
	}
	if f.Channels() != audio.DefaultChannels {
		t.Errorf("Channels() = %d, want %d", f.Channels(), audio.DefaultChannels)
	}
	if f.String() != "20Hz/1ch" {
		t.Errorf("String() = %q", f.String())
	}
}

func TestFormat_Equality(t *testing.T) {
	t.Parallel()

	a, _ := audio.NewFormat(2, 16000)
	b, _ := audio.NewFormat(2, 16000)
	c, _ := audio.NewFormat(1, 16000)

	if a != b {
		t.Error("equal formats compare unequal")
	}
	if a == c {
		t.Error("different formats compare equal")
	}
	if a.IsZero() || !(audio.Format{}).IsZero() {
		t.Error("IsZero() misreports")
	}
}
