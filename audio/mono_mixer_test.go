// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audwave/internal/audiotest"
)

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{name: "mono passthrough", channels: 1, want: 0},
		{name: "stereo", channels: 2, want: 0.05},
		{name: "quad", channels: 4, want: 0.15},
		{name: "5.1", channels: 6, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 100, func(_, channel int) float32 {
				return float32(channel) / 10
			})
			mixer := NewMonoMixer(src)

			if mixer.Channels() != 1 {
				t.Fatalf("Channels() = %d, want 1", mixer.Channels())
			}

			buf := make([]float32, 10)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 10 {
				t.Fatalf("ReadSamples() n = %d, want 10", n)
			}

			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))
	buf := make([]float32, 10)

	n, err := mixer.ReadSamples(buf)
	if n != 5 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = (%d, %v), want (5, EOF)", n, err)
	}

	n, err = mixer.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))
	if n, err := mixer.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}
