// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/ik5/audwave/utils"
)

func readFrames(p *MemoryProvider, start, count int64) []int16 {
	buf := make([]byte, count*int64(p.Channels()*p.BytesPerSample()))
	p.GetAudio(buf, start, count)

	out := make([]int16, len(buf)/2)
	for i := range out {
		out[i] = utils.SampleAt(buf, i)
	}

	return out
}

func TestNewMemoryProvider_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewMemoryProvider(0, 1, nil); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("rate 0: error = %v, want ErrInvalidRate", err)
	}
	if _, err := NewMemoryProvider(8000, 0, nil); !errors.Is(err, ErrNoChannels) {
		t.Errorf("channels 0: error = %v, want ErrNoChannels", err)
	}
}

func TestMemoryProvider_Metadata(t *testing.T) {
	t.Parallel()

	p, err := NewMemoryProvider(8000, 2, make([]int16, 16001))
	if err != nil {
		t.Fatalf("NewMemoryProvider() error = %v", err)
	}

	if p.BytesPerSample() != 2 {
		t.Errorf("BytesPerSample() = %d, want 2", p.BytesPerSample())
	}
	if p.Frames() != 8000 {
		t.Errorf("Frames() = %d, want 8000 (partial frame dropped)", p.Frames())
	}
	if p.Duration() != time.Second {
		t.Errorf("Duration() = %v, want 1s", p.Duration())
	}
}

func TestMemoryProvider_GetAudio(t *testing.T) {
	t.Parallel()

	// frames: (1,-1) (2,-2) (3,-3)
	p, _ := NewMemoryProvider(8000, 2, []int16{1, -1, 2, -2, 3, -3})

	tests := []struct {
		name  string
		start int64
		count int64
		want  []int16
	}{
		{name: "inside", start: 1, count: 2, want: []int16{2, -2, 3, -3}},
		{name: "before start", start: -2, count: 3, want: []int16{0, 0, 0, 0, 1, -1}},
		{name: "past end", start: 2, count: 3, want: []int16{3, -3, 0, 0, 0, 0}},
		{name: "fully outside", start: 10, count: 2, want: []int16{0, 0, 0, 0}},
		{name: "covering", start: -1, count: 5, want: []int16{0, 0, 1, -1, 2, -2, 3, -3, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := readFrames(p, tt.start, tt.count); !slices.Equal(got, tt.want) {
				t.Errorf("GetAudio(%d, %d) = %v, want %v", tt.start, tt.count, got, tt.want)
			}
		})
	}
}

func TestMemoryProvider_GetAudioOverwritesStaleData(t *testing.T) {
	t.Parallel()

	p, _ := NewMemoryProvider(8000, 1, []int16{5})
	buf := []byte{0xff, 0xff, 0xff, 0xff}

	p.GetAudio(buf, 0, 2)

	if utils.SampleAt(buf, 0) != 5 || utils.SampleAt(buf, 1) != 0 {
		t.Errorf("GetAudio() left %v, want [5 0]", buf)
	}
}

func TestMemoryProvider_ZeroCount(t *testing.T) {
	t.Parallel()

	p, _ := NewMemoryProvider(8000, 1, []int16{5})
	p.GetAudio(nil, 0, 0)
}

func TestMemoryProvider_GetAudio_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	p, _ := NewMemoryProvider(44100, 2, make([]int16, 44100*2))
	buf := make([]byte, 441*2*2)

	allocs := testing.AllocsPerRun(100, func() {
		p.GetAudio(buf, 1000, 441)
	})

	if allocs > 0 {
		t.Errorf("GetAudio allocated %v times, want 0", allocs)
	}
}
