// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats/wav"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aiff", "flac", "mp3", "ogg", "wav"}
	if got := DefaultRegistry().Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func writeWAV(t *testing.T, name string, rate, channels int, samples []int16) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, rate, channels, samples); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200, 300, -300, 400, -400}
	path := writeWAV(t, "pcm.WAV", 8000, 2, samples)

	tests := []struct {
		name     string
		opts     audio.LoadOptions
		channels int
		frames   int64
	}{
		{"as is", audio.LoadOptions{}, 2, 4},
		{"mono", audio.LoadOptions{Mono: true}, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := OpenFile(path, tt.opts)
			if err != nil {
				t.Fatalf("OpenFile() error = %v", err)
			}
			if p.Channels() != tt.channels || p.Frames() != tt.frames {
				t.Errorf("got %d channels %d frames, want %d and %d", p.Channels(), p.Frames(), tt.channels, tt.frames)
			}
		})
	}

	p, _ := OpenFile(path, audio.LoadOptions{})
	if got := p.Samples(); !slices.Equal(got, samples) {
		t.Errorf("Samples() = %v, want %v", got, samples)
	}
}

func TestOpenFile_Errors(t *testing.T) {
	t.Parallel()

	if _, err := OpenFile("song.xyz", audio.LoadOptions{}); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("unknown extension: error = %v, want ErrUnknownFormat", err)
	}
	if _, err := OpenFile(filepath.Join(t.TempDir(), "missing.wav"), audio.LoadOptions{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: error = %v, want ErrNotExist", err)
	}

	bogus := filepath.Join(t.TempDir(), "bogus.wav")
	if err := os.WriteFile(bogus, []byte("not a wav file at all"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(bogus, audio.LoadOptions{}); err == nil {
		t.Error("bogus wav: expected error")
	}
}
