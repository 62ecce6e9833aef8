// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audwave/utils"
)

func encode(t *testing.T, rate, channels int, samples []int16) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, rate, channels, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	return buf.Bytes()
}

func readAll(t *testing.T, data []byte, chunk int) ([]float32, int, int) {
	t.Helper()

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	var out []float32
	buf := make([]float32, chunk)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	return out, src.SampleRate(), src.Channels()
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		samples  []int16
		chunk    int
	}{
		{name: "mono", rate: 8000, channels: 1, samples: []int16{0, 100, -100, 32767, -32768}, chunk: 2},
		{name: "stereo", rate: 44100, channels: 2, samples: []int16{1, -1, 2, -2, 3, -3}, chunk: 4},
		{name: "large chunk", rate: 48000, channels: 2, samples: []int16{7, 8}, chunk: 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rate, channels := readAll(t, encode(t, tt.rate, tt.channels, tt.samples), tt.chunk)

			if rate != tt.rate || channels != tt.channels {
				t.Fatalf("format = %d Hz x %d, want %d Hz x %d", rate, channels, tt.rate, tt.channels)
			}
			if len(got) != len(tt.samples) {
				t.Fatalf("read %d samples, want %d", len(got), len(tt.samples))
			}
			for i, want := range tt.samples {
				if v := utils.Float32ToInt16(got[i]); v != want {
					t.Errorf("sample %d = %d, want %d", i, v, want)
				}
			}
		})
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := encode(t, 16000, 1, []int16{5, 6, 7})
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE AT ALL, JUST TEXT")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_EmptyData(t *testing.T) {
	t.Parallel()

	got, _, _ := readAll(t, encode(t, 8000, 1, nil), 16)
	if len(got) != 0 {
		t.Errorf("read %d samples from empty file, want 0", len(got))
	}
}

func TestWriteWAV16_InvalidChannels(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(io.Discard, 8000, 0, nil); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("WriteWAV16() error = %v, want ErrInvalidChannels", err)
	}
}

func TestWriteWAV16_WriteSeeker(t *testing.T) {
	t.Parallel()

	var ws utils.WriteSeekBuffer
	if err := WriteWAV16(&ws, 8000, 1, []int16{1, 2, 3}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := ws.Bytes()
	if len(data) != 44+6 {
		t.Errorf("len = %d, want 50", len(data))
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Errorf("missing RIFF header")
	}
}
