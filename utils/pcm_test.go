// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "max positive", input: 1, want: math.MaxInt16},
		{name: "max negative", input: -1, want: math.MinInt16},
		{name: "half positive", input: 0.5, want: 16384},
		{name: "clamp over max", input: 3, want: math.MaxInt16},
		{name: "clamp under min", input: -3, want: math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	if got := Int16ToFloat32(math.MinInt16); got != -1 {
		t.Errorf("Int16ToFloat32(MinInt16) = %v, want -1", got)
	}
	if got := Int16ToFloat32(16384); got != 0.5 {
		t.Errorf("Int16ToFloat32(16384) = %v, want 0.5", got)
	}
}

func TestFloat32ToInt16_RoundTrip(t *testing.T) {
	t.Parallel()

	for v := math.MinInt16; v <= math.MaxInt16; v += 7 {
		if got := Float32ToInt16(Int16ToFloat32(int16(v))); got != int16(v) {
			t.Fatalf("round trip of %d = %d", v, got)
		}
	}
}

func TestPutSamplesAndSampleAt(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1, -1, math.MaxInt16, math.MinInt16}
	buf := make([]byte, len(samples)*BytesPerSample)

	if n := PutSamples(buf, samples); n != len(buf) {
		t.Fatalf("PutSamples() = %d, want %d", n, len(buf))
	}

	for i, want := range samples {
		if got := SampleAt(buf, i); got != want {
			t.Errorf("SampleAt(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestPutSamples_ShortDestination(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 3)
	if n := PutSamples(buf, []int16{7, 8}); n != 2 {
		t.Errorf("PutSamples() = %d, want 2", n)
	}
}

func TestShiftToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sample   int
		bitDepth int
		want     int16
	}{
		{name: "16-bit unchanged", sample: -1234, bitDepth: 16, want: -1234},
		{name: "24-bit shifted down", sample: 0x7FFFFF, bitDepth: 24, want: 0x7FFF},
		{name: "8-bit shifted up", sample: -128, bitDepth: 8, want: math.MinInt16},
		{name: "saturates", sample: 1 << 20, bitDepth: 16, want: math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ShiftToInt16(tt.sample, tt.bitDepth); got != tt.want {
				t.Errorf("ShiftToInt16(%d, %d) = %d, want %d", tt.sample, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate_Endpoints(t *testing.T) {
	t.Parallel()

	for i := range 50 {
		y0, y1, y2, y3 := float32(i), float32(i+1), float32(i+3), float32(i+2)
		if got := CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
			t.Errorf("x=0: got %v, want %v", got, y1)
		}
		if got := CubicInterpolate(y0, y1, y2, y3, 1); math.Abs(float64(got-y2)) > 1e-4 {
			t.Errorf("x=1: got %v, want %v", got, y2)
		}
	}
}

func TestCubicInterpolate_Linear(t *testing.T) {
	t.Parallel()

	got := CubicInterpolate(1, 2, 3, 4, 0.25)
	if math.Abs(float64(got-2.25)) > 1e-5 {
		t.Errorf("CubicInterpolate() = %v, want 2.25", got)
	}
}

func TestSampleAt_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	buf := make([]byte, 64)
	allocs := testing.AllocsPerRun(1000, func() {
		for i := range 32 {
			_ = SampleAt(buf, i)
		}
	})

	if allocs > 0 {
		t.Errorf("SampleAt allocated %v times, want 0", allocs)
	}
}

func BenchmarkSampleAt(b *testing.B) {
	buf := make([]byte, 4096)

	b.ReportAllocs()

	var sum int
	for range b.N {
		for i := range len(buf) / BytesPerSample {
			sum += int(SampleAt(buf, i))
		}
	}
	_ = sum
}
