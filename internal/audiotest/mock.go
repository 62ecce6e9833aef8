// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fake sources and providers shared by tests.
package audiotest

import (
	"encoding/binary"
	"io"
	"math"
)

// MockSource generates a finite stream from a waveform function.
// It satisfies audio.Source without importing it.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int
	waveform     func(sample int, channel int) float32
}

func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the stream.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}

// Read records one GetAudio call on a MockProvider.
type Read struct {
	Start int64
	Count int64
}

// MockProvider is a random-access provider whose samples come from a
// function of the absolute frame index. It satisfies audio.Provider.
type MockProvider struct {
	Rate        int
	Chans       int
	SampleBytes int
	Sample      func(frame int64, channel int) int16

	Reads []Read
}

// NewMockProvider returns a 16-bit provider. A nil sample function
// produces silence.
func NewMockProvider(rate, channels int, sample func(frame int64, channel int) int16) *MockProvider {
	if sample == nil {
		sample = func(int64, int) int16 { return 0 }
	}

	return &MockProvider{
		Rate:        rate,
		Chans:       channels,
		SampleBytes: 2,
		Sample:      sample,
	}
}

// ConstantProvider returns a provider where every sample equals v.
func ConstantProvider(rate, channels int, v int16) *MockProvider {
	return NewMockProvider(rate, channels, func(int64, int) int16 { return v })
}

func (p *MockProvider) SampleRate() int     { return p.Rate }
func (p *MockProvider) Channels() int       { return p.Chans }
func (p *MockProvider) BytesPerSample() int { return p.SampleBytes }

func (p *MockProvider) GetAudio(buf []byte, start, count int64) {
	p.Reads = append(p.Reads, Read{Start: start, Count: count})

	i := 0
	for f := start; f < start+count; f++ {
		for ch := range p.Chans {
			binary.LittleEndian.PutUint16(buf[i:], uint16(p.Sample(f, ch)))
			i += 2
		}
	}
}
