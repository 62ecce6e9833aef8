// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"time"

	"github.com/ik5/audwave/utils"
)

// Provider gives random access to decoded 16-bit PCM audio.
type Provider interface {
	SampleRate() int
	Channels() int
	// BytesPerSample is the width of one sample of one channel.
	BytesPerSample() int
	// GetAudio fills buf with count frames starting at frame start, as
	// interleaved little-endian int16. Frames outside the audio are
	// written as silence. buf must hold count*Channels()*BytesPerSample() bytes.
	GetAudio(buf []byte, start, count int64)
}

// MemoryProvider is a Provider over interleaved samples held in memory.
type MemoryProvider struct {
	sampleRate int
	channels   int
	samples    []int16
}

// NewMemoryProvider wraps interleaved samples. A trailing partial frame
// is dropped.
func NewMemoryProvider(sampleRate, channels int, samples []int16) (*MemoryProvider, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidRate
	}
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	frames := len(samples) / channels

	return &MemoryProvider{
		sampleRate: sampleRate,
		channels:   channels,
		samples:    samples[:frames*channels],
	}, nil
}

func (p *MemoryProvider) SampleRate() int     { return p.sampleRate }
func (p *MemoryProvider) Channels() int       { return p.channels }
func (p *MemoryProvider) BytesPerSample() int { return utils.BytesPerSample }

// Frames is the number of sample frames held.
func (p *MemoryProvider) Frames() int64 { return int64(len(p.samples) / p.channels) }

// Duration is the playback length of the audio.
func (p *MemoryProvider) Duration() time.Duration {
	return time.Duration(p.Frames()) * time.Second / time.Duration(p.sampleRate)
}

// Samples returns the interleaved samples. The slice must not be modified.
func (p *MemoryProvider) Samples() []int16 { return p.samples }

func (p *MemoryProvider) GetAudio(buf []byte, start, count int64) {
	if count <= 0 {
		return
	}

	frameBytes := int64(p.channels * utils.BytesPerSample)
	out := buf[:count*frameBytes]

	frames := p.Frames()
	lo := max(start, 0)
	hi := min(start+count, frames)

	if lo >= hi {
		clear(out)
		return
	}

	head := (lo - start) * frameBytes
	clear(out[:head])

	n := utils.PutSamples(out[head:], p.samples[lo*int64(p.channels):hi*int64(p.channels)])
	clear(out[head+int64(n):])
}
