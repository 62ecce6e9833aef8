// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audwave/utils"
	"go.uber.org/zap"
)

// LoadOptions controls how a Source is materialised into a MemoryProvider.
type LoadOptions struct {
	// SampleRate resamples to this rate when positive and different
	// from the source rate.
	SampleRate int
	// Mono averages all channels into one.
	Mono bool
	// BufferSize is the read chunk in float32 values; 0 means the
	// source's BufSize.
	BufferSize int
	// Logger receives a summary of the load. Nil disables logging.
	Logger *zap.Logger
}

// Load drains src into memory as 16-bit PCM. The source is not closed.
func Load(src Source, opts LoadOptions) (*MemoryProvider, error) {
	if src.Channels() <= 0 {
		return nil, ErrNoChannels
	}
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pipeline := src
	if opts.SampleRate > 0 && opts.SampleRate != src.SampleRate() {
		pipeline = NewResampler(pipeline, opts.SampleRate)
	}
	if opts.Mono && pipeline.Channels() > 1 {
		pipeline = NewMonoMixer(pipeline)
	}

	channels := pipeline.Channels()

	size := opts.BufferSize
	if size <= 0 {
		size = pipeline.BufSize()
	}
	if size <= 0 {
		return nil, ErrEmptyBufferSize
	}
	// whole frames only, the resampler rejects anything else
	size = max(size/channels, 1) * channels

	buf := make([]float32, size)
	pcm := make([]int16, 0, size)

	for {
		n, err := pipeline.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	p, err := NewMemoryProvider(pipeline.SampleRate(), channels, pcm)
	if err != nil {
		return nil, err
	}

	logger.Debug("audio loaded",
		zap.Int("source_rate", src.SampleRate()),
		zap.Int("source_channels", src.Channels()),
		zap.Int("rate", p.SampleRate()),
		zap.Int("channels", p.Channels()),
		zap.Int64("frames", p.Frames()),
		zap.Duration("duration", p.Duration()),
	)

	return p, nil
}
