// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"

	"go.uber.org/zap"
)

// WaveformStyle selects which envelope traces are drawn.
type WaveformStyle int

const (
	// MaxOnly draws the peak envelope.
	MaxOnly WaveformStyle = iota
	// MaxAvg draws the peak envelope and the average envelope.
	MaxAvg
)

var waveformStyleNames = []string{"Maximum", "Maximum + Average"}

func (s WaveformStyle) String() string {
	if s < 0 || int(s) >= len(waveformStyleNames) {
		return fmt.Sprintf("WaveformStyle(%d)", int(s))
	}
	return waveformStyleNames[s]
}

// WaveformStyles returns the display names of the waveform styles,
// indexed by WaveformStyle.
func WaveformStyles() []string {
	return append([]string(nil), waveformStyleNames...)
}

// DefaultMillisecondsPerPixel is the time scale used when a Config
// leaves it unset.
const DefaultMillisecondsPerPixel = 10

// Config holds the renderer settings.
type Config struct {
	// MillisecondsPerPixel is the duration of audio one column covers.
	MillisecondsPerPixel float64
	// AmplitudeScale multiplies every sample before scaling to pixels.
	// Zero means 1.
	AmplitudeScale float32
	// SeparateChannels draws one band per channel instead of a single
	// trace.
	SeparateChannels bool
	WaveformStyle    WaveformStyle
	// Downmix reduces the single trace from the mean of all channels
	// instead of the first channel.
	Downmix bool
	Logger  *zap.Logger
}

// DefaultConfig is a single trace at 10 ms per pixel and unit scale.
func DefaultConfig() Config {
	return Config{
		MillisecondsPerPixel: DefaultMillisecondsPerPixel,
		AmplitudeScale:       1,
	}
}

func (c Config) withDefaults() Config {
	if c.MillisecondsPerPixel <= 0 {
		c.MillisecondsPerPixel = DefaultMillisecondsPerPixel
	}
	if c.AmplitudeScale == 0 {
		c.AmplitudeScale = 1
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return c
}
