// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/palette"
	"github.com/ik5/audwave/render"
)

var errBadFlag = errors.New("invalid flag value")

// addWaveformFlags registers the flags shared by render and envelope.
func addWaveformFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 800, "Width in pixel columns")
	cmd.Flags().Int("height", 120, "Height in pixels")
	cmd.Flags().Int("start", 0, "First pixel column to draw")
	cmd.Flags().Float64("ms-per-pixel", render.DefaultMillisecondsPerPixel, "Milliseconds of audio per column")
	cmd.Flags().Float32("scale", 1, "Amplitude scale")
	cmd.Flags().Bool("separate", false, "Draw one band per channel")
	cmd.Flags().Bool("averages", false, "Draw average envelopes (Maximum + Average)")
	cmd.Flags().Bool("downmix", false, "Reduce the single trace from the mean of all channels")
}

type waveformOptions struct {
	width  int
	height int
	start  int
	cfg    render.Config
}

func waveformOptionsFromFlags(cmd *cobra.Command) (waveformOptions, error) {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	start, _ := cmd.Flags().GetInt("start")
	ms, _ := cmd.Flags().GetFloat64("ms-per-pixel")
	scale, _ := cmd.Flags().GetFloat32("scale")
	separate, _ := cmd.Flags().GetBool("separate")
	averages, _ := cmd.Flags().GetBool("averages")
	downmix, _ := cmd.Flags().GetBool("downmix")

	switch {
	case width <= 0:
		return waveformOptions{}, fmt.Errorf("%w: width %d", errBadFlag, width)
	case height <= 0:
		return waveformOptions{}, fmt.Errorf("%w: height %d", errBadFlag, height)
	case start < 0:
		return waveformOptions{}, fmt.Errorf("%w: start %d", errBadFlag, start)
	case ms <= 0:
		return waveformOptions{}, fmt.Errorf("%w: ms-per-pixel %v", errBadFlag, ms)
	case scale <= 0:
		return waveformOptions{}, fmt.Errorf("%w: scale %v", errBadFlag, scale)
	}

	cfg := render.Config{
		MillisecondsPerPixel: ms,
		AmplitudeScale:       scale,
		SeparateChannels:     separate,
		Downmix:              downmix,
		Logger:               logger.Desugar(),
	}
	if averages {
		cfg.WaveformStyle = render.MaxAvg
	}

	return waveformOptions{width: width, height: height, start: start, cfg: cfg}, nil
}

func openAudio(path string) (*audio.MemoryProvider, error) {
	logger.Debugw("Decoding audio", "path", path)

	p, err := audwave.OpenFile(path, audio.LoadOptions{Logger: logger.Desugar()})
	if err != nil {
		return nil, err
	}

	logger.Infow("Loaded audio",
		"path", path,
		"sample_rate", p.SampleRate(),
		"channels", p.Channels(),
		"duration", p.Duration(),
	)

	return p, nil
}

// loadSchemes returns the built-in schemes, overlaid with file when set.
func loadSchemes(file string) (map[string]palette.Scheme, error) {
	schemes := palette.Builtin()
	if file == "" {
		return schemes, nil
	}

	extra, err := palette.LoadSchemesFile(file)
	if err != nil {
		return nil, err
	}
	logger.Debugw("Loaded colour schemes", "file", file, "schemes", palette.Names(extra))

	return palette.Merge(schemes, extra), nil
}
