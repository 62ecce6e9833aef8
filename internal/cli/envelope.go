// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/audwave/render"
)

var envelopeCmd = &cobra.Command{
	Use:   "envelope [audio_file]",
	Short: "Print the per-column envelope of an audio file as JSON",
	Long: `Print the per-column envelope of an audio file as JSON.

Every column holds one entry per trace, in pixels relative to the
trace's zero line for a surface of the given height.

Examples:
  audwave envelope speech.wav --width 100 --height 64
  audwave envelope song.mp3 --separate --start 500`,
	Args: cobra.ExactArgs(1),
	RunE: runEnvelope,
}

func init() {
	rootCmd.AddCommand(envelopeCmd)

	addWaveformFlags(envelopeCmd)
}

type envelopeReport struct {
	SampleRate           int                       `json:"sample_rate"`
	Channels             int                       `json:"channels"`
	MillisecondsPerPixel float64                   `json:"ms_per_pixel"`
	AmplitudeScale       float32                   `json:"amplitude_scale"`
	Start                int                       `json:"start"`
	Bands                []render.Band             `json:"bands"`
	Columns              [][]render.EnvelopeSample `json:"columns"`
}

func runEnvelope(cmd *cobra.Command, args []string) error {
	opts, err := waveformOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	provider, err := openAudio(args[0])
	if err != nil {
		return err
	}

	// envelopes need no colours
	r := render.NewWaveformRenderer(nil, opts.cfg)
	r.SetProvider(provider)

	report := envelopeReport{
		SampleRate:           provider.SampleRate(),
		Channels:             provider.Channels(),
		MillisecondsPerPixel: opts.cfg.MillisecondsPerPixel,
		AmplitudeScale:       opts.cfg.AmplitudeScale,
		Start:                opts.start,
		Bands:                r.Layout(opts.height),
		Columns:              r.Envelope(opts.start, opts.width, opts.height),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding envelope: %w", err)
	}

	return nil
}
