// SPDX-License-Identifier: EPL-2.0

// Package cli implements the audwave command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ik5/audwave/internal/logging"
)

var (
	verbose bool
	logger  = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "audwave",
	Short: "Render audio waveforms the way subtitle timing tools show them",
	Long: `audwave decodes WAV, MP3, Ogg Vorbis, AIFF and FLAC files and draws
their waveform as a per-column peak envelope, either as one trace or as
one band per channel.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
