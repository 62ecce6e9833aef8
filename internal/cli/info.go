// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audwave/audio"
)

var infoCmd = &cobra.Command{
	Use:   "info [audio_file]",
	Short: "Show sample rate, channels and duration of an audio file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	provider, err := openAudio(args[0])
	if err != nil {
		return err
	}

	return printInfo(cmd.OutOrStdout(), args[0], provider)
}

func printInfo(w io.Writer, path string, p *audio.MemoryProvider) error {
	var b strings.Builder

	b.WriteString(headerStyle.Render(path) + "\n")
	for _, row := range [][2]string{
		{"Sample rate", fmt.Sprintf("%d Hz", p.SampleRate())},
		{"Channels", fmt.Sprint(p.Channels())},
		{"Frames", fmt.Sprint(p.Frames())},
		{"Duration", p.Duration().String()},
	} {
		b.WriteString(itemStyle.Render(labelStyle.Render(row[0])+row[1]) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
