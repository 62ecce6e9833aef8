// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audwave/palette"
	"github.com/ik5/audwave/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [audio_file]",
	Short: "Render the waveform of an audio file to PNG",
	Long: `Render the waveform of an audio file to a PNG image.

Examples:
  audwave render speech.wav
  audwave render song.flac -o song.png --width 1600 --separate --averages
  audwave render clip.ogg --scheme Green --style selected --blank-tail`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	addWaveformFlags(renderCmd)
	renderCmd.Flags().
		StringP("output", "o", "", "Output PNG path (default: audio path with .png)")
	renderCmd.Flags().
		String("style", palette.Normal.String(), "Rendering style (normal, inactive, selected, primary)")
	renderCmd.Flags().
		String("scheme", palette.DefaultScheme, "Colour scheme name")
	renderCmd.Flags().
		String("schemes", "", "TOML or YAML file with extra colour schemes")
	renderCmd.Flags().
		Bool("blank-tail", false, "Draw columns past the end of the audio as blank")
}

func runRender(cmd *cobra.Command, args []string) error {
	audioPath := args[0]

	opts, err := waveformOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	styleName, _ := cmd.Flags().GetString("style")
	schemeName, _ := cmd.Flags().GetString("scheme")
	schemesFile, _ := cmd.Flags().GetString("schemes")
	blankTail, _ := cmd.Flags().GetBool("blank-tail")

	if outputPath == "" {
		outputPath = strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".png"
	}

	style, err := palette.ParseStyle(styleName)
	if err != nil {
		return err
	}

	schemes, err := loadSchemes(schemesFile)
	if err != nil {
		return err
	}
	set, err := palette.NewSet(schemeName, schemes, palette.DefaultPrecision)
	if err != nil {
		return err
	}

	provider, err := openAudio(audioPath)
	if err != nil {
		return err
	}

	r := render.NewWaveformRenderer(set, opts.cfg)
	r.SetProvider(provider)

	split := opts.width
	if blankTail {
		split = audioColumns(provider.Frames(), provider.SampleRate(), opts.cfg.MillisecondsPerPixel, opts.start, opts.width)
	}

	logger.Infow("Rendering waveform",
		"output", outputPath,
		"width", opts.width,
		"height", opts.height,
		"audio_columns", split,
		"scheme", schemeName,
		"style", style,
	)

	img := drawWaveform(r, opts, split, style)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), outputPath)

	return nil
}

// audioColumns is how many of width columns from start hold audio.
func audioColumns(frames int64, rate int, ms float64, start, width int) int {
	spp := ms * float64(rate) / 1000.0
	total := int(math.Ceil(float64(frames) / spp))

	return min(max(total-start, 0), width)
}

// drawWaveform renders the first split columns from audio and the rest
// blank.
func drawWaveform(r render.Renderer, opts waveformOptions, split int, style palette.Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.width, opts.height))

	if split > 0 {
		sub := img.SubImage(image.Rect(0, 0, split, opts.height)).(*image.RGBA)
		r.Render(render.WrapImage(sub), opts.start, style)
	}
	if split < opts.width {
		r.RenderBlank(render.WrapImage(img), image.Rect(split, 0, opts.width, opts.height), style)
	}

	return img
}
