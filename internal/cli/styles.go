// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/ik5/audwave/palette"
	"github.com/ik5/audwave/render"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})
	labelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	itemStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// swatchIntensities are the levels the waveform draws with.
var swatchIntensities = []float32{0, 0.4, 0.5, 0.7, 1}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List waveform styles, rendering styles and colour schemes",
	Args:  cobra.NoArgs,
	RunE:  runStyles,
}

func init() {
	rootCmd.AddCommand(stylesCmd)

	stylesCmd.Flags().
		String("schemes", "", "TOML or YAML file with extra colour schemes")
}

func runStyles(cmd *cobra.Command, args []string) error {
	schemesFile, _ := cmd.Flags().GetString("schemes")

	schemes, err := loadSchemes(schemesFile)
	if err != nil {
		return err
	}

	return printStyles(cmd.OutOrStdout(), schemes)
}

func printStyles(w io.Writer, schemes map[string]palette.Scheme) error {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Waveform styles") + "\n")
	for _, name := range render.WaveformStyles() {
		b.WriteString(itemStyle.Render(name) + "\n")
	}

	b.WriteString(headerStyle.Render("Rendering styles") + "\n")
	for _, s := range palette.Styles() {
		b.WriteString(itemStyle.Render(s.String()) + "\n")
	}

	b.WriteString(headerStyle.Render("Colour schemes") + "\n")
	for _, name := range palette.Names(schemes) {
		set, err := palette.NewSet(name, schemes, palette.DefaultPrecision)
		if err != nil {
			return err
		}
		b.WriteString(itemStyle.Render(labelStyle.Render(name)+swatch(set, palette.Normal)) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// swatch renders the colours of style at the drawing intensities.
func swatch(set *palette.Set, style palette.Style) string {
	cells := make([]string, 0, len(swatchIntensities))
	for _, v := range swatchIntensities {
		c, _ := colorful.MakeColor(set.ColorAt(style, v))
		cells = append(cells, lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Render(fmt.Sprintf(" %s ", c.Hex())))
	}

	return strings.Join(cells, "")
}
