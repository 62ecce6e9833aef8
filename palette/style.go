// SPDX-License-Identifier: EPL-2.0

package palette

import (
	"fmt"
	"strings"
)

// Style is the visual state an audio region is drawn in.
type Style int

const (
	// Normal is audio outside any selection.
	Normal Style = iota
	// Inactive is audio belonging to lines other than the active one.
	Inactive
	// Selected is audio inside the current selection.
	Selected
	// Primary is audio of the active line.
	Primary

	// StyleCount is the number of styles.
	StyleCount
)

var styleNames = [StyleCount]string{"normal", "inactive", "selected", "primary"}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

func (s Style) Valid() bool { return s >= 0 && s < StyleCount }

// Styles lists every style in order.
func Styles() []Style {
	out := make([]Style, 0, StyleCount)
	for s := range StyleCount {
		out = append(out, s)
	}
	return out
}

// ParseStyle accepts the lower-case style names, case-insensitively.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}
