// SPDX-License-Identifier: EPL-2.0

package render

import "slices"

// Band is the vertical extent of one trace. Rows run from Top up to but
// not including Bottom; Mid is the zero line and Half the largest
// deflection either side of it.
type Band struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Mid    int `json:"mid"`
	Half   int `json:"half"`
}

// ChannelBands splits height into one band per channel. The bands
// partition [0, height) with no gaps or overlap.
func ChannelBands(height, channels int) []Band {
	if channels < 1 || height < 0 {
		return nil
	}

	step := float32(height) / float32(channels)
	half := int(step * 0.5)

	bands := make([]Band, channels)
	for c := range bands {
		bands[c] = Band{
			Top:    c * height / channels,
			Bottom: (c + 1) * height / channels,
			Mid:    int(step * (float32(c) + 0.5)),
			Half:   half,
		}
	}

	return bands
}

func singleBand(height int) Band {
	return Band{Bottom: height, Mid: height / 2, Half: height / 2}
}

// lineRows returns the sorted distinct rows covered by baselines and
// separators.
func lineRows(bands []Band) []int {
	rows := make([]int, 0, 2*len(bands))
	for i, b := range bands {
		rows = append(rows, b.Mid)
		if i > 0 {
			rows = append(rows, b.Top)
		}
	}
	slices.Sort(rows)

	return slices.Compact(rows)
}
