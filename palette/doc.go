// SPDX-License-Identifier: EPL-2.0

// Package palette builds the colour ramps audio displays draw with.
//
// A Scheme carries one HSL ramp per Style. NewSet turns a scheme into
// precomputed palettes; ColorAt then maps an intensity in [0,1] to a
// colour, where 0 is the background and 1 the brightest foreground.
//
//	set, err := palette.NewSet("Icy Blue", palette.Builtin(), palette.DefaultPrecision)
//	bg := set.ColorAt(palette.Normal, 0)
//
// Extra schemes can be loaded from TOML or YAML files and merged over
// the built-in ones.
package palette
