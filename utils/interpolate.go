// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom segment between y1 and y2
// at fraction x in [0, 1]; y0 and y3 are the outer neighbours.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	b := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c := 0.5 * (y2 - y0)

	return ((a*x+b)*x+c)*x + y1
}
