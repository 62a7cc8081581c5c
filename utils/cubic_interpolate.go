// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through four consecutive
// samples at x, the fractional position between p1 (x=0) and p2 (x=1).
func CubicInterpolate(p0, p1, p2, p3, x float32) float32 {
	c3 := 0.5 * (p3 - p0 + 3*(p1-p2))
	c2 := p0 - 2.5*p1 + 2*p2 - 0.5*p3
	c1 := 0.5 * (p2 - p0)

	return ((c3*x+c2)*x+c1)*x + p1
}
