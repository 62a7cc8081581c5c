// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCM16Scale is the divisor used to normalise live 16-bit samples.
// Both signs share it, so math.MinInt16 lands slightly below -1.0.
const PCM16Scale float32 = math.MaxInt16

// PCM16FileScale is the divisor used for 16-bit samples decoded from files.
const PCM16FileScale float32 = 1 << 15

// Int16ToFloat32 normalises a 16-bit sample to the float domain by dividing
// it by math.MaxInt16. 32767 maps to 1.0 and -32768 to about -1.0000305;
// the result is not clamped.
func Int16ToFloat32(s int16) float32 {
	return float32(s) / PCM16Scale
}

// Int16sToFloat32s converts src into dst and returns the number of converted
// samples, which is min(len(dst), len(src)).
func Int16sToFloat32s(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]) / PCM16Scale
	}

	return n
}

// Float32ToInt16 is the inverse of Int16ToFloat32 for values in [-1, 1].
// Out of range values are clamped first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(float64(x * PCM16Scale)))
}

// Float32sToInt16s converts src into dst and returns the number of converted
// samples.
func Float32sToInt16s(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}

	return n
}
