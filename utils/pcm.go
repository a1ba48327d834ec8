// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCMScale is the divisor that maps a signed bitDepth integer to [-1,1).
func PCMScale(bitDepth int) float64 {
	if bitDepth <= 0 || bitDepth > 32 {
		bitDepth = 16
	}
	return float64(int64(1) << (bitDepth - 1))
}

// FloatToPCM clamps x to [-1,1] and scales it to a signed bitDepth integer,
// rounding to nearest. +1.0 maps to the largest positive value.
func FloatToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scale := PCMScale(bitDepth)
	v := math.Round(float64(x) * scale)
	if v > scale-1 {
		v = scale - 1
	}

	return int(v)
}

// PCMToFloat maps a signed bitDepth integer to [-1,1).
func PCMToFloat(v int, bitDepth int) float32 {
	return float32(float64(v) / PCMScale(bitDepth))
}

// Float32ToInt16 is FloatToPCM for 16-bit output.
func Float32ToInt16(x float32) int16 {
	return int16(FloatToPCM(x, 16))
}

// FloatsToPCM converts src into dst; dst must be at least len(src) long.
func FloatsToPCM(dst []int, src []float32, bitDepth int) {
	for i, x := range src {
		dst[i] = FloatToPCM(x, bitDepth)
	}
}

// PCMToFloats converts src into dst; dst must be at least len(src) long.
func PCMToFloats(dst []float32, src []int, bitDepth int) {
	inv := 1 / PCMScale(bitDepth)
	for i, v := range src {
		dst[i] = float32(float64(v) * inv)
	}
}
