// SPDX-License-Identifier: EPL-2.0

package audio

// Deinterleave splits src into one slice per channel.
func Deinterleave(src []float32, channels int) [][]float32 {
	frames := len(src) / channels
	planes := make([][]float32, channels)
	for c := range planes {
		planes[c] = make([]float32, frames)
	}
	DeinterleaveInto(planes, src, 0)

	return planes
}

// DeinterleaveInto writes the frames of src into planes starting at frame
// offset. It returns the number of frames written, bounded by the shortest plane.
func DeinterleaveInto(planes [][]float32, src []float32, offset int) int {
	channels := len(planes)
	if channels == 0 {
		return 0
	}

	frames := len(src) / channels
	for _, p := range planes {
		frames = min(frames, len(p)-offset)
	}
	if frames <= 0 {
		return 0
	}

	switch channels {
	case 1:
		copy(planes[0][offset:], src[:frames])
	case 2:
		l, r := planes[0][offset:], planes[1][offset:]
		for f := range frames {
			l[f] = src[2*f]
			r[f] = src[2*f+1]
		}
	default:
		for f := range frames {
			base := f * channels
			for c, p := range planes {
				p[offset+f] = src[base+c]
			}
		}
	}

	return frames
}

// Interleave merges planes into a single interleaved slice. The result is
// as long as the shortest plane.
func Interleave(planes [][]float32) []float32 {
	channels := len(planes)
	if channels == 0 {
		return nil
	}

	frames := len(planes[0])
	for _, p := range planes[1:] {
		frames = min(frames, len(p))
	}

	out := make([]float32, frames*channels)
	for c, p := range planes {
		for f := range frames {
			out[f*channels+c] = p[f]
		}
	}

	return out
}
