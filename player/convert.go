// SPDX-License-Identifier: EPL-2.0

package player

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/audios/utils"
)

// convertFromUser encodes interleaved callback samples into dst in format
// f. It writes as many whole samples as fit and returns how many.
func convertFromUser(dst []byte, src []float32, f SampleFormat) int {
	bps := f.bytesPerSample()
	n := min(len(src), len(dst)/bps)

	switch f {
	case FormatInt16:
		for i, v := range src[:n] {
			binary.LittleEndian.PutUint16(dst[i*2:], uint16(utils.Float32ToInt16(v)))
		}
	default:
		for i, v := range src[:n] {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
		}
	}

	return n
}

// checkError tags a device failure with kind so callers can match it with
// errors.Is.
func checkError(err error, op string, kind error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", kind, op, err)
}
