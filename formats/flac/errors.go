// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile wraps failures to read the fLaC marker or STREAMINFO.
	ErrNotFlacFile = errors.New("not a FLAC stream")

	// ErrUnsupportedBitDepth indicates a sample size outside 4..32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrChannelMismatch indicates a frame whose subframe count differs
	// from STREAMINFO.
	ErrChannelMismatch = errors.New("FLAC frame channel count mismatch")
)
