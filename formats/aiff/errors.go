// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a FORM/AIFF or FORM/AIFC file.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates a sample size outside 8, 16, 24 and 32.
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")

	// ErrUnsupportedAiffLayout indicates a COMM chunk that could not be read.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
