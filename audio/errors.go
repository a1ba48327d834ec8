// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrInvalidFormat  = errors.New("sample rate and channel count must be positive")

	ErrUnsupportedChannelMapping = errors.New("unsupported channel mapping")

	// File and device failures shared by audiofile and player.
	ErrFileNotFound      = errors.New("audio file not found")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrCannotCreateFile  = errors.New("cannot create audio file")
	ErrInvalidState      = errors.New("invalid state")
	ErrDeviceOpenFailed  = errors.New("audio device open failed")
	ErrDeviceStartFailed = errors.New("audio device start failed")
)
