// SPDX-License-Identifier: EPL-2.0

// Package player streams audio produced by a render callback to an output
// device.
//
// A Player is configured with New and started once:
//
//	p, err := player.New(44100, 512, 2)
//	if err != nil {
//	    // audio.ErrInvalidFormat
//	}
//	defer p.Close()
//
//	err = p.Start(func(buf []float32, frames int, userData any) {
//	    osc := userData.(*tone.Sine)
//	    osc.Fill(buf, frames)
//	}, osc)
//
// The callback always receives exactly the configured frame size. Device
// failures are reported as audio.ErrDeviceOpenFailed or
// audio.ErrDeviceStartFailed; starting twice gives audio.ErrInvalidState.
//
// # Backends
//
// OtoDevice is the default and plays interleaved float32 or int16. Build
// with -tags portaudio to get a working PortAudioDevice, which renders
// planar float32. Tests and tools can pass their own Device via
// WithDevice.
package player
