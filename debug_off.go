//go:build !debug
// +build !debug

package oav

var debug = false

// debug is used as a global variable to check if the package was built in debug mode.
// Debug builds additionally dump the raw parameter maps after a centring document load,
// which is too verbose for release builds running against a live beamline.
