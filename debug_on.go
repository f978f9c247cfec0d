//go:build debug
// +build debug

package oav

var debug = true
