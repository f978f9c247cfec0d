// Package oav defines the typed errors raised while loading and resolving OAV parameters.
package oav

import (
	"fmt"
	"strings"
)

// FileAccessError reports a parameter file that is missing, unreadable or
// malformed. Op is "read" for filesystem failures and "parse" for content
// failures; the underlying cause is available via errors.Unwrap.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("oav config %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParameterTypeError reports a parameter that is missing from both the context
// and global layers, or whose value cannot be coerced to its declared type.
// Value holds the raw value as loaded; it is nil when the parameter is absent.
type ParameterTypeError struct {
	Field string
	Value any
	Want  string
	Err   error
}

func (e *ParameterTypeError) Error() string {
	if e.Value == nil && e.Err == nil {
		return fmt.Sprintf("oav parameter %q is missing and has no default (want %s)", e.Field, e.Want)
	}
	msg := fmt.Sprintf("oav parameter %q: cannot coerce %v (%T) to %s", e.Field, e.Value, e.Value, e.Want)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParameterTypeError) Unwrap() error { return e.Err }

// ZoomLevelNotFoundError reports that the zoom calibration file has no entry
// for the requested zoom level.
type ZoomLevelNotFoundError struct {
	Zoom float64
	Path string
}

func (e *ZoomLevelNotFoundError) Error() string {
	return fmt.Sprintf("no micronsPer[X,Y]Pixel entry in %s for zoom level %v", e.Path, e.Zoom)
}

// BeamPositionNotFoundError reports that no beam centre could be extracted
// from the display configuration for the requested zoom level, either because
// the marker line is absent or because the crosshair lines following it are
// truncated or not parseable.
type BeamPositionNotFoundError struct {
	Zoom float64
	Path string
	Err  error
}

func (e *BeamPositionNotFoundError) Error() string {
	msg := fmt.Sprintf("could not extract beam position at zoom level %v from %s", e.Zoom, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *BeamPositionNotFoundError) Unwrap() error { return e.Err }

// UnknownContextError reports a context switch to a name the centring
// configuration does not declare.
type UnknownContextError struct {
	Context string
	Known   []string
}

func (e *UnknownContextError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown OAV context %q", e.Context)
	}
	return fmt.Sprintf("unknown OAV context %q (declared contexts: %s)", e.Context, strings.Join(e.Known, ", "))
}
