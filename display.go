// Package oav provides extraction of beam centres from the display configuration file.
package oav

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// BeamCentre is the pixel position of the X-ray beam on the camera image,
// recorded manually per zoom level by the beamline operator.
type BeamCentre struct {
	X int
	Y int
}

// extractBeamPosition reads the display configuration fresh and returns the
// beam centre recorded for the given zoom level.
func extractBeamPosition(path string, zoom float64) (BeamCentre, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BeamCentre{}, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	centre, err := scanBeamPosition(data, zoom)
	if err != nil {
		var notFound *BeamPositionNotFoundError
		if errors.As(err, &notFound) {
			notFound.Path = path
		}
		return BeamCentre{}, err
	}
	return centre, nil
}

// scanBeamPosition scans display-configuration lines for the marker of the
// given zoom level; the two lines immediately after the marker carry the
// crosshair x and y pixel coordinates.
func scanBeamPosition(data []byte, zoom float64) (BeamCentre, error) {
	marker := "zoomLevel = " + formatZoom(zoom)
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if strings.TrimRight(line, "\r") != marker {
			continue
		}
		if i+2 >= len(lines) {
			return BeamCentre{}, &BeamPositionNotFoundError{Zoom: zoom, Err: errors.New("file ends before the crosshair lines")}
		}
		x, err := crosshairValue(lines[i+1])
		if err != nil {
			return BeamCentre{}, &BeamPositionNotFoundError{Zoom: zoom, Err: err}
		}
		y, err := crosshairValue(lines[i+2])
		if err != nil {
			return BeamCentre{}, &BeamPositionNotFoundError{Zoom: zoom, Err: err}
		}
		return BeamCentre{X: x, Y: y}, nil
	}
	return BeamCentre{}, &BeamPositionNotFoundError{Zoom: zoom}
}

// crosshairValue parses a "<label> = <int>" line and returns the integer.
// Surplus " = " separators keep the second token, matching how the files
// have always been read.
func crosshairValue(line string) (int, error) {
	parts := strings.Split(strings.TrimRight(line, "\r"), " = ")
	if len(parts) < 2 {
		return 0, fmt.Errorf("crosshair line %q is not of the form \"label = value\"", line)
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("crosshair line %q: %w", line, err)
	}
	return v, nil
}

// formatZoom renders a zoom level the way the display configuration writes
// its markers: shortest decimal form, with a trailing .0 for integral values
// (5 -> "5.0", 2.5 -> "2.5").
func formatZoom(zoom float64) string {
	s := strconv.FormatFloat(zoom, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
