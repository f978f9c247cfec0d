// Package oav provides parsing of the GDA zoom calibration XML file.
package oav

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Scale holds the pixel-to-physical-distance calibration for one zoom level.
type Scale struct {
	MicronsPerXPixel float64
	MicronsPerYPixel float64
}

// zoomLevelEntry mirrors one zoomLevel element of the calibration file. The
// children are kept as raw text so that a missing child is distinguishable
// from a literal zero.
type zoomLevelEntry struct {
	Level            string `xml:"level"`
	MicronsPerXPixel string `xml:"micronsPerXPixel"`
	MicronsPerYPixel string `xml:"micronsPerYPixel"`
}

// lookupScale parses the calibration file fresh and returns the scale of the
// first zoomLevel entry whose level matches the requested zoom exactly.
func lookupScale(path string, zoom float64) (Scale, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scale{}, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	defer f.Close()

	scale, err := scanScale(f, zoom)
	if err != nil {
		var notFound *ZoomLevelNotFoundError
		if errors.As(err, &notFound) {
			notFound.Path = path
			return Scale{}, err
		}
		return Scale{}, &FileAccessError{Path: path, Op: "parse", Err: err}
	}
	return scale, nil
}

// scanScale walks the XML token stream and decodes every zoomLevel element,
// regardless of nesting depth, until one matches the requested zoom.
func scanScale(r io.Reader, zoom float64) (Scale, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Scale{}, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "zoomLevel" {
			continue
		}
		var entry zoomLevelEntry
		if err := dec.DecodeElement(&entry, &start); err != nil {
			return Scale{}, err
		}
		level, err := parseCalibrationFloat("level", entry.Level)
		if err != nil {
			return Scale{}, err
		}
		// Exact float match: calibration levels are written as short decimal
		// literals that round-trip exactly through the parser.
		if level != zoom {
			continue
		}
		x, err := parseCalibrationFloat("micronsPerXPixel", entry.MicronsPerXPixel)
		if err != nil {
			return Scale{}, err
		}
		y, err := parseCalibrationFloat("micronsPerYPixel", entry.MicronsPerYPixel)
		if err != nil {
			return Scale{}, err
		}
		return Scale{MicronsPerXPixel: x, MicronsPerYPixel: y}, nil
	}
	return Scale{}, &ZoomLevelNotFoundError{Zoom: zoom}
}

// parseCalibrationFloat parses the text of one calibration child element.
func parseCalibrationFloat(name, text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("zoomLevel element is missing a %s value", name)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("zoomLevel element: bad %s value %q: %w", name, text, err)
	}
	return v, nil
}
