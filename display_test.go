package oav

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const displayConfiguration = `#Display configuration
zoomLevel = 1.0
crosshairX = 368
crosshairY = 365
topLeftX = 383
topLeftY = 253
bottomRightX = 655
bottomRightY = 425
zoomLevel = 5.0
crosshairX = 100
crosshairY = 200
topLeftX = 383
topLeftY = 253
bottomRightX = 655
bottomRightY = 425
`

func TestExtractBeamPosition(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "display.configuration", displayConfiguration)

	centre, err := extractBeamPosition(path, 5.0)
	require.NoError(t, err)
	assert.Equal(t, BeamCentre{X: 100, Y: 200}, centre)

	centre, err = extractBeamPosition(path, 1.0)
	require.NoError(t, err)
	assert.Equal(t, BeamCentre{X: 368, Y: 365}, centre)
}

func TestExtractBeamPosition_UnknownZoom(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "display.configuration", displayConfiguration)

	_, err := extractBeamPosition(path, 7.5)
	require.Error(t, err)

	var notFound *BeamPositionNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, 7.5, notFound.Zoom)
	assert.Equal(t, path, notFound.Path)
}

func TestExtractBeamPosition_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.configuration")

	_, err := extractBeamPosition(path, 5.0)
	require.Error(t, err)

	var fileErr *FileAccessError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, "read", fileErr.Op)
	assert.Equal(t, path, fileErr.Path)
}

func TestScanBeamPosition_MarkerIsWholeLine(t *testing.T) {
	// "zoomLevel = 5.05" must not satisfy a lookup for zoom 5.0.
	doc := "zoomLevel = 5.05\ncrosshairX = 1\ncrosshairY = 2\n"

	_, err := scanBeamPosition([]byte(doc), 5.0)
	require.Error(t, err)

	var notFound *BeamPositionNotFoundError
	require.True(t, errors.As(err, &notFound))

	centre, err := scanBeamPosition([]byte(doc), 5.05)
	require.NoError(t, err)
	assert.Equal(t, BeamCentre{X: 1, Y: 2}, centre)
}

func TestScanBeamPosition_TruncatedAfterMarker(t *testing.T) {
	doc := "zoomLevel = 5.0\ncrosshairX = 100"

	_, err := scanBeamPosition([]byte(doc), 5.0)
	require.Error(t, err)

	var notFound *BeamPositionNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Contains(t, err.Error(), "ends before")
}

func TestScanBeamPosition_MalformedCrosshairLine(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"value is not an integer", "zoomLevel = 5.0\ncrosshairX = wide\ncrosshairY = 200\n"},
		{"no separator", "zoomLevel = 5.0\ncrosshairX 100\ncrosshairY = 200\n"},
		{"second line bad", "zoomLevel = 5.0\ncrosshairX = 100\ncrosshairY = 2.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanBeamPosition([]byte(tt.doc), 5.0)
			require.Error(t, err)

			var notFound *BeamPositionNotFoundError
			require.True(t, errors.As(err, &notFound))
			assert.Equal(t, 5.0, notFound.Zoom)
			require.NotNil(t, notFound.Err)
		})
	}
}

func TestScanBeamPosition_CRLF(t *testing.T) {
	doc := "zoomLevel = 5.0\r\ncrosshairX = 100\r\ncrosshairY = 200\r\n"

	centre, err := scanBeamPosition([]byte(doc), 5.0)
	require.NoError(t, err)
	assert.Equal(t, BeamCentre{X: 100, Y: 200}, centre)
}

func TestScanBeamPosition_NoTrailingNewline(t *testing.T) {
	// Crosshair labels are free-form; only the " = " separator matters.
	doc := "zoomLevel = 5.0\nx = 100\ny = 200"

	centre, err := scanBeamPosition([]byte(doc), 5.0)
	require.NoError(t, err)
	assert.Equal(t, BeamCentre{X: 100, Y: 200}, centre)
}

func TestFormatZoom(t *testing.T) {
	tests := []struct {
		zoom float64
		want string
	}{
		{1.0, "1.0"},
		{5.0, "5.0"},
		{10.0, "10.0"},
		{2.5, "2.5"},
		{0.5, "0.5"},
		{5.05, "5.05"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatZoom(tt.zoom))
		})
	}
}
