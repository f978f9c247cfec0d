package oav

import (
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAccessError_Unwrap(t *testing.T) {
	err := error(&FileAccessError{Path: "/etc/OAVCentring.json", Op: "read", Err: os.ErrNotExist})

	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "/etc/OAVCentring.json")
	assert.Contains(t, err.Error(), "read")
}

func TestParameterTypeError_Missing(t *testing.T) {
	err := error(&ParameterTypeError{Field: "gain", Want: "float"})

	assert.Contains(t, err.Error(), `"gain"`)
	assert.Contains(t, err.Error(), "missing and has no default")
	assert.Nil(t, errors.Unwrap(err))
}

func TestParameterTypeError_Coercion(t *testing.T) {
	_, cause := strconv.ParseFloat("fast", 64)
	require.Error(t, cause)
	err := error(&ParameterTypeError{Field: "exposure", Value: "fast", Want: "float", Err: cause})

	assert.Contains(t, err.Error(), `"exposure"`)
	assert.Contains(t, err.Error(), "fast")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestZoomLevelNotFoundError_Message(t *testing.T) {
	err := error(&ZoomLevelNotFoundError{Zoom: 7.5, Path: "/xml/jCameraManZoomLevels.xml"})

	assert.Contains(t, err.Error(), "7.5")
	assert.Contains(t, err.Error(), "/xml/jCameraManZoomLevels.xml")
}

func TestBeamPositionNotFoundError_Unwrap(t *testing.T) {
	cause := errors.New("file ends before the crosshair lines")
	err := error(&BeamPositionNotFoundError{Zoom: 5.0, Path: "/var/display.configuration", Err: cause})

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "/var/display.configuration")
	assert.Contains(t, err.Error(), cause.Error())
}

func TestUnknownContextError_Message(t *testing.T) {
	err := error(&UnknownContextError{Context: "bottomCentring"})
	assert.Contains(t, err.Error(), `"bottomCentring"`)

	err = error(&UnknownContextError{Context: "bottomCentring", Known: []string{"loopCentring", "xrayCentring"}})
	assert.Contains(t, err.Error(), "loopCentring, xrayCentring")
}
