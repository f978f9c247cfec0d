// Package oav provides the typed parameter set materialized from the centring document.
package oav

import (
	"strconv"
	"strings"
)

// PreprocessMode selects the blur applied to the camera image before edge
// detection. The numeric values are the preprocess codes used by the centring
// document.
type PreprocessMode int

const (
	// PreprocessGaussianBlur applies a Gaussian blur before edge detection.
	PreprocessGaussianBlur PreprocessMode = 8
	// PreprocessMedianBlur applies a median blur before edge detection.
	PreprocessMedianBlur PreprocessMode = 9
)

// Parameters is the typed OAV parameter set for one context. Context values
// override globals; optional entries fall back to their documented defaults.
type Parameters struct {
	Exposure                float64
	AcquirePeriod           float64
	Gain                    float64
	CannyEdgeUpperThreshold float64
	CannyEdgeLowerThreshold float64
	MinimumHeight           int
	Zoom                    float64
	Preprocess              PreprocessMode
	PreprocessKernelSize    int
	DetectionScriptFilename string
	CloseKernelSize         int
	MinCallbackTime         float64
	Direction               int
	MaxTipDistance          float64
}

// Defaults for the optional parameters of the centring document.
const (
	defaultCannyEdgeLowerThreshold = 5.0
	defaultCloseKernelSize         = 11
	defaultMinCallbackTime         = 0.08
	defaultMaxTipDistance          = 300.0
)

// materializeParameters resolves every declared parameter from the layered
// view, coercing each value to its declared type. A required parameter that
// is absent from both layers fails with a ParameterTypeError naming the field.
func materializeParameters(view paramView) (Parameters, error) {
	var p Parameters
	var err error

	if p.Exposure, err = floatParam(view, "exposure"); err != nil {
		return Parameters{}, err
	}
	if p.AcquirePeriod, err = floatParam(view, "acqPeriod"); err != nil {
		return Parameters{}, err
	}
	if p.Gain, err = floatParam(view, "gain"); err != nil {
		return Parameters{}, err
	}
	if p.CannyEdgeUpperThreshold, err = floatParam(view, "CannyEdgeUpperThreshold"); err != nil {
		return Parameters{}, err
	}
	if p.CannyEdgeLowerThreshold, err = floatParamDefault(view, "CannyEdgeLowerThreshold", defaultCannyEdgeLowerThreshold); err != nil {
		return Parameters{}, err
	}
	if p.MinimumHeight, err = intParam(view, "minheight"); err != nil {
		return Parameters{}, err
	}
	if p.Zoom, err = floatParam(view, "zoom"); err != nil {
		return Parameters{}, err
	}
	preprocess, err := intParam(view, "preprocess")
	if err != nil {
		return Parameters{}, err
	}
	p.Preprocess = PreprocessMode(preprocess)
	if p.PreprocessKernelSize, err = intParam(view, "preProcessKSize"); err != nil {
		return Parameters{}, err
	}
	if p.DetectionScriptFilename, err = stringParam(view, "filename"); err != nil {
		return Parameters{}, err
	}
	if p.CloseKernelSize, err = intParamDefault(view, "close_ksize", defaultCloseKernelSize); err != nil {
		return Parameters{}, err
	}
	if p.MinCallbackTime, err = floatParamDefault(view, "min_callback_time", defaultMinCallbackTime); err != nil {
		return Parameters{}, err
	}
	if p.Direction, err = intParam(view, "direction"); err != nil {
		return Parameters{}, err
	}
	if p.MaxTipDistance, err = floatParamDefault(view, "max_tip_distance", defaultMaxTipDistance); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// floatParam resolves a required float parameter.
func floatParam(view paramView, name string) (float64, error) {
	raw, ok := view.lookup(name)
	if !ok {
		return 0, &ParameterTypeError{Field: name, Want: "float"}
	}
	return coerceFloat(name, raw)
}

// floatParamDefault resolves an optional float parameter, falling back to def
// when the parameter is absent from both layers.
func floatParamDefault(view paramView, name string, def float64) (float64, error) {
	raw, ok := view.lookup(name)
	if !ok {
		return def, nil
	}
	return coerceFloat(name, raw)
}

// intParam resolves a required int parameter.
func intParam(view paramView, name string) (int, error) {
	raw, ok := view.lookup(name)
	if !ok {
		return 0, &ParameterTypeError{Field: name, Want: "int"}
	}
	return coerceInt(name, raw)
}

// intParamDefault resolves an optional int parameter, falling back to def
// when the parameter is absent from both layers.
func intParamDefault(view paramView, name string, def int) (int, error) {
	raw, ok := view.lookup(name)
	if !ok {
		return def, nil
	}
	return coerceInt(name, raw)
}

// stringParam resolves a required string parameter.
func stringParam(view paramView, name string) (string, error) {
	raw, ok := view.lookup(name)
	if !ok {
		return "", &ParameterTypeError{Field: name, Want: "string"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &ParameterTypeError{Field: name, Value: raw, Want: "string"}
	}
	return s, nil
}

// coerceFloat accepts JSON numbers directly and strings that parse as
// decimal floats.
func coerceFloat(name string, raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, &ParameterTypeError{Field: name, Value: raw, Want: "float", Err: err}
		}
		return f, nil
	default:
		return 0, &ParameterTypeError{Field: name, Value: raw, Want: "float"}
	}
}

// coerceInt accepts JSON numbers (fractional part truncated) and strings that
// parse as decimal integers.
func coerceInt(name string, raw any) (int, error) {
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, &ParameterTypeError{Field: name, Value: raw, Want: "int", Err: err}
		}
		return n, nil
	default:
		return 0, &ParameterTypeError{Field: name, Value: raw, Want: "int"}
	}
}
