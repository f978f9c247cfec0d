// Package oav loads, merges and resolves the camera and beam configuration of
// an on-axis viewer from its three deployment files: the centring JSON
// document, the zoom calibration XML file and the display configuration.
package oav

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// Deployment defaults for the three parameter files and the initial context.
const (
	DefaultContext        = "loopCentring"
	DefaultZoomParamsFile = "/dls_sw/i03/software/gda/configurations/i03-config/xml/jCameraManZoomLevels.xml"
	DefaultOAVConfigJSON  = "/dls_sw/i03/software/gda/configurations/i03-config/etc/OAVCentring.json"
	DefaultDisplayConfig  = "/dls_sw/i03/software/gda_versions/var/display.configuration"
)

// StoreConfig selects the context and file locations for a ParameterStore.
// Zero-value fields fall back to the deployment defaults.
type StoreConfig struct {
	Context        string
	ZoomParamsFile string
	OAVConfigJSON  string
	DisplayConfig  string
}

// ParameterStore holds the merged OAV configuration for one context together
// with the zoom-derived calibration state. All three files are loaded eagerly
// at construction; context switches re-slice the already-loaded maps, while
// calibration and beam-position loads re-read their files fresh. A store is
// not safe for concurrent use.
type ParameterStore struct {
	zoomParamsFile string
	oavConfigJSON  string
	displayConfig  string

	context  string
	globals  map[string]any
	contexts map[string]map[string]any

	params Parameters

	scale                Scale
	maxTipDistancePixels float64

	beamCentre BeamCentre
}

// NewParameterStore creates a ParameterStore. cfg may be nil; then the
// deployment defaults are used for the context and all three file paths.
// Construction is all-or-nothing: the centring document is loaded and split,
// the configured context is materialized, and the zoom calibration and beam
// centre for the materialized zoom are resolved. Any failure is returned as
// one of the typed errors of this package.
func NewParameterStore(cfg *StoreConfig) (*ParameterStore, error) {
	resolved := resolveStoreConfig(cfg)
	s := &ParameterStore{
		zoomParamsFile: resolved.ZoomParamsFile,
		oavConfigJSON:  resolved.OAVConfigJSON,
		displayConfig:  resolved.DisplayConfig,
	}

	globals, contexts, err := loadCentringFile(s.oavConfigJSON)
	if err != nil {
		return nil, err
	}
	s.globals = globals
	s.contexts = contexts
	log.WithField("caller", "oav").Debugf("Loaded %s: %d globals, %d contexts", s.oavConfigJSON, len(globals), len(contexts))
	if debug {
		log.WithField("caller", "oav").Debugf("Raw globals: %v", s.globals)
		log.WithField("caller", "oav").Debugf("Raw contexts: %v", s.contexts)
	}

	if _, err := s.SelectContext(resolved.Context); err != nil {
		return nil, err
	}
	if _, err := s.LoadZoomCalibration(s.params.Zoom); err != nil {
		return nil, err
	}
	if _, err := s.ExtractBeamPosition(s.params.Zoom); err != nil {
		return nil, err
	}
	return s, nil
}

// resolveStoreConfig fills the deployment defaults into unset fields.
func resolveStoreConfig(cfg *StoreConfig) StoreConfig {
	out := StoreConfig{
		Context:        DefaultContext,
		ZoomParamsFile: DefaultZoomParamsFile,
		OAVConfigJSON:  DefaultOAVConfigJSON,
		DisplayConfig:  DefaultDisplayConfig,
	}
	if cfg == nil {
		return out
	}
	if cfg.Context != "" {
		out.Context = cfg.Context
	}
	if cfg.ZoomParamsFile != "" {
		out.ZoomParamsFile = cfg.ZoomParamsFile
	}
	if cfg.OAVConfigJSON != "" {
		out.OAVConfigJSON = cfg.OAVConfigJSON
	}
	if cfg.DisplayConfig != "" {
		out.DisplayConfig = cfg.DisplayConfig
	}
	return out
}

// SelectContext switches the active context to name and re-materializes the
// typed parameters from the already-loaded maps; no file is re-read. On
// success the store's active snapshot is replaced and returned. On any error
// the previous context and snapshot are kept. Zoom-derived state is not
// refreshed here; call LoadZoomCalibration and ExtractBeamPosition when the
// new context changes the zoom.
func (s *ParameterStore) SelectContext(name string) (Parameters, error) {
	layer, ok := s.contexts[name]
	if !ok {
		return Parameters{}, &UnknownContextError{Context: name, Known: s.Contexts()}
	}
	params, err := materializeParameters(paramView{context: layer, global: s.globals})
	if err != nil {
		return Parameters{}, err
	}
	s.context = name
	s.params = params
	log.WithField("caller", "oav").Debugf("Selected context %q (zoom %v)", name, params.Zoom)
	return params, nil
}

// Context returns the name of the active context.
func (s *ParameterStore) Context() string { return s.context }

// Contexts returns the sorted names of all contexts the centring document declares.
func (s *ParameterStore) Contexts() []string {
	names := make([]string, 0, len(s.contexts))
	for name := range s.contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parameters returns the materialized parameter snapshot of the active context.
func (s *ParameterStore) Parameters() Parameters { return s.params }

// LoadZoomCalibration parses the zoom calibration file fresh and adopts the
// scale of the first entry matching zoom exactly. On success the maximum tip
// distance is recomputed in pixels from the active MaxTipDistance parameter.
func (s *ParameterStore) LoadZoomCalibration(zoom float64) (Scale, error) {
	scale, err := lookupScale(s.zoomParamsFile, zoom)
	if err != nil {
		return Scale{}, err
	}
	s.scale = scale
	s.maxTipDistancePixels = s.params.MaxTipDistance / scale.MicronsPerXPixel
	log.WithField("caller", "oav").Debugf("Zoom %v: %v microns per x pixel, %v microns per y pixel", zoom, scale.MicronsPerXPixel, scale.MicronsPerYPixel)
	return scale, nil
}

// ReloadZoomCalibration reloads the calibration for the active context's zoom.
func (s *ParameterStore) ReloadZoomCalibration() (Scale, error) {
	return s.LoadZoomCalibration(s.params.Zoom)
}

// Scale returns the calibration adopted by the last successful zoom load.
func (s *ParameterStore) Scale() Scale { return s.scale }

// MaxTipDistancePixels returns the active maximum tip distance converted to
// pixels with the adopted calibration.
func (s *ParameterStore) MaxTipDistancePixels() float64 { return s.maxTipDistancePixels }

// ExtractBeamPosition re-reads the display configuration and adopts the beam
// centre recorded for the given zoom level.
func (s *ParameterStore) ExtractBeamPosition(zoom float64) (BeamCentre, error) {
	centre, err := extractBeamPosition(s.displayConfig, zoom)
	if err != nil {
		return BeamCentre{}, err
	}
	s.beamCentre = centre
	log.WithField("caller", "oav").Infof("Beam centre: (%d, %d)", centre.X, centre.Y)
	return centre, nil
}

// ReloadBeamPosition re-extracts the beam centre for the active context's zoom.
func (s *ParameterStore) ReloadBeamPosition() (BeamCentre, error) {
	return s.ExtractBeamPosition(s.params.Zoom)
}

// BeamCentre returns the beam centre adopted by the last successful extraction.
func (s *ParameterStore) BeamCentre() BeamCentre { return s.beamCentre }

// CalculateBeamDistance returns the distance from the adopted beam centre to
// the given camera position, in pixels, as (horizontal, vertical).
func (s *ParameterStore) CalculateBeamDistance(horizontalPixels, verticalPixels int) (int, int) {
	return s.beamCentre.X - horizontalPixels, s.beamCentre.Y - verticalPixels
}
