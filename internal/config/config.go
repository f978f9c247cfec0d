// Package config defines the oavcheck configuration structure.
package config

// Config represents the complete oavcheck configuration loaded from YAML.
type Config struct {
	OAV struct {
		Context        string `yaml:"context,omitempty"`          // centring context to resolve; default loopCentring
		ZoomParamsFile string `yaml:"zoom_params_file,omitempty"` // zoom calibration XML, e.g. jCameraManZoomLevels.xml
		OAVConfigJSON  string `yaml:"oav_config_json,omitempty"`  // centring JSON document, e.g. OAVCentring.json
		DisplayConfig  string `yaml:"display_config,omitempty"`   // display configuration carrying the beam crosshairs
	} `yaml:"oav"`
}
