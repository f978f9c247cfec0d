// Package config provides configuration loading functionality.
package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/beamtools/oav"
)

// Load loads the oavcheck configuration from the given path. A missing file
// is reported as-is so callers can detect it with os.IsNotExist and fall back
// to the deployment defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var config Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the configuration as YAML to the given path.
func SaveConfig(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	if err := encoder.Encode(cfg); err != nil {
		return err
	}
	return nil
}

// WriteDefaultConfig writes a default oavcheck.yml to the given path,
// pointing at the stock i03 deployment files.
func WriteDefaultConfig(path string) error {
	cfg := Config{}
	cfg.OAV.Context = oav.DefaultContext
	cfg.OAV.ZoomParamsFile = oav.DefaultZoomParamsFile
	cfg.OAV.OAVConfigJSON = oav.DefaultOAVConfigJSON
	cfg.OAV.DisplayConfig = oav.DefaultDisplayConfig
	return SaveConfig(&cfg, path)
}

// StoreConfig converts the loaded configuration into the StoreConfig consumed
// by oav.NewParameterStore. Unset fields stay empty so the store applies its
// own defaults.
func (c *Config) StoreConfig() *oav.StoreConfig {
	return &oav.StoreConfig{
		Context:        c.OAV.Context,
		ZoomParamsFile: c.OAV.ZoomParamsFile,
		OAVConfigJSON:  c.OAV.OAVConfigJSON,
		DisplayConfig:  c.OAV.DisplayConfig,
	}
}
