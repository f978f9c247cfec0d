// Command oavcheck resolves an OAV context against the deployment's parameter
// files and prints the materialized configuration, so a beamline operator can
// verify the centring setup without starting a data collection.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/beamtools/oav"
	"github.com/beamtools/oav/internal/config"
)

func main() {
	configPath := flag.String("config", "oavcheck.yml", "path to the oavcheck YAML configuration")
	initConfig := flag.Bool("init", false, "write a default configuration to -config and exit")
	contextName := flag.String("context", "", "centring context to resolve (overrides the configuration)")
	zoom := flag.Float64("zoom", 0, "zoom level to inspect instead of the context's own")
	flag.Parse()

	if *initConfig {
		if err := config.WriteDefaultConfig(*configPath); err != nil {
			log.Fatalf("write %s: %v", *configPath, err)
		}
		fmt.Printf("Wrote default configuration to %s\n", *configPath)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("load %s: %v", *configPath, err)
		}
		// No configuration file: run against the deployment defaults.
		cfg = &config.Config{}
	}
	if *contextName != "" {
		cfg.OAV.Context = *contextName
	}

	store, err := oav.NewParameterStore(cfg.StoreConfig())
	if err != nil {
		log.Fatalf("load OAV parameters: %v", err)
	}

	if *zoom != 0 {
		if _, err := store.LoadZoomCalibration(*zoom); err != nil {
			log.Fatalf("zoom %v: %v", *zoom, err)
		}
		if _, err := store.ExtractBeamPosition(*zoom); err != nil {
			log.Fatalf("zoom %v: %v", *zoom, err)
		}
	}

	printReport(store)
}

func printReport(s *oav.ParameterStore) {
	p := s.Parameters()
	scale := s.Scale()
	centre := s.BeamCentre()

	fmt.Printf("Context:          %s (declared: %s)\n", s.Context(), strings.Join(s.Contexts(), ", "))
	fmt.Printf("Zoom:             %v\n", p.Zoom)
	fmt.Printf("Camera:           exposure %vs, acquire period %vs, gain %v\n", p.Exposure, p.AcquirePeriod, p.Gain)
	fmt.Printf("Canny thresholds: %v lower, %v upper, min height %d\n", p.CannyEdgeLowerThreshold, p.CannyEdgeUpperThreshold, p.MinimumHeight)
	fmt.Printf("Preprocess:       mode %d, kernel %d, close kernel %d\n", p.Preprocess, p.PreprocessKernelSize, p.CloseKernelSize)
	fmt.Printf("Detection:        %s, direction %d, min callback time %vs\n", p.DetectionScriptFilename, p.Direction, p.MinCallbackTime)
	fmt.Printf("Scale:            %v x %v microns per pixel\n", scale.MicronsPerXPixel, scale.MicronsPerYPixel)
	fmt.Printf("Max tip distance: %v microns (%v pixels)\n", p.MaxTipDistance, s.MaxTipDistancePixels())
	fmt.Printf("Beam centre:      (%d, %d)\n", centre.X, centre.Y)
}
