// Package config loads shared runtime settings from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port      int     `envconfig:"PORT" default:"8080"`
	Width     float64 `envconfig:"CANVAS_WIDTH" default:"500"`
	Height    float64 `envconfig:"CANVAS_HEIGHT" default:"300"`
	Margin    float64 `envconfig:"REGION_MARGIN" default:"40"`
	MinLength float64 `envconfig:"MIN_LENGTH" default:"20"`
	MaxLength float64 `envconfig:"MAX_LENGTH" default:"120"`
	MinAngle  float64 `envconfig:"MIN_ANGLE" default:"0"`
	MaxAngle  float64 `envconfig:"MAX_ANGLE" default:"360"`
	Mode      string  `envconfig:"BOUNDARY_MODE" default:"left-to-right"`

	// Batch-run settings for the headless driver.
	Trials  int    `envconfig:"TRIALS" default:"0"`
	Workers int    `envconfig:"WORKERS" default:"1"`
	Seed    int64  `envconfig:"SEED" default:"0"`
	StepCap int    `envconfig:"STEP_CAP" default:"10000"`
	SVGOut  string `envconfig:"SVG_OUT" default:"bridge.svg"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
