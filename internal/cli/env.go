package cli

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/matzehuels/stackbar/pkg/chart/animate"
	"github.com/matzehuels/stackbar/pkg/chart/render"
	"github.com/matzehuels/stackbar/pkg/pipeline"
)

// envPrefix is prepended to every environment variable name.
const envPrefix = "STACKBAR"

// Env holds flag defaults read from the environment.
type Env struct {
	Width    float64 `envconfig:"WIDTH" default:"960"`
	Height   float64 `envconfig:"HEIGHT" default:"500"`
	Frames   int     `envconfig:"FRAMES" default:"4"`
	YLabel   string  `envconfig:"Y_LABEL" default:"Value"`
	Easing   string  `envconfig:"EASING" default:"linear"`
	CacheDir string  `envconfig:"CACHE_DIR"`
	NoCache  bool    `envconfig:"NO_CACHE"`
}

// LoadEnv reads STACKBAR_* variables.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return Env{}, err
	}
	return env, nil
}

func defaultEnv() Env {
	return Env{
		Width:  pipeline.DefaultWidth,
		Height: pipeline.DefaultHeight,
		Frames: pipeline.DefaultFrames,
		YLabel: render.DefaultYAxisLabel,
		Easing: string(animate.DefaultEasing),
	}
}
