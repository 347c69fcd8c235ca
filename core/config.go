package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// GradeBand maps every percentage >= MinPercent (up to the next band's floor)
// to one letter grade and grade-point.
type GradeBand struct {
	MinPercent float64 `mapstructure:"minPercent" json:"min_percent"`
	Label      string  `mapstructure:"label" json:"label"`
	Point      float64 `mapstructure:"point" json:"point"`
}

// ExamWeightBounds constrains the internal/terminal split of a subject's final mark.
type ExamWeightBounds struct {
	InternalMin float64 `mapstructure:"internalMin"`
	InternalMax float64 `mapstructure:"internalMax"`
	TerminalMin float64 `mapstructure:"terminalMin"`
	TerminalMax float64 `mapstructure:"terminalMax"`
}

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "Darasa")
	Conf.SetDefault("rollbarToken", "")
	Conf.SetDefault("serverHost", "localhost")
	Conf.SetDefault("build", "dev")

	// national 8-band grading scale; override per deployment
	Conf.SetDefault("gradeScale", []map[string]interface{}{
		{"minPercent": 90.0, "label": "A+", "point": 4.0},
		{"minPercent": 80.0, "label": "A", "point": 3.6},
		{"minPercent": 70.0, "label": "B+", "point": 3.2},
		{"minPercent": 60.0, "label": "B", "point": 2.8},
		{"minPercent": 50.0, "label": "C+", "point": 2.4},
		{"minPercent": 40.0, "label": "C", "point": 2.0},
		{"minPercent": 35.0, "label": "D", "point": 1.6},
		{"minPercent": 0.0, "label": "NG", "point": 0.0},
	})
	Conf.SetDefault("examWeightBounds", map[string]interface{}{
		"internalMin": 25.0,
		"internalMax": 50.0,
		"terminalMin": 50.0,
		"terminalMax": 75.0,
	})

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case strings.ToUpper("TEST"):
		Conf.SetDefault("testMode", true)
	}
	Conf.SetEnvPrefix(env)
	Conf.SetDefault("env", env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

// GradeBands returns the configured grading scale bands, unvalidated;
// grading.NewScale is responsible for rejecting a malformed table.
func GradeBands() ([]GradeBand, error) {
	var bands []GradeBand
	if err := Conf.UnmarshalKey("gradeScale", &bands); err != nil {
		return nil, NewConfigurationError("gradeScale: " + err.Error())
	}
	return bands, nil
}

// WeightBounds returns the configured internal/terminal exam weight bounds.
// A bounds table no valid split can satisfy is a configuration error, fatal at
// startup like a malformed grade scale.
func WeightBounds() (ExamWeightBounds, error) {
	var bounds ExamWeightBounds
	if err := Conf.UnmarshalKey("examWeightBounds", &bounds); err != nil {
		return ExamWeightBounds{}, NewConfigurationError("examWeightBounds: " + err.Error())
	}
	if err := bounds.validate(); err != nil {
		return ExamWeightBounds{}, err
	}
	return bounds, nil
}

func (b ExamWeightBounds) validate() error {
	for _, bound := range []struct {
		name  string
		value float64
	}{
		{"internalMin", b.InternalMin},
		{"internalMax", b.InternalMax},
		{"terminalMin", b.TerminalMin},
		{"terminalMax", b.TerminalMax},
	} {
		if bound.value < 0 || bound.value > 100 {
			return NewConfigurationError(
				fmt.Sprintf("exam weight bounds: %s %v is outside [0, 100]", bound.name, bound.value))
		}
	}
	if b.InternalMin > b.InternalMax {
		return NewConfigurationError(
			fmt.Sprintf("exam weight bounds: internalMin %v exceeds internalMax %v", b.InternalMin, b.InternalMax))
	}
	if b.TerminalMin > b.TerminalMax {
		return NewConfigurationError(
			fmt.Sprintf("exam weight bounds: terminalMin %v exceeds terminalMax %v", b.TerminalMin, b.TerminalMax))
	}
	// some internal+terminal split must be able to sum to 100
	if b.InternalMin+b.TerminalMin > 100 || b.InternalMax+b.TerminalMax < 100 {
		return NewConfigurationError(
			fmt.Sprintf("exam weight bounds: no split within [%v, %v] + [%v, %v] can sum to 100",
				b.InternalMin, b.InternalMax, b.TerminalMin, b.TerminalMax))
	}
	return nil
}
