// Package config loads FlowLogic settings from YAML.
//
// Every field has a default (see Default); a file only needs the keys it
// changes:
//
//	optimizer:
//	  kind: adam
//	  lr: 0.05
//	run:
//	  tick: 50ms
//	log:
//	  level: debug
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/SubhamSaiSamal/FlowLogic/internal/calculus"
	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
	"github.com/SubhamSaiSamal/FlowLogic/internal/kmeans"
	"github.com/SubhamSaiSamal/FlowLogic/internal/optim"
	"github.com/SubhamSaiSamal/FlowLogic/internal/regression"
	"github.com/SubhamSaiSamal/FlowLogic/internal/train"
)

// Config is the full configuration.
type Config struct {
	Optimizer  OptimizerConfig  `yaml:"optimizer"`
	Regression RegressionConfig `yaml:"regression"`
	KMeans     KMeansConfig     `yaml:"kmeans"`
	Descent    DescentConfig    `yaml:"descent"`
	Run        RunConfig        `yaml:"run"`
	Log        LogConfig        `yaml:"log"`
}

// OptimizerConfig selects and tunes the regression optimizer.
type OptimizerConfig struct {
	Kind     string  `yaml:"kind"`
	LR       float64 `yaml:"lr"`
	Momentum float64 `yaml:"momentum"`
	Beta1    float64 `yaml:"beta1"`
	Beta2    float64 `yaml:"beta2"`
	Epsilon  float64 `yaml:"epsilon"`
	Alpha    float64 `yaml:"alpha"`
}

// RegressionConfig configures regression runs.
type RegressionConfig struct {
	Dataset      string `yaml:"dataset"`
	Seed         int64  `yaml:"seed"`
	Degree       int    `yaml:"degree"`
	HistoryLimit int    `yaml:"history_limit"`
}

// KMeansConfig configures clustering runs.
type KMeansConfig struct {
	Dataset      string `yaml:"dataset"`
	K            int    `yaml:"k"`
	Seed         int64  `yaml:"seed"`
	HistoryLimit int    `yaml:"history_limit"`
}

// DescentConfig configures 1-D descent runs. Expression, when set, takes
// precedence over Function.
type DescentConfig struct {
	Function      string  `yaml:"function"`
	Expression    string  `yaml:"expression"`
	Start         float64 `yaml:"start"`
	LR            float64 `yaml:"lr"`
	Threshold     float64 `yaml:"threshold"`
	MaxIterations int     `yaml:"max_iterations"`
	Step          float64 `yaml:"step"`
}

// RunConfig configures the training runner.
type RunConfig struct {
	MaxIterations int           `yaml:"max_iterations"`
	Tolerance     float64       `yaml:"tolerance"`
	Tick          time.Duration `yaml:"tick"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Optimizer: OptimizerConfig{
			Kind:     string(optim.KindSGD),
			LR:       regression.DefaultLR,
			Momentum: 0.9,
			Beta1:    0.9,
			Beta2:    0.999,
			Epsilon:  1e-8,
			Alpha:    0.99,
		},
		Regression: RegressionConfig{
			Dataset:      dataset.StudyScoresID,
			Seed:         42,
			Degree:       1,
			HistoryLimit: regression.DefaultHistoryLimit,
		},
		KMeans: KMeansConfig{
			Dataset:      dataset.CustomerSegmentsID,
			K:            3,
			Seed:         42,
			HistoryLimit: kmeans.DefaultHistoryLimit,
		},
		Descent: DescentConfig{
			Function:      string(calculus.Quadratic),
			Start:         4,
			LR:            0.1,
			Threshold:     0.01,
			MaxIterations: 1000,
			Step:          calculus.DefaultStep,
		},
		Run: RunConfig{
			MaxIterations: train.DefaultMaxIterations,
			Tolerance:     1e-9,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected. Empty input yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// OptimizerSettings converts the optimizer section for optim.New.
func (c Config) OptimizerSettings() optim.Settings {
	o := c.Optimizer
	return optim.Settings{
		Kind:     optim.Kind(o.Kind),
		LR:       o.LR,
		Momentum: o.Momentum,
		Beta1:    o.Beta1,
		Beta2:    o.Beta2,
		Epsilon:  o.Epsilon,
		Alpha:    o.Alpha,
	}
}

// RegressionSettings converts the regression section.
func (c Config) RegressionSettings() regression.Config {
	return regression.Config{HistoryLimit: c.Regression.HistoryLimit}
}

// KMeansSettings converts the kmeans section.
func (c Config) KMeansSettings() kmeans.Config {
	return kmeans.Config{
		K:            c.KMeans.K,
		Seed:         c.KMeans.Seed,
		HistoryLimit: c.KMeans.HistoryLimit,
	}
}

// DescentSettings converts the descent section.
func (c Config) DescentSettings() calculus.DescentConfig {
	d := c.Descent
	return calculus.DescentConfig{
		LR:            d.LR,
		Start:         d.Start,
		Threshold:     d.Threshold,
		MaxIterations: d.MaxIterations,
		Step:          d.Step,
	}
}

// RunSettings converts the run section.
func (c Config) RunSettings() train.RunConfig {
	return train.RunConfig{
		MaxIterations: c.Run.MaxIterations,
		Tick:          c.Run.Tick,
	}
}

// Logger builds a zap logger from the log section.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
