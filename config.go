package main

import "time"

// Config holds the process-wide tunables for one run. It is built with
// the same functional-options shape gothird uses for its own VMOption:
// small option values that each know how to apply themselves to a
// Config, composed by New.
type Config struct {
	MaxRandomFloat   float32
	MinRandomFloat   float32
	MaxRandomInteger int32
	MinRandomInteger int32

	EvalPushLimit int
	EvalTimeLimit time.Duration
	GrowthCap     int

	NewERCNameProbability float64

	MaxPointsInRandomExpressions int
	MaxPointsInProgram           int

	// Logf, if set, receives one call per interpreter step with a trace
	// line; adapted from gothird's WithLogf/logio.Logger pairing (see
	// main.go's -trace flag).
	Logf func(mess string, args ...interface{})
}

// defaultConfig mirrors gothird's defaultOptions: a baseline that every
// New call starts from before applying caller overrides.
var defaultConfig = Config{
	MaxRandomFloat:   1,
	MinRandomFloat:   -1,
	MaxRandomInteger: 10,
	MinRandomInteger: -10,

	EvalPushLimit: 10000,
	EvalTimeLimit: time.Second,
	GrowthCap:     500,

	NewERCNameProbability: 0.5,

	MaxPointsInRandomExpressions: 50,
	MaxPointsInProgram:           1000,
}

// Option configures a Config; New applies a sequence of them over
// defaultConfig.
type Option interface{ apply(cfg *Config) }

type optionFunc func(cfg *Config)

func (f optionFunc) apply(cfg *Config) { f(cfg) }

func WithRandomFloatRange(min, max float32) Option {
	return optionFunc(func(cfg *Config) { cfg.MinRandomFloat, cfg.MaxRandomFloat = min, max })
}

func WithRandomIntegerRange(min, max int32) Option {
	return optionFunc(func(cfg *Config) { cfg.MinRandomInteger, cfg.MaxRandomInteger = min, max })
}

func WithEvalPushLimit(limit int) Option {
	return optionFunc(func(cfg *Config) { cfg.EvalPushLimit = limit })
}

func WithEvalTimeLimit(d time.Duration) Option {
	return optionFunc(func(cfg *Config) { cfg.EvalTimeLimit = d })
}

func WithGrowthCap(cap int) Option {
	return optionFunc(func(cfg *Config) { cfg.GrowthCap = cap })
}

func WithNewERCNameProbability(p float64) Option {
	return optionFunc(func(cfg *Config) { cfg.NewERCNameProbability = p })
}

func WithMaxPointsInRandomExpressions(n int) Option {
	return optionFunc(func(cfg *Config) { cfg.MaxPointsInRandomExpressions = n })
}

func WithMaxPointsInProgram(n int) Option {
	return optionFunc(func(cfg *Config) { cfg.MaxPointsInProgram = n })
}

func WithLogf(logf func(mess string, args ...interface{})) Option {
	return optionFunc(func(cfg *Config) { cfg.Logf = logf })
}

func (cfg Config) apply(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&cfg)
		}
	}
	return cfg
}
