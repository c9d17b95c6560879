package tombola

import (
	"errors"
	"fmt"
	"io"

	"github.com/shared-digitaltechnologies/tombola/random"
)

type ConfigOption = func(*Config) error

func (c *Config) extend(options ...ConfigOption) error {
	optionErrors := make([]error, len(options))
	for i, option := range options {
		optionErrors[i] = option(c)
	}
	return errors.Join(optionErrors...)
}

func (c *Config) Extend(options ...ConfigOption) error {
	return c.extend(options...)
}

func Extend(options ...ConfigOption) error {
	return GlobalConfig.extend(options...)
}

// WithKind sets the strategy NewTombola builds.
func WithKind(kind Kind) ConfigOption {
	return func(o *Config) error {
		o.Kind = kind
		return nil
	}
}

// WithKindName parses and sets the strategy NewTombola builds.
func WithKindName(name string) ConfigOption {
	return func(o *Config) error {
		kind, err := ParseKind(name)
		if err != nil {
			return fmt.Errorf("tombola configuration[WithKindName]: %w", err)
		}
		o.Kind = kind
		return nil
	}
}

// WithSeed makes every draw reproducible from seed.
//
// Defaults to an unseeded crypto source.
func WithSeed(seed random.Seed) ConfigOption {
	return func(o *Config) error {
		o.Seed = SeedOption{Enable: true, Seed: seed}
		return nil
	}
}

// WithSynchronized sets whether NewTombola wraps its result in a mutex.
//
// Defaults to `false`.
func WithSynchronized(value bool) ConfigOption {
	return func(o *Config) error {
		o.Synchronized = value
		return nil
	}
}

func WithVerbosity(verbosity LogVerbosity) ConfigOption {
	return func(o *Config) error {
		o.Verbosity = verbosity
		return nil
	}
}

func WithColor(color LogColorMode) ConfigOption {
	return func(o *Config) error {
		o.Color = color
		return nil
	}
}

func WithLogOutput(w io.Writer) ConfigOption {
	return func(o *Config) error {
		o.LogOutput = w
		return nil
	}
}
