package tombola

import (
	"cmp"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shared-digitaltechnologies/tombola/random"
	"go.uber.org/zap"
)

type Config struct {
	Kind         Kind         `env:"TOMBOLA_KIND"`
	Seed         SeedOption   `env:"TOMBOLA_SEED"`
	Synchronized bool         `env:"TOMBOLA_SYNC"`
	Verbosity    LogVerbosity `env:"TOMBOLA_LOG"`
	Color        LogColorMode `env:"TOMBOLA_COLOR"`

	LogOutput io.Writer
}

var GlobalConfig Config

func init() {
	GlobalConfig = defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Kind:      ShuffleBagKind,
		LogOutput: os.Stderr,
	}
}

func NewConfig(options ...ConfigOption) (config *Config, err error) {
	c := defaultConfig()
	config = &c

	// Apply options
	err = config.extend(options...)
	if err != nil {
		return
	}

	return
}

func (c *Config) Copy() *Config {
	if c == nil {
		c = &GlobalConfig
	}

	res := *c
	return &res
}

// Rand returns the source the configured tombolas draw from: a PCG faker
// when a seed is set, a crypto faker otherwise.
func (c *Config) Rand() random.Faker {
	if c == nil {
		c = &GlobalConfig
	}

	if c.Seed.Enable {
		return c.Seed.Seed.NewFakerOffset(0)
	}
	return random.NewCryptoFaker()
}

// RandFor is Rand with a stream of its own for the named consumer when a
// seed is set.
func (c *Config) RandFor(name string) random.Faker {
	if c == nil {
		c = &GlobalConfig
	}

	if c.Seed.Enable {
		return c.Seed.Seed.NewFaker([]byte(name))
	}
	return random.NewCryptoFaker()
}

func (c *Config) Logger() *zap.Logger {
	if c == nil {
		c = &GlobalConfig
	}

	w := c.LogOutput
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(c.Verbosity, c.Color, w)
}

// NewTombola builds a tombola as configured by c, drawing from rand.
func NewTombola[T cmp.Ordered](c *Config, rand random.Rand, items ...T) (Tombola[T], error) {
	if c == nil {
		c = &GlobalConfig
	}

	t, err := New(c.Kind, rand, items...)
	if err != nil {
		return nil, err
	}

	if c.Synchronized {
		return Synchronize(t), nil
	}
	return t, nil
}

// SeedOption is an optional seed. It parses "true"/"false" as well as
// decimal, hex or octal seeds, which also enable it.
type SeedOption struct {
	Enable bool
	Seed   random.Seed
}

func (o *SeedOption) Set(val string) error {
	val = strings.ToLower(val)

	intVal, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		boolVal, boolErr := strconv.ParseBool(val)
		if boolErr != nil {
			return err
		}
		return o.enable(boolVal)
	}

	o.Enable = true
	o.Seed = random.Seed(intVal)
	return nil
}

var newSeed = random.NewSeed

func (o *SeedOption) enable(value bool) error {
	if value && o.Seed == 0 {
		seed, err := newSeed()
		if err != nil {
			return err
		}
		o.Seed = seed
	}
	o.Enable = value
	return nil
}

func (o *SeedOption) String() string {
	if !o.Enable {
		return "false"
	} else {
		return o.Seed.String()
	}
}

func (o *SeedOption) Type() string {
	return "seed"
}

func (o *SeedOption) UnmarshalText(text []byte) error {
	return o.Set(string(text))
}
