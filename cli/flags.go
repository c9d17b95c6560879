package cli

import (
	"github.com/shared-digitaltechnologies/tombola"
	"github.com/shared-digitaltechnologies/tombola/random"
	"github.com/spf13/pflag"
)

type cliFlags struct {
	set     *pflag.FlagSet
	color   tombola.LogColorMode
	quiet   bool
	verbose bool
	envFile []string
	noEnv   bool
}

func addCliFlags(flags *pflag.FlagSet, target *cliFlags) {
	target.set = flags
	flags.Var(&target.color, "color", "Log using colors")
	flags.BoolVarP(&target.quiet, "quiet", "q", target.quiet, "Minimize logs")
	flags.BoolVarP(&target.verbose, "verbose", "v", target.verbose, "Enable verbose logs")
	flags.StringSliceVar(&target.envFile, "env-file", target.envFile, "Load TOMBOLA_* variables from dotenv files")
	flags.BoolVar(&target.noEnv, "no-env", target.noEnv, "Ignore TOMBOLA_* environment variables")
}

// applyToConfig loads the environment first, so that explicitly given
// flags win over it.
func (flags *cliFlags) applyToConfig(c *tombola.Config) error {
	if len(flags.envFile) > 0 {
		if err := c.Extend(tombola.WithEnvFile(flags.envFile...)); err != nil {
			return err
		}
	} else if !flags.noEnv {
		if err := c.Extend(tombola.WithEnv()); err != nil {
			return err
		}
	}

	if flags.set.Changed("color") {
		c.Color = flags.color
	}
	if flags.set.Changed("quiet") || flags.set.Changed("verbose") {
		c.Verbosity = tombola.LOG_DEFAULT
		if flags.quiet {
			c.Verbosity = tombola.LOG_QUIET
		}
		if flags.verbose {
			c.Verbosity = tombola.LOG_VERBOSE
		}
	}
	return nil
}

type tombolaFlags struct {
	set  *pflag.FlagSet
	kind tombola.Kind
	seed tombola.SeedOption
	sync bool
}

func addTombolaFlags(flags *pflag.FlagSet, target *tombolaFlags, config *tombola.Config) {
	target.set = flags
	target.kind = config.Kind
	target.seed = config.Seed
	target.sync = config.Synchronized

	flags.VarP(&target.kind, "kind", "k", "Tombola strategy: indexblower, list or shufflebag")
	addSeedFlag(flags, &target.seed)
	flags.BoolVar(&target.sync, "sync", target.sync, "Guard the tombola with a mutex")
}

func addSeedFlag(flags *pflag.FlagSet, target *tombola.SeedOption) {
	flags.VarP(target, "seed", "s", "Draw reproducibly from SEED (a fresh one when given without value)")
	flag := flags.Lookup("seed")
	if target.Enable {
		flag.DefValue = target.Seed.String()
	} else {
		flag.DefValue = "false"
	}
	flag.NoOptDefVal = "true"
}

// applyToConfig overrides c with the flags that were given explicitly, so
// that they win over the environment.
func (flags *tombolaFlags) applyToConfig(c *tombola.Config) error {
	if flags.set.Changed("kind") {
		c.Kind = flags.kind
	}
	if flags.set.Changed("seed") {
		c.Seed = flags.seed
	}
	if flags.set.Changed("sync") {
		c.Synchronized = flags.sync
	}
	return nil
}

type itemFlags struct {
	fake      random.ItemKind
	fakeCount int
}

func addItemFlags(flags *pflag.FlagSet, target *itemFlags) {
	target.fakeCount = 10
	flags.Var(&target.fake, "fake", "Load fake items: animal, color, name or word")
	flags.IntVar(&target.fakeCount, "fake-count", target.fakeCount, "Number of fake items to load")
}
