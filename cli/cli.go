package cli

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/shared-digitaltechnologies/tombola"
	"github.com/shared-digitaltechnologies/tombola/deck"
	"github.com/shared-digitaltechnologies/tombola/tombolatest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Cli struct {
	*tombola.Config
	*cobra.Command

	logger *zap.Logger

	flags struct {
		cli     cliFlags
		tombola tombolaFlags
	}
}

var (
	drawGroup = &cobra.Group{ID: "draw", Title: "Drawing commands:"}
	infoGroup = &cobra.Group{ID: "info", Title: "Informational commands:"}
)

func NewCli(name string, config *tombola.Config) Cli {
	if config == nil {
		config = &tombola.GlobalConfig
	}

	cli := Cli{
		Config: config,
		logger: zap.NewNop(),
	}

	rootCmd := cobra.Command{
		Use:           name + " [OPTIONS] <COMMAND> [ARGS...]",
		Short:         "Draws items at random from depletable containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, args []string) error {
			cli.flags.cli.set = command.Flags()
			cli.flags.tombola.set = command.Flags()
			err := config.Extend(
				cli.flags.cli.applyToConfig,
				cli.flags.tombola.applyToConfig,
			)
			if err != nil {
				return err
			}

			if config.LogOutput == nil {
				config.LogOutput = command.ErrOrStderr()
			}
			cli.logger = config.Logger()
			return nil
		},
	}
	addCliFlags(rootCmd.PersistentFlags(), &cli.flags.cli)
	addTombolaFlags(rootCmd.PersistentFlags(), &cli.flags.tombola, cli.Config)
	rootCmd.AddGroup(drawGroup, infoGroup)

	cli.Command = &rootCmd

	var drawItems itemFlags
	var drawCount int
	var drawCopy bool
	drawCmd := &cobra.Command{
		Use:   "draw [ITEMS...]",
		Short: "Loads ITEMS into a tombola and draws them",
		Long: `
Loads ITEMS into a tombola of the configured kind and picks COUNT of them,
printing one item per line in draw order.

Items are treated as integers when all of them are integers, and as strings
otherwise. Use --fake to load generated items instead.

With --copy the whole tombola is drained into tab separated rows of draw
position and item, which load directly with
  psql -c "\copy draws (position, item) from stdin"
`,
		Aliases: []string{"d"},
		GroupID: "draw",
		RunE: func(cmd *cobra.Command, args []string) error {
			ints, strs, err := cli.items(args, drawItems)
			if err != nil {
				return err
			}
			if drawCopy {
				if drawCount > 0 {
					return errors.New("--copy drains the tombola and cannot be combined with --count")
				}
				if ints != nil {
					return copyRows(&cli, cmd, ints)
				}
				return copyRows(&cli, cmd, strs)
			}
			if ints != nil {
				return draw(&cli, cmd, ints, drawCount)
			}
			return draw(&cli, cmd, strs, drawCount)
		},
	}
	drawCmd.Flags().IntVarP(&drawCount, "count", "n", 0, "Number of items to draw (0 draws all)")
	drawCmd.Flags().BoolVar(&drawCopy, "copy", false, "Print every draw as a COPY text row (position, item) for psql \\copy")
	addItemFlags(drawCmd.Flags(), &drawItems)

	var inspectItems itemFlags
	inspectCmd := &cobra.Command{
		Use:     "inspect [ITEMS...]",
		Short:   "Loads ITEMS into a tombola and prints its sorted contents",
		Aliases: []string{"i"},
		GroupID: "draw",
		RunE: func(cmd *cobra.Command, args []string) error {
			ints, strs, err := cli.items(args, inspectItems)
			if err != nil {
				return err
			}
			if ints != nil {
				return inspect(&cli, cmd, ints)
			}
			return inspect(&cli, cmd, strs)
		},
	}
	addItemFlags(inspectCmd.Flags(), &inspectItems)

	var hand int
	dealCmd := &cobra.Command{
		Use:     "deal",
		Args:    cobra.ExactArgs(0),
		Short:   "Shuffles a French deck and deals a hand from a tombola",
		GroupID: "draw",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.deal(cmd, hand)
		},
	}
	dealCmd.Flags().IntVar(&hand, "hand", 5, "Number of cards to deal")

	kindsCmd := &cobra.Command{
		Use:     "kinds",
		Args:    cobra.ExactArgs(0),
		Short:   "Lists the available tombola kinds",
		GroupID: "info",
		Run: func(cmd *cobra.Command, args []string) {
			for _, kind := range tombola.Kinds() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", kind, kind.Id())
			}
		},
	}

	checkCmd := &cobra.Command{
		Use:     "check",
		Args:    cobra.ExactArgs(0),
		Short:   "Runs the conformance checks against every tombola kind",
		GroupID: "info",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.check(cmd)
		},
	}

	rootCmd.AddCommand(
		drawCmd,
		inspectCmd,
		dealCmd,
		kindsCmd,
		checkCmd,
	)
	return cli
}

func (cli *Cli) items(args []string, flags itemFlags) ([]int, []string, error) {
	if flags.fake == "" {
		ints, strs := parseItemArgs(args)
		return ints, strs, nil
	}

	if len(args) > 0 {
		return nil, nil, errors.New("ITEMS and --fake are mutually exclusive")
	}
	strs, err := cli.Config.Rand().Items(flags.fake, flags.fakeCount)
	if err != nil {
		return nil, nil, err
	}
	return nil, strs, nil
}

func (cli *Cli) newTombola(items ...int) (tombola.Tombola[int], error) {
	return newTombola(cli, items)
}

func newTombola[T cmp.Ordered](cli *Cli, items []T) (tombola.Tombola[T], error) {
	if cli.Config.Seed.Enable {
		cli.logger.Info("seeded", zap.Stringer("seed", cli.Config.Seed.Seed))
	}

	t, err := tombola.NewTombola(cli.Config, cli.Config.Rand(), items...)
	if err != nil {
		return nil, err
	}

	cli.logger.Debug("loaded",
		zap.String("kind", string(cli.Config.Kind)),
		zap.Bool("sync", cli.Config.Synchronized),
		zap.Int("items", len(items)),
	)
	return t, nil
}

func draw[T cmp.Ordered](cli *Cli, cmd *cobra.Command, items []T, count int) error {
	t, err := newTombola(cli, items)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := 0; count <= 0 || i < count; i++ {
		item, err := t.Pick()
		if errors.Is(err, tombola.ErrEmpty) {
			if count > 0 {
				cli.logger.Warn("tombola ran empty", zap.Int("drawn", i), zap.Int("count", count))
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("draw %d: %w", i, err)
		}

		cli.logger.Debug("picked", zap.Any("item", item))
		fmt.Fprintln(out, item)
	}
	return nil
}

func copyRows[T cmp.Ordered](cli *Cli, cmd *cobra.Command, items []T) error {
	t, err := newTombola(cli, items)
	if err != nil {
		return err
	}

	position := 0
	src := tombola.DrainCopySource[T](t, func(item T) []any {
		position++
		return []any{position, item}
	})
	rows, err := tombola.WriteCopyText(cmd.OutOrStdout(), src)
	if err != nil {
		return fmt.Errorf("copy rows: %w", err)
	}

	cli.logger.Debug("copied", zap.Int64("rows", rows))
	return nil
}

func inspect[T cmp.Ordered](cli *Cli, cmd *cobra.Command, items []T) error {
	t, err := newTombola(cli, items)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, item := range t.Inspect() {
		fmt.Fprintln(out, item)
	}
	return nil
}

func (cli *Cli) deal(cmd *cobra.Command, hand int) error {
	d := deck.New()
	deck.Shuffle[deck.Card](d, cli.Config.RandFor("deck"))
	cli.logger.Debug("shuffled deck", zap.Stringer("top", d.At(0)))

	values := make([]int, d.Len())
	for i := range values {
		values[i] = deck.SpadesHigh(d.At(i))
	}
	t, err := cli.newTombola(values...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := 0; i < hand; i++ {
		value, err := t.Pick()
		if err != nil {
			return fmt.Errorf("deal card %d: %w", i+1, err)
		}
		card, _ := deck.BySpadesHigh(value)
		fmt.Fprintln(out, card)
	}
	return nil
}

func (cli *Cli) check(cmd *cobra.Command) error {
	var errs []error
	out := cmd.OutOrStdout()
	kinds := tombola.Kinds()
	fakers := cli.Config.Rand().SplitN(len(kinds))
	for i, kind := range kinds {
		err := tombolatest.CheckInts(func(items ...int) tombola.Tombola[int] {
			t, err := tombola.New(kind, fakers[i], items...)
			if err != nil {
				panic(err)
			}
			if cli.Config.Synchronized {
				return tombola.Synchronize(t)
			}
			return t
		})

		if err != nil {
			fmt.Fprintf(out, "    %-5s %s\n    Err: %v\n", "FAIL", kind, err)
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
			continue
		}
		fmt.Fprintf(out, "    %-5s %s\n", "OK", kind)
	}
	return errors.Join(errs...)
}
