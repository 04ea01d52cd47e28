// Package cmd wires the tenjinrand command tree.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tenjinx/randconfig"
	"github.com/katalvlaran/tenjinx/randgen"
)

const (
	flagConfig   = "config"
	flagSeed     = "seed"
	flagCount    = "count"
	flagLogLevel = "log-level"
	flagLogJSON  = "log-json"
)

// NewRootCmd builds a fresh command tree; each call has its own flag state.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tenjinrand",
		Short:        "print constrained random doubles, int32 values and strings",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "config file (yaml, json or toml)")
	pf.Int64(flagSeed, 0, "deterministic seed; omitted means entropy")
	pf.Int(flagCount, 1, "number of values to print")
	pf.String(flagLogLevel, "warn", "log level (trace, debug, info, warn, error)")
	pf.Bool(flagLogJSON, false, "log as JSON instead of console text")

	root.AddCommand(newDoubleCmd(), newInt32Cmd(), newStringCmd())
	return root
}

// newLogger builds the stderr logger from the persistent flags.
func newLogger(cmd *cobra.Command) (zerolog.Logger, error) {
	flags := cmd.Flags()
	levelName, _ := flags.GetString(flagLogLevel)
	asJSON, _ := flags.GetBool(flagLogJSON)

	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --%s: %w", flagLogLevel, err)
	}

	var w io.Writer = cmd.ErrOrStderr()
	if !asJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("cmd", cmd.Name()).Logger(), nil
}

// loadParameters resolves config file, environment and flags into
// Parameters. bindings maps a config key to a local flag name.
func loadParameters(cmd *cobra.Command, bindings map[string]string) (randgen.Parameters, zerolog.Logger, error) {
	log, err := newLogger(cmd)
	if err != nil {
		return randgen.Parameters{}, log, err
	}

	flags := cmd.Flags()
	file, _ := flags.GetString(flagConfig)
	v, err := randconfig.New(file)
	if err != nil {
		return randgen.Parameters{}, log, err
	}

	bindings[randconfig.KeySeed] = flagSeed
	if err := bindFlags(v.BindPFlag, flags, bindings); err != nil {
		return randgen.Parameters{}, log, err
	}

	p, err := randconfig.Load(v, randgen.WithLogger(log))
	if err != nil {
		return randgen.Parameters{}, log, err
	}
	log.Debug().Str("config", file).Msg("parameters loaded")
	return p, log, nil
}

// bindFlags attaches each named flag to its config key.
func bindFlags(bind func(string, *pflag.Flag) error, flags *pflag.FlagSet, bindings map[string]string) error {
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("unknown flag --%s for key %s", name, key)
		}
		if err := bind(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

// count reads --count.
func count(cmd *cobra.Command) int {
	n, _ := cmd.Flags().GetInt(flagCount)
	return n
}
