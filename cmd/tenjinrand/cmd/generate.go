package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tenjinx/randconfig"
	"github.com/katalvlaran/tenjinx/randgen"
)

func newDoubleCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "double",
		Short: "print random float64 values in [min, max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, log, err := loadParameters(cmd, map[string]string{
				randconfig.KeyDoubleMin: "min",
				randconfig.KeyDoubleMax: "max",
			})
			if err != nil {
				return err
			}
			vals, err := randgen.Doubles(p, count(cmd))
			if err != nil {
				return err
			}
			for _, v := range vals {
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			}
			log.Info().Int("count", len(vals)).Msg("generated doubles")
			return nil
		},
	}
	c.Flags().Float64("min", randgen.MinimumDouble, "lower bound")
	c.Flags().Float64("max", randgen.MaximumDouble, "upper bound")
	return c
}

func newInt32Cmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "int32",
		Short: "print random int32 values in [min, max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, log, err := loadParameters(cmd, map[string]string{
				randconfig.KeyInt32Min: "min",
				randconfig.KeyInt32Max: "max",
			})
			if err != nil {
				return err
			}
			vals, err := randgen.Int32s(p, count(cmd))
			if err != nil {
				return err
			}
			for _, v := range vals {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			log.Info().Int("count", len(vals)).Msg("generated int32 values")
			return nil
		},
	}
	c.Flags().Int32("min", randgen.MinimumInt32, "lower bound (inclusive)")
	c.Flags().Int32("max", randgen.MaximumInt32, "upper bound (inclusive)")
	return c
}

func newStringCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "string",
		Short: "print random strings drawn from a palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, log, err := loadParameters(cmd, map[string]string{
				randconfig.KeyStringLength:    "length",
				randconfig.KeyStringMinLength: "min-length",
				randconfig.KeyStringMaxLength: "max-length",
				randconfig.KeyStringCharset:   "charset",
				randconfig.KeyStringAllowed:   "allowed",
			})
			if err != nil {
				return err
			}
			vals, err := randgen.Strings(p, count(cmd))
			if err != nil {
				return err
			}
			for _, v := range vals {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			log.Info().Int("count", len(vals)).Msg("generated strings")
			return nil
		},
	}
	c.Flags().Uint32("length", 0, "fixed length")
	c.Flags().Uint32("min-length", 0, "minimum length (with --max-length)")
	c.Flags().Uint32("max-length", 0, "maximum length (with --min-length)")
	c.Flags().String("charset", "", "named palette: alphanumeric, alpha, lower, upper, digits, hex")
	c.Flags().String("allowed", "", "literal palette; wins over --charset")
	return c
}
