package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/govalues/decimal96/internal/config"
	"github.com/govalues/decimal96/internal/fuzzfile"
	"github.com/govalues/decimal96/internal/oracle"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

func NewGenerateCmd(opts *config.Options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a file of test records with reference results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(opts, output)
		},
	}

	cmd.Flags().StringVarP(
		&output,
		"output",
		"o",
		"",
		"the file to write the records to")
	cobra.CheckErr(cmd.MarkFlagRequired("output"))

	cmd.Flags().IntP(
		"size",
		"s",
		1000,
		"the number of random operand pairs")
	bindFlag("generate.size", cmd.Flags().Lookup("size"))
	cmd.Flags().Uint64(
		"seed",
		1,
		"the seed of the pseudo-random generator")
	bindFlag("generate.seed", cmd.Flags().Lookup("seed"))
	cmd.Flags().StringSlice(
		"ops",
		nil,
		"the operators applied to every pair: add, sub, mul, div, rem")
	bindFlag("generate.ops", cmd.Flags().Lookup("ops"))
	cmd.Flags().Uint32(
		"precision",
		100,
		"the number of significant digits of reference quotients")
	bindFlag("oracle.precision", cmd.Flags().Lookup("precision"))

	return cmd
}

func generate(opts *config.Options, output string) error {
	o, err := oracle.New(opts.Oracle.Precision)
	if err != nil {
		return err
	}
	ops := make([]fuzzfile.Op, 0, len(opts.Generate.Ops))
	for _, s := range opts.Generate.Ops {
		op, err := fuzzfile.ParseOp(s)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	records, err := fuzzfile.Generate(o, fuzzfile.Options{
		Size: opts.Generate.Size,
		Seed: opts.Generate.Seed,
		Ops:  ops,
	})
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := fuzzfile.Write(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("generated records", "count", len(records), "seed", opts.Generate.Seed, "output", output)
	return nil
}

func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run INPUT",
		Short: "Check the records of a file generated by the generate command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			records, err := fuzzfile.Read(f)
			if err != nil {
				return err
			}
			if err := fuzzfile.Run(records); err != nil {
				if merr, ok := err.(*multierror.Error); ok {
					slog.Error("records mismatch", "count", len(records), "failed", merr.Len())
				}
				return err
			}
			slog.Info("records match", "count", len(records), "input", args[0])
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d records passed\n", len(records))
			return err
		},
	}
}
