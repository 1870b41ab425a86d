package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/govalues/decimal96/internal/config"
	"github.com/govalues/decimal96/internal/rpn"
	"github.com/spf13/cobra"
)

func NewEvalCmd(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "Evaluate a postfix expression, for example '1.5 2 + 3 *'",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			d, err := rpn.Evaluate(expr)
			if err != nil {
				return err
			}
			slog.Debug("evaluated", "expression", expr, "scale", d.Scale())
			if opts.Format.Scientific {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Sci("e"))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d)
			return err
		},
	}
	cmd.Flags().Bool(
		"sci",
		false,
		"print the result in scientific notation")
	bindFlag("format.scientific", cmd.Flags().Lookup("sci"))
	return cmd
}
