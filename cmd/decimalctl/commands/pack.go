package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/govalues/decimal96"
	"github.com/spf13/cobra"
)

func NewPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack DECIMAL",
		Short: "Print the 16-byte binary form of a decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var d decimal.Decimal
			if err := d.UnmarshalText([]byte(args[0])); err != nil {
				return err
			}
			b := d.Serialize()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "% x\n", b[:])
			return err
		},
	}
}

func NewUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack HEX",
		Short: "Print the decimal of a 16-byte binary form given in hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := strings.Join(strings.Fields(strings.Join(args, " ")), "")
			data, err := hex.DecodeString(s)
			if err != nil {
				return fmt.Errorf("decoding %q: %w", s, err)
			}
			var d decimal.Decimal
			if err := d.UnmarshalBinary(data); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d)
			return err
		},
	}
}
