package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adenflorian/corgi.fm/pkg/arith"
)

type addResult struct {
	A        int32  `json:"a"`
	B        int32  `json:"b"`
	Sum      int32  `json:"sum"`
	Overflow string `json:"overflow"`
}

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add A B",
		Short: "Add two 32-bit signed integers",
		Long: `Add two 32-bit signed integers.

By default the sum wraps around like the exported "add" symbol. Use
--overflow checked to fail instead, or --overflow saturate to clamp.
Put "--" before negative operands.`,
		Example: `  corgi add 2 3
  corgi add --overflow saturate -- -2147483648 -1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseInt32("operand", args[0])
			if err != nil {
				return err
			}
			y, err := parseInt32("operand", args[1])
			if err != nil {
				return err
			}

			mode := a.cfg.OverflowMode()
			sum, err := arith.AddWithMode(mode, x, y)
			if err != nil {
				return err
			}
			a.log.Debug().Int32("a", x).Int32("b", y).Str("overflow", mode.String()).Int32("sum", sum).Msg("add")

			return a.emit(cmd, addResult{A: x, B: y, Sum: sum, Overflow: mode.String()},
				strconv.FormatInt(int64(sum), 10))
		},
	}
	cmd.Flags().StringVar(&a.cfg.Overflow, "overflow", a.cfg.Overflow, "overflow mode: wrap, checked or saturate")
	return cmd
}
