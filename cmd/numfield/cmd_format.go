package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"numfield/internal/numeric"
)

var formatDecimals bool

// formatCmd groups plain numbers into thousands
var formatCmd = &cobra.Command{
	Use:   "format [value...]",
	Short: "Insert thousands separators into plain numbers",
	Long: `Groups the integer part of each plain numeric value (optional '-',
digits, optional '.' and digits). The fraction is dropped unless
--decimals is given.

Example:
  numfield format 1234567.891 --decimals   # 1,234,567.891`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolVarP(&formatDecimals, "decimals", "d", false, "Keep the fraction")
}

func runFormat(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		fmt.Fprintln(out, numeric.FormatWithCommas(arg, formatDecimals))
	}
	return nil
}
