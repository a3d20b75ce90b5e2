package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numfield/internal/numeric"
)

// filterCmd canonicalizes numeric text
var filterCmd = &cobra.Command{
	Use:   "filter [text...]",
	Short: "Canonicalize numeric text",
	Long: `Rewrites each argument (or each line of stdin when no arguments are
given) into canonical form: foreign characters dropped, one leading sign,
one decimal point, fraction clamped, integer part grouped in thousands.

Examples:
  numfield filter 1234567            # 1,234,567
  numfield filter -d -m 2 '$12.3456' # 12.34
  cat prices.txt | numfield filter`,
	RunE: runFilter,
}

func init() {
	addNumericFlags(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	grammar := numericOverrides(cmd, cfg.Sanitizer.Numeric())
	logger.Debug("filter grammar",
		zap.Bool("allow_decimals", grammar.AllowDecimals),
		zap.Bool("allow_negative", grammar.AllowNegative),
		zap.Int("max_decimals", grammar.MaxDecimals),
	)

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		for _, arg := range args {
			fmt.Fprintln(out, numeric.Filter(arg, grammar))
		}
		return nil
	}

	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		fmt.Fprintln(out, numeric.Filter(sc.Text(), grammar))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}
