package main

import (
	"github.com/spf13/cobra"

	"numfield/internal/numeric"
)

// addNumericFlags registers grammar overrides on cmd. Unset flags leave the
// configured sanitizer alone.
func addNumericFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("decimals", "d", false, "Allow a decimal point (default from config)")
	cmd.Flags().BoolP("negative", "n", false, "Allow a leading minus sign (default from config)")
	cmd.Flags().IntP("max-decimals", "m", 0, "Maximum fraction digits (default from config)")
}

// numericOverrides applies any explicitly set grammar flags to base.
func numericOverrides(cmd *cobra.Command, base numeric.Config) numeric.Config {
	flags := cmd.Flags()
	if flags.Changed("decimals") {
		base.AllowDecimals, _ = flags.GetBool("decimals")
	}
	if flags.Changed("negative") {
		base.AllowNegative, _ = flags.GetBool("negative")
	}
	if flags.Changed("max-decimals") {
		base.MaxDecimals, _ = flags.GetInt("max-decimals")
		// asking for fraction digits implies decimals
		if base.MaxDecimals > 0 && !flags.Changed("decimals") {
			base.AllowDecimals = true
		}
	}
	return base
}
