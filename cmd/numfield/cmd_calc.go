package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numfield/internal/commission"
	"numfield/internal/numeric"
)

// calcCmd runs one commission calculation
var calcCmd = &cobra.Command{
	Use:   "calc [sale-price]",
	Short: "Compare broker commission against the service fee",
	Long: `Reads a sale price the way the calculator's field would hold it and
prints both fees and the savings, using the commission rates from config.

Example:
  numfield calc 750000
  numfield calc '$1,250,000'`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rates, err := cfg.Commission.Rates()
	if err != nil {
		return err
	}

	text := numeric.Filter(args[0], cfg.Sanitizer.Numeric())
	price, ok := commission.ParseSalePrice(text)
	if !ok {
		return fmt.Errorf("no sale price in %q", args[0])
	}
	logger.Debug("calculating", zap.String("input", args[0]), zap.String("field", text))

	fees := commission.Calculate(price, rates)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-20s %s\n", "Sale price", commission.FormatAmount(fees.SalePrice))
	fmt.Fprintf(out, "%-20s %s\n", "Average broker fee", commission.FormatAmount(fees.BrokerFee))
	fmt.Fprintf(out, "%-20s %s\n", "Our fee", commission.FormatAmount(fees.ServiceFee))
	fmt.Fprintf(out, "%-20s %s\n", "You save", commission.FormatAmount(fees.Savings))
	return nil
}
