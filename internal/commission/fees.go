// Package commission computes how much a seller saves against an average
// broker commission, given a sale price typed into a numeric field.
package commission

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"numfield/internal/logging"
	"numfield/internal/numeric"
)

// Rates are the two fee schedules being compared. Each fee is the larger of
// price*rate and the minimum.
type Rates struct {
	BrokerRate     decimal.Decimal
	BrokerMinimum  decimal.Decimal
	ServiceRate    decimal.Decimal
	ServiceMinimum decimal.Decimal
}

// DefaultRates: 2.5% average broker commission (min $10,000) against a 1%
// service fee (min $5,000).
func DefaultRates() Rates {
	return Rates{
		BrokerRate:     decimal.RequireFromString("0.025"),
		BrokerMinimum:  decimal.NewFromInt(10000),
		ServiceRate:    decimal.RequireFromString("0.01"),
		ServiceMinimum: decimal.NewFromInt(5000),
	}
}

// ParseRates builds Rates from decimal strings, as stored in config.
func ParseRates(brokerRate, brokerMinimum, serviceRate, serviceMinimum string) (Rates, error) {
	var r Rates
	for _, f := range []struct {
		name string
		in   string
		out  *decimal.Decimal
	}{
		{"broker_rate", brokerRate, &r.BrokerRate},
		{"broker_minimum", brokerMinimum, &r.BrokerMinimum},
		{"service_rate", serviceRate, &r.ServiceRate},
		{"service_minimum", serviceMinimum, &r.ServiceMinimum},
	} {
		d, err := decimal.NewFromString(strings.TrimSpace(f.in))
		if err != nil {
			return Rates{}, fmt.Errorf("invalid %s %q: %w", f.name, f.in, err)
		}
		if d.IsNegative() {
			return Rates{}, fmt.Errorf("invalid %s %q: must not be negative", f.name, f.in)
		}
		*f.out = d
	}
	return r, nil
}

// Fees is the result of one calculation.
type Fees struct {
	SalePrice  decimal.Decimal
	BrokerFee  decimal.Decimal
	ServiceFee decimal.Decimal
	Savings    decimal.Decimal
}

// Calculate compares both fee schedules at salePrice.
func Calculate(salePrice decimal.Decimal, r Rates) Fees {
	broker := decimal.Max(salePrice.Mul(r.BrokerRate), r.BrokerMinimum)
	service := decimal.Max(salePrice.Mul(r.ServiceRate), r.ServiceMinimum)
	fees := Fees{
		SalePrice:  salePrice,
		BrokerFee:  broker,
		ServiceFee: service,
		Savings:    broker.Sub(service),
	}
	logging.Get(logging.CategoryCalc).Debugw("fees calculated",
		"sale_price", salePrice.String(),
		"broker_fee", broker.String(),
		"service_fee", service.String(),
		"savings", fees.Savings.String(),
	)
	return fees
}

// ParseSalePrice reads the whole-number value of a sale-price field.
// Commas are ignored; an optional sign and the leading run of digits are
// read and anything after them (a fraction, stray text) is ignored.
// It returns false when there are no leading digits.
func ParseSalePrice(text string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")

	sign := ""
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = "-", s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(sign + s[:end])
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatAmount renders a whole-dollar amount the way the input field
// groups digits, e.g. "$18,250". Cents are dropped by flooring.
func FormatAmount(d decimal.Decimal) string {
	return "$" + numeric.FormatWithCommas(d.Floor().String(), false)
}
