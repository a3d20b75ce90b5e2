package commission_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numfield/internal/commission"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	rates := commission.DefaultRates()

	tests := []struct {
		name    string
		price   string
		broker  string
		service string
		savings string
	}{
		{name: "both above minimum", price: "1000000", broker: "25000", service: "10000", savings: "15000"},
		{name: "both at minimum", price: "100000", broker: "10000", service: "5000", savings: "5000"},
		{name: "broker above, service at minimum", price: "450000", broker: "11250", service: "5000", savings: "6250"},
		{name: "zero price", price: "0", broker: "10000", service: "5000", savings: "5000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fees := commission.Calculate(dec(tt.price), rates)
			assert.True(t, dec(tt.broker).Equal(fees.BrokerFee), "broker fee %s", fees.BrokerFee)
			assert.True(t, dec(tt.service).Equal(fees.ServiceFee), "service fee %s", fees.ServiceFee)
			assert.True(t, dec(tt.savings).Equal(fees.Savings), "savings %s", fees.Savings)
		})
	}
}

func TestParseSalePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "1,250,000", want: "1250000", ok: true},
		{input: "750000", want: "750000", ok: true},
		{input: "007", want: "7", ok: true},
		{input: "12.99", want: "12", ok: true},
		{input: "-5,000", want: "-5000", ok: true},
		{input: "  42  ", want: "42", ok: true},
		{input: "", ok: false},
		{input: "-", ok: false},
		{input: ",,,", ok: false},
		{input: "abc", ok: false},
		{input: ".5", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := commission.ParseSalePrice(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, dec(tt.want).Equal(got), "got %s", got)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$15,000", commission.FormatAmount(dec("15000")))
	assert.Equal(t, "$6,250", commission.FormatAmount(dec("6250.75")))
	assert.Equal(t, "$0", commission.FormatAmount(decimal.Zero))
	assert.Equal(t, "$1,234,567", commission.FormatAmount(dec("1234567.01")))
	assert.Equal(t, "$-6", commission.FormatAmount(dec("-5.5")))
}

func TestParseRates(t *testing.T) {
	t.Parallel()

	r, err := commission.ParseRates("0.03", "8000", " 0.015 ", "4000")
	require.NoError(t, err)
	assert.True(t, dec("0.03").Equal(r.BrokerRate))
	assert.True(t, dec("0.015").Equal(r.ServiceRate))

	_, err = commission.ParseRates("three percent", "8000", "0.015", "4000")
	assert.ErrorContains(t, err, "broker_rate")

	_, err = commission.ParseRates("0.03", "8000", "0.015", "-1")
	assert.ErrorContains(t, err, "service_minimum")
}
