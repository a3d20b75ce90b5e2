package numeric_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"numfield/internal/numeric"
)

var (
	integerCfg  = numeric.IntegerConfig()
	decimalCfg  = numeric.DecimalConfig(2, false)
	signedCfg   = numeric.DecimalConfig(2, true)
	negativeCfg = numeric.Config{AllowNegative: true}
)

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		cfg      numeric.Config
		expected string
	}{
		{name: "groups plain digits", input: "1234567", cfg: integerCfg, expected: "1,234,567"},
		{name: "regroups misplaced commas", input: "1,2,3,4", cfg: integerCfg, expected: "1,234"},
		{name: "strips letters", input: "abc123xyz", cfg: integerCfg, expected: "123"},
		{name: "empty stays empty", input: "", cfg: integerCfg, expected: ""},
		{name: "clamps fraction", input: "12.3456", cfg: decimalCfg, expected: "12.34"},
		{name: "short number untouched", input: "999", cfg: integerCfg, expected: "999"},
		{name: "exactly four digits", input: "1000", cfg: integerCfg, expected: "1,000"},
		{name: "keeps leading zeros", input: "007", cfg: integerCfg, expected: "007"},
		{name: "groups leading zeros", input: "0001234", cfg: integerCfg, expected: "0,001,234"},
		{name: "drops point when decimals off", input: "12.34", cfg: integerCfg, expected: "1,234"},
		{name: "drops minus when negatives off", input: "-500", cfg: integerCfg, expected: "500"},
		{name: "lone minus disallowed becomes empty", input: "-", cfg: integerCfg, expected: ""},
		{name: "only foreign characters", input: "abc $ %", cfg: integerCfg, expected: ""},
		{name: "only commas", input: ",,,", cfg: integerCfg, expected: ""},
		{name: "keeps first decimal point", input: "1.2.3.4", cfg: decimalCfg, expected: "1.23"},
		{name: "trailing point survives typing", input: "1234.", cfg: decimalCfg, expected: "1,234."},
		{name: "leading point", input: ".5", cfg: decimalCfg, expected: ".5"},
		{name: "commas in fraction dropped", input: "1.2,3", cfg: decimalCfg, expected: "1.23"},
		{name: "grouping ignores fraction length", input: "1234567.89", cfg: decimalCfg, expected: "1,234,567.89"},
		{name: "max decimals zero drops point", input: "12.5", cfg: numeric.DecimalConfig(0, false), expected: "12"},
		{name: "negative max decimals treated as zero", input: "12.5", cfg: numeric.DecimalConfig(-3, false), expected: "12"},
		{name: "leading minus kept", input: "-1234", cfg: negativeCfg, expected: "-1,234"},
		{name: "lone minus allowed", input: "-", cfg: negativeCfg, expected: "-"},
		{name: "single stray minus moves to front", input: "12-34", cfg: negativeCfg, expected: "-1,234"},
		{name: "trailing minus moves to front", input: "1.5-", cfg: signedCfg, expected: "-1.5"},
		{name: "extra minus after leading one dropped", input: "-12-3-4", cfg: negativeCfg, expected: "-1,234"},
		{name: "several stray minus signs all dropped", input: "1-2-3", cfg: negativeCfg, expected: "123"},
		{name: "no comma next to sign", input: "-123456", cfg: negativeCfg, expected: "-123,456"},
		{name: "comma after sign removed", input: "-,123", cfg: negativeCfg, expected: "-123"},
		{name: "unicode digits are foreign", input: "١٢٣4", cfg: integerCfg, expected: "4"},
		{name: "currency input", input: "$1,250,000.00 AUD", cfg: decimalCfg, expected: "1,250,000.00"},
		{name: "spaces removed", input: "1 000 000", cfg: integerCfg, expected: "1,000,000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, numeric.Filter(tt.input, tt.cfg))
		})
	}
}

func TestFormatWithCommas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		allowDecimals bool
		expected      string
	}{
		{name: "groups integer", input: "1234567", expected: "1,234,567"},
		{name: "empty", input: "", expected: ""},
		{name: "three digits", input: "123", expected: "123"},
		{name: "negative", input: "-1234567", expected: "-1,234,567"},
		{name: "fraction dropped when decimals off", input: "1234.56", expected: "1,234"},
		{name: "fraction kept when decimals on", input: "1234.56", allowDecimals: true, expected: "1,234.56"},
		{name: "empty fraction dropped", input: "1234.", allowDecimals: true, expected: "1,234"},
		{name: "savings amount", input: "18250", expected: "18,250"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, numeric.FormatWithCommas(tt.input, tt.allowDecimals))
		})
	}
}

var fuzzConfigs = []numeric.Config{
	integerCfg,
	decimalCfg,
	signedCfg,
	negativeCfg,
	numeric.DecimalConfig(0, true),
	numeric.DecimalConfig(5, true),
}

func FuzzFilter(f *testing.F) {
	for _, seed := range []string{
		"", "1234567", "1,2,3,4", "abc123xyz", "12.3456", "-", "--", "-1-2",
		"1.2.3", ".", "-.", ",,,", "007", "1-", "9,99.9,9", "x-1.0.0-y",
		"١٢٣", "1e10", "+42", "  -12 345.678 ",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		for _, cfg := range fuzzConfigs {
			out := numeric.Filter(s, cfg)
			checkCanonical(t, out, cfg)
			if again := numeric.Filter(out, cfg); again != out {
				t.Fatalf("not idempotent under %+v: %q -> %q -> %q", cfg, s, out, again)
			}
		}
	})
}

// checkCanonical asserts every structural property of filter output.
func checkCanonical(t *testing.T, out string, cfg numeric.Config) {
	t.Helper()

	for _, r := range out {
		switch {
		case r >= '0' && r <= '9', r == ',':
		case r == '.' && cfg.AllowDecimals:
		case r == '-' && cfg.AllowNegative:
		default:
			t.Fatalf("%q contains %q outside the alphabet for %+v", out, r, cfg)
		}
	}

	if n := strings.Count(out, "-"); n > 1 || (n == 1 && out[0] != '-') {
		t.Fatalf("%q has a misplaced sign", out)
	}
	if strings.Count(out, ".") > 1 {
		t.Fatalf("%q has more than one decimal point", out)
	}

	body := strings.TrimPrefix(out, "-")
	intPart, frac, _ := strings.Cut(body, ".")
	maxFrac := cfg.MaxDecimals
	if maxFrac < 0 {
		maxFrac = 0
	}
	if len(frac) > maxFrac {
		t.Fatalf("%q fraction longer than %d", out, maxFrac)
	}
	if strings.Contains(frac, ",") {
		t.Fatalf("%q has a comma in the fraction", out)
	}

	digits := strings.ReplaceAll(intPart, ",", "")
	if n := len(digits); n > 0 {
		if want := (n - 1) / 3; strings.Count(intPart, ",") != want {
			t.Fatalf("%q: want %d commas for %d digits", out, want, n)
		}
	}
	groups := strings.Split(intPart, ",")
	for i, g := range groups {
		if i > 0 && len(g) != 3 {
			t.Fatalf("%q: group %q is not three digits", out, g)
		}
		if i == 0 && len(groups) > 1 && (len(g) == 0 || len(g) > 3) {
			t.Fatalf("%q: leading group %q out of range", out, g)
		}
	}
}

func TestFilter_ScenarioProperties(t *testing.T) {
	t.Parallel()

	inputs := []string{"1234567", "-98765.4321", "1-2.3-4", "...", "12,34,5.6,7"}
	for _, cfg := range fuzzConfigs {
		for _, in := range inputs {
			out := numeric.Filter(in, cfg)
			checkCanonical(t, out, cfg)
			assert.Equal(t, out, numeric.Filter(out, cfg), "idempotence for %q under %+v", in, cfg)
		}
	}
}
