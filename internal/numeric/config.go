// Package numeric implements the text rules behind a live numeric input field:
// the grammar filter that canonicalizes whatever the field holds, the
// thousands grouping used for both input and display, the caret reconciler
// and the per-keystroke admission guard.
//
// Everything here is a pure function over strings. Nothing retains state
// between calls; callers hand in the current text and caret and get back the
// new ones.
package numeric

// Config describes the grammar a bound field is held to.
// A Config is created once per field and never mutated afterwards.
type Config struct {
	AllowDecimals bool `yaml:"allow_decimals" json:"allow_decimals"`
	AllowNegative bool `yaml:"allow_negative" json:"allow_negative"`
	MaxDecimals   int  `yaml:"max_decimals" json:"max_decimals"`
}

// IntegerConfig is the sale-price style field: whole, non-negative numbers.
func IntegerConfig() Config {
	return Config{}
}

// DecimalConfig allows a fractional part of up to maxDecimals digits.
func DecimalConfig(maxDecimals int, allowNegative bool) Config {
	return Config{
		AllowDecimals: true,
		AllowNegative: allowNegative,
		MaxDecimals:   maxDecimals,
	}
}

// fractionDigits is MaxDecimals with negatives treated as zero.
func (c Config) fractionDigits() int {
	if !c.AllowDecimals || c.MaxDecimals < 0 {
		return 0
	}
	return c.MaxDecimals
}

// State is the observable state of one text field at a single event.
// Cursor is a rune offset into Text.
type State struct {
	Text   string
	Cursor int
}
