package numeric

import (
	"strings"
)

// Filter rewrites text into its canonical numeric form under cfg.
//
// The steps run in a fixed order: strip foreign characters, settle the sign,
// keep the first decimal point, clamp the fraction, regroup the integer part.
// Filter is total and idempotent: Filter(Filter(s, c), c) == Filter(s, c).
func Filter(text string, cfg Config) string {
	if text == "" {
		return ""
	}

	kept := stripForeign(text, cfg)
	if cfg.AllowNegative {
		kept = normalizeSign(kept)
	}

	negative := strings.HasPrefix(kept, "-")
	body := strings.TrimPrefix(kept, "-")

	intPart, fracPart, hasPoint := body, "", false
	if cfg.AllowDecimals {
		intPart, fracPart, hasPoint = strings.Cut(body, ".")
		fracPart = strings.ReplaceAll(fracPart, ".", "")
	}

	var b strings.Builder
	b.Grow(len(kept) + len(kept)/3)
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart))

	if digits := cfg.fractionDigits(); hasPoint && digits > 0 {
		fracPart = strings.ReplaceAll(fracPart, ",", "")
		if len(fracPart) > digits {
			fracPart = fracPart[:digits]
		}
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatWithCommas groups the integer part of a plain numeric string
// (sign, digits, optional '.' and digits) into thousands. The fraction is
// kept only when allowDecimals is set and it is non-empty.
func FormatWithCommas(value string, allowDecimals bool) string {
	if value == "" {
		return value
	}

	sign := ""
	if strings.HasPrefix(value, "-") {
		sign = "-"
		value = value[1:]
	}

	intPart, fracPart, _ := strings.Cut(value, ".")
	if allowDecimals && fracPart != "" {
		fracPart = "." + fracPart
	} else {
		fracPart = ""
	}
	return sign + groupThousands(intPart) + fracPart
}

// stripForeign drops every byte outside the configured alphabet.
// Multi-byte runes are never part of the alphabet, so working on bytes is safe.
func stripForeign(text string, cfg Config) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9', c == ',':
		case c == '.' && cfg.AllowDecimals:
		case c == '-' && cfg.AllowNegative:
		default:
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// normalizeSign leaves at most one '-' and only at the front.
// A single stray sign moves to the front. With several signs the first is
// kept only if it already leads; otherwise they are all dropped.
func normalizeSign(s string) string {
	switch strings.Count(s, "-") {
	case 0:
		return s
	case 1:
		if s[0] == '-' {
			return s
		}
		return "-" + strings.Replace(s, "-", "", 1)
	default:
		if s[0] == '-' {
			return "-" + strings.ReplaceAll(s[1:], "-", "")
		}
		return strings.ReplaceAll(s, "-", "")
	}
}

// groupThousands removes any commas from digits and reinserts one every
// three digits counted from the right.
func groupThousands(digits string) string {
	digits = strings.ReplaceAll(digits, ",", "")
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)
	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
