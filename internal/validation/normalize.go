package validation

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizable is implemented by payloads that canonicalize their values
// before validation. Normalize must be idempotent.
type Normalizable interface {
	Normalize()
}

// NormalizePhone strips whitespace, hyphens and parentheses. A leading "+"
// is kept; the empty string is returned unchanged.
func NormalizePhone(input string) string {
	if input == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// NormalizeCurrency trims and upper-cases a currency code.
func NormalizeCurrency(input string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(input))
}

// NormalizeText trims surrounding whitespace.
func NormalizeText(input string) string {
	return strings.TrimSpace(input)
}

// NormalizeDecimal rewrites a parseable decimal string in canonical form
// ("010.50" -> "10.5"). Anything unparseable is returned trimmed so the
// Decimal rule can report it.
func NormalizeDecimal(input string) string {
	trimmed := strings.TrimSpace(input)
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return trimmed
	}
	return d.String()
}

// Apply runs fn on *p when p is non-nil.
func Apply(p *string, fn func(string) string) {
	if p != nil {
		*p = fn(*p)
	}
}
