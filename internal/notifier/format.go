package notifier

import (
	"fmt"
	"strings"
)

// FormatBRL renders an amount in centavos as Brazilian currency,
// e.g. 1050 -> "R$ 10,50". Always two decimal digits.
func FormatBRL(cents int64) string {
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}

// FormatPhone prefixes the number with '+' unless one is already there.
// Providers send bare E.164 digits; no further normalization is applied.
func FormatPhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "+") {
		return raw
	}
	return "+" + raw
}
