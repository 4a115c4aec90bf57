// Package moneda formats decimal amounts for display. Ledger math never
// touches strings; only the presentation layer (PDF, responses) calls in.
package moneda

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Formatear renders d with two decimals and thousands grouping for the given
// locale tag. "es-VE" uses dot grouping and comma decimals; anything else
// falls back to en-US style.
func Formatear(d decimal.Decimal, locale string) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	entero, frac, _ := strings.Cut(s, ".")
	entero = agrupar(entero)

	var out string
	if strings.HasPrefix(locale, "es") {
		out = strings.ReplaceAll(entero, ",", ".") + "," + frac
	} else {
		out = entero + "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// USD renders with the dollar sign in en-US style.
func USD(d decimal.Decimal) string {
	return "$" + Formatear(d, "en-US")
}

// Bs renders with the bolívar prefix in es-VE style.
func Bs(d decimal.Decimal) string {
	return "Bs. " + Formatear(d, "es-VE")
}

func agrupar(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	resto := n % 3
	if resto > 0 {
		b.WriteString(digits[:resto])
	}
	for i := resto; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
