package moneda_test

import (
	"testing"

	"github.com/Sijj2003/app-tienda/internal/moneda"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatear(t *testing.T) {
	casos := []struct {
		monto  string
		locale string
		want   string
	}{
		{"1234567.89", "en-US", "1,234,567.89"},
		{"1234567.89", "es-VE", "1.234.567,89"},
		{"0.5", "es-VE", "0,50"},
		{"999", "en-US", "999.00"},
		{"1000", "es-VE", "1.000,00"},
		{"-45678.9", "es-VE", "-45.678,90"},
		{"-45678.9", "en-US", "-45,678.90"},
	}
	for _, c := range casos {
		d, err := decimal.NewFromString(c.monto)
		assert.NoError(t, err)
		assert.Equal(t, c.want, moneda.Formatear(d, c.locale), "%s (%s)", c.monto, c.locale)
	}
}

func TestUSDyBs(t *testing.T) {
	d := decimal.NewFromFloat(8710.5)
	assert.Equal(t, "$8,710.50", moneda.USD(d))
	assert.Equal(t, "Bs. 8.710,50", moneda.Bs(d))
}
