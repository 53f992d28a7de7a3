package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoneyFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"9.99", "$9.99"},
		{"19.98", "$19.98"},
		{"49.95", "$49.95"},
		{"0.005", "$0.01"},
		{"7", "$7.00"},
		{"-2.5", "-$2.50"},
		{"-0.001", "$0.00"},
		{"999.999", "$1,000.00"},
		{"1234.5", "$1,234.50"},
		{"1000000", "$1,000,000.00"},
		{"12345678901234567.89", "$12,345,678,901,234,567.89"},
	}
	m := USD()
	for _, tc := range cases {
		assert.Equal(t, tc.want, m.Format(decimal.RequireFromString(tc.in)), tc.in)
	}
}

func TestMoneyZeroValueFallsBackToUSD(t *testing.T) {
	var m Money
	assert.Equal(t, "$3.10", m.Format(decimal.RequireFromString("3.1")))
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "12", groupDigits("12", ","))
	assert.Equal(t, "123", groupDigits("123", ","))
	assert.Equal(t, "1,234", groupDigits("1234", ","))
	assert.Equal(t, "123,456", groupDigits("123456", ","))
	assert.Equal(t, "1234567", groupDigits("1234567", ""))
}
