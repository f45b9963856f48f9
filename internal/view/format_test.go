package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatting(t *testing.T) {
	d := decimal.RequireFromString

	assert.Equal(t, "₦10,000", Naira(d("10000")))
	assert.Equal(t, "₦98", Naira(d("98.25")))
	assert.Equal(t, "₦1,234,567", Naira(d("1234567.99")))
	assert.Equal(t, "-₦3,000", Naira(d("-3000.7")))
	assert.Equal(t, "$60.24", USD(d("50000").Div(d("830"))))
	assert.Equal(t, "$1,204.82", USD(d("1000000").Div(d("830"))))
	assert.Equal(t, "20%", Percent(d("20.0")))
	assert.Equal(t, "0.52%", Percent(d("0.52")))
	assert.Equal(t, "+0.20%", SignedPercent(d("0.1965")))
	assert.Equal(t, "-0.46%", SignedPercent(d("-0.46")))
	assert.Equal(t, "$118408", Price(d("118408.00")))
}

func TestWholeUnits(t *testing.T) {
	assert.Equal(t, int64(100), WholeUnits(decimal.RequireFromString("100.99")))
	assert.Equal(t, int64(-15), WholeUnits(decimal.RequireFromString("-15.5")))
}
