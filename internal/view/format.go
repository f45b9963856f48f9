package view

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// WholeUnits truncates an amount toward zero to whole currency units. It is the
// single rounding rule for every amount shown on the dashboard.
func WholeUnits(d decimal.Decimal) int64 {
	return d.Truncate(0).IntPart()
}

// Naira formats an amount as truncated whole naira with thousands separators.
func Naira(d decimal.Decimal) string {
	return nairaUnits(WholeUnits(d))
}

func nairaUnits(n int64) string {
	if n < 0 {
		return "-₦" + humanize.Comma(-n)
	}
	return "₦" + humanize.Comma(n)
}

// USD formats a dollar amount with two decimals.
func USD(d decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// Percent formats a percentage without trailing zeros, e.g. "20%" or "0.52%".
func Percent(d decimal.Decimal) string {
	return d.String() + "%"
}

// SignedPercent formats a percentage with two decimals and an explicit sign.
func SignedPercent(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + "%"
}

// Price formats a quote price as dollars without forcing decimals.
func Price(d decimal.Decimal) string {
	return "$" + d.String()
}
