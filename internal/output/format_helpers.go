package output

import (
	"strconv"

	pkgdecimal "github.com/rpgo/wealth-journey/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as grouped USD with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return pkgdecimal.NewMoneyFromDecimal(amount).Format()
}

// FormatWholeCurrency formats whole currency units as grouped USD.
func FormatWholeCurrency(amount int64) string {
	return pkgdecimal.NewMoneyFromInt(amount).FormatWhole()
}

// FormatPercentage formats a percentage with 1 decimal, matching the reported precision.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func int64ToString(i int64) string { return strconv.FormatInt(i, 10) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
