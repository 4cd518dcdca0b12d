// Package currency formats whole-number PKR amounts with locale-aware
// digit grouping, e.g. 13000 -> "PKR 13,000". Fractional minor units are
// not handled anywhere in the storefront.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// PKR renders an amount with the fixed currency prefix and grouped digits.
func PKR(amount int64) string {
	return printer.Sprintf("PKR %d", amount)
}
