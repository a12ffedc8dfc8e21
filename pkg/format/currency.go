// Package format renders currency and percentage values for display
// strings such as suggestion fallbacks and schedule output.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := printer.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent returns a percentage string with two decimals (e.g., "6.50%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}
