package invoicing

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// formatCurrency renders a USD amount with symbol, grouping separators, and
// exactly two decimals: 1000 -> "$1,000.00".
func formatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%.2f", amount)
}

// formatDate renders D/M/YYYY without zero padding: 2024-03-05 -> "5/3/2024".
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
