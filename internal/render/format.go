package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatTotal renders v with thousands separators and no decimals, e.g. 1,234,567.
func FormatTotal(v float64) string {
	return printer.Sprintf("%.0f", v)
}
