package utils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter *message.Printer

func init() {
	tag, err := language.Parse("en-PK")
	if err != nil {
		// Keep pricePrinter nil and fall back to manual grouping.
		return
	}
	pricePrinter = message.NewPrinter(tag)
}

// FormatPrice renders an integer price as a thousands-grouped amount with the
// store's "Rs." currency marker, e.g. 14999 -> "Rs. 14,999".
func FormatPrice(price int) string {
	if pricePrinter == nil {
		return "Rs. " + groupDigits(strconv.Itoa(price))
	}
	return pricePrinter.Sprintf("Rs. %d", price)
}

// groupDigits inserts a comma every three digits from the right. It is the
// pure-string fallback for when the locale printer is unavailable.
func groupDigits(digits string) string {
	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	out := ""
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out += ","
		}
		out += string(d)
	}

	if negative {
		return "-" + out
	}
	return out
}
