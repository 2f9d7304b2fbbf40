package utils

import (
	"fmt"
	"strconv"
)

// FormatPeso renders a whole-peso amount as "PHP 1,500", with thousand
// separators. Catalog prices are integers, so there is no decimal part.
func FormatPeso(amount int) string {
	digits := strconv.Itoa(amount)
	negative := false
	if amount < 0 {
		negative = true
		digits = digits[1:]
	}

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return fmt.Sprintf("PHP -%s", grouped)
	}
	return fmt.Sprintf("PHP %s", grouped)
}
