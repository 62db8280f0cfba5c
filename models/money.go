package models

import "fmt"

// FormatCents renders an amount of cents as a dollar string, e.g.
// 3880 -> "$38.80".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
