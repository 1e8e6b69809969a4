package utils

import (
	"fmt"
	"strconv"
)

// FormatCurrency renders a whole currency amount as a US dollar string,
// e.g. 1500 -> "$1,500.00". Used in notification messages and admin views.
func FormatCurrency(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	s := groupThousands(strconv.FormatInt(amount, 10))
	if negative {
		return fmt.Sprintf("-$%s.00", s)
	}
	return fmt.Sprintf("$%s.00", s)
}

// FormatCommission renders a fractional commission amount, e.g. 10.0 ->
// "$10.00". Used for the revenue figure on the admin dashboard.
func FormatCommission(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%s", groupThousandsFloat(-amount))
	}
	return fmt.Sprintf("$%s", groupThousandsFloat(amount))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	out := digits[:head]
	for i := head; i < len(digits); i += 3 {
		if out != "" {
			out += ","
		}
		out += digits[i : i+3]
	}
	return out
}

func groupThousandsFloat(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac := s, ""
	for i, r := range s {
		if r == '.' {
			whole, frac = s[:i], s[i:]
			break
		}
	}
	return groupThousands(whole) + frac
}
