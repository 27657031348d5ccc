package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice converts a decimal string like "4.50" into integer cents.
// At most two fraction digits; negative or zero prices are rejected.
func ParsePrice(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("price is required")
	}

	// ParseInt("-0") is 0, so a sign check on the parsed dollars would
	// let "-0.50" through
	if strings.HasPrefix(value, "-") {
		return 0, fmt.Errorf("price must be a positive decimal number")
	}

	whole, frac, _ := strings.Cut(value, ".")

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("price must be a positive decimal number")
	}

	var cents int64
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("price supports at most two decimal places")
		}
		// pad "5" -> "50"
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("price must be a positive decimal number")
		}
	}

	total := dollars*100 + cents
	if total <= 0 {
		return 0, fmt.Errorf("price must be greater than zero")
	}

	return total, nil
}

// FormatPrice renders integer cents as a decimal string like "4.50"
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
