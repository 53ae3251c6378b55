// Package inr renders rupee amounts the way auction broadcasts show
// them: crores above 1 Cr, lakhs above 1 L, and Indian digit grouping
// below that.
package inr

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	crore = 10000000
	lakh  = 100000
)

// Format renders a numeric amount as an INR display string.
//
//	25000000 -> "INR 2.50 Cr"
//	150000   -> "INR 1.50 L"
//	5000     -> "INR 5,000"
func Format(value float64) string {
	if value >= crore {
		return fmt.Sprintf("INR %.2f Cr", value/crore)
	}
	if value >= lakh {
		return fmt.Sprintf("INR %.2f L", value/lakh)
	}
	return "INR " + groupIndian(int64(value))
}

// FormatString formats a numeric string; non-numeric input is returned
// unchanged.
func FormatString(s string) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return s
	}
	return Format(value)
}

// groupIndian applies Indian digit grouping: the last three digits form
// one group, then groups of two working leftwards.
//
//	1234567 -> "12,34,567"
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if len(s) > 3 {
		groups := []string{s[len(s)-3:]}
		rest := s[:len(s)-3]
		for len(rest) > 2 {
			groups = append([]string{rest[len(rest)-2:]}, groups...)
			rest = rest[:len(rest)-2]
		}
		if rest != "" {
			groups = append([]string{rest}, groups...)
		}
		s = strings.Join(groups, ",")
	}
	if neg {
		return "-" + s
	}
	return s
}
