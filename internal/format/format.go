package format

import (
	"fmt"
	"strings"
)

// Count formats a result count with western thousand grouping.
// Example: Count(1240) => "1,240"
func Count(n int) string {
	return thousandSep(int64(n))
}

// INR formats a rupee amount with Indian digit grouping.
// Example: INR(125000) => "₹1,25,000"
func INR(rupees int64) string {
	neg := rupees < 0
	if neg {
		rupees = -rupees
	}
	s := fmt.Sprintf("%d", rupees)
	// last three digits, then groups of two
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(append(groups, tail), ",")
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

// feeRangeLabels maps the fee facet option keys to display labels.
var feeRangeLabels = map[string]string{
	"below-1-lakh": "Below " + INR(100000),
	"1-2-lakh":     INR(100000) + " to " + INR(200000),
	"2-5-lakh":     INR(200000) + " to " + INR(500000),
	"above-5-lakh": "Above " + INR(500000),
}

// FeeRangeLabel returns the display label for a fee bracket key, falling back
// to the raw key for unknown brackets.
func FeeRangeLabel(key string) string {
	if l, ok := feeRangeLabels[key]; ok {
		return l
	}
	return key
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}
