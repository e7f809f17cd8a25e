package validate

import (
	"strconv"
	"strings"
)

// Q sanitizes the book search query: trims and caps length. An empty result
// means "no filter".
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// ID parses a positive integer path parameter.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Nombre validates a displayable name with a reasonable max length.
func Nombre(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 120 {
		return "", false
	}
	return s, true
}
