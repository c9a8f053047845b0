package validate

import (
	"regexp"
	"strconv"
	"strings"

	"pricebook/internal/domain"
)

var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ID validates a simple resource identifier (product ids, session ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Period validates a usage period enum.
func Period(s string) (domain.Period, bool) {
	p := domain.Period(strings.TrimSpace(strings.ToLower(s)))
	return p, domain.ValidPeriod(p)
}

// Frequency parses a non-negative usage frequency.
func Frequency(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// IDList splits a comma-separated id list, dropping blanks and anything that
// fails ID validation. Used for ad-hoc "selected" products on the display
// endpoint.
func IDList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if id, ok := ID(part); ok {
			out = append(out, id)
		}
	}
	return out
}
