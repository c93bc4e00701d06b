// Package validate normalises the query and path values the list pages accept.
package validate

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	reID    = regexp.MustCompile(`^[0-9]{1,18}$`)
	reModal = regexp.MustCompile(`^(form|delete)$`)
)

// ID validates a positive record identifier.
func ID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !reID.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Page returns a zero-based page index; anything unparsable is page 0.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	if n > 10000 {
		n = 10000
	} // clamp, the table clamps again against the data
	return n
}

// Size returns s when it is one of allowed, else def.
func Size(s string, allowed []int, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !slices.Contains(allowed, n) {
		return def
	}
	return n
}

// Modal validates which overlay a list page should open.
func Modal(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reModal.MatchString(s)
}
