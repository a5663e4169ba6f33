package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntDefault returns def for an empty value and an error for anything
// that is not a base-10 integer.
func ParseIntDefault(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", raw)
	}
	return n, nil
}

// ParseBool treats only "true" and "1" as set.
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true
	default:
		return false
	}
}
