package util

import (
	"math"
	"strconv"
	"strings"
)

// ParseFloatDefault parses a trimmed decimal or returns def when the cell is empty,
// malformed, NaN or infinite. Thousands separators are not accepted.
func ParseFloatDefault(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
