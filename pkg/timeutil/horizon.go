// Package timeutil parses the day horizons accepted by the due view.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	horizonPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitDays       = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseHorizon parses a number of days written as "3d", "2w" or "1w2d" and
// returns it along with a compact form. An empty or "0" input is a zero
// horizon, meaning today only.
func ParseHorizon(input string) (int, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" || remaining == "0" {
		return 0, FormatHorizon(0), nil
	}

	total := 0
	for len(remaining) > 0 {
		matches := horizonPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid horizon segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid horizon value %q: %w", matches[1], err)
		}
		days, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported horizon unit %q, use days or weeks", matches[2])
		}
		total += value * days
		remaining = remaining[len(matches[0]):]
	}
	return total, FormatHorizon(total), nil
}

// FormatHorizon renders days using week and day tokens.
func FormatHorizon(days int) string {
	if days <= 0 {
		return "0d"
	}
	var b strings.Builder
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if d := days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	return b.String()
}
