// Package format renders simulation output for display: durations given in
// float hours, idle-game compact numbers, and filename-safe slugs.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var slugStrip = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// Slugify converts a string into a slugified, filename-safe form: spaces
// become underscores and everything outside [A-Za-z0-9_] is dropped.
func Slugify(s string) string {
	return slugStrip.ReplaceAllString(strings.ReplaceAll(s, " ", "_"), "")
}

// Time renders float hours as "1h 30m", "5m 12s" or "42s", omitting zero
// trailing components. Total seconds are rounded to the nearest integer
// before the divmod chain, so 0.0167h comes out as "1m", not "1m 0s".
func Time(hours float64) string {
	total := int(math.Round(hours * 3600))
	h := total / 3600
	rem := total % 3600
	m := rem / 60
	s := rem % 60

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	case s > 0:
		return fmt.Sprintf("%ds", s)
	default:
		return "0s"
	}
}

type threshold struct {
	value  float64
	suffix string
}

var thresholds = []threshold{
	{1e24, ""},
	{1e21, "QQQ"},
	{1e18, "QQ"},
	{1e15, "Q"},
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// Number renders a float in idle-game compact notation: scientific with
// two decimals at 1e24 and above, suffixed thresholds down to 1e3, and a
// truncated integer below that.
func Number(n float64) string {
	for _, t := range thresholds {
		if n >= t.value {
			if t.suffix == "" {
				return fmt.Sprintf("%.2E", n)
			}
			return fmt.Sprintf("%.2f%s", n/t.value, t.suffix)
		}
	}
	return fmt.Sprintf("%d", int64(n))
}

// BreakevenMessage is the banner sentence shown with a comparison result.
func BreakevenMessage(labelA, labelB string, breakeven *float64, maxHours float64) string {
	if breakeven != nil {
		return fmt.Sprintf("%s surpasses %s after %s.", labelB, labelA, Time(*breakeven))
	}
	return fmt.Sprintf("No breakeven found within %s.", Time(maxHours))
}
