package dashboard

import (
	"fmt"
	"math"
)

// Trend formats the percent change from previous to current as a signed
// string ("+25%", "-50%", "+0%"). Anything at or above the baseline carries
// the + prefix, flat days included. A zero baseline reads as +100% when
// anything happened today and 0% when nothing did, so a business's first
// active day shows growth rather than a division artifact.
func Trend(current, previous float64) string {
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "0%"
	}

	change := math.Round((current - previous) / previous * 100)
	if change >= 0 {
		return fmt.Sprintf("+%d%%", int(change))
	}
	return fmt.Sprintf("%d%%", int(change))
}
