package analysis

import (
	"math"
	"strings"
)

// DigitStatsOf counts and sums the decimal digits of |v| as it is printed,
// ignoring the decimal point and any exponent markers.
func DigitStatsOf(v float64) DigitStats {
	text := strings.Replace(FormatNumber(math.Abs(v)), ".", "", 1)

	var digits strings.Builder
	stats := DigitStats{Counts: make(map[string]int)}
	for _, r := range text {
		if r < '0' || r > '9' {
			continue
		}
		digits.WriteRune(r)
		stats.Counts[string(r)]++
		stats.Sum += int(r - '0')
		stats.Count++
	}
	stats.Digits = digits.String()

	return stats
}
