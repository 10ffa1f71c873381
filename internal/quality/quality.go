// Package quality classifies how complete a semantic group is. Diagnostic
// only; nothing downstream branches on it except UI hints.
package quality

type Level string

const (
	Missing   Level = "missing"
	Poor      Level = "poor"
	Fair      Level = "fair"
	Good      Level = "good"
	Excellent Level = "excellent"
)

// Assess maps a fill ratio to a coarse level. Boundaries are strict above
// fair so a 4/5 group reads "good" and only a full-ish group reads
// "excellent".
func Assess(fillCount, totalSlots int) Level {
	if totalSlots <= 0 || fillCount <= 0 {
		return Missing
	}
	ratio := float64(fillCount) / float64(totalSlots)
	switch {
	case ratio > 0.8:
		return Excellent
	case ratio > 0.6:
		return Good
	case ratio >= 0.4:
		return Fair
	default:
		return Poor
	}
}
