package domain

// MonthOverMonthDelta is the fractional change from previous to current.
// A previous value of zero has no ratio, so it is special-cased: a jump
// from nothing to something is reported as a full 100% increase (1.0),
// and no spend in either month is reported as no change (0.0).
func MonthOverMonthDelta(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous
	}
	if current > 0 {
		return 1.0
	}
	return 0.0
}

// TrendDelta is the savings/investment trend's delta: nil when the
// previous month had nothing to compare against, rather than the
// current-vs-zero convention MonthOverMonthDelta uses.
func TrendDelta(current, previous float64) *float64 {
	if previous <= 0 {
		return nil
	}
	delta := (current - previous) / previous
	return &delta
}
