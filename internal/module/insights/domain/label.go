package domain

import (
	"fmt"
	"strings"
	"time"
)

// MonthKey returns the snapshot key for a year/month, e.g. "jun-2024".
func MonthKey(year, month int) string {
	abbrev := strings.ToLower(time.Month(month).String()[:3])
	return fmt.Sprintf("%s-%d", abbrev, year)
}

// MonthLabel returns the snapshot's display label, e.g. "June 2024".
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}

// WeekLabel returns a week breakdown's display label, e.g. "Week 1".
func WeekLabel(week int) string {
	return fmt.Sprintf("Week %d", week)
}
