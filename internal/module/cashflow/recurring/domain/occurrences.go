package domain

import (
	"time"

	"financequest/internal/pkg/caldate"
)

// GenerateOccurrences returns the deterministically-ordered occurrence
// dates for the template within the inclusive window [rangeStart,
// rangeEnd]. The running occurrence count used against
// total_occurrences is reset at the start of every call and only
// advances once the walk reaches rangeStart — the cap gates how many
// occurrences a single materialization call may emit from the window
// forward, it is not a lifetime counter carried across calls. A
// template whose earlier months were never queried still materializes
// normally once a caller finally reads them.
func GenerateOccurrences(t Template, rangeStart, rangeEnd caldate.Date) []caldate.Date {
	if t.Frequency == FrequencyMonthly {
		return generateMonthly(t, rangeStart, rangeEnd)
	}
	return generateWeekly(t, rangeStart, rangeEnd)
}

func generateMonthly(t Template, rangeStart, rangeEnd caldate.Date) []caldate.Date {
	var occurrences []caldate.Date

	dayOfMonth := 1
	if t.DayOfMonth != nil {
		dayOfMonth = *t.DayOfMonth
	}

	year, month := t.StartDate.Year(), t.StartDate.Month()
	count := 0

	for {
		day := caldate.ClampDay(year, month, dayOfMonth)
		occDate := caldate.NewDate(year, time.Month(month), day)
		if occDate.After(rangeEnd) {
			break
		}

		if !occDate.Before(rangeStart) {
			if t.EndDate != nil && occDate.After(*t.EndDate) {
				break
			}
			if t.TotalOccurrences != nil && count >= *t.TotalOccurrences {
				break
			}

			if !occDate.Before(t.StartDate) {
				occurrences = append(occurrences, occDate)
				count++
			}
		}

		next := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
		year, month = next.Year(), int(next.Month())
	}

	return occurrences
}

func generateWeekly(t Template, rangeStart, rangeEnd caldate.Date) []caldate.Date {
	var occurrences []caldate.Date

	step := 7
	if t.Frequency == FrequencyBiweekly {
		step = 14
	}
	dayOfWeek := 0
	if t.DayOfWeek != nil {
		dayOfWeek = *t.DayOfWeek
	}

	anchor := t.StartDate
	for caldate.Weekday(anchor) != dayOfWeek {
		anchor = anchor.AddDays(1)
	}

	count := 0
	for cur := anchor; !cur.After(rangeEnd); cur = cur.AddDays(step) {
		if cur.Before(rangeStart) || cur.Before(t.StartDate) {
			continue
		}
		if t.EndDate != nil && cur.After(*t.EndDate) {
			break
		}
		if t.TotalOccurrences != nil && count >= *t.TotalOccurrences {
			break
		}

		occurrences = append(occurrences, cur)
		count++
	}

	return occurrences
}
