package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	transactiondomain "financequest/internal/module/cashflow/transaction/domain"
	"financequest/internal/pkg/caldate"
)

func date(y int, m time.Month, d int) caldate.Date {
	return caldate.NewDate(y, m, d)
}

func intPtr(n int) *int { return &n }

func baseTemplate() Template {
	return Template{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Amount: decimal.RequireFromString("100.00"),
		Kind:   transactiondomain.KindExpense,
	}
}

func TestGenerateOccurrences_Monthly_ClampsDayAcrossShortMonths(t *testing.T) {
	tmpl := baseTemplate()
	tmpl.Frequency = FrequencyMonthly
	tmpl.DayOfMonth = intPtr(31)
	tmpl.StartDate = date(2024, time.January, 31)

	got := GenerateOccurrences(tmpl, date(2024, time.January, 1), date(2024, time.April, 30))

	want := []caldate.Date{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
		date(2024, time.April, 30),
	}
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "index %d: want %s, got %s", i, want[i], got[i])
	}
}

func TestGenerateOccurrences_Biweekly_Fridays(t *testing.T) {
	tmpl := baseTemplate()
	tmpl.Frequency = FrequencyBiweekly
	tmpl.DayOfWeek = intPtr(4) // Friday, Monday=0..Sunday=6
	tmpl.StartDate = date(2024, time.January, 1)

	got := GenerateOccurrences(tmpl, date(2024, time.January, 1), date(2024, time.February, 16))

	want := []caldate.Date{
		date(2024, time.January, 5),
		date(2024, time.January, 19),
		date(2024, time.February, 2),
		date(2024, time.February, 16),
	}
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "index %d: want %s, got %s", i, want[i], got[i])
	}
}

func TestGenerateOccurrences_Weekly_RespectsEndDate(t *testing.T) {
	tmpl := baseTemplate()
	tmpl.Frequency = FrequencyWeekly
	tmpl.DayOfWeek = intPtr(0) // Monday
	tmpl.StartDate = date(2024, time.March, 4)
	end := date(2024, time.March, 18)
	tmpl.EndDate = &end

	got := GenerateOccurrences(tmpl, date(2024, time.January, 1), date(2024, time.December, 31))

	want := []caldate.Date{
		date(2024, time.March, 4),
		date(2024, time.March, 11),
		date(2024, time.March, 18),
	}
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]))
	}
}

func TestGenerateOccurrences_TotalOccurrencesCapIsPerCallNotLifetime(t *testing.T) {
	tmpl := baseTemplate()
	tmpl.Frequency = FrequencyWeekly
	tmpl.DayOfWeek = intPtr(0) // Monday
	tmpl.StartDate = date(2024, time.January, 1)
	tmpl.TotalOccurrences = intPtr(2)

	// Two earlier, disjoint windows each materialize occurrences under
	// the cap independently.
	first := GenerateOccurrences(tmpl, date(2024, time.January, 1), date(2024, time.January, 1))
	require.Len(t, first, 1)
	assert.True(t, first[0].Equal(date(2024, time.January, 1)))

	second := GenerateOccurrences(tmpl, date(2024, time.January, 2), date(2024, time.January, 8))
	require.Len(t, second, 1)
	assert.True(t, second[0].Equal(date(2024, time.January, 8)))

	// A later window's count starts fresh from its own start, not from
	// template.start_date: Jan 1 and Jan 8 fell before this window and
	// are never counted against it, so the first two Mondays the window
	// actually reaches (Jan 15, Jan 22) still fit under the cap of 2.
	third := GenerateOccurrences(tmpl, date(2024, time.January, 9), date(2024, time.January, 31))
	want := []caldate.Date{
		date(2024, time.January, 15),
		date(2024, time.January, 22),
	}
	require.Equal(t, len(want), len(third))
	for i := range want {
		assert.True(t, want[i].Equal(third[i]), "index %d: want %s, got %s", i, want[i], third[i])
	}
}

func TestGenerateOccurrences_BeforeStartDateExcluded(t *testing.T) {
	tmpl := baseTemplate()
	tmpl.Frequency = FrequencyMonthly
	tmpl.DayOfMonth = intPtr(15)
	tmpl.StartDate = date(2024, time.June, 15)

	got := GenerateOccurrences(tmpl, date(2024, time.January, 1), date(2024, time.December, 31))

	require.NotEmpty(t, got)
	assert.True(t, got[0].Equal(date(2024, time.June, 15)))
}
