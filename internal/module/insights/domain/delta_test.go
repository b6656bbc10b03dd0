package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthOverMonthDelta(t *testing.T) {
	assert.Equal(t, 0.5, MonthOverMonthDelta(150, 100))
	assert.Equal(t, -0.5, MonthOverMonthDelta(50, 100))
	assert.Equal(t, 1.0, MonthOverMonthDelta(200, 0))
	assert.Equal(t, 0.0, MonthOverMonthDelta(0, 0))
}

func TestTrendDelta(t *testing.T) {
	assert.Nil(t, TrendDelta(200, 0))

	delta := TrendDelta(150, 100)
	if assert.NotNil(t, delta) {
		assert.Equal(t, 0.5, *delta)
	}
}

func TestMonthLabelAndKey(t *testing.T) {
	assert.Equal(t, "jun-2024", MonthKey(2024, 6))
	assert.Equal(t, "June 2024", MonthLabel(2024, 6))
	assert.Equal(t, "Week 3", WeekLabel(3))
}
