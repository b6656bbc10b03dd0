package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDistributePercentages_SumsToHundred(t *testing.T) {
	totals := []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(100),
		decimal.NewFromInt(100),
	}

	percents := DistributePercentages(totals)

	sum := 0
	for _, p := range percents {
		sum += p
	}
	assert.Equal(t, 100, sum)
	// Three equal thirds: one gets the extra point, tie-broken to the
	// lowest index.
	assert.Equal(t, []int{34, 33, 33}, percents)
}

func TestDistributePercentages_AllZeroWhenSumIsZero(t *testing.T) {
	totals := []decimal.Decimal{decimal.Zero, decimal.Zero}
	assert.Equal(t, []int{0, 0}, DistributePercentages(totals))
}

func TestDistributePercentages_LargestRemainderWins(t *testing.T) {
	// 60/190=31.57%, 70/190=36.84%, 60/190=31.57% -> floors 31,36,31 sum 98,
	// residual 2 goes to the two largest fractional remainders.
	totals := []decimal.Decimal{
		decimal.NewFromInt(60),
		decimal.NewFromInt(70),
		decimal.NewFromInt(60),
	}

	percents := DistributePercentages(totals)

	sum := 0
	for _, p := range percents {
		sum += p
	}
	assert.Equal(t, 100, sum)
}

func TestDistributePercentages_Empty(t *testing.T) {
	assert.Equal(t, []int{}, DistributePercentages(nil))
}
