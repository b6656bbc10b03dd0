package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DistributePercentages turns a slice of totals into integer percentages
// of their sum using the largest-remainder method: each total's share is
// floored, then the residual needed to reach 100 is handed out one point
// at a time to the entries with the largest fractional remainder, ties
// broken by the lower index. Returns all zeros when the totals sum to
// zero. The result always sums to exactly 100 (or 0).
func DistributePercentages(totals []decimal.Decimal) []int {
	percents := make([]int, len(totals))
	if len(totals) == 0 {
		return percents
	}

	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	if sum.IsZero() {
		return percents
	}

	type remainder struct {
		index int
		frac  decimal.Decimal
	}

	floorSum := 0
	remainders := make([]remainder, len(totals))
	for i, t := range totals {
		raw := t.Div(sum).Mul(decimal.NewFromInt(100))
		floor := raw.IntPart()
		percents[i] = int(floor)
		floorSum += int(floor)
		remainders[i] = remainder{index: i, frac: raw.Sub(decimal.NewFromInt(floor))}
	}

	sort.SliceStable(remainders, func(a, b int) bool {
		if !remainders[a].frac.Equal(remainders[b].frac) {
			return remainders[a].frac.GreaterThan(remainders[b].frac)
		}
		return remainders[a].index < remainders[b].index
	})

	residual := 100 - floorSum
	for i := 0; i < residual && i < len(remainders); i++ {
		percents[remainders[i].index]++
	}

	return percents
}
