package widget

import "math"

type Profitability struct {
	Revenue float64
	Costs   float64
	Profit  float64
	Margin  float64
}

// CalculateProfitability computes revenue from expected yield times market
// price and the margin as a percentage rounded to two decimals. Zero revenue
// yields a zero margin rather than a division error.
func CalculateProfitability(yield, price, costs float64) Profitability {
	revenue := yield * price
	profit := revenue - costs
	margin := 0.0
	if revenue != 0 {
		margin = math.Round(profit/revenue*100*100) / 100
	}
	return Profitability{
		Revenue: revenue,
		Costs:   costs,
		Profit:  profit,
		Margin:  margin,
	}
}
