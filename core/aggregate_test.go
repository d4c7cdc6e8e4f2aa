package core

import (
	"testing"

	"github.com/peterldowns/testy/check"
)

// levelingBidders is the three-bidder fixture used across aggregate tests.
func levelingBidders() []Bidder {
	return []Bidder{
		{ID: "a", Name: "Alpha Builders", BasePrice: 100000, AltPrices: []float64{5000, 3000}},
		{ID: "b", Name: "Bravo Construction", BasePrice: 105000, AltPrices: []float64{4500, 2500}},
		{ID: "c", Name: "Charlie & Sons", BasePrice: 98000, AltPrices: []float64{6000, 3500}},
	}
}

func TestAllCombinations_TwoAlternates(t *testing.T) {
	cfg := Config{AlternateCount: 2}

	results := AllCombinations(levelingBidders(), cfg)

	check.Equal(t, 4, len(results))

	// Sorted ascending by winning total, so "Base Bid Only" comes first.
	check.Equal(t, "Base Bid Only", results[0].Label)
	check.NotNil(t, results[0].Winner)
	check.Equal(t, "c", results[0].Winner.BidderID)
	check.Equal(t, 98000.0, results[0].Winner.Total)

	// 98000+6000+3500 beats 100000+5000+3000 and 105000+4500+2500.
	last := results[3]
	check.Equal(t, "Base Bid + Alt 1 + Alt 2", last.Label)
	check.Equal(t, "c", last.Winner.BidderID)
	check.Equal(t, 107500.0, last.Winner.Total)

	// Per-combination totals cover every bidder, ranked ascending.
	check.Equal(t, 3, len(last.Totals))
	check.Equal(t, 108000.0, last.Totals[1].Total)
	check.Equal(t, 112000.0, last.Totals[2].Total)
}

func TestAllCombinations_SortedByWinnerTotal(t *testing.T) {
	cfg := Config{AlternateCount: 2}

	results := AllCombinations(levelingBidders(), cfg)

	for i := 1; i < len(results); i++ {
		check.True(t, results[i-1].Winner.Total <= results[i].Winner.Total)
	}
}

func TestAllCombinations_CountBoundedByPowerSet(t *testing.T) {
	bidders := levelingBidders()

	// No exclusions: exactly 2^universe entries.
	noRules := Config{AlternateCount: 3, SpecialEnabled: true}
	check.Equal(t, 16, len(AllCombinations(bidders, noRules)))

	// Active exclusions strictly shrink the set.
	withRules := Config{AlternateCount: 4, ExcludeThirdFourth: true}
	check.Equal(t, 12, len(AllCombinations(bidders, withRules)))
}

func TestAllCombinations_NoBidders(t *testing.T) {
	results := AllCombinations(nil, Config{AlternateCount: 2})

	check.Equal(t, 4, len(results))
	for _, r := range results {
		check.Nil(t, r.Winner)
		check.Equal(t, 0, len(r.Totals))
	}
}

func TestFilterByBudget(t *testing.T) {
	cfg := Config{AlternateCount: 2}
	all := AllCombinations(levelingBidders(), cfg)

	// Winning totals are 98000, 101500, 104000, 107500.
	check.Equal(t, len(all), len(FilterByBudget(all, 0)))
	check.Equal(t, 3, len(FilterByBudget(all, 104000)))
	check.Equal(t, 2, len(FilterByBudget(all, 103000)))
	check.Equal(t, 0, len(FilterByBudget(all, 50000)))
}

func TestFilterByBudget_Monotonic(t *testing.T) {
	all := AllCombinations(levelingBidders(), Config{AlternateCount: 2})

	caps := []float64{200000, 107500, 104000, 101500, 98000, 97999, 1}
	prev := len(all) + 1
	for _, budgetCap := range caps {
		n := len(FilterByBudget(all, budgetCap))
		check.True(t, n < prev || n == prev)
		prev = n
	}
}

func TestWinRates_SumToHundred(t *testing.T) {
	bidders := []Bidder{
		{ID: "a", Name: "Alpha", BasePrice: 100000, AltPrices: []float64{1000, 9000}},
		{ID: "b", Name: "Bravo", BasePrice: 100500, AltPrices: []float64{200, 100}},
	}
	all := AllCombinations(bidders, Config{AlternateCount: 2})

	rates := WinRates(bidders, all)

	check.Equal(t, 2, len(rates))
	sum := 0.0
	wins := 0
	for _, r := range rates {
		sum += r.Percent
		wins += r.Wins
	}
	check.Equal(t, 100.0, sum)
	check.Equal(t, len(all), wins)

	// Sorted descending by percentage.
	for i := 1; i < len(rates); i++ {
		check.True(t, rates[i-1].Percent >= rates[i].Percent)
	}
}

func TestWinRates_EmptyCombinationsListsEveryBidderAtZero(t *testing.T) {
	rates := WinRates(levelingBidders(), nil)

	check.Equal(t, 3, len(rates))
	for _, r := range rates {
		check.Equal(t, 0, r.Wins)
		check.Equal(t, 0.0, r.Percent)
	}
}

func TestFrontier(t *testing.T) {
	cfg := Config{AlternateCount: 2}
	all := AllCombinations(levelingBidders(), cfg)

	frontier := Frontier(all)

	check.Equal(t, 3, len(frontier))
	check.Equal(t, 0, frontier[0].Size)
	check.Equal(t, 98000.0, frontier[0].Combination.Winner.Total)
	check.Equal(t, 1, frontier[1].Size)
	check.Equal(t, 101500.0, frontier[1].Combination.Winner.Total)
	check.Equal(t, 2, frontier[2].Size)
	check.Equal(t, 107500.0, frontier[2].Combination.Winner.Total)
}

func TestFrontier_OmitsEmptySizes(t *testing.T) {
	cfg := Config{AlternateCount: 2}
	all := AllCombinations(levelingBidders(), cfg)

	// Cap admits only the base bid and the cheapest single alternate.
	frontier := Frontier(FilterByBudget(all, 103000))

	check.Equal(t, 2, len(frontier))
	check.Equal(t, 0, frontier[0].Size)
	check.Equal(t, 1, frontier[1].Size)
}

func TestWonBy(t *testing.T) {
	bidders := []Bidder{
		{ID: "a", Name: "Alpha", BasePrice: 100000, AltPrices: []float64{1000, 9000}},
		{ID: "b", Name: "Bravo", BasePrice: 100500, AltPrices: []float64{200, 100}},
	}
	all := AllCombinations(bidders, Config{AlternateCount: 2})

	wonA := WonBy(all, "a")
	wonB := WonBy(all, "b")

	check.Equal(t, len(all), len(wonA)+len(wonB))
	for _, r := range wonA {
		check.Equal(t, "a", r.Winner.BidderID)
	}
	check.Equal(t, 0, len(WonBy(all, "nobody")))
}

func TestTopCombinations(t *testing.T) {
	all := AllCombinations(levelingBidders(), Config{AlternateCount: 2})

	check.Equal(t, 2, len(TopCombinations(all, 2)))
	check.Equal(t, all[0], TopCombinations(all, 2)[0])
	check.Equal(t, 4, len(TopCombinations(all, 0)))
	check.Equal(t, 4, len(TopCombinations(all, 99)))
}

func TestEvaluate_BudgetCapBelowEverything(t *testing.T) {
	cfg := Config{AlternateCount: 2, BudgetCap: 50000}

	report := Evaluate(levelingBidders(), cfg)

	check.Equal(t, 4, len(report.AllCombinations))
	check.Equal(t, 0, len(report.FilteredCombinations))
	check.Equal(t, 0, len(report.Frontier))
	check.Equal(t, 3, len(report.WinRates))
	for _, r := range report.WinRates {
		check.Equal(t, 0.0, r.Percent)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	bidders := levelingBidders()
	cfg := Config{
		AlternateCount:     2,
		SpecialEnabled:     true,
		ExcludeThirdFourth: true,
		BudgetCap:          110000,
	}

	first := Evaluate(bidders, cfg)
	second := Evaluate(bidders, cfg)

	check.Equal(t, first, second)
}

func TestEvaluate_DoesNotMutateInputs(t *testing.T) {
	bidders := levelingBidders()
	cfg := Config{AlternateCount: 2, BudgetCap: 104000}

	Evaluate(bidders, cfg)

	check.Equal(t, levelingBidders(), bidders)
}
