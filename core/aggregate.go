package core

import "sort"

// Evaluate runs the full leveling analysis: enumeration, per-selection
// ranking, budget filtering, win rates, and the scope/cost frontier.
// It never mutates its inputs and holds no state between calls.
func Evaluate(bidders []Bidder, cfg Config) *EvaluationReport {
	all := AllCombinations(bidders, cfg)
	filtered := FilterByBudget(all, cfg.BudgetCap)

	return &EvaluationReport{
		AllCombinations:      all,
		FilteredCombinations: filtered,
		WinRates:             WinRates(bidders, filtered),
		Frontier:             Frontier(filtered),
	}
}

// AllCombinations evaluates every bidder against every valid selection and
// returns one result per selection, sorted ascending by the winning total.
// This global ordering is distinct from enumeration order; combinations
// with equal winning totals keep enumeration order.
func AllCombinations(bidders []Bidder, cfg Config) []CombinationResult {
	universe := BuildUniverse(cfg.AlternateCount, cfg.SpecialEnabled)
	rules := ActiveExclusions(cfg)

	results := make([]CombinationResult, 0, 1<<uint(len(universe)))
	EnumerateSelections(universe, rules, func(sel Selection) {
		totals := RankBidders(bidders, sel)
		var winner *BidderTotal
		if len(totals) > 0 {
			w := totals[0]
			winner = &w
		}
		results = append(results, CombinationResult{
			Label:     SelectionLabel(cfg, sel),
			Selection: sel,
			Totals:    totals,
			Winner:    winner,
		})
	})

	sort.SliceStable(results, func(i, j int) bool {
		return winnerTotal(results[i]) < winnerTotal(results[j])
	})
	return results
}

// winnerTotal returns the winning total, or zero when there are no bidders.
func winnerTotal(r CombinationResult) float64 {
	if r.Winner == nil {
		return 0
	}
	return r.Winner.Total
}

// FilterByBudget returns the combinations whose winning total is within the
// budget cap. A cap of zero or below means no cap, returning the input
// unchanged.
func FilterByBudget(results []CombinationResult, budgetCap float64) []CombinationResult {
	if budgetCap <= 0 {
		return results
	}
	filtered := make([]CombinationResult, 0, len(results))
	for _, r := range results {
		if winnerTotal(r) <= budgetCap {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// WinRates counts how often each bidder wins across the given combinations.
// Every bidder is listed, including those with zero wins; for an empty
// combination set all percentages are zero. Sorted descending by
// percentage, with ties keeping original bidder order.
func WinRates(bidders []Bidder, results []CombinationResult) []WinRate {
	wins := make(map[string]int, len(bidders))
	for _, r := range results {
		if r.Winner != nil {
			wins[r.Winner.BidderID]++
		}
	}

	rates := make([]WinRate, 0, len(bidders))
	for _, b := range bidders {
		wr := WinRate{BidderID: b.ID, Name: b.Name, Wins: wins[b.ID]}
		if len(results) > 0 {
			wr.Percent = float64(wr.Wins) / float64(len(results)) * 100
		}
		rates = append(rates, wr)
	}
	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].Percent > rates[j].Percent
	})
	return rates
}

// Frontier returns, for each selection size present in results, the
// combination with the lowest winning total, sorted ascending by size.
// Sizes with no combination are omitted. Ties on winning total within a
// size resolve to the earlier entry in results.
func Frontier(results []CombinationResult) []FrontierEntry {
	best := make(map[int]CombinationResult)
	for _, r := range results {
		k := r.Selection.Len()
		cur, seen := best[k]
		if !seen || winnerTotal(r) < winnerTotal(cur) {
			best[k] = r
		}
	}

	sizes := make([]int, 0, len(best))
	for k := range best {
		sizes = append(sizes, k)
	}
	sort.Ints(sizes)

	frontier := make([]FrontierEntry, 0, len(sizes))
	for _, k := range sizes {
		frontier = append(frontier, FrontierEntry{Size: k, Combination: best[k]})
	}
	return frontier
}

// WonBy restricts results to the combinations won by the given bidder.
func WonBy(results []CombinationResult, bidderID string) []CombinationResult {
	won := make([]CombinationResult, 0, len(results))
	for _, r := range results {
		if r.Winner != nil && r.Winner.BidderID == bidderID {
			won = append(won, r)
		}
	}
	return won
}

// TopCombinations truncates results to the first n entries. A non-positive
// n, or n beyond the available count, returns the input unchanged.
func TopCombinations(results []CombinationResult, n int) []CombinationResult {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}
