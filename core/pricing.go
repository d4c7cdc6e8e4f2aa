package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AlternatePrice returns b's price for one alternate. A numbered index
// beyond the bidder's price sequence contributes zero, not an error: bid
// tabs routinely arrive with short or partial rows.
func AlternatePrice(b Bidder, ref AlternateRef) float64 {
	if ref.Kind == KindSpecial {
		return b.SpecialPrice
	}
	if ref.Index < 0 || ref.Index >= len(b.AltPrices) {
		return 0
	}
	return b.AltPrices[ref.Index]
}

// Total computes b's total price for a selection: base price plus the sum
// of the bidder's price for each selected alternate. Uses decimal
// arithmetic to keep sums exact for monetary values.
func Total(b Bidder, sel Selection) float64 {
	sum := decimal.NewFromFloat(b.BasePrice)
	for _, ref := range sel.items {
		sum = sum.Add(decimal.NewFromFloat(AlternatePrice(b, ref)))
	}
	result, _ := sum.Float64()
	return result
}

// RankBidders computes every bidder's total for a selection and sorts
// ascending by total. Bidders with exactly equal totals keep their input
// order, which makes the declared winner deterministic on ties.
func RankBidders(bidders []Bidder, sel Selection) []BidderTotal {
	totals := make([]BidderTotal, 0, len(bidders))
	for _, b := range bidders {
		totals = append(totals, BidderTotal{
			BidderID: b.ID,
			Name:     b.Name,
			Total:    Total(b, sel),
		})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total < totals[j].Total
	})
	return totals
}
