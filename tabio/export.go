package tabio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/bidlevel/bidlevel/core"
)

// ExportCombinations writes the combination table as CSV: one row per
// combination with its label, winner, winning total, and every bidder's
// total in the given bidder order.
func ExportCombinations(w io.Writer, results []core.CombinationResult, bidders []core.Bidder) error {
	cw := csv.NewWriter(w)

	header := []string{"Combination", "Winner", "Winning Total"}
	for _, b := range bidders {
		header = append(header, b.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range results {
		row := make([]string, 0, len(header))
		row = append(row, r.Label)
		if r.Winner != nil {
			row = append(row, r.Winner.Name, formatPrice(r.Winner.Total))
		} else {
			row = append(row, "", "")
		}

		byBidder := make(map[string]float64, len(r.Totals))
		for _, bt := range r.Totals {
			byBidder[bt.BidderID] = bt.Total
		}
		for _, b := range bidders {
			row = append(row, formatPrice(byBidder[b.ID]))
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
