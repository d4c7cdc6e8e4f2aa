package core

// ResizeBidders reconciles every bidder's alternate-price sequence with a
// new slot count: new slots are padded with zero, removed slots are
// truncated, and surviving prices keep their slot index. The input slice
// and its bidders are left untouched; the result is a fresh slice.
// A negative newCount is treated as zero.
func ResizeBidders(bidders []Bidder, newCount int) []Bidder {
	if newCount < 0 {
		newCount = 0
	}
	out := make([]Bidder, len(bidders))
	for i, b := range bidders {
		prices := make([]float64, newCount)
		copy(prices, b.AltPrices)
		b.AltPrices = prices
		out[i] = b
	}
	return out
}
