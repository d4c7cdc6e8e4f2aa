package core

// AlternateKind distinguishes the two kinds of selectable alternates.
type AlternateKind int

const (
	// KindNumbered is a regular alternate identified by its zero-based slot index.
	KindNumbered AlternateKind = iota
	// KindSpecial is the variant alternate carrying its own price column and
	// exclusion rule. There is at most one per project.
	KindSpecial
)

// AlternateRef identifies a single selectable alternate. Index is meaningful
// only when Kind is KindNumbered. Refs are comparable with ==.
type AlternateRef struct {
	Kind  AlternateKind `json:"kind"`
	Index int           `json:"index,omitempty"`
}

// Numbered returns the ref for the numbered alternate at slot index i.
func Numbered(i int) AlternateRef {
	return AlternateRef{Kind: KindNumbered, Index: i}
}

// Special returns the ref for the special alternate.
func Special() AlternateRef {
	return AlternateRef{Kind: KindSpecial}
}

// Bidder represents one contractor's complete bid: a base price plus one
// price per configured alternate slot, and optionally a price for the
// special alternate. AltPrices is indexed by alternate slot; entries beyond
// its length are treated as zero, never as an error.
type Bidder struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BasePrice    float64   `json:"base_price"`
	AltPrices    []float64 `json:"alt_prices"`
	SpecialPrice float64   `json:"special_price,omitempty"`
}

// Config holds the evaluation inputs that are not per-bidder data. The
// engine treats it as read-only.
type Config struct {
	// AlternateCount is the number of numbered alternate slots. Negative
	// values are treated as zero.
	AlternateCount int `json:"alternate_count"`

	// AlternateLabels optionally overrides the display label per slot;
	// missing or empty entries fall back to "Alt N".
	AlternateLabels []string `json:"alternate_labels,omitempty"`

	// SpecialEnabled adds the special alternate to the universe.
	SpecialEnabled bool   `json:"special_enabled"`
	SpecialLabel   string `json:"special_label,omitempty"`

	// ExcludeSpecialWithSecond forbids selecting the second numbered
	// alternate together with the special alternate.
	ExcludeSpecialWithSecond bool `json:"exclude_special_with_second"`

	// ExcludeThirdFourth forbids selecting the third and fourth numbered
	// alternates together. Has no effect with fewer than four slots.
	ExcludeThirdFourth bool `json:"exclude_third_fourth"`

	// BudgetCap filters combinations whose winning total exceeds it.
	// Zero means no cap.
	BudgetCap float64 `json:"budget_cap,omitempty"`

	// TopN truncates ranked combination listings for display. Zero means
	// no truncation.
	TopN int `json:"top_n,omitempty"`
}

// ExclusionRule is an unordered pair of alternates that must never both
// appear in the same selection.
type ExclusionRule struct {
	A AlternateRef `json:"a"`
	B AlternateRef `json:"b"`
}

// BidderTotal is one bidder's computed total price for a selection.
type BidderTotal struct {
	BidderID string  `json:"bidder_id"`
	Name     string  `json:"name"`
	Total    float64 `json:"total"`
}

// CombinationResult holds the full evaluation of one valid selection:
// every bidder's total, ranked ascending, and the winning (lowest) entry.
type CombinationResult struct {
	// Label is the human-readable name, e.g. "Base Bid Only" or
	// "Base Bid + Alt 1 + Alt 2A".
	Label string `json:"label"`

	Selection Selection `json:"selection"`

	// Totals is sorted ascending by total; bidders with equal totals keep
	// their original input order.
	Totals []BidderTotal `json:"totals"`

	// Winner is the first ranked entry (nil if there are no bidders).
	Winner *BidderTotal `json:"winner,omitempty"`
}

// WinRate is one bidder's share of wins across a set of combinations.
type WinRate struct {
	BidderID string  `json:"bidder_id"`
	Name     string  `json:"name"`
	Wins     int     `json:"wins"`
	Percent  float64 `json:"percent"`
}

// FrontierEntry is the cheapest winning combination for one selection size.
type FrontierEntry struct {
	Size        int               `json:"size"`
	Combination CombinationResult `json:"combination"`
}

// EvaluationReport contains every derived view for one (bidders, config)
// input. It is a pure function of its inputs; recomputing with the same
// inputs yields a structurally equal report.
type EvaluationReport struct {
	// AllCombinations holds one result per valid selection, sorted
	// ascending by winning total.
	AllCombinations []CombinationResult `json:"all_combinations"`

	// FilteredCombinations is AllCombinations restricted to winning totals
	// within the budget cap. Identical to AllCombinations when no cap is set.
	FilteredCombinations []CombinationResult `json:"filtered_combinations"`

	// WinRates lists every bidder with their win count and percentage over
	// FilteredCombinations, sorted descending by percentage.
	WinRates []WinRate `json:"win_rates"`

	// Frontier holds the cheapest filtered combination per selection size,
	// sorted ascending by size. Sizes with no filtered combination are
	// omitted.
	Frontier []FrontierEntry `json:"frontier"`
}
