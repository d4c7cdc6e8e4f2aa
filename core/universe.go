package core

import (
	"fmt"
	"strings"
)

// BuildUniverse returns the ordered list of all selectable alternates:
// numbered slots 0..n-1 followed by the special alternate when enabled.
// A negative n is treated as zero. The universe length defines the
// enumeration space size 2^len.
func BuildUniverse(n int, specialEnabled bool) []AlternateRef {
	if n < 0 {
		n = 0
	}
	universe := make([]AlternateRef, 0, n+1)
	for i := 0; i < n; i++ {
		universe = append(universe, Numbered(i))
	}
	if specialEnabled {
		universe = append(universe, Special())
	}
	return universe
}

// ActiveExclusions returns the exclusion rules in effect for cfg. A rule
// referencing an alternate outside the current universe is never emitted:
// the second-numbered/special rule requires the special alternate and at
// least two slots, the third/fourth rule requires at least four slots.
func ActiveExclusions(cfg Config) []ExclusionRule {
	n := cfg.AlternateCount
	if n < 0 {
		n = 0
	}
	var rules []ExclusionRule
	if cfg.ExcludeSpecialWithSecond && cfg.SpecialEnabled && n >= 2 {
		rules = append(rules, ExclusionRule{A: Numbered(1), B: Special()})
	}
	if cfg.ExcludeThirdFourth && n >= 4 {
		rules = append(rules, ExclusionRule{A: Numbered(2), B: Numbered(3)})
	}
	return rules
}

// LabelFor returns the display label for one alternate. Numbered slots use
// the configured label when present, otherwise "Alt N" (one-based). The
// special alternate uses its configured label, otherwise "Special".
func LabelFor(cfg Config, ref AlternateRef) string {
	if ref.Kind == KindSpecial {
		if cfg.SpecialLabel != "" {
			return cfg.SpecialLabel
		}
		return "Special"
	}
	if ref.Index < len(cfg.AlternateLabels) && cfg.AlternateLabels[ref.Index] != "" {
		return cfg.AlternateLabels[ref.Index]
	}
	return fmt.Sprintf("Alt %d", ref.Index+1)
}

// SelectionLabel builds the human-readable name for a selection:
// "Base Bid Only" for the empty selection, otherwise "Base Bid + " followed
// by each alternate's label in selection order.
func SelectionLabel(cfg Config, sel Selection) string {
	if sel.Len() == 0 {
		return "Base Bid Only"
	}
	parts := make([]string, 0, sel.Len()+1)
	parts = append(parts, "Base Bid")
	for _, ref := range sel.Items() {
		parts = append(parts, LabelFor(cfg, ref))
	}
	return strings.Join(parts, " + ")
}
