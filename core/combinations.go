package core

// ruleMasks converts exclusion rules into bit masks over universe positions.
// Rules referencing an alternate not present in the universe are ignored.
func ruleMasks(universe []AlternateRef, rules []ExclusionRule) []uint {
	pos := make(map[AlternateRef]int, len(universe))
	for i, ref := range universe {
		pos[ref] = i
	}
	masks := make([]uint, 0, len(rules))
	for _, r := range rules {
		ai, aok := pos[r.A]
		bi, bok := pos[r.B]
		if !aok || !bok {
			continue
		}
		masks = append(masks, 1<<uint(ai)|1<<uint(bi))
	}
	return masks
}

// EnumerateSelections visits every subset of the universe that violates no
// exclusion rule, including the empty subset. Each universe item is assigned
// the bit position equal to its index, and subsets are visited in increasing
// bit-pattern order, so enumeration is deterministic. Only one selection is
// materialized at a time; visit must not retain its argument's backing
// storage beyond the call unless it copies it (Selection.Items copies).
//
// The subset count is 2^len(universe). Alternate counts are small in this
// domain, so no pruning is attempted.
func EnumerateSelections(universe []AlternateRef, rules []ExclusionRule, visit func(Selection)) {
	m := uint(len(universe))
	masks := ruleMasks(universe, rules)

candidates:
	for mask := uint(0); mask < 1<<m; mask++ {
		for _, rm := range masks {
			if mask&rm == rm {
				continue candidates
			}
		}
		items := make([]AlternateRef, 0, m)
		for i := uint(0); i < m; i++ {
			if mask&(1<<i) != 0 {
				items = append(items, universe[i])
			}
		}
		visit(Selection{items: items})
	}
}

// ValidSelections collects every valid selection in enumeration order.
func ValidSelections(universe []AlternateRef, rules []ExclusionRule) []Selection {
	var out []Selection
	EnumerateSelections(universe, rules, func(sel Selection) {
		out = append(out, sel)
	})
	return out
}
