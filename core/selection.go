package core

import "fmt"

// Selection is a set of alternates an owner is considering adding to base
// scope. It holds no duplicates, and Add refuses mutations that would place
// both members of an active exclusion rule in the set.
type Selection struct {
	items []AlternateRef
}

// NewSelection returns a selection over the given refs, dropping duplicates
// while keeping first-occurrence order. It does not check exclusion rules;
// use Add to build a rule-checked selection incrementally.
func NewSelection(refs ...AlternateRef) Selection {
	var sel Selection
	for _, ref := range refs {
		if !sel.Contains(ref) {
			sel.items = append(sel.items, ref)
		}
	}
	return sel
}

// Contains reports whether ref is in the selection.
func (s Selection) Contains(ref AlternateRef) bool {
	for _, it := range s.items {
		if it == ref {
			return true
		}
	}
	return false
}

// Len returns the number of selected alternates.
func (s Selection) Len() int {
	return len(s.items)
}

// Items returns a copy of the selected alternates in selection order.
func (s Selection) Items() []AlternateRef {
	out := make([]AlternateRef, len(s.items))
	copy(out, s.items)
	return out
}

// Equal reports whether two selections hold the same alternates in the
// same order.
func (s Selection) Equal(o Selection) bool {
	if len(s.items) != len(o.items) {
		return false
	}
	for i, it := range s.items {
		if it != o.items[i] {
			return false
		}
	}
	return true
}

// Add returns the selection extended with ref. Adding a ref already present
// returns the selection unchanged. Adding a ref whose exclusion partner is
// already selected returns an error and leaves the selection unchanged.
func (s Selection) Add(ref AlternateRef, rules []ExclusionRule) (Selection, error) {
	if s.Contains(ref) {
		return s, nil
	}
	for _, r := range rules {
		other, ok := excludedPartner(r, ref)
		if ok && s.Contains(other) {
			return s, fmt.Errorf("cannot select both %v and %v", r.A, r.B)
		}
	}
	items := make([]AlternateRef, len(s.items), len(s.items)+1)
	copy(items, s.items)
	return Selection{items: append(items, ref)}, nil
}

// excludedPartner returns the other member of rule r when ref is one of its
// members.
func excludedPartner(r ExclusionRule, ref AlternateRef) (AlternateRef, bool) {
	switch ref {
	case r.A:
		return r.B, true
	case r.B:
		return r.A, true
	}
	return AlternateRef{}, false
}
