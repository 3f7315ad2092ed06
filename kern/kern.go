// Package kern implements the UFO kerning lookup precedence:
//
//  1. Glyph + glyph (highest priority)
//  2. Glyph + group
//  3. Group + glyph
//  4. Group + group (lowest priority)
//  5. No match: 0
//
// The resolver is a pure function over read-only tables; it never fails,
// and 0 is a valid "no kerning" result rather than an error sentinel.
package kern

import "sort"

// Pairs maps a left member name (glyph or group) to a map of right member
// names and their kerning adjustments, in design units.
type Pairs map[string]map[string]float64

// Groups maps a kerning group name (e.g. "public.kern1.round") to its
// ordered member glyph names.
type Groups map[string][]string

// Lookup returns the kerning adjustment between two glyphs.
//
// leftGroup and rightGroup are optional hints naming the glyphs' primary
// kerning groups; pass "" when unknown. A hint is validated against actual
// group membership before use, so a stale hint is ignored rather than
// trusted.
//
// When a glyph belongs to several groups, fallback scans visit groups in
// lexicographic name order. UFO does not specify an order here; the sorted
// scan is this resolver's documented contract, chosen so results are stable
// across runs (Go map iteration order is randomized).
func Lookup(pairs Pairs, groups Groups, leftGlyph, leftGroup, rightGlyph, rightGroup string) float64 {
	// Priority 1: glyph + glyph.
	if v, ok := pair(pairs, leftGlyph, rightGlyph); ok {
		return v
	}

	// Priority 2: glyph + group containing the right glyph.
	if v, ok := glyphToGroup(pairs, groups, leftGlyph, rightGlyph, rightGroup, false); ok {
		return v
	}

	// Priority 3: group containing the left glyph + glyph.
	if v, ok := glyphToGroup(pairs, groups, rightGlyph, leftGlyph, leftGroup, true); ok {
		return v
	}

	// Priority 4: group + group.
	if v, ok := groupToGroup(pairs, groups, leftGlyph, leftGroup, rightGlyph, rightGroup); ok {
		return v
	}

	// Priority 5: no kerning.
	return 0
}

// pair looks up a direct entry in the pairs table.
func pair(pairs Pairs, first, second string) (float64, bool) {
	inner, ok := pairs[first]
	if !ok {
		return 0, false
	}
	v, ok := inner[second]
	return v, ok
}

// glyphToGroup looks up glyph-to-group or group-to-glyph kerning.
//
// With reverse false it tries firstGlyph + (group containing secondGlyph);
// with reverse true it tries (group containing secondGlyph) + firstGlyph,
// which callers use for the group-on-the-left tier by swapping arguments.
func glyphToGroup(pairs Pairs, groups Groups, firstGlyph, secondGlyph, secondGroupHint string, reverse bool) (float64, bool) {
	try := func(group string) (float64, bool) {
		if reverse {
			return pair(pairs, group, firstGlyph)
		}
		return pair(pairs, firstGlyph, group)
	}

	// A valid hint short-circuits the scan.
	if secondGroupHint != "" && groupContains(groups, secondGroupHint, secondGlyph) {
		if v, ok := try(secondGroupHint); ok {
			return v, true
		}
	}

	for _, group := range groupsContaining(groups, secondGlyph) {
		if v, ok := try(group); ok {
			return v, true
		}
	}
	return 0, false
}

// groupToGroup tries every (left group, right group) combination with a
// defined pairs entry, hints first.
func groupToGroup(pairs Pairs, groups Groups, leftGlyph, leftGroupHint, rightGlyph, rightGroupHint string) (float64, bool) {
	left := candidateGroups(groups, leftGlyph, leftGroupHint)
	right := candidateGroups(groups, rightGlyph, rightGroupHint)

	for _, lg := range left {
		for _, rg := range right {
			if v, ok := pair(pairs, lg, rg); ok {
				return v, true
			}
		}
	}
	return 0, false
}

// candidateGroups returns every group containing glyph, with a validated
// hint placed first and the rest in sorted name order.
func candidateGroups(groups Groups, glyph, hint string) []string {
	var result []string
	if hint != "" && groupContains(groups, hint, glyph) {
		result = append(result, hint)
	}
	for _, group := range groupsContaining(groups, glyph) {
		if group != hint {
			result = append(result, group)
		}
	}
	return result
}

// groupsContaining returns the names of all groups whose membership includes
// glyph, sorted lexicographically.
func groupsContaining(groups Groups, glyph string) []string {
	var result []string
	for name, members := range groups {
		for _, m := range members {
			if m == glyph {
				result = append(result, name)
				break
			}
		}
	}
	sort.Strings(result)
	return result
}

// groupContains reports whether the named group exists and includes glyph.
func groupContains(groups Groups, name, glyph string) bool {
	for _, m := range groups[name] {
		if m == glyph {
			return true
		}
	}
	return false
}
