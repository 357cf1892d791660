package gennorm

import "sort"

// StarterPlan is spec.md §4.6 step 7's output: for every true starter S,
// the set of code points whose canonical decomposition begins with S, and
// the set of "unsafe starter" code points (anything that appears past the
// first position in some canonical decomposition, since composition
// starting at such a point could reach backward across it).
type StarterPlan struct {
	Starters map[rune][]rune
	Unsafe   map[rune]bool
}

// deriveStarters mirrors store.c's postParseFn: walk every closed
// canonical decomposition, add the code point to its leading starter's
// set (only when that leader is itself a true starter, cc==0), and flag
// every non-leading element unsafe.
func deriveStarters(closed map[rune]ClosedDecomposition, ccOf func(rune) uint8) *StarterPlan {
	starters := map[rune][]rune{}
	unsafe := map[rune]bool{}

	keys := make([]rune, 0, len(closed))
	for cp := range closed {
		keys = append(keys, cp)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, c := range keys {
		d := closed[c]
		if len(d.Canonical) == 0 {
			continue
		}
		if ccOf(d.Canonical[0]) == 0 {
			starters[d.Canonical[0]] = append(starters[d.Canonical[0]], c)
		}
		for _, m := range d.Canonical[1:] {
			unsafe[m] = true
		}
	}
	return &StarterPlan{Starters: starters, Unsafe: unsafe}
}
