package gennorm

import "sort"

type compositionTriple struct {
	lead, trail, composed rune
}

// CombiningPlan is the result of spec.md §4.6 steps 3-5: which code points
// combine forward/backward, the combining-index assigned to each, and each
// lead's span of (trail-index, result) pairs in trail-index order, ready
// to hand to unorm.Builder.AppendCompositionLead in LeadOrder.
type CombiningPlan struct {
	Forward        map[rune]bool
	Backward       map[rune]bool
	CombiningIndex map[rune]int
	LeadOrder      []rune
	LeadPairs      map[rune][]struct {
		TrailIndex int
		Result     rune
	}
}

// deriveCombining implements store.c's addCombiningTriple /
// processCombining two-pass scheme: first classify every combining code
// point as forward-only, both-directions, or backward-only and assign
// combining-indexes in that order (forward-only and both-directions
// indexes double as composition-table offsets; backward-only indexes are
// just unique small integers, since those code points never head a span),
// then lay out each lead's span using the now-known trail indexes.
func deriveCombining(raw map[rune]rawDecomp, exclusions map[rune]bool) *CombiningPlan {
	var triples []compositionTriple
	forward := map[rune]bool{}
	backward := map[rune]bool{}

	for cp, d := range raw {
		if len(d.canonical) != 2 || exclusions[cp] {
			continue
		}
		lead, trail := d.canonical[0], d.canonical[1]
		triples = append(triples, compositionTriple{lead: lead, trail: trail, composed: cp})
		forward[lead] = true
		backward[trail] = true
	}
	sort.Slice(triples, func(i, j int) bool {
		if triples[i].lead != triples[j].lead {
			return triples[i].lead < triples[j].lead
		}
		return triples[i].trail < triples[j].trail
	})

	byLead := map[rune][]compositionTriple{}
	for _, t := range triples {
		byLead[t.lead] = append(byLead[t.lead], t)
	}

	var fwdOnly, both, backOnly []rune
	seen := map[rune]bool{}
	classify := func(cp rune) {
		if seen[cp] {
			return
		}
		seen[cp] = true
		switch {
		case forward[cp] && backward[cp]:
			both = append(both, cp)
		case forward[cp]:
			fwdOnly = append(fwdOnly, cp)
		case backward[cp]:
			backOnly = append(backOnly, cp)
		}
	}
	for _, t := range triples {
		classify(t.lead)
		classify(t.trail)
	}

	leadOrder := append(append([]rune{}, fwdOnly...), both...)

	combiningIndex := map[rune]int{}
	tableTop := 1 // index 0 means "does not combine"
	for _, lead := range leadOrder {
		combiningIndex[lead] = tableTop
		for _, t := range byLead[lead] {
			if t.composed <= 0x1FFF {
				tableTop += 2
			} else {
				tableTop += 3
			}
		}
	}
	for _, cp := range backOnly {
		combiningIndex[cp] = tableTop
		tableTop++
	}

	leadPairs := map[rune][]struct {
		TrailIndex int
		Result     rune
	}{}
	for _, lead := range leadOrder {
		pairs := make([]struct {
			TrailIndex int
			Result     rune
		}, 0, len(byLead[lead]))
		for _, t := range byLead[lead] {
			pairs = append(pairs, struct {
				TrailIndex int
				Result     rune
			}{TrailIndex: combiningIndex[t.trail], Result: t.composed})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].TrailIndex < pairs[j].TrailIndex })
		leadPairs[lead] = pairs
	}

	return &CombiningPlan{
		Forward:        forward,
		Backward:       backward,
		CombiningIndex: combiningIndex,
		LeadOrder:      leadOrder,
		LeadPairs:      leadPairs,
	}
}
