package gennorm

import "testing"

func TestDeriveCombiningClassifiesForwardAndBackward(t *testing.T) {
	raw := map[rune]rawDecomp{
		0x00C0: {canonical: []rune{0x0041, 0x0300}},
	}
	plan := deriveCombining(raw, nil)

	if !plan.Forward[0x0041] {
		t.Error("0x0041 should combine forward")
	}
	if plan.Backward[0x0041] {
		t.Error("0x0041 should not combine backward")
	}
	if !plan.Backward[0x0300] {
		t.Error("0x0300 should combine backward")
	}
	if plan.Forward[0x0300] {
		t.Error("0x0300 should not combine forward")
	}
}

func TestDeriveCombiningAssignsLeadIndexAndPairs(t *testing.T) {
	raw := map[rune]rawDecomp{
		0x00C0: {canonical: []rune{0x0041, 0x0300}},
		0x00C1: {canonical: []rune{0x0041, 0x0301}},
	}
	plan := deriveCombining(raw, nil)

	if _, ok := plan.CombiningIndex[0x0041]; !ok {
		t.Fatal("lead 0x0041 has no combining index")
	}
	pairs := plan.LeadPairs[0x0041]
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs for lead 0x0041, want 2", len(pairs))
	}
	// Pairs are ordered by trail index, and trail indexes are assigned in
	// the order the trails were first seen: 0x0300 before 0x0301.
	if pairs[0].Result != 0x00C0 || pairs[1].Result != 0x00C1 {
		t.Fatalf("pairs = %+v, want 0x00C0 then 0x00C1", pairs)
	}
}

func TestDeriveCombiningExcludedPairNotInTriples(t *testing.T) {
	raw := map[rune]rawDecomp{
		0x00C0: {canonical: []rune{0x0041, 0x0300}},
	}
	plan := deriveCombining(raw, map[rune]bool{0x00C0: true})

	if plan.Forward[0x0041] {
		t.Error("excluded composition must not mark its lead as combining forward")
	}
	if len(plan.LeadPairs[0x0041]) != 0 {
		t.Errorf("excluded composition must not appear in lead pairs, got %+v", plan.LeadPairs[0x0041])
	}
}

func TestDeriveCombiningBothDirections(t *testing.T) {
	// A code point that is both a lead in one pair and a trail in another
	// must still get exactly one combining index and land in the "both"
	// group (after forward-only, before backward-only).
	raw := map[rune]rawDecomp{
		0x1100: {canonical: []rune{0x1000, 0x1001}},
		0x1101: {canonical: []rune{0x1001, 0x1002}},
	}
	plan := deriveCombining(raw, nil)

	if !plan.Forward[0x1001] || !plan.Backward[0x1001] {
		t.Fatalf("0x1001 should combine both ways, got forward=%v backward=%v", plan.Forward[0x1001], plan.Backward[0x1001])
	}
	if _, ok := plan.CombiningIndex[0x1001]; !ok {
		t.Fatal("0x1001 should have a combining index")
	}
}
