package gennorm

import "testing"

func TestDeriveStartersAddsMemberToLeaderSet(t *testing.T) {
	closed := map[rune]ClosedDecomposition{
		0x00C0: {Canonical: []rune{0x0041, 0x0300}},
	}
	ccOf := func(cp rune) uint8 {
		if cp == 0x0300 {
			return 230
		}
		return 0
	}
	plan := deriveStarters(closed, ccOf)

	members := plan.Starters[0x0041]
	if len(members) != 1 || members[0] != 0x00C0 {
		t.Fatalf("starters[0x0041] = %v, want [0x00C0]", members)
	}
	if !plan.Unsafe[0x0300] {
		t.Error("0x0300 should be flagged unsafe (non-leading decomposition element)")
	}
	if plan.Unsafe[0x0041] {
		t.Error("0x0041 is the leading element and must not be flagged unsafe")
	}
}

func TestDeriveStartersSkipsNonStarterLeader(t *testing.T) {
	// If the leading element of a decomposition is itself a non-starter
	// (cc != 0), the decomposed code point must not be added to any
	// leader's starter set.
	closed := map[rune]ClosedDecomposition{
		0x2000: {Canonical: []rune{0x0300, 0x0301}},
	}
	ccOf := func(rune) uint8 { return 230 }
	plan := deriveStarters(closed, ccOf)

	if len(plan.Starters) != 0 {
		t.Fatalf("starters = %v, want empty", plan.Starters)
	}
	if !plan.Unsafe[0x0301] {
		t.Error("0x0301 should still be flagged unsafe")
	}
}
