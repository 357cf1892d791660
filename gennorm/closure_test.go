package gennorm

import "testing"

func canon(cp rune, decomp ...rune) SourceRecord {
	return SourceRecord{CodePoint: cp, DecompType: DecompCanonical, Decomposition: decomp}
}

func TestComputeClosureSingleLevel(t *testing.T) {
	records := []SourceRecord{canon(0x00C0, 0x0041, 0x0300)}
	closed, err := computeClosure(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := closed[0x00C0].Canonical
	want := []rune{0x0041, 0x0300}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("canonical closure = %v, want %v", got, want)
	}
}

func TestComputeClosureTransitive(t *testing.T) {
	// U+1EA6 (A WITH CIRCUMFLEX AND GRAVE) -> U+00C2 (A WITH CIRCUMFLEX) U+0300
	// -> U+0041 U+0302, U+0300 — a two-level chain that must fully expand.
	records := []SourceRecord{
		canon(0x1EA6, 0x00C2, 0x0300),
		canon(0x00C2, 0x0041, 0x0302),
	}
	closed, err := computeClosure(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := closed[0x1EA6].Canonical
	want := []rune{0x0041, 0x0302, 0x0300}
	if len(got) != len(want) {
		t.Fatalf("canonical closure = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("canonical closure = %v, want %v", got, want)
		}
	}
}

func TestComputeClosureDetectsCycle(t *testing.T) {
	records := []SourceRecord{
		canon(0x1000, 0x1001),
		canon(0x1001, 0x1000),
	}
	_, err := computeClosure(records)
	if err == nil {
		t.Fatal("expected a cycle detection error")
	}
}

func TestComputeClosureCompatibilityFallsBackToCanonical(t *testing.T) {
	// An element with only a canonical decomposition still expands when
	// resolving a compatibility chain through it.
	records := []SourceRecord{
		{CodePoint: 0x2000, DecompType: DecompCompatibility, Decomposition: []rune{0x00C0, 0x0020}},
		canon(0x00C0, 0x0041, 0x0300),
	}
	closed, err := computeClosure(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := closed[0x2000].Compatibility
	want := []rune{0x0041, 0x0300, 0x0020}
	if len(got) != len(want) {
		t.Fatalf("compatibility closure = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("compatibility closure = %v, want %v", got, want)
		}
	}
}
