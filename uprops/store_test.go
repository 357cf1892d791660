package uprops

import (
	"testing"

	"github.com/icu4g/ucore/trie"
	"github.com/icu4g/ucore/ustatus"
)

func TestStoreCategoryRoundTrip(t *testing.T) {
	b := NewBuilder(1 << 20)
	if err := b.SetSimple('A', Lu, BidiL, false, 32); err != nil {
		t.Fatal(err)
	}
	img, err := b.Serialize(trie.Width32)
	if err != nil {
		t.Fatal(err)
	}
	store, err := Load(img)
	if err != nil {
		t.Fatal(err)
	}

	cat, err := store.Category('A')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat != Lu {
		t.Fatalf("Category('A') = %v, want Lu", cat)
	}

	cat, err = store.Category('z')
	if err != nil {
		t.Fatalf("unexpected error for unset code point: %v", err)
	}
	if cat != Cn {
		t.Fatalf("Category('z') = %v, want Cn (builder default)", cat)
	}
}

func TestNilStoreFallsBackToASCII(t *testing.T) {
	var s *Store
	cat, err := s.Category('9')
	if cat != Nd {
		t.Fatalf("Category('9') = %v, want Nd", cat)
	}
	if !ustatus.Is(err, ustatus.UsingDefault) {
		t.Fatalf("err = %v, want UsingDefault", err)
	}
}

func TestNilStoreOutsideFallbackRange(t *testing.T) {
	var s *Store
	cat, err := s.Category(0x4E2D) // outside 0x00..0x9F
	if cat != Cn {
		t.Fatalf("Category = %v, want Cn", cat)
	}
	if !ustatus.Is(err, ustatus.UsingDefault) {
		t.Fatalf("err = %v, want UsingDefault", err)
	}
}

func TestMirrorDelta(t *testing.T) {
	b := NewBuilder(1 << 20)
	// '(' U+0028 mirrors to ')' U+0029: delta +1.
	if err := b.SetSimple('(', Ps, BidiON, true, 1); err != nil {
		t.Fatal(err)
	}
	img, err := b.Serialize(trie.Width32)
	if err != nil {
		t.Fatal(err)
	}
	store, err := Load(img)
	if err != nil {
		t.Fatal(err)
	}
	got, err := store.Mirror('(')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ')' {
		t.Fatalf("Mirror('(') = %q, want ')'", got)
	}
}

func TestMirrorException(t *testing.T) {
	b := NewBuilder(1 << 20)
	target := uint32(0x232A) // RIGHT-POINTING ANGLE BRACKET
	if err := b.SetException(0x2329, Ps, BidiON, true, ExceptionRecord{Mirror: &target}); err != nil {
		t.Fatal(err)
	}
	img, err := b.Serialize(trie.Width32)
	if err != nil {
		t.Fatal(err)
	}
	store, err := Load(img)
	if err != nil {
		t.Fatal(err)
	}
	got, err := store.Mirror(0x2329)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x232A {
		t.Fatalf("Mirror(U+2329) = U+%04X, want U+232A", got)
	}
}

func TestMirrorUnmirroredReturnsSelf(t *testing.T) {
	b := NewBuilder(1 << 20)
	if err := b.SetSimple('A', Lu, BidiL, false, 32); err != nil {
		t.Fatal(err)
	}
	img, err := b.Serialize(trie.Width32)
	if err != nil {
		t.Fatal(err)
	}
	store, err := Load(img)
	if err != nil {
		t.Fatal(err)
	}
	got, err := store.Mirror('A')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 'A' {
		t.Fatalf("Mirror('A') = %q, want unchanged 'A'", got)
	}
}

func TestNamedPredicates(t *testing.T) {
	b := NewBuilder(1 << 20)
	if err := b.SetSimple('A', Lu, BidiL, false, 32); err != nil {
		t.Fatal(err)
	}
	if err := b.SetSimple('9', Nd, BidiEN, false, 0); err != nil {
		t.Fatal(err)
	}
	if err := b.SetSimple(0x09, Cc, BidiS, false, 0); err != nil {
		t.Fatal(err)
	}
	if err := b.SetSimple(0x01, Cc, BidiBN, false, 0); err != nil {
		t.Fatal(err)
	}
	img, err := b.Serialize(trie.Width32)
	if err != nil {
		t.Fatal(err)
	}
	store, err := Load(img)
	if err != nil {
		t.Fatal(err)
	}

	if !store.IsUpper('A') {
		t.Error("IsUpper('A') = false, want true")
	}
	if store.IsLower('A') {
		t.Error("IsLower('A') = true, want false")
	}
	if !store.IsAlpha('A') {
		t.Error("IsAlpha('A') = false, want true")
	}
	if !store.IsDigit('9') {
		t.Error("IsDigit('9') = false, want true")
	}
	if !store.IsAlnum('9') {
		t.Error("IsAlnum('9') = false, want true")
	}
	if !store.IsSpace(0x09) {
		t.Error("IsSpace(tab) = false, want true")
	}
	if !store.IsCntrl(0x01) {
		t.Error("IsCntrl(U+0001) = false, want true")
	}
	if store.IsPrintable(0x01) {
		t.Error("IsPrintable(U+0001) = true, want false")
	}
	if !store.IsPrintable('A') {
		t.Error("IsPrintable('A') = false, want true")
	}
}

func TestCombiningClassFromException(t *testing.T) {
	b := NewBuilder(1 << 20)
	if err := b.SetException(0x0301, Mn, BidiNSM, false, ExceptionRecord{CombiningClass: 230}); err != nil {
		t.Fatal(err)
	}
	img, err := b.Serialize(trie.Width32)
	if err != nil {
		t.Fatal(err)
	}
	store, err := Load(img)
	if err != nil {
		t.Fatal(err)
	}
	if got := store.CombiningClass(0x0301); got != 230 {
		t.Fatalf("CombiningClass = %d, want 230", got)
	}
}
