package gennorm

import (
	"testing"

	"github.com/icu4g/ucore/trie"
	"github.com/icu4g/ucore/unorm"
	"github.com/icu4g/ucore/uprops"
)

// testRecords builds a tiny self-consistent source set: A (U+0041, a true
// starter), COMBINING GRAVE ACCENT (U+0300, cc=230), and A WITH GRAVE
// (U+00C0), whose canonical decomposition is A U+0300 — enough to exercise
// closure, combining-index assignment, validation, and composition.
func testRecords() []SourceRecord {
	return []SourceRecord{
		{
			CodePoint: 0x0041, Category: uprops.Lu, Bidi: uprops.BidiL,
			NFCQuickCheck: unorm.QCYes, NFKCQuickCheck: unorm.QCYes,
		},
		{
			CodePoint: 0x0300, Category: uprops.Mn, Bidi: uprops.BidiNSM,
			CombiningClass: 230,
			NFCQuickCheck:  unorm.QCYes, NFKCQuickCheck: unorm.QCYes,
		},
		{
			CodePoint: 0x00C0, Category: uprops.Lu, Bidi: uprops.BidiL,
			DecompType: DecompCanonical, Decomposition: []rune{0x0041, 0x0300},
			NFCQuickCheck: unorm.QCNo, NFKCQuickCheck: unorm.QCNo,
		},
	}
}

func TestBuildProducesWorkingStore(t *testing.T) {
	result, err := Build(testRecords(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	store, err := result.Normalization.BuiltStore()
	if err != nil {
		t.Fatalf("BuiltStore failed: %v", err)
	}

	// NFD of U+00C0 must decompose to A + combining grave.
	nfd, err := store.Normalize(unorm.NFD, []rune{0x00C0})
	if err != nil {
		t.Fatalf("Normalize NFD: %v", err)
	}
	want := []rune{0x0041, 0x0300}
	if len(nfd) != len(want) || nfd[0] != want[0] || nfd[1] != want[1] {
		t.Fatalf("NFD(U+00C0) = %v, want %v", nfd, want)
	}

	// NFC of A + combining grave must recompose to U+00C0.
	nfc, err := store.Normalize(unorm.NFC, []rune{0x0041, 0x0300})
	if err != nil {
		t.Fatalf("Normalize NFC: %v", err)
	}
	if len(nfc) != 1 || nfc[0] != 0x00C0 {
		t.Fatalf("NFC(A, grave) = %v, want [0x00C0]", nfc)
	}
}

func TestBuildRejectsInconsistentQuickCheck(t *testing.T) {
	records := testRecords()
	for i := range records {
		if records[i].CodePoint == 0x00C0 {
			records[i].NFCQuickCheck = unorm.QCYes // inconsistent: has a decomposition
		}
	}
	if _, err := Build(records, nil); err == nil {
		t.Fatal("expected Build to reject a decomposed code point claiming NFC quick-check YES")
	}
}

func TestBuildPropertiesCarriesCategoryAndCombiningClass(t *testing.T) {
	result, err := Build(testRecords(), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	propsStore, err := result.Properties.Serialize(trie.Width32)
	if err != nil {
		t.Fatalf("properties Serialize: %v", err)
	}
	if len(propsStore) == 0 {
		t.Fatal("expected a non-empty serialized properties image")
	}
	store, err := uprops.Load(propsStore)
	if err != nil {
		t.Fatalf("properties Load: %v", err)
	}
	if cat, err := store.Category(0x0041); err != nil || cat != uprops.Lu {
		t.Fatalf("Category(U+0041) = %v, %v; want Lu", cat, err)
	}
	if cc := store.CombiningClass(0x0300); cc != 230 {
		t.Fatalf("CombiningClass(U+0300) = %d, want 230", cc)
	}
}
