package gennorm

import (
	"testing"

	"github.com/icu4g/ucore/unorm"
)

func TestValidateDecompositionImpliesNonYesQuickCheck(t *testing.T) {
	records := map[rune]SourceRecord{
		0x00C0: {CodePoint: 0x00C0, NFCQuickCheck: unorm.QCYes},
	}
	closed := map[rune]ClosedDecomposition{
		0x00C0: {Canonical: []rune{0x0041, 0x0300}},
	}
	errs := validate(records, closed)
	if len(errs) == 0 {
		t.Fatal("expected a violation: decomposition present but NFC quick-check is YES")
	}
}

func TestValidateAcceptsConsistentNonStarter(t *testing.T) {
	records := map[rune]SourceRecord{
		0x00C0: {CodePoint: 0x00C0, NFCQuickCheck: unorm.QCNo},
	}
	closed := map[rune]ClosedDecomposition{
		0x00C0: {Canonical: []rune{0x0041, 0x0300}},
	}
	errs := validate(records, closed)
	if len(errs) != 0 {
		t.Fatalf("unexpected violations: %v", errs)
	}
}

func TestValidateTrueStarterDecompositionMustBeginWithStarter(t *testing.T) {
	records := map[rune]SourceRecord{
		0x1000: {CodePoint: 0x1000, CombiningClass: 0, NFCQuickCheck: unorm.QCYes},
		0x0300: {CodePoint: 0x0300, CombiningClass: 230, NFCQuickCheck: unorm.QCNo},
	}
	closed := map[rune]ClosedDecomposition{
		0x1000: {Canonical: []rune{0x0300, 0x0041}},
	}
	errs := validate(records, closed)
	if len(errs) == 0 {
		t.Fatal("expected a violation: true starter decomposes starting with a non-starter")
	}
}

func TestValidateHangulSyllableMustNotHaveExplicitDecomposition(t *testing.T) {
	records := map[rune]SourceRecord{
		unorm.HangulSFirst: {
			CodePoint:     unorm.HangulSFirst,
			DecompType:    DecompCanonical,
			Decomposition: []rune{0x1100, 0x1161},
		},
	}
	errs := validate(records, map[rune]ClosedDecomposition{})
	if len(errs) == 0 {
		t.Fatal("expected a violation: Hangul syllable must be algorithmic-only")
	}
}
