// Package gennorm is the offline builder described in spec.md §4.6: it
// ingests UnicodeData-style source records, computes transitive
// decomposition closure, derives composition triples and canonical-starter
// sets, validates the cross-component invariants of spec.md §3.4, and
// drives unorm.Builder and uprops.Builder to emit the serialized image.
package gennorm

import (
	"github.com/icu4g/ucore/unorm"
	"github.com/icu4g/ucore/uprops"
)

// DecompType distinguishes a canonical decomposition from a compatibility
// one (UnicodeData's bracketed tag on field 5).
type DecompType int

const (
	DecompNone DecompType = iota
	DecompCanonical
	DecompCompatibility
)

// SourceRecord is one incoming record (spec.md §4.6's ingest input): a code
// point plus every property needed to place it into both the properties
// store and the normalization store. NFCQuickCheck/NFKCQuickCheck carry the
// "derived quick-check flags" spec.md lists as supplied data — gennorm
// does not itself run the quickcheck derivation algorithm defined in
// UAX #15, it only packs the precomputed values.
type SourceRecord struct {
	CodePoint rune

	Category       uprops.Category
	CombiningClass uint8
	Bidi           uprops.BidiClass
	Mirrored       bool

	DecompType    DecompType
	Decomposition []rune

	HasDigit   bool
	DigitValue int32

	HasNumeric   bool
	NumeratorValue, DenominatorValue int32

	HasUppercase bool
	Uppercase    rune
	HasLowercase bool
	Lowercase    rune
	HasTitlecase bool
	Titlecase    rune

	CompositionExclusion bool

	NFCQuickCheck  unorm.QuickCheckResult
	NFKCQuickCheck unorm.QuickCheckResult

	FCNFKCClosure []uint16
}

// hasDecomposition reports whether this record carries any decomposition
// at all, canonical or compatibility — UnicodeData never gives the same
// code point both (spec.md's gennorm.store.c-derived comment: "UnicodeData
// itself never maps a code point to both NFD and NFKD").
func (r SourceRecord) hasDecomposition() bool {
	return r.DecompType != DecompNone && len(r.Decomposition) > 0
}
