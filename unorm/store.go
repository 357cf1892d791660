package unorm

import (
	"github.com/icu4g/ucore/trie"
	"github.com/icu4g/ucore/ustatus"
)

// Store is a loaded normalization image: the normalization trie plus its
// extra array and composition table, and the FCD/auxiliary side tables.
// Like uprops.Store, a nil *Store is valid: Normalize falls back to
// "return input unchanged, signal UsingDefault" per spec.md §4.5.7, while
// QuickCheck reports QCYes and CombiningClass reports 0 with no error.
//
// Once loaded a Store never mutates and needs no synchronization for
// concurrent readers (spec.md §5).
type Store struct {
	trie        *trie.Trie
	extra       []uint16
	composition *CompositionTable
	fcd         *FCDTable
	aux         *AuxTable
	starters    *StarterSets
}

func New(t *trie.Trie, extra []uint16, comp *CompositionTable, fcd *FCDTable, aux *AuxTable, starters *StarterSets) *Store {
	return &Store{trie: t, extra: extra, composition: comp, fcd: fcd, aux: aux, starters: starters}
}

func (s *Store) Loaded() bool { return s != nil && s.trie != nil }

func (s *Store) word(cp rune) uint32 {
	if !s.Loaded() {
		return 0
	}
	return s.trie.Get(cp)
}

func (s *Store) decomposition(cp rune) (Decomposition, bool) {
	if !s.Loaded() {
		return Decomposition{}, false
	}
	offset, ok := extraOffset(s.word(cp))
	if !ok {
		return Decomposition{}, false
	}
	return decodeExtra(s.extra, offset)
}

func (s *Store) combiningClassOf(cp rune) uint8 {
	if IsHangulSyllable(cp) || IsHangulJamoL(cp) || IsHangulJamoV(cp) || IsHangulJamoT(cp) {
		return 0
	}
	return combiningClass(s.word(cp))
}

// CombiningClass is the public accessor unorm callers (and uprops, which
// grounds its own Mn-record combining class independently) use.
func (s *Store) CombiningClass(cp rune) uint8 { return s.combiningClassOf(cp) }

func errMissingData() error {
	return ustatus.New(ustatus.UsingDefault, "no normalization data loaded; returning input unchanged")
}
