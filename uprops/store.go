package uprops

import (
	"github.com/icu4g/ucore/trie"
	"github.com/icu4g/ucore/ustatus"
)

// Store is a loaded character-properties image: the main trie plus the
// exceptions table it indexes into. A nil *Store is valid and falls back
// to the static ASCII table (spec.md §4.5's degraded-mode contract),
// returning a Kind-UsingDefault *ustatus.Error alongside the fallback
// result so callers can tell the two paths apart.
//
// Like trie.Trie, a loaded Store never mutates and needs no
// synchronization for concurrent readers (spec.md §5).
type Store struct {
	trie       *trie.Trie
	exceptions *Exceptions
}

// New wraps an already-built trie and exceptions table. Used by Load and
// directly by tests that construct small synthetic stores.
func New(t *trie.Trie, exceptions *Exceptions) *Store {
	return &Store{trie: t, exceptions: exceptions}
}

func (s *Store) word(cp rune) (uint32, bool) {
	if s == nil || s.trie == nil {
		return 0, false
	}
	return s.trie.Get(cp), true
}

// Category returns cp's general category.
func (s *Store) Category(cp rune) (Category, error) {
	word, ok := s.word(cp)
	if !ok {
		return fallbackOrCn(cp).category, fallbackErr(cp)
	}
	return decodeCategory(word), nil
}

// BidiClass returns cp's bidirectional category.
func (s *Store) BidiClass(cp rune) (BidiClass, error) {
	word, ok := s.word(cp)
	if !ok {
		return fallbackOrCn(cp).bidi, fallbackErr(cp)
	}
	return decodeBidi(word), nil
}

// IsMirrored reports whether cp is a bidi-mirrored character.
func (s *Store) IsMirrored(cp rune) (bool, error) {
	word, ok := s.word(cp)
	if !ok {
		return fallbackOrCn(cp).mirrored, fallbackErr(cp)
	}
	return isMirrored(word), nil
}

// IsLower reports whether cp's general category is Ll.
func (s *Store) IsLower(cp rune) bool { return s.categoryIs(cp, Ll) }

// IsUpper reports whether cp's general category is Lu.
func (s *Store) IsUpper(cp rune) bool { return s.categoryIs(cp, Lu) }

// IsTitle reports whether cp's general category is Lt.
func (s *Store) IsTitle(cp rune) bool { return s.categoryIs(cp, Lt) }

// IsDigit reports whether cp's general category is Nd.
func (s *Store) IsDigit(cp rune) bool { return s.categoryIs(cp, Nd) }

// IsAlpha reports whether cp is one of the letter categories.
func (s *Store) IsAlpha(cp rune) bool {
	cat, _ := s.Category(cp)
	return cat.IsLetter()
}

// IsAlnum reports whether cp is a letter or a decimal digit.
func (s *Store) IsAlnum(cp rune) bool { return s.IsAlpha(cp) || s.IsDigit(cp) }

// IsCntrl reports whether cp's general category is Cc.
func (s *Store) IsCntrl(cp rune) bool { return s.categoryIs(cp, Cc) }

// IsSpace reports whether cp is a separator (Zs, Zl, Zp) or one of the
// ASCII whitespace control characters (tab, line feed, vertical tab, form
// feed, carriage return, next line).
func (s *Store) IsSpace(cp rune) bool {
	switch cp {
	case 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x85:
		return true
	}
	cat, _ := s.Category(cp)
	return cat.IsSeparator()
}

// IsPrintable reports whether cp is anything other than a control, format,
// surrogate, private-use, unassigned, or line/paragraph separator code
// point.
func (s *Store) IsPrintable(cp rune) bool {
	cat, _ := s.Category(cp)
	switch cat {
	case Cc, Cf, Cs, Co, Cn, Zl, Zp:
		return false
	default:
		return true
	}
}

func (s *Store) categoryIs(cp rune, want Category) bool {
	cat, _ := s.Category(cp)
	return cat == want
}

// Mirror returns cp's bidi-mirror glyph: cp itself when cp is not mirrored,
// else the exception's mirror slot if present, else cp plus the record's
// signed value field.
func (s *Store) Mirror(cp rune) (rune, error) {
	word, ok := s.word(cp)
	if !ok {
		fb := fallbackOrCn(cp)
		if !fb.mirrored {
			return cp, fallbackErr(cp)
		}
		return cp + rune(fb.value), fallbackErr(cp)
	}
	if !isMirrored(word) {
		return cp, nil
	}
	if hasException(word) {
		if v, ok := s.exceptions.Value(exceptionIndex(word), SlotMirror); ok {
			return rune(v), nil
		}
		return cp, nil
	}
	return cp + rune(decodeValue(word)), nil
}

// CombiningClass returns cp's canonical combining class: bits 20..27 of a
// plain Mn record, the exception's dedicated field when one is present,
// or zero.
func (s *Store) CombiningClass(cp rune) uint8 {
	word, ok := s.word(cp)
	if !ok {
		return 0
	}
	if hasException(word) {
		return s.exceptions.CombiningClass(exceptionIndex(word))
	}
	if decodeCategory(word) == Mn {
		return decodeCombiningClassField(word)
	}
	return 0
}

func fallbackOrCn(cp rune) fallbackEntry {
	if cp >= 0 && int(cp) < asciiFallbackSize {
		return asciiFallback[cp]
	}
	return fallbackEntry{category: Cn, bidi: BidiON}
}

func fallbackErr(cp rune) error {
	if cp >= 0 && int(cp) < asciiFallbackSize {
		return ustatus.New(ustatus.UsingDefault, "no properties data loaded; using ascii fallback table")
	}
	return ustatus.New(ustatus.UsingDefault, "no properties data loaded and code point is outside the ascii fallback range")
}
