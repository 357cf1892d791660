package uprops

import "strings"

// Case mapping (spec.md §4.4). Simple mappings come straight off the 12-bit
// signed value field shared with the general-purpose value slot: for an Lu
// or Lt record, value is (codepoint - lowercase); for an Ll record, value is
// (codepoint - uppercase). Exceptional code points carry explicit mapped
// code points in the exceptions table instead.

// ToLowerSimple returns cp's simple (one-code-point) lowercase mapping.
func (s *Store) ToLowerSimple(cp rune) rune {
	word, ok := s.word(cp)
	if !ok {
		return cp
	}
	if hasException(word) {
		if v, ok := s.exceptions.Value(exceptionIndex(word), SlotLowercase); ok {
			return rune(v)
		}
		return cp
	}
	if cat := decodeCategory(word); cat == Lu || cat == Lt {
		return cp - rune(decodeValue(word))
	}
	return cp
}

// ToUpperSimple returns cp's simple uppercase mapping.
func (s *Store) ToUpperSimple(cp rune) rune {
	word, ok := s.word(cp)
	if !ok {
		return cp
	}
	if hasException(word) {
		if v, ok := s.exceptions.Value(exceptionIndex(word), SlotUppercase); ok {
			return rune(v)
		}
		return cp
	}
	if decodeCategory(word) == Ll {
		return cp - rune(decodeValue(word))
	}
	return cp
}

// ToTitleSimple returns cp's simple titlecase mapping, which is distinct
// from ToUpperSimple only for a small number of exceptional digraphs.
func (s *Store) ToTitleSimple(cp rune) rune {
	word, ok := s.word(cp)
	if !ok {
		return cp
	}
	if hasException(word) {
		idx := exceptionIndex(word)
		if v, ok := s.exceptions.Value(idx, SlotTitlecase); ok {
			return rune(v)
		}
		if v, ok := s.exceptions.Value(idx, SlotUppercase); ok {
			return rune(v)
		}
		return cp
	}
	if decodeCategory(word) == Ll {
		return cp - rune(decodeValue(word))
	}
	return cp
}

// ToFullLower applies ToLowerSimple rune-by-rune. Unlike the simple
// mapping, special-casing rules (e.g. Turkish dotted/dotless I) can expand
// to more than one result rune per input; those go through the
// SpecialCasing exception slot, encoded as an index into extraStrings.
func (s *Store) ToFullLower(str string, extraStrings []string, turkic bool) string {
	var b strings.Builder
	runes := []rune(str)
	for i, cp := range runes {
		if turkic && cp == 'I' {
			if i+1 < len(runes) && isCombiningDotAbove(runes[i+1]) {
				b.WriteRune('i')
				continue
			}
			b.WriteRune(0x0131) // dotless i
			continue
		}
		if turkic && cp == 0x0130 { // LATIN CAPITAL LETTER I WITH DOT ABOVE
			b.WriteRune('i')
			continue
		}
		if special, ok := s.specialCasing(cp, extraStrings); ok {
			b.WriteString(special)
			continue
		}
		b.WriteRune(s.ToLowerSimple(cp))
	}
	return b.String()
}

// ToFullUpper mirrors ToFullLower for uppercasing.
func (s *Store) ToFullUpper(str string, extraStrings []string, turkic bool) string {
	var b strings.Builder
	for _, cp := range str {
		if turkic && cp == 0x0131 { // dotless i
			b.WriteRune('I')
			continue
		}
		if turkic && cp == 'i' {
			b.WriteRune(0x0130)
			continue
		}
		if special, ok := s.specialCasing(cp, extraStrings); ok {
			b.WriteString(strings.ToUpper(special))
			continue
		}
		b.WriteRune(s.ToUpperSimple(cp))
	}
	return b.String()
}

func isCombiningDotAbove(cp rune) bool { return cp == 0x0307 }

// specialCasing reads a SpecialCasing exception slot as an index into a
// caller-supplied table of pre-decomposed replacement strings (e.g. German
// sharp S -> "ss", Greek final sigma context). extraStrings is owned by
// whatever loaded the Store; it is not part of the trie/exceptions image.
func (s *Store) specialCasing(cp rune, extraStrings []string) (string, bool) {
	word, ok := s.word(cp)
	if !ok || !hasException(word) {
		return "", false
	}
	idx, ok := s.exceptions.Value(exceptionIndex(word), SlotSpecialCasing)
	if !ok || int(idx) >= len(extraStrings) {
		return "", false
	}
	return extraStrings[idx], true
}

// FoldCase applies default case folding rune-by-rune (spec.md §4.4),
// producing a form suitable for caseless matching: foldCase(foldCase(x))
// == foldCase(x) for any x. Multi-rune expansions (e.g. "ß" -> "ss") come
// from the CaseFolding exception slot, indexed into extraStrings the same
// way ToFullLower/ToFullUpper read SpecialCasing. excludeTurkic selects
// the dotted-I/dotless-i exclusion used by Turkish/Azeri-aware callers.
func (s *Store) FoldCase(str string, extraStrings []string, excludeTurkic bool) string {
	var b strings.Builder
	for _, cp := range str {
		switch cp {
		case 0x0130: // LATIN CAPITAL LETTER I WITH DOT ABOVE
			if excludeTurkic {
				b.WriteRune(cp)
			} else {
				b.WriteRune('i')
				b.WriteRune(0x0307)
			}
			continue
		case 0x0131: // LATIN SMALL LETTER DOTLESS I
			if excludeTurkic {
				b.WriteRune(cp)
			} else {
				b.WriteRune('i')
			}
			continue
		}
		if folded, ok := s.caseFolding(cp, extraStrings); ok {
			b.WriteString(folded)
			continue
		}
		b.WriteRune(s.ToLowerSimple(cp))
	}
	return b.String()
}

// caseFolding reads a CaseFolding exception slot as an index into a
// caller-supplied table of pre-decomposed fold strings, mirroring
// specialCasing.
func (s *Store) caseFolding(cp rune, extraStrings []string) (string, bool) {
	word, ok := s.word(cp)
	if !ok || !hasException(word) {
		return "", false
	}
	idx, ok := s.exceptions.Value(exceptionIndex(word), SlotCaseFolding)
	if !ok || int(idx) >= len(extraStrings) {
		return "", false
	}
	return extraStrings[idx], true
}

// IsCaseIgnorable reports whether cp is a non-spacing mark, the soft
// hyphen (U+00AD), or the hyphen (U+2010) — the literal three-clause
// definition spec.md §4.4 gives, kept in one place per its own
// instruction. FinalSigma is its only caller: the Turkish dotted-I
// handling in ToFullLower checks for U+0307 directly, and no Lithuanian
// casing rule is implemented.
func (s *Store) IsCaseIgnorable(cp rune) bool {
	if cp == 0x00AD || cp == 0x2010 {
		return true
	}
	word, ok := s.word(cp)
	if !ok {
		return false
	}
	return decodeCategory(word) == Mn
}

// FinalSigma applies the Greek lowercase-sigma context rule: U+03A3 maps
// to U+03C2 (final form) when preceded by a cased letter (skipping
// case-ignorables) and not followed by one; otherwise U+03C3.
func (s *Store) FinalSigma(runes []rune, i int) rune {
	precededByCased := false
	for j := i - 1; j >= 0; j-- {
		if s.IsCaseIgnorable(runes[j]) {
			continue
		}
		precededByCased = s.isCased(runes[j])
		break
	}
	if !precededByCased {
		return 0x3C3
	}
	for j := i + 1; j < len(runes); j++ {
		if s.IsCaseIgnorable(runes[j]) {
			continue
		}
		if s.isCased(runes[j]) {
			return 0x3C3
		}
		break
	}
	return 0x3C2
}

func (s *Store) isCased(cp rune) bool {
	word, ok := s.word(cp)
	if !ok {
		return false
	}
	switch decodeCategory(word) {
	case Lu, Ll, Lt:
		return true
	default:
		return false
	}
}
