package uprops

// hanNumerals supplements the trie-derived digit value with the small,
// fixed CJK ideographic digit set original_source's numeric-value table
// carries but spec.md's distilled record layout has no room for (an Lo
// character has no numeric value field). This mirrors how the teacher's
// vm/psr.go keeps small fixed lookup tables alongside the bit-packed
// fields for cases the packed word can't hold directly.
var hanNumerals = map[rune]int32{
	0x3007: 0, 0x4E00: 1, 0x4E8C: 2, 0x4E09: 3, 0x56DB: 4,
	0x4E94: 5, 0x516D: 6, 0x4E03: 7, 0x516B: 8, 0x4E5D: 9,
	0x5341: 10, 0x767E: 100, 0x5343: 1000, 0x842C: 10000,
}

// DigitValue returns cp's digit value (0..radix-1) in the given radix, or
// -1 if cp has no digit value in that radix. It checks, in order: the
// trie's Nd/exception digit-value field, the Han numeral fallback table,
// then ASCII letters 'a'-'z'/'A'-'Z' extending the digit alphabet past 9.
func (s *Store) DigitValue(cp rune, radix int) int32 {
	if radix < 2 || radix > 36 {
		return -1
	}

	if v, ok := s.trieDigitValue(cp); ok && v >= 0 && v < int32(radix) {
		return v
	}
	if v, ok := hanNumerals[cp]; ok && v < int32(radix) {
		return v
	}

	var v int32 = -1
	switch {
	case cp >= '0' && cp <= '9':
		v = cp - '0'
	case cp >= 'a' && cp <= 'z':
		v = cp - 'a' + 10
	case cp >= 'A' && cp <= 'Z':
		v = cp - 'A' + 10
	default:
		return -1
	}
	if v >= int32(radix) {
		return -1
	}
	return v
}

func (s *Store) trieDigitValue(cp rune) (int32, bool) {
	word, ok := s.word(cp)
	if !ok {
		return 0, false
	}
	if hasException(word) {
		if v, ok := s.exceptions.Value(exceptionIndex(word), SlotDigitValue); ok {
			return int32(v), true
		}
		return 0, false
	}
	if decodeCategory(word) == Nd {
		return decodeValue(word), true
	}
	return 0, false
}

// ForDigit returns the code point representing value in radix, or 0 if
// value is out of range for that radix. It is the inverse of DigitValue
// restricted to the ASCII digit alphabet, the common case callers need
// when formatting rather than parsing.
func ForDigit(value int32, radix int) rune {
	if radix < 2 || radix > 36 || value < 0 || value >= int32(radix) {
		return 0
	}
	if value < 10 {
		return '0' + value
	}
	return 'a' + (value - 10)
}
