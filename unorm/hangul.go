package unorm

// Hangul syllables are never expanded in the data (spec.md §3.4); they
// carry a special tag and are (de)composed algorithmically here.
const (
	hangulSBase = 0xAC00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7

	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount // 588
	hangulSCount = hangulLCount * hangulNCount // 11172

	HangulSFirst = hangulSBase
	HangulSLast  = hangulSBase + hangulSCount - 1

	HangulLFirst = hangulLBase
	HangulLLast  = hangulLBase + hangulLCount - 1
	HangulVFirst = hangulVBase
	HangulVLast  = hangulVBase + hangulVCount - 1
	// HangulTFirst is hangulTBase itself, which is not a valid Jamo T (it
	// marks "no trailing consonant"); valid trailing Jamo start one past it.
	HangulTFirst = hangulTBase + 1
	HangulTLast  = hangulTBase + hangulTCount - 1
)

// IsHangulSyllable reports whether cp is a precomposed Hangul syllable
// (U+AC00..U+D7A3).
func IsHangulSyllable(cp rune) bool { return cp >= HangulSFirst && cp <= HangulSLast }

// IsHangulJamoL/V/T report whether cp is a leading/vowel/trailing Jamo.
func IsHangulJamoL(cp rune) bool { return cp >= hangulLBase && cp < hangulLBase+hangulLCount }
func IsHangulJamoV(cp rune) bool {
	return cp >= hangulVBase && cp < hangulVBase+hangulVCount
}
func IsHangulJamoT(cp rune) bool {
	return cp > hangulTBase && cp < hangulTBase+hangulTCount
}

// DecomposeHangul expands a precomposed syllable into L, V, and
// (optionally) T, per spec.md §4.5.3 step 1.
func DecomposeHangul(s rune) []rune {
	sIndex := s - hangulSBase
	l := hangulLBase + sIndex/hangulNCount
	v := hangulVBase + (sIndex%hangulNCount)/hangulTCount
	tIndex := sIndex % hangulTCount
	if tIndex == 0 {
		return []rune{l, v}
	}
	return []rune{l, v, hangulTBase + tIndex}
}

// ComposeHangulLV composes a leading and vowel Jamo into an LV syllable
// (T = 0), or reports ok=false if l/v are not a valid Jamo L/V pair.
func ComposeHangulLV(l, v rune) (rune, bool) {
	if !IsHangulJamoL(l) || !IsHangulJamoV(v) {
		return 0, false
	}
	lIndex := l - hangulLBase
	vIndex := v - hangulVBase
	return hangulSBase + (lIndex*hangulVCount+vIndex)*hangulTCount, true
}

// ComposeHangulLVT composes an LV syllable with a trailing Jamo.
func ComposeHangulLVT(lv, t rune) (rune, bool) {
	if !IsHangulSyllable(lv) || (lv-hangulSBase)%hangulTCount != 0 {
		return 0, false
	}
	if !IsHangulJamoT(t) {
		return 0, false
	}
	tIndex := t - hangulTBase
	return lv + tIndex, true
}
