package unorm

import "unicode/utf16"

// utf16Decode turns a stored UTF-16 code-unit decomposition back into
// scalar values, reassembling surrogate pairs where present.
func utf16Decode(units []uint16) []rune {
	return utf16.Decode(units)
}

// EncodeUTF16 is the inverse, used by the builder when packing a
// decomposition's UTF-32 code points into the extra array's UTF-16
// storage (spec.md §3.3).
func EncodeUTF16(runes []rune) []uint16 {
	return utf16.Encode(runes)
}
