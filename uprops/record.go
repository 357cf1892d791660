// Package uprops implements the character-properties store: decoding a
// trie value word into general category, bidi class, mirror flag, and a
// per-category signed value (spec.md §3.2), plus the case-mapping and
// combining-class accessors built on top of it (spec.md §4.3-4.4).
//
// The bit-field layout here mirrors the teacher's vm/psr.go: a packed
// 32-bit word decoded by a handful of shift-and-mask accessor functions
// rather than a struct of individually-addressable bitfields.
package uprops

// Category is one of the 30 general-category enumerators spec.md §3.2
// lists.
type Category uint8

const (
	Lu Category = iota
	Ll
	Lt
	Lm
	Lo
	Mn
	Me
	Mc
	Nd
	Nl
	No
	Zs
	Zl
	Zp
	Cc
	Cf
	Co
	Cs
	Pd
	Ps
	Pe
	Pc
	Po
	Sm
	Sc
	Sk
	So
	Pi
	Pf
	Cn
)

func (c Category) String() string {
	names := [...]string{
		"Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Me", "Mc", "Nd", "Nl",
		"No", "Zs", "Zl", "Zp", "Cc", "Cf", "Co", "Cs", "Pd", "Ps",
		"Pe", "Pc", "Po", "Sm", "Sc", "Sk", "So", "Pi", "Pf", "Cn",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "Cn"
}

// IsLetter reports whether c is one of Lu, Ll, Lt, Lm, Lo.
func (c Category) IsLetter() bool { return c <= Lo }

// IsMark reports whether c is one of Mn, Me, Mc.
func (c Category) IsMark() bool { return c >= Mn && c <= Mc }

// IsNumber reports whether c is one of Nd, Nl, No.
func (c Category) IsNumber() bool { return c >= Nd && c <= No }

// IsSeparator reports whether c is Zs, Zl, or Zp.
func (c Category) IsSeparator() bool { return c >= Zs && c <= Zp }

// IsPunctuation reports whether c is one of the P* categories.
func (c Category) IsPunctuation() bool {
	switch c {
	case Pd, Ps, Pe, Pc, Po, Pi, Pf:
		return true
	default:
		return false
	}
}

// IsSymbol reports whether c is one of Sm, Sc, Sk, So.
func (c Category) IsSymbol() bool { return c >= Sm && c <= So }

var categoryByName = map[string]Category{
	"Lu": Lu, "Ll": Ll, "Lt": Lt, "Lm": Lm, "Lo": Lo,
	"Mn": Mn, "Me": Me, "Mc": Mc,
	"Nd": Nd, "Nl": Nl, "No": No,
	"Zs": Zs, "Zl": Zl, "Zp": Zp,
	"Cc": Cc, "Cf": Cf, "Co": Co, "Cs": Cs,
	"Pd": Pd, "Ps": Ps, "Pe": Pe, "Pc": Pc, "Po": Po, "Pi": Pi, "Pf": Pf,
	"Sm": Sm, "Sc": Sc, "Sk": Sk, "So": So,
}

// ParseCategory looks up one of the two-letter general-category names
// (e.g. "Lu", "Mn") used by UnicodeData-style source records.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoryByName[name]
	return c, ok
}

// BidiClass is one of the standard bidirectional categories (spec.md §3.2).
type BidiClass uint8

const (
	BidiL BidiClass = iota
	BidiR
	BidiAL
	BidiEN
	BidiES
	BidiET
	BidiAN
	BidiCS
	BidiNSM
	BidiBN
	BidiB
	BidiS
	BidiWS
	BidiON
	BidiLRE
	BidiLRO
	BidiRLE
	BidiRLO
	BidiPDF
	BidiLRI
	BidiRLI
	BidiFSI
	BidiPDI
)

var bidiByName = map[string]BidiClass{
	"L": BidiL, "R": BidiR, "AL": BidiAL, "EN": BidiEN, "ES": BidiES,
	"ET": BidiET, "AN": BidiAN, "CS": BidiCS, "NSM": BidiNSM, "BN": BidiBN,
	"B": BidiB, "S": BidiS, "WS": BidiWS, "ON": BidiON,
	"LRE": BidiLRE, "LRO": BidiLRO, "RLE": BidiRLE, "RLO": BidiRLO, "PDF": BidiPDF,
	"LRI": BidiLRI, "RLI": BidiRLI, "FSI": BidiFSI, "PDI": BidiPDI,
}

// String returns the short bidi class name ("L", "NSM", ...), or "?" for a
// value outside the defined classes.
func (b BidiClass) String() string {
	for name, v := range bidiByName {
		if v == b {
			return name
		}
	}
	return "?"
}

// ParseBidiClass looks up one of the standard bidirectional category
// abbreviations (e.g. "L", "AL", "NSM") used by UnicodeData-style source
// records.
func ParseBidiClass(name string) (BidiClass, bool) {
	b, ok := bidiByName[name]
	return b, ok
}

// Record bit layout (spec.md §3.2).
const (
	categoryBits    = 5
	categoryMask    = (1 << categoryBits) - 1
	hasExceptionBit = 1 << 5
	bidiShift       = 6
	bidiBits        = 5
	bidiMask        = (1 << bidiBits) - 1
	mirroredBit     = 1 << 11
	valueShift      = 20
	combiningClassShift = 20
	combiningClassMask  = 0xFF

	// exceptionIndexShift/Mask address the exceptions table when
	// hasExceptionBit is set: bits 20..31, unsigned this time (an index,
	// not a signed delta).
	exceptionIndexShift = 20
)

func decodeCategory(word uint32) Category { return Category(word & categoryMask) }

func hasException(word uint32) bool { return word&hasExceptionBit != 0 }

func decodeBidi(word uint32) BidiClass { return BidiClass((word >> bidiShift) & bidiMask) }

func isMirrored(word uint32) bool { return word&mirroredBit != 0 }

// decodeValue reads the signed 12-bit value field in bits 20..31. Go's
// arithmetic right shift on a signed type sign-extends, which is the
// "arithmetic overflow into the upper bits is by design" spec.md calls out.
func decodeValue(word uint32) int32 { return int32(word) >> valueShift }

// decodeCombiningClassField reads the unsigned 8-bit combining class a Mn
// record carries in bits 20..27, distinct from decodeValue's signed 12-bit
// interpretation used for Lu/Ll/Nd records.
func decodeCombiningClassField(word uint32) uint8 {
	return uint8((word >> combiningClassShift) & combiningClassMask)
}

func exceptionIndex(word uint32) int { return int(word >> exceptionIndexShift) }

// EncodeSimple packs a non-exception record: category, bidi class, the
// mirrored flag, and a signed 12-bit value. It is used by the builder
// (build.go) and by tests constructing synthetic data.
func EncodeSimple(cat Category, bidi BidiClass, mirrored bool, value int32) uint32 {
	word := uint32(cat) & categoryMask
	word |= (uint32(bidi) & bidiMask) << bidiShift
	if mirrored {
		word |= mirroredBit
	}
	word |= uint32(uint32(value)&0xFFF) << valueShift
	return word
}

// EncodeException packs a record whose case mappings, digit/numeric
// values, mirror mapping, or special casing live in the exceptions table.
func EncodeException(cat Category, bidi BidiClass, mirrored bool, exceptionIdx int) uint32 {
	word := uint32(cat) & categoryMask
	word |= hasExceptionBit
	word |= (uint32(bidi) & bidiMask) << bidiShift
	if mirrored {
		word |= mirroredBit
	}
	word |= uint32(exceptionIdx) << exceptionIndexShift
	return word
}
