package uprops

// asciiFallbackSize bounds the static fallback table. spec.md §4.5 gives the
// inclusive bound "U+0000..U+009F"; the fallback returns Cn/ustatus.UsingDefault
// outside that, consistent with a module that has no properties data loaded.
const asciiFallbackSize = 0xA0

type fallbackEntry struct {
	category Category
	bidi     BidiClass
	mirrored bool
	value    int32
}

var asciiFallback [asciiFallbackSize]fallbackEntry

func init() {
	for cp := 0; cp < asciiFallbackSize; cp++ {
		asciiFallback[cp] = classifyASCII(rune(cp))
	}
}

// classifyASCII derives a plausible record for the C0/C1 control range plus
// Basic Latin the way the real table would, without hand-typing 160 entries.
func classifyASCII(cp rune) fallbackEntry {
	switch {
	case cp <= 0x1F || cp == 0x7F || (cp >= 0x80 && cp <= 0x9F):
		return fallbackEntry{category: Cc, bidi: BidiBN}
	case cp == 0x20:
		return fallbackEntry{category: Zs, bidi: BidiWS}
	case cp >= '0' && cp <= '9':
		return fallbackEntry{category: Nd, bidi: BidiEN, value: int32(cp - '0')}
	case cp >= 'A' && cp <= 'Z':
		return fallbackEntry{category: Lu, bidi: BidiL, value: -32}
	case cp >= 'a' && cp <= 'z':
		return fallbackEntry{category: Ll, bidi: BidiL, value: 32}
	case cp == '(' || cp == '[' || cp == '{':
		return fallbackEntry{category: Ps, bidi: BidiON, mirrored: true}
	case cp == ')' || cp == ']' || cp == '}':
		return fallbackEntry{category: Pe, bidi: BidiON, mirrored: true}
	case cp == '<' || cp == '>' || cp == '+' || cp == '=' || cp == '|' || cp == '~':
		return fallbackEntry{category: Sm, bidi: BidiON, mirrored: cp == '<' || cp == '>'}
	case cp == '$':
		return fallbackEntry{category: Sc, bidi: BidiET}
	case cp == '_':
		return fallbackEntry{category: Pc, bidi: BidiON}
	case cp > 0x20 && cp < 0x7F:
		return fallbackEntry{category: Po, bidi: BidiON}
	default:
		return fallbackEntry{category: Cn, bidi: BidiON}
	}
}
