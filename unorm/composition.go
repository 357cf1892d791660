package unorm

// CompositionTable is the flat array of 16-bit words spec.md §3.3
// describes: indexed directly by a lead code point's combining-index,
// each lead's span is a sequence of (trail-index, result) pairs
// terminated by a pair whose trail word has its high bit set.
type CompositionTable struct {
	words []uint16
}

func NewCompositionTable(words []uint16) *CompositionTable {
	return &CompositionTable{words: words}
}

const (
	trailTerminatorBit = 1 << 15
	trailIndexMask      = 0x7FFF

	resultWideBit  = 1 << 15
	resultInlineMask = 0x1FFF
)

// Compose looks up the composed code point for (leadIndex, trailIndex),
// where both are combining-indexes assigned by the builder (spec.md §4.6
// step 4), not raw code points. ok is false if leadIndex has no span or
// no pair in it matches trailIndex.
func (c *CompositionTable) Compose(leadIndex, trailIndex int) (rune, bool) {
	if leadIndex <= 0 || leadIndex >= len(c.words) {
		return 0, false
	}
	pos := leadIndex
	for pos < len(c.words) {
		trailWord := c.words[pos]
		terminator := trailWord&trailTerminatorBit != 0
		trail := int(trailWord & trailIndexMask)
		resultWord := c.words[pos+1]
		wide := resultWord&resultWideBit != 0

		if trail == trailIndex {
			if wide {
				if pos+2 >= len(c.words) {
					return 0, false
				}
				high := uint32(resultWord&^resultWideBit) << 16
				low := uint32(c.words[pos+2])
				return rune(high | low), true
			}
			return rune(resultWord & resultInlineMask), true
		}

		pos += 2
		if wide {
			pos++
		}
		if terminator {
			break
		}
	}
	return 0, false
}

// CompositionBuilder appends one lead's span at a time, in combining-index
// order, matching the layout assignCombiningIndexes + the sort in
// spec.md §4.6 step 5 already produce.
type CompositionBuilder struct {
	words []uint16
}

func NewCompositionBuilder() *CompositionBuilder {
	// Index 0 is never a valid combining-index (it means "does not
	// combine"), so reserve it with a placeholder word.
	return &CompositionBuilder{words: make([]uint16, 1)}
}

// AppendLead writes one lead's full span of (trailIndex, result) pairs
// and returns the offset to store as that lead's combining-index.
func (b *CompositionBuilder) AppendLead(pairs []struct {
	TrailIndex int
	Result     rune
}) int {
	offset := len(b.words)
	for i, p := range pairs {
		trailWord := uint16(p.TrailIndex & trailIndexMask)
		if i == len(pairs)-1 {
			trailWord |= trailTerminatorBit
		}
		b.words = append(b.words, trailWord)
		if p.Result <= resultInlineMask {
			b.words = append(b.words, uint16(p.Result))
		} else {
			b.words = append(b.words, uint16((p.Result>>16)&0x1F)|resultWideBit)
			b.words = append(b.words, uint16(p.Result&0xFFFF))
		}
	}
	return offset
}

func (b *CompositionBuilder) Build() []uint16 {
	return append([]uint16{}, b.words...)
}
