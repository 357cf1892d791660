// Package trie implements the two-stage "folded trie" that maps every
// Unicode scalar value (U+0000..U+10FFFF) to a 16- or 32-bit value word in
// constant time. It is the shared data structure behind both the
// character-properties store (package uprops) and the normalization store
// (package unorm).
//
// The read path here mirrors the teacher's vm.Memory in spirit: a small set
// of bounds-checked accessors over a flat backing array, addressed through
// one level of indirection (vm.Memory uses a segment table; a Trie uses a
// two-stage index/data table).
package trie

const (
	// DataBlockShift is the bit shift applied to a code point to get its
	// block number; DataBlockLength code points share one data block.
	DataBlockShift = 5
	DataBlockLength = 1 << DataBlockShift // 32
	DataBlockMask   = DataBlockLength - 1 // 31

	// IndexShift is applied to stored index values so that a 16-bit index
	// slot can address a data array larger than 65536 entries: the true
	// data offset is (storedIndexValue << IndexShift).
	IndexShift = 2
	IndexShiftGranularity = 1 << IndexShift // data blocks are allocated on this boundary

	// BMPIndexLength is the number of stage-1 slots needed to address the
	// entire Basic Multilingual Plane directly by (cp >> DataBlockShift).
	BMPIndexLength = 0x10000 >> DataBlockShift // 2048

	// SurrogateBlockCount is the number of data blocks a single lead
	// surrogate's 0x400 trail-surrogate code points span.
	SurrogateBlockCount = 0x400 >> DataBlockShift // 32
	surrogateBlockMask  = SurrogateBlockCount - 1

	// LeadSurrogateIndexStart/Limit are the stage-1 slots that address the
	// BMP lead-surrogate code units 0xD800..0xDBFF directly, i.e. when a
	// lone lead surrogate is looked up as a standalone code point.
	LeadSurrogateIndexStart = 0xD800 >> DataBlockShift
	LeadSurrogateIndexLimit = 0xDC00 >> DataBlockShift

	// foldIndexBase is where, after BMPIndexLength, this trie's fold area
	// begins: one slot per possible supplementary lead (1024 of them),
	// followed by the deduplicated groups of SurrogateBlockCount data-block
	// pointers those slots resolve to. See Builder.fold for how this area
	// is populated and Trie.Get for how it's read back.
	foldIndexBase = BMPIndexLength

	leadCount = 0x400 // number of distinct supplementary leads (0x40..0x43F)

	// MaxCodePoint is the highest scalar value a trie can map.
	MaxCodePoint = 0x10FFFF
	minSupplementary = 0x10000

	// Signature is the four-byte magic at the start of a serialized trie
	// image (spec.md §6.1). 0x54726933 reads "Tri3" in ASCII, distinguishing
	// this module's format from ICU's own "Trie"/"Tri2" on-disk layout,
	// which this spec does not attempt to byte-match (spec.md §1 Non-goals).
	Signature = 0x54726933

	optionLinear1Bit = 1 << 9
	option32BitBit    = 1 << 8
)

// Width selects whether a trie's data words are 16 or 32 bits wide.
type Width int

const (
	Width16 Width = iota
	Width32
)

// Trie is a read-only, loaded-once code-point trie (spec.md §4.1).
// After Deserialize, a Trie never mutates and is safe for concurrent use by
// any number of goroutines (spec.md §5).
type Trie struct {
	index  []uint16
	data16 []uint16
	data32 []uint32
	width  Width

	initialValue uint32
	errorValue   uint32

	latin1Linear bool
}

// Get returns the value associated with cp, or the error value if cp is
// outside 0..0x10FFFF. Get never panics and never reads outside the
// backing arrays (spec.md §8 invariant 1: "trie lookup is total").
func (t *Trie) Get(cp rune) uint32 {
	if cp < 0 || cp > MaxCodePoint {
		return t.errorValue
	}

	// When latin1Linear is set, Builder.Serialize lays a flat 256-entry
	// copy of U+0000..U+00FF's values immediately after the reserved
	// initial-value block (block 0), so ASCII/Latin-1 lookups skip the
	// index indirection entirely.
	if t.latin1Linear && cp <= 0xFF {
		return t.dataAt(DataBlockLength + int(cp))
	}

	if cp <= 0xFFFF {
		block := t.index[int(cp)>>DataBlockShift]
		return t.dataAt((int(block) << IndexShift) + (int(cp) & DataBlockMask))
	}

	lead := int(cp>>10) - (minSupplementary >> 10)
	foldOffset := t.index[foldIndexBase+lead]
	if foldOffset == 0 {
		return t.initialValue
	}
	blockSlot := int(foldOffset) + ((int(cp) >> DataBlockShift) & surrogateBlockMask)
	block := t.index[blockSlot]
	return t.dataAt((int(block) << IndexShift) + (int(cp) & DataBlockMask))
}

func (t *Trie) dataAt(offset int) uint32 {
	if t.width == Width32 {
		return t.data32[offset]
	}
	return uint32(t.data16[offset])
}

// InitialValue is the value every unassigned code point maps to.
func (t *Trie) InitialValue() uint32 { return t.initialValue }

// ErrorValue is returned for any code point outside 0..0x10FFFF.
func (t *Trie) ErrorValue() uint32 { return t.errorValue }

// EnumRange walks every maximal contiguous range of code points sharing the
// same transformed value, per spec.md §4.3's enumerate-ranges operation.
// transform may be nil, in which case the raw trie value is used directly.
func (t *Trie) EnumRange(transform func(uint32) uint32, fn func(start, end rune, value uint32) bool) {
	if transform == nil {
		transform = func(v uint32) uint32 { return v }
	}

	var rangeStart rune
	var rangeValue uint32
	haveRange := false

	for cp := rune(0); cp <= MaxCodePoint; cp++ {
		v := transform(t.Get(cp))
		switch {
		case !haveRange:
			rangeStart, rangeValue, haveRange = cp, v, true
		case v != rangeValue:
			if !fn(rangeStart, cp-1, rangeValue) {
				return
			}
			rangeStart, rangeValue = cp, v
		}
	}
	if haveRange {
		fn(rangeStart, MaxCodePoint, rangeValue)
	}
}
