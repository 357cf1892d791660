package trie

import (
	"github.com/icu4g/ucore/ustatus"
)

// Builder accumulates (range, value) writes for a code-point trie and
// compiles them into a serialized image. It is strictly single-threaded and
// owns all the memory it allocates (spec.md §5); nothing under Builder is
// safe to touch from more than one goroutine at a time.
//
// Following the system's "arena of fixed-size blocks keyed by small
// integers, with a remap table; never store back-pointers" guidance, a
// Builder keeps one DataBlockLength-length slice per block number that has
// ever been written, keyed by block number — the in-memory analog of
// utrie_getDataBlock's copy-on-write block allocation, without the pointer
// arithmetic a C implementation needs.
type Builder struct {
	initialValue uint32
	errorValue   uint32
	maxDataLength int

	blocks map[int32][]uint32 // blockNumber -> DataBlockLength values; absent == all initialValue
	latin1Linear bool
}

// Open returns a Builder where every code point initially maps to
// initialValue. maxDataLength bounds the compacted data array Serialize may
// produce; Set/SetRange fail with IndexOutOfBounds if satisfying them would
// require more distinct blocks than that bound allows.
func Open(initialValue, errorValue uint32, maxDataLength int) *Builder {
	return &Builder{
		initialValue:  initialValue,
		errorValue:    errorValue,
		maxDataLength: maxDataLength,
		blocks:        make(map[int32][]uint32),
	}
}

// SetLatin1Linear enables the flat ASCII/Latin-1 data layout described in
// spec.md §3.1. It must be called before Serialize.
func (b *Builder) SetLatin1Linear(linear bool) {
	b.latin1Linear = linear
}

func blockNumber(cp rune) int32 { return int32(cp) >> DataBlockShift }

func (b *Builder) blockFor(cp rune, allocate bool) ([]uint32, error) {
	num := blockNumber(cp)
	blk, ok := b.blocks[num]
	if ok {
		return blk, nil
	}
	if !allocate {
		return nil, nil
	}
	if (len(b.blocks)+1)*DataBlockLength > b.maxDataLength {
		return nil, ustatus.New(ustatus.IndexOutOfBounds, "trie data array exceeds configured maximum")
	}
	blk = make([]uint32, DataBlockLength)
	for i := range blk {
		blk[i] = b.initialValue
	}
	b.blocks[num] = blk
	return blk, nil
}

// Get returns cp's current value during construction (before Serialize).
func (b *Builder) Get(cp rune) uint32 {
	if cp < 0 || cp > MaxCodePoint {
		return b.errorValue
	}
	blk, _ := b.blockFor(cp, false)
	if blk == nil {
		return b.initialValue
	}
	return blk[int32(cp)&DataBlockMask]
}

// Set writes a single code point's value.
func (b *Builder) Set(cp rune, value uint32) error {
	if cp < 0 || cp > MaxCodePoint {
		return ustatus.Newf(ustatus.InvalidArgument, "code point U+%X out of range", cp)
	}
	blk, err := b.blockFor(cp, true)
	if err != nil {
		return err
	}
	blk[int32(cp)&DataBlockMask] = value
	return nil
}

// SetRange writes value to every code point in [start, limit). When
// overwrite is false, code points whose current value is not initialValue
// are left untouched (spec.md §4.2).
func (b *Builder) SetRange(start, limit rune, value uint32, overwrite bool) error {
	if start < 0 || limit > MaxCodePoint+1 || start > limit {
		return ustatus.New(ustatus.InvalidArgument, "invalid trie range")
	}
	for cp := start; cp < limit; cp++ {
		if !overwrite && b.Get(cp) != b.initialValue {
			continue
		}
		if err := b.Set(cp, value); err != nil {
			return err
		}
	}
	return nil
}
