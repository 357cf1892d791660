package unorm

import "github.com/icu4g/ucore/trie"

// AuxTable wraps the auxiliary trie (spec.md §3.3): per code point, an
// FC_NFKC_Closure-string index and an "unsafe starter" bit (set if
// composition involving this code point may reach backward past it,
// which the streaming safe-boundary contract in §4.5.6 needs).
type AuxTable struct {
	t       *trie.Trie
	closure [][]uint16 // indexed by the closure index the trie value carries
}

const unsafeStarterBit = 1

func NewAuxTable(t *trie.Trie, closure [][]uint16) *AuxTable {
	return &AuxTable{t: t, closure: closure}
}

// IsUnsafeStarter reports whether cp may be reached backward by a
// composition started before it, meaning a chunk boundary must not fall
// immediately after cp.
func (a *AuxTable) IsUnsafeStarter(cp rune) bool {
	return a.t.Get(cp)&unsafeStarterBit != 0
}

// FCNFKCClosure returns the FC_NFKC_Closure string for cp, used by
// canonical-closure callers (collation, regex) per spec.md §3.3's closing
// paragraph. Decided encoding (spec.md §9 Open Questions): a plain
// length-prefixed []uint16 slice per code point, no sentinel byte.
func (a *AuxTable) FCNFKCClosure(cp rune) []uint16 {
	idx := a.t.Get(cp) >> 1
	if int(idx) >= len(a.closure) {
		return nil
	}
	return a.closure[idx]
}

// AuxBuilder assembles the auxiliary trie and its closure-string table.
type AuxBuilder struct {
	b       *trie.Builder
	closure [][]uint16
}

func NewAuxBuilder(maxDataLength int) *AuxBuilder {
	// Closure index 0 is what every code point without a closure string
	// carries, so it is reserved for an empty entry.
	return &AuxBuilder{b: trie.Open(0, 0, maxDataLength), closure: [][]uint16{nil}}
}

// SetUnsafeStarter marks cp as an unsafe composition target.
func (b *AuxBuilder) SetUnsafeStarter(cp rune, unsafe bool) error {
	v := b.b.Get(cp)
	if unsafe {
		v |= unsafeStarterBit
	} else {
		v &^= unsafeStarterBit
	}
	return b.b.Set(cp, v)
}

// SetClosure records cp's FC_NFKC_Closure string under the next free
// index, packing that index into the trie value alongside the unsafe bit.
func (b *AuxBuilder) SetClosure(cp rune, units []uint16) error {
	idx := len(b.closure)
	b.closure = append(b.closure, append([]uint16{}, units...))
	v := b.b.Get(cp)
	unsafe := v & unsafeStarterBit
	return b.b.Set(cp, uint32(idx)<<1|unsafe)
}

func (b *AuxBuilder) Serialize(width trie.Width) ([]byte, [][]uint16, error) {
	img, err := b.b.Serialize(width)
	if err != nil {
		return nil, nil, err
	}
	return img, b.closure, nil
}
