package unorm

import "github.com/icu4g/ucore/trie"

// FCDTable wraps the trie mapping each code point to its leading and
// trailing canonical combining classes packed into 16 bits (spec.md
// §3.3), used for the FCD fast path (§4.5.2).
type FCDTable struct {
	t *trie.Trie
}

func NewFCDTable(t *trie.Trie) *FCDTable { return &FCDTable{t: t} }

func packFCD(leadCC, trailCC uint8) uint32 {
	return uint32(leadCC)<<8 | uint32(trailCC)
}

func (f *FCDTable) leadTrail(cp rune) (lead, trail uint8) {
	v := f.t.Get(cp)
	return uint8(v >> 8), uint8(v)
}

// IsFCD reports whether runes is already in Fast-path Canonical-order
// Decomposition form: scanning left to right, each code point's leading
// combining class is either 0 or >= the previous code point's trailing
// combining class.
func (f *FCDTable) IsFCD(runes []rune) bool {
	var prevTrail uint8
	for _, cp := range runes {
		lead, trail := f.leadTrail(cp)
		if lead != 0 && lead < prevTrail {
			return false
		}
		prevTrail = trail
	}
	return true
}

// FCDBuilder assembles the FCD trie from the same decomposition data the
// main normalization builder computes, so leading/trailing classes always
// agree with what Decompose/Reorder produce.
type FCDBuilder struct {
	b *trie.Builder
}

func NewFCDBuilder(maxDataLength int) *FCDBuilder {
	return &FCDBuilder{b: trie.Open(0, 0, maxDataLength)}
}

func (b *FCDBuilder) Set(cp rune, leadCC, trailCC uint8) error {
	return b.b.Set(cp, packFCD(leadCC, trailCC))
}

func (b *FCDBuilder) Serialize(width trie.Width) ([]byte, error) {
	return b.b.Serialize(width)
}
