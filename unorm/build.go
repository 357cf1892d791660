package unorm

import (
	"encoding/binary"

	"github.com/icu4g/ucore/trie"
	"github.com/icu4g/ucore/ustatus"
)

// Builder assembles a normalization image off-line the way package
// gennorm's ingest/closure/validate pipeline (spec.md §4.6) drives it:
// gennorm computes the fully-closed decompositions, composition triples,
// combining-index assignment, and canonical-starter sets, then calls into
// this Builder one record at a time to actually pack the three tries
// (normalization, FCD, auxiliary), the extra array, and the composition
// table.
type Builder struct {
	records *trie.Builder
	extra   []uint16
	comp    *CompositionBuilder
	fcd     *FCDBuilder
	aux     *AuxBuilder
	starters *StarterSetsBuilder
}

func NewBuilder(maxDataLength int) *Builder {
	return &Builder{
		records:  trie.Open(0, 0, maxDataLength),
		comp:     NewCompositionBuilder(),
		fcd:      NewFCDBuilder(maxDataLength),
		aux:      NewAuxBuilder(maxDataLength),
		starters: NewStarterSetsBuilder(),
	}
}

// SetRecord packs and stores cp's full normalization record: the
// quick-check/combining-flags/combining-class word, plus — when
// combiningIndex is non-zero or either decomposition is non-empty — an
// extra-array entry the record's high field points to.
func (b *Builder) SetRecord(cp rune, nfc, nfkc QuickCheckResult, fwd, bwd bool, cc uint8, combiningIndex int, d Decomposition) error {
	var high uint32
	if combiningIndex != 0 || len(d.Canonical) > 0 || len(d.Compatibility) > 0 {
		d.CombiningIndex = combiningIndex
		var offset int
		b.extra, offset = encodeExtra(b.extra, combiningIndex, d)
		high = uint32(offset)
	}
	word := EncodeRecord(nfc, nfkc, fwd, bwd, cc, high)
	return b.records.Set(cp, word)
}

// AppendCompositionLead records one lead code point's full span of
// (trailIndex, result) pairs and returns the combining-index to use as
// that lead's CombiningIndex in SetRecord.
func (b *Builder) AppendCompositionLead(pairs []struct {
	TrailIndex int
	Result     rune
}) int {
	return b.comp.AppendLead(pairs)
}

func (b *Builder) SetFCD(cp rune, leadCC, trailCC uint8) error {
	return b.fcd.Set(cp, leadCC, trailCC)
}

func (b *Builder) SetUnsafeStarter(cp rune, unsafe bool) error {
	return b.aux.SetUnsafeStarter(cp, unsafe)
}

func (b *Builder) SetClosure(cp rune, units []uint16) error {
	return b.aux.SetClosure(cp, units)
}

func (b *Builder) AddStarterMember(s, c rune) {
	b.starters.Add(s, c)
}

// Image is a fully serialized normalization data file, laid out the way
// spec.md §6.1 describes a Norm file: a small named-slot index followed
// by each component's own image back to back. This module's header does
// not attempt to byte-match ICU's UDataInfo block (spec.md §1 Non-goals).
// The serialized header is eight little-endian uint32 words: signature,
// normalization trie byte length, extra-array word count, composition
// word count, FCD trie byte length, auxiliary trie byte length,
// closure-string count, and a reserved zero. Of the fields below,
// Serialize leaves MinNFCNoMaybe and MinNFKCNoMaybe at zero, and
// CanonSetCount holds the closure-string count.
type Image struct {
	TrieSize        int32
	CombineDataCount int32
	MinNFCNoMaybe   int32
	MinNFKCNoMaybe  int32
	FCDTrieSize     int32
	AuxTrieSize     int32
	CanonSetCount   int32

	bytes []byte
}

const normSignature = 0x4E6F726D // "Norm"

// Serialize compacts every component table and concatenates them behind
// the header described on Image. The record word carries an extra-array
// offset in bits 16..31, so width must be trie.Width32 for any record with
// an extra entry.
func (b *Builder) Serialize(width trie.Width) (*Image, error) {
	trieImg, err := b.records.Serialize(width)
	if err != nil {
		return nil, ustatus.Wrap(ustatus.IndexOutOfBounds, "serializing normalization trie", err)
	}
	fcdImg, err := b.fcd.Serialize(trie.Width16)
	if err != nil {
		return nil, ustatus.Wrap(ustatus.IndexOutOfBounds, "serializing FCD trie", err)
	}
	auxImg, closure, err := b.aux.Serialize(trie.Width32)
	if err != nil {
		return nil, ustatus.Wrap(ustatus.IndexOutOfBounds, "serializing auxiliary trie", err)
	}
	compWords := b.comp.Build()

	header := make([]byte, 32)
	binary.LittleEndian.PutUint32(header[0:4], normSignature)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(trieImg)))
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(b.extra)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(compWords)))
	binary.LittleEndian.PutUint32(header[16:20], uint32(len(fcdImg)))
	binary.LittleEndian.PutUint32(header[20:24], uint32(len(auxImg)))
	binary.LittleEndian.PutUint32(header[24:28], uint32(len(closure)))
	binary.LittleEndian.PutUint32(header[28:32], 0) // reserved

	out := append([]byte{}, header...)
	out = append(out, trieImg...)
	for _, w := range b.extra {
		out = binary.LittleEndian.AppendUint16(out, w)
	}
	for _, w := range compWords {
		out = binary.LittleEndian.AppendUint16(out, w)
	}
	out = append(out, fcdImg...)
	out = append(out, auxImg...)
	for _, units := range closure {
		out = binary.LittleEndian.AppendUint16(out, uint16(len(units)))
		for _, u := range units {
			out = binary.LittleEndian.AppendUint16(out, u)
		}
	}

	return &Image{
		TrieSize:         int32(len(trieImg)),
		CombineDataCount: int32(len(compWords)),
		FCDTrieSize:      int32(len(fcdImg)),
		AuxTrieSize:      int32(len(auxImg)),
		CanonSetCount:    int32(len(closure)),
		bytes:            out,
	}, nil
}

func (img *Image) Bytes() []byte { return img.bytes }

// Load reads back an Image produced by Builder.Serialize.
func Load(data []byte) (*Store, error) {
	if len(data) < 32 {
		return nil, ustatus.New(ustatus.InvalidFormat, "normalization image truncated before header")
	}
	sig := binary.LittleEndian.Uint32(data[0:4])
	if sig != normSignature {
		return nil, ustatus.Newf(ustatus.InvalidFormat, "bad normalization signature 0x%X", sig)
	}
	trieLen := int(binary.LittleEndian.Uint32(data[4:8]))
	extraLen := int(binary.LittleEndian.Uint32(data[8:12]))
	compLen := int(binary.LittleEndian.Uint32(data[12:16]))
	fcdLen := int(binary.LittleEndian.Uint32(data[16:20]))
	auxLen := int(binary.LittleEndian.Uint32(data[20:24]))
	closureCount := int(binary.LittleEndian.Uint32(data[24:28]))

	pos := 32
	if len(data) < pos+trieLen {
		return nil, ustatus.New(ustatus.InvalidFormat, "normalization image truncated before trie")
	}
	normTrie, _, err := trie.Deserialize(data[pos : pos+trieLen])
	if err != nil {
		return nil, ustatus.Wrap(ustatus.InvalidFormat, "decoding normalization trie", err)
	}
	pos += trieLen

	if len(data) < pos+extraLen*2 {
		return nil, ustatus.New(ustatus.InvalidFormat, "normalization image truncated before extra array")
	}
	extra := make([]uint16, extraLen)
	for i := range extra {
		extra[i] = binary.LittleEndian.Uint16(data[pos : pos+2])
		pos += 2
	}

	if len(data) < pos+compLen*2 {
		return nil, ustatus.New(ustatus.InvalidFormat, "normalization image truncated before composition table")
	}
	compWords := make([]uint16, compLen)
	for i := range compWords {
		compWords[i] = binary.LittleEndian.Uint16(data[pos : pos+2])
		pos += 2
	}

	if len(data) < pos+fcdLen {
		return nil, ustatus.New(ustatus.InvalidFormat, "normalization image truncated before FCD trie")
	}
	fcdTrie, _, err := trie.Deserialize(data[pos : pos+fcdLen])
	if err != nil {
		return nil, ustatus.Wrap(ustatus.InvalidFormat, "decoding FCD trie", err)
	}
	pos += fcdLen

	if len(data) < pos+auxLen {
		return nil, ustatus.New(ustatus.InvalidFormat, "normalization image truncated before auxiliary trie")
	}
	auxTrie, _, err := trie.Deserialize(data[pos : pos+auxLen])
	if err != nil {
		return nil, ustatus.Wrap(ustatus.InvalidFormat, "decoding auxiliary trie", err)
	}
	pos += auxLen

	closure := make([][]uint16, closureCount)
	for i := range closure {
		if len(data) < pos+2 {
			return nil, ustatus.New(ustatus.InvalidFormat, "normalization image truncated in closure table")
		}
		n := int(binary.LittleEndian.Uint16(data[pos : pos+2]))
		pos += 2
		if len(data) < pos+n*2 {
			return nil, ustatus.New(ustatus.InvalidFormat, "normalization image truncated in closure table")
		}
		units := make([]uint16, n)
		for j := range units {
			units[j] = binary.LittleEndian.Uint16(data[pos : pos+2])
			pos += 2
		}
		closure[i] = units
	}

	// Canonical-starter sets are not part of the persisted binary image
	// (see DESIGN.md) — a Store loaded from bytes alone has no closure
	// data to serve Lookup from. A Builder still in process memory can
	// wire them directly via BuiltStore instead of round-tripping
	// through Serialize/Load.
	return New(normTrie, extra, NewCompositionTable(compWords), NewFCDTable(fcdTrie), NewAuxTable(auxTrie, closure), nil), nil
}

// BuiltStore returns a Store backed directly by this Builder's in-memory
// tables, including canonical-starter sets, without a serialize/load
// round trip. It serializes the records at trie.Width32 and reloads them,
// then attaches the canonical-starter sets, which Load alone cannot restore.
func (b *Builder) BuiltStore() (*Store, error) {
	img, err := b.Serialize(trie.Width32)
	if err != nil {
		return nil, err
	}
	store, err := Load(img.Bytes())
	if err != nil {
		return nil, err
	}
	store.starters = b.starters.Build()
	return store, nil
}
