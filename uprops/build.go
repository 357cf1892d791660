package uprops

import (
	"encoding/binary"

	"github.com/icu4g/ucore/trie"
	"github.com/icu4g/ucore/ustatus"
)

// Builder assembles a properties Store off-line: a trie.Builder for the
// per-code-point records plus an ExceptionsBuilder for the records that
// overflow the packed word. It is the properties-side counterpart of the
// gennorm package's normalization builder, sharing the same trie.Builder
// underneath (spec.md §4.2's "code-point trie (build)" component is
// explicitly generic over both stores).
type Builder struct {
	trie       *trie.Builder
	exceptions *ExceptionsBuilder
}

// NewBuilder opens a properties builder. Every code point starts out
// encoded as category Cn with no exception.
func NewBuilder(maxDataLength int) *Builder {
	initial := EncodeSimple(Cn, BidiON, false, 0)
	return &Builder{
		trie:       trie.Open(initial, initial, maxDataLength),
		exceptions: NewExceptionsBuilder(),
	}
}

// SetSimple assigns cp a record with no exception data.
func (b *Builder) SetSimple(cp rune, cat Category, bidi BidiClass, mirrored bool, value int32) error {
	return b.trie.Set(cp, EncodeSimple(cat, bidi, mirrored, value))
}

// SetException assigns cp a record backed by a new exception entry. The
// entry cannot be extended after the call: build the ExceptionRecord
// completely before calling SetException.
func (b *Builder) SetException(cp rune, cat Category, bidi BidiClass, mirrored bool, rec ExceptionRecord) error {
	idx := b.exceptions.Add(rec)
	return b.trie.Set(cp, EncodeException(cat, bidi, mirrored, idx))
}

// Serialize emits the combined properties image: an 8-byte header (trie
// image length in bytes, exceptions word count) followed by the serialized
// trie, followed by the raw exceptions words. The properties word uses
// bits up to 31, so any record with a non-zero value field or exception
// index needs width trie.Width32; Width16 fails for such records.
func (b *Builder) Serialize(width trie.Width) ([]byte, error) {
	trieImage, err := b.trie.Serialize(width)
	if err != nil {
		return nil, ustatus.Wrap(ustatus.IndexOutOfBounds, "serializing properties trie", err)
	}
	excWords := b.exceptions.Build()

	out := make([]byte, 0, 8+len(trieImage)+len(excWords)*4)
	var lenBuf [8]byte
	binary.LittleEndian.PutUint32(lenBuf[0:4], uint32(len(trieImage)))
	binary.LittleEndian.PutUint32(lenBuf[4:8], uint32(len(excWords)))
	out = append(out, lenBuf[:]...)
	out = append(out, trieImage...)
	for _, w := range excWords {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out, nil
}

// Load reads back an image produced by Builder.Serialize.
func Load(data []byte) (*Store, error) {
	if len(data) < 8 {
		return nil, ustatus.New(ustatus.InvalidFormat, "properties image truncated before header")
	}
	trieLen := int(binary.LittleEndian.Uint32(data[0:4]))
	excCount := int(binary.LittleEndian.Uint32(data[4:8]))
	pos := 8
	if len(data) < pos+trieLen {
		return nil, ustatus.New(ustatus.InvalidFormat, "properties image truncated before trie")
	}
	t, _, err := trie.Deserialize(data[pos : pos+trieLen])
	if err != nil {
		return nil, ustatus.Wrap(ustatus.InvalidFormat, "decoding properties trie", err)
	}
	pos += trieLen

	need := pos + excCount*4
	if len(data) < need {
		return nil, ustatus.New(ustatus.InvalidFormat, "properties image truncated before exceptions")
	}
	words := make([]uint32, excCount)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[pos : pos+4])
		pos += 4
	}

	return New(t, NewExceptions(words)), nil
}
