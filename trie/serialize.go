package trie

import (
	"encoding/binary"

	"github.com/icu4g/ucore/ustatus"
)

// Serialize compacts and writes the trie as a contiguous byte image
// (spec.md §4.2, §6.1). width selects 16- or 32-bit data words; Serialize
// returns IndexOutOfBounds if the compacted data or index arrays would not
// fit the chosen word width or the configured maxDataLength.
//
// The algorithm runs in the three stages spec.md §4.2 names:
//  1. fold — collapse the supplementary-plane block references down to a
//     per-lead offset table plus deduplicated 32-block groups.
//  2. compact — deduplicate identical data blocks across the whole trie
//     (BMP blocks and folded supplementary groups alike), sharing one
//     all-initial-value block at offset 0.
//  3. emit — write the signature, options, lengths, index, and data.
//
// Unlike utrie_compact, this does not also try to overlap a new block's
// prefix with the previous block's suffix; it only merges byte-identical
// blocks. Spec.md's testable invariants (round-trip, block-sharing
// correctness) do not depend on maximal compaction, only on correctness, so
// the simpler dedup-only pass is what's implemented here.
func (b *Builder) Serialize(width Width) ([]byte, error) {
	foldOffsets, groupBlockNums, err := b.fold()
	if err != nil {
		return nil, err
	}

	var latin1 []uint32
	if b.latin1Linear {
		latin1 = make([]uint32, 256)
		for cp := rune(0); cp < 256; cp++ {
			latin1[cp] = b.Get(cp)
		}
	}

	pool := newBlockPool(b.initialValue, latin1)

	bmpIndex := make([]int, BMPIndexLength)
	for slot := 0; slot < BMPIndexLength; slot++ {
		bmpIndex[slot] = pool.intern(b.contentFor(int32(slot)))
	}

	groupIndex := make([]int, len(groupBlockNums))
	for i, num := range groupBlockNums {
		groupIndex[i] = pool.intern(b.contentFor(num))
	}

	indexLength := foldIndexBase + leadCount + len(groupIndex)
	index := make([]uint16, indexLength)
	for slot, dataOffset := range bmpIndex {
		shifted := dataOffset >> IndexShift
		if shifted > 0xFFFF {
			return nil, ustatus.New(ustatus.IndexOutOfBounds, "trie index overflow in BMP block")
		}
		index[slot] = uint16(shifted)
	}
	for lead, off := range foldOffsets {
		index[foldIndexBase+lead] = uint16(off)
	}
	for i, dataOffset := range groupIndex {
		shifted := dataOffset >> IndexShift
		if shifted > 0xFFFF {
			return nil, ustatus.New(ustatus.IndexOutOfBounds, "trie index overflow in folded block")
		}
		index[foldIndexBase+leadCount+i] = uint16(shifted)
	}

	data := pool.data
	if len(data) > b.maxDataLength {
		return nil, ustatus.Newf(ustatus.IndexOutOfBounds, "trie data length %d exceeds maximum %d", len(data), b.maxDataLength)
	}

	return encodeImage(index, data, width, b.initialValue, b.errorValue, b.latin1Linear)
}

// fold collapses supplementary-plane block references the way
// utrie_fold does (original_source/icu4c/source/common/utrie.c), but keyed
// by block *content* equality rather than by already-assigned index values,
// since this builder never allocates index slots before Serialize runs.
func (b *Builder) fold() (foldOffsets [leadCount]int, groupBlockNums []int32, err error) {
	type groupKey = string
	seen := make(map[groupKey]int) // content signature -> offset into groupBlockNums

	for lead := 0; lead < leadCount; lead++ {
		baseBlock := int32(foldIndexBase + lead*SurrogateBlockCount)
		present := false
		sig := make([]byte, 0, SurrogateBlockCount*DataBlockLength*4)
		nums := make([]int32, SurrogateBlockCount)
		for i := 0; i < SurrogateBlockCount; i++ {
			num := baseBlock + int32(i)
			nums[i] = num
			if _, ok := b.blocks[num]; ok {
				present = true
			}
			sig = appendBlockSignature(sig, b.contentFor(num))
		}
		if !present {
			continue
		}

		key := string(sig)
		offset, ok := seen[key]
		if !ok {
			offset = len(groupBlockNums)
			groupBlockNums = append(groupBlockNums, nums...)
			seen[key] = offset
		}
		foldOffsets[lead] = foldIndexBase + leadCount + offset
	}

	if foldIndexBase+leadCount+len(groupBlockNums) > 0xFFFF {
		err = ustatus.New(ustatus.IndexOutOfBounds, "trie fold area exceeds 16-bit index addressing")
	}
	return
}

func appendBlockSignature(sig []byte, block []uint32) []byte {
	for _, v := range block {
		sig = append(sig, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return sig
}

// contentFor returns the DataBlockLength-length content for a block number,
// defaulting to the all-initial block when the builder never wrote to it.
func (b *Builder) contentFor(num int32) []uint32 {
	if blk, ok := b.blocks[num]; ok {
		return blk
	}
	initial := make([]uint32, DataBlockLength)
	for i := range initial {
		initial[i] = b.initialValue
	}
	return initial
}

// blockPool deduplicates identical data blocks during compaction, always
// keeping the all-initial-value block at offset 0 per spec.md §3.1.
type blockPool struct {
	data    []uint32
	offsets map[string]int
}

// newBlockPool reserves block 0 as the all-initial-value block and, when
// latin1 is non-nil, lays it immediately afterward as a flat, non-deduped
// region (spec.md §3.1) before any other block is interned.
func newBlockPool(initialValue uint32, latin1 []uint32) *blockPool {
	zero := make([]uint32, DataBlockLength)
	for i := range zero {
		zero[i] = initialValue
	}
	p := &blockPool{
		data:    append([]uint32{}, zero...),
		offsets: make(map[string]int),
	}
	p.offsets[string(appendBlockSignature(nil, zero))] = 0
	if latin1 != nil {
		p.data = append(p.data, latin1...)
	}
	return p
}

func (p *blockPool) intern(block []uint32) int {
	key := string(appendBlockSignature(nil, block))
	if off, ok := p.offsets[key]; ok {
		return off
	}
	off := len(p.data)
	p.data = append(p.data, block...)
	p.offsets[key] = off
	return off
}

func encodeImage(index []uint16, data []uint32, width Width, initialValue, errorValue uint32, latin1Linear bool) ([]byte, error) {
	options := uint32(DataBlockShift) | uint32(IndexShift)<<4
	if width == Width32 {
		options |= option32BitBit
	}
	if latin1Linear {
		options |= optionLinear1Bit
	}

	header := make([]byte, 24)
	binary.LittleEndian.PutUint32(header[0:4], Signature)
	binary.LittleEndian.PutUint32(header[4:8], options)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(index)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(data)))
	binary.LittleEndian.PutUint32(header[16:20], initialValue)
	binary.LittleEndian.PutUint32(header[20:24], errorValue)

	out := make([]byte, 0, len(header)+len(index)*2+len(data)*4)
	out = append(out, header...)
	for _, v := range index {
		out = binary.LittleEndian.AppendUint16(out, v)
	}
	switch width {
	case Width32:
		for _, v := range data {
			out = binary.LittleEndian.AppendUint32(out, v)
		}
	case Width16:
		for _, v := range data {
			if v > 0xFFFF {
				return nil, ustatus.Newf(ustatus.IndexOutOfBounds, "data value 0x%X does not fit a 16-bit trie", v)
			}
			out = binary.LittleEndian.AppendUint16(out, uint16(v))
		}
	}
	return out, nil
}

// Deserialize reads a trie image produced by Serialize. The returned Trie
// aliases no part of buf after this call returns; buf may be reused or
// discarded by the caller. BytesRead reports how many leading bytes of buf
// the image occupied, so callers packing several images back to back
// (spec.md §6.1's Norm file) can advance past it.
func Deserialize(buf []byte) (t *Trie, bytesRead int, err error) {
	if len(buf) < 24 {
		return nil, 0, ustatus.New(ustatus.InvalidFormat, "trie image truncated before header")
	}
	signature := binary.LittleEndian.Uint32(buf[0:4])
	if signature != Signature {
		return nil, 0, ustatus.Newf(ustatus.InvalidFormat, "bad trie signature 0x%X", signature)
	}
	options := binary.LittleEndian.Uint32(buf[4:8])
	indexLength := int(binary.LittleEndian.Uint32(buf[8:12]))
	dataLength := int(binary.LittleEndian.Uint32(buf[12:16]))
	initialValue := binary.LittleEndian.Uint32(buf[16:20])
	errorValue := binary.LittleEndian.Uint32(buf[20:24])

	width := Width16
	if options&option32BitBit != 0 {
		width = Width32
	}
	latin1Linear := options&optionLinear1Bit != 0

	pos := 24
	need := pos + indexLength*2
	if width == Width32 {
		need += dataLength * 4
	} else {
		need += dataLength * 2
	}
	if len(buf) < need {
		return nil, 0, ustatus.New(ustatus.InvalidFormat, "trie image truncated before data")
	}

	index := make([]uint16, indexLength)
	for i := range index {
		index[i] = binary.LittleEndian.Uint16(buf[pos : pos+2])
		pos += 2
	}

	trie := &Trie{
		index:        index,
		width:        width,
		initialValue: initialValue,
		errorValue:   errorValue,
		latin1Linear: latin1Linear,
	}
	if width == Width32 {
		data := make([]uint32, dataLength)
		for i := range data {
			data[i] = binary.LittleEndian.Uint32(buf[pos : pos+4])
			pos += 4
		}
		trie.data32 = data
	} else {
		data := make([]uint16, dataLength)
		for i := range data {
			data[i] = binary.LittleEndian.Uint16(buf[pos : pos+2])
			pos += 2
		}
		trie.data16 = data
	}

	return trie, pos, nil
}
