package uprops

import "math/bits"

// ExceptionSlot identifies one of the nine optional follow-on words an
// exception record may carry (spec.md §3.2).
type ExceptionSlot uint

const (
	SlotUppercase ExceptionSlot = iota
	SlotLowercase
	SlotTitlecase
	SlotDigitValue
	SlotNumericValue
	SlotDenominatorValue
	SlotMirror
	SlotSpecialCasing
	SlotCaseFolding
	numExceptionSlots
)

// Exceptions is the flat table of exception records a trie's
// has-exception records index into. Record layout: one flag word per
// record (bits 0..8 select which of the nine slots follow, bits 16..23
// carry the combining class), followed immediately by one word per set
// bit, in slot order.
type Exceptions struct {
	words []uint32
}

// NewExceptions wraps an already-assembled exception word array, as
// produced by ExceptionsBuilder or read back from a serialized image.
func NewExceptions(words []uint32) *Exceptions {
	return &Exceptions{words: words}
}

func (e *Exceptions) flags(index int) uint32 { return e.words[index] }

// Value returns the slot's raw word and true if the exception record at
// index carries that slot, using a popcount over the lower flag bits to
// locate it — the Go equivalent of the "compact bit-count table" design
// note, via math/bits rather than a hand-rolled 256-entry lookup.
func (e *Exceptions) Value(index int, slot ExceptionSlot) (uint32, bool) {
	flags := e.flags(index)
	bit := uint32(1) << uint(slot)
	if flags&bit == 0 {
		return 0, false
	}
	offset := index + 1 + bits.OnesCount32(flags&(bit-1))
	return e.words[offset], true
}

// CombiningClass reads the canonical combining class an exception record
// carries in bits 16..23 of its flag word.
func (e *Exceptions) CombiningClass(index int) uint8 {
	return uint8((e.flags(index) >> 16) & 0xFF)
}

// ExceptionsBuilder assembles an Exceptions table one record at a time.
// Records must be added in final index order; Add returns the index the
// caller should store in the owning trie record.
type ExceptionsBuilder struct {
	words []uint32
}

func NewExceptionsBuilder() *ExceptionsBuilder {
	return &ExceptionsBuilder{}
}

// ExceptionRecord is the set of optional fields a single exceptional code
// point may define. A nil entry means the slot is absent.
type ExceptionRecord struct {
	CombiningClass uint8

	Uppercase        *uint32
	Lowercase        *uint32
	Titlecase        *uint32
	DigitValue       *uint32
	NumericValue     *uint32
	DenominatorValue *uint32
	Mirror           *uint32
	SpecialCasing    *uint32
	CaseFolding      *uint32
}

func (r ExceptionRecord) slots() [numExceptionSlots]*uint32 {
	return [numExceptionSlots]*uint32{
		SlotUppercase:        r.Uppercase,
		SlotLowercase:        r.Lowercase,
		SlotTitlecase:        r.Titlecase,
		SlotDigitValue:       r.DigitValue,
		SlotNumericValue:     r.NumericValue,
		SlotDenominatorValue: r.DenominatorValue,
		SlotMirror:           r.Mirror,
		SlotSpecialCasing:    r.SpecialCasing,
		SlotCaseFolding:      r.CaseFolding,
	}
}

// Add appends one exception record, returning the index to store in the
// owning properties record (see EncodeException).
func (b *ExceptionsBuilder) Add(r ExceptionRecord) int {
	index := len(b.words)
	flags := uint32(r.CombiningClass) << 16
	slots := r.slots()
	var values []uint32
	for slot, v := range slots {
		if v == nil {
			continue
		}
		flags |= 1 << uint(slot)
		values = append(values, *v)
	}
	b.words = append(b.words, flags)
	b.words = append(b.words, values...)
	return index
}

// Build returns the finished word array for NewExceptions or for
// embedding in a serialized properties image.
func (b *ExceptionsBuilder) Build() []uint32 {
	return append([]uint32{}, b.words...)
}
