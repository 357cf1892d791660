package unorm

import "github.com/icu4g/ucore/ustatus"

// decomposeAll expands every code point in runes one level, per spec.md
// §4.5.3. Builder-time transitive closure (package gennorm's closure
// pass) guarantees a stored decomposition is already fully decomposed, so
// this never needs to recurse at run time.
func (s *Store) decomposeAll(form Form, runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, cp := range runes {
		out = append(out, s.decomposeOne(form, cp)...)
	}
	return out
}

func (s *Store) decomposeOne(form Form, cp rune) []rune {
	if IsHangulSyllable(cp) {
		return DecomposeHangul(cp)
	}
	d, ok := s.decomposition(cp)
	if !ok {
		return []rune{cp}
	}
	switch form {
	case NFD, NFC:
		if len(d.Canonical) == 0 {
			return []rune{cp}
		}
		return utf16Decode(d.Canonical)
	case NFKD, NFKC:
		if len(d.Compatibility) > 0 {
			return utf16Decode(d.Compatibility)
		}
		if len(d.Canonical) > 0 {
			return utf16Decode(d.Canonical)
		}
		return []rune{cp}
	default:
		return []rune{cp}
	}
}

// reorderCanonical runs the stable bubble-style reorder of spec.md §4.5.4
// in place over every maximal run of non-starter code points, treating
// starters (cc == 0) as fences.
func (s *Store) reorderCanonical(runes []rune) {
	i := 0
	for i < len(runes) {
		if s.combiningClassOf(runes[i]) == 0 {
			i++
			continue
		}
		j := i
		for j < len(runes) && s.combiningClassOf(runes[j]) != 0 {
			j++
		}
		s.bubbleSortRun(runes[i:j])
		i = j
	}
}

func (s *Store) bubbleSortRun(run []rune) {
	for {
		swapped := false
		for k := 0; k+1 < len(run); k++ {
			if s.combiningClassOf(run[k]) > s.combiningClassOf(run[k+1]) {
				run[k], run[k+1] = run[k+1], run[k]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// compose implements spec.md §4.5.5's left-to-right composition pass.
func (s *Store) compose(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	starterPos := -1
	var lastCC uint8

	for _, c := range runes {
		cc := s.combiningClassOf(c)

		if starterPos >= 0 {
			blocked := cc != 0 && cc <= lastCC
			if !blocked {
				if composed, ok := s.tryCompose(out[starterPos], c); ok {
					out[starterPos] = composed
					continue
				}
			}
		}

		out = append(out, c)
		if cc == 0 {
			starterPos = len(out) - 1
			lastCC = 0
		} else if starterPos >= 0 {
			lastCC = cc
		}
	}
	return out
}

func (s *Store) tryCompose(l, c rune) (rune, bool) {
	if composed, ok := ComposeHangulLV(l, c); ok {
		return composed, true
	}
	if composed, ok := ComposeHangulLVT(l, c); ok {
		return composed, true
	}

	if !combinesForward(s.word(l)) || !combinesBackward(s.word(c)) {
		return 0, false
	}
	ld, ok := s.decomposition(l)
	if !ok || ld.CombiningIndex == 0 {
		return 0, false
	}
	cd, ok := s.decomposition(c)
	if !ok || cd.CombiningIndex == 0 {
		return 0, false
	}
	if s.composition == nil {
		return 0, false
	}
	return s.composition.Compose(ld.CombiningIndex, cd.CombiningIndex)
}

// Normalize applies form to runes and returns a freshly allocated result
// (spec.md §6.2's "normalize (producing new output)"). A nil or
// data-less Store returns the input unchanged with a UsingDefault error,
// per spec.md §4.5.7.
func (s *Store) Normalize(form Form, runes []rune) ([]rune, error) {
	if !s.Loaded() {
		return append([]rune{}, runes...), errMissingData()
	}

	var working []rune
	if form == NFC && s.fcd != nil && s.fcd.IsFCD(runes) {
		working = append([]rune{}, runes...)
	} else {
		working = s.decomposeAll(form, runes)
		s.reorderCanonical(working)
	}

	if form == NFC || form == NFKC {
		working = s.compose(working)
	}
	return working, nil
}

// NormalizeInto mirrors the bounded-output-buffer contract spec.md §4.5.7
// requires: if out is too small, it returns the required length via a
// BufferOverflow *ustatus.Error without writing past len(out).
func (s *Store) NormalizeInto(form Form, runes []rune, out []rune) (int, error) {
	result, err := s.Normalize(form, runes)
	if err != nil && !ustatus.Is(err, ustatus.UsingDefault) {
		return 0, err
	}
	if len(out) < len(result) {
		return 0, ustatus.BufferTooSmall(len(result))
	}
	copy(out, result)
	return len(result), err
}

// FindLastSafeBoundary implements the streaming contract of spec.md
// §4.5.6: the largest index i such that runes[:i] may be normalized now
// without the tail changing that result, or 0 if no such boundary exists
// yet (the caller should buffer more input).
func (s *Store) FindLastSafeBoundary(runes []rune) int {
	for i := len(runes) - 1; i > 0; i-- {
		if s.combiningClassOf(runes[i]) != 0 {
			continue
		}
		if s.aux != nil && s.aux.IsUnsafeStarter(runes[i]) {
			continue
		}
		return i
	}
	return 0
}

// IncrementalNormalizer is the persistent-state variant spec.md §6.2
// names: Feed may be called repeatedly with fragments of a longer input,
// and Finish flushes whatever is left buffered. Cancellation is
// cooperative — a caller may simply stop calling Feed at any point
// without corrupting future use of the Store (spec.md §4.5.6).
type IncrementalNormalizer struct {
	store   *Store
	form    Form
	pending []rune
}

func (s *Store) NewIncremental(form Form) *IncrementalNormalizer {
	return &IncrementalNormalizer{store: s, form: form}
}

// Feed appends input to the buffered tail and normalizes everything up to
// the last safe boundary, returning nil output if no boundary was found.
func (n *IncrementalNormalizer) Feed(input []rune) ([]rune, error) {
	buf := append(n.pending, input...)
	boundary := n.store.FindLastSafeBoundary(buf)
	if boundary == 0 {
		n.pending = buf
		return nil, nil
	}
	chunk := buf[:boundary]
	n.pending = append([]rune{}, buf[boundary:]...)
	return n.store.Normalize(n.form, chunk)
}

// Finish normalizes and returns whatever input remains buffered.
func (n *IncrementalNormalizer) Finish() ([]rune, error) {
	out, err := n.store.Normalize(n.form, n.pending)
	n.pending = nil
	return out, err
}
