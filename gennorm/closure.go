package gennorm

import "fmt"

type rawDecomp struct {
	canonical     []rune
	compatibility []rune
}

// ClosedDecomposition is one code point's fully-closed canonical and
// compatibility decomposition (spec.md §4.6 step 2): every element is
// either undecomposable or has already been expanded, so the runtime
// engine never needs to recurse.
type ClosedDecomposition struct {
	Canonical     []rune
	Compatibility []rune
}

// computeClosure expands every record's decomposition to a fixed point.
// original_source/.../gennorm/store.c does this incrementally as records
// stream in (decompStoreNewNF, guarded by a haveSeenFlags bit set so only
// previously-referenced code points trigger re-expansion of earlier
// entries). This builder sees the whole record set up front, so the
// incremental "have I been referenced yet" shortcut collapses to plain
// memoized recursion with a cycle guard — same fixed-point result, no
// streaming optimization needed.
func computeClosure(records []SourceRecord) (map[rune]ClosedDecomposition, error) {
	raw := make(map[rune]rawDecomp, len(records))
	for _, r := range records {
		if !r.hasDecomposition() {
			continue
		}
		d := raw[r.CodePoint]
		switch r.DecompType {
		case DecompCanonical:
			d.canonical = append([]rune{}, r.Decomposition...)
		case DecompCompatibility:
			d.compatibility = append([]rune{}, r.Decomposition...)
		}
		raw[r.CodePoint] = d
	}

	canonMemo := make(map[rune][]rune)
	compatMemo := make(map[rune][]rune)
	out := make(map[rune]ClosedDecomposition, len(raw))

	for cp := range raw {
		canon, err := resolveCanonical(cp, raw, canonMemo, map[rune]bool{})
		if err != nil {
			return nil, err
		}
		compat, err := resolveCompatibility(cp, raw, compatMemo, map[rune]bool{})
		if err != nil {
			return nil, err
		}
		d := raw[cp]
		var cd ClosedDecomposition
		if len(d.canonical) > 0 {
			cd.Canonical = canon
		}
		if len(d.canonical) > 0 || len(d.compatibility) > 0 {
			cd.Compatibility = compat
		}
		out[cp] = cd
	}
	return out, nil
}

func resolveCanonical(cp rune, raw map[rune]rawDecomp, memo map[rune][]rune, visiting map[rune]bool) ([]rune, error) {
	if out, ok := memo[cp]; ok {
		return out, nil
	}
	d, ok := raw[cp]
	if !ok || len(d.canonical) == 0 {
		return []rune{cp}, nil
	}
	if visiting[cp] {
		return nil, fmt.Errorf("cycle detected in canonical decomposition of U+%04X", cp)
	}
	visiting[cp] = true
	out := make([]rune, 0, len(d.canonical))
	for _, c := range d.canonical {
		sub, err := resolveCanonical(c, raw, memo, visiting)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	delete(visiting, cp)
	memo[cp] = out
	return out, nil
}

// resolveCompatibility expands NFKD: each element decomposes via its own
// compatibility decomposition when present, else its canonical one, else
// is a leaf — matching store.c's decompStoreNewNF, which falls back to
// `p->nfd` for elements that carry only a canonical decomposition.
func resolveCompatibility(cp rune, raw map[rune]rawDecomp, memo map[rune][]rune, visiting map[rune]bool) ([]rune, error) {
	if out, ok := memo[cp]; ok {
		return out, nil
	}
	d, ok := raw[cp]
	if !ok || (len(d.canonical) == 0 && len(d.compatibility) == 0) {
		return []rune{cp}, nil
	}
	if visiting[cp] {
		return nil, fmt.Errorf("cycle detected in compatibility decomposition of U+%04X", cp)
	}
	visiting[cp] = true
	src := d.compatibility
	if len(src) == 0 {
		src = d.canonical
	}
	out := make([]rune, 0, len(src))
	for _, c := range src {
		sub, err := resolveCompatibility(c, raw, memo, visiting)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	delete(visiting, cp)
	memo[cp] = out
	return out, nil
}
