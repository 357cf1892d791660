package gennorm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/icu4g/ucore/unorm"
	"github.com/icu4g/ucore/uprops"
)

// BuildResult bundles the two builders the ingest pipeline produces.
// spec.md §4.6 step 8 calls these "the four tries (normalization, FCD,
// auxiliary, additional-properties)": the properties trie and exceptions
// table live in Properties, the other three tries plus the composition
// table and extra array live in Normalization.
type BuildResult struct {
	Properties    *uprops.Builder
	Normalization *unorm.Builder
	Starters      *StarterPlan
}

// Build runs spec.md §4.6's full pipeline over records: transitive
// decomposition closure, composition-triple derivation and combining-index
// assignment, invariant validation, canonical-starter derivation, then
// packs everything into a Properties and a Normalization builder.
// exclusions is the composition-exclusions list named in §4.6's input set.
func Build(records []SourceRecord, exclusions map[rune]bool) (*BuildResult, error) {
	byCP := make(map[rune]SourceRecord, len(records))
	for _, r := range records {
		byCP[r.CodePoint] = r
	}

	closed, err := computeClosure(records)
	if err != nil {
		return nil, fmt.Errorf("closure: %w", err)
	}

	rawMap := make(map[rune]rawDecomp, len(records))
	for _, r := range records {
		if !r.hasDecomposition() {
			continue
		}
		d := rawMap[r.CodePoint]
		switch r.DecompType {
		case DecompCanonical:
			d.canonical = append([]rune{}, r.Decomposition...)
		case DecompCompatibility:
			d.compatibility = append([]rune{}, r.Decomposition...)
		}
		rawMap[r.CodePoint] = d
	}
	plan := deriveCombining(rawMap, exclusions)

	if verrs := validate(byCP, closed); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, e := range verrs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("%d invariant violation(s):\n%s", len(verrs), strings.Join(msgs, "\n"))
	}

	ccOf := func(cp rune) uint8 {
		if unorm.IsHangulSyllable(cp) || unorm.IsHangulJamoL(cp) || unorm.IsHangulJamoV(cp) || unorm.IsHangulJamoT(cp) {
			return 0
		}
		if r, ok := byCP[cp]; ok {
			return r.CombiningClass
		}
		return 0
	}

	starterPlan := deriveStarters(closed, ccOf)
	propsBuilder := buildProperties(byCP)
	normBuilder := unorm.NewBuilder(1 << 20)

	keys := make([]rune, 0, len(byCP))
	for cp := range byCP {
		keys = append(keys, cp)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, cp := range keys {
		r := byCP[cp]
		cd := closed[cp]

		var decomp unorm.Decomposition
		if len(cd.Canonical) > 0 {
			s := append([]rune{}, cd.Canonical...)
			lead, trail := reorderAndCCs(s, ccOf)
			decomp.Canonical = unorm.EncodeUTF16(s)
			decomp.CanonicalLeadCC, decomp.CanonicalTrailCC = lead, trail
		}
		if len(cd.Compatibility) > 0 {
			s := append([]rune{}, cd.Compatibility...)
			lead, trail := reorderAndCCs(s, ccOf)
			decomp.Compatibility = unorm.EncodeUTF16(s)
			decomp.CompatLeadCC, decomp.CompatTrailCC = lead, trail
		}

		combiningIndex := plan.CombiningIndex[cp]
		if err := normBuilder.SetRecord(cp, r.NFCQuickCheck, r.NFKCQuickCheck,
			plan.Forward[cp], plan.Backward[cp], r.CombiningClass, combiningIndex, decomp); err != nil {
			return nil, fmt.Errorf("U+%04X: %w", cp, err)
		}

		leadCC, trailCC := r.CombiningClass, r.CombiningClass
		if len(cd.Canonical) > 0 {
			leadCC, trailCC = decomp.CanonicalLeadCC, decomp.CanonicalTrailCC
		}
		if err := normBuilder.SetFCD(cp, leadCC, trailCC); err != nil {
			return nil, fmt.Errorf("U+%04X FCD: %w", cp, err)
		}

		if len(r.FCNFKCClosure) > 0 {
			if err := normBuilder.SetClosure(cp, r.FCNFKCClosure); err != nil {
				return nil, fmt.Errorf("U+%04X closure: %w", cp, err)
			}
		}
	}

	for _, lead := range plan.LeadOrder {
		offset := normBuilder.AppendCompositionLead(plan.LeadPairs[lead])
		if offset != plan.CombiningIndex[lead] {
			return nil, fmt.Errorf("internal error: combining-index mismatch for U+%04X (planned %d, table offset %d)",
				lead, plan.CombiningIndex[lead], offset)
		}
	}

	for s, members := range starterPlan.Starters {
		for _, c := range members {
			normBuilder.AddStarterMember(s, c)
		}
	}
	for cp := range starterPlan.Unsafe {
		if err := normBuilder.SetUnsafeStarter(cp, true); err != nil {
			return nil, fmt.Errorf("U+%04X unsafe starter: %w", cp, err)
		}
	}
	// Jamo V and T are always unsafe starters (spec.md §3.4): composition
	// beginning at either can reach backward across it into a preceding L
	// or LV syllable, the same hardcoded range setHangulJamoSpecials uses.
	for c := rune(unorm.HangulVFirst); c <= unorm.HangulVLast; c++ {
		if err := normBuilder.SetUnsafeStarter(c, true); err != nil {
			return nil, err
		}
	}
	for c := rune(unorm.HangulTFirst); c <= unorm.HangulTLast; c++ {
		if err := normBuilder.SetUnsafeStarter(c, true); err != nil {
			return nil, err
		}
	}

	return &BuildResult{Properties: propsBuilder, Normalization: normBuilder, Starters: starterPlan}, nil
}

func buildProperties(byCP map[rune]SourceRecord) *uprops.Builder {
	b := uprops.NewBuilder(1 << 20)

	keys := make([]rune, 0, len(byCP))
	for cp := range byCP {
		keys = append(keys, cp)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, cp := range keys {
		r := byCP[cp]
		needsException := r.HasUppercase || r.HasLowercase || r.HasTitlecase || r.HasDigit || r.HasNumeric

		if !needsException {
			var value int32
			if r.Category == uprops.Mn {
				value = int32(r.CombiningClass)
			}
			_ = b.SetSimple(cp, r.Category, r.Bidi, r.Mirrored, value)
			continue
		}

		rec := uprops.ExceptionRecord{CombiningClass: r.CombiningClass}
		if r.HasUppercase {
			v := uint32(r.Uppercase)
			rec.Uppercase = &v
		}
		if r.HasLowercase {
			v := uint32(r.Lowercase)
			rec.Lowercase = &v
		}
		if r.HasTitlecase {
			v := uint32(r.Titlecase)
			rec.Titlecase = &v
		}
		if r.HasDigit {
			v := uint32(r.DigitValue)
			rec.DigitValue = &v
		}
		if r.HasNumeric {
			v := uint32(r.NumeratorValue)
			rec.NumericValue = &v
			if r.DenominatorValue != 1 {
				d := uint32(r.DenominatorValue)
				rec.DenominatorValue = &d
			}
		}
		_ = b.SetException(cp, r.Category, r.Bidi, r.Mirrored, rec)
	}
	return b
}

// reorderAndCCs canonically reorders s in place (an insertion-style
// adjacent move matching store.c's reorderString) and returns its leading
// and trailing combining class, the "bothCCs" value spec.md §3.3 packs
// into the extra array and the FCD trie.
func reorderAndCCs(s []rune, ccOf func(rune) uint8) (leadCC, trailCC uint8) {
	if len(s) == 0 {
		return 0, 0
	}
	ccs := make([]uint8, len(s))
	for i, c := range s {
		cc := ccOf(c)
		if cc != 0 && i != 0 {
			j := i
			for j > 0 && ccs[j-1] > cc {
				s[j] = s[j-1]
				ccs[j] = ccs[j-1]
				j--
			}
			s[j] = c
			ccs[j] = cc
		} else {
			ccs[i] = cc
		}
	}
	return ccs[0], ccs[len(ccs)-1]
}
