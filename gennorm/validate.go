package gennorm

import (
	"fmt"

	"github.com/icu4g/ucore/unorm"
)

// ValidationError reports one invariant violation (spec.md §3.4). The
// builder treats any of these as fatal, matching store.c's
// make32BitNorm checks, which call exit() on the equivalent conditions.
type ValidationError struct {
	CodePoint rune
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("U+%04X: %s", e.CodePoint, e.Message)
}

// validate checks spec.md §3.4's invariants across the ingested records
// and derived closure/combining data, returning every violation found
// rather than stopping at the first one.
func validate(records map[rune]SourceRecord, closed map[rune]ClosedDecomposition) []*ValidationError {
	var errs []*ValidationError

	for cp, rec := range records {
		cd, hasClosed := closed[cp]

		// Invariant: a non-empty decomposition implies a non-YES
		// quick-check flag for the matching form.
		if hasClosed && len(cd.Canonical) > 0 && rec.NFCQuickCheck == unorm.QCYes {
			errs = append(errs, &ValidationError{cp, "has a canonical decomposition but NFC quick-check is YES"})
		}
		if hasClosed && len(cd.Compatibility) > 0 && rec.NFKCQuickCheck == unorm.QCYes {
			errs = append(errs, &ValidationError{cp, "has a compatibility decomposition but NFKC quick-check is YES"})
		}

		// Invariant: a true NFC starter's canonical decomposition must
		// itself begin with a true starter.
		if rec.CombiningClass == 0 && rec.NFCQuickCheck == unorm.QCYes && hasClosed && len(cd.Canonical) > 0 {
			first := cd.Canonical[0]
			firstRec, ok := records[first]
			if (ok && firstRec.CombiningClass != 0) || (ok && firstRec.NFCQuickCheck != unorm.QCYes) {
				errs = append(errs, &ValidationError{cp, fmt.Sprintf(
					"true NFC starter's canonical decomposition does not begin with a true NFC starter (U+%04X)", first)})
			}
		}
		if rec.CombiningClass == 0 && rec.NFKCQuickCheck == unorm.QCYes && hasClosed && len(cd.Compatibility) > 0 {
			first := cd.Compatibility[0]
			firstRec, ok := records[first]
			if (ok && firstRec.CombiningClass != 0) || (ok && firstRec.NFKCQuickCheck != unorm.QCYes) {
				errs = append(errs, &ValidationError{cp, fmt.Sprintf(
					"true NFKC starter's compatibility decomposition does not begin with a true NFKC starter (U+%04X)", first)})
			}
		}

		// Invariant: Hangul syllables carry no explicit decomposition —
		// they are algorithmic only.
		if unorm.IsHangulSyllable(cp) && rec.hasDecomposition() {
			errs = append(errs, &ValidationError{cp, "Hangul syllable carries an explicit decomposition; must be algorithmic-only"})
		}
	}

	return errs
}
