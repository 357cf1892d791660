package unorm

// QuickCheck implements spec.md §4.5.1: a linear scan that can often avoid
// a full normalize. NFD/NFKD have no MAYBE state in this design — a
// decomposition either exists or it doesn't — so their quick-check is
// derived from decomposition presence; NFC/NFKC read the tristate bits
// the trie record carries directly.
func (s *Store) QuickCheck(form Form, runes []rune) QuickCheckResult {
	if !s.Loaded() {
		return QCYes
	}

	result := QCYes
	var prevCC uint8
	for _, cp := range runes {
		cc := s.combiningClassOf(cp)
		if cc != 0 && cc < prevCC {
			return QCNo
		}
		prevCC = cc

		switch qc := s.formQuickCheck(form, cp); qc {
		case QCNo:
			return QCNo
		case QCMaybe:
			result = QCMaybe
		}
	}
	return result
}

func (s *Store) formQuickCheck(form Form, cp rune) QuickCheckResult {
	switch form {
	case NFC:
		return decodeNFCQuickCheck(s.word(cp))
	case NFKC:
		return decodeNFKCQuickCheck(s.word(cp))
	case NFD:
		if s.hasDecomposition(cp, false) {
			return QCNo
		}
		return QCYes
	case NFKD:
		if s.hasDecomposition(cp, true) {
			return QCNo
		}
		return QCYes
	default:
		return QCYes
	}
}

func (s *Store) hasDecomposition(cp rune, compatibility bool) bool {
	if IsHangulSyllable(cp) {
		return true
	}
	d, ok := s.decomposition(cp)
	if !ok {
		return false
	}
	if compatibility {
		return len(d.Compatibility) > 0 || len(d.Canonical) > 0
	}
	return len(d.Canonical) > 0
}

// IsNormalized reports whether runes is already in form f, per spec.md
// §6.2. MAYBE is resolved by actually normalizing and comparing, the way
// a MAYBE result always requires in a quick-check/normalize split API.
func (s *Store) IsNormalized(form Form, runes []rune) bool {
	switch s.QuickCheck(form, runes) {
	case QCYes:
		return true
	case QCNo:
		return false
	default:
		normalized, err := s.Normalize(form, runes)
		if err != nil {
			return false
		}
		return runesEqual(normalized, runes)
	}
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
