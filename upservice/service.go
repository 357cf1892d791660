// Package upservice is a thin, stateless query layer over uprops.Store and
// unorm.Store, the way the teacher's service package wraps vm.VM for the
// TUI/GUI/API front ends — except the stores this package wraps are
// read-only after load, so there is no per-session mutable execution state
// to guard with a mutex.
package upservice

import (
	"fmt"

	"github.com/icu4g/ucore/unorm"
	"github.com/icu4g/ucore/uprops"
)

// Service answers property and normalization queries against one loaded
// pair of stores. A nil *uprops.Store or *unorm.Store is accepted; queries
// that need the missing store return a "no ... data loaded" error.
type Service struct {
	props *uprops.Store
	norm  *unorm.Store
}

// New wraps an already-loaded properties store and normalization store.
func New(props *uprops.Store, norm *unorm.Store) *Service {
	return &Service{props: props, norm: norm}
}

// CharInfo is the full per-code-point record the CLI and API surface.
type CharInfo struct {
	CodePoint      rune
	Category       string
	BidiClass      string
	Mirrored       bool
	CombiningClass uint8
	Uppercase      rune
	Lowercase      rune
	Titlecase      rune
	DigitValue     int32
	HasDigitValue  bool
}

// Char looks up the full property record for one code point.
func (s *Service) Char(cp rune) (CharInfo, error) {
	if s.props == nil {
		return CharInfo{}, fmt.Errorf("no properties data loaded")
	}
	cat, err := s.props.Category(cp)
	if err != nil {
		return CharInfo{}, err
	}
	bidi, err := s.props.BidiClass(cp)
	if err != nil {
		return CharInfo{}, err
	}
	mirrored, err := s.props.IsMirrored(cp)
	if err != nil {
		return CharInfo{}, err
	}

	info := CharInfo{
		CodePoint:      cp,
		Category:       cat.String(),
		BidiClass:      bidi.String(),
		Mirrored:       mirrored,
		CombiningClass: s.props.CombiningClass(cp),
		Uppercase:      s.props.ToUpperSimple(cp),
		Lowercase:      s.props.ToLowerSimple(cp),
		Titlecase:      s.props.ToTitleSimple(cp),
	}
	if dv := s.props.DigitValue(cp, 10); dv >= 0 {
		info.DigitValue, info.HasDigitValue = dv, true
	}
	return info, nil
}

// ParseForm maps an all-lowercase or all-uppercase form name ("nfc",
// "NFD", ...) to unorm.Form, the way a CLI flag or HTTP query parameter
// names one. Mixed-case names ("Nfc") are rejected.
func ParseForm(name string) (unorm.Form, error) {
	switch name {
	case "nfc", "NFC":
		return unorm.NFC, nil
	case "nfd", "NFD":
		return unorm.NFD, nil
	case "nfkc", "NFKC":
		return unorm.NFKC, nil
	case "nfkd", "NFKD":
		return unorm.NFKD, nil
	default:
		return 0, fmt.Errorf("unknown normalization form %q", name)
	}
}

// Normalize runs one of the four forms over text and returns the result.
func (s *Service) Normalize(form unorm.Form, text string) (string, error) {
	if s.norm == nil {
		return "", fmt.Errorf("no normalization data loaded")
	}
	runes, err := s.norm.Normalize(form, []rune(text))
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// QuickCheckResultName returns the string the CLI/API print for a tri-state
// quick-check verdict.
func QuickCheckResultName(r unorm.QuickCheckResult) string {
	switch r {
	case unorm.QCYes:
		return "yes"
	case unorm.QCNo:
		return "no"
	case unorm.QCMaybe:
		return "maybe"
	default:
		return "unknown"
	}
}

// QuickCheck runs the fast quick-check pass over text for one form.
func (s *Service) QuickCheck(form unorm.Form, text string) (string, error) {
	if s.norm == nil {
		return "", fmt.Errorf("no normalization data loaded")
	}
	return QuickCheckResultName(s.norm.QuickCheck(form, []rune(text))), nil
}

// IsNormalized reports whether text is already in the given form.
func (s *Service) IsNormalized(form unorm.Form, text string) (bool, error) {
	if s.norm == nil {
		return false, fmt.Errorf("no normalization data loaded")
	}
	return s.norm.IsNormalized(form, []rune(text)), nil
}
