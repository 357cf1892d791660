package gennorm

import (
	"strings"
	"testing"

	"github.com/icu4g/ucore/uprops"
)

func TestParseUnicodeDataBasicRecord(t *testing.T) {
	const line = "00C5;LATIN CAPITAL LETTER A WITH RING ABOVE;Lu;0;L;00C5;;;;N;;;;00E5;\n"
	records, errs := ParseUnicodeData(strings.NewReader(line))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.CodePoint != 0x00C5 {
		t.Errorf("code point = %#x, want 0xC5", r.CodePoint)
	}
	if r.Category != uprops.Lu {
		t.Errorf("category = %v, want Lu", r.Category)
	}
	if !r.HasLowercase || r.Lowercase != 0x00E5 {
		t.Errorf("lowercase mapping = %v/%#x, want true/0xE5", r.HasLowercase, r.Lowercase)
	}
}

func TestParseUnicodeDataDecomposition(t *testing.T) {
	const line = "00C0;LATIN CAPITAL LETTER A WITH GRAVE;Lu;0;L;0041 0300;;;;N;;;;00E0;\n"
	records, errs := ParseUnicodeData(strings.NewReader(line))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	r := records[0]
	if r.DecompType != DecompCanonical {
		t.Fatalf("decomp type = %v, want DecompCanonical", r.DecompType)
	}
	want := []rune{0x0041, 0x0300}
	if len(r.Decomposition) != len(want) || r.Decomposition[0] != want[0] || r.Decomposition[1] != want[1] {
		t.Fatalf("decomposition = %v, want %v", r.Decomposition, want)
	}
}

func TestParseUnicodeDataCompatibilityTag(t *testing.T) {
	const line = "00A0;NO-BREAK SPACE;Zs;0;CS;<noBreak> 0020;;;;N;;;;;\n"
	records, errs := ParseUnicodeData(strings.NewReader(line))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	r := records[0]
	if r.DecompType != DecompCompatibility {
		t.Fatalf("decomp type = %v, want DecompCompatibility", r.DecompType)
	}
	if len(r.Decomposition) != 1 || r.Decomposition[0] != 0x0020 {
		t.Fatalf("decomposition = %v, want [0x20]", r.Decomposition)
	}
}

func TestParseUnicodeDataFractionalNumeric(t *testing.T) {
	const line = "2153;VULGAR FRACTION ONE THIRD;No;0;ON;;;;1/3;N;;;;;\n"
	records, errs := ParseUnicodeData(strings.NewReader(line))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	r := records[0]
	if !r.HasNumeric || r.NumeratorValue != 1 || r.DenominatorValue != 3 {
		t.Fatalf("numeric = %v %d/%d, want true 1/3", r.HasNumeric, r.NumeratorValue, r.DenominatorValue)
	}
}

func TestParseUnicodeDataSkipsBlankAndComment(t *testing.T) {
	const input = "# a comment\n\n0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;\n"
	records, errs := ParseUnicodeData(strings.NewReader(input))
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestParseUnicodeDataCollectsMalformedLines(t *testing.T) {
	const input = "ZZZZ;BAD CODEPOINT;Lu;0;L;;;;;N;;;;;\n0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;\n"
	records, errs := ParseUnicodeData(strings.NewReader(input))
	if !errs.HasErrors() {
		t.Fatal("expected an error for the malformed line")
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (the well-formed line)", len(records))
	}
	if errs.Errors[0].Line != 1 {
		t.Errorf("error line = %d, want 1", errs.Errors[0].Line)
	}
}

func TestParseNumericPlainInteger(t *testing.T) {
	num, den, err := parseNumeric("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 42 || den != 1 {
		t.Fatalf("got %d/%d, want 42/1", num, den)
	}
}
