package uprops

import "testing"

func TestDigitValueASCIIFallback(t *testing.T) {
	var s *Store // no data loaded; DigitValue still works off ASCII + Han tables
	if v := s.DigitValue('7', 10); v != 7 {
		t.Fatalf("DigitValue('7', 10) = %d, want 7", v)
	}
	if v := s.DigitValue('f', 16); v != 15 {
		t.Fatalf("DigitValue('f', 16) = %d, want 15", v)
	}
	if v := s.DigitValue('f', 10); v != -1 {
		t.Fatalf("DigitValue('f', 10) = %d, want -1 (out of radix)", v)
	}
}

func TestDigitValueHanNumerals(t *testing.T) {
	var s *Store
	if v := s.DigitValue(0x4E09, 10); v != 3 {
		t.Fatalf("DigitValue(U+4E09, 10) = %d, want 3", v)
	}
	if v := s.DigitValue(0x767E, 10); v != -1 {
		t.Fatalf("DigitValue(U+767E /*hundred*/, 10) = %d, want -1 (100 >= radix)", v)
	}
}

func TestForDigitRoundTrip(t *testing.T) {
	for radix := 2; radix <= 36; radix++ {
		for v := int32(0); v < int32(radix); v++ {
			cp := ForDigit(v, radix)
			var s *Store
			if got := s.DigitValue(cp, radix); got != v {
				t.Fatalf("radix %d: ForDigit(%d) = %q, DigitValue back = %d", radix, v, cp, got)
			}
		}
	}
}

func TestForDigitOutOfRange(t *testing.T) {
	if got := ForDigit(-1, 10); got != 0 {
		t.Fatalf("ForDigit(-1, 10) = %q, want 0", got)
	}
	if got := ForDigit(10, 10); got != 0 {
		t.Fatalf("ForDigit(10, 10) = %q, want 0", got)
	}
}
