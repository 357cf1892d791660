package uprops

import "testing"

func TestEncodeDecodeSimpleRoundTrip(t *testing.T) {
	word := EncodeSimple(Lu, BidiL, false, 32)
	if decodeCategory(word) != Lu {
		t.Fatalf("category = %v, want Lu", decodeCategory(word))
	}
	if decodeBidi(word) != BidiL {
		t.Fatalf("bidi = %v, want BidiL", decodeBidi(word))
	}
	if isMirrored(word) {
		t.Fatal("mirrored = true, want false")
	}
	if got := decodeValue(word); got != 32 {
		t.Fatalf("value = %d, want 32", got)
	}
}

func TestDecodeValueSignExtends(t *testing.T) {
	word := EncodeSimple(Ll, BidiL, false, -32)
	if got := decodeValue(word); got != -32 {
		t.Fatalf("value = %d, want -32", got)
	}
}

func TestMirroredBit(t *testing.T) {
	word := EncodeSimple(Ps, BidiON, true, 0)
	if !isMirrored(word) {
		t.Fatal("mirrored = false, want true")
	}
}

func TestEncodeExceptionIndex(t *testing.T) {
	word := EncodeException(Lu, BidiL, false, 17)
	if !hasException(word) {
		t.Fatal("hasException = false, want true")
	}
	if got := exceptionIndex(word); got != 17 {
		t.Fatalf("exceptionIndex = %d, want 17", got)
	}
}

func TestCombiningClassField(t *testing.T) {
	word := EncodeSimple(Mn, BidiNSM, false, 230)
	if got := decodeCombiningClassField(word); got != 230 {
		t.Fatalf("combining class = %d, want 230", got)
	}
}

func TestCategoryPredicates(t *testing.T) {
	cases := []struct {
		cat              Category
		letter, mark, num, sep, punct, sym bool
	}{
		{Lu, true, false, false, false, false, false},
		{Mn, false, true, false, false, false, false},
		{Nd, false, false, true, false, false, false},
		{Zs, false, false, false, true, false, false},
		{Po, false, false, false, false, true, false},
		{Sm, false, false, false, false, false, true},
	}
	for _, c := range cases {
		if got := c.cat.IsLetter(); got != c.letter {
			t.Errorf("%v.IsLetter() = %v, want %v", c.cat, got, c.letter)
		}
		if got := c.cat.IsMark(); got != c.mark {
			t.Errorf("%v.IsMark() = %v, want %v", c.cat, got, c.mark)
		}
		if got := c.cat.IsNumber(); got != c.num {
			t.Errorf("%v.IsNumber() = %v, want %v", c.cat, got, c.num)
		}
		if got := c.cat.IsSeparator(); got != c.sep {
			t.Errorf("%v.IsSeparator() = %v, want %v", c.cat, got, c.sep)
		}
		if got := c.cat.IsPunctuation(); got != c.punct {
			t.Errorf("%v.IsPunctuation() = %v, want %v", c.cat, got, c.punct)
		}
		if got := c.cat.IsSymbol(); got != c.sym {
			t.Errorf("%v.IsSymbol() = %v, want %v", c.cat, got, c.sym)
		}
	}
}
