package unorm

import "testing"

func TestDecomposeHangulLV(t *testing.T) {
	// U+AC00 (GA) = L(0x1100) + V(0x1161), no trailing consonant.
	got := DecomposeHangul(0xAC00)
	want := []rune{0x1100, 0x1161}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("DecomposeHangul(0xAC00) = %v, want %v", got, want)
	}
}

func TestDecomposeHangulLVT(t *testing.T) {
	// U+AC01 (GAG) = L + V + T(0x11A8).
	got := DecomposeHangul(0xAC01)
	want := []rune{0x1100, 0x1161, 0x11A8}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("DecomposeHangul(0xAC01) = %v, want %v", got, want)
	}
}

func TestComposeHangulRoundTrip(t *testing.T) {
	for s := rune(HangulSFirst); s <= HangulSFirst+50; s++ {
		parts := DecomposeHangul(s)
		lv, ok := ComposeHangulLV(parts[0], parts[1])
		if !ok {
			t.Fatalf("ComposeHangulLV(%U, %U) failed", parts[0], parts[1])
		}
		if len(parts) == 2 {
			if lv != s {
				t.Fatalf("round trip LV: got %U, want %U", lv, s)
			}
			continue
		}
		full, ok := ComposeHangulLVT(lv, parts[2])
		if !ok || full != s {
			t.Fatalf("round trip LVT: got %U ok=%v, want %U", full, ok, s)
		}
	}
}

func TestIsHangulSyllableBounds(t *testing.T) {
	if !IsHangulSyllable(0xAC00) || !IsHangulSyllable(0xD7A3) {
		t.Fatal("boundary syllables misclassified")
	}
	if IsHangulSyllable(0xAC00 - 1) {
		t.Fatal("U+ABFF must not classify as a syllable")
	}
}
