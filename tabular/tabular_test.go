package tabular

import (
	"strings"
	"testing"
)

func TestVariantVectors(t *testing.T) {
	m := VariantMapper{}
	tests := []struct {
		name string
		fn   func(a, b rune) rune
		a, b rune
		want rune
	}{
		{"enc aa", m.Encode, 'a', 'a', 'A'},
		{"enc _a", m.Encode, '_', 'a', Invalid},
		{"enc lo", m.Encode, 'l', 'o', 'X'},
		{"enc Zz", m.Encode, 'Z', 'z', 'A'},
		{"enc Yb", m.Encode, 'Y', 'b', 'X'},
		{"dec aa", m.Decode, 'a', 'a', 'A'},
		{"dec _a", m.Decode, '_', 'a', Invalid},
		{"dec lo", m.Decode, 'l', 'o', 'Z'},
		{"dec Zz", m.Decode, 'Z', 'z', 'Y'},
		{"dec Yb", m.Decode, 'Y', 'b', 'Z'},
		{"key aa", m.DecodeKey, 'a', 'a', 'A'},
		{"key _a", m.DecodeKey, '_', 'a', Invalid},
		{"key lo", m.DecodeKey, 'l', 'o', 'D'},
		{"key Zz", m.DecodeKey, 'Z', 'z', 'A'},
		{"key Yb", m.DecodeKey, 'Y', 'b', 'D'},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.a, tt.b); got != tt.want {
			t.Fatalf("%s: got %c, want %c", tt.name, got, tt.want)
		}
	}
}

func TestVigenereTextbookVector(t *testing.T) {
	m := VigenereMapper{}
	plain, key, want := "ATTACKATDAWN", "LEMONLEMONLE", "LXFOPVEFRNHR"
	for i := range plain {
		if c := m.Encode(rune(plain[i]), rune(key[i])); c != rune(want[i]) {
			t.Fatalf("position %d: got %c, want %c", i, c, want[i])
		}
	}
}

// Round trip laws hold for every variant and every pair of letters.
// Porta and Portax keys come in pairs, so DecodeKey returns the first
// letter of the pair.
func TestRoundTripLaws(t *testing.T) {
	for _, ct := range CipherTypes() {
		m := ForCipher(ct)
		keys := m.KeyAlphabet()
		for p := 'A'; p <= 'Z'; p++ {
			for _, k := range keys {
				c := m.Encode(p, k)
				if c == Invalid {
					t.Fatalf("%s: Encode(%c,%c) is invalid", ct, p, k)
				}
				if got := m.Decode(c, k); got != p {
					t.Fatalf("%s: Decode(Encode(%c,%c)) = %c", ct, p, k, got)
				}
				wantKey := k
				if ct == Porta || ct == Portax {
					wantKey = 'A' + (k-'A')/2*2
				}
				if got := m.DecodeKey(c, p); got != wantKey {
					t.Fatalf("%s: DecodeKey(%c,%c) = %c, want %c", ct, c, p, got, wantKey)
				}
			}
		}
	}
}

func TestInvalidSymbols(t *testing.T) {
	for _, ct := range CipherTypes() {
		m := ForCipher(ct)
		key := rune(m.KeyAlphabet()[1])
		for _, bad := range []rune{' ', '1', '.', 'Ä', '\''} {
			if ct == Gronsfeld && bad == '1' {
				continue
			}
			if got := m.Encode(bad, key); got != Invalid {
				t.Fatalf("%s: Encode(%q) should be invalid, is %c", ct, bad, got)
			}
			if got := m.Encode('A', bad); got != Invalid {
				t.Fatalf("%s: Encode with key %q should be invalid, is %c", ct, bad, got)
			}
			if got := m.DecodeKey(bad, 'A'); got != Invalid {
				t.Fatalf("%s: DecodeKey(%q) should be invalid, is %c", ct, bad, got)
			}
		}
	}
}

func TestBeaufortEncodeEqualsDecode(t *testing.T) {
	m := BeaufortMapper{}
	for p := 'A'; p <= 'Z'; p++ {
		for k := 'A'; k <= 'Z'; k++ {
			if m.Encode(p, k) != m.Decode(p, k) {
				t.Fatalf("Beaufort encode and decode differ for %c,%c", p, k)
			}
			if m.Encode(m.Encode(p, k), k) != p {
				t.Fatalf("Beaufort is not an involution for %c,%c", p, k)
			}
		}
	}
}

func TestGronsfeldKeys(t *testing.T) {
	m := GronsfeldMapper{}
	if c := m.Encode('A', '3'); c != 'D' {
		t.Fatalf("A+3 should be D, is %c", c)
	}
	if c := m.Encode('Y', '5'); c != 'D' {
		t.Fatalf("Y+5 should wrap to D, is %c", c)
	}
	if k := m.DecodeKey('P', 'A'); k != Invalid {
		t.Fatalf("shift 15 has no Gronsfeld key, got %c", k)
	}
	if c := m.Encode('A', 'B'); c != Invalid {
		t.Fatalf("letter keys are invalid for Gronsfeld, got %c", c)
	}
}

func TestPortaTable(t *testing.T) {
	// Rows of the published Porta table for plaintext A–M.
	rows := map[rune]string{
		'A': "NOPQRSTUVWXYZ",
		'C': "ZNOPQRSTUVWXY",
		'E': "YZNOPQRSTUVWX",
		'Y': "OPQRSTUVWXYZN",
	}
	m := PortaMapper{}
	for key, row := range rows {
		for i, want := range row {
			p := rune('A' + i)
			if got := m.Encode(p, key); got != want {
				t.Fatalf("Porta key %c: %c → %c, want %c", key, p, got, want)
			}
			if got := m.Encode(want, key+1); got != p {
				t.Fatalf("Porta key %c: %c → %c, want %c (reciprocal)", key+1, want, got, p)
			}
		}
	}
	if k := m.DecodeKey('B', 'A'); k != Invalid {
		t.Fatalf("letters of the same half are never paired, got key %c", k)
	}
}

func TestPortaxIsReciprocal(t *testing.T) {
	m := PortaxMapper{}
	for k := 'A'; k <= 'Z'; k++ {
		for p := 'A'; p <= 'Z'; p++ {
			if m.Encode(m.Encode(p, k), k) != p {
				t.Fatalf("Portax not reciprocal for %c,%c", p, k)
			}
		}
	}
}

func TestPortaxSlide(t *testing.T) {
	// On the Portax slide the N–Z strip moves one place to the left for
	// every key pair, so the pair names the strip's first letter:
	// AB starts at N, CD at O, ..., YZ at Z.
	rows := map[rune]string{
		'A': "NOPQRSTUVWXYZ",
		'D': "OPQRSTUVWXYZN",
		'K': "STUVWXYZNOPQR",
		'Y': "ZNOPQRSTUVWXY",
	}
	m := PortaxMapper{}
	for key, row := range rows {
		for i, want := range row {
			p := rune('A' + i)
			if got := m.Encode(p, key); got != want {
				t.Fatalf("Portax key %c: %c → %c, want %c", key, p, got, want)
			}
		}
	}
	tests := []struct {
		key, plain, cipher string
	}{
		{"C", "HELLO", "VSZZA"},
		{"AB", "NOON", "ABBA"},
	}
	for _, tt := range tests {
		var b strings.Builder
		for i, p := range tt.plain {
			k := rune(tt.key[i%len(tt.key)])
			b.WriteRune(m.Encode(p, k))
		}
		if b.String() != tt.cipher {
			t.Fatalf("Portax %s with key %s: %s, want %s", tt.plain, tt.key, b.String(), tt.cipher)
		}
	}
	if k := m.DecodeKey('O', 'A'); k != 'C' {
		t.Fatalf("A → O belongs to key pair CD, got %c", k)
	}
}

func TestForCipherDefaultsToVigenere(t *testing.T) {
	if _, ok := ForCipher(CipherType("caesar")).(VigenereMapper); !ok {
		t.Fatalf("unknown cipher type should yield Vigenère")
	}
	ct, ok := ParseCipherType(" Beaufort ")
	if !ok || ct != Beaufort {
		t.Fatalf("expected beaufort, got %q (%v)", ct, ok)
	}
	if ct, ok = ParseCipherType("rot13"); ok || ct != Vigenere {
		t.Fatalf("unknown name should map to vigenere/false, got %q (%v)", ct, ok)
	}
}
