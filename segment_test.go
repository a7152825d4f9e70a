package cipherkit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/cipherkit/tabular"
)

func identity(tok Token) string { return tok.Text }

func plainLines(lines []LineSegment) []string {
	s := make([]string, len(lines))
	for i, l := range lines {
		s[i] = l.PlainText()
	}
	return s
}

func TestSegmentBreaksAtWordBoundaries(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"THE QUICK BROWN FOX", 10, []string{"THE QUICK ", "BROWN FOX"}},
		{"THE QUICK BROWN FOX", 8, []string{"THE ", "QUICK ", "BROWN ", "FOX"}},
		{"ABCDEFGHIJ", 4, []string{"ABCD", "EFGH", "IJ"}},
		// the break position is forgotten after a cut
		{"AB CDEFGHIJ", 4, []string{"AB ", "CDEF", "GHIJ"}},
		// no break after an apostrophe
		{"AB C'DE", 6, []string{"AB ", "C'DE"}},
		{"THE QUICK BROWN FOX", 0, []string{"THE QUICK BROWN FOX"}},
		{"", 10, []string{}},
	}
	for _, tt := range tests {
		lines := Segment(Latin.Tokenize(tt.text), identity, tt.width)
		if diff := cmp.Diff(tt.want, plainLines(lines)); diff != "" {
			t.Fatalf("Segment(%q, %d) mismatch (-want +got):\n%s", tt.text, tt.width, diff)
		}
	}
}

func TestSegmentLinesKeepShape(t *testing.T) {
	shift := func(tok Token) string {
		return string(tabular.VigenereMapper{}.Encode([]rune(tok.Text)[0], 'B'))
	}
	texts := []string{
		"Attack at dawn, they said; nobody came.",
		"It's a long way to Tipperary",
		"Supercalifragilisticexpialidocious is long",
		"a b c d e f g",
	}
	for _, text := range texts {
		tokens := Latin.Tokenize(text)
		var want strings.Builder
		for _, tok := range tokens {
			if tok.Member() {
				want.WriteString(shift(tok))
			} else {
				want.WriteString(tok.Text)
			}
		}
		for width := 1; width <= 20; width++ {
			var got strings.Builder
			for _, l := range Segment(tokens, shift, width) {
				if len(l.Cipher) != len(l.Plain) || l.Len() > width || l.Len() == 0 {
					t.Fatalf("%q/%d: bad line shape %d/%d", text, width, len(l.Cipher), len(l.Plain))
				}
				got.WriteString(l.CipherText())
			}
			if got.String() != want.String() {
				t.Fatalf("%q/%d: got %q, want %q", text, width, got.String(), want.String())
			}
		}
	}
}

func TestMakeReplacement(t *testing.T) {
	fr, _ := LookupLanguage("fr")
	repl := ReplacementMap{"E": "X", "T": "Y", "A": "Q"}
	lines, freq := MakeReplacement("Été à\nParis", fr, repl, 0)
	if len(lines) != 1 {
		t.Fatalf("expected one line, have %d", len(lines))
	}
	if lines[0].PlainText() != "ETE A PARIS" || lines[0].CipherText() != "XYX Q ?Q???" {
		t.Fatalf("unexpected line %q / %q", lines[0].PlainText(), lines[0].CipherText())
	}
	if freq["X"] != 2 || freq["Q"] != 2 || freq["Y"] != 1 || freq.Total() != 5 || len(freq) != 26 {
		t.Fatalf("unexpected frequencies %v", freq)
	}
	if lines, freq := MakeReplacement("abc", nil, repl, 10); lines != nil || len(freq) != 0 {
		t.Fatalf("nil language should produce nothing")
	}
}

func TestReplacementMapStaysInjective(t *testing.T) {
	m := make(ReplacementMap)
	if !m.Set("a", "q") || m["A"] != "Q" {
		t.Fatalf("Set a=q failed: %v", m)
	}
	if !m.Set("B", "Q") {
		t.Fatalf("Set B=Q should change the map")
	}
	if _, ok := m["A"]; ok || m["B"] != "Q" {
		t.Fatalf("A should have lost Q: %v", m)
	}
	if m.Set("B", "Q") {
		t.Fatalf("repeated Set should not change the map")
	}
	if !m.Set("B", "") || len(m) != 0 || m.Set("B", "") {
		t.Fatalf("clearing B failed: %v", m)
	}
	p := ParseReplacementMap("a=q, b = x,junk,c=q")
	if p.String() != "B=X,C=Q" {
		t.Fatalf("ParseReplacementMap: got %q", p.String())
	}
	if r := p.Reverse(); r["Q"] != "C" || !p.Used()["X"] {
		t.Fatalf("unexpected reverse %v", r)
	}
	c := p.Clone()
	c.Set("D", "Z")
	if len(p) != 2 {
		t.Fatalf("clone is not independent")
	}
}

func TestEncodeKeyedTextbookVector(t *testing.T) {
	lines := EncodeKeyed("ATTACKATDAWN", "lemon", tabular.ForCipher(tabular.Vigenere), KeyedOptions{MaxWidth: 40})
	if len(lines) != 1 {
		t.Fatalf("expected one line, have %d", len(lines))
	}
	l := lines[0]
	if l.CipherText() != "LXFOPVEFRNHR" || l.KeyText() != "LEMONLEMONLE" || l.PlainText() != "ATTACKATDAWN" {
		t.Fatalf("unexpected line %q / %q / %q", l.CipherText(), l.KeyText(), l.PlainText())
	}
}

func TestEncodeKeyed(t *testing.T) {
	vig := tabular.VigenereMapper{}
	tests := []struct {
		name   string
		text   string
		key    string
		m      tabular.Mapper
		opts   KeyedOptions
		cipher string
		keys   string
	}{
		{"empty key", "Hello", "", vig, KeyedOptions{}, "HELLO", "AAAAA"},
		{"junk key", "Hello", "!?", vig, KeyedOptions{}, "HELLO", "AAAAA"},
		{"filtered key", "ATTACKATDAWN", "L-E M0ON", vig, KeyedOptions{}, "LXFOPVEFRNHR", "LEMONLEMONLE"},
		{"key skips spaces", "AB CD", "BC", vig, KeyedOptions{}, "BD DF", "BC BC"},
		{"gronsfeld", "attack", "31415", tabular.GronsfeldMapper{}, KeyedOptions{}, "DUXBHN", "314153"},
		{"gronsfeld letters", "ab", "xy", tabular.GronsfeldMapper{}, KeyedOptions{}, "AB", "00"},
		{"blocks", "attack at dawn", "A", vig, KeyedOptions{MaxWidth: 40, BlockSize: 5}, "ATTAC KATDA WN", "AAAAA AAAAA AA"},
		{"no blocks", "attack at dawn", "A", vig, KeyedOptions{BlockSize: 5}, "ATTACK AT DAWN", "AAAAAA AA AAAA"},
	}
	for _, tt := range tests {
		lines := EncodeKeyed(tt.text, tt.key, tt.m, tt.opts)
		if len(lines) != 1 {
			t.Fatalf("%s: expected one line, have %d", tt.name, len(lines))
		}
		if lines[0].CipherText() != tt.cipher || lines[0].KeyText() != tt.keys {
			t.Fatalf("%s: got %q/%q, want %q/%q", tt.name,
				lines[0].CipherText(), lines[0].KeyText(), tt.cipher, tt.keys)
		}
	}
}

func TestEncodeKeyedKeepsApostrophes(t *testing.T) {
	lines := EncodeKeyed("AB C'DE", "B", tabular.ForCipher(tabular.Vigenere), KeyedOptions{MaxWidth: 6})
	var got [][3]string
	for _, l := range lines {
		got = append(got, [3]string{l.KeyText(), l.PlainText(), l.CipherText()})
	}
	want := [][3]string{
		{"BB ", "AB ", "BC "},
		{"B'BB", "C'DE", "D'EF"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("keyed lines mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeKeyedRoundTrip(t *testing.T) {
	text := "Meet me at the old bridge, at midnight; come alone."
	for _, ct := range tabular.CipherTypes() {
		m := tabular.ForCipher(ct)
		key := "PUZZLE"
		if ct == tabular.Gronsfeld {
			key = "2718"
		}
		enc := EncodeKeyed(text, key, m, KeyedOptions{MaxWidth: 12})
		var cipher, plain strings.Builder
		for _, l := range enc {
			if len(l.Key) != len(l.Plain) {
				t.Fatalf("%s: key line has wrong length", ct)
			}
			cipher.WriteString(l.CipherText())
			plain.WriteString(l.PlainText())
		}
		dec := EncodeKeyed(cipher.String(), key, m, KeyedOptions{Decode: true, MaxWidth: 12})
		var back strings.Builder
		for _, l := range dec {
			back.WriteString(l.PlainText())
		}
		if back.String() != plain.String() {
			t.Fatalf("%s: round trip failed: %q", ct, back.String())
		}
		if len(enc) < 4 {
			t.Fatalf("%s: expected the message to wrap, have %d lines", ct, len(enc))
		}
	}
}

func TestRecoverKey(t *testing.T) {
	if k := RecoverKey("LXFOP VEFRN", "attack at", tabular.VigenereMapper{}, CharacterSet{}); k != "LEMONLEM" {
		t.Fatalf("recovered key %q", k)
	}
}
