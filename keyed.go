package cipherkit

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/cipherkit/tabular"
)

// KeyedOptions configure EncodeKeyed.
type KeyedOptions struct {
	Decode    bool         // text is ciphertext, produce plaintext
	MaxWidth  int          // line width, <= 0 for a single line
	BlockSize int          // regroup symbols into blocks, if 0 < BlockSize < MaxWidth
	Charset   CharacterSet // symbols of the message, Latin if empty
}

// EncodeKeyed runs a message through a tabular cipher with a repeating key
// and breaks it into lines. Each line carries the key symbol used for every
// member symbol; other symbols are copied to all three lines.
//
// The key is upper-cased and reduced to the symbols the mapper accepts. An
// empty key is replaced by the mapper's neutral key symbol. The key advances
// once per member symbol of the message.
func EncodeKeyed(text, key string, m tabular.Mapper, opts KeyedOptions) []LineSegment {
	cs := opts.Charset
	if cs.Len() == 0 {
		cs = Latin
	}
	text = CleanString(text)
	if opts.BlockSize > 0 && opts.BlockSize < opts.MaxWidth {
		text = cs.Chunk(text, opts.BlockSize)
	}
	keys := NormalizeKey(key, m)
	sg := newSegmenter(opts.MaxWidth, true)
	i := 0
	for _, tok := range cs.Tokenize(text) {
		if !tok.Member() {
			sg.push(tok.Text, tok.Text, tok.Text, breaksAfter(tok))
			continue
		}
		k := keys[i%len(keys)]
		i++
		r, size := utf8.DecodeRuneInString(tok.Text)
		if size != len(tok.Text) {
			r = tabular.Invalid // digraphs have no place in the tables
		}
		if opts.Decode {
			sg.push(tok.Text, string(m.Decode(r, k)), string(k), false)
		} else {
			sg.push(string(m.Encode(r, k)), tok.Text, string(k), false)
		}
	}
	return sg.flush()
}

// NormalizeKey upper-cases key and keeps only symbols of the mapper's key
// alphabet. If nothing remains, the result is the neutral key symbol.
func NormalizeKey(key string, m tabular.Mapper) []rune {
	alphabet := m.KeyAlphabet()
	keys := make([]rune, 0, len(key))
	for _, r := range strings.ToUpper(key) {
		if strings.ContainsRune(alphabet, r) {
			keys = append(keys, r)
		}
	}
	if len(keys) == 0 {
		r, _ := utf8.DecodeRuneInString(alphabet)
		keys = append(keys, r)
	}
	return keys
}

// RecoverKey derives the key symbols from a ciphertext and a crib of known
// plaintext, aligned at the start. Positions where either text has a
// non-member symbol are skipped; unrecoverable positions yield
// tabular.Invalid.
func RecoverKey(ciphertext, plaintext string, m tabular.Mapper, cs CharacterSet) string {
	if cs.Len() == 0 {
		cs = Latin
	}
	c, p := members(ciphertext, cs), members(plaintext, cs)
	n := min(len(c), len(p))
	var b strings.Builder
	for i := 0; i < n; i++ {
		cr, _ := utf8.DecodeRuneInString(c[i])
		pr, _ := utf8.DecodeRuneInString(p[i])
		b.WriteRune(m.DecodeKey(cr, pr))
	}
	return b.String()
}

func members(text string, cs CharacterSet) []string {
	var syms []string
	for _, tok := range cs.Tokenize(text) {
		if tok.Member() {
			syms = append(syms, tok.Text)
		}
	}
	return syms
}
