package cipherkit

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/cipherkit/symtab"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Latin is the 26-letter alphabet A–Z.
var Latin = ParseCharacterSet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// CharacterSet is an ordered set of symbols valid for a language or cipher.
//
// A symbol is usually a single upper-case letter, but may be a digraph such
// as "IJ". Digraphs are atomic: they have one index, are counted once and
// are never split by the tokenizer. The zero value is an empty set.
type CharacterSet struct {
	symbols []string
	table   *symtab.Table
}

// NewCharacterSet creates a character set from a list of symbols. Symbols are
// upper-cased; duplicates and empty symbols are dropped.
func NewCharacterSet(symbols ...string) CharacterSet {
	b := symtab.NewBuilder()
	cs := CharacterSet{symbols: make([]string, 0, len(symbols))}
	for _, s := range symbols {
		s = norm.NFC.String(strings.ToUpper(s))
		if id := b.Add(s); id == len(cs.symbols) {
			cs.symbols = append(cs.symbols, s)
		}
	}
	cs.table = b.Freeze()
	return cs
}

// ParseCharacterSet creates a character set where each rune of alphabet is a
// symbol, followed by any digraphs.
func ParseCharacterSet(alphabet string, digraphs ...string) CharacterSet {
	alphabet = norm.NFC.String(alphabet)
	symbols := make([]string, 0, utf8.RuneCountInString(alphabet)+len(digraphs))
	for _, r := range alphabet {
		symbols = append(symbols, string(r))
	}
	return NewCharacterSet(append(symbols, digraphs...)...)
}

// With returns a new character set extended by extra symbols.
func (cs CharacterSet) With(extra ...string) CharacterSet {
	return NewCharacterSet(append(cs.Symbols(), extra...)...)
}

// Len returns the number of symbols.
func (cs CharacterSet) Len() int { return len(cs.symbols) }

// Symbols returns a copy of the symbols in order.
func (cs CharacterSet) Symbols() []string {
	s := make([]string, len(cs.symbols))
	copy(s, cs.symbols)
	return s
}

// Symbol returns the symbol at position i.
func (cs CharacterSet) Symbol(i int) string {
	assert(i >= 0 && i < len(cs.symbols), "character set index out of range")
	return cs.symbols[i]
}

// Index returns the position of a symbol (case-insensitive) or -1.
func (cs CharacterSet) Index(symbol string) int {
	id, ok := cs.table.Lookup(norm.NFC.String(strings.ToUpper(symbol)))
	if !ok {
		return -1
	}
	return id
}

// Contains reports whether symbol is part of the set.
func (cs CharacterSet) Contains(symbol string) bool {
	return cs.Index(symbol) >= 0
}

// String returns all symbols concatenated.
func (cs CharacterSet) String() string {
	return strings.Join(cs.symbols, "")
}

// Token is one unit of tokenized text: either a symbol of the character set
// or a single grapheme which is not.
type Token struct {
	Text  string // upper-cased text
	Index int    // position in the character set, -1 for non-members
}

// Member reports whether the token is a symbol of the character set.
func (t Token) Member() bool { return t.Index >= 0 }

// Tokenize splits text into tokens. Text is upper-cased and normalized to NFC
// first, then walked grapheme by grapheme, matching the longest symbol at
// each position.
func (cs CharacterSet) Tokenize(text string) []Token {
	text = norm.NFC.String(strings.ToUpper(text))
	clusters := graphemes(text)
	tokens := make([]Token, 0, len(clusters))
	for i := 0; i < len(clusters); {
		if id, n := cs.matchAt(clusters, i); id >= 0 {
			tokens = append(tokens, Token{Text: cs.symbols[id], Index: id})
			i += n
			continue
		}
		tokens = append(tokens, Token{Text: clusters[i], Index: -1})
		i++
	}
	return tokens
}

// matchAt collects single-rune clusters as long as they may still extend a
// symbol and returns the longest match. Clusters with combining marks never
// take part in a symbol.
func (cs CharacterSet) matchAt(clusters []string, at int) (id int, n int) {
	rs := make([]rune, 0, 2)
	for j := at; j < len(clusters); j++ {
		r, size := utf8.DecodeRuneInString(clusters[j])
		if size != len(clusters[j]) {
			break
		}
		rs = append(rs, r)
		if !cs.table.HasPrefix(rs) {
			rs = rs[:len(rs)-1]
			break
		}
	}
	return cs.table.Match(rs)
}

func graphemes(text string) []string {
	clusters := make([]string, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

// Minimize removes everything from text which is not a symbol of the set.
func (cs CharacterSet) Minimize(text string) string {
	var b strings.Builder
	for _, tok := range cs.Tokenize(text) {
		if tok.Member() {
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}

// Chunk keeps only the symbols of the set and inserts a single space after
// every size symbols. Fixed-block ciphers use it to hide word boundaries.
// A size <= 0 just minimizes.
func (cs CharacterSet) Chunk(text string, size int) string {
	var b strings.Builder
	n := 0
	for _, tok := range cs.Tokenize(text) {
		if !tok.Member() {
			continue
		}
		if size > 0 && n == size {
			b.WriteByte(' ')
			n = 0
		}
		b.WriteString(tok.Text)
		n++
	}
	return b.String()
}

var blanks = regexp.MustCompile("[\r\n ]+")

// CleanString replaces runs of line breaks and spaces by a single space.
func CleanString(text string) string {
	return blanks.ReplaceAllString(text, " ")
}
