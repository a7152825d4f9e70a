package cipherkit

import "strings"

// LineSegment is one display line of a message: the cipher line and the
// plain line, symbol by symbol. Both always have the same number of symbols.
// Key is only filled by keyed encoding and then has the same length, too.
type LineSegment struct {
	Cipher []string
	Plain  []string
	Key    []string
}

// Len returns the number of symbols on the line.
func (s LineSegment) Len() int { return len(s.Plain) }

// CipherText returns the cipher line as a string.
func (s LineSegment) CipherText() string { return strings.Join(s.Cipher, "") }

// PlainText returns the plain line as a string.
func (s LineSegment) PlainText() string { return strings.Join(s.Plain, "") }

// KeyText returns the key line as a string.
func (s LineSegment) KeyText() string { return strings.Join(s.Key, "") }

// SymbolFunc transforms a member token of a message.
type SymbolFunc func(tok Token) string

// Segment transforms tokens and breaks them into lines of at most maxWidth
// symbols. Member tokens are passed through fn; other tokens appear
// unchanged on both lines and allow a line break after them, except for the
// apostrophe. When a line is full it is cut after the last break position;
// a word longer than a line is cut hard. A maxWidth <= 0 yields one line.
func Segment(tokens []Token, fn SymbolFunc, maxWidth int) []LineSegment {
	sg := newSegmenter(maxWidth, false)
	for _, tok := range tokens {
		if tok.Member() {
			sg.push(fn(tok), tok.Text, "", false)
			continue
		}
		sg.push(tok.Text, tok.Text, "", breaksAfter(tok))
	}
	return sg.flush()
}

func breaksAfter(tok Token) bool {
	return tok.Text != "'"
}

// segmenter accumulates symbols into the current line and emits lines when
// they reach the maximum width.
type segmenter struct {
	maxWidth int
	keyed    bool
	cur      LineSegment
	split    int // break position in cur, -1 if none
	lines    []LineSegment
}

func newSegmenter(maxWidth int, keyed bool) *segmenter {
	return &segmenter{maxWidth: maxWidth, keyed: keyed, split: -1}
}

func (sg *segmenter) push(cipher, plain, key string, breakAfter bool) {
	sg.cur.Cipher = append(sg.cur.Cipher, cipher)
	sg.cur.Plain = append(sg.cur.Plain, plain)
	if sg.keyed {
		sg.cur.Key = append(sg.cur.Key, key)
	}
	if breakAfter {
		sg.split = len(sg.cur.Plain)
	}
	if sg.maxWidth > 0 && len(sg.cur.Plain) >= sg.maxWidth {
		sg.wrap()
	}
}

func (sg *segmenter) wrap() {
	if sg.split < 0 || sg.split >= len(sg.cur.Plain) {
		sg.lines = append(sg.lines, sg.cur)
		sg.cur = LineSegment{}
		sg.split = -1
		return
	}
	at := sg.split
	line := LineSegment{
		Cipher: sg.cur.Cipher[:at:at],
		Plain:  sg.cur.Plain[:at:at],
	}
	rest := LineSegment{
		Cipher: append([]string(nil), sg.cur.Cipher[at:]...),
		Plain:  append([]string(nil), sg.cur.Plain[at:]...),
	}
	if sg.keyed {
		line.Key = sg.cur.Key[:at:at]
		rest.Key = append([]string(nil), sg.cur.Key[at:]...)
	}
	sg.lines = append(sg.lines, line)
	sg.cur = rest
	sg.split = -1
}

func (sg *segmenter) flush() []LineSegment {
	if len(sg.cur.Plain) > 0 {
		sg.lines = append(sg.lines, sg.cur)
		sg.cur = LineSegment{}
	}
	sg.split = -1
	return sg.lines
}

// --- Monoalphabetic replacement --------------------------------------------

// MakeReplacement enciphers text with a replacement map and breaks it into
// lines. Symbols with diacritics are folded into the language's charset
// first. Members without a mapping appear as '?'. The returned frequency
// table counts the cipher symbols produced.
//
// A nil language yields no lines.
func MakeReplacement(text string, lang *Language, repl ReplacementMap, maxWidth int) ([]LineSegment, FrequencyTable) {
	if lang == nil {
		return nil, FrequencyTable{}
	}
	freq := make(FrequencyTable, lang.Charset.Len())
	for _, sym := range lang.Charset.symbols {
		freq[sym] = 0
	}
	tokens := lang.foldTokens(lang.Charset.Tokenize(CleanString(text)))
	lines := Segment(tokens, func(tok Token) string {
		c, ok := repl[tok.Text]
		if !ok || c == "" {
			return string(unmapped)
		}
		freq[c]++
		return c
	}, maxWidth)
	return lines, freq
}

const unmapped = '?'
