/*
Package pattern computes word patterns and indexes dictionaries by them.

A word pattern records where a word repeats letters, independent of the
letters themselves: "LETTER" and "BETTER" both have pattern "012213",
"ABCABC" has pattern "012012". Cryptogram solvers look up cipher words by
pattern to find plaintext candidates.

Patterns may also be computed over groups of symbols, e.g. for ciphers that
encode a letter as a group of several cipher symbols:

	Make("..--X..X..X", 2)  =>  "012304"

The last group is padded with filler symbols 'X', so the input does not have
to be a multiple of the group width.
*/
package pattern

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cipherkit.pattern'
func tracer() tracing.Trace {
	return tracing.Select("cipherkit.pattern")
}

// Code is a word pattern: one base-36 digit (0–9, then A–Z) per group. A
// word with more than 36 distinct groups continues with multi-digit values.
type Code string

const filler = "X"

// Make computes the pattern of word over groups of width runes. A width of
// 0 or less is treated as 1.
func Make(word string, width int) Code {
	rs := []rune(word)
	symbols := make([]string, len(rs))
	for i, r := range rs {
		symbols[i] = string(r)
	}
	return MakeSymbols(symbols, width)
}

// MakeSymbols computes the pattern over groups of width symbols. Use it for
// words tokenized by a character set with digraphs.
func MakeSymbols(symbols []string, width int) Code {
	if width <= 0 {
		width = 1
	}
	if len(symbols) == 0 {
		return ""
	}
	seen := make(map[string]string)
	var b strings.Builder
	for i := 0; i < len(symbols); i += width {
		group := groupAt(symbols, i, width)
		d, ok := seen[group]
		if !ok {
			d = strings.ToUpper(strconv.FormatInt(int64(len(seen)), 36))
			seen[group] = d
		}
		b.WriteString(d)
	}
	return Code(b.String())
}

func groupAt(symbols []string, at, width int) string {
	var b strings.Builder
	for j := at; j < at+width; j++ {
		if j < len(symbols) {
			b.WriteString(symbols[j])
		} else {
			b.WriteString(filler)
		}
	}
	return b.String()
}
