package pattern

import (
	"strings"

	"github.com/npillmayer/cipherkit"
)

// Known lists, for every symbol of a cipher word, the plaintext symbol the
// solution already assigns to it, or "" if the cipher symbol is unsolved.
// The solution maps cipher symbols to plaintext symbols.
func Known(cipherWord string, solution cipherkit.ReplacementMap) []string {
	rs := []rune(strings.ToUpper(cipherWord))
	known := make([]string, len(rs))
	for i, r := range rs {
		known[i] = solution[string(r)]
	}
	return known
}

// IsConsistent checks a candidate plaintext word against what is known about
// a cipher word. Where a plaintext symbol is known, the candidate must have
// exactly this symbol. Everywhere else the candidate must not use a symbol
// which is already the solution of some other cipher symbol.
func IsConsistent(candidate string, known []string, used map[string]bool) bool {
	rs := []rune(strings.ToUpper(candidate))
	if len(rs) != len(known) {
		return false
	}
	for i, r := range rs {
		c := string(r)
		if known[i] != "" {
			if c != known[i] {
				return false
			}
		} else if used[c] {
			return false
		}
	}
	return true
}

// Matches returns the dictionary words a cipher word may stand for, given a
// partial solution, most common first. The solution maps cipher symbols to
// plaintext symbols.
func (ix *Index) Matches(cipherWord string, solution cipherkit.ReplacementMap) []Entry {
	cipherWord = strings.ToUpper(cipherWord)
	it := ix.Candidates(Make(cipherWord, 1))
	if it.Len() == 0 {
		return nil
	}
	known := Known(cipherWord, solution)
	used := make(map[string]bool, len(solution))
	for _, plain := range solution {
		used[plain] = true
	}
	var matches []Entry
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if IsConsistent(e.Word, known, used) {
			matches = append(matches, e)
		}
	}
	tracer().Debugf("%d of %d candidates match %s", len(matches), it.Len(), cipherWord)
	return matches
}
