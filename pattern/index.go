package pattern

import (
	"fmt"
	"io"
	"sort"

	"github.com/derekparker/trie"
	"github.com/npillmayer/cipherkit"
)

// Entry is a dictionary word found under a pattern.
type Entry struct {
	Word  string // folded and upper-cased
	Rank  int    // position in the source word list, 0 is the most common
	Count int    // occurrence count given by the word list, 0 if unknown
	Tier  int    // commonness tier, see TierFor
}

// TierFor buckets a word list position into one of five tiers of
// commonness: 0–499, 500–999, 1000–1999, 2000–4999 and everything after.
func TierFor(rank int) int {
	switch {
	case rank < 500:
		return 0
	case rank < 1000:
		return 1
	case rank < 2000:
		return 2
	case rank < 5000:
		return 3
	}
	return 4
}

// WordReader yields word list entries one by one, most common first.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (word string, count int, err error)
}

// Index is a dictionary of one language, keyed by word pattern. Within a
// pattern, entries are ordered by rank.
//
// An Index is not safe for concurrent modification; once loaded it may be
// queried concurrently.
type Index struct {
	lang      *cipherkit.Language
	patterns  *trie.Trie // Code → *bucket
	words     map[string]Entry
	next      int // rank of the next word added
	discarded int
}

type bucket struct {
	entries []Entry
}

// NewIndex creates an empty index for a language.
func NewIndex(lang *cipherkit.Language) *Index {
	return &Index{
		lang:     lang,
		patterns: trie.New(),
		words:    make(map[string]Entry),
	}
}

// Language returns the language of the index.
func (ix *Index) Language() *cipherkit.Language {
	if ix == nil {
		return nil
	}
	return ix.lang
}

// Add appends a word with the next rank. Words are folded into the
// language's charset first; words which cannot be folded are discarded, as
// are repeated words. Discarded words still use up a rank. Add reports
// whether the word has been indexed.
func (ix *Index) Add(word string, count int) bool {
	rank := ix.next
	ix.next++
	if ix.lang == nil {
		ix.discarded++
		return false
	}
	folded, ok := ix.lang.Fold(word)
	if !ok || folded == "" {
		ix.discarded++
		return false
	}
	if _, dup := ix.words[folded]; dup {
		ix.discarded++
		return false
	}
	e := Entry{Word: folded, Rank: rank, Count: count, Tier: TierFor(rank)}
	ix.words[folded] = e
	code := Make(folded, 1)
	if node, found := ix.patterns.Find(string(code)); found {
		b := node.Meta().(*bucket)
		b.entries = append(b.entries, e)
		return true
	}
	ix.patterns.Add(string(code), &bucket{entries: []Entry{e}})
	return true
}

// Load adds all words of a word list.
func (ix *Index) Load(reader WordReader) (err error) {
	var word string
	var count int
	for {
		word, count, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading word #%d: %w", ix.next, err)
		}
		ix.Add(word, count)
	}
	tracer().Infof("index %s: %d words, %d patterns, %d discarded",
		ix.lang, len(ix.words), len(ix.patterns.Keys()), ix.discarded)
	return nil
}

// Len returns the number of indexed words.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.words)
}

// Discarded returns the number of words rejected by Add.
func (ix *Index) Discarded() int {
	if ix == nil {
		return 0
	}
	return ix.discarded
}

// Lookup finds the entry for a word, which is folded first.
func (ix *Index) Lookup(word string) (Entry, bool) {
	if ix == nil || ix.lang == nil {
		return Entry{}, false
	}
	folded, ok := ix.lang.Fold(word)
	if !ok {
		return Entry{}, false
	}
	e, ok := ix.words[folded]
	return e, ok
}

// Candidates returns an iterator over the words with pattern code, most
// common first.
func (ix *Index) Candidates(code Code) *Iterator {
	return &Iterator{entries: ix.bucket(code)}
}

func (ix *Index) bucket(code Code) []Entry {
	if ix == nil || code == "" {
		return nil
	}
	node, found := ix.patterns.Find(string(code))
	if !found {
		return nil
	}
	return node.Meta().(*bucket).entries
}

// Patterns returns all pattern codes of the index in sorted order.
func (ix *Index) Patterns() []Code {
	return ix.PatternsWithPrefix("")
}

// PatternsWithPrefix returns the pattern codes starting with prefix, sorted.
// Solvers use it to find words beginning with a known fragment.
func (ix *Index) PatternsWithPrefix(prefix Code) []Code {
	if ix == nil {
		return nil
	}
	keys := ix.patterns.PrefixSearch(string(prefix))
	codes := make([]Code, len(keys))
	for i, k := range keys {
		codes[i] = Code(k)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Iterator walks the entries of a pattern lazily.
type Iterator struct {
	entries []Entry
	pos     int
}

// Next returns the next entry, or false if the iterator is exhausted.
func (it *Iterator) Next() (Entry, bool) {
	if it.pos >= len(it.entries) {
		return Entry{}, false
	}
	e := it.entries[it.pos]
	it.pos++
	return e, true
}

// Reset restarts the iteration.
func (it *Iterator) Reset() { it.pos = 0 }

// Len returns the total number of entries, regardless of the position.
func (it *Iterator) Len() int { return len(it.entries) }
