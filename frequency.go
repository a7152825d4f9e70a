package cipherkit

import (
	"math"
	"sort"
)

// FrequencyTable counts occurrences of symbols.
type FrequencyTable map[string]int

// Tally counts the symbols of cs in text. Every symbol of cs is present in
// the result, with count 0 if it does not occur; other symbols are ignored.
func Tally(text string, cs CharacterSet) FrequencyTable {
	ft := make(FrequencyTable, cs.Len())
	for _, sym := range cs.symbols {
		ft[sym] = 0
	}
	for _, tok := range cs.Tokenize(text) {
		if tok.Member() {
			ft[tok.Text]++
		}
	}
	return ft
}

// Total returns the sum of all counts.
func (ft FrequencyTable) Total() int {
	n := 0
	for _, c := range ft {
		n += c
	}
	return n
}

// SymbolCount is one row of a sorted frequency table.
type SymbolCount struct {
	Symbol string
	Count  int
}

// Sorted lists the table by descending count. Ties are ordered by the
// position of the symbol in cs; symbols not in cs come last, alphabetically.
func (ft FrequencyTable) Sorted(cs CharacterSet) []SymbolCount {
	rows := make([]SymbolCount, 0, len(ft))
	for sym, n := range ft {
		rows = append(rows, SymbolCount{Symbol: sym, Count: n})
	}
	pos := func(sym string) int {
		if i := cs.Index(sym); i >= 0 {
			return i
		}
		return math.MaxInt
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		pi, pj := pos(rows[i].Symbol), pos(rows[j].Symbol)
		if pi != pj {
			return pi < pj
		}
		return rows[i].Symbol < rows[j].Symbol
	})
	return rows
}

func (ft FrequencyTable) sortedSymbols() []string {
	syms := make([]string, 0, len(ft))
	for sym := range ft {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

// ChiSquare scores observed frequencies against a language profile. Lower
// scores are a better fit. Symbols without a positive expected frequency
// are skipped; the total is taken over all observed symbols the profile
// knows about. An empty observation scores 0.
func ChiSquare(ft FrequencyTable, p Profile) float64 {
	score, _ := chiSquare(ft, p)
	return score
}

func chiSquare(ft FrequencyTable, p Profile) (float64, int) {
	total := 0
	for sym, n := range ft {
		if p.Has(sym) {
			total += n
		}
	}
	return chiSum(ft, total, p), total
}

// CribChiSquare scores the symbols of a partial match against a profile,
// using the total of the full message. This deliberately measures how well a
// crib hypothesis fills the volume of the whole message, so scores are not
// comparable to ChiSquare.
func CribChiSquare(match, full FrequencyTable, p Profile) float64 {
	return chiSum(match, full.Total(), p)
}

func chiSum(observed FrequencyTable, total int, p Profile) float64 {
	if total == 0 {
		return 0
	}
	var chi float64
	for _, sym := range observed.sortedSymbols() {
		e := p.Expected(sym)
		if e <= 0 {
			continue
		}
		expected := float64(total) * e
		d := float64(observed[sym]) - expected
		chi += d * d / expected
	}
	return chi
}

// ChiSquareText tallies text over the analysis set of lang and scores it
// against the language's profile. A nil language scores 0.
func ChiSquareText(text string, lang *Language) float64 {
	if lang == nil {
		return 0
	}
	return ChiSquare(Tally(text, lang.AnalysisSet()), lang.Profile)
}

// LanguageScore is the Chi-Square fit of a text for one language.
type LanguageScore struct {
	Language *Language
	Score    float64
}

// RankLanguages scores text against every language and sorts the results,
// best fit first. Languages none of whose symbols occur in text score +Inf.
func RankLanguages(text string, langs []*Language) []LanguageScore {
	scores := make([]LanguageScore, 0, len(langs))
	for _, l := range langs {
		if l == nil {
			continue
		}
		score, total := chiSquare(Tally(text, l.AnalysisSet()), l.Profile)
		if total == 0 {
			score = math.Inf(1)
		}
		scores = append(scores, LanguageScore{Language: l, Score: score})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score < scores[j].Score
	})
	return scores
}

// --- Periodic keys ---------------------------------------------------------

// IndexOfCoincidence returns the probability that two symbols drawn from the
// table without replacement are equal. Tables with fewer than two symbols
// yield 0.
func IndexOfCoincidence(ft FrequencyTable) float64 {
	n := ft.Total()
	if n < 2 {
		return 0
	}
	var sum float64
	for _, c := range ft {
		sum += float64(c) * float64(c-1)
	}
	return sum / (float64(n) * float64(n-1))
}

// ExpectedCoincidence is the index of coincidence of ideal text following the
// profile.
func (p Profile) ExpectedCoincidence() float64 {
	var sum float64
	for _, sym := range p.Symbols() {
		e := p.freq[sym]
		sum += e * e
	}
	return sum
}

// EstimateKeyLength guesses the period of a polyalphabetic key. The members
// of cs are split into columns for every candidate length 1…maxLen, and the
// length whose average column coincidence is closest to the profile's
// expected coincidence wins. Ties favor the shorter key. Texts shorter than
// two symbols yield 1.
func EstimateKeyLength(text string, cs CharacterSet, p Profile, maxLen int) int {
	symbols := members(text, cs)
	if maxLen > len(symbols)/2 {
		maxLen = len(symbols) / 2
	}
	target := p.ExpectedCoincidence()
	best, bestDist := 1, math.Inf(1)
	for length := 1; length <= maxLen; length++ {
		var avg float64
		for col := 0; col < length; col++ {
			ft := make(FrequencyTable)
			for i := col; i < len(symbols); i += length {
				ft[symbols[i]]++
			}
			avg += IndexOfCoincidence(ft)
		}
		avg /= float64(length)
		if d := math.Abs(avg - target); d < bestDist {
			best, bestDist = length, d
		}
	}
	tracer().Debugf("estimated key length %d (target IoC %.4f)", best, target)
	return best
}
