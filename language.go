package cipherkit

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languageData []byte

// Profile maps symbols to their expected relative frequency in a language.
// Profiles are immutable once created.
type Profile struct {
	freq map[string]float64
}

// NewProfile creates a profile from a copy of freq.
func NewProfile(freq map[string]float64) Profile {
	p := Profile{freq: make(map[string]float64, len(freq))}
	for sym, f := range freq {
		p.freq[norm.NFC.String(strings.ToUpper(sym))] = f
	}
	return p
}

// Expected returns the expected relative frequency of a symbol, 0 if undefined.
func (p Profile) Expected(symbol string) float64 {
	return p.freq[symbol]
}

// Has reports whether the profile lists symbol at all, possibly with 0.
func (p Profile) Has(symbol string) bool {
	_, ok := p.freq[symbol]
	return ok
}

// Len returns the number of symbols in the profile.
func (p Profile) Len() int { return len(p.freq) }

// Symbols returns the profiled symbols in sorted order.
func (p Profile) Symbols() []string {
	syms := make([]string, 0, len(p.freq))
	for sym := range p.freq {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

// Language bundles everything the engine knows about one natural language.
type Language struct {
	Code       string
	Name       string
	Charset    CharacterSet // symbols used for enciphering and solving
	ACACharset CharacterSet // reduced set used by ACA-style puzzles
	Digraphs   []string     // letter groups counted as one symbol during analysis
	Profile    Profile

	fold     map[string]string
	acaFold  map[string]string
	analysis CharacterSet
}

// AnalysisSet is the charset extended by the language's digraphs. Frequency
// analysis uses it, so that profile digraphs are counted atomically.
func (l *Language) AnalysisSet() CharacterSet {
	if l == nil {
		return CharacterSet{}
	}
	return l.analysis
}

// Fold maps a word onto the language's charset, replacing symbols with
// diacritics by their plain counterparts. It returns false if a symbol can
// neither be found in the charset nor be folded into it.
func (l *Language) Fold(word string) (string, bool) {
	if l == nil {
		return "", false
	}
	return foldWord(word, l.Charset, l.fold)
}

// ACAFold is like Fold but targets the ACA charset.
func (l *Language) ACAFold(word string) (string, bool) {
	if l == nil {
		return "", false
	}
	return foldWord(word, l.ACACharset, l.acaFold)
}

func foldWord(word string, cs CharacterSet, fold map[string]string) (string, bool) {
	var b strings.Builder
	for _, tok := range cs.Tokenize(word) {
		if tok.Member() {
			b.WriteString(tok.Text)
			continue
		}
		r, ok := fold[tok.Text]
		if !ok {
			return "", false
		}
		b.WriteString(r)
	}
	return b.String(), true
}

// foldTokens replaces non-member tokens which have a fold entry by the
// tokens of their replacement. Other tokens are kept.
func (l *Language) foldTokens(tokens []Token) []Token {
	if len(l.fold) == 0 {
		return tokens
	}
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if r, ok := l.fold[tok.Text]; ok && !tok.Member() {
			out = append(out, l.Charset.Tokenize(r)...)
			continue
		}
		out = append(out, tok)
	}
	return out
}

func (l *Language) String() string {
	if l == nil {
		return "<no language>"
	}
	return fmt.Sprintf("%s (%s)", l.Name, l.Code)
}

// --- Loading ---------------------------------------------------------------

type languageSpec struct {
	Code        string             `yaml:"code"`
	Name        string             `yaml:"name"`
	Charset     string             `yaml:"charset"`
	ACACharset  string             `yaml:"acacharset"`
	Digraphs    []string           `yaml:"digraphs"`
	Fold        map[string]string  `yaml:"fold"`
	ACAFold     map[string]string  `yaml:"acafold"`
	Frequencies map[string]float64 `yaml:"frequencies"`
}

// ParseLanguages reads language definitions in the YAML format of the
// built-in data: a list of entries with code, name, charset, and optionally
// acacharset, digraphs, fold, acafold and frequencies.
func ParseLanguages(data []byte) ([]*Language, error) {
	var specs []languageSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("cannot parse language data: %w", err)
	}
	langs := make([]*Language, 0, len(specs))
	seen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		if spec.Code == "" || spec.Charset == "" {
			return nil, fmt.Errorf("language entry #%d: code and charset are required", i)
		}
		if seen[spec.Code] {
			return nil, fmt.Errorf("language %q defined twice", spec.Code)
		}
		seen[spec.Code] = true
		langs = append(langs, spec.language())
	}
	return langs, nil
}

func (spec languageSpec) language() *Language {
	lang := &Language{
		Code:     spec.Code,
		Name:     spec.Name,
		Charset:  ParseCharacterSet(spec.Charset),
		Digraphs: upperAll(spec.Digraphs),
		Profile:  NewProfile(spec.Frequencies),
		fold:     upperKeys(spec.Fold),
		acaFold:  upperKeys(spec.ACAFold),
	}
	if spec.ACACharset != "" {
		lang.ACACharset = ParseCharacterSet(spec.ACACharset)
	} else {
		lang.ACACharset = lang.Charset
	}
	lang.analysis = lang.Charset.With(lang.Digraphs...)
	return lang
}

func upperAll(s []string) []string {
	u := make([]string, len(s))
	for i, x := range s {
		u[i] = strings.ToUpper(x)
	}
	return u
}

func upperKeys(m map[string]string) map[string]string {
	u := make(map[string]string, len(m))
	for k, v := range m {
		u[norm.NFC.String(strings.ToUpper(k))] = strings.ToUpper(v)
	}
	return u
}

var builtin struct {
	once  sync.Once
	langs []*Language
}

// Languages returns the built-in languages in a fixed order, English first.
// The returned languages are shared and must not be modified.
func Languages() []*Language {
	builtin.once.Do(func() {
		langs, err := ParseLanguages(languageData)
		assert(err == nil, "built-in language data is corrupt")
		builtin.langs = langs
		tracer().Debugf("loaded %d built-in languages", len(langs))
	})
	l := make([]*Language, len(builtin.langs))
	copy(l, builtin.langs)
	return l
}

// LookupLanguage finds a built-in language by its code, e.g. "de".
func LookupLanguage(code string) (*Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range Languages() {
		if l.Code == code {
			return l, true
		}
	}
	return nil, false
}
