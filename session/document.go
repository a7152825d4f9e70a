package session

import (
	"strings"

	"github.com/npillmayer/cipherkit"
	"github.com/npillmayer/cipherkit/pattern"
	"github.com/npillmayer/cipherkit/tabular"
	"github.com/npillmayer/cipherkit/undo"
)

// Undo tags of mergeable edits.
const (
	tagKeyword = "keyword"
	tagFind    = "find"
)

// Dictionaries provides pattern indexes by language code.
type Dictionaries interface {
	Index(code string) (*pattern.Index, bool)
}

// IndexMap is the simplest implementation of Dictionaries.
type IndexMap map[string]*pattern.Index

// Index returns the index for a language code.
func (m IndexMap) Index(code string) (*pattern.Index, bool) {
	ix, ok := m[code]
	return ix, ok && ix != nil
}

// Listener is called with the new state after every change.
type Listener func(State)

// Document is one cipher being edited.
type Document struct {
	state    State
	history  *undo.Stack[State]
	freq     cipherkit.FrequencyTable
	dicts    Dictionaries
	listener Listener
}

// NewDocument creates a document with an initial state. dicts may be nil.
func NewDocument(initial State, dicts Dictionaries) *Document {
	d := &Document{state: initial.Clone(), dicts: dicts}
	if d.state.Replacement == nil {
		d.state.Replacement = make(cipherkit.ReplacementMap)
	}
	if d.state.Locked == nil {
		d.state.Locked = make(map[string]bool)
	}
	d.history = undo.NewStack[State](d)
	return d
}

// OnChange installs a listener, replacing any previous one.
func (d *Document) OnChange(l Listener) {
	d.listener = l
}

// State returns a copy of the current state.
func (d *Document) State() State {
	return d.state.Clone()
}

// Save returns a snapshot of the state for the undo history.
func (d *Document) Save() State {
	return d.state.Clone()
}

// Restore replaces the state by a snapshot.
func (d *Document) Restore(s State) {
	d.state = s.Clone()
}

// Undo reverts the last edit.
func (d *Document) Undo() bool {
	if !d.history.Undo() {
		return false
	}
	d.changed()
	return true
}

// Redo reapplies the last undone edit.
func (d *Document) Redo() bool {
	if !d.history.Redo() {
		return false
	}
	d.changed()
	return true
}

// History gives access to the undo history.
func (d *Document) History() *undo.Stack[State] {
	return d.history
}

func (d *Document) changed() {
	if d.listener != nil {
		d.listener(d.state.Clone())
	}
}

// edit applies fn after saving the state for undo.
func (d *Document) edit(tag string, fn func(s *State)) {
	d.history.MarkUndo(tag)
	fn(&d.state)
	d.changed()
}

// SetMessage sets the message text.
func (d *Document) SetMessage(msg string) bool {
	if d.state.Message == msg {
		return false
	}
	d.edit("", func(s *State) { s.Message = msg })
	return true
}

// SetKeyword sets the key of tabular ciphers. Successive keyword edits merge
// into one undo step.
func (d *Document) SetKeyword(key string) bool {
	if d.state.Keyword == key {
		return false
	}
	d.edit(tagKeyword, func(s *State) { s.Keyword = key })
	return true
}

// SetFind sets the search string. Successive edits merge into one undo step.
func (d *Document) SetFind(find string) bool {
	if d.state.Find == find {
		return false
	}
	d.edit(tagFind, func(s *State) { s.Find = find })
	return true
}

// SetCipherType selects the cipher.
func (d *Document) SetCipherType(ct tabular.CipherType) bool {
	if d.state.CipherType == ct {
		return false
	}
	d.edit("", func(s *State) { s.CipherType = ct })
	return true
}

// SetOperation selects encoding or decoding.
func (d *Document) SetOperation(op Operation) bool {
	if d.state.Operation == op {
		return false
	}
	d.edit("", func(s *State) { s.Operation = op })
	return true
}

// SetBlockSize sets the block size for keyed ciphers, 0 for none.
func (d *Document) SetBlockSize(n int) bool {
	if n < 0 || d.state.BlockSize == n {
		return false
	}
	d.edit("", func(s *State) { s.BlockSize = n })
	return true
}

// SetLanguage switches to a built-in language. Unknown codes are rejected.
func (d *Document) SetLanguage(code string) bool {
	lang, ok := cipherkit.LookupLanguage(code)
	if !ok || d.state.Language == lang.Code {
		return false
	}
	d.edit("", func(s *State) { s.Language = lang.Code })
	return true
}

// SetReplacement maps a plain symbol to a cipher symbol, "" to clear it.
// Locked symbols cannot be changed, and neither can a mapping be stolen from
// a locked symbol.
func (d *Document) SetReplacement(plain, cipher string) bool {
	plain, cipher = strings.ToUpper(plain), strings.ToUpper(cipher)
	if d.state.Locked[plain] {
		return false
	}
	for p, c := range d.state.Replacement {
		if c == cipher && cipher != "" && p != plain && d.state.Locked[p] {
			return false
		}
	}
	next := d.state.Replacement.Clone()
	if !next.Set(plain, cipher) {
		return false
	}
	d.edit("", func(s *State) { s.Replacement = next })
	return true
}

// Lock fixes or releases the replacement of a plain symbol.
func (d *Document) Lock(plain string, locked bool) bool {
	plain = strings.ToUpper(plain)
	if d.state.Locked[plain] == locked {
		return false
	}
	d.edit("", func(s *State) {
		if locked {
			s.Locked[plain] = true
		} else {
			delete(s.Locked, plain)
		}
	})
	return true
}

// --- Derived results -------------------------------------------------------

func (d *Document) language() *cipherkit.Language {
	lang, ok := cipherkit.LookupLanguage(d.state.Language)
	if !ok {
		tracer().Errorf("unknown language %q", d.state.Language)
		return nil
	}
	return lang
}

// Lines renders the message into display lines and updates the frequency
// table of the cipher symbols.
func (d *Document) Lines(maxWidth int) []cipherkit.LineSegment {
	var lines []cipherkit.LineSegment
	if d.state.CipherType == Aristocrat {
		lines, d.freq = cipherkit.MakeReplacement(d.state.Message, d.language(), d.state.Replacement, maxWidth)
		return lines
	}
	m := tabular.ForCipher(d.state.CipherType)
	lines = cipherkit.EncodeKeyed(d.state.Message, d.state.Keyword, m, cipherkit.KeyedOptions{
		Decode:    d.state.Operation == Decode,
		MaxWidth:  maxWidth,
		BlockSize: d.state.BlockSize,
	})
	var cipher strings.Builder
	for _, l := range lines {
		cipher.WriteString(l.CipherText())
	}
	d.freq = cipherkit.Tally(cipher.String(), cipherkit.Latin)
	return lines
}

// Frequencies returns the frequency table of the last call to Lines.
func (d *Document) Frequencies() cipherkit.FrequencyTable {
	ft := make(cipherkit.FrequencyTable, len(d.freq))
	for k, v := range d.freq {
		ft[k] = v
	}
	return ft
}

// Analyze scores the plaintext of the message against the language profile.
// Lower is better; without a known language the score is 0.
func (d *Document) Analyze() float64 {
	lang := d.language()
	if lang == nil {
		return 0
	}
	var plain strings.Builder
	for _, l := range d.Lines(0) {
		plain.WriteString(l.PlainText())
	}
	return cipherkit.ChiSquareText(plain.String(), lang)
}

// CribScore scores a crib against the message volume of the last call to
// Lines. Only symbols occurring in the crib are scored.
func (d *Document) CribScore(crib string) float64 {
	lang := d.language()
	if lang == nil {
		return 0
	}
	match := cipherkit.Tally(crib, lang.AnalysisSet())
	for sym, n := range match {
		if n == 0 {
			delete(match, sym)
		}
	}
	return cipherkit.CribChiSquare(match, d.freq, lang.Profile)
}

// Matches lists dictionary words a cipher word may stand for, given the
// current replacement. Without a dictionary for the language there are none.
func (d *Document) Matches(cipherWord string) []pattern.Entry {
	if d.dicts == nil {
		return nil
	}
	ix, ok := d.dicts.Index(d.state.Language)
	if !ok {
		return nil
	}
	return ix.Matches(cipherWord, d.state.Replacement.Reverse())
}
