package session

import (
	"strings"
	"testing"

	"github.com/npillmayer/cipherkit"
	"github.com/npillmayer/cipherkit/pattern"
	"github.com/npillmayer/cipherkit/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLines(t *testing.T) {
	st := DefaultState()
	st.CipherType = tabular.Vigenere
	d := NewDocument(st, nil)
	require.True(t, d.SetMessage("Attack at dawn"))
	require.True(t, d.SetKeyword("LEMON"))
	lines := d.Lines(40)
	require.Len(t, lines, 1)
	assert.Equal(t, "LXFOPV EF RNHR", lines[0].CipherText())
	assert.Equal(t, "LEMONL EM ONLE", lines[0].KeyText())
	assert.Equal(t, 2, d.Frequencies()["R"])

	require.True(t, d.SetOperation(Decode))
	require.True(t, d.SetMessage("LXFOPV EF RNHR"))
	assert.Equal(t, "ATTACK AT DAWN", d.Lines(40)[0].PlainText())
}

func TestKeywordEditsMerge(t *testing.T) {
	st := DefaultState()
	st.CipherType = tabular.Beaufort
	d := NewDocument(st, nil)
	d.SetMessage("hello")
	for _, k := range []string{"K", "KE", "KEY"} {
		d.SetKeyword(k)
	}
	require.True(t, d.Undo())
	assert.Equal(t, "", d.State().Keyword, "undo should revert all keyword edits at once")
	assert.Equal(t, "hello", d.State().Message)
	require.True(t, d.Undo())
	assert.Equal(t, "", d.State().Message)
	assert.False(t, d.Undo())
	require.True(t, d.Redo())
	assert.Equal(t, "hello", d.State().Message)
}

func TestSetterReportsChange(t *testing.T) {
	d := NewDocument(DefaultState(), nil)
	assert.False(t, d.SetMessage(""))
	assert.False(t, d.SetLanguage("xx"))
	assert.False(t, d.SetLanguage("en"))
	assert.True(t, d.SetLanguage("DE"))
	assert.Equal(t, "de", d.State().Language)
	assert.False(t, d.SetBlockSize(-1))
	assert.True(t, d.SetBlockSize(5))
	assert.True(t, d.SetFind("ab"))
	assert.True(t, d.SetCipherType(tabular.Porta))
	assert.False(t, d.SetCipherType(tabular.Porta))
}

func TestReplacementAndLocks(t *testing.T) {
	d := NewDocument(DefaultState(), nil)
	d.SetMessage("Hello")
	require.True(t, d.SetReplacement("l", "x"))
	require.True(t, d.Lock("L", true))
	assert.False(t, d.SetReplacement("L", "Y"), "locked symbol must not change")
	assert.False(t, d.SetReplacement("E", "X"), "cipher symbol of a locked symbol must not move")
	assert.True(t, d.SetReplacement("E", "Q"))
	lines := d.Lines(0)
	require.Len(t, lines, 1)
	assert.Equal(t, "?QXX?", lines[0].CipherText())
	assert.Equal(t, "HELLO", lines[0].PlainText())

	require.True(t, d.Undo())
	_, ok := d.State().Replacement["E"]
	assert.False(t, ok)
	assert.True(t, d.State().Locked["L"])
}

func TestListenerSeesChanges(t *testing.T) {
	d := NewDocument(DefaultState(), nil)
	var seen []string
	d.OnChange(func(s State) { seen = append(seen, s.Message) })
	d.SetMessage("a")
	d.SetMessage("ab")
	d.SetMessage("ab")
	d.Undo()
	assert.Equal(t, []string{"a", "ab", "a"}, seen)
}

func TestStateSnapshotsAreDeep(t *testing.T) {
	d := NewDocument(DefaultState(), nil)
	d.SetReplacement("A", "B")
	st := d.State()
	st.Replacement["A"] = "Z"
	st.Locked["A"] = true
	assert.Equal(t, "B", d.State().Replacement["A"])
	assert.False(t, d.State().Locked["A"])
}

func TestHistoryFramesAreCopies(t *testing.T) {
	d := NewDocument(DefaultState(), nil)
	require.True(t, d.SetReplacement("A", "B"))
	require.True(t, d.SetReplacement("C", "D"))
	frames := d.History().Frames()
	require.GreaterOrEqual(t, len(frames), 2)
	frames[1].Replacement["A"] = "Z"
	require.True(t, d.Undo())
	assert.Equal(t, "B", d.State().Replacement["A"])
	assert.Empty(t, d.State().Replacement["C"])
}

func TestAnalyzeAndCrib(t *testing.T) {
	d := NewDocument(DefaultState(), nil)
	d.SetMessage(strings.Repeat("It was the best of times, it was the worst of times, "+
		"it was the age of wisdom, it was the age of foolishness, it was the epoch of belief, "+
		"it was the epoch of incredulity. ", 5))
	en := d.Analyze()
	d.SetLanguage("it")
	it := d.Analyze()
	assert.Less(t, en, it)
	d.SetLanguage("en")
	d.SetReplacement("T", "A")
	d.Lines(0)
	lang, _ := cipherkit.LookupLanguage("en")
	want := cipherkit.CribChiSquare(cipherkit.FrequencyTable{"T": 1}, d.Frequencies(), lang.Profile)
	assert.InDelta(t, want, d.CribScore("T"), 1e-9)
	assert.Greater(t, d.CribScore("T"), 0.0)
	padded := cipherkit.Tally("T", lang.AnalysisSet())
	assert.Less(t, d.CribScore("T"), cipherkit.CribChiSquare(padded, d.Frequencies(), lang.Profile),
		"symbols missing from the crib must not be scored")
	d.state.Language = "xx"
	assert.Equal(t, 0.0, d.Analyze())
	assert.Equal(t, 0.0, d.CribScore("T"))
}

func TestMatchesUseReplacement(t *testing.T) {
	en, _ := cipherkit.LookupLanguage("en")
	ix := pattern.NewIndex(en)
	for _, w := range []string{"been", "seen", "keen", "week"} {
		ix.Add(w, 0)
	}
	d := NewDocument(DefaultState(), IndexMap{"en": ix})
	d.SetReplacement("E", "Y")
	d.SetReplacement("N", "Z")
	var words []string
	for _, e := range d.Matches("XYYZ") {
		words = append(words, e.Word)
	}
	assert.Equal(t, []string{"BEEN", "SEEN", "KEEN"}, words)
	d.SetLanguage("de")
	assert.Empty(t, d.Matches("XYYZ"))
	assert.Empty(t, NewDocument(DefaultState(), nil).Matches("XYYZ"))
}
