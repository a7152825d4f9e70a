// Package session holds the editable state of one cipher, the way an editor
// embeds the cipher engine: setters that report changes, an undo history over
// full snapshots, and derived results like display lines and scores.
package session

import (
	"github.com/npillmayer/cipherkit"
	"github.com/npillmayer/cipherkit/tabular"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cipherkit.session'
func tracer() tracing.Trace {
	return tracing.Select("cipherkit.session")
}

// Aristocrat selects monoalphabetic replacement instead of a tabular cipher.
const Aristocrat tabular.CipherType = "aristocrat"

// Operation tells whether the message is plaintext or ciphertext.
type Operation string

// Operations.
const (
	Encode Operation = "encode"
	Decode Operation = "decode"
)

// State is everything a user may edit. Replacement maps plain symbols to
// cipher symbols.
type State struct {
	CipherType  tabular.CipherType
	Operation   Operation
	Message     string
	Keyword     string
	Replacement cipherkit.ReplacementMap
	Language    string
	BlockSize   int
	Find        string
	Locked      map[string]bool // plain symbols whose replacement is fixed
}

// DefaultState is an empty English Aristocrat.
func DefaultState() State {
	return State{
		CipherType:  Aristocrat,
		Operation:   Encode,
		Replacement: make(cipherkit.ReplacementMap),
		Language:    "en",
		Locked:      make(map[string]bool),
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := s
	c.Replacement = s.Replacement.Clone()
	c.Locked = make(map[string]bool, len(s.Locked))
	for k, v := range s.Locked {
		c.Locked[k] = v
	}
	return c
}
