/*
Package cipherkit is the engine behind a toolbox for classic pencil-and-paper
ciphers, as used in puzzle competitions.

It covers the parts of cipher construction and solving which have real
algorithmic content:

  - character sets per language, where digraphs like Dutch "IJ" are atomic symbols
  - frequency tables and a Chi-Square fit against per-language letter profiles
  - monoalphabetic replacement and keyed (tabular) encoding of messages into
    display lines, broken at word boundaries
  - the tabular cipher family itself (package tabular)
  - word patterns and a pattern-indexed dictionary for solving aids (package pattern)
  - an undo/redo history with merging of same-kind edits (package undo)

Rendering, persistence and fetching of word lists are left to the surrounding
application. Everything in this package works on in-memory data and never
blocks.

Twelve languages are built in: English, Dutch, German, Esperanto, Spanish,
French, Italian, Norwegian, Portuguese, Swedish, Interlingua and Latin.

Further Reading

	https://www.cryptogram.org/resource-area/cipher-types/
	https://en.wikipedia.org/wiki/Vigen%C3%A8re_cipher
	https://en.wikipedia.org/wiki/Chi-squared_test

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package cipherkit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cipherkit'
func tracer() tracing.Trace {
	return tracing.Select("cipherkit")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
