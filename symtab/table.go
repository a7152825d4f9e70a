/*
Package symtab implements a compact, read-only symbol table for character sets.

A character set is an ordered list of symbols, where a symbol is either a
single rune ("A", "Ä") or a short rune sequence treated as one atomic unit
(digraphs like "IJ"). Tokenizing text against such a set has to find the
longest symbol starting at a given position, so the table is a trie over the
symbols' runes. After construction the trie is frozen into a double-array
(DAT), with runes mapped to alphabet IDs through per-block lookup tables.

Usage:

	b := symtab.NewBuilder()
	for _, s := range []string{"A", "B", "I", "IJ", "J"} {
	    b.Add(s)
	}
	table := b.Freeze()
	id, n := table.Match([]rune("IJS"))   // id == 3, n == 2
*/
package symtab

import (
	"fmt"
	"sort"
)

type buildNode struct {
	state    uint32
	symbol   int32 // position+1, 0 for inner nodes
	children map[uint16]*buildNode
}

// Builder collects symbols and freezes them into a Table.
// A Builder must not be used after Freeze.
type Builder struct {
	root        *buildNode
	runeToDense map[rune]uint16
	nextDenseID uint16
	count       int
	frozen      bool
}

// NewBuilder creates an empty symbol table builder.
func NewBuilder() *Builder {
	return &Builder{
		root:        &buildNode{children: make(map[uint16]*buildNode)},
		runeToDense: make(map[rune]uint16),
	}
}

// Add appends symbol to the table and returns its position. Adding a symbol
// twice returns the position of the first occurrence. Empty symbols and
// symbols containing runes outside the BMP are rejected with -1.
func (b *Builder) Add(symbol string) int {
	if b.frozen || symbol == "" {
		return -1
	}
	key := make([]uint16, 0, len(symbol))
	for _, r := range symbol {
		if r > 0xFFFF {
			return -1
		}
		dense, ok := b.runeToDense[r]
		if !ok {
			b.nextDenseID++
			dense = b.nextDenseID
			b.runeToDense[r] = dense
		}
		key = append(key, dense)
	}
	n := b.root
	for _, c := range key {
		child := n.children[c]
		if child == nil {
			child = &buildNode{children: make(map[uint16]*buildNode)}
			n.children[c] = child
		}
		n = child
	}
	if n.symbol != 0 {
		return int(n.symbol) - 1
	}
	n.symbol = int32(b.count) + 1
	b.count++
	return b.count - 1
}

// Freeze compiles the collected symbols into a read-only Table.
func (b *Builder) Freeze() *Table {
	d := &dat{
		root:  1,
		sigma: b.nextDenseID,
	}
	for r, dense := range b.runeToDense {
		d.runes.Set(r, dense)
	}
	d.ensureIndex(int(d.root))
	b.root.state = d.root
	queue := []*buildNode{b.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		d.symbol[n.state] = n.symbol
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(d.check, labels)
		d.ensureIndex(base + int(labels[len(labels)-1]))
		d.base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	b.root = nil
	b.runeToDense = nil
	b.frozen = true
	return &Table{d: d, size: b.count}
}

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findBase returns the smallest base at which all labels land on free slots.
// Slot 1 is reserved for the root.
func findBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == 1 || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

// Table is a frozen symbol table. It is safe for concurrent readers.
type Table struct {
	d    *dat
	size int
}

// Len returns the number of distinct symbols in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Match finds the longest symbol which is a prefix of rs. It returns the
// symbol's position and the number of runes consumed, or (-1, 0) if no symbol
// matches.
func (t *Table) Match(rs []rune) (id int, n int) {
	id = -1
	if t == nil || len(rs) == 0 {
		return
	}
	state := t.d.root
	for i, r := range rs {
		next, ok := t.d.transition(state, t.d.runes.ID(r))
		if !ok {
			break
		}
		state = next
		if sym := t.d.symbol[state]; sym != 0 {
			id, n = int(sym)-1, i+1
		}
	}
	return
}

// Lookup returns the position of symbol, which has to match completely.
func (t *Table) Lookup(symbol string) (int, bool) {
	if t == nil || symbol == "" {
		return -1, false
	}
	state := t.d.root
	for _, r := range symbol {
		next, ok := t.d.transition(state, t.d.runes.ID(r))
		if !ok {
			return -1, false
		}
		state = next
	}
	if sym := t.d.symbol[state]; sym != 0 {
		return int(sym) - 1, true
	}
	return -1, false
}

// HasPrefix reports whether rs is a proper or complete prefix of some symbol.
// Tokenizers use it to decide whether reading ahead can still produce a
// longer match.
func (t *Table) HasPrefix(rs []rune) bool {
	if t == nil {
		return false
	}
	state := t.d.root
	for _, r := range rs {
		next, ok := t.d.transition(state, t.d.runes.ID(r))
		if !ok {
			return false
		}
		state = next
	}
	return true
}

// Stats reports density metrics of the underlying double array.
func (t *Table) Stats() (usedSlots, totalSlots int) {
	if t == nil {
		return 0, 0
	}
	totalSlots = t.d.nstates()
	for i := range t.d.check {
		if i == int(t.d.root) || t.d.check[i] != 0 {
			usedSlots++
		}
	}
	return
}

func (t *Table) String() string {
	used, total := t.Stats()
	return fmt.Sprintf("symtab(symbols=%d,sigma=%d,slots=%d/%d)", t.Len(), t.d.sigma, used, total)
}
