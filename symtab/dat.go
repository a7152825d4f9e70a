package symtab

// dat is a frozen double-array trie over the symbols of a character set.
//   - States are indices into base/check (0 is unused; root is 1).
//   - Transition: t := base[s] + c; valid if check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..sigma]. c==0 means "not in alphabet".
//
// A state is terminal if symbol[s] != 0; the stored value is the symbol's
// position in the character set plus one.
type dat struct {
	root   uint32
	sigma  uint16
	base   []int32
	check  []int32
	symbol []int32
	runes  runeIDs
}

// nstates returns number of allocated slots/states in the arrays.
func (d *dat) nstates() int { return len(d.base) }

// transition returns (nextState, ok). dense must be in [1..sigma].
func (d *dat) transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.base) {
		return 0, false
	}
	t := d.base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.check) {
		return 0, false
	}
	if d.check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

func (d *dat) ensureIndex(idx int) {
	if idx < len(d.base) {
		return
	}
	grow := idx + 1 - len(d.base)
	d.base = append(d.base, make([]int32, grow)...)
	d.check = append(d.check, make([]int32, grow)...)
	d.symbol = append(d.symbol, make([]int32, grow)...)
}
