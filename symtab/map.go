package symtab

// runeIDs assigns small alphabet IDs to the runes of a charset. ID 0 means
// "not in the alphabet".
//
// Runes are split into a high and a low byte. Blocks of 256 IDs are
// allocated on demand per high byte, so a Latin charset with a few accented
// letters needs two blocks. Only the BMP is covered.
type runeIDs struct {
	blocks [256]*[256]uint16
}

// ID returns the alphabet ID of r, or 0.
func (m *runeIDs) ID(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	if b := m.blocks[r>>8]; b != nil {
		return b[r&0xFF]
	}
	return 0
}

// Set assigns id to r. It reports false for runes outside the BMP.
func (m *runeIDs) Set(r rune, id uint16) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	b := m.blocks[r>>8]
	if b == nil {
		if id == 0 {
			return true
		}
		b = new([256]uint16)
		m.blocks[r>>8] = b
	}
	b[r&0xFF] = id
	return true
}
