package tabular

// Porta and Portax are reciprocal ciphers over a 13-row table. The key
// letters are taken in pairs (AB, CD, … YZ), each pair selecting one row.
// A row exchanges every letter of the first half of the alphabet (A–M) with
// a letter of the second half (N–Z); applying the same row twice yields the
// original letter, so encoding and decoding are the same lookup.
//
// The tables are built once from their closed construction:
//
//	Porta,  row i:  A–M → N–Z rotated right by i   (AB: NOPQ…, CD: ZNOP…)
//	Portax, row i:  A–M → N–Z rotated left by i    (AB: NOPQ…, CD: OPQR…)
//
// A cell holds the partner letter as a value 0..25.

type portaTable [13][26]int8

var (
	portaRows  = buildPortaTable(-1)
	portaxRows = buildPortaTable(+1)
)

func buildPortaTable(direction int) *portaTable {
	t := &portaTable{}
	for row := 0; row < 13; row++ {
		for p := 0; p < 13; p++ {
			c := 13 + ((p+direction*row)%13+13)%13
			t[row][p] = int8(c)
			t[row][c] = int8(p)
		}
	}
	return t
}

func (t *portaTable) encode(plain, key rune) rune {
	p, k := letterValue(plain), letterValue(key)
	if p < 0 || k < 0 {
		return Invalid
	}
	return letter(int(t[k/2][p]))
}

// decodeKey returns the first letter of the key pair whose row maps plain to
// cipher. Letters from the same half of the alphabet are never exchanged.
func (t *portaTable) decodeKey(cipher, plain rune) rune {
	c, p := letterValue(cipher), letterValue(plain)
	if c < 0 || p < 0 {
		return Invalid
	}
	for row := 0; row < 13; row++ {
		if int(t[row][p]) == c {
			return letter(2 * row)
		}
	}
	return Invalid
}

// PortaMapper implements the Porta cipher.
type PortaMapper struct{}

// KeyAlphabet returns the letters A–Z.
func (PortaMapper) KeyAlphabet() string { return letters }

// Encode looks up plain in the row selected by key.
func (PortaMapper) Encode(plain, key rune) rune { return portaRows.encode(plain, key) }

// Decode is identical to Encode.
func (PortaMapper) Decode(cipher, key rune) rune { return portaRows.encode(cipher, key) }

// DecodeKey returns the first letter of the matching key pair.
func (PortaMapper) DecodeKey(cipher, plain rune) rune { return portaRows.decodeKey(cipher, plain) }

// PortaxMapper implements the single-letter relation of the Portax slide.
type PortaxMapper struct{}

// KeyAlphabet returns the letters A–Z.
func (PortaxMapper) KeyAlphabet() string { return letters }

// Encode looks up plain in the row selected by key.
func (PortaxMapper) Encode(plain, key rune) rune { return portaxRows.encode(plain, key) }

// Decode is identical to Encode.
func (PortaxMapper) Decode(cipher, key rune) rune { return portaxRows.encode(cipher, key) }

// DecodeKey returns the first letter of the matching key pair.
func (PortaxMapper) DecodeKey(cipher, plain rune) rune { return portaxRows.decodeKey(cipher, plain) }
