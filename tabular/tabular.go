/*
Package tabular implements the tabular polyalphabetic ciphers: Vigenère,
Variant, Beaufort, Gronsfeld, Porta and Portax.

Every variant maps single symbols. Given a plaintext letter and a key letter
it computes the cipher letter, and it can recover the plaintext from a cipher
letter and a key letter, or the key from a cipher letter and a plaintext
letter. Inputs are upper-cased first. Whenever an input is not a letter A–Z
(or, for Gronsfeld keys, a digit 0–9) the result is Invalid; callers
processing a message simply carry on with the next symbol.

All arithmetic is modulo 26 over the Latin alphabet.
*/
package tabular

import (
	"strings"
	"unicode"
)

// Invalid is returned whenever a symbol cannot be mapped.
const Invalid = '?'

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// Mapper encodes and decodes single symbols for one tabular cipher.
type Mapper interface {
	// Encode maps a plaintext symbol with a key symbol to a cipher symbol.
	Encode(plain, key rune) rune
	// Decode recovers the plaintext symbol from a cipher symbol and a key symbol.
	Decode(cipher, key rune) rune
	// DecodeKey recovers the key symbol from a cipher and a plaintext symbol.
	DecodeKey(cipher, plain rune) rune
	// KeyAlphabet lists the symbols accepted as key. The first one is the
	// neutral key, used whenever a key is empty.
	KeyAlphabet() string
}

// CipherType identifies a tabular cipher.
type CipherType string

// Supported cipher types.
const (
	Vigenere  CipherType = "vigenere"
	Variant   CipherType = "variant"
	Beaufort  CipherType = "beaufort"
	Gronsfeld CipherType = "gronsfeld"
	Porta     CipherType = "porta"
	Portax    CipherType = "portax"
)

// CipherTypes returns all supported cipher types.
func CipherTypes() []CipherType {
	return []CipherType{Vigenere, Variant, Beaufort, Gronsfeld, Porta, Portax}
}

// ParseCipherType maps a case-insensitive name to a cipher type. Unknown
// names yield Vigenere and false.
func ParseCipherType(name string) (CipherType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, ct := range CipherTypes() {
		if string(ct) == name {
			return ct, true
		}
	}
	return Vigenere, false
}

// ForCipher returns the mapper for a cipher type. Unknown types default to
// Vigenère.
func ForCipher(ct CipherType) Mapper {
	switch ct {
	case Variant:
		return VariantMapper{}
	case Beaufort:
		return BeaufortMapper{}
	case Gronsfeld:
		return GronsfeldMapper{}
	case Porta:
		return PortaMapper{}
	case Portax:
		return PortaxMapper{}
	default:
		return VigenereMapper{}
	}
}

// --- Helpers ---------------------------------------------------------------

// letterValue returns 0..25 for A–Z (case-insensitive) or -1.
func letterValue(r rune) int {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return -1
	}
	return int(r - 'A')
}

// digitValue returns 0..9 for a decimal digit or -1.
func digitValue(r rune) int {
	if r < '0' || r > '9' {
		return -1
	}
	return int(r - '0')
}

// mod26 normalizes v into [0,26). Go's % keeps the sign of the dividend, so
// negative values need the second pass.
func mod26(v int) int {
	return ((v % 26) + 26) % 26
}

func letter(v int) rune {
	return rune('A' + mod26(v))
}

// --- Vigenère --------------------------------------------------------------

// VigenereMapper implements cipher = plain + key.
type VigenereMapper struct{}

// KeyAlphabet returns the letters A–Z.
func (VigenereMapper) KeyAlphabet() string { return letters }

// Encode returns (plain + key) mod 26.
func (VigenereMapper) Encode(plain, key rune) rune {
	p, k := letterValue(plain), letterValue(key)
	if p < 0 || k < 0 {
		return Invalid
	}
	return letter(p + k)
}

// Decode returns (cipher − key) mod 26.
func (VigenereMapper) Decode(cipher, key rune) rune {
	c, k := letterValue(cipher), letterValue(key)
	if c < 0 || k < 0 {
		return Invalid
	}
	return letter(c - k)
}

// DecodeKey returns (cipher − plain) mod 26.
func (VigenereMapper) DecodeKey(cipher, plain rune) rune {
	c, p := letterValue(cipher), letterValue(plain)
	if c < 0 || p < 0 {
		return Invalid
	}
	return letter(c - p)
}

// --- Variant ---------------------------------------------------------------

// VariantMapper is Vigenère with the key offset reflected (variant Beaufort).
type VariantMapper struct{}

// KeyAlphabet returns the letters A–Z.
func (VariantMapper) KeyAlphabet() string { return letters }

func reflectKey(k int) int {
	if k == 0 {
		return 0
	}
	return 26 - k
}

// Encode returns (plain + reflectKey(key)) mod 26.
func (VariantMapper) Encode(plain, key rune) rune {
	p, k := letterValue(plain), letterValue(key)
	if p < 0 || k < 0 {
		return Invalid
	}
	return letter(p + reflectKey(k))
}

// Decode returns (cipher − reflectKey(key)) mod 26.
func (VariantMapper) Decode(cipher, key rune) rune {
	c, k := letterValue(cipher), letterValue(key)
	if c < 0 || k < 0 {
		return Invalid
	}
	return letter(c - reflectKey(k))
}

// DecodeKey returns (plain − cipher) mod 26.
func (VariantMapper) DecodeKey(cipher, plain rune) rune {
	c, p := letterValue(cipher), letterValue(plain)
	if c < 0 || p < 0 {
		return Invalid
	}
	return letter(p - c)
}

// --- Beaufort --------------------------------------------------------------

// BeaufortMapper implements cipher = key − plain, which is its own inverse.
type BeaufortMapper struct{}

// KeyAlphabet returns the letters A–Z.
func (BeaufortMapper) KeyAlphabet() string { return letters }

// Encode returns (key − plain) mod 26.
func (BeaufortMapper) Encode(plain, key rune) rune {
	p, k := letterValue(plain), letterValue(key)
	if p < 0 || k < 0 {
		return Invalid
	}
	return letter(k - p)
}

// Decode is identical to Encode.
func (m BeaufortMapper) Decode(cipher, key rune) rune {
	return m.Encode(cipher, key)
}

// DecodeKey returns (cipher + plain) mod 26.
func (BeaufortMapper) DecodeKey(cipher, plain rune) rune {
	c, p := letterValue(cipher), letterValue(plain)
	if c < 0 || p < 0 {
		return Invalid
	}
	return letter(c + p)
}

// --- Gronsfeld -------------------------------------------------------------

// GronsfeldMapper is Vigenère with numeric keys 0–9.
type GronsfeldMapper struct{}

// KeyAlphabet returns the digits 0–9.
func (GronsfeldMapper) KeyAlphabet() string { return digits }

// Encode returns (plain + key) mod 26.
func (GronsfeldMapper) Encode(plain, key rune) rune {
	p, k := letterValue(plain), digitValue(key)
	if p < 0 || k < 0 {
		return Invalid
	}
	return letter(p + k)
}

// Decode returns (cipher − key) mod 26.
func (GronsfeldMapper) Decode(cipher, key rune) rune {
	c, k := letterValue(cipher), digitValue(key)
	if c < 0 || k < 0 {
		return Invalid
	}
	return letter(c - k)
}

// DecodeKey returns the key digit, or Invalid if the shift between plain and
// cipher is 10 or more.
func (GronsfeldMapper) DecodeKey(cipher, plain rune) rune {
	c, p := letterValue(cipher), letterValue(plain)
	if c < 0 || p < 0 {
		return Invalid
	}
	k := mod26(c - p)
	if k > 9 {
		return Invalid
	}
	return rune('0' + k)
}
