package cipherkit

import (
	"sort"
	"strings"
)

// ReplacementMap maps plain symbols to cipher symbols. It is a partial
// injective function: no two plain symbols share a cipher symbol.
type ReplacementMap map[string]string

// Set maps plain to cipher. Any other plain symbol currently mapped to cipher
// loses its mapping. An empty cipher removes the mapping of plain. Set
// reports whether the map changed.
func (m ReplacementMap) Set(plain, cipher string) bool {
	plain, cipher = strings.ToUpper(plain), strings.ToUpper(cipher)
	if plain == "" {
		return false
	}
	if cipher == "" {
		_, ok := m[plain]
		delete(m, plain)
		return ok
	}
	if m[plain] == cipher {
		return false
	}
	for p, c := range m {
		if c == cipher {
			delete(m, p)
		}
	}
	m[plain] = cipher
	return true
}

// Clone returns an independent copy.
func (m ReplacementMap) Clone() ReplacementMap {
	c := make(ReplacementMap, len(m))
	for p, v := range m {
		c[p] = v
	}
	return c
}

// Reverse returns the inverse map, cipher symbol to plain symbol.
func (m ReplacementMap) Reverse() ReplacementMap {
	r := make(ReplacementMap, len(m))
	for p, c := range m {
		r[c] = p
	}
	return r
}

// Used returns the set of cipher symbols in use.
func (m ReplacementMap) Used() map[string]bool {
	used := make(map[string]bool, len(m))
	for _, c := range m {
		used[c] = true
	}
	return used
}

// String lists the mappings sorted by plain symbol, like "A=Q,B=X".
func (m ReplacementMap) String() string {
	keys := make([]string, 0, len(m))
	for p := range m {
		keys = append(keys, p)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, p := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p)
		b.WriteByte('=')
		b.WriteString(m[p])
	}
	return b.String()
}

// ParseReplacementMap reads mappings in the format produced by String. Pairs
// without '=' are ignored. Later pairs win over earlier ones, following Set.
func ParseReplacementMap(s string) ReplacementMap {
	m := make(ReplacementMap)
	for _, pair := range strings.Split(s, ",") {
		p, c, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		m.Set(strings.TrimSpace(p), strings.TrimSpace(c))
	}
	return m
}
