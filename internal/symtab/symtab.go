// Package symtab builds the symbol tables shared by the base16 and base32
// codecs.
//
// A decode table maps every ASCII code to the value of that symbol in an
// alphabet, or to Invalid when the code is not part of the alphabet. Uppercase
// letters of an alphabet are also reachable through their lowercase form so
// decoding is case insensitive.
//
// Tables are plain arrays. Once New returns, nothing writes to them again and
// they may be shared by any number of goroutines.
package symtab

import "unicode/utf8"

// Invalid marks a code that does not belong to the alphabet.
const Invalid = 0xFF

// Size is the number of codes covered by a decode table. Anything at or above
// it is outside the ASCII range and never valid.
const Size = 0x80

const upToLow = 'a' - 'A'

// Table is a decode table indexed by ASCII code.
type Table [Size]byte

// Lookup returns the value of symbol c, or Invalid.
func (t *Table) Lookup(c byte) byte {
	if c >= Size {
		return Invalid
	}

	return t[c]
}

// Valid reports whether c decodes to a value.
func (t *Table) Valid(c byte) bool {
	return t.Lookup(c) != Invalid
}

// SymbolAt returns the character starting at byte offset i of src, decoded
// as UTF-8 so errors can name what the caller actually passed in.
func SymbolAt[T ~string | ~[]byte](src T, i int) rune {
	end := min(i+utf8.UTFMax, len(src))
	r, _ := utf8.DecodeRuneInString(string(src[i:end]))

	return r
}

// New returns the decode table for alphabet.
//
// invariants:
//
// - len(alphabet) is 16 or 32
//
// - alphabet is ASCII and contains no duplicate characters
func New(alphabet string) Table {
	checkAlphabet(alphabet)

	var dec Table

	for i := range dec {
		dec[i] = Invalid
	}

	for i := range len(alphabet) {
		dec[alphabet[i]] = byte(i)
	}

	// lower case aliases, only where the alphabet has not claimed the slot
	for i := range len(alphabet) {
		v := alphabet[i]
		if v < 'A' || v > 'Z' {
			continue
		}

		if lc := v + upToLow; dec[lc] == Invalid {
			dec[lc] = byte(i)
		}
	}

	return dec
}

// NewEncodeTable returns the value to symbol table for alphabet.
//
// It enforces the same invariants as New.
func NewEncodeTable(alphabet string) []byte {
	checkAlphabet(alphabet)

	return []byte(alphabet)
}

func checkAlphabet(alphabet string) {
	// guard statements forcing panics rather than letting a broken
	// table lead to undefined decode behaviors

	switch len(alphabet) {
	case 16, 32:
	default:
		panic("symtab: alphabet length must be 16 or 32")
	}

	var seen [Size]bool
	for i := range len(alphabet) {
		v := alphabet[i]
		if v >= Size {
			panic("symtab: alphabet must be ASCII")
		}

		if seen[v] {
			panic("symtab: alphabet contains duplicate symbols")
		}
		seen[v] = true
	}
}
