package base32

import (
	"slices"

	"github.com/josephcopenhaver/rfc4648/internal/symtab"
)

// DecodedLen returns the maximum number of bytes a padded
// base32 value of length n can decode to. The exact length
// depends on how much of the final block is padding.
//
// If the input is zero the output will be zero.
//
// If the input is negative or not a multiple of 8 then -1
// will be returned.
func (enc *Encoding) DecodedLen(n int) int {
	if n < 0 || n%blockLen != 0 {
		return -1
	}

	return (n / blockLen) * 5
}

// decodedLen returns the number of bytes produced by n
// symbols once padding has been removed.
//
// invariants:
//
// - n must not be negative
func decodedLen(n int) int {
	return (n/blockLen)*5 + ((n%blockLen)*symbolBits)/8
}

// stripPadding returns the length of src without its trailing
// padding characters.
func stripPadding[T ~string | ~[]byte](src T) int {
	n := len(src)
	for n > 0 && src[n-1] == padChar {
		n--
	}

	return n
}

// decode writes the decoded form of the first n symbols of src
// to dst. The symbols must not include padding.
func decode[T ~string | ~[]byte](enc *Encoding, dst []byte, src T, n int) error {
	var acc uint
	var bits uint
	var di int

	for i := range n {
		v := enc.decodeTab.Lookup(src[i])
		if v == symtab.Invalid {
			return enc.invalidSymbol(symtab.SymbolAt(src, i), i)
		}

		acc = (acc << symbolBits) | uint(v)
		bits += symbolBits

		if bits >= 8 {
			bits -= 8
			dst[di] = byte(acc >> bits)
			di++
		}

		// only the unconsumed bits are kept
		acc &= (1 << bits) - 1
	}

	// 0-4 bits remain here; they are padding and are dropped

	return nil
}

// UnsafeDecode decodes the source slice into the destination slice and
// returns the number of bytes written.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty, if its length is not a
// multiple of 8, or if the destination does not have enough space in the
// slice for the decoded form of src.
//
// It is the parent context's responsibility to clear the dst slice
// should an error be returned and that be the ideal rollback state.
//
// invariants:
//
// - len(src) > 0
//
// - len(src) is a multiple of 8
//
// - len(dst) >= the decoded length of src after padding is removed
func (enc *Encoding) UnsafeDecode(dst []byte, src []byte) (int, error) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if len(src) == 0 || len(src)%blockLen != 0 {
		panic("base32: invalid decode source length")
	}

	m := stripPadding(src)
	n := decodedLen(m)
	if len(dst) < n {
		panic("base32: decode destination too short")
	}

	return n, decode(enc, dst, src, m)
}

// Decode returns the decoded form of src if src is not empty. If src is
// empty nil is returned.
//
// If an error occurs during decoding then nil and the error are returned.
// ErrInvalidBase32Length is returned when len(src) is not a multiple of 8.
// An *InvalidSymbolError is returned when src contains a character outside
// the alphabet.
func (enc *Encoding) Decode(src []byte) ([]byte, error) {
	return decodeAll(enc, src)
}

// DecodeString is Decode for string input.
func (enc *Encoding) DecodeString(src string) ([]byte, error) {
	return decodeAll(enc, src)
}

func decodeAll[T ~string | ~[]byte](enc *Encoding, src T) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	if n%blockLen != 0 {
		return nil, ErrInvalidBase32Length
	}

	m := stripPadding(src)
	dst := make([]byte, decodedLen(m))

	if err := decode(enc, dst, src, m); err != nil {
		return nil, err
	}

	return dst, nil
}

// AppendDecode returns the decoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
//
// If an error occurs during decoding then an error will be returned along
// with dst truncated back to its original length. The bytes between the
// original length and the original length plus DecodedLen(len(src)) may
// have been overwritten; clear them if the data is sensitive.
func (enc *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return dst, nil
	}

	if n%blockLen != 0 {
		return dst, ErrInvalidBase32Length
	}

	m := stripPadding(src)
	n = decodedLen(m)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	if err := decode(enc, dst[orig:], src, m); err != nil {
		return dst[:orig], err
	}

	return dst, nil
}
