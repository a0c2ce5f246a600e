package base16

import (
	"slices"

	"github.com/josephcopenhaver/rfc4648/internal/symtab"
)

// DecodedLength returns the number of bytes n hex symbols
// decode to, or -1 if n is negative or odd.
func DecodedLength(n int) int {
	if n < 0 || n%2 != 0 {
		return -1
	}

	return n / 2
}

func decode[T ~string | ~[]byte](dst []byte, src T) error {
	for i := 0; i < len(src); i += 2 {
		hi := decodeTab.Lookup(src[i])
		if hi == symtab.Invalid {
			return invalidSymbol(src, i)
		}

		lo := decodeTab.Lookup(src[i+1])
		if lo == symtab.Invalid {
			return invalidSymbol(src, i+1)
		}

		dst[i/2] = hi<<4 | lo
	}

	return nil
}

func invalidSymbol[T ~string | ~[]byte](src T, i int) error {
	return &InvalidSymbolError{
		Symbol: symtab.SymbolAt(src, i),
		Index:  i,
	}
}

// UnsafeDecode decodes the source slice into the destination slice.
//
// This function panics if the source is empty, if its length is odd, or if
// the destination does not have enough space in the slice for the decoded
// form of src.
//
// It is the parent context's responsibility to clear the dst slice
// should an error be returned and that be the ideal rollback state.
//
// invariants:
//
// - len(src) > 0 and even
//
// - len(dst) >= len(src)/2
func UnsafeDecode(dst []byte, src []byte) error {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := DecodedLength(len(src)); n <= 0 {
		panic("base16: invalid decode source length")
	} else if len(dst) < n {
		panic("base16: decode destination too short")
	}

	return decode(dst, src)
}

// Decode returns the decoded form of src if src is not empty. If src is
// empty nil is returned.
//
// ErrInvalidBase16Length is returned for odd length input and an
// *InvalidSymbolError for any character that is not a hex digit. No
// partial result is returned with an error.
func Decode(src []byte) ([]byte, error) {
	return decodeAll(src)
}

// DecodeString is Decode for string input.
func DecodeString(src string) ([]byte, error) {
	return decodeAll(src)
}

func decodeAll[T ~string | ~[]byte](src T) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	n = DecodedLength(n)
	if n < 0 {
		return nil, ErrInvalidBase16Length
	}

	dst := make([]byte, n)

	if err := decode(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// AppendDecode returns the decoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
//
// If an error occurs during decoding then an error will be returned along
// with dst truncated back to its original length.
func AppendDecode(dst, src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return dst, nil
	}

	n = DecodedLength(n)
	if n < 0 {
		return dst, ErrInvalidBase16Length
	}
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	if err := decode(dst[orig:], src); err != nil {
		return dst[:orig], err
	}

	return dst, nil
}
