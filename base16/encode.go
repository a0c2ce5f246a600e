package base16

import (
	"slices"
)

// EncodedLength returns the number of bytes required to
// encode n bytes. It returns -1 if the input byte length
// cannot be encoded properly.
func EncodedLength(n int) int {
	if n < 0 {
		return -1
	}

	result := n * 2
	if result <= n && n != 0 {
		return -1
	}

	return result
}

func encodedLen(n int) int {
	result := n * 2
	if result <= n {
		panic("base16: invalid encode source length")
	}

	return result
}

func encode[T ~string | ~[]byte](dst []byte, src T) {
	for i := range len(src) {
		b := src[i]

		dst[i*2] = encodeTab[b>>4]
		dst[i*2+1] = encodeTab[b&0x0F]
	}
}

// UnsafeEncode fills dst with the encoded form of src.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the encoded form of src.
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= 2*len(src)
func UnsafeEncode(dst []byte, src []byte) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := encodedLen(len(src)); len(dst) < n {
		panic("base16: encode destination too short")
	}

	encode(dst, src)
}

// Encode returns nil if src is empty, otherwise it returns the
// encoded form of src.
func Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	dst := make([]byte, encodedLen(n))

	encode(dst, src)

	return dst
}

// EncodeToString returns the upper case hex form of src.
func EncodeToString(src []byte) string {
	return string(Encode(src))
}

// EncodeString returns "" if src is empty, otherwise it returns the
// encoded form of src.
func EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	dst := make([]byte, encodedLen(n))

	encode(dst, src)

	return string(dst)
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncode(dst, src []byte) []byte {
	return appendEncode(dst, src)
}

// AppendEncodeString returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncodeString(dst []byte, src string) []byte {
	return appendEncode(dst, src)
}

func appendEncode[T ~string | ~[]byte](dst []byte, src T) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(dst[orig:], src)

	return dst
}
