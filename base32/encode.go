package base32

import (
	"slices"
)

// EncodedLength returns the number of bytes required to
// encode n bytes, padding included. It returns -1 if the
// input byte length cannot be encoded properly.
//
// If the input is zero, zero will be returned. Remember
// that UnsafeEncode requires the src argument
// to have a length greater than zero.
func EncodedLength(n int) int {
	if n < 0 {
		return -1
	}

	result := encodedLenExpression(n)
	if result <= n && n != 0 {
		return -1
	}

	return result
}

// EncodedLen is EncodedLength. Both alphabets pad to the
// same length.
func (enc *Encoding) EncodedLen(n int) int {
	return EncodedLength(n)
}

func encodedLenExpression(n int) int {
	result := (n / 5) * blockLen
	if n%5 != 0 {
		result += blockLen
	}

	return result
}

func encodedLen(n int) int {
	result := encodedLenExpression(n)
	if result <= n {
		panic("base32: invalid encode source length")
	}

	return result
}

// encode writes the padded encoded form of src to the first
// encodedLen(len(src)) bytes of dst.
func encode[T ~string | ~[]byte](tab []byte, dst []byte, src T) {
	var acc uint
	var bits uint
	var di int

	for i := range len(src) {
		acc = (acc << 8) | uint(src[i])
		bits += 8

		for bits >= symbolBits {
			bits -= symbolBits
			dst[di] = tab[(acc>>bits)&symbolMask]
			di++
		}

		// only the unconsumed bits are kept
		acc &= (1 << bits) - 1
	}

	// Tail.
	if bits > 0 {
		dst[di] = tab[(acc<<(symbolBits-bits))&symbolMask]
		di++
	}

	for n := encodedLenExpression(len(src)); di < n; di++ {
		dst[di] = padChar
	}
}

// UnsafeEncode fills dst with the encoded form of src.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty or if the destination
// does not have enough space in the slice for the encoded form of src.
//
// Knowing the length of the slice now occupied by the encoded form of src
// is the responsibility of the caller. It is always EncodedLength(len(src)).
//
// invariants:
//
// - len(src) > 0
//
// - len(dst) >= encodedLen(len(src))
func (enc *Encoding) UnsafeEncode(dst []byte, src []byte) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := encodedLen(len(src)); len(dst) < n {
		panic("base32: encode destination too short")
	}

	encode(enc.encodeTab, dst, src)
}

// Encode returns nil if src is empty, otherwise it returns the
// encoded form of src.
func (enc *Encoding) Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	n = encodedLen(n)
	dst := make([]byte, n)

	encode(enc.encodeTab, dst, src)

	return dst
}

// EncodeToString returns "" if src is empty, otherwise it returns
// the encoded form of src.
func (enc *Encoding) EncodeToString(src []byte) string {
	return string(enc.Encode(src))
}

// EncodeString returns "" if src is empty, otherwise it returns the
// encoded form of src.
func (enc *Encoding) EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	n = encodedLen(n)
	dst := make([]byte, n)

	encode(enc.encodeTab, dst, src)

	return string(dst)
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func (enc *Encoding) AppendEncode(dst, src []byte) []byte {
	return appendEncode(enc, dst, src)
}

// AppendEncodeString returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func (enc *Encoding) AppendEncodeString(dst []byte, src string) []byte {
	return appendEncode(enc, dst, src)
}

func appendEncode[T ~string | ~[]byte](enc *Encoding, dst []byte, src T) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(enc.encodeTab, dst[orig:], src)

	return dst
}
