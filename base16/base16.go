// Package base16 implements the RFC 4648 base16 (hexadecimal) encoding.
//
// Encoding always produces upper case symbols, two per input byte. Decoding
// accepts upper and lower case and rejects input of odd length rather than
// silently dropping the unpaired symbol.
package base16

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidBase16Length = errors.New("invalid base16 length")
	ErrInvalidBase16Char   = errors.New("invalid base16 character")
)

// InvalidSymbolError reports a character that is not a hex digit.
//
// It matches ErrInvalidBase16Char with errors.Is.
type InvalidSymbolError struct {
	// Symbol is the offending character.
	Symbol rune
	// Index is the byte offset of Symbol in the input.
	Index int
}

func (e *InvalidSymbolError) Error() string {
	return "invalid base16 symbol " + strconv.QuoteRune(e.Symbol) + " at index " + strconv.Itoa(e.Index)
}

func (e *InvalidSymbolError) Unwrap() error {
	return ErrInvalidBase16Char
}
