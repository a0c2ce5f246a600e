// Package base32 implements the RFC 4648 base32 encodings.
//
// Two alphabets are provided. StdEncoding uses "A-Z2-7" and HexEncoding uses
// the "extended hex" alphabet "0-9A-V" whose encoded values sort in the same
// order as the bytes they represent. Encoded values are always padded with
// '=' to a multiple of 8 characters.
//
// Decoding is case insensitive. Input whose length is not a multiple of 8 is
// rejected before any symbol is examined. Bits left over after the final
// symbol are dropped; they never produce an output byte.
package base32

import (
	"errors"
	"strconv"

	"github.com/josephcopenhaver/rfc4648/internal/symtab"
)

const (
	padChar = '='

	// bits per symbol
	symbolBits = 5
	symbolMask = 1<<symbolBits - 1

	// symbols per padded block
	blockLen = 8
)

var (
	ErrInvalidBase32Length = errors.New("invalid base32 length")
	ErrInvalidBase32Char   = errors.New("invalid base32 character")
)

// InvalidSymbolError reports a symbol that is not part of the alphabet of
// the encoding used to decode it.
//
// It matches ErrInvalidBase32Char with errors.Is.
type InvalidSymbolError struct {
	// Encoding is the name of the encoding, "base32" or "base32hex".
	Encoding string
	// Symbol is the offending character.
	Symbol rune
	// Index is the byte offset of Symbol in the input.
	Index int
}

func (e *InvalidSymbolError) Error() string {
	return "invalid " + e.Encoding + " symbol " + strconv.QuoteRune(e.Symbol) + " at index " + strconv.Itoa(e.Index)
}

func (e *InvalidSymbolError) Unwrap() error {
	return ErrInvalidBase32Char
}

// Encoding is a base32 alphabet together with its decode table.
//
// An Encoding is immutable and safe for concurrent use.
type Encoding struct {
	name      string
	encodeTab []byte
	decodeTab symtab.Table
}

func newEncoding(name, alphabet string) *Encoding {
	if len(alphabet) != 1<<symbolBits {
		panic("base32: alphabet must have 32 symbols")
	}

	return &Encoding{
		name:      name,
		encodeTab: symtab.NewEncodeTable(alphabet),
		decodeTab: symtab.New(alphabet),
	}
}

// Name returns "base32" or "base32hex".
func (enc *Encoding) Name() string {
	return enc.name
}

func (enc *Encoding) invalidSymbol(symbol rune, index int) error {
	return &InvalidSymbolError{
		Encoding: enc.name,
		Symbol:   symbol,
		Index:    index,
	}
}
