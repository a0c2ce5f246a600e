// Package codec maps format names to the base16 and base32 codecs so callers
// can pick one at runtime.
package codec

import (
	"fmt"
	"sort"

	"github.com/josephcopenhaver/rfc4648/base16"
	"github.com/josephcopenhaver/rfc4648/base32"
)

// Encoder converts bytes to their text form.
type Encoder interface {
	EncodeToString(src []byte) string
}

// Decoder converts text back to bytes.
type Decoder interface {
	DecodeString(src string) ([]byte, error)
}

// Codec is both directions of one format.
type Codec interface {
	Encoder
	Decoder
}

type base16Codec struct{}

func (base16Codec) EncodeToString(src []byte) string {
	return base16.EncodeToString(src)
}

func (base16Codec) DecodeString(src string) ([]byte, error) {
	return base16.DecodeString(src)
}

const (
	Base16    = "base16"
	Base32    = "base32"
	Base32Hex = "base32hex"
)

var codecs = map[string]Codec{
	Base16:    base16Codec{},
	Base32:    base32.StdEncoding,
	Base32Hex: base32.HexEncoding,
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q, expected one of %v", name, Names())
	}

	return c, nil
}

// Names returns the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
