package base16

import "github.com/josephcopenhaver/rfc4648/internal/symtab"

const b16Chars = "0123456789ABCDEF"

var encodeTab, decodeTab = symtab.NewEncodeTable(b16Chars), symtab.New(b16Chars)
