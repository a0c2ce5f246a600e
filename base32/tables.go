package base32

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	hexAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

//
// encode and decode tables are built once and only read afterwards
//

// StdEncoding is the standard base32 encoding defined in RFC 4648.
var StdEncoding = newEncoding("base32", stdAlphabet)

// HexEncoding is the "Extended Hex Alphabet" base32 encoding defined in
// RFC 4648.
var HexEncoding = newEncoding("base32hex", hexAlphabet)
