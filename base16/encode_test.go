package base16

import (
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/josephcopenhaver/tbdd-go"
	"github.com/stretchr/testify/assert"
)

func Test_encodedLen(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	const inputTooBig = math.MaxInt/2 + 1
	const inputOK = math.MaxInt / 2

	is.PanicsWithValue("base16: invalid encode source length", func() {
		encodedLen(inputTooBig)
	})
	is.Equal(-1, EncodedLength(inputTooBig))

	is.Equal(inputOK*2, encodedLen(inputOK))
	is.Equal(inputOK*2, EncodedLength(inputOK))
	is.Equal(0, EncodedLength(0))
	is.Equal(-1, EncodedLength(-1))
}

type eCall uint8

const (
	unsafeEncCall eCall = iota + 1
	encCall
	encToStrCall
	appendEncCall
	encStrCall
	appendEncStrCall
)

type encodeTC struct {
	// the function operation to call
	call eCall
	// src is the source data to encode
	src string
	// dst is where encoded data will be placed
	dst []byte

	// expectations

	expStr   string
	expPanic any
}

type encodeTCR struct {
	str    string
	nilDst bool
}

func cloneEncodeTC(tc encodeTC) encodeTC {
	ctc := tc

	ctc.dst = slices.Clone(tc.dst)

	return ctc
}

func descEncodeTC(t *testing.T, cfg tbdd.Describe[encodeTC]) tbdd.DescribeResponse {
	t.Helper()

	then := cfg.Then
	if then == "" {
		if cfg.TC.expPanic != nil {
			then = "should panic"
		} else {
			then = "should succeed"
		}
	}

	return tbdd.DescribeResponse{
		When: cfg.When,
		Then: then,
	}
}

func runEncodeTC(t *testing.T, tc encodeTC) encodeTCR {
	t.Helper()

	is := assert.New(t)

	var src []byte
	if len(tc.src) > 0 {
		src = []byte(tc.src)
	}

	switch tc.call {
	case unsafeEncCall:
		if tc.expPanic != nil {
			is.PanicsWithValue(tc.expPanic, func() {
				UnsafeEncode(tc.dst, src)
			})
			return encodeTCR{}
		}

		UnsafeEncode(tc.dst, src)

		return encodeTCR{string(tc.dst), false}
	case encCall:
		resp := Encode(src)

		return encodeTCR{string(resp), resp == nil}
	case encToStrCall:
		return encodeTCR{EncodeToString(src), false}
	case appendEncCall:
		resp := AppendEncode(tc.dst, src)

		return encodeTCR{string(resp), resp == nil}
	case encStrCall:
		return encodeTCR{EncodeString(tc.src), false}
	case appendEncStrCall:
		resp := AppendEncodeString(tc.dst, tc.src)

		return encodeTCR{string(resp), resp == nil}
	default:
		panic("misconfigured test case")
	}
}

func checkEncodeTCR(t *testing.T, cfg tbdd.Assert[encodeTC, encodeTCR]) {
	t.Helper()

	is := assert.New(t)

	tc := cfg.TC
	r := cfg.Result

	if tc.expPanic != nil {
		return
	}

	if tc.call == encCall && tc.expStr == "" {
		is.True(r.nilDst)
	}

	is.Equal(tc.expStr, r.str)
	is.Zero(len(r.str) % 2)
}

func encodeTCVariants(t *testing.T, tc encodeTC) iter.Seq[tbdd.TestVariant[encodeTC]] {
	t.Helper()

	return func(yield func(tbdd.TestVariant[encodeTC]) bool) {
		if tc.call != encCall || tc.expPanic != nil {
			return
		}

		variants := []struct {
			kind   string
			call   eCall
			prefix string
		}{
			{"encCall2encToStringCall", encToStrCall, ""},
			{"encCall2encStringCall", encStrCall, ""},
			{"encCall2appendEncCall", appendEncCall, "test_"},
			{"encCall2appendEncStrCall", appendEncStrCall, "test_"},
		}

		for _, v := range variants {
			tc := cloneEncodeTC(tc)

			tc.call = v.call
			if v.prefix != "" {
				tc.dst = []byte(v.prefix)
				tc.expStr = v.prefix + tc.expStr
			}

			if !yield(tbdd.TestVariant[encodeTC]{
				TC:          tc,
				Kind:        v.kind,
				SkipCloneTC: true,
			}) {
				return
			}
		}

		if len(tc.src) > 0 {
			tc := cloneEncodeTC(tc)

			tc.dst = make([]byte, len(tc.expStr))
			tc.call = unsafeEncCall

			if !yield(tbdd.TestVariant[encodeTC]{
				TC:          tc,
				Kind:        "encCall2unsafeEncCall",
				SkipCloneTC: true,
			}) {
				return
			}
		}
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	tcs := []tbdd.BDDLifecycle[encodeTC, encodeTCR]{
		{
			When: "3 bytes spanning the nibble range",
			TC: encodeTC{
				src:    "\x00\xff\x10",
				expStr: "00FF10",
			},
		},
		{
			When: "rfc4648 vector foobar",
			TC: encodeTC{
				src:    "foobar",
				expStr: "666F6F626172",
			},
		},
		{
			When: "1 byte",
			TC: encodeTC{
				src:    "\xab",
				expStr: "AB",
			},
		},
		{
			When: "0 bytes",
			TC:   encodeTC{},
		},
		{
			When: "unsafe-encode destination has no capacity and source is not empty",
			TC: encodeTC{
				call:     unsafeEncCall,
				src:      "1",
				dst:      []byte{0},
				expPanic: "base16: encode destination too short",
			},
		},
		{
			When: "unsafe-encode src is empty",
			TC: encodeTC{
				call:     unsafeEncCall,
				expPanic: "base16: invalid encode source length",
			},
		},
	}

	for i, tc := range tcs {
		tc.CloneTC = cloneEncodeTC
		tc.Variants = encodeTCVariants
		tc.Describe = descEncodeTC
		tc.Act = runEncodeTC
		tc.Assert = checkEncodeTCR

		// if no call is specified, use encCall
		if tc.TC.call == 0 {
			tc.TC.call = encCall
		}

		f := tc.NewI(t, i)
		f(t)
	}
}

func TestEncodeEveryByte(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	const digits = "0123456789ABCDEF"

	for i := range 256 {
		exp := string([]byte{digits[i>>4], digits[i&0x0F]})
		is.Equal(exp, EncodeToString([]byte{byte(i)}))
	}
}
