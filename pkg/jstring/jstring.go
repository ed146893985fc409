// Package jstring converts between Go text and the two string encodings the
// native interface speaks: UTF-16 code units and modified UTF-8.
//
// Valid input round-trips losslessly. Every conversion stops at the first
// character it cannot represent and returns what came before it. The one
// exception is EncodeModifiedUnits, which passes unpaired surrogates through.
package jstring

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Encode converts a Go string to UTF-16 code units, truncating at the first
// byte that is not valid UTF-8.
func Encode(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		out = utf16.AppendRune(out, r)
		i += size
	}
	return out
}

// EncodeRunes converts wide characters to UTF-16 code units, truncating at
// the first surrogate or out-of-range rune.
func EncodeRunes(r []rune) []uint16 {
	out := make([]uint16, 0, len(r))
	for _, c := range r {
		if !utf8.ValidRune(c) {
			break
		}
		out = utf16.AppendRune(out, c)
	}
	return out
}

// Decode converts UTF-16 code units to a Go string, truncating at the first
// unpaired surrogate.
func Decode(u []uint16) string {
	return string(DecodeRunes(u))
}

// DecodeRunes converts UTF-16 code units to wide characters, truncating at the
// first unpaired surrogate.
func DecodeRunes(u []uint16) []rune {
	out := make([]rune, 0, len(u))
	for i := 0; i < len(u); i++ {
		c := u[i]
		switch {
		case !utf16.IsSurrogate(rune(c)):
			out = append(out, rune(c))
		case c < 0xdc00 && i+1 < len(u):
			r := utf16.DecodeRune(rune(c), rune(u[i+1]))
			if r == utf8.RuneError {
				return out
			}
			out = append(out, r)
			i++
		default:
			return out
		}
	}
	return out
}

// EncodeModified converts a Go string to modified UTF-8: NUL is written as
// the two-byte form and supplementary characters as a pair of three-byte
// surrogates.
func EncodeModified(s string) []byte {
	return EncodeModifiedUnits(Encode(s))
}

// EncodeModifiedUnits converts UTF-16 code units to modified UTF-8. Unpaired
// surrogates are encoded as-is.
func EncodeModifiedUnits(units []uint16) []byte {
	out := make([]byte, 0, len(units))
	for _, c := range units {
		switch {
		case c != 0 && c < 0x80:
			out = append(out, byte(c))
		case c < 0x800:
			out = append(out, 0xc0|byte(c>>6), 0x80|byte(c&0x3f))
		default:
			out = append(out, 0xe0|byte(c>>12), 0x80|byte((c>>6)&0x3f), 0x80|byte(c&0x3f))
		}
	}
	return out
}

// DecodeModified converts modified UTF-8 to a Go string, truncating at the
// first malformed sequence or unpaired surrogate.
func DecodeModified(b []byte) string {
	return Decode(DecodeModifiedUnits(b))
}

// DecodeModifiedUnits converts modified UTF-8 to UTF-16 code units, stopping
// at the first malformed sequence.
func DecodeModifiedUnits(b []byte) []uint16 {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80 && c != 0:
			units = append(units, uint16(c))
			i++
		case c&0xe0 == 0xc0 && i+1 < len(b) && b[i+1]&0xc0 == 0x80:
			units = append(units, uint16(c&0x1f)<<6|uint16(b[i+1]&0x3f))
			i += 2
		case c&0xf0 == 0xe0 && i+2 < len(b) && b[i+1]&0xc0 == 0x80 && b[i+2]&0xc0 == 0x80:
			units = append(units, uint16(c&0x0f)<<12|uint16(b[i+1]&0x3f)<<6|uint16(b[i+2]&0x3f))
			i += 3
		default:
			return units
		}
	}
	return units
}
