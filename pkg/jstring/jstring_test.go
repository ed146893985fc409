package jstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF16(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		units []uint16
	}{
		{"ascii", "1000", []uint16{'1', '0', '0', '0'}},
		{"empty", "", []uint16{}},
		{"bmp", "héllo", []uint16{'h', 0xe9, 'l', 'l', 'o'}},
		{"surrogate pair", "a\U0001F600b", []uint16{'a', 0xd83d, 0xde00, 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.in)
			assert.Equal(t, tt.units, append([]uint16{}, got...))
			assert.Equal(t, tt.in, Decode(got))
			assert.Equal(t, append([]rune{}, []rune(tt.in)...), append([]rune{}, DecodeRunes(EncodeRunes([]rune(tt.in)))...))
		})
	}
}

func TestDecodeTruncatesAtUnpairedSurrogate(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  string
	}{
		{"lone high at end", []uint16{'a', 'b', 0xd83d}, "ab"},
		{"high followed by non-low", []uint16{'a', 0xd83d, 'x', 'y'}, "a"},
		{"lone low", []uint16{'a', 0xde00, 'b'}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.units))
		})
	}
}

func TestEncodeTruncatesAtInvalidInput(t *testing.T) {
	t.Run("malformed utf-8", func(t *testing.T) {
		assert.Equal(t, []uint16{'o', 'k'}, Encode("ok\xffno"))
	})

	t.Run("encoded surrogate", func(t *testing.T) {
		assert.Equal(t, []uint16{'a'}, Encode("a\xed\xa0\x80b"))
	})

	t.Run("replacement character is kept", func(t *testing.T) {
		assert.Equal(t, []uint16{0xfffd, 'x'}, Encode("\ufffdx"))
	})

	t.Run("surrogate rune", func(t *testing.T) {
		assert.Equal(t, []uint16{'a'}, EncodeRunes([]rune{'a', 0xd800, 'b'}))
	})

	t.Run("rune out of range", func(t *testing.T) {
		assert.Equal(t, []uint16{'a', 0xd83d, 0xde00}, EncodeRunes([]rune{'a', 0x1F600, 0x110000, 'b'}))
	})

	t.Run("negative rune", func(t *testing.T) {
		assert.Empty(t, EncodeRunes([]rune{-1, 'a'}))
	})
}

func TestModifiedUTF8(t *testing.T) {
	t.Run("nul uses two bytes", func(t *testing.T) {
		got := EncodeModified("a\x00b")
		assert.Equal(t, []byte{'a', 0xc0, 0x80, 'b'}, got)
		assert.Equal(t, "a\x00b", DecodeModified(got))
	})

	t.Run("supplementary uses surrogates", func(t *testing.T) {
		got := EncodeModified("\U0001F600")
		assert.Len(t, got, 6)
		assert.Equal(t, "\U0001F600", DecodeModified(got))
	})

	t.Run("ascii is unchanged", func(t *testing.T) {
		assert.Equal(t, []byte("java/lang/Integer"), EncodeModified("java/lang/Integer"))
	})

	t.Run("malformed tail is dropped", func(t *testing.T) {
		assert.Equal(t, "ok", DecodeModified([]byte{'o', 'k', 0xe0, 0x80}))
	})
}
