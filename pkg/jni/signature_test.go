package jni

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daimatz/gojni/pkg/jstring"
)

func TestSignatureOf(t *testing.T) {
	assert.Equal(t, "V", SignatureOf[Void]())
	assert.Equal(t, "Z", SignatureOf[bool]())
	assert.Equal(t, "B", SignatureOf[int8]())
	assert.Equal(t, "C", SignatureOf[Char]())
	assert.Equal(t, "S", SignatureOf[int16]())
	assert.Equal(t, "I", SignatureOf[int32]())
	assert.Equal(t, "J", SignatureOf[int64]())
	assert.Equal(t, "F", SignatureOf[float32]())
	assert.Equal(t, "D", SignatureOf[float64]())
	assert.Equal(t, "Ljava/lang/String;", SignatureOf[string]())
	assert.Equal(t, "Ljava/lang/String;", SignatureOf[ModifiedUTF8]())
	assert.Equal(t, "Ljava/lang/String;", SignatureOf[WideString]())
	assert.Equal(t, "Ljava/lang/Object;", SignatureOf[*Object]())
	assert.Equal(t, "Ljava/lang/Class;", SignatureOf[*Class]())
}

func TestMethodSignature(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"no args", func() (string, error) { return MethodSignature[Void]() }, "()V"},
		{"string and int", func() (string, error) { return MethodSignature[int32]("a", 1) }, "(Ljava/lang/String;I)I"},
		{"primitives", func() (string, error) {
			return MethodSignature[float64](true, int8(1), Char('c'), int16(2), int64(3), float32(4))
		}, "(ZBCSJF)D"},
		{"null object", func() (string, error) { return MethodSignature[*Object](nil, (*Object)(nil)) }, "(Ljava/lang/Object;Ljava/lang/Object;)Ljava/lang/Object;"},
		{"arrays", func() (string, error) { return MethodSignature[Void]([]string{}, []*Object{}) }, "([Ljava/lang/String;[Ljava/lang/Object;)V"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MethodSignature[int32](uint(1))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRuntimeSignature(t *testing.T) {
	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	defer integer.Release()
	i, err := integer.NewInstance(int32(1))
	require.NoError(t, err)
	defer i.Release()

	sig, err := Signature(i)
	require.NoError(t, err)
	assert.Equal(t, "Ljava/lang/Integer;", sig)

	sig, err = MethodSignature[int32]("key", i)
	require.NoError(t, err)
	assert.Equal(t, "(Ljava/lang/String;Ljava/lang/Integer;)I", sig)

	sig, err = Signature(integer)
	require.NoError(t, err)
	assert.Equal(t, "Ljava/lang/Class;", sig)

	assert.Equal(t, "[Ljava/lang/String;", runtimeSignature("[Ljava.lang.String;"))
	assert.Equal(t, "[I", runtimeSignature("[I"))
	assert.Equal(t, "Ljava/util/Map$Entry;", runtimeSignature("java.util.Map$Entry"))
}

func TestSplitToken(t *testing.T) {
	name, sig, ok := splitToken("measure(Ljava/lang/String;I)I")
	assert.True(t, ok)
	assert.Equal(t, "measure", name)
	assert.Equal(t, "(Ljava/lang/String;I)I", sig)

	_, _, ok = splitToken("measure")
	assert.False(t, ok)
}

func TestStringEncodings(t *testing.T) {
	str, err := FindClass("java/lang/String")
	require.NoError(t, err)
	defer str.Release()

	for _, text := range []string{"", "plain", "héllo wörld", "nul\x00inside", "emoji \U0001F600"} {
		t.Run(text, func(t *testing.T) {
			s, err := str.NewInstance(text)
			require.NoError(t, err)
			defer s.Release()

			got, err := Call[string](s, "toString")
			require.NoError(t, err)
			assert.Equal(t, text, got)

			units, err := Call[int32](s, "length")
			require.NoError(t, err)
			assert.Equal(t, int32(len(jstring.Encode(text))), units)

			wide, err := Call[WideString](s, "toString")
			require.NoError(t, err)
			assert.Equal(t, []rune(text), []rune(wide))

			mutf8, err := Call[ModifiedUTF8](s, "toString")
			require.NoError(t, err)
			assert.Equal(t, string(jstring.EncodeModified(text)), string(mutf8))

			back, err := str.NewInstance(mutf8)
			require.NoError(t, err)
			defer back.Release()
			same, err := Call[bool](back, "equals(Ljava/lang/Object;)Z", s)
			require.NoError(t, err)
			assert.True(t, same)
		})
	}
}
