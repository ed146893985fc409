package jni

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceFields(t *testing.T) {
	o, err := base.NewInstance()
	require.NoError(t, err)
	defer o.Release()

	require.NoError(t, Set[int32](o, "sides", 4))
	sides, err := Get[int32](o, "sides")
	require.NoError(t, err)
	assert.Equal(t, int32(4), sides)

	f, err := base.Field("sides", "I")
	require.NoError(t, err)
	require.NoError(t, SetField[int32](o, f, 6))
	sides, err = GetField[int32](o, f)
	require.NoError(t, err)
	assert.Equal(t, int32(6), sides)

	title, err := Get[string](o, "title")
	require.NoError(t, err)
	assert.Empty(t, title, "unset reference fields read as empty strings")

	require.NoError(t, Set(o, "title", "square"))
	title, err = Get[string](o, "title")
	require.NoError(t, err)
	assert.Equal(t, "square", title)

	wide, err := Get[WideString](o, "title")
	require.NoError(t, err)
	assert.Equal(t, WideString("square"), wide)
}

func TestStaticFields(t *testing.T) {
	require.NoError(t, SetStatic[int64](base, "count", 1<<40))
	count, err := GetStatic[int64](base, "count")
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), count)

	label, err := base.StaticField("label", stringSig)
	require.NoError(t, err)
	require.NoError(t, SetStaticField(base, label, ModifiedUTF8("lbl")))
	got, err := GetStaticField[string](base, label)
	require.NoError(t, err)
	assert.Equal(t, "lbl", got)

	math, err := FindClass("java/lang/Math")
	require.NoError(t, err)
	defer math.Release()
	pi, err := GetStatic[float64](math, "PI")
	require.NoError(t, err)
	assert.InDelta(t, 3.14159, pi, 1e-5)
}

func TestFieldErrors(t *testing.T) {
	o, err := base.NewInstance()
	require.NoError(t, err)
	defer o.Release()

	_, err = Get[int32](o, "missing")
	assert.ErrorIs(t, err, ErrNameResolution)
	_, err = Get[int64](o, "sides")
	assert.ErrorIs(t, err, ErrNameResolution, "descriptor follows the requested type")
	_, err = GetStatic[int32](base, "sides")
	assert.ErrorIs(t, err, ErrNameResolution, "instance field read as static")
	_, err = Get[Void](o, "sides")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.ErrorIs(t, SetStatic(base, "count", Void{}), ErrUnsupportedType)

	var null *Object
	_, err = Get[int32](null, "sides")
	assert.ErrorIs(t, err, ErrInvocation)
	assert.ErrorIs(t, Set[int32](null, "sides", 1), ErrInvocation)
}
