package jni

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnum(t *testing.T) {
	states, err := NewEnum("java/lang/Thread$State")
	require.NoError(t, err)
	defer states.Release()

	runnable, err := states.Get("RUNNABLE")
	require.NoError(t, err)
	defer runnable.Release()

	name, err := Call[string](runnable, "name")
	require.NoError(t, err)
	assert.Equal(t, "RUNNABLE", name)
	ordinal, err := Call[int32](runnable, "ordinal")
	require.NoError(t, err)
	assert.Equal(t, int32(1), ordinal)

	ok, err := runnable.IsInstanceOf(states.Class())
	require.NoError(t, err)
	assert.True(t, ok)

	again, err := states.Get("RUNNABLE")
	require.NoError(t, err)
	defer again.Release()
	assert.True(t, runnable.Equal(again))

	_, err = states.Get("SLEEPING")
	assert.ErrorIs(t, err, ErrNameResolution)

	_, err = NewEnum("java/lang/NoSuchEnum")
	assert.ErrorIs(t, err, ErrNameResolution)
}
