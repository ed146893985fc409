package jni

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daimatz/gojni/pkg/bridge"
)

func TestExceptionBecomesError(t *testing.T) {
	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	defer integer.Release()

	_, err = CallStatic[int32](integer, "parseInt", "x1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvocation)
	assert.False(t, errors.Is(err, ErrNameResolution))

	var ie *InvocationError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "java.lang.NumberFormatException", ie.ClassName)
	assert.Equal(t, `java.lang.NumberFormatException: For input string: "x1"`, ie.Message)
	assert.Equal(t, ie.Message, err.Error())

	_, err = integer.NewInstance("abc")
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "java.lang.NumberFormatException", ie.ClassName)

	// the exception was cleared, so the next call succeeds
	n, err := CallStatic[int32](integer, "parseInt", "41")
	require.NoError(t, err)
	assert.Equal(t, int32(41), n)
}

func TestExceptionClearedOnThread(t *testing.T) {
	th, err := LockThread()
	require.NoError(t, err)
	defer th.Unlock()
	env := th.Env()

	integer := env.FindClass("java/lang/Integer")
	require.NotZero(t, integer)
	defer env.DeleteLocalRef(integer)
	parseInt := env.GetStaticMethodID(integer, "parseInt", "(Ljava/lang/String;)I")
	require.NotZero(t, parseInt)

	s := env.NewString([]uint16{'?'})
	defer env.DeleteLocalRef(s)
	env.CallStaticIntMethodA(integer, parseInt, []bridge.Value{bridge.RefValue(s)})
	require.True(t, env.ExceptionCheck())

	err = checkException(env)
	require.ErrorIs(t, err, ErrInvocation)
	assert.False(t, env.ExceptionCheck())
	assert.NoError(t, checkException(env))
}

func TestThrowNewMessage(t *testing.T) {
	th, err := LockThread()
	require.NoError(t, err)
	defer th.Unlock()
	env := th.Env()

	ise := env.FindClass("java/lang/IllegalStateException")
	require.NotZero(t, ise)
	defer env.DeleteLocalRef(ise)
	require.Equal(t, 0, int(env.ThrowNew(ise, "boom")))

	var ie *InvocationError
	require.ErrorAs(t, checkException(env), &ie)
	assert.Equal(t, "java.lang.IllegalStateException", ie.ClassName)
	assert.Equal(t, "java.lang.IllegalStateException: boom", ie.Message)
}
