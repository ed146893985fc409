//go:build !cgo || !jni

package cjni

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapEnvWithoutCgo(t *testing.T) {
	var env [8]byte
	_, err := WrapEnv(unsafe.Pointer(&env))
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = NewLoader().Open("libjvm.so")
	assert.ErrorIs(t, err, ErrUnavailable)
}
