//go:build !cgo || !jni

package cjni

import (
	"errors"
	"unsafe"

	"github.com/daimatz/gojni/pkg/bridge"
)

// ErrUnavailable is returned by Open in builds without the cgo bridge.
var ErrUnavailable = errors.New("cjni: JNI bridge not compiled in (rebuild with cgo and -tags jni)")

func open(path string) (bridge.Library, error) {
	return nil, ErrUnavailable
}

// WrapEnv reports ErrUnavailable in builds without the cgo bridge.
func WrapEnv(p unsafe.Pointer) (bridge.Env, error) {
	return nil, ErrUnavailable
}
