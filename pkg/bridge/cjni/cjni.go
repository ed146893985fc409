// Package cjni implements the bridge interfaces on top of a real libjvm
// through cgo. The cgo half is built only with the "jni" build tag, e.g.
//
//	CGO_CFLAGS="-I$JAVA_HOME/include -I$JAVA_HOME/include/linux" go build -tags jni
//
// Without the tag Locate still works and Open reports how to enable it.
package cjni

import (
	"errors"
	"strings"

	"github.com/daimatz/gojni/pkg/bridge"
)

// ErrNotFound is returned by Locate when no JVM library is installed in a
// known place.
var ErrNotFound = errors.New("cjni: no JVM library found")

// NewLoader returns the loader for the platform's JVM library.
func NewLoader() bridge.Loader {
	return loader{}
}

type loader struct{}

// Locate finds the JVM library: JAVA_HOME first, then the platform's
// conventional install locations.
func (loader) Locate() (string, error) {
	return locate()
}

// Open loads the library at path and resolves JNI_CreateJavaVM.
func (loader) Open(path string) (bridge.Library, error) {
	return open(path)
}

// serverVariant maps an old JRE's bin\client\jvm.dll to the bin\server
// one newer installs ship instead. ok is false when path has no client
// directory.
func serverVariant(path string) (alt string, ok bool) {
	const client, server = `\client\`, `\server\`
	i := strings.LastIndex(path, client)
	if i < 0 {
		return "", false
	}
	return path[:i] + server + path[i+len(client):], true
}
