package jni

import "github.com/daimatz/gojni/pkg/bridge"

// ScopeFlags control how WrapObject and WrapClass take over a raw handle.
type ScopeFlags uint8

const (
	// Temporary borrows the handle without creating a global reference.
	// The wrapper is only valid while the handle is.
	Temporary ScopeFlags = 1 << iota
	// DeleteLocalInput deletes the local input handle once it has been
	// promoted to a global reference.
	DeleteLocalInput
)

// reference is one owned or borrowed handle.
type reference struct {
	handle bridge.Ref
	global bool
}

func newReference(env bridge.Env, ref bridge.Ref, flags ScopeFlags) (reference, error) {
	if ref == 0 {
		return reference{}, nil
	}
	if flags&Temporary != 0 {
		return reference{handle: ref}, nil
	}
	g := env.NewGlobalRef(ref)
	if flags&DeleteLocalInput != 0 {
		env.DeleteLocalRef(ref)
	}
	if g == 0 {
		clearException(env)
		return reference{}, &InvocationError{ClassName: "java.lang.OutOfMemoryError", Message: "java.lang.OutOfMemoryError: could not create global reference"}
	}
	return reference{handle: g, global: true}, nil
}

func (r reference) copy(env bridge.Env) reference {
	if r.handle == 0 {
		return reference{}
	}
	return reference{handle: env.NewGlobalRef(r.handle), global: true}
}

func (r *reference) release(env bridge.Env) {
	if r.global && r.handle != 0 {
		env.DeleteGlobalRef(r.handle)
	}
	*r = reference{}
}
