// Package bridge describes the host virtual machine's native interface as Go
// interfaces. A JavaVM hands out per-thread Env values; an Env is the JNI
// function table with Go-shaped signatures.
//
// Two implementations exist in this module: package cjni talks to a real
// libjvm through cgo, and package hostvm is an in-process runtime.
package bridge

import "fmt"

// Ref is an opaque object handle (jobject). The zero Ref is null.
type Ref uintptr

// MethodID identifies a resolved method. It is never released.
type MethodID uintptr

// FieldID identifies a resolved field. It is never released.
type FieldID uintptr

// Interface versions.
const (
	Version1_1 int32 = 0x00010001
	Version1_2 int32 = 0x00010002
	Version1_4 int32 = 0x00010004
	Version1_6 int32 = 0x00010006
	Version1_8 int32 = 0x00010008
	Version9   int32 = 0x00090000
	Version10  int32 = 0x000a0000
)

// Status is a JNI return code. Non-zero codes are usable as errors.
type Status int32

const (
	OK        Status = 0
	ErrFailed Status = -1
	// ErrDetached is returned by GetEnv when the calling thread is not attached.
	ErrDetached Status = -2
	ErrVersion  Status = -3
	ErrNoMemory Status = -4
	ErrExists   Status = -5
	ErrInvalid  Status = -6
)

func (s Status) Error() string {
	switch s {
	case OK:
		return "success"
	case ErrFailed:
		return "unknown error"
	case ErrDetached:
		return "thread detached from the VM"
	case ErrVersion:
		return "JNI version error"
	case ErrNoMemory:
		return "not enough memory"
	case ErrExists:
		return "VM already created"
	case ErrInvalid:
		return "invalid arguments"
	}
	return fmt.Sprintf("JNI status %d", int32(s))
}

// JavaVM is the process-wide invocation interface.
type JavaVM interface {
	// GetEnv returns the Env of the calling OS thread, or ErrDetached.
	GetEnv(version int32) (Env, error)
	AttachCurrentThread() (Env, error)
	// AttachCurrentThreadAsDaemon attaches a thread that DestroyJavaVM does
	// not wait for.
	AttachCurrentThreadAsDaemon() (Env, error)
	DetachCurrentThread() error
	DestroyJavaVM() error
}

// InitArgs mirrors JavaVMInitArgs.
type InitArgs struct {
	Version            int32
	Options            []string
	IgnoreUnrecognized bool
}

// Library is a loaded VM shared library.
type Library interface {
	// CreateJavaVM calls JNI_CreateJavaVM. The calling thread becomes
	// attached and the returned Env belongs to it.
	CreateJavaVM(args InitArgs) (JavaVM, Env, error)
	Close() error
}

// Loader finds and opens VM libraries.
type Loader interface {
	Locate() (string, error)
	Open(path string) (Library, error)
}
