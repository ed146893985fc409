package jni

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// the first three with errors.Is; ErrUnsupportedType marks values the
// marshaller cannot pass to the VM.
var (
	ErrInitialization  = errors.New("jni: initialization error")
	ErrNameResolution  = errors.New("jni: name resolution error")
	ErrInvocation      = errors.New("jni: invocation error")
	ErrUnsupportedType = errors.New("jni: unsupported type")
)

// InitializationError reports that no usable VM or thread environment is
// available.
type InitializationError struct {
	Message string
	Err     error
}

func initError(msg string, err error) *InitializationError {
	return &InitializationError{Message: msg, Err: err}
}

func (e *InitializationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InitializationError) Is(target error) bool { return target == ErrInitialization }

func (e *InitializationError) Unwrap() error { return e.Err }

// NameResolutionError reports a class or member that the VM does not know.
type NameResolutionError struct {
	Kind      string // "class", "method", "static method", "field" or "static field"
	Name      string
	Signature string
}

func (e *NameResolutionError) Error() string {
	if e.Signature == "" {
		return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s not found: %s %s", e.Kind, e.Name, e.Signature)
}

func (e *NameResolutionError) Is(target error) bool { return target == ErrNameResolution }

// InvocationError carries a Java exception thrown by a call. The exception
// has already been cleared on the calling thread.
type InvocationError struct {
	// ClassName is the dotted name of the exception class, or empty when it
	// could not be determined.
	ClassName string
	// Message is the exception's toString().
	Message string
}

func (e *InvocationError) Error() string { return e.Message }

func (e *InvocationError) Is(target error) bool { return target == ErrInvocation }

const npe = "java.lang.NullPointerException"

func nullReceiver(op string) error {
	return &InvocationError{ClassName: npe, Message: npe + ": " + op + " on a null object"}
}

func unsupported(v any) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}
