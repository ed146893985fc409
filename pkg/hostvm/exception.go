package hostvm

import (
	"errors"
	"fmt"
)

// JavaException carries a thrown Throwable through Go error returns.
type JavaException struct {
	Object *Object
}

func (e *JavaException) Error() string {
	msg := e.Message()
	if msg == "" {
		return e.Object.Class.JavaName()
	}
	return fmt.Sprintf("%s: %s", e.Object.Class.JavaName(), msg)
}

// Message returns the detail message of the Throwable.
func (e *JavaException) Message() string {
	return GoString(e.Object.Fields["message"].Ref)
}

// NewThrowable allocates a Throwable of the named class with a message. An
// empty message leaves it null.
func (t *Thread) NewThrowable(className, msg string) (*Object, error) {
	c, err := t.rt.loadClass(className)
	if err != nil {
		return nil, err
	}
	if err := t.Initialize(c); err != nil {
		return nil, err
	}
	o := allocate(c)
	if msg != "" {
		o.Fields["message"] = RefValue(t.rt.NewString(msg))
	}
	return o, nil
}

// Throw returns a *JavaException for a new Throwable of the named class.
func (t *Thread) Throw(className, msg string) error {
	o, err := t.NewThrowable(className, msg)
	if err != nil {
		return err
	}
	return &JavaException{Object: o}
}

func (t *Thread) noClassDef(name string, err error) error {
	var jex *JavaException
	if errors.As(err, &jex) {
		return err
	}
	if errors.Is(err, ErrClassNotFound) {
		return t.Throw("java/lang/NoClassDefFoundError", name)
	}
	return t.Throw("java/lang/ClassFormatError", err.Error())
}

// wrapInitError turns an exception escaping a static initializer into an
// ExceptionInInitializerError unless it already is an Error.
func (t *Thread) wrapInitError(err error) error {
	var jex *JavaException
	if !errors.As(err, &jex) || jex.Object.Class.IsSubclassOf(t.rt.mustClass("java/lang/Error")) {
		return err
	}
	o, nerr := t.NewThrowable("java/lang/ExceptionInInitializerError", "")
	if nerr != nil {
		return nerr
	}
	o.Fields["cause"] = RefValue(jex.Object)
	return &JavaException{Object: o}
}

// asJava converts any error to a Throwable. Host errors become an
// InternalError carrying the error text.
func (t *Thread) asJava(err error) *Object {
	var jex *JavaException
	if errors.As(err, &jex) {
		return jex.Object
	}
	o, nerr := t.NewThrowable("java/lang/InternalError", err.Error())
	if nerr != nil {
		panic("hostvm: cannot allocate InternalError: " + nerr.Error())
	}
	return o
}
