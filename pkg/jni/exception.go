package jni

import (
	"go.uber.org/zap"

	"github.com/daimatz/gojni/pkg/bridge"
	"github.com/daimatz/gojni/pkg/jstring"
)

const genericException = "Java exception detected"

// checkException converts a pending Java exception into an InvocationError.
// The exception is always cleared before it is described.
func checkException(env bridge.Env) error {
	if !env.ExceptionCheck() {
		return nil
	}
	exc := env.ExceptionOccurred()
	env.ExceptionClear()
	if exc == 0 {
		return &InvocationError{Message: genericException}
	}
	defer env.DeleteLocalRef(exc)

	err := &InvocationError{ClassName: objectClassName(env, exc)}
	if msg, ok := describe(env, exc); ok {
		err.Message = msg
	} else if err.ClassName != "" {
		err.Message = err.ClassName
	} else {
		err.Message = genericException
	}
	log().Debug("cleared java exception", zap.String("exception", err.Message))
	return err
}

// clearException drops a pending exception raised by a failed lookup.
func clearException(env bridge.Env) {
	if env.ExceptionCheck() {
		env.ExceptionClear()
	}
}

// describe calls toString() on a throwable. Failures are swallowed so the
// caller can fall back to less detail.
func describe(env bridge.Env, obj bridge.Ref) (string, bool) {
	object := env.FindClass("java/lang/Object")
	if object == 0 {
		clearException(env)
		return "", false
	}
	toString := env.GetMethodID(object, "toString", "()Ljava/lang/String;")
	env.DeleteLocalRef(object)
	if toString == 0 {
		clearException(env)
		return "", false
	}
	s := env.CallObjectMethodA(obj, toString, nil)
	if env.ExceptionCheck() {
		env.ExceptionClear()
		return "", false
	}
	return takeString(env, s), true
}

// objectClassName returns the dotted runtime class name of obj, or "".
func objectClassName(env bridge.Env, obj bridge.Ref) string {
	cls := env.GetObjectClass(obj)
	if cls == 0 {
		clearException(env)
		return ""
	}
	defer env.DeleteLocalRef(cls)
	name, err := classNameOf(env, cls)
	if err != nil {
		return ""
	}
	return name
}

// classNameOf calls Class.getName() on a class handle.
func classNameOf(env bridge.Env, cls bridge.Ref) (string, error) {
	meta := env.GetObjectClass(cls)
	if meta == 0 {
		clearException(env)
		return "", &NameResolutionError{Kind: "class", Name: "java/lang/Class"}
	}
	getName := env.GetMethodID(meta, "getName", "()Ljava/lang/String;")
	env.DeleteLocalRef(meta)
	if getName == 0 {
		clearException(env)
		return "", &NameResolutionError{Kind: "method", Name: "getName", Signature: "()Ljava/lang/String;"}
	}
	s := env.CallObjectMethodA(cls, getName, nil)
	if err := checkException(env); err != nil {
		return "", err
	}
	return takeString(env, s), nil
}

// takeString reads a Java string and deletes the local reference.
func takeString(env bridge.Env, s bridge.Ref) string {
	if s == 0 {
		return ""
	}
	defer env.DeleteLocalRef(s)
	return jstring.Decode(env.GetStringChars(s))
}
