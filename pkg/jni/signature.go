package jni

import (
	"strings"

	"github.com/daimatz/gojni/pkg/bridge"
)

// Void is the return type of methods that return nothing.
type Void struct{}

// Char is a Java char: one UTF-16 code unit.
type Char uint16

// ModifiedUTF8 is text already in the VM's modified UTF-8 encoding. It is
// passed through NewStringUTF and GetStringUTFChars without transcoding.
type ModifiedUTF8 string

// WideString is text as wide characters, transcoded through UTF-16.
type WideString []rune

// Type is the closed set of Java value types a call can return and a field
// can hold.
type Type interface {
	Void | bool | int8 | Char | int16 | int32 | int64 | float32 | float64 |
		string | ModifiedUTF8 | WideString | *Object | *Class
}

const (
	objectSig = "Ljava/lang/Object;"
	stringSig = "Ljava/lang/String;"
	classSig  = "Ljava/lang/Class;"
)

// SignatureOf returns the descriptor of a Type. Objects widen to
// java/lang/Object.
func SignatureOf[T Type]() string {
	var zero T
	sig, _ := staticSignature(any(zero))
	return sig
}

func kindOf[T Type]() bridge.Kind {
	k, _ := bridge.KindOf(SignatureOf[T]())
	return k
}

// staticSignature returns the descriptor of values whose type alone decides
// it. Non-null objects report false: their descriptor depends on their
// runtime class.
func staticSignature(v any) (string, bool) {
	switch v := v.(type) {
	case Void:
		return "V", true
	case bool:
		return "Z", true
	case int8:
		return "B", true
	case Char:
		return "C", true
	case int16:
		return "S", true
	case int32, int:
		return "I", true
	case int64:
		return "J", true
	case float32:
		return "F", true
	case float64:
		return "D", true
	case string, ModifiedUTF8, WideString:
		return stringSig, true
	case []string:
		return "[" + stringSig, true
	case []*Object:
		return "[" + objectSig, true
	case *Class:
		return classSig, true
	case nil:
		return objectSig, true
	case *Object:
		if v.Handle() == 0 {
			return objectSig, true
		}
		return "", false
	}
	return "", false
}

// signatureOf returns the descriptor of an argument value.
func signatureOf(env bridge.Env, v any) (string, error) {
	if sig, ok := staticSignature(v); ok {
		return sig, nil
	}
	o, ok := v.(*Object)
	if !ok {
		return "", unsupported(v)
	}
	return o.signature(env)
}

func argSignature(env bridge.Env, args []any) (string, error) {
	var sb strings.Builder
	for _, a := range args {
		sig, err := signatureOf(env, a)
		if err != nil {
			return "", err
		}
		sb.WriteString(sig)
	}
	return sb.String(), nil
}

// Signature returns the descriptor of v. A non-null Object reports its
// runtime class, e.g. "Ljava/lang/Integer;" or "[Ljava/lang/String;".
func Signature(v any) (string, error) {
	if sig, ok := staticSignature(v); ok {
		return sig, nil
	}
	var sig string
	err := withEnv(func(env bridge.Env) (err error) {
		sig, err = signatureOf(env, v)
		return err
	})
	return sig, err
}

// MethodSignature composes the descriptor of a method taking args and
// returning R.
func MethodSignature[R Type](args ...any) (string, error) {
	var sig string
	err := withArgs(args, func(env bridge.Env) (err error) {
		sig, err = methodSignature[R](env, args)
		return err
	})
	return sig, err
}

func methodSignature[R Type](env bridge.Env, args []any) (string, error) {
	params, err := argSignature(env, args)
	if err != nil {
		return "", err
	}
	return "(" + params + ")" + SignatureOf[R](), nil
}

// withArgs calls fn with an environment when some argument needs one, and
// with a nil environment otherwise.
func withArgs(args []any, fn func(env bridge.Env) error) error {
	for _, a := range args {
		if _, ok := staticSignature(a); ok {
			continue
		}
		if _, ok := a.(*Object); ok {
			return withEnv(fn)
		}
	}
	return fn(nil)
}

// splitToken splits a "name(args)ret" token at the first parenthesis.
func splitToken(token string) (name, sig string, ok bool) {
	i := strings.IndexByte(token, '(')
	if i < 0 {
		return token, "", false
	}
	return token[:i], token[i:], true
}

// runtimeSignature turns a dotted Class.getName() result into a descriptor.
func runtimeSignature(name string) string {
	name = strings.ReplaceAll(name, ".", "/")
	if strings.HasPrefix(name, "[") {
		return name
	}
	return "L" + name + ";"
}
