package jni

import (
	"fmt"
	"math"

	"github.com/daimatz/gojni/pkg/bridge"
	"github.com/daimatz/gojni/pkg/jstring"
)

// argArray is a call's argument slots plus the local references created
// while filling them. release deletes each of those exactly once.
type argArray struct {
	values  []bridge.Value
	cleanup []bridge.Ref
}

func marshal(env bridge.Env, args []any) (*argArray, error) {
	a := &argArray{values: make([]bridge.Value, len(args))}
	for i, arg := range args {
		v, temp, err := toValue(env, arg)
		if err != nil {
			a.release(env)
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		a.values[i] = v
		if temp != 0 {
			a.cleanup = append(a.cleanup, temp)
		}
	}
	return a, nil
}

func (a *argArray) release(env bridge.Env) {
	for _, r := range a.cleanup {
		env.DeleteLocalRef(r)
	}
	a.cleanup = nil
}

// toValue converts one Go value to a call slot. temp is a local reference
// the caller must delete after the call, or 0.
func toValue(env bridge.Env, v any) (value bridge.Value, temp bridge.Ref, err error) {
	switch v := v.(type) {
	case bool:
		return bridge.BoolValue(v), 0, nil
	case int8:
		return bridge.ByteValue(v), 0, nil
	case Char:
		return bridge.CharValue(uint16(v)), 0, nil
	case int16:
		return bridge.ShortValue(v), 0, nil
	case int32:
		return bridge.IntValue(v), 0, nil
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, 0, fmt.Errorf("%w: int %d overflows a Java int", ErrUnsupportedType, v)
		}
		return bridge.IntValue(int32(v)), 0, nil
	case int64:
		return bridge.LongValue(v), 0, nil
	case float32:
		return bridge.FloatValue(v), 0, nil
	case float64:
		return bridge.DoubleValue(v), 0, nil
	case nil:
		return bridge.RefValue(0), 0, nil
	case *Object:
		return bridge.RefValue(v.Handle()), 0, nil
	case *Class:
		return bridge.RefValue(v.Handle()), 0, nil
	case string, ModifiedUTF8, WideString:
		s, err := newString(env, v)
		return bridge.RefValue(s), s, err
	case []string:
		arr, err := newStringArray(env, v)
		return bridge.RefValue(arr), arr, err
	case []*Object:
		arr, err := newObjectArray(env, v)
		return bridge.RefValue(arr), arr, err
	}
	return 0, 0, unsupported(v)
}

// newString creates a local Java string from one of the three text types.
func newString(env bridge.Env, v any) (bridge.Ref, error) {
	var s bridge.Ref
	switch v := v.(type) {
	case string:
		s = env.NewString(jstring.Encode(v))
	case ModifiedUTF8:
		s = env.NewStringUTF([]byte(v))
	case WideString:
		s = env.NewString(jstring.EncodeRunes(v))
	default:
		return 0, unsupported(v)
	}
	if err := checkException(env); err != nil {
		return 0, err
	}
	return s, nil
}

func newStringArray(env bridge.Env, items []string) (bridge.Ref, error) {
	return newArray(env, "java/lang/String", len(items), func(i int) (bridge.Ref, bool, error) {
		s, err := newString(env, items[i])
		return s, true, err
	})
}

func newObjectArray(env bridge.Env, items []*Object) (bridge.Ref, error) {
	return newArray(env, "java/lang/Object", len(items), func(i int) (bridge.Ref, bool, error) {
		return items[i].Handle(), false, nil
	})
}

// newArray builds a local object array. elem returns each element and
// whether it is a local reference to delete once stored.
func newArray(env bridge.Env, class string, n int, elem func(i int) (bridge.Ref, bool, error)) (bridge.Ref, error) {
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: array of %d elements", ErrUnsupportedType, n)
	}
	cls := env.FindClass(class)
	if cls == 0 {
		clearException(env)
		return 0, &NameResolutionError{Kind: "class", Name: class}
	}
	arr := env.NewObjectArray(int32(n), cls, 0)
	env.DeleteLocalRef(cls)
	if err := checkException(env); err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		e, local, err := elem(i)
		if err != nil {
			env.DeleteLocalRef(arr)
			return 0, err
		}
		env.SetObjectArrayElement(arr, int32(i), e)
		if local && e != 0 {
			env.DeleteLocalRef(e)
		}
		if err := checkException(env); err != nil {
			env.DeleteLocalRef(arr)
			return 0, err
		}
	}
	return arr, nil
}

// fromValue converts a call or field result to T. Object results are
// promoted to global references and the local input is deleted.
func fromValue[T Type](env bridge.Env, v bridge.Value) (T, error) {
	var zero T
	var out any
	switch any(zero).(type) {
	case Void:
		out = Void{}
	case bool:
		out = v.Bool()
	case int8:
		out = v.Byte()
	case Char:
		out = Char(v.Char())
	case int16:
		out = v.Short()
	case int32:
		out = v.Int()
	case int64:
		out = v.Long()
	case float32:
		out = v.Float()
	case float64:
		out = v.Double()
	case string:
		out = takeString(env, v.Ref())
	case ModifiedUTF8:
		out = ModifiedUTF8(takeUTF(env, v.Ref()))
	case WideString:
		out = WideString(takeRunes(env, v.Ref()))
	case *Object:
		o, err := wrapObject(env, v.Ref(), DeleteLocalInput)
		if err != nil {
			return zero, err
		}
		out = o
	case *Class:
		c, err := wrapClass(env, v.Ref(), DeleteLocalInput)
		if err != nil {
			return zero, err
		}
		out = c
	}
	return out.(T), nil
}

func takeUTF(env bridge.Env, s bridge.Ref) []byte {
	if s == 0 {
		return nil
	}
	defer env.DeleteLocalRef(s)
	return env.GetStringUTFChars(s)
}

func takeRunes(env bridge.Env, s bridge.Ref) []rune {
	if s == 0 {
		return nil
	}
	defer env.DeleteLocalRef(s)
	return jstring.DecodeRunes(env.GetStringChars(s))
}
