package jni

import (
	"github.com/daimatz/gojni/pkg/bridge"
)

// Member names passed to Call, CallStatic and CallExact are either a plain
// method name, whose descriptor is built from the arguments and R, or a
// "name(args)ret" token used as given. Names are resolved on every call;
// resolve a MethodID once with Class.Method to skip that.

// Call invokes an instance method on obj with virtual dispatch.
func Call[R Type](obj *Object, member string, args ...any) (R, error) {
	var zero R
	h, unpin := obj.pin()
	defer unpin()
	if h == 0 {
		return zero, nullReceiver("invoking " + member)
	}
	var out R
	err := withEnv(func(env bridge.Env) error {
		name, sig, err := memberSignature[R](env, member, args)
		if err != nil {
			return err
		}
		m, err := obj.method(env, name, sig)
		if err != nil {
			return err
		}
		out, err = invoke[R](env, h, m, args, virtualCalls[kindOf[R]()])
		return err
	})
	return out, err
}

// CallMethod invokes a resolved instance method on obj with virtual
// dispatch.
func CallMethod[R Type](obj *Object, m bridge.MethodID, args ...any) (R, error) {
	var zero R
	h, unpin := obj.pin()
	defer unpin()
	if h == 0 {
		return zero, nullReceiver("invoking a method")
	}
	var out R
	err := withEnv(func(env bridge.Env) (err error) {
		out, err = invoke[R](env, h, m, args, virtualCalls[kindOf[R]()])
		return err
	})
	return out, err
}

// CallStatic invokes a static method of c.
func CallStatic[R Type](c *Class, member string, args ...any) (R, error) {
	var zero R
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return zero, nullReceiver("invoking " + member)
	}
	var out R
	err := withEnv(func(env bridge.Env) error {
		name, sig, err := memberSignature[R](env, member, args)
		if err != nil {
			return err
		}
		m, err := methodID(env, h, name, sig, true)
		if err != nil {
			return err
		}
		out, err = invoke[R](env, h, m, args, staticCalls[kindOf[R]()])
		return err
	})
	return out, err
}

// CallStaticMethod invokes a resolved static method of c.
func CallStaticMethod[R Type](c *Class, m bridge.MethodID, args ...any) (R, error) {
	var zero R
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return zero, nullReceiver("invoking a static method")
	}
	var out R
	err := withEnv(func(env bridge.Env) (err error) {
		out, err = invoke[R](env, h, m, args, staticCalls[kindOf[R]()])
		return err
	})
	return out, err
}

// CallExact invokes c's own implementation of an instance method on obj,
// bypassing overrides in obj's class.
func CallExact[R Type](c *Class, obj *Object, member string, args ...any) (R, error) {
	var zero R
	cls, h, unpin := pinPair(c.Object(), obj)
	defer unpin()
	if cls == 0 || h == 0 {
		return zero, nullReceiver("invoking " + member)
	}
	var out R
	err := withEnv(func(env bridge.Env) error {
		name, sig, err := memberSignature[R](env, member, args)
		if err != nil {
			return err
		}
		m, err := methodID(env, cls, name, sig, false)
		if err != nil {
			return err
		}
		out, err = invokeExact[R](env, h, cls, m, args)
		return err
	})
	return out, err
}

// CallExactMethod invokes a resolved method of c on obj without virtual
// dispatch.
func CallExactMethod[R Type](c *Class, obj *Object, m bridge.MethodID, args ...any) (R, error) {
	var zero R
	cls, h, unpin := pinPair(c.Object(), obj)
	defer unpin()
	if cls == 0 || h == 0 {
		return zero, nullReceiver("invoking a method")
	}
	var out R
	err := withEnv(func(env bridge.Env) (err error) {
		out, err = invokeExact[R](env, h, cls, m, args)
		return err
	})
	return out, err
}

func memberSignature[R Type](env bridge.Env, member string, args []any) (name, sig string, err error) {
	if name, sig, ok := splitToken(member); ok {
		return name, sig, nil
	}
	sig, err = methodSignature[R](env, args)
	return member, sig, err
}

func invoke[R Type](env bridge.Env, target bridge.Ref, m bridge.MethodID, args []any, call callFunc) (R, error) {
	var zero R
	a, err := marshal(env, args)
	if err != nil {
		return zero, err
	}
	defer a.release(env)
	v := call(env, target, m, a.values)
	return result[R](env, v)
}

func invokeExact[R Type](env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []any) (R, error) {
	var zero R
	a, err := marshal(env, args)
	if err != nil {
		return zero, err
	}
	defer a.release(env)
	v := exactCalls[kindOf[R]()](env, obj, cls, m, a.values)
	return result[R](env, v)
}

// result checks for a pending exception before converting v.
func result[R Type](env bridge.Env, v bridge.Value) (R, error) {
	var zero R
	if err := checkException(env); err != nil {
		if r := v.Ref(); r != 0 && kindOf[R]() == bridge.KindObject {
			env.DeleteLocalRef(r)
		}
		return zero, err
	}
	return fromValue[R](env, v)
}
