package jni

import (
	"github.com/daimatz/gojni/pkg/bridge"
)

// Field names passed to Get and Set are resolved with the descriptor of T.
// Object-typed fields resolve as java/lang/Object; use GetField with a
// FieldID from Class.Field for fields of a narrower type.

// Get reads an instance field of obj.
func Get[T Type](obj *Object, field string) (T, error) {
	var zero T
	h, unpin := obj.pin()
	defer unpin()
	if h == 0 {
		return zero, nullReceiver("reading " + field)
	}
	if kindOf[T]() == bridge.KindVoid {
		return zero, unsupported(zero)
	}
	var out T
	err := withEnv(func(env bridge.Env) error {
		f, err := obj.field(env, field, SignatureOf[T]())
		if err != nil {
			return err
		}
		out, err = getValue[T](env, h, f, fieldGetters)
		return err
	})
	return out, err
}

// GetField reads a resolved instance field of obj.
func GetField[T Type](obj *Object, f bridge.FieldID) (T, error) {
	var zero T
	h, unpin := obj.pin()
	defer unpin()
	if h == 0 {
		return zero, nullReceiver("reading a field")
	}
	if kindOf[T]() == bridge.KindVoid {
		return zero, unsupported(zero)
	}
	var out T
	err := withEnv(func(env bridge.Env) (err error) {
		out, err = getValue[T](env, h, f, fieldGetters)
		return err
	})
	return out, err
}

// Set writes an instance field of obj.
func Set[T Type](obj *Object, field string, v T) error {
	h, unpin := obj.pin()
	defer unpin()
	if h == 0 {
		return nullReceiver("writing " + field)
	}
	if kindOf[T]() == bridge.KindVoid {
		return unsupported(v)
	}
	return withEnv(func(env bridge.Env) error {
		f, err := obj.field(env, field, SignatureOf[T]())
		if err != nil {
			return err
		}
		return setValue[T](env, h, f, v, fieldSetters)
	})
}

// SetField writes a resolved instance field of obj.
func SetField[T Type](obj *Object, f bridge.FieldID, v T) error {
	h, unpin := obj.pin()
	defer unpin()
	if h == 0 {
		return nullReceiver("writing a field")
	}
	if kindOf[T]() == bridge.KindVoid {
		return unsupported(v)
	}
	return withEnv(func(env bridge.Env) error {
		return setValue[T](env, h, f, v, fieldSetters)
	})
}

// GetStatic reads a static field of c.
func GetStatic[T Type](c *Class, field string) (T, error) {
	var zero T
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return zero, nullReceiver("reading " + field)
	}
	if kindOf[T]() == bridge.KindVoid {
		return zero, unsupported(zero)
	}
	var out T
	err := withEnv(func(env bridge.Env) error {
		f, err := fieldID(env, h, field, SignatureOf[T](), true)
		if err != nil {
			return err
		}
		out, err = getValue[T](env, h, f, staticGetters)
		return err
	})
	return out, err
}

// GetStaticField reads a resolved static field of c.
func GetStaticField[T Type](c *Class, f bridge.FieldID) (T, error) {
	var zero T
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return zero, nullReceiver("reading a static field")
	}
	if kindOf[T]() == bridge.KindVoid {
		return zero, unsupported(zero)
	}
	var out T
	err := withEnv(func(env bridge.Env) (err error) {
		out, err = getValue[T](env, h, f, staticGetters)
		return err
	})
	return out, err
}

// SetStatic writes a static field of c.
func SetStatic[T Type](c *Class, field string, v T) error {
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return nullReceiver("writing " + field)
	}
	if kindOf[T]() == bridge.KindVoid {
		return unsupported(v)
	}
	return withEnv(func(env bridge.Env) error {
		f, err := fieldID(env, h, field, SignatureOf[T](), true)
		if err != nil {
			return err
		}
		return setValue[T](env, h, f, v, staticSetters)
	})
}

// SetStaticField writes a resolved static field of c.
func SetStaticField[T Type](c *Class, f bridge.FieldID, v T) error {
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return nullReceiver("writing a static field")
	}
	if kindOf[T]() == bridge.KindVoid {
		return unsupported(v)
	}
	return withEnv(func(env bridge.Env) error {
		return setValue[T](env, h, f, v, staticSetters)
	})
}

func getValue[T Type](env bridge.Env, target bridge.Ref, f bridge.FieldID, table [bridge.NumKinds]getFunc) (T, error) {
	v := table[kindOf[T]()](env, target, f)
	return result[T](env, v)
}

func setValue[T Type](env bridge.Env, target bridge.Ref, f bridge.FieldID, v T, table [bridge.NumKinds]setFunc) error {
	value, temp, err := toValue(env, any(v))
	if err != nil {
		return err
	}
	if temp != 0 {
		defer env.DeleteLocalRef(temp)
	}
	table[kindOf[T]()](env, target, f, value)
	return checkException(env)
}
