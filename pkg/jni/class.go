package jni

import (
	"github.com/daimatz/gojni/pkg/bridge"
)

// Class is a reference to a java.lang.Class. It has the lifetime rules of
// Object; its members are the static members of the class it names, and it
// resolves the members of that class.
type Class struct {
	obj Object
}

// FindClass looks up a class by its slash-separated name, such as
// "java/lang/Integer".
func FindClass(name string) (*Class, error) {
	var c *Class
	err := withEnv(func(env bridge.Env) error {
		ref := env.FindClass(name)
		if ref == 0 {
			clearException(env)
			return &NameResolutionError{Kind: "class", Name: name}
		}
		var err error
		c, err = wrapClass(env, ref, DeleteLocalInput)
		return err
	})
	return c, err
}

// DefineClass defines a class from class file bytes. loader may be nil.
func DefineClass(name string, loader *Object, data []byte) (*Class, error) {
	var c *Class
	err := withEnv(func(env bridge.Env) error {
		ref := env.DefineClass(name, loader.Handle(), data)
		if err := checkException(env); err != nil {
			return err
		}
		var err error
		c, err = wrapClass(env, ref, DeleteLocalInput)
		return err
	})
	return c, err
}

// WrapClass takes over a class handle obtained from the bridge.
func WrapClass(ref bridge.Ref, flags ScopeFlags) (*Class, error) {
	var c *Class
	err := withEnv(func(env bridge.Env) (err error) {
		c, err = wrapClass(env, ref, flags)
		return err
	})
	return c, err
}

func wrapClass(env bridge.Env, ref bridge.Ref, flags ScopeFlags) (*Class, error) {
	r, err := newReference(env, ref, flags)
	if err != nil {
		return nil, err
	}
	c := &Class{}
	c.obj.set(r)
	return c, nil
}

// Object returns c as an Object. The result is owned by c.
func (c *Class) Object() *Object {
	if c == nil {
		return &Object{}
	}
	return &c.obj
}

func (c *Class) Handle() bridge.Ref { return c.Object().Handle() }

func (c *Class) pin() (bridge.Ref, func()) { return c.Object().pin() }

func (c *Class) IsNull() bool { return c.Object().IsNull() }

func (c *Class) Equal(other *Class) bool { return c.Object().Equal(other.Object()) }

func (c *Class) Release() error { return c.Object().Release() }

func (c *Class) Move() *Class {
	m := c.Object().Move()
	moved := &Class{}
	moved.obj.set(reference{handle: m.Handle(), global: m.global})
	moved.obj.class = m.class
	return moved
}

func (c *Class) Copy() (*Class, error) {
	o, err := c.Object().Copy()
	if err != nil {
		return nil, err
	}
	cp := &Class{}
	cp.obj.set(reference{handle: o.Handle(), global: o.global})
	return cp, nil
}

// Name returns the class name as Class.getName() reports it, e.g.
// "java.lang.String" or "[I".
func (c *Class) Name() (string, error) {
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return "", nullReceiver("getName")
	}
	var name string
	err := withEnv(func(env bridge.Env) (err error) {
		name, err = classNameOf(env, h)
		return err
	})
	return name, err
}

// Parent returns the superclass. The parent of java/lang/Object and of
// interfaces is a null Class.
func (c *Class) Parent() (*Class, error) {
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return nil, nullReceiver("getSuperclass")
	}
	var p *Class
	err := withEnv(func(env bridge.Env) (err error) {
		p, err = wrapClass(env, env.GetSuperclass(h), DeleteLocalInput)
		return err
	})
	return p, err
}

// Field resolves an instance field.
func (c *Class) Field(name, sig string) (bridge.FieldID, error) {
	return c.fieldID(name, sig, false)
}

// StaticField resolves a static field.
func (c *Class) StaticField(name, sig string) (bridge.FieldID, error) {
	return c.fieldID(name, sig, true)
}

// Method resolves an instance method.
func (c *Class) Method(name, sig string) (bridge.MethodID, error) {
	return c.methodID(name, sig, false)
}

// StaticMethod resolves a static method.
func (c *Class) StaticMethod(name, sig string) (bridge.MethodID, error) {
	return c.methodID(name, sig, true)
}

// MethodByToken resolves an instance method from a "name(args)ret" token.
func (c *Class) MethodByToken(token string) (bridge.MethodID, error) {
	name, sig, ok := splitToken(token)
	if !ok {
		return 0, &NameResolutionError{Kind: "method", Name: token}
	}
	return c.methodID(name, sig, false)
}

// StaticMethodByToken resolves a static method from a "name(args)ret" token.
func (c *Class) StaticMethodByToken(token string) (bridge.MethodID, error) {
	name, sig, ok := splitToken(token)
	if !ok {
		return 0, &NameResolutionError{Kind: "static method", Name: token}
	}
	return c.methodID(name, sig, true)
}

// Constructor resolves the constructor with the given descriptor, e.g.
// "(Ljava/lang/String;)V".
func (c *Class) Constructor(sig string) (bridge.MethodID, error) {
	return c.methodID("<init>", sig, false)
}

func (c *Class) methodID(name, sig string, static bool) (bridge.MethodID, error) {
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return 0, nullReceiver("method lookup")
	}
	var id bridge.MethodID
	err := withEnv(func(env bridge.Env) (err error) {
		id, err = methodID(env, h, name, sig, static)
		return err
	})
	return id, err
}

func (c *Class) fieldID(name, sig string, static bool) (bridge.FieldID, error) {
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return 0, nullReceiver("field lookup")
	}
	var id bridge.FieldID
	err := withEnv(func(env bridge.Env) (err error) {
		id, err = fieldID(env, h, name, sig, static)
		return err
	})
	return id, err
}

// methodID resolves a method, clearing the exception a failed lookup leaves
// pending.
func methodID(env bridge.Env, cls bridge.Ref, name, sig string, static bool) (bridge.MethodID, error) {
	var id bridge.MethodID
	kind := "method"
	if static {
		kind = "static method"
		id = env.GetStaticMethodID(cls, name, sig)
	} else {
		id = env.GetMethodID(cls, name, sig)
	}
	if id == 0 {
		clearException(env)
		return 0, &NameResolutionError{Kind: kind, Name: name, Signature: sig}
	}
	return id, nil
}

func fieldID(env bridge.Env, cls bridge.Ref, name, sig string, static bool) (bridge.FieldID, error) {
	var id bridge.FieldID
	kind := "field"
	if static {
		kind = "static field"
		id = env.GetStaticFieldID(cls, name, sig)
	} else {
		id = env.GetFieldID(cls, name, sig)
	}
	if id == 0 {
		clearException(env)
		return 0, &NameResolutionError{Kind: kind, Name: name, Signature: sig}
	}
	return id, nil
}

// NewInstance calls the constructor whose descriptor matches args.
func (c *Class) NewInstance(args ...any) (*Object, error) {
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return nil, nullReceiver("new")
	}
	var o *Object
	err := withEnv(func(env bridge.Env) error {
		params, err := argSignature(env, args)
		if err != nil {
			return err
		}
		ctor, err := methodID(env, h, "<init>", "("+params+")V", false)
		if err != nil {
			return err
		}
		o, err = newObject(env, h, ctor, args)
		return err
	})
	return o, err
}

// NewInstanceWith calls a constructor resolved earlier.
func (c *Class) NewInstanceWith(ctor bridge.MethodID, args ...any) (*Object, error) {
	h, unpin := c.pin()
	defer unpin()
	if h == 0 {
		return nil, nullReceiver("new")
	}
	var o *Object
	err := withEnv(func(env bridge.Env) (err error) {
		o, err = newObject(env, h, ctor, args)
		return err
	})
	return o, err
}

func newObject(env bridge.Env, cls bridge.Ref, ctor bridge.MethodID, args []any) (*Object, error) {
	a, err := marshal(env, args)
	if err != nil {
		return nil, err
	}
	defer a.release(env)
	ref := env.NewObjectA(cls, ctor, a.values)
	if err := checkException(env); err != nil {
		if ref != 0 {
			env.DeleteLocalRef(ref)
		}
		return nil, err
	}
	return wrapObject(env, ref, DeleteLocalInput)
}
