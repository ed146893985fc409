package hostvm

import (
	"strconv"
	"sync/atomic"

	"github.com/daimatz/gojni/pkg/jstring"
)

// Object represents a heap object. Strings keep their UTF-16 code units in
// Native, arrays keep a []Value and class mirrors keep their *Class.
type Object struct {
	Class  *Class
	Fields map[string]Value
	Native any
	hash   int32
}

var identityHash atomic.Int32

func allocate(c *Class) *Object {
	o := &Object{Class: c, Fields: make(map[string]Value), hash: identityHash.Add(0x61c88647)}
	for k := c; k != nil; k = k.Super {
		for _, f := range k.fields {
			if !f.IsStatic() {
				o.Fields[f.Name] = ZeroValue(f.Descriptor)
			}
		}
	}
	return o
}

// IdentityHash returns the identity hash code of o.
func (o *Object) IdentityHash() int32 {
	return o.hash
}

// Elements returns the backing slice of an array object, or nil.
func (o *Object) Elements() []Value {
	if o == nil {
		return nil
	}
	e, _ := o.Native.([]Value)
	return e
}

// Units returns the UTF-16 code units of a string object, or nil.
func (o *Object) Units() []uint16 {
	if o == nil {
		return nil
	}
	u, _ := o.Native.([]uint16)
	return u
}

// GoString converts a string object to a Go string. Null gives "".
func GoString(o *Object) string {
	return jstring.Decode(o.Units())
}

// NewString allocates a java.lang.String.
func (rt *Runtime) NewString(s string) *Object {
	return rt.newStringUnits(jstring.Encode(s))
}

func (rt *Runtime) newStringUnits(u []uint16) *Object {
	o := allocate(rt.mustClass("java/lang/String"))
	o.Native = append([]uint16{}, u...)
	return o
}

// Intern returns the canonical string object for s, as ldc does.
func (rt *Runtime) Intern(s string) *Object {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if o, ok := rt.interned[s]; ok {
		return o
	}
	o := allocate(rt.classes["java/lang/String"])
	o.Native = jstring.Encode(s)
	rt.interned[s] = o
	return o
}

// NewArray allocates an array of the given array class name, such as "[I" or
// "[Ljava/lang/String;".
func (t *Thread) NewArray(className string, n int) (*Object, error) {
	if n < 0 {
		return nil, t.Throw("java/lang/NegativeArraySizeException", strconv.Itoa(n))
	}
	c, err := t.rt.loadClass(className)
	if err != nil {
		return nil, t.noClassDef(className, err)
	}
	o := allocate(c)
	elems := make([]Value, n)
	zero := ZeroValue(c.ComponentType())
	for i := range elems {
		elems[i] = zero
	}
	o.Native = elems
	return o, nil
}

// NewStringArray allocates a String[] holding the given values.
func (t *Thread) NewStringArray(values []string) (*Object, error) {
	arr, err := t.NewArray("[Ljava/lang/String;", len(values))
	if err != nil {
		return nil, err
	}
	elems := arr.Elements()
	for i, s := range values {
		elems[i] = RefValue(t.rt.NewString(s))
	}
	return arr, nil
}
