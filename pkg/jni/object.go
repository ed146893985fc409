package jni

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/daimatz/gojni/pkg/bridge"
)

// Object is a reference to a java.lang.Object. The zero value and a nil
// *Object are the null object.
//
// An Object owns a global reference unless it was wrapped as Temporary, and
// lazily caches a global reference to its runtime class. Release drops both.
//
// Methods and the Call, Get and Set families may be used concurrently on one
// Object, including with Release and Move, which wait for operations that
// hold o as their receiver or class. An Object passed as an argument is read
// once and must stay alive until the call returns.
type Object struct {
	mu     sync.RWMutex // shared while the handle is in use
	handle atomic.Uintptr
	global bool

	classMu sync.Mutex
	class   bridge.Ref // global, owned
}

func newObjectRef(r reference) *Object {
	o := &Object{}
	o.set(r)
	return o
}

func (o *Object) set(r reference) {
	o.handle.Store(uintptr(r.handle))
	o.global = r.global
}

// WrapObject takes over a handle obtained from the bridge.
func WrapObject(ref bridge.Ref, flags ScopeFlags) (*Object, error) {
	var o *Object
	err := withEnv(func(env bridge.Env) (err error) {
		o, err = wrapObject(env, ref, flags)
		return err
	})
	return o, err
}

func wrapObject(env bridge.Env, ref bridge.Ref, flags ScopeFlags) (*Object, error) {
	r, err := newReference(env, ref, flags)
	if err != nil {
		return nil, err
	}
	return newObjectRef(r), nil
}

// Handle returns the underlying handle, or 0 for null.
func (o *Object) Handle() bridge.Ref {
	if o == nil {
		return 0
	}
	return bridge.Ref(o.handle.Load())
}

// pin returns the handle and keeps it from being released until unpin is
// called.
func (o *Object) pin() (h bridge.Ref, unpin func()) {
	if o == nil {
		return 0, func() {}
	}
	o.mu.RLock()
	return o.Handle(), o.mu.RUnlock
}

// pinPair pins two objects in address order.
func pinPair(a, b *Object) (ha, hb bridge.Ref, unpin func()) {
	if a == b {
		h, u := a.pin()
		return h, h, u
	}
	first, second := a, b
	if uintptr(unsafe.Pointer(b)) < uintptr(unsafe.Pointer(a)) {
		first, second = b, a
	}
	_, u1 := first.pin()
	_, u2 := second.pin()
	return a.Handle(), b.Handle(), func() {
		u2()
		u1()
	}
}

// IsNull reports whether o refers to no object.
func (o *Object) IsNull() bool {
	h, unpin := o.pin()
	defer unpin()
	if h == 0 {
		return true
	}
	null := false
	_ = withEnv(func(env bridge.Env) error {
		null = env.IsSameObject(h, 0)
		return nil
	})
	return null
}

// Equal reports whether o and other refer to the same Java object. Two null
// objects are equal.
func (o *Object) Equal(other *Object) bool {
	a, b, unpin := pinPair(o, other)
	defer unpin()
	if a == b {
		return true
	}
	same := false
	_ = withEnv(func(env bridge.Env) error {
		same = env.IsSameObject(a, b)
		return nil
	})
	return same
}

// Copy returns a new Object with its own global reference to the same Java
// object.
func (o *Object) Copy() (*Object, error) {
	h, unpin := o.pin()
	defer unpin()
	if h == 0 {
		return &Object{}, nil
	}
	var c *Object
	err := withEnv(func(env bridge.Env) error {
		c = newObjectRef(reference{handle: h}.copy(env))
		return nil
	})
	return c, err
}

// Move transfers o's references to a new Object and leaves o null.
func (o *Object) Move() *Object {
	m := &Object{}
	if o == nil {
		return m
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.classMu.Lock()
	defer o.classMu.Unlock()
	m.set(reference{handle: o.Handle(), global: o.global})
	m.class = o.class
	o.set(reference{})
	o.class = 0
	return m
}

// Release deletes the references o owns and leaves it null. Releasing a
// null object does nothing.
func (o *Object) Release() error {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.classMu.Lock()
	defer o.classMu.Unlock()
	if o.Handle() == 0 && o.class == 0 {
		return nil
	}
	return withEnv(func(env bridge.Env) error {
		r := reference{handle: o.Handle(), global: o.global}
		r.release(env)
		o.set(reference{})
		if o.class != 0 {
			env.DeleteGlobalRef(o.class)
			o.class = 0
		}
		return nil
	})
}

// Class returns the runtime class of o. The result borrows o's cached class
// reference and must not outlive o.
func (o *Object) Class() (*Class, error) {
	h, unpin := o.pin()
	defer unpin()
	if h == 0 {
		return nil, nullReceiver("getClass")
	}
	var c *Class
	err := withEnv(func(env bridge.Env) error {
		cls, err := o.classRef(env)
		if err != nil {
			return err
		}
		c = &Class{}
		c.obj.set(reference{handle: cls})
		return nil
	})
	return c, err
}

// classRef returns the cached runtime class, resolving it on first use.
func (o *Object) classRef(env bridge.Env) (bridge.Ref, error) {
	o.classMu.Lock()
	defer o.classMu.Unlock()
	if o.class != 0 {
		return o.class, nil
	}
	h := o.Handle()
	if h == 0 {
		return 0, nullReceiver("getClass")
	}
	local := env.GetObjectClass(h)
	if err := checkException(env); err != nil {
		return 0, err
	}
	o.class = env.NewGlobalRef(local)
	env.DeleteLocalRef(local)
	return o.class, nil
}

// IsInstanceOf reports whether o is an instance of c. The null object is an
// instance of every class.
func (o *Object) IsInstanceOf(c *Class) (bool, error) {
	h, cls, unpin := pinPair(o, c.Object())
	defer unpin()
	if cls == 0 {
		return false, nullReceiver("instanceof")
	}
	var ok bool
	err := withEnv(func(env bridge.Env) error {
		ok = env.IsInstanceOf(h, cls)
		return checkException(env)
	})
	return ok, err
}

// signature returns the descriptor of o's runtime class.
func (o *Object) signature(env bridge.Env) (string, error) {
	if o.Handle() == 0 || env.IsSameObject(o.Handle(), 0) {
		return objectSig, nil
	}
	cls, err := o.classRef(env)
	if err != nil {
		return "", err
	}
	name, err := classNameOf(env, cls)
	if err != nil {
		return "", err
	}
	return runtimeSignature(name), nil
}

func (o *Object) method(env bridge.Env, name, sig string) (bridge.MethodID, error) {
	cls, err := o.classRef(env)
	if err != nil {
		return 0, err
	}
	return methodID(env, cls, name, sig, false)
}

func (o *Object) field(env bridge.Env, name, sig string) (bridge.FieldID, error) {
	cls, err := o.classRef(env)
	if err != nil {
		return 0, err
	}
	return fieldID(env, cls, name, sig, false)
}
