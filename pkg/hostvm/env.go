package hostvm

import (
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/daimatz/gojni/internal/osthread"
	"github.com/daimatz/gojni/pkg/bridge"
	"github.com/daimatz/gojni/pkg/classfile"
	"github.com/daimatz/gojni/pkg/jstring"
)

// env is the per-thread bridge.Env. Misuse that would crash a native VM is
// recorded as a violation instead.
type env struct {
	t *Thread
}

var _ bridge.Env = (*env)(nil)

// check validates the calling context of fn. pendingOK marks the functions
// that may be called while an exception is pending.
func (e *env) check(fn string, pendingOK bool) bool {
	t := e.t
	if t.detached {
		t.rt.violate("%s: thread %d is detached", fn, t.id)
		return false
	}
	if id := osthread.ID(); id != t.id {
		t.rt.violate("%s: env of thread %d used on thread %d", fn, t.id, id)
	}
	if !pendingOK && t.pending != nil {
		t.rt.violate("%s: called with %s pending", fn, t.pending.Class.JavaName())
	}
	return true
}

func (e *env) deref(fn string, r bridge.Ref) *Object {
	if r == 0 {
		return nil
	}
	rt := e.t.rt
	rt.mu.Lock()
	entry, ok := rt.refs[r]
	rt.mu.Unlock()
	if !ok {
		rt.violate("%s: invalid reference %#x", fn, uintptr(r))
		return nil
	}
	if !entry.global && entry.owner != e.t {
		rt.violate("%s: local reference %#x used outside its thread", fn, uintptr(r))
	}
	return entry.obj
}

func (e *env) class(fn string, r bridge.Ref) *Class {
	o := e.deref(fn, r)
	c := ClassOf(o)
	if o != nil && c == nil {
		e.t.rt.violate("%s: reference %#x is not a class", fn, uintptr(r))
	}
	return c
}

func (e *env) local(o *Object) bridge.Ref {
	return e.t.rt.newRef(o, false, e.t)
}

// raise leaves err pending as a Throwable.
func (e *env) raise(err error) {
	e.t.pending = e.t.asJava(err)
	e.t.rt.log.Debug("exception pending", zap.Int64("tid", e.t.id), zap.String("exception", e.t.pending.Class.JavaName()))
}

func (e *env) GetVersion() int32 {
	return bridge.Version10
}

func (e *env) DefineClass(name string, loader bridge.Ref, buf []byte) bridge.Ref {
	if !e.check("DefineClass", false) {
		return 0
	}
	cf, err := classfile.ParseBytes(buf)
	if err != nil {
		e.raise(e.t.Throw("java/lang/ClassFormatError", err.Error()))
		return 0
	}
	actual, err := cf.ClassName()
	if err != nil {
		e.raise(e.t.Throw("java/lang/ClassFormatError", err.Error()))
		return 0
	}
	if name != "" && name != actual {
		e.raise(e.t.Throw("java/lang/NoClassDefFoundError", actual+" (wrong name: "+name+")"))
		return 0
	}
	c, err := e.t.rt.DefineClassFile(cf)
	if errors.Is(err, errDuplicateClass) {
		e.raise(e.t.Throw("java/lang/LinkageError", "duplicate class definition for name: \""+actual+"\""))
		return 0
	}
	if err != nil {
		e.raise(e.t.noClassDef(actual, err))
		return 0
	}
	return e.local(c.mirror)
}

func (e *env) FindClass(name string) bridge.Ref {
	if !e.check("FindClass", false) {
		return 0
	}
	c, err := e.t.FindClass(name)
	if err != nil {
		e.raise(err)
		return 0
	}
	return e.local(c.mirror)
}

func (e *env) GetSuperclass(cls bridge.Ref) bridge.Ref {
	if !e.check("GetSuperclass", false) {
		return 0
	}
	c := e.class("GetSuperclass", cls)
	if c == nil || c.Super == nil || c.IsInterface() {
		return 0
	}
	return e.local(c.Super.mirror)
}

func (e *env) IsAssignableFrom(sub, sup bridge.Ref) bool {
	if !e.check("IsAssignableFrom", false) {
		return false
	}
	a, b := e.class("IsAssignableFrom", sub), e.class("IsAssignableFrom", sup)
	return a != nil && b != nil && a.IsSubclassOf(b)
}

func (e *env) Throw(obj bridge.Ref) bridge.Status {
	if !e.check("Throw", false) {
		return bridge.ErrFailed
	}
	o := e.deref("Throw", obj)
	if o == nil || !o.Class.IsSubclassOf(e.t.rt.mustClass("java/lang/Throwable")) {
		return bridge.ErrInvalid
	}
	e.t.pending = o
	return bridge.OK
}

func (e *env) ThrowNew(cls bridge.Ref, msg string) bridge.Status {
	if !e.check("ThrowNew", false) {
		return bridge.ErrFailed
	}
	c := e.class("ThrowNew", cls)
	if c == nil {
		return bridge.ErrInvalid
	}
	ctor := c.DeclaredMethod("<init>", "(Ljava/lang/String;)V")
	if ctor == nil {
		e.raise(e.t.Throw("java/lang/NoSuchMethodError", "<init>(Ljava/lang/String;)V"))
		return bridge.ErrFailed
	}
	o := allocate(c)
	if _, err := e.t.Invoke(ctor, o, []Value{RefValue(e.t.rt.NewString(msg))}); err != nil {
		e.raise(err)
		return bridge.ErrFailed
	}
	e.t.pending = o
	return bridge.OK
}

func (e *env) ExceptionOccurred() bridge.Ref {
	if !e.check("ExceptionOccurred", true) {
		return 0
	}
	return e.local(e.t.pending)
}

func (e *env) ExceptionDescribe() {
	if !e.check("ExceptionDescribe", true) || e.t.pending == nil {
		return
	}
	o := e.t.pending
	e.t.pending = nil
	trace, err := e.t.describe(o)
	if err != nil {
		trace = "Exception in thread: " + o.Class.JavaName() + "\n"
	}
	_, _ = io.WriteString(e.t.rt.stderr, trace)
}

func (e *env) ExceptionClear() {
	if e.check("ExceptionClear", true) {
		e.t.pending = nil
	}
}

func (e *env) ExceptionCheck() bool {
	return e.check("ExceptionCheck", true) && e.t.pending != nil
}

func (e *env) NewGlobalRef(ref bridge.Ref) bridge.Ref {
	if !e.check("NewGlobalRef", false) {
		return 0
	}
	return e.t.rt.newRef(e.deref("NewGlobalRef", ref), true, nil)
}

func (e *env) DeleteGlobalRef(ref bridge.Ref) {
	e.deleteRef("DeleteGlobalRef", ref, true)
}

func (e *env) DeleteLocalRef(ref bridge.Ref) {
	e.deleteRef("DeleteLocalRef", ref, false)
}

func (e *env) deleteRef(fn string, ref bridge.Ref, global bool) {
	if ref == 0 || !e.check(fn, true) {
		return
	}
	rt := e.t.rt
	rt.mu.Lock()
	entry, ok := rt.refs[ref]
	valid := ok && entry.global == global && (global || entry.owner == e.t)
	if valid {
		delete(rt.refs, ref)
	}
	rt.mu.Unlock()
	if !valid {
		rt.violate("%s: invalid reference %#x", fn, uintptr(ref))
	}
}

func (e *env) IsSameObject(a, b bridge.Ref) bool {
	if !e.check("IsSameObject", true) {
		return false
	}
	return e.deref("IsSameObject", a) == e.deref("IsSameObject", b)
}

func (e *env) NewLocalRef(ref bridge.Ref) bridge.Ref {
	if !e.check("NewLocalRef", false) {
		return 0
	}
	return e.local(e.deref("NewLocalRef", ref))
}

func (e *env) NewObjectA(cls bridge.Ref, ctor bridge.MethodID, args []bridge.Value) bridge.Ref {
	if !e.check("NewObjectA", false) {
		return 0
	}
	c := e.class("NewObjectA", cls)
	m := e.t.rt.method(ctor)
	if c == nil || m == nil || m.Name != "<init>" || m.Class != c {
		e.t.rt.violate("NewObjectA: invalid constructor ID %d", ctor)
		return 0
	}
	if c.Flags&(classfile.AccAbstract|classfile.AccInterface) != 0 {
		e.raise(e.t.Throw("java/lang/InstantiationException", c.JavaName()))
		return 0
	}
	if err := e.t.Initialize(c); err != nil {
		e.raise(err)
		return 0
	}
	values, ok := e.arguments("NewObjectA", m, args)
	if !ok {
		return 0
	}
	o := allocate(c)
	if _, err := e.t.Invoke(m, o, values); err != nil {
		e.raise(err)
		return 0
	}
	return e.local(o)
}

func (e *env) GetObjectClass(obj bridge.Ref) bridge.Ref {
	if !e.check("GetObjectClass", false) {
		return 0
	}
	o := e.deref("GetObjectClass", obj)
	if o == nil {
		e.t.rt.violate("GetObjectClass: null object")
		return 0
	}
	return e.local(o.Class.mirror)
}

func (e *env) IsInstanceOf(obj, cls bridge.Ref) bool {
	if !e.check("IsInstanceOf", false) {
		return false
	}
	o, c := e.deref("IsInstanceOf", obj), e.class("IsInstanceOf", cls)
	return o == nil || (c != nil && o.Class.IsSubclassOf(c))
}

func (e *env) GetMethodID(cls bridge.Ref, name, sig string) bridge.MethodID {
	return e.methodID("GetMethodID", cls, name, sig, false)
}

func (e *env) GetStaticMethodID(cls bridge.Ref, name, sig string) bridge.MethodID {
	return e.methodID("GetStaticMethodID", cls, name, sig, true)
}

func (e *env) methodID(fn string, cls bridge.Ref, name, sig string, static bool) bridge.MethodID {
	if !e.check(fn, false) {
		return 0
	}
	c := e.class(fn, cls)
	if c == nil {
		return 0
	}
	if err := e.t.Initialize(c); err != nil {
		e.raise(err)
		return 0
	}
	var m *Method
	if name == "<init>" {
		m = c.DeclaredMethod(name, sig)
	} else {
		m = c.LookupMethod(name, sig)
	}
	if m == nil || m.IsStatic() != static {
		e.raise(e.t.Throw("java/lang/NoSuchMethodError", name))
		return 0
	}
	return m.id
}

func (e *env) GetFieldID(cls bridge.Ref, name, sig string) bridge.FieldID {
	return e.fieldID("GetFieldID", cls, name, sig, false)
}

func (e *env) GetStaticFieldID(cls bridge.Ref, name, sig string) bridge.FieldID {
	return e.fieldID("GetStaticFieldID", cls, name, sig, true)
}

func (e *env) fieldID(fn string, cls bridge.Ref, name, sig string, static bool) bridge.FieldID {
	if !e.check(fn, false) {
		return 0
	}
	c := e.class(fn, cls)
	if c == nil {
		return 0
	}
	if err := e.t.Initialize(c); err != nil {
		e.raise(err)
		return 0
	}
	f := c.LookupField(name, sig)
	if f == nil || f.IsStatic() != static {
		e.raise(e.t.Throw("java/lang/NoSuchFieldError", name))
		return 0
	}
	return f.id
}

type callMode int

const (
	virtualCall callMode = iota
	nonvirtualCall
	staticCall
)

func (e *env) call(fn string, mode callMode, obj, cls bridge.Ref, id bridge.MethodID, args []bridge.Value) Value {
	if !e.check(fn, false) {
		return Value{}
	}
	m := e.t.rt.method(id)
	if m == nil || m.IsStatic() != (mode == staticCall) {
		e.t.rt.violate("%s: invalid method ID %d", fn, id)
		return Value{}
	}
	if ret := m.Descriptor[strings.IndexByte(m.Descriptor, ')')+1:]; !accessorMatches(fn, ret) {
		e.t.rt.violate("%s: %s returns %s", fn, m, ret)
	}
	var this *Object
	switch mode {
	case staticCall:
		if c := e.class(fn, cls); c == nil || !c.IsSubclassOf(m.Class) {
			e.t.rt.violate("%s: %s is not a member of the given class", fn, m)
		}
		if err := e.t.Initialize(m.Class); err != nil {
			e.raise(err)
			return Value{}
		}
	default:
		if this = e.deref(fn, obj); this == nil {
			e.t.rt.violate("%s: null receiver", fn)
			e.raise(e.t.Throw("java/lang/NullPointerException", ""))
			return Value{}
		}
		if mode == virtualCall {
			if impl := this.Class.LookupMethod(m.Name, m.Descriptor); impl != nil {
				m = impl
			}
		}
	}
	values, ok := e.arguments(fn, m, args)
	if !ok {
		return Value{}
	}
	ret, err := e.t.Invoke(m, this, values)
	if err != nil {
		e.raise(err)
		return Value{}
	}
	return ret
}

// arguments converts a jvalue array to interpreter values following the
// method's parameter types.
func (e *env) arguments(fn string, m *Method, args []bridge.Value) ([]Value, bool) {
	params := m.sig.Params
	if len(args) < len(params) {
		e.t.rt.violate("%s: %s takes %d arguments, got %d", fn, m, len(params), len(args))
		return nil, false
	}
	values := make([]Value, len(params))
	for i, p := range params {
		a := args[i]
		switch p[0] {
		case 'Z':
			values[i] = BoolValue(a.Bool())
		case 'B':
			values[i] = IntValue(int32(a.Byte()))
		case 'C':
			values[i] = IntValue(int32(a.Char()))
		case 'S':
			values[i] = IntValue(int32(a.Short()))
		case 'I':
			values[i] = IntValue(a.Int())
		case 'J':
			values[i] = LongValue(a.Long())
		case 'F':
			values[i] = FloatValue(a.Float())
		case 'D':
			values[i] = DoubleValue(a.Double())
		default:
			values[i] = RefValue(e.deref(fn, a.Ref()))
		}
	}
	return values, true
}

func (e *env) fieldOf(fn string, id bridge.FieldID, static bool) *Field {
	f := e.t.rt.field(id)
	if f == nil || f.IsStatic() != static {
		e.t.rt.violate("%s: invalid field ID %d", fn, id)
		return nil
	}
	if !accessorMatches(fn, f.Descriptor) {
		e.t.rt.violate("%s: field %s has type %s", fn, f.Name, f.Descriptor)
	}
	return f
}

// accessorKinds maps the type word in a typed function name to the
// descriptor character it accepts.
var accessorKinds = []struct {
	word string
	desc byte
}{
	{"Void", 'V'}, {"Boolean", 'Z'}, {"Byte", 'B'}, {"Char", 'C'}, {"Short", 'S'},
	{"Int", 'I'}, {"Long", 'J'}, {"Float", 'F'}, {"Double", 'D'}, {"Object", 'L'},
}

// accessorMatches reports whether the typed function fn may read or return
// a value of descriptor desc. Untyped functions match everything.
func accessorMatches(fn, desc string) bool {
	got := desc[0]
	if got == '[' {
		got = 'L'
	}
	for _, k := range accessorKinds {
		if strings.Contains(fn, k.word) {
			return k.desc == got
		}
	}
	return true
}

func (e *env) getField(fn string, obj bridge.Ref, id bridge.FieldID) Value {
	if !e.check(fn, false) {
		return Value{}
	}
	f, o := e.fieldOf(fn, id, false), e.deref(fn, obj)
	if f == nil || o == nil {
		return Value{}
	}
	v, ok := o.Fields[f.Name]
	if !ok {
		v = ZeroValue(f.Descriptor)
	}
	return v
}

func (e *env) setField(fn string, obj bridge.Ref, id bridge.FieldID, v Value) {
	if !e.check(fn, false) {
		return
	}
	f, o := e.fieldOf(fn, id, false), e.deref(fn, obj)
	if f == nil || o == nil {
		return
	}
	o.Fields[f.Name] = v
}

func (e *env) getStatic(fn string, cls bridge.Ref, id bridge.FieldID) Value {
	if !e.check(fn, false) {
		return Value{}
	}
	f := e.fieldOf(fn, id, true)
	if f == nil {
		return Value{}
	}
	if err := e.t.Initialize(f.Class); err != nil {
		e.raise(err)
		return Value{}
	}
	return f.Class.Static(f.Name)
}

func (e *env) setStatic(fn string, cls bridge.Ref, id bridge.FieldID, v Value) {
	if !e.check(fn, false) {
		return
	}
	f := e.fieldOf(fn, id, true)
	if f == nil {
		return
	}
	if err := e.t.Initialize(f.Class); err != nil {
		e.raise(err)
		return
	}
	f.Class.SetStatic(f.Name, v)
}

func (e *env) str(fn string, s bridge.Ref) *Object {
	o := e.deref(fn, s)
	if o == nil || o.Class.Name != "java/lang/String" {
		e.t.rt.violate("%s: reference %#x is not a string", fn, uintptr(s))
		return nil
	}
	return o
}

func (e *env) NewString(chars []uint16) bridge.Ref {
	if !e.check("NewString", false) {
		return 0
	}
	return e.local(e.t.rt.newStringUnits(chars))
}

func (e *env) GetStringLength(s bridge.Ref) int32 {
	if !e.check("GetStringLength", false) {
		return 0
	}
	return int32(len(e.str("GetStringLength", s).Units()))
}

func (e *env) GetStringChars(s bridge.Ref) []uint16 {
	if !e.check("GetStringChars", false) {
		return nil
	}
	return append([]uint16{}, e.str("GetStringChars", s).Units()...)
}

func (e *env) NewStringUTF(b []byte) bridge.Ref {
	if !e.check("NewStringUTF", false) {
		return 0
	}
	return e.local(e.t.rt.newStringUnits(jstring.DecodeModifiedUnits(b)))
}

func (e *env) GetStringUTFLength(s bridge.Ref) int32 {
	if !e.check("GetStringUTFLength", false) {
		return 0
	}
	return int32(len(jstring.EncodeModifiedUnits(e.str("GetStringUTFLength", s).Units())))
}

func (e *env) GetStringUTFChars(s bridge.Ref) []byte {
	if !e.check("GetStringUTFChars", false) {
		return nil
	}
	return jstring.EncodeModifiedUnits(e.str("GetStringUTFChars", s).Units())
}

func (e *env) array(fn string, arr bridge.Ref) *Object {
	o := e.deref(fn, arr)
	if o == nil || !o.Class.IsArray() {
		e.t.rt.violate("%s: reference %#x is not an array", fn, uintptr(arr))
		return nil
	}
	return o
}

func (e *env) GetArrayLength(arr bridge.Ref) int32 {
	if !e.check("GetArrayLength", false) {
		return 0
	}
	return int32(len(e.array("GetArrayLength", arr).Elements()))
}

func (e *env) NewObjectArray(length int32, elem, init bridge.Ref) bridge.Ref {
	if !e.check("NewObjectArray", false) {
		return 0
	}
	c := e.class("NewObjectArray", elem)
	if c == nil {
		return 0
	}
	arr, err := e.t.NewArray("["+componentDescriptor(c.Name), int(length))
	if err != nil {
		e.raise(err)
		return 0
	}
	if v := e.deref("NewObjectArray", init); v != nil {
		for i := range arr.Elements() {
			arr.Elements()[i] = RefValue(v)
		}
	}
	return e.local(arr)
}

func (e *env) GetObjectArrayElement(arr bridge.Ref, index int32) bridge.Ref {
	if !e.check("GetObjectArrayElement", false) {
		return 0
	}
	elems, err := e.t.arrayElements(RefValue(e.array("GetObjectArrayElement", arr)), index)
	if err != nil {
		e.raise(err)
		return 0
	}
	return e.local(elems[index].Ref)
}

func (e *env) SetObjectArrayElement(arr bridge.Ref, index int32, v bridge.Ref) {
	if !e.check("SetObjectArrayElement", false) {
		return
	}
	a := e.array("SetObjectArrayElement", arr)
	elems, err := e.t.arrayElements(RefValue(a), index)
	if err != nil {
		e.raise(err)
		return
	}
	o := e.deref("SetObjectArrayElement", v)
	if o != nil {
		comp, err := e.t.rt.loadClass(classfile.ClassNameOf(a.Class.ComponentType()))
		if err != nil || !o.Class.IsSubclassOf(comp) {
			e.raise(e.t.Throw("java/lang/ArrayStoreException", o.Class.JavaName()))
			return
		}
	}
	elems[index] = RefValue(o)
}

func (e *env) GetJavaVM() (bridge.JavaVM, error) {
	return e.t.rt, nil
}
