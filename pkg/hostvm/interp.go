package hostvm

import (
	"errors"
	"fmt"
	"sync"

	"github.com/daimatz/gojni/pkg/classfile"
)

// maxFrameDepth is the maximum number of nested method calls.
const maxFrameDepth = 1024

// Thread is an attached OS thread and its interpreter state.
type Thread struct {
	rt       *Runtime
	id       int64
	env      *env
	pending  *Object
	depth    int
	detached bool
	daemon   bool
}

// Runtime returns the runtime the thread belongs to.
func (t *Thread) Runtime() *Runtime { return t.rt }

var descriptors sync.Map

func parseDescriptor(desc string) (*classfile.MethodDescriptor, error) {
	if md, ok := descriptors.Load(desc); ok {
		return md.(*classfile.MethodDescriptor), nil
	}
	md, err := classfile.ParseMethodDescriptor(desc)
	if err != nil {
		return nil, err
	}
	descriptors.Store(desc, md)
	return md, nil
}

// Invoke runs m with the given receiver and arguments, one Value per
// declared parameter.
func (t *Thread) Invoke(m *Method, this *Object, args []Value) (ret Value, err error) {
	if !m.IsStatic() && this == nil {
		return Value{}, t.Throw("java/lang/NullPointerException", "")
	}
	t.depth++
	defer func() { t.depth-- }()
	if t.depth > maxFrameDepth {
		return Value{}, t.Throw("java/lang/StackOverflowError", "")
	}

	if m.Native != nil {
		return m.Native(t, this, args)
	}
	if m.Code == nil {
		if m.Flags&classfile.AccNative != 0 {
			return Value{}, t.Throw("java/lang/UnsatisfiedLinkError", m.String())
		}
		return Value{}, t.Throw("java/lang/AbstractMethodError", m.String())
	}

	defer func() {
		if r := recover(); r != nil {
			err = t.Throw("java/lang/VerifyError", fmt.Sprintf("%s: %v", m, r))
		}
	}()

	frame := NewFrame(m)
	slot := 0
	if !m.IsStatic() {
		frame.SetLocal(0, RefValue(this))
		slot = 1
	}
	for i, arg := range args {
		frame.SetLocal(slot, arg)
		slot += slots(m.sig.Params[i])
	}
	return t.execute(frame)
}

func (t *Thread) execute(frame *Frame) (Value, error) {
	for frame.PC < len(frame.Code) {
		start := frame.PC
		opcode := frame.ReadU8()

		retVal, hasReturn, err := t.executeInstruction(frame, opcode)
		if err != nil {
			var jex *JavaException
			if errors.As(err, &jex) && t.handle(frame, start, jex) {
				continue
			}
			return Value{}, err
		}
		if hasReturn {
			return retVal, nil
		}
	}
	// Fell off the end of the method (implicit return for void methods)
	return Value{}, nil
}

// handle transfers control to the first exception table entry covering pc
// that catches jex.
func (t *Thread) handle(frame *Frame, pc int, jex *JavaException) bool {
	handlers := frame.Method.Code.ExceptionHandlers
	if len(handlers) == 0 {
		return false
	}
	pool := frame.Method.Class.File.ConstantPool
	for _, h := range handlers {
		if pc < int(h.StartPC) || pc >= int(h.EndPC) {
			continue
		}
		if h.CatchType != 0 {
			name, err := pool.ClassName(h.CatchType)
			if err != nil {
				continue
			}
			catch, err := t.rt.loadClass(name)
			if err != nil || !jex.Object.Class.IsSubclassOf(catch) {
				continue
			}
		}
		frame.SP = 0
		frame.Push(RefValue(jex.Object))
		frame.PC = int(h.HandlerPC)
		return true
	}
	return false
}

// constant resolves a loadable constant pool entry.
func (t *Thread) constant(pool classfile.Pool, index uint16) (Value, error) {
	entry, err := pool.Entry(index)
	if err != nil {
		return Value{}, err
	}
	switch c := entry.(type) {
	case *classfile.ConstantInteger:
		return IntValue(c.Value), nil
	case *classfile.ConstantFloat:
		return FloatValue(c.Value), nil
	case *classfile.ConstantLong:
		return LongValue(c.Value), nil
	case *classfile.ConstantDouble:
		return DoubleValue(c.Value), nil
	case *classfile.ConstantString:
		s, err := pool.Utf8(c.StringIndex)
		if err != nil {
			return Value{}, err
		}
		return RefValue(t.rt.Intern(s)), nil
	case *classfile.ConstantClass:
		name, err := pool.Utf8(c.NameIndex)
		if err != nil {
			return Value{}, err
		}
		cls, err := t.rt.loadClass(name)
		if err != nil {
			return Value{}, t.noClassDef(name, err)
		}
		return RefValue(cls.mirror), nil
	}
	return Value{}, fmt.Errorf("unsupported constant pool entry at index %d (tag=%d)", index, entry.Tag())
}

// FindClass loads and initializes a class by its slash-delimited name.
func (t *Thread) FindClass(name string) (*Class, error) {
	c, err := t.rt.loadClass(name)
	if err != nil {
		return nil, t.noClassDef(name, err)
	}
	if err := t.Initialize(c); err != nil {
		return nil, err
	}
	return c, nil
}

// InvokeVirtual dispatches name/desc on the runtime class of obj.
func (t *Thread) InvokeVirtual(obj *Object, name, desc string, args ...Value) (Value, error) {
	if obj == nil {
		return Value{}, t.Throw("java/lang/NullPointerException", "")
	}
	m := obj.Class.LookupMethod(name, desc)
	if m == nil {
		return Value{}, t.Throw("java/lang/NoSuchMethodError", name+desc)
	}
	return t.Invoke(m, obj, args)
}

// InvokeStatic calls a static method of the named class.
func (t *Thread) InvokeStatic(className, name, desc string, args ...Value) (Value, error) {
	c, err := t.FindClass(className)
	if err != nil {
		return Value{}, err
	}
	m := c.LookupMethod(name, desc)
	if m == nil || !m.IsStatic() {
		return Value{}, t.Throw("java/lang/NoSuchMethodError", name+desc)
	}
	return t.Invoke(m, nil, args)
}

// ToString calls toString on obj. Null gives "null".
func (t *Thread) ToString(obj *Object) (string, error) {
	if obj == nil {
		return "null", nil
	}
	if obj.Class.Name == "java/lang/String" {
		return GoString(obj), nil
	}
	v, err := t.InvokeVirtual(obj, "toString", "()Ljava/lang/String;")
	if err != nil {
		return "", err
	}
	if v.IsNull() {
		return "null", nil
	}
	return GoString(v.Ref), nil
}

// stringify renders a value of type desc the way string concatenation does.
func (t *Thread) stringify(v Value, desc string) (string, error) {
	switch desc {
	case "Z":
		if v.Int != 0 {
			return "true", nil
		}
		return "false", nil
	case "C":
		return string(rune(uint16(v.Int))), nil
	case "B", "S", "I":
		return formatInt(int64(v.Int)), nil
	case "J":
		return formatInt(v.Long), nil
	case "F":
		return formatFloat(float64(v.Float), 32), nil
	case "D":
		return formatFloat(v.Double, 64), nil
	}
	return t.ToString(v.Ref)
}

func isWide(v Value) bool {
	return v.Type == TypeLong || v.Type == TypeDouble
}
