package hostvm

import (
	"fmt"
	"strings"

	"github.com/daimatz/gojni/pkg/bridge"
	"github.com/daimatz/gojni/pkg/classfile"
	"go.uber.org/zap"
)

// NativeFunc implements a method in Go. this is nil for static methods.
type NativeFunc func(t *Thread, this *Object, args []Value) (Value, error)

type classState int

const (
	stateLoaded classState = iota
	stateInitializing
	stateInitialized
)

// Class is a loaded class, interface or array type.
type Class struct {
	Name       string
	Super      *Class
	Interfaces []*Class
	Flags      uint16
	// File is the parsed class file, nil for classes defined in Go.
	File *classfile.ClassFile

	methods map[string]*Method
	fields  map[string]*Field
	statics map[string]Value
	init    func(t *Thread, c *Class) error
	mirror  *Object
	state   classState
}

// Method is a resolved method. Exactly one of Code and Native is set for
// concrete methods.
type Method struct {
	Class      *Class
	Name       string
	Descriptor string
	Flags      uint16
	Code       *classfile.CodeAttribute
	Native     NativeFunc

	sig *classfile.MethodDescriptor
	id  bridge.MethodID
}

func (m *Method) IsStatic() bool { return m.Flags&classfile.AccStatic != 0 }

func (m *Method) String() string {
	return m.Class.Name + "." + m.Name + m.Descriptor
}

// Field is a resolved field.
type Field struct {
	Class      *Class
	Name       string
	Descriptor string
	Flags      uint16

	constant uint16
	id       bridge.FieldID
}

func (f *Field) IsStatic() bool { return f.Flags&classfile.AccStatic != 0 }

// ClassDef declares a class implemented in Go.
type ClassDef struct {
	Name       string
	Super      string
	Interfaces []string
	Flags      uint16
	Fields     []FieldDef
	Methods    []MethodDef
	// Init runs once after static fields receive their defaults.
	Init func(t *Thread, c *Class) error
}

// FieldDef declares a field of a ClassDef. Static fields start at Value, or
// at the descriptor's zero value when Value is unset.
type FieldDef struct {
	Name       string
	Descriptor string
	Static     bool
	Value      *Value
}

// MethodDef declares a method of a ClassDef.
type MethodDef struct {
	Name       string
	Descriptor string
	Static     bool
	Fn         NativeFunc
}

func memberKey(name, desc string) string { return name + ":" + desc }

// IsInterface reports whether c is an interface.
func (c *Class) IsInterface() bool { return c.Flags&classfile.AccInterface != 0 }

// IsArray reports whether c is an array type.
func (c *Class) IsArray() bool { return strings.HasPrefix(c.Name, "[") }

// ComponentType returns the element descriptor of an array class, or "".
func (c *Class) ComponentType() string {
	if !c.IsArray() {
		return ""
	}
	return c.Name[1:]
}

// JavaName returns the binary name with dots, as Class.getName does.
func (c *Class) JavaName() string {
	return strings.ReplaceAll(c.Name, "/", ".")
}

// DeclaredMethod returns the method declared by c itself.
func (c *Class) DeclaredMethod(name, desc string) *Method {
	return c.methods[memberKey(name, desc)]
}

// LookupMethod resolves a method through the superclass chain and then the
// superinterfaces.
func (c *Class) LookupMethod(name, desc string) *Method {
	for k := c; k != nil; k = k.Super {
		if m := k.methods[memberKey(name, desc)]; m != nil {
			return m
		}
	}
	for k := c; k != nil; k = k.Super {
		for _, i := range k.Interfaces {
			if m := i.LookupMethod(name, desc); m != nil {
				return m
			}
		}
	}
	return nil
}

// LookupField resolves a field through the superinterfaces and then the
// superclass chain.
func (c *Class) LookupField(name, desc string) *Field {
	for k := c; k != nil; k = k.Super {
		if f := k.fields[name]; f != nil && (desc == "" || f.Descriptor == desc) {
			return f
		}
		for _, i := range k.Interfaces {
			if f := i.LookupField(name, desc); f != nil {
				return f
			}
		}
	}
	return nil
}

// IsSubclassOf reports whether a value of class c is assignable to other.
func (c *Class) IsSubclassOf(other *Class) bool {
	if c == other {
		return true
	}
	if c.IsArray() {
		if other.Name == "java/lang/Object" {
			return true
		}
		if !other.IsArray() {
			return other.Name == "java/lang/Cloneable" || other.Name == "java/io/Serializable"
		}
		return c.Name == other.Name || (componentIsRef(c.Name) && componentIsRef(other.Name) && other.Name == "[Ljava/lang/Object;")
	}
	for k := c; k != nil; k = k.Super {
		if k == other {
			return true
		}
		for _, i := range k.Interfaces {
			if i.IsSubclassOf(other) {
				return true
			}
		}
	}
	return false
}

func componentIsRef(name string) bool {
	return len(name) > 1 && (name[1] == 'L' || name[1] == '[')
}

// Static returns the value of a static field declared by c.
func (c *Class) Static(name string) Value {
	return c.statics[name]
}

// SetStatic assigns a static field declared by c.
func (c *Class) SetStatic(name string, v Value) {
	c.statics[name] = v
}

// Mirror returns the java.lang.Class object for c.
func (c *Class) Mirror() *Object {
	return c.mirror
}

// link builds a Class from a parsed class file. The superclass and interfaces
// must already be loaded.
func (rt *Runtime) link(cf *classfile.ClassFile) (*Class, error) {
	name, err := cf.ClassName()
	if err != nil {
		return nil, err
	}
	c := &Class{
		Name:    name,
		Flags:   cf.AccessFlags,
		File:    cf,
		methods: make(map[string]*Method),
		fields:  make(map[string]*Field),
		statics: make(map[string]Value),
	}
	if super := cf.SuperClassName(); super != "" {
		if c.Super, err = rt.loadClass(super); err != nil {
			return nil, err
		}
	}
	ifaces, err := cf.InterfaceNames()
	if err != nil {
		return nil, err
	}
	for _, iname := range ifaces {
		i, err := rt.loadClass(iname)
		if err != nil {
			return nil, err
		}
		c.Interfaces = append(c.Interfaces, i)
	}
	for i := range cf.Fields {
		fi := &cf.Fields[i]
		f := &Field{Class: c, Name: fi.Name, Descriptor: fi.Descriptor, Flags: fi.AccessFlags}
		f.constant, _ = fi.ConstantValue()
		c.fields[f.Name] = f
	}
	for i := range cf.Methods {
		mi := &cf.Methods[i]
		sig, err := classfile.ParseMethodDescriptor(mi.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, mi.Name, err)
		}
		c.methods[memberKey(mi.Name, mi.Descriptor)] = &Method{
			Class: c, Name: mi.Name, Descriptor: mi.Descriptor, Flags: mi.AccessFlags, Code: mi.Code, sig: sig,
		}
	}
	return c, nil
}

// build creates a Class from a Go definition.
func (rt *Runtime) build(def ClassDef) (*Class, error) {
	c := &Class{
		Name:    def.Name,
		Flags:   def.Flags | classfile.AccPublic,
		methods: make(map[string]*Method),
		fields:  make(map[string]*Field),
		statics: make(map[string]Value),
		init:    def.Init,
	}
	var err error
	if def.Super != "" {
		if c.Super, err = rt.loadClass(def.Super); err != nil {
			return nil, err
		}
	}
	for _, iname := range def.Interfaces {
		i, err := rt.loadClass(iname)
		if err != nil {
			return nil, err
		}
		c.Interfaces = append(c.Interfaces, i)
	}
	for _, fd := range def.Fields {
		f := &Field{Class: c, Name: fd.Name, Descriptor: fd.Descriptor, Flags: classfile.AccPublic}
		if fd.Static {
			f.Flags |= classfile.AccStatic
			c.statics[fd.Name] = ZeroValue(fd.Descriptor)
			if fd.Value != nil {
				c.statics[fd.Name] = *fd.Value
			}
		}
		c.fields[f.Name] = f
	}
	for _, md := range def.Methods {
		sig, err := classfile.ParseMethodDescriptor(md.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", def.Name, md.Name, err)
		}
		m := &Method{Class: c, Name: md.Name, Descriptor: md.Descriptor, Flags: classfile.AccPublic, Native: md.Fn, sig: sig}
		if md.Static {
			m.Flags |= classfile.AccStatic
		}
		if md.Fn == nil {
			m.Flags |= classfile.AccAbstract
		}
		c.methods[memberKey(md.Name, md.Descriptor)] = m
	}
	return c, nil
}

// arrayClass creates the class of an array type.
func (rt *Runtime) arrayClass(name string) (*Class, error) {
	elem := name[1:]
	if !classfile.ValidFieldDescriptor(elem) {
		return nil, fmt.Errorf("invalid array class name %s", name)
	}
	if elem[0] == 'L' || elem[0] == '[' {
		if _, err := rt.loadClass(classfile.ClassNameOf(elem)); err != nil {
			return nil, err
		}
	}
	object, err := rt.loadClass("java/lang/Object")
	if err != nil {
		return nil, err
	}
	return &Class{
		Name:    name,
		Super:   object,
		Flags:   classfile.AccPublic | classfile.AccFinal,
		methods: map[string]*Method{},
		fields:  map[string]*Field{},
		statics: map[string]Value{},
		state:   stateInitialized,
	}, nil
}

// Initialize runs static initialisation of c and its superclasses once.
// Re-entrant calls from the initialising thread return immediately.
func (t *Thread) Initialize(c *Class) error {
	rt := t.rt
	rt.mu.Lock()
	if c.state != stateLoaded {
		rt.mu.Unlock()
		return nil
	}
	c.state = stateInitializing
	rt.mu.Unlock()

	err := t.runInitializer(c)

	rt.mu.Lock()
	if err != nil {
		c.state = stateLoaded
	} else {
		c.state = stateInitialized
	}
	rt.mu.Unlock()
	return err
}

func (t *Thread) runInitializer(c *Class) error {
	if c.Super != nil {
		if err := t.Initialize(c.Super); err != nil {
			return err
		}
	}
	if c.File != nil {
		for _, f := range c.fields {
			if !f.IsStatic() {
				continue
			}
			v := ZeroValue(f.Descriptor)
			if f.constant != 0 {
				cv, err := t.constant(c.File.ConstantPool, f.constant)
				if err != nil {
					return err
				}
				v = cv
			}
			c.statics[f.Name] = v
		}
	}
	if c.init != nil {
		if err := c.init(t, c); err != nil {
			return err
		}
	}
	if clinit := c.DeclaredMethod("<clinit>", "()V"); clinit != nil {
		t.rt.log.Debug("running static initializer", zap.String("class", c.Name))
		if _, err := t.Invoke(clinit, nil, nil); err != nil {
			return t.wrapInitError(err)
		}
	}
	return nil
}
