package classfile

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/daimatz/gojni/pkg/jstring"
)

// Default class file version written by Builder (Java 11).
const (
	BuilderMajorVersion = 55
	BuilderMinorVersion = 0
)

type writer struct {
	buf bytes.Buffer
}

func (w *writer) u1(v uint8)  { w.buf.WriteByte(v) }
func (w *writer) u2(v uint16) { w.buf.Write(binary.BigEndian.AppendUint16(nil, v)) }
func (w *writer) u4(v uint32) { w.buf.Write(binary.BigEndian.AppendUint32(nil, v)) }
func (w *writer) u8(v uint64) { w.buf.Write(binary.BigEndian.AppendUint64(nil, v)) }

func (w *writer) attribute(name uint16, data []byte) {
	w.u2(name)
	w.u4(uint32(len(data)))
	w.buf.Write(data)
}

func (c *ConstantUtf8) write(w *writer) {
	b := jstring.EncodeModified(c.Value)
	w.u1(TagUtf8)
	w.u2(uint16(len(b)))
	w.buf.Write(b)
}

func (c *ConstantInteger) write(w *writer) {
	w.u1(TagInteger)
	w.u4(uint32(c.Value))
}

func (c *ConstantFloat) write(w *writer) {
	w.u1(TagFloat)
	w.u4(math.Float32bits(c.Value))
}

func (c *ConstantLong) write(w *writer) {
	w.u1(TagLong)
	w.u8(uint64(c.Value))
}

func (c *ConstantDouble) write(w *writer) {
	w.u1(TagDouble)
	w.u8(math.Float64bits(c.Value))
}

func (c *ConstantClass) write(w *writer) {
	w.u1(TagClass)
	w.u2(c.NameIndex)
}

func (c *ConstantString) write(w *writer) {
	w.u1(TagString)
	w.u2(c.StringIndex)
}

func (c *ConstantMemberRef) write(w *writer) {
	w.u1(c.tag)
	w.u2(c.ClassIndex)
	w.u2(c.NameAndTypeIndex)
}

func (c *ConstantNameAndType) write(w *writer) {
	w.u1(TagNameAndType)
	w.u2(c.NameIndex)
	w.u2(c.DescriptorIndex)
}

func (c *ConstantMethodHandle) write(w *writer) {
	w.u1(TagMethodHandle)
	w.u1(c.ReferenceKind)
	w.u2(c.ReferenceIndex)
}

func (c *ConstantMethodType) write(w *writer) {
	w.u1(TagMethodType)
	w.u2(c.DescriptorIndex)
}

func (c *ConstantDynamic) write(w *writer) {
	w.u1(c.tag)
	w.u2(c.BootstrapMethodAttrIndex)
	w.u2(c.NameAndTypeIndex)
}

// Builder assembles a class file. Constant pool entries are deduplicated.
type Builder struct {
	pool       Pool
	index      map[string]uint16
	access     uint16
	this       uint16
	super      uint16
	interfaces []uint16
	fields     []builtMember
	methods    []builtMember
	bootstrap  []BootstrapMethod
}

type builtMember struct {
	access uint16
	name   uint16
	desc   uint16
	attrs  []builtAttr
}

type builtAttr struct {
	name uint16
	data []byte
}

// NewBuilder starts a public class. An empty super means java/lang/Object.
func NewBuilder(name, super string) *Builder {
	b := &Builder{
		pool:   Pool{nil},
		index:  make(map[string]uint16),
		access: AccPublic | AccSuper,
	}
	if super == "" {
		super = "java/lang/Object"
	}
	b.this = b.Class(name)
	b.super = b.Class(super)
	return b
}

// SetAccess replaces the class access flags.
func (b *Builder) SetAccess(flags uint16) *Builder {
	b.access = flags
	return b
}

// Implements adds a superinterface.
func (b *Builder) Implements(name string) *Builder {
	b.interfaces = append(b.interfaces, b.Class(name))
	return b
}

func (b *Builder) add(key string, e ConstantPoolEntry) uint16 {
	if idx, ok := b.index[key]; ok {
		return idx
	}
	idx := uint16(len(b.pool))
	b.pool = append(b.pool, e)
	if e.Tag() == TagLong || e.Tag() == TagDouble {
		b.pool = append(b.pool, nil)
	}
	b.index[key] = idx
	return idx
}

func (b *Builder) Utf8(s string) uint16 {
	return b.add("u:"+s, &ConstantUtf8{Value: s})
}

func (b *Builder) Class(name string) uint16 {
	return b.add("c:"+name, &ConstantClass{NameIndex: b.Utf8(name)})
}

func (b *Builder) String(s string) uint16 {
	return b.add("s:"+s, &ConstantString{StringIndex: b.Utf8(s)})
}

func (b *Builder) Integer(v int32) uint16 {
	return b.add("i:"+string(binary.BigEndian.AppendUint32(nil, uint32(v))), &ConstantInteger{Value: v})
}

func (b *Builder) Float(v float32) uint16 {
	return b.add("f:"+string(binary.BigEndian.AppendUint32(nil, math.Float32bits(v))), &ConstantFloat{Value: v})
}

func (b *Builder) Long(v int64) uint16 {
	return b.add("j:"+string(binary.BigEndian.AppendUint64(nil, uint64(v))), &ConstantLong{Value: v})
}

func (b *Builder) Double(v float64) uint16 {
	return b.add("d:"+string(binary.BigEndian.AppendUint64(nil, math.Float64bits(v))), &ConstantDouble{Value: v})
}

func (b *Builder) NameAndType(name, desc string) uint16 {
	return b.add("n:"+name+":"+desc, &ConstantNameAndType{NameIndex: b.Utf8(name), DescriptorIndex: b.Utf8(desc)})
}

func (b *Builder) member(tag uint8, class, name, desc string) uint16 {
	key := string(rune('0'+tag)) + ":" + class + "." + name + ":" + desc
	return b.add(key, &ConstantMemberRef{tag: tag, ClassIndex: b.Class(class), NameAndTypeIndex: b.NameAndType(name, desc)})
}

func (b *Builder) Fieldref(class, name, desc string) uint16 {
	return b.member(TagFieldref, class, name, desc)
}

func (b *Builder) Methodref(class, name, desc string) uint16 {
	return b.member(TagMethodref, class, name, desc)
}

func (b *Builder) InterfaceMethodref(class, name, desc string) uint16 {
	return b.member(TagInterfaceMethodref, class, name, desc)
}

func (b *Builder) MethodHandle(kind uint8, ref uint16) uint16 {
	return b.add("h:"+string(rune('0'+kind))+string(binary.BigEndian.AppendUint16(nil, ref)),
		&ConstantMethodHandle{ReferenceKind: kind, ReferenceIndex: ref})
}

func (b *Builder) MethodType(desc string) uint16 {
	return b.add("t:"+desc, &ConstantMethodType{DescriptorIndex: b.Utf8(desc)})
}

// Bootstrap appends a BootstrapMethods entry and returns its index.
func (b *Builder) Bootstrap(handle uint16, args ...uint16) uint16 {
	b.bootstrap = append(b.bootstrap, BootstrapMethod{MethodRef: handle, BootstrapArguments: args})
	return uint16(len(b.bootstrap) - 1)
}

// InvokeDynamic adds a CONSTANT_InvokeDynamic entry for a call site.
func (b *Builder) InvokeDynamic(bootstrap uint16, name, desc string) uint16 {
	key := "y:" + string(binary.BigEndian.AppendUint16(nil, bootstrap)) + name + ":" + desc
	return b.add(key, &ConstantDynamic{tag: TagInvokeDynamic, BootstrapMethodAttrIndex: bootstrap, NameAndTypeIndex: b.NameAndType(name, desc)})
}

// StringConcat adds an invokedynamic call site bound to
// StringConcatFactory.makeConcatWithConstants with the given recipe.
func (b *Builder) StringConcat(recipe, desc string) uint16 {
	bsm := b.MethodHandle(RefInvokeStatic, b.Methodref(
		"java/lang/invoke/StringConcatFactory", "makeConcatWithConstants",
		"(Ljava/lang/invoke/MethodHandles$Lookup;Ljava/lang/String;Ljava/lang/invoke/MethodType;Ljava/lang/String;[Ljava/lang/Object;)Ljava/lang/invoke/CallSite;"))
	return b.InvokeDynamic(b.Bootstrap(bsm, b.String(recipe)), "makeConcatWithConstants", desc)
}

// Field declares a field.
func (b *Builder) Field(access uint16, name, desc string) *Builder {
	b.fields = append(b.fields, builtMember{access: access, name: b.Utf8(name), desc: b.Utf8(desc)})
	return b
}

// ConstantField declares a static field initialised from a pool constant.
func (b *Builder) ConstantField(access uint16, name, desc string, value uint16) *Builder {
	attr := builtAttr{name: b.Utf8("ConstantValue"), data: binary.BigEndian.AppendUint16(nil, value)}
	b.fields = append(b.fields, builtMember{access: access, name: b.Utf8(name), desc: b.Utf8(desc), attrs: []builtAttr{attr}})
	return b
}

// Method declares a method with bytecode.
func (b *Builder) Method(access uint16, name, desc string, maxStack, maxLocals uint16, code []byte, handlers ...ExceptionHandler) *Builder {
	w := &writer{}
	w.u2(maxStack)
	w.u2(maxLocals)
	w.u4(uint32(len(code)))
	w.buf.Write(code)
	w.u2(uint16(len(handlers)))
	for _, h := range handlers {
		w.u2(h.StartPC)
		w.u2(h.EndPC)
		w.u2(h.HandlerPC)
		w.u2(h.CatchType)
	}
	w.u2(0)
	attr := builtAttr{name: b.Utf8("Code"), data: w.buf.Bytes()}
	b.methods = append(b.methods, builtMember{access: access, name: b.Utf8(name), desc: b.Utf8(desc), attrs: []builtAttr{attr}})
	return b
}

// Abstract declares a method without a Code attribute (abstract or native).
func (b *Builder) Abstract(access uint16, name, desc string) *Builder {
	b.methods = append(b.methods, builtMember{access: access, name: b.Utf8(name), desc: b.Utf8(desc)})
	return b
}

// Bytes encodes the class file.
func (b *Builder) Bytes() []byte {
	var bootstrapAttr uint16
	if len(b.bootstrap) > 0 {
		bootstrapAttr = b.Utf8("BootstrapMethods")
	}

	w := &writer{}
	w.u4(classMagic)
	w.u2(BuilderMinorVersion)
	w.u2(BuilderMajorVersion)
	w.u2(uint16(len(b.pool)))
	for _, e := range b.pool {
		if e != nil {
			e.write(w)
		}
	}
	w.u2(b.access)
	w.u2(b.this)
	w.u2(b.super)
	w.u2(uint16(len(b.interfaces)))
	for _, i := range b.interfaces {
		w.u2(i)
	}
	for _, members := range [][]builtMember{b.fields, b.methods} {
		w.u2(uint16(len(members)))
		for _, m := range members {
			w.u2(m.access)
			w.u2(m.name)
			w.u2(m.desc)
			w.u2(uint16(len(m.attrs)))
			for _, a := range m.attrs {
				w.attribute(a.name, a.data)
			}
		}
	}
	if len(b.bootstrap) == 0 {
		w.u2(0)
		return w.buf.Bytes()
	}
	bw := &writer{}
	bw.u2(uint16(len(b.bootstrap)))
	for _, m := range b.bootstrap {
		bw.u2(m.MethodRef)
		bw.u2(uint16(len(m.BootstrapArguments)))
		for _, a := range m.BootstrapArguments {
			bw.u2(a)
		}
	}
	w.u2(1)
	w.attribute(bootstrapAttr, bw.buf.Bytes())
	return w.buf.Bytes()
}
