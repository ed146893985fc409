package classfile

import (
	"fmt"

	"github.com/daimatz/gojni/pkg/jstring"
)

// Constant pool tags
const (
	TagUtf8               = 1
	TagInteger            = 3
	TagFloat              = 4
	TagLong               = 5
	TagDouble             = 6
	TagClass              = 7
	TagString             = 8
	TagFieldref           = 9
	TagMethodref          = 10
	TagInterfaceMethodref = 11
	TagNameAndType        = 12
	TagMethodHandle       = 15
	TagMethodType         = 16
	TagDynamic            = 17
	TagInvokeDynamic      = 18
)

// Method handle reference kinds.
const (
	RefGetField         = 1
	RefGetStatic        = 2
	RefPutField         = 3
	RefPutStatic        = 4
	RefInvokeVirtual    = 5
	RefInvokeStatic     = 6
	RefInvokeSpecial    = 7
	RefNewInvokeSpecial = 8
	RefInvokeInterface  = 9
)

// ConstantPoolEntry is implemented by all constant pool types.
type ConstantPoolEntry interface {
	Tag() uint8
	write(w *writer)
}

type ConstantUtf8 struct{ Value string }

type ConstantInteger struct{ Value int32 }

type ConstantFloat struct{ Value float32 }

type ConstantLong struct{ Value int64 }

type ConstantDouble struct{ Value float64 }

type ConstantClass struct{ NameIndex uint16 }

type ConstantString struct{ StringIndex uint16 }

// ConstantMemberRef covers Fieldref, Methodref and InterfaceMethodref.
type ConstantMemberRef struct {
	tag              uint8
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

type ConstantNameAndType struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

type ConstantMethodHandle struct {
	ReferenceKind  uint8
	ReferenceIndex uint16
}

type ConstantMethodType struct{ DescriptorIndex uint16 }

// ConstantDynamic covers Dynamic and InvokeDynamic.
type ConstantDynamic struct {
	tag                      uint8
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (*ConstantUtf8) Tag() uint8         { return TagUtf8 }
func (*ConstantInteger) Tag() uint8      { return TagInteger }
func (*ConstantFloat) Tag() uint8        { return TagFloat }
func (*ConstantLong) Tag() uint8         { return TagLong }
func (*ConstantDouble) Tag() uint8       { return TagDouble }
func (*ConstantClass) Tag() uint8        { return TagClass }
func (*ConstantString) Tag() uint8       { return TagString }
func (c *ConstantMemberRef) Tag() uint8  { return c.tag }
func (*ConstantNameAndType) Tag() uint8  { return TagNameAndType }
func (*ConstantMethodHandle) Tag() uint8 { return TagMethodHandle }
func (*ConstantMethodType) Tag() uint8   { return TagMethodType }
func (c *ConstantDynamic) Tag() uint8    { return c.tag }

// Pool is a constant pool. It is 1-indexed: index 0 and the slot after a
// long or double are nil.
type Pool []ConstantPoolEntry

func parseConstantPool(r *reader, count uint16) (Pool, error) {
	pool := make(Pool, count)
	for i := uint16(1); i < count; i++ {
		tag := r.u1()
		switch tag {
		case TagUtf8:
			pool[i] = &ConstantUtf8{Value: jstring.DecodeModified(r.bytes(int(r.u2())))}
		case TagInteger:
			pool[i] = &ConstantInteger{Value: int32(r.u4())}
		case TagFloat:
			pool[i] = &ConstantFloat{Value: r.f4()}
		case TagLong:
			pool[i] = &ConstantLong{Value: int64(r.u8())}
			i++
		case TagDouble:
			pool[i] = &ConstantDouble{Value: r.f8()}
			i++
		case TagClass:
			pool[i] = &ConstantClass{NameIndex: r.u2()}
		case TagString:
			pool[i] = &ConstantString{StringIndex: r.u2()}
		case TagFieldref, TagMethodref, TagInterfaceMethodref:
			pool[i] = &ConstantMemberRef{tag: tag, ClassIndex: r.u2(), NameAndTypeIndex: r.u2()}
		case TagNameAndType:
			pool[i] = &ConstantNameAndType{NameIndex: r.u2(), DescriptorIndex: r.u2()}
		case TagMethodHandle:
			pool[i] = &ConstantMethodHandle{ReferenceKind: r.u1(), ReferenceIndex: r.u2()}
		case TagMethodType:
			pool[i] = &ConstantMethodType{DescriptorIndex: r.u2()}
		case TagDynamic, TagInvokeDynamic:
			pool[i] = &ConstantDynamic{tag: tag, BootstrapMethodAttrIndex: r.u2(), NameAndTypeIndex: r.u2()}
		default:
			if r.err != nil {
				return nil, fmt.Errorf("reading constant pool tag at index %d: %w", i, r.err)
			}
			return nil, fmt.Errorf("unknown constant pool tag %d at index %d", tag, i)
		}
		if r.err != nil {
			return nil, fmt.Errorf("reading constant pool entry %d (tag=%d): %w", i, tag, r.err)
		}
	}
	return pool, nil
}

func (p Pool) entry(index uint16) (ConstantPoolEntry, error) {
	if int(index) >= len(p) || p[index] == nil {
		return nil, fmt.Errorf("invalid constant pool index %d", index)
	}
	return p[index], nil
}

// Entry returns the entry at index.
func (p Pool) Entry(index uint16) (ConstantPoolEntry, error) {
	return p.entry(index)
}

// Utf8 returns the Utf8 string at the given index.
func (p Pool) Utf8(index uint16) (string, error) {
	e, err := p.entry(index)
	if err != nil {
		return "", err
	}
	utf8, ok := e.(*ConstantUtf8)
	if !ok {
		return "", fmt.Errorf("constant pool index %d is not Utf8 (tag=%d)", index, e.Tag())
	}
	return utf8.Value, nil
}

// ClassName returns the class name referenced by a CONSTANT_Class entry.
func (p Pool) ClassName(index uint16) (string, error) {
	e, err := p.entry(index)
	if err != nil {
		return "", err
	}
	class, ok := e.(*ConstantClass)
	if !ok {
		return "", fmt.Errorf("constant pool index %d is not Class (tag=%d)", index, e.Tag())
	}
	return p.Utf8(class.NameIndex)
}

// NameAndType resolves a CONSTANT_NameAndType entry.
func (p Pool) NameAndType(index uint16) (name, descriptor string, err error) {
	e, err := p.entry(index)
	if err != nil {
		return "", "", err
	}
	nat, ok := e.(*ConstantNameAndType)
	if !ok {
		return "", "", fmt.Errorf("constant pool index %d is not NameAndType (tag=%d)", index, e.Tag())
	}
	if name, err = p.Utf8(nat.NameIndex); err != nil {
		return "", "", fmt.Errorf("resolving name: %w", err)
	}
	if descriptor, err = p.Utf8(nat.DescriptorIndex); err != nil {
		return "", "", fmt.Errorf("resolving descriptor: %w", err)
	}
	return name, descriptor, nil
}

// MemberRef holds a resolved field or method reference.
type MemberRef struct {
	ClassName  string
	Name       string
	Descriptor string
	Interface  bool
}

// Member resolves a Fieldref, Methodref or InterfaceMethodref entry.
func (p Pool) Member(index uint16) (*MemberRef, error) {
	e, err := p.entry(index)
	if err != nil {
		return nil, err
	}
	ref, ok := e.(*ConstantMemberRef)
	if !ok {
		return nil, fmt.Errorf("constant pool index %d is not a member reference (tag=%d)", index, e.Tag())
	}
	className, err := p.ClassName(ref.ClassIndex)
	if err != nil {
		return nil, fmt.Errorf("resolving member class: %w", err)
	}
	name, desc, err := p.NameAndType(ref.NameAndTypeIndex)
	if err != nil {
		return nil, err
	}
	return &MemberRef{
		ClassName:  className,
		Name:       name,
		Descriptor: desc,
		Interface:  ref.tag == TagInterfaceMethodref,
	}, nil
}

// StringValue resolves a CONSTANT_String entry to its text.
func (p Pool) StringValue(index uint16) (string, error) {
	e, err := p.entry(index)
	if err != nil {
		return "", err
	}
	s, ok := e.(*ConstantString)
	if !ok {
		return "", fmt.Errorf("constant pool index %d is not String (tag=%d)", index, e.Tag())
	}
	return p.Utf8(s.StringIndex)
}
