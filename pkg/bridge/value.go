package bridge

import "unsafe"

// Kind is the closed set of JNI value kinds.
type Kind uint8

const (
	KindVoid Kind = iota
	KindBoolean
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindObject
	numKinds
)

// NumKinds is the number of kinds; dispatch tables are sized by it.
const NumKinds = int(numKinds)

var kindNames = [...]string{
	KindVoid:    "void",
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindChar:    "char",
	KindShort:   "short",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
	KindObject:  "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// KindOf returns the kind of a field or return descriptor such as "I" or
// "Ljava/lang/String;". Array descriptors are objects.
func KindOf(desc string) (Kind, bool) {
	if desc == "" {
		return 0, false
	}
	switch desc[0] {
	case 'V':
		return KindVoid, true
	case 'Z':
		return KindBoolean, true
	case 'B':
		return KindByte, true
	case 'C':
		return KindChar, true
	case 'S':
		return KindShort, true
	case 'I':
		return KindInt, true
	case 'J':
		return KindLong, true
	case 'F':
		return KindFloat, true
	case 'D':
		return KindDouble, true
	case 'L', '[':
		return KindObject, true
	}
	return 0, false
}

// Value is one jvalue slot: eight bytes laid out like the C union, so a
// []Value can be handed to the *A call families unchanged.
type Value uint64

func (v *Value) ptr() unsafe.Pointer { return unsafe.Pointer(v) }

func BoolValue(b bool) Value {
	var v Value
	if b {
		*(*uint8)(v.ptr()) = 1
	}
	return v
}

func ByteValue(b int8) Value {
	var v Value
	*(*int8)(v.ptr()) = b
	return v
}

func CharValue(c uint16) Value {
	var v Value
	*(*uint16)(v.ptr()) = c
	return v
}

func ShortValue(s int16) Value {
	var v Value
	*(*int16)(v.ptr()) = s
	return v
}

func IntValue(i int32) Value {
	var v Value
	*(*int32)(v.ptr()) = i
	return v
}

func LongValue(l int64) Value {
	var v Value
	*(*int64)(v.ptr()) = l
	return v
}

func FloatValue(f float32) Value {
	var v Value
	*(*float32)(v.ptr()) = f
	return v
}

func DoubleValue(d float64) Value {
	var v Value
	*(*float64)(v.ptr()) = d
	return v
}

func RefValue(r Ref) Value {
	var v Value
	*(*Ref)(v.ptr()) = r
	return v
}

func (v Value) Bool() bool      { return *(*uint8)(v.ptr()) != 0 }
func (v Value) Byte() int8      { return *(*int8)(v.ptr()) }
func (v Value) Char() uint16    { return *(*uint16)(v.ptr()) }
func (v Value) Short() int16    { return *(*int16)(v.ptr()) }
func (v Value) Int() int32      { return *(*int32)(v.ptr()) }
func (v Value) Long() int64     { return *(*int64)(v.ptr()) }
func (v Value) Float() float32  { return *(*float32)(v.ptr()) }
func (v Value) Double() float64 { return *(*float64)(v.ptr()) }
func (v Value) Ref() Ref        { return *(*Ref)(v.ptr()) }
