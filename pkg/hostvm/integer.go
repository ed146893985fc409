package hostvm

import (
	"math"
	"strconv"

	"github.com/daimatz/gojni/pkg/classfile"
)

// IntegerValueOf boxes v (Integer.valueOf).
func (t *Thread) IntegerValueOf(v int32) (*Object, error) {
	c, err := t.FindClass("java/lang/Integer")
	if err != nil {
		return nil, err
	}
	o := allocate(c)
	o.Fields["value"] = IntValue(v)
	return o, nil
}

func (t *Thread) parseInt(s Value) (int32, error) {
	if s.IsNull() {
		return 0, t.Throw("java/lang/NumberFormatException", "Cannot parse null string: null")
	}
	v, ok := parseInt(GoString(s.Ref))
	if !ok {
		return 0, t.Throw("java/lang/NumberFormatException", "For input string: \""+GoString(s.Ref)+"\"")
	}
	return v, nil
}

func numberClasses() []ClassDef {
	unbox := func(this *Object) int32 { return this.Fields["value"].Int }
	str := func(t *Thread, s string) (Value, error) { return RefValue(t.rt.NewString(s)), nil }
	return []ClassDef{
		{
			Name:       "java/lang/Number",
			Super:      "java/lang/Object",
			Interfaces: []string{"java/io/Serializable"},
			Flags:      classfile.AccAbstract,
			Methods: []MethodDef{
				{Name: "intValue", Descriptor: "()I"},
				{Name: "longValue", Descriptor: "()J"},
				{Name: "floatValue", Descriptor: "()F"},
				{Name: "doubleValue", Descriptor: "()D"},
			},
		},
		{
			Name:       "java/lang/Integer",
			Super:      "java/lang/Number",
			Interfaces: []string{"java/lang/Comparable"},
			Flags:      classfile.AccFinal,
			Fields: []FieldDef{
				{Name: "value", Descriptor: "I"},
				{Name: "SIZE", Descriptor: "I", Static: true, Value: constant(IntValue(32))},
				{Name: "BYTES", Descriptor: "I", Static: true, Value: constant(IntValue(4))},
				{Name: "MAX_VALUE", Descriptor: "I", Static: true, Value: constant(IntValue(math.MaxInt32))},
				{Name: "MIN_VALUE", Descriptor: "I", Static: true, Value: constant(IntValue(math.MinInt32))},
			},
			Methods: []MethodDef{
				method("<init>", "(I)V", func(_ *Thread, this *Object, args []Value) (Value, error) {
					this.Fields["value"] = args[0]
					return Value{}, nil
				}),
				method("<init>", "(Ljava/lang/String;)V", func(t *Thread, this *Object, args []Value) (Value, error) {
					v, err := t.parseInt(args[0])
					if err != nil {
						return Value{}, err
					}
					this.Fields["value"] = IntValue(v)
					return Value{}, nil
				}),
				method("intValue", "()I", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					return IntValue(unbox(this)), nil
				}),
				method("longValue", "()J", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					return LongValue(int64(unbox(this))), nil
				}),
				method("floatValue", "()F", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					return FloatValue(float32(unbox(this))), nil
				}),
				method("doubleValue", "()D", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					return DoubleValue(float64(unbox(this))), nil
				}),
				method("hashCode", "()I", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					return IntValue(unbox(this)), nil
				}),
				method("equals", "(Ljava/lang/Object;)Z", func(_ *Thread, this *Object, args []Value) (Value, error) {
					other := args[0].Ref
					return BoolValue(other != nil && other.Class == this.Class && unbox(other) == unbox(this)), nil
				}),
				method("compareTo", "(Ljava/lang/Integer;)I", func(t *Thread, this *Object, args []Value) (Value, error) {
					if args[0].IsNull() {
						return Value{}, t.Throw("java/lang/NullPointerException", "")
					}
					return IntValue(compareInts(unbox(this), unbox(args[0].Ref))), nil
				}),
				method("toString", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
					return str(t, formatInt(int64(unbox(this))))
				}),
				staticMethod("valueOf", "(I)Ljava/lang/Integer;", func(t *Thread, _ *Object, args []Value) (Value, error) {
					o, err := t.IntegerValueOf(args[0].Int)
					return RefValue(o), err
				}),
				staticMethod("valueOf", "(Ljava/lang/String;)Ljava/lang/Integer;", func(t *Thread, _ *Object, args []Value) (Value, error) {
					v, err := t.parseInt(args[0])
					if err != nil {
						return Value{}, err
					}
					o, err := t.IntegerValueOf(v)
					return RefValue(o), err
				}),
				staticMethod("parseInt", "(Ljava/lang/String;)I", func(t *Thread, _ *Object, args []Value) (Value, error) {
					v, err := t.parseInt(args[0])
					return IntValue(v), err
				}),
				staticMethod("toString", "(I)Ljava/lang/String;", func(t *Thread, _ *Object, args []Value) (Value, error) {
					return str(t, formatInt(int64(args[0].Int)))
				}),
				staticMethod("toHexString", "(I)Ljava/lang/String;", func(t *Thread, _ *Object, args []Value) (Value, error) {
					return str(t, strconv.FormatUint(uint64(uint32(args[0].Int)), 16))
				}),
				staticMethod("compare", "(II)I", func(_ *Thread, _ *Object, args []Value) (Value, error) {
					return IntValue(compareInts(args[0].Int, args[1].Int)), nil
				}),
				staticMethod("sum", "(II)I", func(_ *Thread, _ *Object, args []Value) (Value, error) {
					return IntValue(args[0].Int + args[1].Int), nil
				}),
				staticMethod("max", "(II)I", func(_ *Thread, _ *Object, args []Value) (Value, error) {
					return IntValue(max(args[0].Int, args[1].Int)), nil
				}),
			},
		},
	}
}

func compareInts(a, b int32) int32 {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
