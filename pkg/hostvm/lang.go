package hostvm

import (
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/daimatz/gojni/pkg/classfile"
	"github.com/daimatz/gojni/pkg/jstring"
)

func method(name, desc string, fn NativeFunc) MethodDef {
	return MethodDef{Name: name, Descriptor: desc, Fn: fn}
}

func staticMethod(name, desc string, fn NativeFunc) MethodDef {
	return MethodDef{Name: name, Descriptor: desc, Static: true, Fn: fn}
}

func constant(v Value) *Value { return &v }

var startTime = time.Now()

func builtinClasses() []ClassDef {
	defs := []ClassDef{
		objectClass(),
		classClass(),
		{Name: "java/lang/Cloneable", Flags: classfile.AccInterface | classfile.AccAbstract},
		{Name: "java/io/Serializable", Flags: classfile.AccInterface | classfile.AccAbstract},
		{Name: "java/lang/Comparable", Flags: classfile.AccInterface | classfile.AccAbstract},
		{Name: "java/lang/CharSequence", Flags: classfile.AccInterface | classfile.AccAbstract, Methods: []MethodDef{
			{Name: "length", Descriptor: "()I"},
		}},
		stringClass(),
	}
	defs = append(defs, throwableClasses()...)
	defs = append(defs, numberClasses()...)
	defs = append(defs,
		mathClass(),
		printStreamClass(),
		systemClass(),
		stringBuilderClass(),
	)
	defs = append(defs, collectionClasses()...)
	defs = append(defs, enumClasses()...)
	return defs
}

func objectClass() ClassDef {
	return ClassDef{
		Name: "java/lang/Object",
		Methods: []MethodDef{
			method("<init>", "()V", func(*Thread, *Object, []Value) (Value, error) {
				return Value{}, nil
			}),
			method("hashCode", "()I", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				return IntValue(this.hash), nil
			}),
			method("equals", "(Ljava/lang/Object;)Z", func(_ *Thread, this *Object, args []Value) (Value, error) {
				return BoolValue(this == args[0].Ref), nil
			}),
			method("toString", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
				h, err := t.InvokeVirtual(this, "hashCode", "()I")
				if err != nil {
					return Value{}, err
				}
				s := this.Class.JavaName() + "@" + strconv.FormatUint(uint64(uint32(h.Int)), 16)
				return RefValue(t.rt.NewString(s)), nil
			}),
			method("getClass", "()Ljava/lang/Class;", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				return RefValue(this.Class.mirror), nil
			}),
		},
	}
}

// ClassOf returns the class a java.lang.Class mirror stands for.
func ClassOf(mirror *Object) *Class {
	if mirror == nil {
		return nil
	}
	c, _ := mirror.Native.(*Class)
	return c
}

func classClass() ClassDef {
	return ClassDef{
		Name:  "java/lang/Class",
		Super: "java/lang/Object",
		Flags: classfile.AccFinal,
		Methods: []MethodDef{
			method("getName", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
				return RefValue(t.rt.NewString(ClassOf(this).JavaName())), nil
			}),
			method("getSimpleName", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
				name := ClassOf(this).JavaName()
				name = name[strings.LastIndexAny(name, ".$")+1:]
				return RefValue(t.rt.NewString(name)), nil
			}),
			method("getSuperclass", "()Ljava/lang/Class;", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				c := ClassOf(this)
				if c.Super == nil || c.IsInterface() {
					return NullValue(), nil
				}
				return RefValue(c.Super.mirror), nil
			}),
			method("isInstance", "(Ljava/lang/Object;)Z", func(_ *Thread, this *Object, args []Value) (Value, error) {
				return BoolValue(!args[0].IsNull() && args[0].Ref.Class.IsSubclassOf(ClassOf(this))), nil
			}),
			method("isAssignableFrom", "(Ljava/lang/Class;)Z", func(t *Thread, this *Object, args []Value) (Value, error) {
				if args[0].IsNull() {
					return Value{}, t.Throw("java/lang/NullPointerException", "")
				}
				return BoolValue(ClassOf(args[0].Ref).IsSubclassOf(ClassOf(this))), nil
			}),
			method("isArray", "()Z", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				return BoolValue(ClassOf(this).IsArray()), nil
			}),
			method("isInterface", "()Z", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				return BoolValue(ClassOf(this).IsInterface()), nil
			}),
			method("toString", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
				c := ClassOf(this)
				prefix := "class "
				if c.IsInterface() {
					prefix = "interface "
				}
				return RefValue(t.rt.NewString(prefix + c.JavaName())), nil
			}),
		},
	}
}

func stringClass() ClassDef {
	str := func(t *Thread, s string) (Value, error) {
		return RefValue(t.rt.NewString(s)), nil
	}
	valueOf := func(desc string) MethodDef {
		return staticMethod("valueOf", "("+desc+")Ljava/lang/String;", func(t *Thread, _ *Object, args []Value) (Value, error) {
			s, err := t.stringify(args[0], desc)
			if err != nil {
				return Value{}, err
			}
			return str(t, s)
		})
	}
	return ClassDef{
		Name:       "java/lang/String",
		Super:      "java/lang/Object",
		Interfaces: []string{"java/io/Serializable", "java/lang/Comparable", "java/lang/CharSequence"},
		Flags:      classfile.AccFinal,
		Methods: []MethodDef{
			method("<init>", "()V", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				this.Native = []uint16{}
				return Value{}, nil
			}),
			method("<init>", "(Ljava/lang/String;)V", func(t *Thread, this *Object, args []Value) (Value, error) {
				if args[0].IsNull() {
					return Value{}, t.Throw("java/lang/NullPointerException", "")
				}
				this.Native = append([]uint16{}, args[0].Ref.Units()...)
				return Value{}, nil
			}),
			method("<init>", "([C)V", func(t *Thread, this *Object, args []Value) (Value, error) {
				if args[0].IsNull() {
					return Value{}, t.Throw("java/lang/NullPointerException", "")
				}
				elems := args[0].Ref.Elements()
				units := make([]uint16, len(elems))
				for i, e := range elems {
					units[i] = uint16(e.Int)
				}
				this.Native = units
				return Value{}, nil
			}),
			method("length", "()I", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				return IntValue(int32(len(this.Units()))), nil
			}),
			method("isEmpty", "()Z", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				return BoolValue(len(this.Units()) == 0), nil
			}),
			method("charAt", "(I)C", func(t *Thread, this *Object, args []Value) (Value, error) {
				u := this.Units()
				i := args[0].Int
				if i < 0 || int(i) >= len(u) {
					return Value{}, t.Throw("java/lang/StringIndexOutOfBoundsException",
						"Index "+formatInt(int64(i))+" out of bounds for length "+strconv.Itoa(len(u)))
				}
				return IntValue(int32(u[i])), nil
			}),
			method("substring", "(I)Ljava/lang/String;", func(t *Thread, this *Object, args []Value) (Value, error) {
				return t.substring(this, args[0].Int, int32(len(this.Units())))
			}),
			method("substring", "(II)Ljava/lang/String;", func(t *Thread, this *Object, args []Value) (Value, error) {
				return t.substring(this, args[0].Int, args[1].Int)
			}),
			method("concat", "(Ljava/lang/String;)Ljava/lang/String;", func(t *Thread, this *Object, args []Value) (Value, error) {
				if args[0].IsNull() {
					return Value{}, t.Throw("java/lang/NullPointerException", "")
				}
				u := append(append([]uint16{}, this.Units()...), args[0].Ref.Units()...)
				return RefValue(t.rt.newStringUnits(u)), nil
			}),
			method("equals", "(Ljava/lang/Object;)Z", func(_ *Thread, this *Object, args []Value) (Value, error) {
				other := args[0].Ref
				if other == nil || other.Class != this.Class {
					return BoolValue(false), nil
				}
				return BoolValue(unitsEqual(this.Units(), other.Units())), nil
			}),
			method("hashCode", "()I", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				var h int32
				for _, c := range this.Units() {
					h = 31*h + int32(c)
				}
				return IntValue(h), nil
			}),
			method("compareTo", "(Ljava/lang/String;)I", func(t *Thread, this *Object, args []Value) (Value, error) {
				if args[0].IsNull() {
					return Value{}, t.Throw("java/lang/NullPointerException", "")
				}
				a, b := this.Units(), args[0].Ref.Units()
				for i := 0; i < len(a) && i < len(b); i++ {
					if a[i] != b[i] {
						return IntValue(int32(a[i]) - int32(b[i])), nil
					}
				}
				return IntValue(int32(len(a) - len(b))), nil
			}),
			method("toString", "()Ljava/lang/String;", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				return RefValue(this), nil
			}),
			method("toUpperCase", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
				return str(t, strings.ToUpper(GoString(this)))
			}),
			method("toLowerCase", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
				return str(t, strings.ToLower(GoString(this)))
			}),
			method("toCharArray", "()[C", func(t *Thread, this *Object, _ []Value) (Value, error) {
				u := this.Units()
				arr, err := t.NewArray("[C", len(u))
				if err != nil {
					return Value{}, err
				}
				for i, c := range u {
					arr.Elements()[i] = IntValue(int32(c))
				}
				return RefValue(arr), nil
			}),
			method("intern", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
				return RefValue(t.rt.Intern(GoString(this))), nil
			}),
			method("getBytes", "()[B", func(t *Thread, this *Object, _ []Value) (Value, error) {
				b := []byte(GoString(this))
				arr, err := t.NewArray("[B", len(b))
				if err != nil {
					return Value{}, err
				}
				for i, c := range b {
					arr.Elements()[i] = IntValue(int32(int8(c)))
				}
				return RefValue(arr), nil
			}),
			valueOf("I"),
			valueOf("J"),
			valueOf("Z"),
			valueOf("C"),
			valueOf("F"),
			valueOf("D"),
			valueOf("Ljava/lang/Object;"),
		},
	}
}

func (t *Thread) substring(s *Object, begin, end int32) (Value, error) {
	u := s.Units()
	if begin < 0 || end > int32(len(u)) || begin > end {
		return Value{}, t.Throw("java/lang/StringIndexOutOfBoundsException",
			"begin "+formatInt(int64(begin))+", end "+formatInt(int64(end))+", length "+strconv.Itoa(len(u)))
	}
	return RefValue(t.rt.newStringUnits(u[begin:end])), nil
}

func unitsEqual(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mathClass() ClassDef {
	d := func(name string, fn func(float64) float64) MethodDef {
		return staticMethod(name, "(D)D", func(_ *Thread, _ *Object, args []Value) (Value, error) {
			return DoubleValue(fn(args[0].Double)), nil
		})
	}
	return ClassDef{
		Name:  "java/lang/Math",
		Super: "java/lang/Object",
		Flags: classfile.AccFinal,
		Fields: []FieldDef{
			{Name: "PI", Descriptor: "D", Static: true, Value: constant(DoubleValue(math.Pi))},
			{Name: "E", Descriptor: "D", Static: true, Value: constant(DoubleValue(math.E))},
		},
		Methods: []MethodDef{
			staticMethod("abs", "(I)I", func(_ *Thread, _ *Object, args []Value) (Value, error) {
				if v := args[0].Int; v < 0 {
					return IntValue(-v), nil
				}
				return args[0], nil
			}),
			staticMethod("abs", "(J)J", func(_ *Thread, _ *Object, args []Value) (Value, error) {
				if v := args[0].Long; v < 0 {
					return LongValue(-v), nil
				}
				return args[0], nil
			}),
			staticMethod("max", "(II)I", func(_ *Thread, _ *Object, args []Value) (Value, error) {
				return IntValue(max(args[0].Int, args[1].Int)), nil
			}),
			staticMethod("min", "(II)I", func(_ *Thread, _ *Object, args []Value) (Value, error) {
				return IntValue(min(args[0].Int, args[1].Int)), nil
			}),
			staticMethod("max", "(JJ)J", func(_ *Thread, _ *Object, args []Value) (Value, error) {
				return LongValue(max(args[0].Long, args[1].Long)), nil
			}),
			staticMethod("min", "(JJ)J", func(_ *Thread, _ *Object, args []Value) (Value, error) {
				return LongValue(min(args[0].Long, args[1].Long)), nil
			}),
			staticMethod("max", "(DD)D", func(_ *Thread, _ *Object, args []Value) (Value, error) {
				return DoubleValue(math.Max(args[0].Double, args[1].Double)), nil
			}),
			staticMethod("min", "(DD)D", func(_ *Thread, _ *Object, args []Value) (Value, error) {
				return DoubleValue(math.Min(args[0].Double, args[1].Double)), nil
			}),
			staticMethod("pow", "(DD)D", func(_ *Thread, _ *Object, args []Value) (Value, error) {
				return DoubleValue(math.Pow(args[0].Double, args[1].Double)), nil
			}),
			staticMethod("floorMod", "(II)I", func(t *Thread, _ *Object, args []Value) (Value, error) {
				x, y := args[0].Int, args[1].Int
				if y == 0 {
					return Value{}, t.Throw("java/lang/ArithmeticException", "/ by zero")
				}
				m := x % y
				if m != 0 && (m < 0) != (y < 0) {
					m += y
				}
				return IntValue(m), nil
			}),
			d("abs", math.Abs),
			d("sqrt", math.Sqrt),
			d("floor", math.Floor),
			d("ceil", math.Ceil),
		},
	}
}

var printDescriptors = []string{"Ljava/lang/String;", "Ljava/lang/Object;", "I", "J", "Z", "C", "F", "D", "[C"}

func printStreamClass() ClassDef {
	write := func(this *Object, s string) error {
		w, ok := this.Native.(io.Writer)
		if !ok {
			return nil
		}
		_, err := io.WriteString(w, s)
		return err
	}
	def := ClassDef{
		Name:  "java/io/PrintStream",
		Super: "java/lang/Object",
		Methods: []MethodDef{
			method("println", "()V", func(t *Thread, this *Object, _ []Value) (Value, error) {
				return Value{}, write(this, "\n")
			}),
			method("flush", "()V", func(*Thread, *Object, []Value) (Value, error) {
				return Value{}, nil
			}),
		},
	}
	for _, desc := range printDescriptors {
		desc := desc
		for _, name := range []string{"print", "println"} {
			newline := name == "println"
			def.Methods = append(def.Methods, method(name, "("+desc+")V", func(t *Thread, this *Object, args []Value) (Value, error) {
				s, err := t.printable(args[0], desc)
				if err != nil {
					return Value{}, err
				}
				if newline {
					s += "\n"
				}
				return Value{}, write(this, s)
			}))
		}
	}
	return def
}

func (t *Thread) printable(v Value, desc string) (string, error) {
	if desc != "[C" {
		return t.stringify(v, desc)
	}
	if v.IsNull() {
		return "", t.Throw("java/lang/NullPointerException", "")
	}
	elems := v.Ref.Elements()
	units := make([]uint16, len(elems))
	for i, e := range elems {
		units[i] = uint16(e.Int)
	}
	return jstring.Decode(units), nil
}

func systemClass() ClassDef {
	return ClassDef{
		Name:  "java/lang/System",
		Super: "java/lang/Object",
		Flags: classfile.AccFinal,
		Fields: []FieldDef{
			{Name: "out", Descriptor: "Ljava/io/PrintStream;", Static: true},
			{Name: "err", Descriptor: "Ljava/io/PrintStream;", Static: true},
		},
		Init: func(t *Thread, c *Class) error {
			ps := t.rt.mustClass("java/io/PrintStream")
			out, errs := allocate(ps), allocate(ps)
			out.Native, errs.Native = t.rt.stdout, t.rt.stderr
			c.SetStatic("out", RefValue(out))
			c.SetStatic("err", RefValue(errs))
			return nil
		},
		Methods: []MethodDef{
			staticMethod("currentTimeMillis", "()J", func(*Thread, *Object, []Value) (Value, error) {
				return LongValue(time.Now().UnixMilli()), nil
			}),
			staticMethod("nanoTime", "()J", func(*Thread, *Object, []Value) (Value, error) {
				return LongValue(int64(time.Since(startTime))), nil
			}),
			staticMethod("identityHashCode", "(Ljava/lang/Object;)I", func(_ *Thread, _ *Object, args []Value) (Value, error) {
				if args[0].IsNull() {
					return IntValue(0), nil
				}
				return IntValue(args[0].Ref.hash), nil
			}),
			staticMethod("getProperty", "(Ljava/lang/String;)Ljava/lang/String;", func(t *Thread, _ *Object, args []Value) (Value, error) {
				if args[0].IsNull() {
					return Value{}, t.Throw("java/lang/NullPointerException", "key can't be null")
				}
				v, ok := t.rt.Property(GoString(args[0].Ref))
				if !ok {
					return NullValue(), nil
				}
				return RefValue(t.rt.NewString(v)), nil
			}),
			staticMethod("lineSeparator", "()Ljava/lang/String;", func(t *Thread, _ *Object, _ []Value) (Value, error) {
				return RefValue(t.rt.Intern("\n")), nil
			}),
			staticMethod("arraycopy", "(Ljava/lang/Object;ILjava/lang/Object;II)V", func(t *Thread, _ *Object, args []Value) (Value, error) {
				src, dst := args[0], args[2]
				if src.IsNull() || dst.IsNull() {
					return Value{}, t.Throw("java/lang/NullPointerException", "")
				}
				if !src.Ref.Class.IsArray() || !dst.Ref.Class.IsArray() {
					return Value{}, t.Throw("java/lang/ArrayStoreException", "arraycopy: argument type mismatch")
				}
				from, to := src.Ref.Elements(), dst.Ref.Elements()
				sp, dp, n := args[1].Int, args[3].Int, args[4].Int
				if sp < 0 || dp < 0 || n < 0 || int(sp+n) > len(from) || int(dp+n) > len(to) {
					return Value{}, t.Throw("java/lang/ArrayIndexOutOfBoundsException", "arraycopy: last source index "+
						formatInt(int64(sp)+int64(n))+" out of bounds for length "+strconv.Itoa(len(from)))
				}
				copy(to[dp:dp+n], from[sp:sp+n])
				return Value{}, nil
			}),
		},
	}
}

type stringBuffer struct {
	units []uint16
}

func stringBuilderClass() ClassDef {
	buf := func(o *Object) *stringBuffer {
		b, ok := o.Native.(*stringBuffer)
		if !ok {
			b = &stringBuffer{}
			o.Native = b
		}
		return b
	}
	def := ClassDef{
		Name:       "java/lang/StringBuilder",
		Super:      "java/lang/Object",
		Interfaces: []string{"java/lang/CharSequence"},
		Flags:      classfile.AccFinal,
		Methods: []MethodDef{
			method("<init>", "()V", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				buf(this)
				return Value{}, nil
			}),
			method("<init>", "(I)V", func(t *Thread, this *Object, args []Value) (Value, error) {
				if args[0].Int < 0 {
					return Value{}, t.Throw("java/lang/NegativeArraySizeException", formatInt(int64(args[0].Int)))
				}
				buf(this).units = make([]uint16, 0, args[0].Int)
				return Value{}, nil
			}),
			method("<init>", "(Ljava/lang/String;)V", func(t *Thread, this *Object, args []Value) (Value, error) {
				if args[0].IsNull() {
					return Value{}, t.Throw("java/lang/NullPointerException", "")
				}
				buf(this).units = append([]uint16{}, args[0].Ref.Units()...)
				return Value{}, nil
			}),
			method("length", "()I", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				return IntValue(int32(len(buf(this).units))), nil
			}),
			method("toString", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
				return RefValue(t.rt.newStringUnits(buf(this).units)), nil
			}),
			method("reverse", "()Ljava/lang/StringBuilder;", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				b := buf(this)
				r := jstring.DecodeRunes(b.units)
				for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
					r[i], r[j] = r[j], r[i]
				}
				b.units = jstring.EncodeRunes(r)
				return RefValue(this), nil
			}),
		},
	}
	for _, desc := range printDescriptors {
		def.Methods = append(def.Methods, method("append", "("+desc+")Ljava/lang/StringBuilder;", func(t *Thread, this *Object, args []Value) (Value, error) {
			s, err := t.printable(args[0], desc)
			if err != nil {
				return Value{}, err
			}
			b := buf(this)
			b.units = append(b.units, jstring.Encode(s)...)
			return RefValue(this), nil
		}))
	}
	return def
}
