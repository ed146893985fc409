package hostvm

import (
	"fmt"
	"math"

	"github.com/daimatz/gojni/pkg/classfile"
)

// executeInstruction executes a single bytecode instruction.
// Returns (returnValue, hasReturn, error).
func (t *Thread) executeInstruction(frame *Frame, opcode byte) (Value, bool, error) {
	pc := frame.PC - 1

	switch {
	case opcode >= OpIload0 && opcode <= OpAload3:
		frame.Push(frame.GetLocal(int(opcode-OpIload0) % 4))
		return Value{}, false, nil
	case opcode >= OpIstore0 && opcode <= OpAstore3:
		frame.SetLocal(int(opcode-OpIstore0)%4, frame.Pop())
		return Value{}, false, nil
	}

	switch opcode {
	case OpNop:
		// do nothing

	// --- Constants ---
	case OpAconstNull:
		frame.Push(NullValue())
	case OpIconstM1, OpIconst0, OpIconst1, OpIconst2, OpIconst3, OpIconst4, OpIconst5:
		frame.Push(IntValue(int32(opcode) - OpIconst0))
	case OpLconst0, OpLconst1:
		frame.Push(LongValue(int64(opcode - OpLconst0)))
	case OpFconst0, OpFconst1, OpFconst2:
		frame.Push(FloatValue(float32(opcode - OpFconst0)))
	case OpDconst0, OpDconst1:
		frame.Push(DoubleValue(float64(opcode - OpDconst0)))
	case OpBipush:
		frame.Push(IntValue(int32(frame.ReadI8())))
	case OpSipush:
		frame.Push(IntValue(int32(frame.ReadI16())))
	case OpLdc:
		return t.executeLdc(frame, uint16(frame.ReadU8()))
	case OpLdcW, OpLdc2W:
		return t.executeLdc(frame, frame.ReadU16())

	// --- Locals ---
	case OpIload, OpLload, OpFload, OpDload, OpAload:
		frame.Push(frame.GetLocal(int(frame.ReadU8())))
	case OpIstore, OpLstore, OpFstore, OpDstore, OpAstore:
		frame.SetLocal(int(frame.ReadU8()), frame.Pop())
	case OpIinc:
		index := int(frame.ReadU8())
		delta := int32(frame.ReadI8())
		frame.SetLocal(index, IntValue(frame.GetLocal(index).Int+delta))
	case OpWide:
		return t.executeWide(frame)

	// --- Arrays ---
	case OpIaload, OpLaload, OpFaload, OpDaload, OpAaload, OpBaload, OpCaload, OpSaload:
		index := frame.Pop().Int
		elems, err := t.arrayElements(frame.Pop(), index)
		if err != nil {
			return Value{}, false, err
		}
		frame.Push(elems[index])
	case OpIastore, OpLastore, OpFastore, OpDastore, OpAastore, OpBastore, OpCastore, OpSastore:
		return t.executeArrayStore(frame, opcode)
	case OpArraylength:
		ref := frame.Pop()
		if ref.IsNull() {
			return Value{}, false, t.Throw("java/lang/NullPointerException", "")
		}
		frame.Push(IntValue(int32(len(ref.Ref.Elements()))))
	case OpNewarray:
		desc, ok := arrayTypes[frame.ReadU8()]
		if !ok {
			return Value{}, false, fmt.Errorf("newarray: invalid element type at PC=%d", pc)
		}
		arr, err := t.NewArray("["+desc, int(frame.Pop().Int))
		if err != nil {
			return Value{}, false, err
		}
		frame.Push(RefValue(arr))
	case OpAnewarray:
		name, err := frame.Method.Class.File.ConstantPool.ClassName(frame.ReadU16())
		if err != nil {
			return Value{}, false, fmt.Errorf("anewarray: %w", err)
		}
		arr, err := t.NewArray("["+componentDescriptor(name), int(frame.Pop().Int))
		if err != nil {
			return Value{}, false, err
		}
		frame.Push(RefValue(arr))
	case OpMultianewarray:
		name, err := frame.Method.Class.File.ConstantPool.ClassName(frame.ReadU16())
		if err != nil {
			return Value{}, false, fmt.Errorf("multianewarray: %w", err)
		}
		counts := make([]int32, frame.ReadU8())
		for i := len(counts) - 1; i >= 0; i-- {
			counts[i] = frame.Pop().Int
		}
		arr, err := t.newMultiArray(name, counts)
		if err != nil {
			return Value{}, false, err
		}
		frame.Push(RefValue(arr))

	// --- Stack ---
	case OpPop:
		frame.Pop()
	case OpPop2:
		if !isWide(frame.Pop()) {
			frame.Pop()
		}
	case OpDup:
		frame.Push(frame.Peek())
	case OpDupX1:
		v1, v2 := frame.Pop(), frame.Pop()
		frame.Push(v1)
		frame.Push(v2)
		frame.Push(v1)
	case OpDupX2:
		v1, v2 := frame.Pop(), frame.Pop()
		if isWide(v2) {
			frame.Push(v1)
			frame.Push(v2)
			frame.Push(v1)
			break
		}
		v3 := frame.Pop()
		frame.Push(v1)
		frame.Push(v3)
		frame.Push(v2)
		frame.Push(v1)
	case OpDup2:
		v1 := frame.Pop()
		if isWide(v1) {
			frame.Push(v1)
			frame.Push(v1)
			break
		}
		v2 := frame.Pop()
		frame.Push(v2)
		frame.Push(v1)
		frame.Push(v2)
		frame.Push(v1)
	case OpDup2X1:
		v1, v2 := frame.Pop(), frame.Pop()
		if isWide(v1) {
			frame.Push(v1)
			frame.Push(v2)
			frame.Push(v1)
			break
		}
		v3 := frame.Pop()
		frame.Push(v2)
		frame.Push(v1)
		frame.Push(v3)
		frame.Push(v2)
		frame.Push(v1)
	case OpDup2X2:
		return Value{}, false, t.executeDup2X2(frame)
	case OpSwap:
		v1, v2 := frame.Pop(), frame.Pop()
		frame.Push(v1)
		frame.Push(v2)

	// --- Arithmetic ---
	case OpIadd, OpIsub, OpImul, OpIdiv, OpIrem, OpIshl, OpIshr, OpIushr, OpIand, OpIor, OpIxor:
		b, a := frame.Pop().Int, frame.Pop().Int
		v, err := t.intOp(opcode, a, b)
		if err != nil {
			return Value{}, false, err
		}
		frame.Push(IntValue(v))
	case OpLadd, OpLsub, OpLmul, OpLdiv, OpLrem, OpLand, OpLor, OpLxor:
		b, a := frame.Pop().Long, frame.Pop().Long
		v, err := t.longOp(opcode, a, b)
		if err != nil {
			return Value{}, false, err
		}
		frame.Push(LongValue(v))
	case OpLshl, OpLshr, OpLushr:
		s, a := uint(frame.Pop().Int&63), frame.Pop().Long
		switch opcode {
		case OpLshl:
			frame.Push(LongValue(a << s))
		case OpLshr:
			frame.Push(LongValue(a >> s))
		default:
			frame.Push(LongValue(int64(uint64(a) >> s)))
		}
	case OpFadd, OpFsub, OpFmul, OpFdiv, OpFrem:
		b, a := frame.Pop().Float, frame.Pop().Float
		frame.Push(FloatValue(float32(floatOp(opcode-OpFadd+OpDadd, float64(a), float64(b)))))
	case OpDadd, OpDsub, OpDmul, OpDdiv, OpDrem:
		b, a := frame.Pop().Double, frame.Pop().Double
		frame.Push(DoubleValue(floatOp(opcode, a, b)))
	case OpIneg:
		frame.Push(IntValue(-frame.Pop().Int))
	case OpLneg:
		frame.Push(LongValue(-frame.Pop().Long))
	case OpFneg:
		frame.Push(FloatValue(-frame.Pop().Float))
	case OpDneg:
		frame.Push(DoubleValue(-frame.Pop().Double))

	// --- Conversions ---
	case OpI2l:
		frame.Push(LongValue(int64(frame.Pop().Int)))
	case OpI2f:
		frame.Push(FloatValue(float32(frame.Pop().Int)))
	case OpI2d:
		frame.Push(DoubleValue(float64(frame.Pop().Int)))
	case OpL2i:
		frame.Push(IntValue(int32(frame.Pop().Long)))
	case OpL2f:
		frame.Push(FloatValue(float32(frame.Pop().Long)))
	case OpL2d:
		frame.Push(DoubleValue(float64(frame.Pop().Long)))
	case OpF2i:
		frame.Push(IntValue(int32(toInt(float64(frame.Pop().Float), math.MinInt32, math.MaxInt32))))
	case OpF2l:
		frame.Push(LongValue(toInt(float64(frame.Pop().Float), math.MinInt64, math.MaxInt64)))
	case OpF2d:
		frame.Push(DoubleValue(float64(frame.Pop().Float)))
	case OpD2i:
		frame.Push(IntValue(int32(toInt(frame.Pop().Double, math.MinInt32, math.MaxInt32))))
	case OpD2l:
		frame.Push(LongValue(toInt(frame.Pop().Double, math.MinInt64, math.MaxInt64)))
	case OpD2f:
		frame.Push(FloatValue(float32(frame.Pop().Double)))
	case OpI2b:
		frame.Push(IntValue(int32(int8(frame.Pop().Int))))
	case OpI2c:
		frame.Push(IntValue(int32(uint16(frame.Pop().Int))))
	case OpI2s:
		frame.Push(IntValue(int32(int16(frame.Pop().Int))))

	// --- Comparisons ---
	case OpLcmp:
		b, a := frame.Pop().Long, frame.Pop().Long
		switch {
		case a > b:
			frame.Push(IntValue(1))
		case a < b:
			frame.Push(IntValue(-1))
		default:
			frame.Push(IntValue(0))
		}
	case OpFcmpl, OpFcmpg:
		b, a := frame.Pop().Float, frame.Pop().Float
		nan := int32(-1)
		if opcode == OpFcmpg {
			nan = 1
		}
		frame.Push(IntValue(fcmp(float64(a), float64(b), nan)))
	case OpDcmpl, OpDcmpg:
		b, a := frame.Pop().Double, frame.Pop().Double
		nan := int32(-1)
		if opcode == OpDcmpg {
			nan = 1
		}
		frame.Push(IntValue(fcmp(a, b, nan)))

	// --- Branches ---
	case OpIfeq, OpIfne, OpIflt, OpIfge, OpIfgt, OpIfle:
		offset := int(frame.ReadI16())
		if compare(opcode-OpIfeq, frame.Pop().Int, 0) {
			frame.PC = pc + offset
		}
	case OpIfIcmpeq, OpIfIcmpne, OpIfIcmplt, OpIfIcmpge, OpIfIcmpgt, OpIfIcmple:
		offset := int(frame.ReadI16())
		b, a := frame.Pop().Int, frame.Pop().Int
		if compare(opcode-OpIfIcmpeq, a, b) {
			frame.PC = pc + offset
		}
	case OpIfAcmpeq, OpIfAcmpne:
		offset := int(frame.ReadI16())
		b, a := frame.Pop(), frame.Pop()
		if (a.Ref == b.Ref) == (opcode == OpIfAcmpeq) {
			frame.PC = pc + offset
		}
	case OpIfnull, OpIfnonnull:
		offset := int(frame.ReadI16())
		if frame.Pop().IsNull() == (opcode == OpIfnull) {
			frame.PC = pc + offset
		}
	case OpGoto:
		frame.PC = pc + int(frame.ReadI16())
	case OpGotoW:
		frame.PC = pc + int(frame.ReadI32())
	case OpTableswitch:
		frame.align()
		def := int(frame.ReadI32())
		low, high := frame.ReadI32(), frame.ReadI32()
		key := frame.Pop().Int
		if key < low || key > high {
			frame.PC = pc + def
			break
		}
		frame.PC += int(key-low) * 4
		frame.PC = pc + int(frame.ReadI32())
	case OpLookupswitch:
		frame.align()
		target := pc + int(frame.ReadI32())
		pairs := int(frame.ReadI32())
		key := frame.Pop().Int
		for i := 0; i < pairs; i++ {
			match, offset := frame.ReadI32(), frame.ReadI32()
			if match == key {
				target = pc + int(offset)
				break
			}
		}
		frame.PC = target

	// --- Returns ---
	case OpIreturn, OpLreturn, OpFreturn, OpDreturn, OpAreturn:
		return frame.Pop(), true, nil
	case OpReturn:
		return Value{}, true, nil

	// --- Fields ---
	case OpGetstatic, OpPutstatic:
		return t.executeStaticField(frame, opcode)
	case OpGetfield, OpPutfield:
		return t.executeField(frame, opcode)

	// --- Invocation ---
	case OpInvokevirtual, OpInvokespecial, OpInvokestatic, OpInvokeinterface:
		return t.executeInvoke(frame, opcode)
	case OpInvokedynamic:
		return t.executeInvokedynamic(frame)

	// --- Objects ---
	case OpNew:
		name, err := frame.Method.Class.File.ConstantPool.ClassName(frame.ReadU16())
		if err != nil {
			return Value{}, false, fmt.Errorf("new: %w", err)
		}
		c, err := t.FindClass(name)
		if err != nil {
			return Value{}, false, err
		}
		if c.Flags&(classfile.AccAbstract|classfile.AccInterface) != 0 {
			return Value{}, false, t.Throw("java/lang/InstantiationError", c.JavaName())
		}
		frame.Push(RefValue(allocate(c)))
	case OpAthrow:
		ref := frame.Pop()
		if ref.IsNull() {
			return Value{}, false, t.Throw("java/lang/NullPointerException", "")
		}
		return Value{}, false, &JavaException{Object: ref.Ref}
	case OpCheckcast, OpInstanceof:
		name, err := frame.Method.Class.File.ConstantPool.ClassName(frame.ReadU16())
		if err != nil {
			return Value{}, false, fmt.Errorf("checkcast: %w", err)
		}
		ref := frame.Pop()
		ok := ref.IsNull()
		if !ok {
			c, err := t.rt.loadClass(name)
			if err != nil {
				return Value{}, false, t.noClassDef(name, err)
			}
			ok = ref.Ref.Class.IsSubclassOf(c)
		}
		if opcode == OpInstanceof {
			frame.Push(BoolValue(ok && !ref.IsNull()))
			break
		}
		if !ok {
			return Value{}, false, t.Throw("java/lang/ClassCastException",
				fmt.Sprintf("class %s cannot be cast to class %s", ref.Ref.Class.JavaName(), dotted(name)))
		}
		frame.Push(ref)
	case OpMonitorenter, OpMonitorexit:
		if frame.Pop().IsNull() {
			return Value{}, false, t.Throw("java/lang/NullPointerException", "")
		}

	default:
		return Value{}, false, fmt.Errorf("unsupported opcode 0x%02X at PC=%d", opcode, pc)
	}

	return Value{}, false, nil
}

func (t *Thread) executeLdc(frame *Frame, index uint16) (Value, bool, error) {
	v, err := t.constant(frame.Method.Class.File.ConstantPool, index)
	if err != nil {
		return Value{}, false, fmt.Errorf("ldc: %w", err)
	}
	frame.Push(v)
	return Value{}, false, nil
}

func (t *Thread) executeWide(frame *Frame) (Value, bool, error) {
	opcode := frame.ReadU8()
	index := int(frame.ReadU16())
	switch opcode {
	case OpIload, OpLload, OpFload, OpDload, OpAload:
		frame.Push(frame.GetLocal(index))
	case OpIstore, OpLstore, OpFstore, OpDstore, OpAstore:
		frame.SetLocal(index, frame.Pop())
	case OpIinc:
		frame.SetLocal(index, IntValue(frame.GetLocal(index).Int+int32(frame.ReadI16())))
	default:
		return Value{}, false, fmt.Errorf("wide: unsupported opcode 0x%02X", opcode)
	}
	return Value{}, false, nil
}

func (t *Thread) executeDup2X2(frame *Frame) error {
	v1, v2 := frame.Pop(), frame.Pop()
	switch {
	case isWide(v1) && isWide(v2):
		frame.Push(v1)
		frame.Push(v2)
		frame.Push(v1)
	case isWide(v1):
		v3 := frame.Pop()
		frame.Push(v1)
		frame.Push(v3)
		frame.Push(v2)
		frame.Push(v1)
	default:
		v3 := frame.Pop()
		if isWide(v3) {
			frame.Push(v2)
			frame.Push(v1)
			frame.Push(v3)
			frame.Push(v2)
			frame.Push(v1)
			return nil
		}
		v4 := frame.Pop()
		frame.Push(v2)
		frame.Push(v1)
		frame.Push(v4)
		frame.Push(v3)
		frame.Push(v2)
		frame.Push(v1)
	}
	return nil
}

func (t *Thread) arrayElements(ref Value, index int32) ([]Value, error) {
	if ref.IsNull() {
		return nil, t.Throw("java/lang/NullPointerException", "")
	}
	elems := ref.Ref.Elements()
	if index < 0 || int(index) >= len(elems) {
		return nil, t.Throw("java/lang/ArrayIndexOutOfBoundsException",
			fmt.Sprintf("Index %d out of bounds for length %d", index, len(elems)))
	}
	return elems, nil
}

func (t *Thread) executeArrayStore(frame *Frame, opcode byte) (Value, bool, error) {
	v := frame.Pop()
	index := frame.Pop().Int
	ref := frame.Pop()
	elems, err := t.arrayElements(ref, index)
	if err != nil {
		return Value{}, false, err
	}
	switch opcode {
	case OpBastore:
		if ref.Ref.Class.Name == "[Z" {
			v = IntValue(v.Int & 1)
		} else {
			v = IntValue(int32(int8(v.Int)))
		}
	case OpCastore:
		v = IntValue(int32(uint16(v.Int)))
	case OpSastore:
		v = IntValue(int32(int16(v.Int)))
	case OpAastore:
		if !v.IsNull() {
			comp, err := t.rt.loadClass(classfile.ClassNameOf(ref.Ref.Class.ComponentType()))
			if err != nil {
				return Value{}, false, err
			}
			if !v.Ref.Class.IsSubclassOf(comp) {
				return Value{}, false, t.Throw("java/lang/ArrayStoreException", v.Ref.Class.JavaName())
			}
		}
	}
	elems[index] = v
	return Value{}, false, nil
}

func (t *Thread) newMultiArray(className string, counts []int32) (*Object, error) {
	arr, err := t.NewArray(className, int(counts[0]))
	if err != nil || len(counts) == 1 {
		return arr, err
	}
	elems := arr.Elements()
	for i := range elems {
		sub, err := t.newMultiArray(className[1:], counts[1:])
		if err != nil {
			return nil, err
		}
		elems[i] = RefValue(sub)
	}
	return arr, nil
}

func (t *Thread) executeStaticField(frame *Frame, opcode byte) (Value, bool, error) {
	ref, err := frame.Method.Class.File.ConstantPool.Member(frame.ReadU16())
	if err != nil {
		return Value{}, false, fmt.Errorf("getstatic: %w", err)
	}
	c, err := t.FindClass(ref.ClassName)
	if err != nil {
		return Value{}, false, err
	}
	f := c.LookupField(ref.Name, ref.Descriptor)
	if f == nil || !f.IsStatic() {
		return Value{}, false, t.Throw("java/lang/NoSuchFieldError", ref.Name)
	}
	if err := t.Initialize(f.Class); err != nil {
		return Value{}, false, err
	}
	if opcode == OpGetstatic {
		frame.Push(f.Class.Static(f.Name))
	} else {
		f.Class.SetStatic(f.Name, frame.Pop())
	}
	return Value{}, false, nil
}

func (t *Thread) executeField(frame *Frame, opcode byte) (Value, bool, error) {
	ref, err := frame.Method.Class.File.ConstantPool.Member(frame.ReadU16())
	if err != nil {
		return Value{}, false, fmt.Errorf("getfield: %w", err)
	}
	var value Value
	if opcode == OpPutfield {
		value = frame.Pop()
	}
	obj := frame.Pop()
	if obj.IsNull() {
		return Value{}, false, t.Throw("java/lang/NullPointerException",
			fmt.Sprintf("Cannot access field \"%s\" because value is null", ref.Name))
	}
	if opcode == OpPutfield {
		obj.Ref.Fields[ref.Name] = value
		return Value{}, false, nil
	}
	v, ok := obj.Ref.Fields[ref.Name]
	if !ok {
		v = ZeroValue(ref.Descriptor)
	}
	frame.Push(v)
	return Value{}, false, nil
}

func (t *Thread) executeInvoke(frame *Frame, opcode byte) (Value, bool, error) {
	index := frame.ReadU16()
	if opcode == OpInvokeinterface {
		frame.ReadU8() // count
		frame.ReadU8() // always zero
	}
	ref, err := frame.Method.Class.File.ConstantPool.Member(index)
	if err != nil {
		return Value{}, false, fmt.Errorf("invoke: %w", err)
	}
	sig, err := parseDescriptor(ref.Descriptor)
	if err != nil {
		return Value{}, false, fmt.Errorf("invoke: %w", err)
	}
	args := make([]Value, len(sig.Params))
	for i := len(args) - 1; i >= 0; i-- {
		args[i] = frame.Pop()
	}

	var m *Method
	var this *Object
	if opcode == OpInvokestatic {
		c, err := t.FindClass(ref.ClassName)
		if err != nil {
			return Value{}, false, err
		}
		if m = c.LookupMethod(ref.Name, ref.Descriptor); m != nil && !m.IsStatic() {
			return Value{}, false, t.Throw("java/lang/IncompatibleClassChangeError", m.String())
		}
	} else {
		recv := frame.Pop()
		if recv.IsNull() {
			return Value{}, false, t.Throw("java/lang/NullPointerException",
				fmt.Sprintf("Cannot invoke \"%s.%s()\" because value is null", dotted(ref.ClassName), ref.Name))
		}
		this = recv.Ref
		if opcode == OpInvokespecial {
			c, err := t.rt.loadClass(ref.ClassName)
			if err != nil {
				return Value{}, false, t.noClassDef(ref.ClassName, err)
			}
			m = c.LookupMethod(ref.Name, ref.Descriptor)
		} else {
			m = this.Class.LookupMethod(ref.Name, ref.Descriptor)
		}
	}
	if m == nil {
		return Value{}, false, t.Throw("java/lang/NoSuchMethodError",
			fmt.Sprintf("'%s %s.%s'", ref.Descriptor, dotted(ref.ClassName), ref.Name))
	}

	retVal, err := t.Invoke(m, this, args)
	if err != nil {
		return Value{}, false, err
	}
	if sig.Return != "V" {
		frame.Push(retVal)
	}
	return Value{}, false, nil
}

func (t *Thread) intOp(opcode byte, a, b int32) (int32, error) {
	switch opcode {
	case OpIadd:
		return a + b, nil
	case OpIsub:
		return a - b, nil
	case OpImul:
		return a * b, nil
	case OpIdiv, OpIrem:
		if b == 0 {
			return 0, t.Throw("java/lang/ArithmeticException", "/ by zero")
		}
		if opcode == OpIdiv {
			return a / b, nil
		}
		return a % b, nil
	case OpIshl:
		return a << uint(b&31), nil
	case OpIshr:
		return a >> uint(b&31), nil
	case OpIushr:
		return int32(uint32(a) >> uint(b&31)), nil
	case OpIand:
		return a & b, nil
	case OpIor:
		return a | b, nil
	}
	return a ^ b, nil
}

func (t *Thread) longOp(opcode byte, a, b int64) (int64, error) {
	switch opcode {
	case OpLadd:
		return a + b, nil
	case OpLsub:
		return a - b, nil
	case OpLmul:
		return a * b, nil
	case OpLdiv, OpLrem:
		if b == 0 {
			return 0, t.Throw("java/lang/ArithmeticException", "/ by zero")
		}
		if opcode == OpLdiv {
			return a / b, nil
		}
		return a % b, nil
	case OpLand:
		return a & b, nil
	case OpLor:
		return a | b, nil
	}
	return a ^ b, nil
}

// floatOp evaluates a double arithmetic opcode.
func floatOp(opcode byte, a, b float64) float64 {
	switch opcode {
	case OpDadd:
		return a + b
	case OpDsub:
		return a - b
	case OpDmul:
		return a * b
	case OpDdiv:
		return a / b
	}
	return math.Mod(a, b)
}

// toInt narrows a floating value with Java's saturating semantics.
func toInt(v float64, lo, hi int64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= float64(lo):
		return lo
	case v >= float64(hi):
		return hi
	}
	return int64(v)
}

// compare evaluates the condition of an if<cond> family opcode, numbered
// eq, ne, lt, ge, gt, le.
func compare(cond byte, a, b int32) bool {
	switch cond {
	case 0:
		return a == b
	case 1:
		return a != b
	case 2:
		return a < b
	case 3:
		return a >= b
	case 4:
		return a > b
	}
	return a <= b
}

func componentDescriptor(name string) string {
	if name[0] == '[' {
		return name
	}
	return "L" + name + ";"
}

func dotted(name string) string {
	return (&Class{Name: name}).JavaName()
}
