package hostvm

import (
	"errors"
	"math"
	"testing"

	"github.com/daimatz/gojni/pkg/classfile"
)

func testThread(t *testing.T) *Thread {
	t.Helper()
	rt, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &Thread{rt: rt}
}

// execute runs bytecode as the body of a static method with the given
// locals and returns the value it returns.
func execute(t *testing.T, code []byte, locals ...Value) (Value, error) {
	t.Helper()

	maxLocals := uint16(len(locals))
	if maxLocals < 4 {
		maxLocals = 4
	}
	m := &Method{
		Class: &Class{Name: "Test"},
		Name:  "test",
		Flags: classfile.AccStatic,
		Code:  &classfile.CodeAttribute{MaxStack: 10, MaxLocals: maxLocals, Code: code},
	}
	frame := NewFrame(m)
	for i, v := range locals {
		frame.SetLocal(i, v)
	}
	return testThread(t).execute(frame)
}

func executeAndGetInt(t *testing.T, code []byte, locals ...int32) int32 {
	t.Helper()
	values := make([]Value, len(locals))
	for i, v := range locals {
		values[i] = IntValue(v)
	}
	ret, err := execute(t, code, values...)
	if err != nil {
		t.Fatalf("execution error: %v", err)
	}
	return ret.Int
}

func TestIconst(t *testing.T) {
	tests := []struct {
		name   string
		opcode byte
		want   int32
	}{
		{"iconst_m1", 0x02, -1},
		{"iconst_0", 0x03, 0},
		{"iconst_1", 0x04, 1},
		{"iconst_2", 0x05, 2},
		{"iconst_3", 0x06, 3},
		{"iconst_4", 0x07, 4},
		{"iconst_5", 0x08, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := executeAndGetInt(t, []byte{tt.opcode, OpIreturn})
			if got != tt.want {
				t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestPush(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want int32
	}{
		{"bipush positive", []byte{OpBipush, 42, OpIreturn}, 42},
		{"bipush negative", []byte{OpBipush, 0xFB, OpIreturn}, -5},
		{"sipush", []byte{OpSipush, 0x01, 0x00, OpIreturn}, 256},
		{"sipush negative", []byte{OpSipush, 0xFF, 0xFF, OpIreturn}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := executeAndGetInt(t, tt.code); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		opcode byte
		a, b   int32
		want   int32
	}{
		{"iadd", OpIadd, 3, 4, 7},
		{"isub", OpIsub, 3, 4, -1},
		{"imul", OpImul, -3, 4, -12},
		{"idiv", OpIdiv, 7, 2, 3},
		{"idiv negative", OpIdiv, -7, 2, -3},
		{"idiv overflow", OpIdiv, math.MinInt32, -1, math.MinInt32},
		{"irem", OpIrem, -7, 2, -1},
		{"ishl", OpIshl, 1, 33, 2},
		{"ishr", OpIshr, -8, 1, -4},
		{"iushr", OpIushr, -1, 28, 15},
		{"iand", OpIand, 6, 3, 2},
		{"ior", OpIor, 6, 3, 7},
		{"ixor", OpIxor, 6, 3, 5},
		{"iadd overflow", OpIadd, math.MaxInt32, 1, math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := []byte{OpIload0, OpIload0 + 1, tt.opcode, OpIreturn}
			if got := executeAndGetInt(t, code, tt.a, tt.b); got != tt.want {
				t.Errorf("%d %s %d: got %d, want %d", tt.a, tt.name, tt.b, got, tt.want)
			}
		})
	}
}

func TestIdivByZero(t *testing.T) {
	_, err := execute(t, []byte{OpIload0, OpIload0 + 1, OpIdiv, OpIreturn}, IntValue(1), IntValue(0))
	var jex *JavaException
	if !errors.As(err, &jex) {
		t.Fatalf("got %v, want JavaException", err)
	}
	if got := jex.Error(); got != "java.lang.ArithmeticException: / by zero" {
		t.Errorf("got %q", got)
	}
}

func TestLongArithmetic(t *testing.T) {
	// (a + b) * a >> 1, returned as long
	code := []byte{
		OpLload0, OpLload0 + 1, OpLadd,
		OpLload0, OpLmul,
		OpIconst1, OpLshr,
		OpLreturn,
	}
	ret, err := execute(t, code, LongValue(1<<32), LongValue(2))
	if err != nil {
		t.Fatalf("execution error: %v", err)
	}
	a := int64(1 << 32)
	want := (a + 2) * a >> 1
	if ret.Long != want {
		t.Errorf("got %d, want %d", ret.Long, want)
	}
}

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		arg  Value
		want int32
	}{
		{"i2b", []byte{OpIload0, OpI2b, OpIreturn}, IntValue(200), -56},
		{"i2c", []byte{OpIload0, OpI2c, OpIreturn}, IntValue(-1), 0xFFFF},
		{"i2s", []byte{OpIload0, OpI2s, OpIreturn}, IntValue(40000), -25536},
		{"l2i", []byte{OpLload0, OpL2i, OpIreturn}, LongValue(1<<32 + 5), 5},
		{"f2i", []byte{OpFload0, OpF2i, OpIreturn}, FloatValue(-3.9), -3},
		{"f2i nan", []byte{OpFload0, OpF2i, OpIreturn}, FloatValue(float32(math.NaN())), 0},
		{"d2i saturates", []byte{OpDload0, OpD2i, OpIreturn}, DoubleValue(1e20), math.MaxInt32},
		{"fcmpl nan", []byte{OpFload0, OpFload0, OpFcmpl, OpIreturn}, FloatValue(float32(math.NaN())), -1},
		{"fcmpg nan", []byte{OpFload0, OpFload0, OpFcmpg, OpIreturn}, FloatValue(float32(math.NaN())), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ret, err := execute(t, tt.code, tt.arg)
			if err != nil {
				t.Fatalf("execution error: %v", err)
			}
			if ret.Int != tt.want {
				t.Errorf("got %d, want %d", ret.Int, tt.want)
			}
		})
	}
}

func TestLoop(t *testing.T) {
	// sum = 0; for (i = 1; i <= n; i++) sum += i; return sum
	code := []byte{
		OpIconst0, OpIstore0 + 1, // 0: sum = 0
		OpIconst1, OpIstore0 + 2, // 2: i = 1
		OpIload0 + 2, OpIload0, // 4: i, n
		OpIfIcmpgt, 0x00, 0x0D, // 6: if i > n goto 19
		OpIload0 + 1, OpIload0 + 2, OpIadd, OpIstore0 + 1, // 9: sum += i
		OpIinc, 2, 1, // 13: i++
		OpGoto, 0xFF, 0xF4, // 16: goto 4
		OpIload0 + 1, OpIreturn, // 19: return sum
	}
	if got := executeAndGetInt(t, code, 10); got != 55 {
		t.Errorf("sum(10): got %d, want 55", got)
	}
}

func TestTableswitch(t *testing.T) {
	// switch (x) { case 1: return 10; case 2: return 20; default: return -1 }
	// Offsets are relative to the tableswitch at PC 1.
	code := []byte{
		OpIload0,
		OpTableswitch, 0x00, 0x00, // padded to 4
		0x00, 0x00, 0x00, 0x1D, // default -> 30
		0x00, 0x00, 0x00, 0x01, // low
		0x00, 0x00, 0x00, 0x02, // high
		0x00, 0x00, 0x00, 0x17, // 1 -> 24
		0x00, 0x00, 0x00, 0x1A, // 2 -> 27
		OpBipush, 10, OpIreturn, // 24
		OpBipush, 20, OpIreturn, // 27
		OpIconstM1, OpIreturn, // 30
	}
	tests := map[int32]int32{1: 10, 2: 20, 0: -1, 3: -1}
	for in, want := range tests {
		if got := executeAndGetInt(t, code, in); got != want {
			t.Errorf("tableswitch(%d): got %d, want %d", in, got, want)
		}
	}
}

func TestLookupswitch(t *testing.T) {
	code := []byte{
		OpIload0,
		OpLookupswitch, 0x00, 0x00, // padded to 4
		0x00, 0x00, 0x00, 0x1F, // default -> 32
		0x00, 0x00, 0x00, 0x02, // npairs
		0xFF, 0xFF, 0xFF, 0xF6, 0x00, 0x00, 0x00, 0x1B, // -10 -> 28
		0x00, 0x00, 0x03, 0xE8, 0x00, 0x00, 0x00, 0x1D, // 1000 -> 30
		OpIconst1, OpIreturn, // 28
		OpIconst2, OpIreturn, // 30
		OpIconst0, OpIreturn, // 32
	}
	tests := map[int32]int32{-10: 1, 1000: 2, 5: 0}
	for in, want := range tests {
		if got := executeAndGetInt(t, code, in); got != want {
			t.Errorf("lookupswitch(%d): got %d, want %d", in, got, want)
		}
	}
}

func TestStackManipulation(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want int32
	}{
		{"dup", []byte{OpIconst3, OpDup, OpImul, OpIreturn}, 9},
		{"swap", []byte{OpIconst1, OpIconst5, OpSwap, OpIsub, OpIreturn}, 4},
		{"dup_x1", []byte{OpIconst2, OpIconst3, OpDupX1, OpIsub, OpIsub, OpIreturn}, 4},
		{"pop2 pair", []byte{OpIconst1, OpIconst2, OpIconst3, OpPop2, OpIreturn}, 1},
		{"pop2 long", []byte{OpIconst4, OpLconst1, OpPop2, OpIreturn}, 4},
		{"dup2 ints", []byte{OpIconst1, OpIconst2, OpDup2, OpIadd, OpIadd, OpIadd, OpIreturn}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := executeAndGetInt(t, tt.code); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestArrays(t *testing.T) {
	// int[] a = new int[3]; a[1] = 7; return a[1] + a.length
	code := []byte{
		OpIconst3, OpNewarray, 10, OpAstore0,
		OpAload0, OpIconst1, OpBipush, 7, OpIastore,
		OpAload0, OpIconst1, OpIaload,
		OpAload0, OpArraylength,
		OpIadd, OpIreturn,
	}
	if got := executeAndGetInt(t, code); got != 10 {
		t.Errorf("got %d, want 10", got)
	}

	_, err := execute(t, []byte{OpIconst1, OpNewarray, 8, OpIconst2, OpBaload, OpIreturn})
	var jex *JavaException
	if !errors.As(err, &jex) || jex.Object.Class.Name != "java/lang/ArrayIndexOutOfBoundsException" {
		t.Errorf("out of bounds: got %v", err)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		bits int
		want string
	}{
		{1, 64, "1.0"},
		{-0.5, 64, "-0.5"},
		{100, 64, "100.0"},
		{1e7, 64, "1.0E7"},
		{1.5e-5, 64, "1.5E-5"},
		{math.Inf(-1), 64, "-Infinity"},
		{math.NaN(), 64, "NaN"},
		{0.1, 32, "0.1"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in, tt.bits); got != tt.want {
			t.Errorf("formatFloat(%v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
