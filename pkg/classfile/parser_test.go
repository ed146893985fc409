package classfile

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// counterClass builds a small class with a constant field, an instance
// field, a constructor, a static method and a string-concat call site.
func counterClass() []byte {
	b := NewBuilder("demo/Counter", "")
	b.ConstantField(AccPublic|AccStatic|AccFinal, "LIMIT", "I", b.Integer(100000))
	b.Field(AccPrivate, "count", "I")
	objInit := b.Methodref("java/lang/Object", "<init>", "()V")
	// aload_0; invokespecial Object.<init>; return
	b.Method(AccPublic, "<init>", "()V", 1, 1, append(withIndex([]byte{0x2A, 0xB7}, objInit), 0xB1))
	b.Method(AccPublic|AccStatic, "add", "(II)I", 2, 2, []byte{0x1A, 0x1B, 0x60, 0xAC})
	site := b.StringConcat("n=\u0001", "(I)Ljava/lang/String;")
	// iload_0; invokedynamic site; areturn
	b.Method(AccPublic|AccStatic, "label", "(I)Ljava/lang/String;", 1, 1,
		append(withIndex([]byte{0x1A, 0xBA}, site), 0x00, 0x00, 0xB0))
	b.Abstract(AccPublic|AccNative, "peek", "()J")
	b.Long(1 << 40)
	return b.Bytes()
}

// withIndex appends a big-endian constant pool index to code.
func withIndex(code []byte, idx uint16) []byte {
	return binary.BigEndian.AppendUint16(code, idx)
}

func TestParseBuiltClass(t *testing.T) {
	cf, err := ParseBytes(counterClass())
	if err != nil {
		t.Fatalf("failed to parse built class: %v", err)
	}

	if cf.MajorVersion != BuilderMajorVersion {
		t.Errorf("major version: got %d, want %d", cf.MajorVersion, BuilderMajorVersion)
	}

	name, err := cf.ClassName()
	if err != nil {
		t.Fatalf("resolving this_class: %v", err)
	}
	if name != "demo/Counter" {
		t.Errorf("this_class: got %q, want %q", name, "demo/Counter")
	}
	if got := cf.SuperClassName(); got != "java/lang/Object" {
		t.Errorf("super_class: got %q, want %q", got, "java/lang/Object")
	}

	add := cf.FindMethod("add", "(II)I")
	if add == nil {
		t.Fatal("add(II)I method not found")
	}
	if !add.IsStatic() {
		t.Error("add should be static")
	}
	if add.Code == nil || len(add.Code.Code) != 4 {
		t.Fatalf("add Code attribute: got %+v", add.Code)
	}
	if add.Code.MaxStack != 2 || add.Code.MaxLocals != 2 {
		t.Errorf("add limits: got stack=%d locals=%d, want 2/2", add.Code.MaxStack, add.Code.MaxLocals)
	}

	peek := cf.FindMethod("peek", "()J")
	if peek == nil || !peek.IsNative() || peek.Code != nil {
		t.Errorf("peek: got %+v, want native without code", peek)
	}

	limit := cf.FindField("LIMIT")
	if limit == nil {
		t.Fatal("LIMIT field not found")
	}
	idx, ok := limit.ConstantValue()
	if !ok {
		t.Fatal("LIMIT has no ConstantValue")
	}
	entry, err := cf.ConstantPool.Entry(idx)
	if err != nil {
		t.Fatalf("resolving ConstantValue: %v", err)
	}
	if c, ok := entry.(*ConstantInteger); !ok || c.Value != 100000 {
		t.Errorf("LIMIT value: got %#v, want 100000", entry)
	}
	if _, ok := cf.FindField("count").ConstantValue(); ok {
		t.Error("count should have no ConstantValue")
	}
}

func TestParseBootstrapMethods(t *testing.T) {
	cf, err := ParseBytes(counterClass())
	if err != nil {
		t.Fatalf("failed to parse built class: %v", err)
	}
	if len(cf.BootstrapMethods) != 1 {
		t.Fatalf("bootstrap methods: got %d, want 1", len(cf.BootstrapMethods))
	}
	bsm := cf.BootstrapMethods[0]
	if len(bsm.BootstrapArguments) != 1 {
		t.Fatalf("bootstrap args: got %d, want 1", len(bsm.BootstrapArguments))
	}
	recipe, err := cf.ConstantPool.StringValue(bsm.BootstrapArguments[0])
	if err != nil {
		t.Fatalf("resolving recipe: %v", err)
	}
	if recipe != "n=\u0001" {
		t.Errorf("recipe: got %q", recipe)
	}

	handle, err := cf.ConstantPool.Entry(bsm.MethodRef)
	if err != nil {
		t.Fatalf("resolving handle: %v", err)
	}
	mh, ok := handle.(*ConstantMethodHandle)
	if !ok || mh.ReferenceKind != RefInvokeStatic {
		t.Fatalf("handle: got %#v", handle)
	}
	ref, err := cf.ConstantPool.Member(mh.ReferenceIndex)
	if err != nil {
		t.Fatalf("resolving handle target: %v", err)
	}
	if ref.Name != "makeConcatWithConstants" {
		t.Errorf("handle target: got %q", ref.Name)
	}
}

func TestParseLongTakesTwoSlots(t *testing.T) {
	b := NewBuilder("Wide", "")
	long := b.Long(-7)
	after := b.Utf8("after")
	if after != long+2 {
		t.Fatalf("builder slots: long=%d next=%d", long, after)
	}
	cf, err := ParseBytes(b.Bytes())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c, ok := cf.ConstantPool[long].(*ConstantLong); !ok || c.Value != -7 {
		t.Errorf("long constant: got %#v", cf.ConstantPool[long])
	}
	if cf.ConstantPool[long+1] != nil {
		t.Errorf("slot after long should be empty")
	}
	if s, err := cf.ConstantPool.Utf8(after); err != nil || s != "after" {
		t.Errorf("utf8 after long: got %q, %v", s, err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Counter.class")
	if err := os.WriteFile(path, counterClass(), 0o644); err != nil {
		t.Fatalf("writing class: %v", err)
	}
	cf, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if cf.FindMethod("<init>", "()V") == nil {
		t.Error("constructor not found")
	}
}

func TestParseInvalidMagic(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
	if err == nil {
		t.Error("expected error for invalid magic number, got nil")
	}
}

func TestParseTruncated(t *testing.T) {
	data := counterClass()
	for _, n := range []int{3, 10, len(data) / 2, len(data) - 1} {
		if _, err := ParseBytes(data[:n]); err == nil {
			t.Errorf("truncated at %d: expected error", n)
		}
	}
}
