package jni

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/daimatz/gojni/pkg/classfile"
	"github.com/daimatz/gojni/pkg/hostvm"
)

// rt backs the package-wide VM every test shares.
var rt *hostvm.Runtime

// base and derived are demo/Base and demo/Derived, defined once per process.
var base, derived *Class

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	var err error
	rt, err = hostvm.New(hostvm.WithStdout(io.Discard), hostvm.WithStderr(io.Discard))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	vm, err := NewVM(WithLoader(rt.Loader()), WithOptions("-Xmx64m"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer vm.Close()

	if base, err = DefineClass("demo/Base", nil, baseClass()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if derived, err = DefineClass("demo/Derived", nil, derivedClass()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	code := m.Run()
	if v := rt.Violations(); len(v) > 0 {
		fmt.Fprintf(os.Stderr, "interface misuse:\n  %s\n", strings.Join(v, "\n  "))
		return 1
	}
	return code
}

func u16(op byte, idx uint16) []byte {
	return []byte{op, byte(idx >> 8), byte(idx)}
}

func join(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// baseClass builds demo/Base: instance fields sides and title, static
// fields count and label, name() returning "base" and a static
// measure(String, int) returning the string's length plus the int.
func baseClass() []byte {
	b := classfile.NewBuilder("demo/Base", "")
	b.Field(classfile.AccPublic, "sides", "I")
	b.Field(classfile.AccPublic, "title", "Ljava/lang/String;")
	b.Field(classfile.AccPublic|classfile.AccStatic, "count", "J")
	b.Field(classfile.AccPublic|classfile.AccStatic, "label", "Ljava/lang/String;")

	objInit := b.Methodref("java/lang/Object", "<init>", "()V")
	b.Method(classfile.AccPublic, "<init>", "()V", 1, 1, join(
		[]byte{hostvm.OpAload0},
		u16(hostvm.OpInvokespecial, objInit),
		[]byte{hostvm.OpReturn},
	))
	b.Method(classfile.AccPublic, "name", "()Ljava/lang/String;", 1, 1, join(
		u16(hostvm.OpLdcW, b.String("base")),
		[]byte{hostvm.OpAreturn},
	))
	length := b.Methodref("java/lang/String", "length", "()I")
	b.Method(classfile.AccPublic|classfile.AccStatic, "measure", "(Ljava/lang/String;I)I", 2, 2, join(
		[]byte{hostvm.OpAload0},
		u16(hostvm.OpInvokevirtual, length),
		[]byte{hostvm.OpIload0 + 1, hostvm.OpIadd, hostvm.OpIreturn},
	))
	return b.Bytes()
}

// derivedClass builds demo/Derived, overriding name() to return "derived".
func derivedClass() []byte {
	b := classfile.NewBuilder("demo/Derived", "demo/Base")
	baseInit := b.Methodref("demo/Base", "<init>", "()V")
	b.Method(classfile.AccPublic, "<init>", "()V", 1, 1, join(
		[]byte{hostvm.OpAload0},
		u16(hostvm.OpInvokespecial, baseInit),
		[]byte{hostvm.OpReturn},
	))
	b.Method(classfile.AccPublic, "name", "()Ljava/lang/String;", 1, 1, join(
		u16(hostvm.OpLdcW, b.String("derived")),
		[]byte{hostvm.OpAreturn},
	))
	return b.Bytes()
}

// freshProcess swaps in empty process state for tests that drive the VM
// lifecycle, restoring the shared VM afterwards.
func freshProcess(t *testing.T) *hostvm.Runtime {
	t.Helper()
	saved := proc
	proc = &process{}
	t.Cleanup(func() { proc = saved })

	r, err := hostvm.New(hostvm.WithStdout(io.Discard), hostvm.WithStderr(io.Discard))
	if err != nil {
		t.Fatalf("hostvm.New: %v", err)
	}
	return r
}

// pinned locks the test goroutine to its thread for the rest of the test.
func pinned(t *testing.T) {
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
}

func pinnedThread() { runtime.LockOSThread() }
