package hostvm

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/daimatz/gojni/pkg/bridge"
	"github.com/daimatz/gojni/pkg/classfile"
)

func greeterClass() []byte {
	b := classfile.NewBuilder("demo/Greeter", "")
	b.Method(classfile.AccPublic|classfile.AccStatic, "answer", "()I", 1, 0, []byte{OpBipush, 42, OpIreturn})
	return b.Bytes()
}

func writeJar(t *testing.T, path string, files map[string][]byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating jar: %v", err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for name, data := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("adding %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing jar: %v", err)
	}
}

func TestDirClassLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "demo"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "demo", "Greeter.class"), greeterClass(), 0o644); err != nil {
		t.Fatal(err)
	}
	cl := NewDirClassLoader(dir)

	t.Run("load Greeter class", func(t *testing.T) {
		cf, err := cl.LoadClass("demo/Greeter")
		if err != nil {
			t.Fatalf("failed to load demo/Greeter: %v", err)
		}
		name, err := cf.ClassName()
		if err != nil {
			t.Fatalf("failed to get class name: %v", err)
		}
		if name != "demo/Greeter" {
			t.Errorf("class name: got %q, want %q", name, "demo/Greeter")
		}
	})

	t.Run("missing class", func(t *testing.T) {
		if _, err := cl.LoadClass("demo/Missing"); !errors.Is(err, ErrClassNotFound) {
			t.Errorf("got %v, want ErrClassNotFound", err)
		}
	})
}

func TestJarClassLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.jar")
	writeJar(t, path, map[string][]byte{
		"demo/Greeter.class":   greeterClass(),
		"META-INF/MANIFEST.MF": []byte("Manifest-Version: 1.0\n"),
	})
	cl := NewJarClassLoader(path)
	defer cl.Close()

	if _, err := cl.LoadClass("demo/Greeter"); err != nil {
		t.Fatalf("failed to load demo/Greeter: %v", err)
	}
	if _, err := cl.LoadClass("demo/Missing"); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("missing class: got %v, want ErrClassNotFound", err)
	}

	absent := NewJarClassLoader(filepath.Join(t.TempDir(), "absent.jar"))
	if _, err := absent.LoadClass("demo/Greeter"); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("absent jar: got %v, want ErrClassNotFound", err)
	}
}

func TestNewClassPath(t *testing.T) {
	path := "classes" + string(filepath.ListSeparator) + "lib/a.jar" + string(filepath.ListSeparator)
	loaders := NewClassPath(path)
	if len(loaders) != 2 {
		t.Fatalf("loaders: got %d, want 2", len(loaders))
	}
	if _, ok := loaders[0].(*DirClassLoader); !ok {
		t.Errorf("first entry: got %T, want *DirClassLoader", loaders[0])
	}
	if _, ok := loaders[1].(*JarClassLoader); !ok {
		t.Errorf("second entry: got %T, want *JarClassLoader", loaders[1])
	}
}

func TestClassPathOption(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	path := filepath.Join(t.TempDir(), "demo.jar")
	writeJar(t, path, map[string][]byte{"demo/Greeter.class": greeterClass()})

	rt, err := New()
	if err != nil {
		t.Fatal(err)
	}
	lib, _ := rt.Loader().Open("")
	vm, env, err := lib.CreateJavaVM(bridge.InitArgs{
		Version: bridge.Version1_8,
		Options: []string{"-Djava.class.path=" + path},
	})
	if err != nil {
		t.Fatalf("CreateJavaVM: %v", err)
	}
	defer vm.DestroyJavaVM()

	cls := env.FindClass("demo/Greeter")
	if cls == 0 {
		env.ExceptionClear()
		t.Fatal("demo/Greeter not found on class path")
	}
	answer := env.GetStaticMethodID(cls, "answer", "()I")
	if got := env.CallStaticIntMethodA(cls, answer, nil); got != 42 {
		t.Errorf("answer: got %d, want 42", got)
	}
}
