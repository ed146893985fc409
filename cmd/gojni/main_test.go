package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daimatz/gojni/pkg/classfile"
	"github.com/daimatz/gojni/pkg/hostvm"
)

func u16(op byte, idx uint16) []byte {
	return []byte{op, byte(idx >> 8), byte(idx)}
}

// countArgsClass builds app/CountArgs, whose main prints its argument count.
func countArgsClass() []byte {
	b := classfile.NewBuilder("app/CountArgs", "")
	out := b.Fieldref("java/lang/System", "out", "Ljava/io/PrintStream;")
	printInt := b.Methodref("java/io/PrintStream", "println", "(I)V")
	code := u16(hostvm.OpGetstatic, out)
	code = append(code, hostvm.OpAload0, hostvm.OpArraylength)
	code = append(code, u16(hostvm.OpInvokevirtual, printInt)...)
	code = append(code, hostvm.OpReturn)
	b.Method(classfile.AccPublic|classfile.AccStatic, "main", mainDescriptor, 2, 1, code)
	return b.Bytes()
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"gojni"}, args...))
	return out.String(), err
}

func TestRunOnHostBridge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CountArgs.class")
	require.NoError(t, os.WriteFile(path, countArgsClass(), 0o644))
	cfg := filepath.Join(dir, "gojni.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[jvm]\nbridge = \"host\"\n[log]\nlevel = \"error\"\n"), 0o644))

	out, err := runApp(t, "--config", cfg, "run", "-X", "-Dgojni.test=1", path, "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "gojni.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[jvm]\nbridge = \"host\"\n"), 0o644))

	_, err := runApp(t, "--config", cfg, "run", "--bridge", "wasm", "Missing.class")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jvm.bridge")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[jvm]\nheap = 1\n"), 0o644))
	_, err = runApp(t, "--config", bad, "run", "Missing.class")
	require.Error(t, err)
}

func TestRunMainRejectsClassWithoutMain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Empty.class")
	require.NoError(t, os.WriteFile(path, classfile.NewBuilder("app/Empty", "").Bytes(), 0o644))

	err := runMain(nil, path, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no static main"))

	err = runMain(nil, filepath.Join(t.TempDir(), "absent.class"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocate(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "freebsd" {
		t.Skip("JAVA_HOME layout differs on " + runtime.GOOS)
	}
	home := t.TempDir()
	lib := filepath.Join(home, "lib", "server", "libjvm.so")
	require.NoError(t, os.MkdirAll(filepath.Dir(lib), 0o755))
	require.NoError(t, os.WriteFile(lib, nil, 0o644))
	t.Setenv("JAVA_HOME", home)

	out, err := runApp(t, "locate")
	require.NoError(t, err)
	assert.Equal(t, lib+"\n", out)
}
