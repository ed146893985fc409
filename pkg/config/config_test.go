package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daimatz/gojni/pkg/bridge"
	"github.com/daimatz/gojni/pkg/classfile"
	"github.com/daimatz/gojni/pkg/hostvm"
	"github.com/daimatz/gojni/pkg/jni"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
[jvm]
library = "/opt/jdk/lib/server/libjvm.so"
options = ["-Xmx256m", "-Dapp.mode=test"]
class_path = ["classes", "lib/dep.jar"]
version = "10"
ignore_unrecognized = true
destroy_on_close = true
bridge = "host"

[log]
level = "debug"
development = true
`))
	require.NoError(t, err)

	assert.Equal(t, "/opt/jdk/lib/server/libjvm.so", cfg.JVM.Library)
	assert.Equal(t, []string{"-Xmx256m", "-Dapp.mode=test"}, cfg.JVM.Options)
	assert.Equal(t, []string{"classes", "lib/dep.jar"}, cfg.JVM.ClassPath)
	assert.True(t, cfg.JVM.IgnoreUnrecognized)
	assert.True(t, cfg.JVM.DestroyOnClose)
	assert.Equal(t, BridgeHost, cfg.JVM.Bridge)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)

	v, err := cfg.InterfaceVersion()
	require.NoError(t, err)
	assert.Equal(t, bridge.Version10, v)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("[jvm]\noptions = [\"-Xss1m\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, "1.8", cfg.JVM.Version)
	assert.Equal(t, BridgeJNI, cfg.JVM.Bridge)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown key", "[jvm]\nheap = \"1g\"\n"},
		{"unknown section", "[server]\nport = 1\n"},
		{"bad version", "[jvm]\nversion = \"1.3\"\n"},
		{"bad bridge", "[jvm]\nbridge = \"wasm\"\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad toml", "[jvm\n"},
		{"wrong type", "[jvm]\noptions = \"-Xmx1g\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOrDefault(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))
	cfg, err = LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = 3\n"), 0o644))
	_, err = LoadOrDefault(path)
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "error"
	l, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
	assert.True(t, l.Core().Enabled(2))

	cfg.Log.Development = true
	cfg.Log.Level = "debug"
	l, err = cfg.Logger()
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))
}

// TestVMOptions starts the host runtime from a configuration and checks
// that every setting reached it.
func TestVMOptions(t *testing.T) {
	dir := t.TempDir()
	b := classfile.NewBuilder("demo/Greeter", "")
	b.Method(classfile.AccPublic|classfile.AccStatic, "answer", "()I", 1, 0, []byte{hostvm.OpBipush, 42, hostvm.OpIreturn})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "demo"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo", "Greeter.class"), b.Bytes(), 0o644))

	cfg := Default()
	cfg.JVM.Bridge = BridgeHost
	cfg.JVM.ClassPath = []string{dir}
	cfg.JVM.Options = []string{"-Dapp.mode=test", "-XX:+Unknown"}
	cfg.JVM.IgnoreUnrecognized = true
	cfg.JVM.DestroyOnClose = true

	var stdout bytes.Buffer
	opts, err := cfg.VMOptions(hostvm.WithStdout(&stdout))
	require.NoError(t, err)
	vm, err := jni.NewVM(opts...)
	require.NoError(t, err)

	greeter, err := jni.FindClass("demo/Greeter")
	require.NoError(t, err)
	answer, err := jni.CallStatic[int32](greeter, "answer")
	require.NoError(t, err)
	assert.Equal(t, int32(42), answer)
	require.NoError(t, greeter.Release())

	system, err := jni.FindClass("java/lang/System")
	require.NoError(t, err)
	mode, err := jni.CallStatic[string](system, "getProperty", "app.mode")
	require.NoError(t, err)
	assert.Equal(t, "test", mode)
	require.NoError(t, system.Release())

	require.NoError(t, vm.Close())
	_, err = jni.NewVM(opts...)
	assert.ErrorIs(t, err, jni.ErrInitialization, "destroy_on_close shuts the VM down")
}

func TestJNILoader(t *testing.T) {
	cfg := Default()
	l, err := cfg.Loader()
	require.NoError(t, err)
	assert.NotNil(t, l)

	cfg.JVM.Library = "/nonexistent/libjvm.so"
	opts, err := cfg.VMOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}
