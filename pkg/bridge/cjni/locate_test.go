//go:build !windows

package cjni

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateFromJavaHome(t *testing.T) {
	home := t.TempDir()
	lib := homeLibraries(home)[0]
	require.NoError(t, os.MkdirAll(filepath.Dir(lib), 0o755))
	require.NoError(t, os.WriteFile(lib, nil, 0o644))
	t.Setenv("JAVA_HOME", home)

	got, err := NewLoader().Locate()
	require.NoError(t, err)
	assert.Equal(t, lib, got)
}

func TestLocateSkipsDirectories(t *testing.T) {
	home := t.TempDir()
	libs := homeLibraries(home)
	require.NoError(t, os.MkdirAll(libs[0], 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(libs[1]), 0o755))
	require.NoError(t, os.WriteFile(libs[1], nil, 0o644))
	t.Setenv("JAVA_HOME", home)

	got, err := locate()
	require.NoError(t, err)
	assert.Equal(t, libs[1], got)
}
