//go:build !windows

package cjni

import (
	"os"
	"path/filepath"
	"runtime"
)

const defaultLibrary = "/usr/lib/jvm/default-java/jre/lib/amd64/server/libjvm.so"

// homeLibraries lists where a JDK or JRE rooted at home keeps libjvm.
func homeLibraries(home string) []string {
	name := "libjvm.so"
	if runtime.GOOS == "darwin" {
		name = "libjvm.dylib"
	}
	return []string{
		filepath.Join(home, "lib", "server", name),
		filepath.Join(home, "jre", "lib", "server", name),
		filepath.Join(home, "jre", "lib", runtime.GOARCH, "server", name),
		filepath.Join(home, "jre", "lib", "amd64", "server", name),
	}
}

var systemPatterns = map[string][]string{
	"linux": {
		"/usr/lib/jvm/default-java/lib/server/libjvm.so",
		"/usr/lib/jvm/*/lib/server/libjvm.so",
		"/usr/lib/jvm/*/jre/lib/*/server/libjvm.so",
	},
	"darwin": {
		"/Library/Java/JavaVirtualMachines/*/Contents/Home/lib/server/libjvm.dylib",
		"/opt/homebrew/opt/openjdk/libexec/openjdk.jdk/Contents/Home/lib/server/libjvm.dylib",
	},
	"freebsd": {
		"/usr/local/openjdk*/lib/server/libjvm.so",
	},
}

func locate() (string, error) {
	var candidates []string
	if home := os.Getenv("JAVA_HOME"); home != "" {
		candidates = append(candidates, homeLibraries(home)...)
	}
	for _, pattern := range systemPatterns[runtime.GOOS] {
		matches, _ := filepath.Glob(pattern)
		candidates = append(candidates, matches...)
	}
	candidates = append(candidates, defaultLibrary)
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			return c, nil
		}
	}
	return "", ErrNotFound
}
