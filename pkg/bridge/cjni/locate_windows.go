//go:build windows

package cjni

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

var registryKeys = []string{
	`Software\JavaSoft\Java Runtime Environment`,
	`Software\JavaSoft\JRE`,
	`Software\JavaSoft\JDK`,
}

func homeLibraries(home string) []string {
	return []string{
		filepath.Join(home, "bin", "server", "jvm.dll"),
		filepath.Join(home, "jre", "bin", "server", "jvm.dll"),
		filepath.Join(home, "bin", "client", "jvm.dll"),
	}
}

func locate() (string, error) {
	var candidates []string
	if home := os.Getenv("JAVA_HOME"); home != "" {
		candidates = append(candidates, homeLibraries(home)...)
	}
	for _, key := range registryKeys {
		lib, err := registryLibrary(key)
		if err != nil {
			continue
		}
		candidates = append(candidates, lib)
		if alt, ok := serverVariant(lib); ok {
			candidates = append(candidates, alt)
		}
	}
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			return c, nil
		}
	}
	return "", ErrNotFound
}

// registryLibrary reads <key>\<CurrentVersion>\RuntimeLib, falling back to
// the JavaHome value that JDK keys carry instead.
func registryLibrary(key string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, key, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	version, _, err := k.GetStringValue("CurrentVersion")
	k.Close()
	if err != nil {
		return "", fmt.Errorf("reading %s\\CurrentVersion: %w", key, err)
	}

	vk, err := registry.OpenKey(registry.LOCAL_MACHINE, key+`\`+version, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer vk.Close()
	if lib, _, err := vk.GetStringValue("RuntimeLib"); err == nil {
		return lib, nil
	}
	home, _, err := vk.GetStringValue("JavaHome")
	if err != nil {
		return "", fmt.Errorf("reading %s\\%s: %w", key, version, err)
	}
	return filepath.Join(home, "bin", "server", "jvm.dll"), nil
}
