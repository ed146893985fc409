package hostvm

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/daimatz/gojni/pkg/classfile"
)

// ClassLoader loads .class files by class name. It returns an error wrapping
// ErrClassNotFound when it does not hold the class.
type ClassLoader interface {
	LoadClass(name string) (*classfile.ClassFile, error)
}

// NewClassPath returns one loader per entry of a class path string.
func NewClassPath(path string) []ClassLoader {
	var loaders []ClassLoader
	for _, p := range filepath.SplitList(path) {
		switch {
		case p == "":
		case strings.HasSuffix(p, ".jar") || strings.HasSuffix(p, ".zip"):
			loaders = append(loaders, NewJarClassLoader(p))
		default:
			loaders = append(loaders, NewDirClassLoader(p))
		}
	}
	return loaders
}

// DirClassLoader loads classes from a directory tree.
type DirClassLoader struct {
	Dir string
}

// NewDirClassLoader creates a new DirClassLoader.
func NewDirClassLoader(dir string) *DirClassLoader {
	return &DirClassLoader{Dir: dir}
}

func (cl *DirClassLoader) LoadClass(name string) (*classfile.ClassFile, error) {
	path := filepath.Join(cl.Dir, filepath.FromSlash(name)+".class")
	cf, err := classfile.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("dir: %w: %s", ErrClassNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("dir: parsing %s: %w", name, err)
	}
	return cf, nil
}

// JarClassLoader loads classes from a jar file. The archive is opened on
// first use and stays open.
type JarClassLoader struct {
	JarPath string

	once    sync.Once
	reader  *zip.ReadCloser
	openErr error
}

// NewJarClassLoader creates a new JarClassLoader.
func NewJarClassLoader(path string) *JarClassLoader {
	return &JarClassLoader{JarPath: path}
}

func (cl *JarClassLoader) LoadClass(name string) (*classfile.ClassFile, error) {
	cl.once.Do(func() {
		cl.reader, cl.openErr = zip.OpenReader(cl.JarPath)
	})
	if errors.Is(cl.openErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("jar: %w: %s", ErrClassNotFound, name)
	}
	if cl.openErr != nil {
		return nil, fmt.Errorf("jar: opening %s: %w", cl.JarPath, cl.openErr)
	}

	rc, err := cl.reader.Open(name + ".class")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("jar: %w: %s", ErrClassNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("jar: opening %s: %w", name, err)
	}
	defer rc.Close()

	cf, err := classfile.Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("jar: parsing %s: %w", name, err)
	}
	return cf, nil
}

// Close releases the archive.
func (cl *JarClassLoader) Close() error {
	if cl.reader == nil {
		return nil
	}
	return cl.reader.Close()
}
