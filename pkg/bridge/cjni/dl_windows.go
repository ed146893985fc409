//go:build cgo && jni && windows

package cjni

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

type dynlib struct {
	h windows.Handle
}

func loadLibrary(path string) (*dynlib, unsafe.Pointer, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		alt, ok := serverVariant(path)
		if !ok {
			return nil, nil, fmt.Errorf("LoadLibrary %s: %w", path, err)
		}
		if h, err = windows.LoadLibrary(alt); err != nil {
			return nil, nil, fmt.Errorf("LoadLibrary %s: %w", alt, err)
		}
	}

	fn, err := windows.GetProcAddress(h, "JNI_CreateJavaVM")
	if err != nil {
		windows.FreeLibrary(h)
		return nil, nil, fmt.Errorf("GetProcAddress JNI_CreateJavaVM in %s: %w", path, err)
	}
	return &dynlib{h: h}, unsafe.Pointer(fn), nil
}

func (l *dynlib) close() error {
	if l.h == 0 {
		return nil
	}
	if err := windows.FreeLibrary(l.h); err != nil {
		return fmt.Errorf("FreeLibrary: %w", err)
	}
	l.h = 0
	return nil
}
