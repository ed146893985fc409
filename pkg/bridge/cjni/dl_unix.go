//go:build cgo && jni && !windows

package cjni

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>

static void* gojni_dlopen(const char* path) {
	return dlopen(path, RTLD_NOW | RTLD_GLOBAL);
}

static void* gojni_dlsym(void* h, const char* name) {
	return dlsym(h, name);
}

static int gojni_dlclose(void* h) {
	return dlclose(h);
}

static const char* gojni_dlerror(void) {
	return dlerror();
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

type dynlib struct {
	h unsafe.Pointer
}

func loadLibrary(path string) (*dynlib, unsafe.Pointer, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	h := C.gojni_dlopen(cpath)
	if h == nil {
		return nil, nil, fmt.Errorf("dlopen %s: %s", path, C.GoString(C.gojni_dlerror()))
	}

	sym := C.CString("JNI_CreateJavaVM")
	defer C.free(unsafe.Pointer(sym))
	fn := C.gojni_dlsym(h, sym)
	if fn == nil {
		msg := C.GoString(C.gojni_dlerror())
		C.gojni_dlclose(h)
		return nil, nil, fmt.Errorf("dlsym JNI_CreateJavaVM in %s: %s", path, msg)
	}
	return &dynlib{h: h}, fn, nil
}

func (l *dynlib) close() error {
	if l.h == nil {
		return nil
	}
	if C.gojni_dlclose(l.h) != 0 {
		return fmt.Errorf("dlclose: %s", C.GoString(C.gojni_dlerror()))
	}
	l.h = nil
	return nil
}
