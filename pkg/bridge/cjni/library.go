//go:build cgo && jni

package cjni

/*
#include <stdlib.h>
#include <jni.h>

typedef jint (JNICALL *gojni_create_fn)(JavaVM**, void**, void*);

static jint gojni_create_vm(void* fn, JavaVM** vm, JNIEnv** env, JavaVMInitArgs* args) {
	return ((gojni_create_fn)fn)(vm, (void**)env, args);
}

static JavaVMOption* gojni_alloc_options(int n) {
	return (JavaVMOption*)calloc(n > 0 ? n : 1, sizeof(JavaVMOption));
}

static void gojni_set_option(JavaVMOption* opts, int i, char* s) {
	opts[i].optionString = s;
	opts[i].extraInfo = NULL;
}

static jint gojni_get_env(JavaVM* vm, JNIEnv** env, jint version) {
	return (*vm)->GetEnv(vm, (void**)env, version);
}

static jint gojni_attach(JavaVM* vm, JNIEnv** env) {
	return (*vm)->AttachCurrentThread(vm, (void**)env, NULL);
}

static jint gojni_attach_daemon(JavaVM* vm, JNIEnv** env) {
	return (*vm)->AttachCurrentThreadAsDaemon(vm, (void**)env, NULL);
}

static jint gojni_detach(JavaVM* vm) {
	return (*vm)->DetachCurrentThread(vm);
}

static jint gojni_destroy(JavaVM* vm) {
	return (*vm)->DestroyJavaVM(vm);
}
*/
import "C"

import (
	"unsafe"

	"github.com/daimatz/gojni/pkg/bridge"
)

type library struct {
	path   string
	lib    *dynlib
	create unsafe.Pointer
}

func open(path string) (bridge.Library, error) {
	lib, create, err := loadLibrary(path)
	if err != nil {
		return nil, err
	}
	return &library{path: path, lib: lib, create: create}, nil
}

func (l *library) Close() error {
	return l.lib.close()
}

func (l *library) CreateJavaVM(args bridge.InitArgs) (bridge.JavaVM, bridge.Env, error) {
	opts := C.gojni_alloc_options(C.int(len(args.Options)))
	defer C.free(unsafe.Pointer(opts))
	for i, o := range args.Options {
		s := C.CString(o)
		defer C.free(unsafe.Pointer(s))
		C.gojni_set_option(opts, C.int(i), s)
	}

	var vmArgs C.JavaVMInitArgs
	vmArgs.version = C.jint(args.Version)
	vmArgs.nOptions = C.jint(len(args.Options))
	vmArgs.options = opts
	vmArgs.ignoreUnrecognized = C.JNI_FALSE
	if args.IgnoreUnrecognized {
		vmArgs.ignoreUnrecognized = C.JNI_TRUE
	}

	var vm *C.JavaVM
	var env *C.JNIEnv
	if rc := C.gojni_create_vm(l.create, &vm, &env, &vmArgs); rc != C.JNI_OK {
		return nil, nil, bridge.Status(rc)
	}
	jvm := &javaVM{p: vm}
	return jvm, &jniEnv{p: env, vm: jvm}, nil
}

type javaVM struct {
	p *C.JavaVM
}

func (vm *javaVM) GetEnv(version int32) (bridge.Env, error) {
	var env *C.JNIEnv
	if rc := C.gojni_get_env(vm.p, &env, C.jint(version)); rc != C.JNI_OK {
		return nil, bridge.Status(rc)
	}
	return &jniEnv{p: env, vm: vm}, nil
}

func (vm *javaVM) AttachCurrentThread() (bridge.Env, error) {
	var env *C.JNIEnv
	if rc := C.gojni_attach(vm.p, &env); rc != C.JNI_OK {
		return nil, bridge.Status(rc)
	}
	return &jniEnv{p: env, vm: vm}, nil
}

func (vm *javaVM) AttachCurrentThreadAsDaemon() (bridge.Env, error) {
	var env *C.JNIEnv
	if rc := C.gojni_attach_daemon(vm.p, &env); rc != C.JNI_OK {
		return nil, bridge.Status(rc)
	}
	return &jniEnv{p: env, vm: vm}, nil
}

func (vm *javaVM) DetachCurrentThread() error {
	if rc := C.gojni_detach(vm.p); rc != C.JNI_OK {
		return bridge.Status(rc)
	}
	return nil
}

func (vm *javaVM) DestroyJavaVM() error {
	if rc := C.gojni_destroy(vm.p); rc != C.JNI_OK {
		return bridge.Status(rc)
	}
	return nil
}
