//go:build cgo && jni

package cjni

/*
#include <stdlib.h>
#include <jni.h>

static jint gojni_GetVersion(JNIEnv* e) { return (*e)->GetVersion(e); }

static jobject gojni_DefineClass(JNIEnv* e, const char* name, jobject loader, const jbyte* buf, jsize len) {
	return (*e)->DefineClass(e, name, loader, buf, len);
}
static jobject gojni_FindClass(JNIEnv* e, const char* name) { return (*e)->FindClass(e, name); }
static jobject gojni_GetSuperclass(JNIEnv* e, jobject c) { return (*e)->GetSuperclass(e, c); }
static jboolean gojni_IsAssignableFrom(JNIEnv* e, jobject a, jobject b) { return (*e)->IsAssignableFrom(e, a, b); }

static jint gojni_Throw(JNIEnv* e, jobject t) { return (*e)->Throw(e, t); }
static jint gojni_ThrowNew(JNIEnv* e, jobject c, const char* msg) { return (*e)->ThrowNew(e, c, msg); }
static jobject gojni_ExceptionOccurred(JNIEnv* e) { return (*e)->ExceptionOccurred(e); }
static void gojni_ExceptionDescribe(JNIEnv* e) { (*e)->ExceptionDescribe(e); }
static void gojni_ExceptionClear(JNIEnv* e) { (*e)->ExceptionClear(e); }
static jboolean gojni_ExceptionCheck(JNIEnv* e) { return (*e)->ExceptionCheck(e); }

static jobject gojni_NewGlobalRef(JNIEnv* e, jobject o) { return (*e)->NewGlobalRef(e, o); }
static void gojni_DeleteGlobalRef(JNIEnv* e, jobject o) { (*e)->DeleteGlobalRef(e, o); }
static void gojni_DeleteLocalRef(JNIEnv* e, jobject o) { (*e)->DeleteLocalRef(e, o); }
static jboolean gojni_IsSameObject(JNIEnv* e, jobject a, jobject b) { return (*e)->IsSameObject(e, a, b); }
static jobject gojni_NewLocalRef(JNIEnv* e, jobject o) { return (*e)->NewLocalRef(e, o); }

static jobject gojni_NewObjectA(JNIEnv* e, jobject c, jmethodID m, const jvalue* args) {
	return (*e)->NewObjectA(e, c, m, args);
}
static jobject gojni_GetObjectClass(JNIEnv* e, jobject o) { return (*e)->GetObjectClass(e, o); }
static jboolean gojni_IsInstanceOf(JNIEnv* e, jobject o, jobject c) { return (*e)->IsInstanceOf(e, o, c); }

static jmethodID gojni_GetMethodID(JNIEnv* e, jobject c, const char* name, const char* sig) {
	return (*e)->GetMethodID(e, c, name, sig);
}
static jmethodID gojni_GetStaticMethodID(JNIEnv* e, jobject c, const char* name, const char* sig) {
	return (*e)->GetStaticMethodID(e, c, name, sig);
}
static jfieldID gojni_GetFieldID(JNIEnv* e, jobject c, const char* name, const char* sig) {
	return (*e)->GetFieldID(e, c, name, sig);
}
static jfieldID gojni_GetStaticFieldID(JNIEnv* e, jobject c, const char* name, const char* sig) {
	return (*e)->GetStaticFieldID(e, c, name, sig);
}

static jobject gojni_NewString(JNIEnv* e, const jchar* chars, jsize len) { return (*e)->NewString(e, chars, len); }
static jsize gojni_GetStringLength(JNIEnv* e, jobject s) { return (*e)->GetStringLength(e, s); }
static void gojni_GetStringRegion(JNIEnv* e, jobject s, jsize len, jchar* buf) {
	(*e)->GetStringRegion(e, s, 0, len, buf);
}
static jobject gojni_NewStringUTF(JNIEnv* e, const char* b) { return (*e)->NewStringUTF(e, b); }
static jsize gojni_GetStringUTFLength(JNIEnv* e, jobject s) { return (*e)->GetStringUTFLength(e, s); }
static void gojni_GetStringUTFRegion(JNIEnv* e, jobject s, jsize len, char* buf) {
	(*e)->GetStringUTFRegion(e, s, 0, len, buf);
}

static jsize gojni_GetArrayLength(JNIEnv* e, jobject a) { return (*e)->GetArrayLength(e, a); }
static jobject gojni_NewObjectArray(JNIEnv* e, jsize n, jobject c, jobject init) {
	return (*e)->NewObjectArray(e, n, c, init);
}
static jobject gojni_GetObjectArrayElement(JNIEnv* e, jobject a, jsize i) { return (*e)->GetObjectArrayElement(e, a, i); }
static void gojni_SetObjectArrayElement(JNIEnv* e, jobject a, jsize i, jobject v) {
	(*e)->SetObjectArrayElement(e, a, i, v);
}

static jint gojni_GetJavaVM(JNIEnv* e, JavaVM** vm) { return (*e)->GetJavaVM(e, vm); }
*/
import "C"

import (
	"unsafe"

	"github.com/daimatz/gojni/pkg/bridge"
)

// jniEnv is a JNIEnv pointer. It must only be used on the thread it was
// obtained on.
type jniEnv struct {
	p  *C.JNIEnv
	vm *javaVM
}

var _ bridge.Env = (*jniEnv)(nil)

// WrapEnv adapts the JNIEnv* a native method receives. The result is valid
// on the calling thread for the duration of the native call.
func WrapEnv(p unsafe.Pointer) (bridge.Env, error) {
	if p == nil {
		return nil, bridge.ErrInvalid
	}
	e := &jniEnv{p: (*C.JNIEnv)(p)}
	if _, err := e.GetJavaVM(); err != nil {
		return nil, err
	}
	return e, nil
}

func ref(r bridge.Ref) C.jobject { return C.jobject(unsafe.Pointer(r)) }

func goRef(o C.jobject) bridge.Ref { return bridge.Ref(unsafe.Pointer(o)) }

func method(m bridge.MethodID) C.jmethodID { return C.jmethodID(unsafe.Pointer(m)) }

func field(f bridge.FieldID) C.jfieldID { return C.jfieldID(unsafe.Pointer(f)) }

func jbool(b bool) C.jboolean {
	if b {
		return C.JNI_TRUE
	}
	return C.JNI_FALSE
}

func values(args []bridge.Value) *C.jvalue {
	if len(args) == 0 {
		return nil
	}
	return (*C.jvalue)(unsafe.Pointer(&args[0]))
}

func cstring(s string) (*C.char, func()) {
	cs := C.CString(s)
	return cs, func() { C.free(unsafe.Pointer(cs)) }
}

func (e *jniEnv) GetVersion() int32 { return int32(C.gojni_GetVersion(e.p)) }

func (e *jniEnv) DefineClass(name string, loader bridge.Ref, buf []byte) bridge.Ref {
	cname, free := cstring(name)
	defer free()
	cbuf := C.CBytes(buf)
	defer C.free(cbuf)
	return goRef(C.gojni_DefineClass(e.p, cname, ref(loader), (*C.jbyte)(cbuf), C.jsize(len(buf))))
}

func (e *jniEnv) FindClass(name string) bridge.Ref {
	cname, free := cstring(name)
	defer free()
	return goRef(C.gojni_FindClass(e.p, cname))
}

func (e *jniEnv) GetSuperclass(cls bridge.Ref) bridge.Ref {
	return goRef(C.gojni_GetSuperclass(e.p, ref(cls)))
}

func (e *jniEnv) IsAssignableFrom(sub, sup bridge.Ref) bool {
	return C.gojni_IsAssignableFrom(e.p, ref(sub), ref(sup)) != C.JNI_FALSE
}

func (e *jniEnv) Throw(obj bridge.Ref) bridge.Status {
	return bridge.Status(C.gojni_Throw(e.p, ref(obj)))
}

func (e *jniEnv) ThrowNew(cls bridge.Ref, msg string) bridge.Status {
	cmsg, free := cstring(msg)
	defer free()
	return bridge.Status(C.gojni_ThrowNew(e.p, ref(cls), cmsg))
}

func (e *jniEnv) ExceptionOccurred() bridge.Ref { return goRef(C.gojni_ExceptionOccurred(e.p)) }

func (e *jniEnv) ExceptionDescribe() { C.gojni_ExceptionDescribe(e.p) }

func (e *jniEnv) ExceptionClear() { C.gojni_ExceptionClear(e.p) }

func (e *jniEnv) ExceptionCheck() bool { return C.gojni_ExceptionCheck(e.p) != C.JNI_FALSE }

func (e *jniEnv) NewGlobalRef(r bridge.Ref) bridge.Ref { return goRef(C.gojni_NewGlobalRef(e.p, ref(r))) }

func (e *jniEnv) DeleteGlobalRef(r bridge.Ref) { C.gojni_DeleteGlobalRef(e.p, ref(r)) }

func (e *jniEnv) DeleteLocalRef(r bridge.Ref) { C.gojni_DeleteLocalRef(e.p, ref(r)) }

func (e *jniEnv) IsSameObject(a, b bridge.Ref) bool {
	return C.gojni_IsSameObject(e.p, ref(a), ref(b)) != C.JNI_FALSE
}

func (e *jniEnv) NewLocalRef(r bridge.Ref) bridge.Ref { return goRef(C.gojni_NewLocalRef(e.p, ref(r))) }

func (e *jniEnv) NewObjectA(cls bridge.Ref, ctor bridge.MethodID, args []bridge.Value) bridge.Ref {
	return goRef(C.gojni_NewObjectA(e.p, ref(cls), method(ctor), values(args)))
}

func (e *jniEnv) GetObjectClass(obj bridge.Ref) bridge.Ref {
	return goRef(C.gojni_GetObjectClass(e.p, ref(obj)))
}

func (e *jniEnv) IsInstanceOf(obj, cls bridge.Ref) bool {
	return C.gojni_IsInstanceOf(e.p, ref(obj), ref(cls)) != C.JNI_FALSE
}

func (e *jniEnv) GetMethodID(cls bridge.Ref, name, sig string) bridge.MethodID {
	cname, freeName := cstring(name)
	defer freeName()
	csig, freeSig := cstring(sig)
	defer freeSig()
	return bridge.MethodID(unsafe.Pointer(C.gojni_GetMethodID(e.p, ref(cls), cname, csig)))
}

func (e *jniEnv) GetStaticMethodID(cls bridge.Ref, name, sig string) bridge.MethodID {
	cname, freeName := cstring(name)
	defer freeName()
	csig, freeSig := cstring(sig)
	defer freeSig()
	return bridge.MethodID(unsafe.Pointer(C.gojni_GetStaticMethodID(e.p, ref(cls), cname, csig)))
}

func (e *jniEnv) GetFieldID(cls bridge.Ref, name, sig string) bridge.FieldID {
	cname, freeName := cstring(name)
	defer freeName()
	csig, freeSig := cstring(sig)
	defer freeSig()
	return bridge.FieldID(unsafe.Pointer(C.gojni_GetFieldID(e.p, ref(cls), cname, csig)))
}

func (e *jniEnv) GetStaticFieldID(cls bridge.Ref, name, sig string) bridge.FieldID {
	cname, freeName := cstring(name)
	defer freeName()
	csig, freeSig := cstring(sig)
	defer freeSig()
	return bridge.FieldID(unsafe.Pointer(C.gojni_GetStaticFieldID(e.p, ref(cls), cname, csig)))
}

func (e *jniEnv) NewString(chars []uint16) bridge.Ref {
	var p *C.jchar
	if len(chars) > 0 {
		p = (*C.jchar)(unsafe.Pointer(&chars[0]))
	}
	return goRef(C.gojni_NewString(e.p, p, C.jsize(len(chars))))
}

func (e *jniEnv) GetStringLength(s bridge.Ref) int32 {
	return int32(C.gojni_GetStringLength(e.p, ref(s)))
}

func (e *jniEnv) GetStringChars(s bridge.Ref) []uint16 {
	n := e.GetStringLength(s)
	if n == 0 {
		return nil
	}
	buf := make([]uint16, n)
	C.gojni_GetStringRegion(e.p, ref(s), C.jsize(n), (*C.jchar)(unsafe.Pointer(&buf[0])))
	return buf
}

func (e *jniEnv) NewStringUTF(b []byte) bridge.Ref {
	cs, free := cstring(string(b))
	defer free()
	return goRef(C.gojni_NewStringUTF(e.p, cs))
}

func (e *jniEnv) GetStringUTFLength(s bridge.Ref) int32 {
	return int32(C.gojni_GetStringUTFLength(e.p, ref(s)))
}

func (e *jniEnv) GetStringUTFChars(s bridge.Ref) []byte {
	n := e.GetStringUTFLength(s)
	if n == 0 {
		return nil
	}
	// GetStringUTFRegion takes a length in UTF-16 units and writes a
	// trailing NUL.
	buf := make([]byte, n+1)
	C.gojni_GetStringUTFRegion(e.p, ref(s), C.jsize(e.GetStringLength(s)), (*C.char)(unsafe.Pointer(&buf[0])))
	return buf[:n]
}

func (e *jniEnv) GetArrayLength(arr bridge.Ref) int32 {
	return int32(C.gojni_GetArrayLength(e.p, ref(arr)))
}

func (e *jniEnv) NewObjectArray(length int32, elem, init bridge.Ref) bridge.Ref {
	return goRef(C.gojni_NewObjectArray(e.p, C.jsize(length), ref(elem), ref(init)))
}

func (e *jniEnv) GetObjectArrayElement(arr bridge.Ref, index int32) bridge.Ref {
	return goRef(C.gojni_GetObjectArrayElement(e.p, ref(arr), C.jsize(index)))
}

func (e *jniEnv) SetObjectArrayElement(arr bridge.Ref, index int32, v bridge.Ref) {
	C.gojni_SetObjectArrayElement(e.p, ref(arr), C.jsize(index), ref(v))
}

func (e *jniEnv) GetJavaVM() (bridge.JavaVM, error) {
	if e.vm != nil {
		return e.vm, nil
	}
	var vm *C.JavaVM
	if rc := C.gojni_GetJavaVM(e.p, &vm); rc != C.JNI_OK {
		return nil, bridge.Status(rc)
	}
	e.vm = &javaVM{p: vm}
	return e.vm, nil
}
