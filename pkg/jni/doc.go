// Package jni wraps the Java Native Interface with typed Go calls.
//
// A process either starts its own VM with NewVM or, when its entry point is
// a native method called from Java, registers the calling environment with
// Init. After that any goroutine may use the package: each operation pins
// itself to its OS thread, attaching the thread on first use.
//
//	vm, err := jni.NewVM(jni.WithClassPath("classes"))
//	if err != nil {
//		return err
//	}
//	defer vm.Close()
//
//	integer, err := jni.FindClass("java/lang/Integer")
//	if err != nil {
//		return err
//	}
//	defer integer.Release()
//	size, err := jni.GetStatic[int32](integer, "SIZE")
//
// A native method passes the JNIEnv* it receives through cjni.WrapEnv:
//
//	env, err := cjni.WrapEnv(unsafe.Pointer(jenv))
//	if err != nil {
//		return err
//	}
//	if err := jni.Init(env); err != nil {
//		return err
//	}
//
// Object and Class hold global references that must be released with
// Release. Java exceptions thrown by a call are cleared and returned as
// *InvocationError.
package jni
