package bridge

// Env is the per-thread native interface (JNIEnv). An Env must only be used
// from the OS thread it belongs to. Functions that can raise a managed
// exception leave it pending; callers check ExceptionCheck before issuing
// any other call.
type Env interface {
	GetVersion() int32

	DefineClass(name string, loader Ref, buf []byte) Ref
	FindClass(name string) Ref
	GetSuperclass(cls Ref) Ref
	IsAssignableFrom(sub, sup Ref) bool

	Throw(obj Ref) Status
	ThrowNew(cls Ref, msg string) Status
	ExceptionOccurred() Ref
	ExceptionDescribe()
	ExceptionClear()
	ExceptionCheck() bool

	NewGlobalRef(ref Ref) Ref
	DeleteGlobalRef(ref Ref)
	DeleteLocalRef(ref Ref)
	IsSameObject(a, b Ref) bool
	NewLocalRef(ref Ref) Ref

	NewObjectA(cls Ref, ctor MethodID, args []Value) Ref
	GetObjectClass(obj Ref) Ref
	IsInstanceOf(obj, cls Ref) bool

	GetMethodID(cls Ref, name, sig string) MethodID
	GetStaticMethodID(cls Ref, name, sig string) MethodID
	GetFieldID(cls Ref, name, sig string) FieldID
	GetStaticFieldID(cls Ref, name, sig string) FieldID

	CallVoidMethodA(obj Ref, m MethodID, args []Value)
	CallObjectMethodA(obj Ref, m MethodID, args []Value) Ref
	CallBooleanMethodA(obj Ref, m MethodID, args []Value) bool
	CallByteMethodA(obj Ref, m MethodID, args []Value) int8
	CallCharMethodA(obj Ref, m MethodID, args []Value) uint16
	CallShortMethodA(obj Ref, m MethodID, args []Value) int16
	CallIntMethodA(obj Ref, m MethodID, args []Value) int32
	CallLongMethodA(obj Ref, m MethodID, args []Value) int64
	CallFloatMethodA(obj Ref, m MethodID, args []Value) float32
	CallDoubleMethodA(obj Ref, m MethodID, args []Value) float64

	CallNonvirtualVoidMethodA(obj, cls Ref, m MethodID, args []Value)
	CallNonvirtualObjectMethodA(obj, cls Ref, m MethodID, args []Value) Ref
	CallNonvirtualBooleanMethodA(obj, cls Ref, m MethodID, args []Value) bool
	CallNonvirtualByteMethodA(obj, cls Ref, m MethodID, args []Value) int8
	CallNonvirtualCharMethodA(obj, cls Ref, m MethodID, args []Value) uint16
	CallNonvirtualShortMethodA(obj, cls Ref, m MethodID, args []Value) int16
	CallNonvirtualIntMethodA(obj, cls Ref, m MethodID, args []Value) int32
	CallNonvirtualLongMethodA(obj, cls Ref, m MethodID, args []Value) int64
	CallNonvirtualFloatMethodA(obj, cls Ref, m MethodID, args []Value) float32
	CallNonvirtualDoubleMethodA(obj, cls Ref, m MethodID, args []Value) float64

	CallStaticVoidMethodA(cls Ref, m MethodID, args []Value)
	CallStaticObjectMethodA(cls Ref, m MethodID, args []Value) Ref
	CallStaticBooleanMethodA(cls Ref, m MethodID, args []Value) bool
	CallStaticByteMethodA(cls Ref, m MethodID, args []Value) int8
	CallStaticCharMethodA(cls Ref, m MethodID, args []Value) uint16
	CallStaticShortMethodA(cls Ref, m MethodID, args []Value) int16
	CallStaticIntMethodA(cls Ref, m MethodID, args []Value) int32
	CallStaticLongMethodA(cls Ref, m MethodID, args []Value) int64
	CallStaticFloatMethodA(cls Ref, m MethodID, args []Value) float32
	CallStaticDoubleMethodA(cls Ref, m MethodID, args []Value) float64

	GetObjectField(obj Ref, f FieldID) Ref
	GetBooleanField(obj Ref, f FieldID) bool
	GetByteField(obj Ref, f FieldID) int8
	GetCharField(obj Ref, f FieldID) uint16
	GetShortField(obj Ref, f FieldID) int16
	GetIntField(obj Ref, f FieldID) int32
	GetLongField(obj Ref, f FieldID) int64
	GetFloatField(obj Ref, f FieldID) float32
	GetDoubleField(obj Ref, f FieldID) float64
	SetObjectField(obj Ref, f FieldID, v Ref)
	SetBooleanField(obj Ref, f FieldID, v bool)
	SetByteField(obj Ref, f FieldID, v int8)
	SetCharField(obj Ref, f FieldID, v uint16)
	SetShortField(obj Ref, f FieldID, v int16)
	SetIntField(obj Ref, f FieldID, v int32)
	SetLongField(obj Ref, f FieldID, v int64)
	SetFloatField(obj Ref, f FieldID, v float32)
	SetDoubleField(obj Ref, f FieldID, v float64)

	GetStaticObjectField(cls Ref, f FieldID) Ref
	GetStaticBooleanField(cls Ref, f FieldID) bool
	GetStaticByteField(cls Ref, f FieldID) int8
	GetStaticCharField(cls Ref, f FieldID) uint16
	GetStaticShortField(cls Ref, f FieldID) int16
	GetStaticIntField(cls Ref, f FieldID) int32
	GetStaticLongField(cls Ref, f FieldID) int64
	GetStaticFloatField(cls Ref, f FieldID) float32
	GetStaticDoubleField(cls Ref, f FieldID) float64
	SetStaticObjectField(cls Ref, f FieldID, v Ref)
	SetStaticBooleanField(cls Ref, f FieldID, v bool)
	SetStaticByteField(cls Ref, f FieldID, v int8)
	SetStaticCharField(cls Ref, f FieldID, v uint16)
	SetStaticShortField(cls Ref, f FieldID, v int16)
	SetStaticIntField(cls Ref, f FieldID, v int32)
	SetStaticLongField(cls Ref, f FieldID, v int64)
	SetStaticFloatField(cls Ref, f FieldID, v float32)
	SetStaticDoubleField(cls Ref, f FieldID, v float64)

	// NewString builds a java.lang.String from UTF-16 code units.
	NewString(chars []uint16) Ref
	GetStringLength(s Ref) int32
	// GetStringChars returns a copy of the string's UTF-16 code units.
	GetStringChars(s Ref) []uint16
	// NewStringUTF builds a string from modified UTF-8 bytes.
	NewStringUTF(b []byte) Ref
	GetStringUTFLength(s Ref) int32
	GetStringUTFChars(s Ref) []byte

	GetArrayLength(arr Ref) int32
	NewObjectArray(length int32, elem Ref, init Ref) Ref
	GetObjectArrayElement(arr Ref, index int32) Ref
	SetObjectArrayElement(arr Ref, index int32, v Ref)

	GetJavaVM() (JavaVM, error)
}
