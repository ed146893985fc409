package hostvm

import "github.com/daimatz/gojni/pkg/bridge"

func (e *env) CallVoidMethodA(obj bridge.Ref, m bridge.MethodID, args []bridge.Value) {
	e.call("CallVoidMethodA", virtualCall, obj, 0, m, args)
}

func (e *env) CallObjectMethodA(obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Ref {
	return e.local(e.call("CallObjectMethodA", virtualCall, obj, 0, m, args).Ref)
}

func (e *env) CallBooleanMethodA(obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bool {
	return e.call("CallBooleanMethodA", virtualCall, obj, 0, m, args).Int != 0
}

func (e *env) CallByteMethodA(obj bridge.Ref, m bridge.MethodID, args []bridge.Value) int8 {
	return int8(e.call("CallByteMethodA", virtualCall, obj, 0, m, args).Int)
}

func (e *env) CallCharMethodA(obj bridge.Ref, m bridge.MethodID, args []bridge.Value) uint16 {
	return uint16(e.call("CallCharMethodA", virtualCall, obj, 0, m, args).Int)
}

func (e *env) CallShortMethodA(obj bridge.Ref, m bridge.MethodID, args []bridge.Value) int16 {
	return int16(e.call("CallShortMethodA", virtualCall, obj, 0, m, args).Int)
}

func (e *env) CallIntMethodA(obj bridge.Ref, m bridge.MethodID, args []bridge.Value) int32 {
	return e.call("CallIntMethodA", virtualCall, obj, 0, m, args).Int
}

func (e *env) CallLongMethodA(obj bridge.Ref, m bridge.MethodID, args []bridge.Value) int64 {
	return e.call("CallLongMethodA", virtualCall, obj, 0, m, args).Long
}

func (e *env) CallFloatMethodA(obj bridge.Ref, m bridge.MethodID, args []bridge.Value) float32 {
	return e.call("CallFloatMethodA", virtualCall, obj, 0, m, args).Float
}

func (e *env) CallDoubleMethodA(obj bridge.Ref, m bridge.MethodID, args []bridge.Value) float64 {
	return e.call("CallDoubleMethodA", virtualCall, obj, 0, m, args).Double
}

func (e *env) CallNonvirtualVoidMethodA(obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) {
	e.call("CallNonvirtualVoidMethodA", nonvirtualCall, obj, cls, m, args)
}

func (e *env) CallNonvirtualObjectMethodA(obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Ref {
	return e.local(e.call("CallNonvirtualObjectMethodA", nonvirtualCall, obj, cls, m, args).Ref)
}

func (e *env) CallNonvirtualBooleanMethodA(obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bool {
	return e.call("CallNonvirtualBooleanMethodA", nonvirtualCall, obj, cls, m, args).Int != 0
}

func (e *env) CallNonvirtualByteMethodA(obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) int8 {
	return int8(e.call("CallNonvirtualByteMethodA", nonvirtualCall, obj, cls, m, args).Int)
}

func (e *env) CallNonvirtualCharMethodA(obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) uint16 {
	return uint16(e.call("CallNonvirtualCharMethodA", nonvirtualCall, obj, cls, m, args).Int)
}

func (e *env) CallNonvirtualShortMethodA(obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) int16 {
	return int16(e.call("CallNonvirtualShortMethodA", nonvirtualCall, obj, cls, m, args).Int)
}

func (e *env) CallNonvirtualIntMethodA(obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) int32 {
	return e.call("CallNonvirtualIntMethodA", nonvirtualCall, obj, cls, m, args).Int
}

func (e *env) CallNonvirtualLongMethodA(obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) int64 {
	return e.call("CallNonvirtualLongMethodA", nonvirtualCall, obj, cls, m, args).Long
}

func (e *env) CallNonvirtualFloatMethodA(obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) float32 {
	return e.call("CallNonvirtualFloatMethodA", nonvirtualCall, obj, cls, m, args).Float
}

func (e *env) CallNonvirtualDoubleMethodA(obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) float64 {
	return e.call("CallNonvirtualDoubleMethodA", nonvirtualCall, obj, cls, m, args).Double
}

func (e *env) CallStaticVoidMethodA(cls bridge.Ref, m bridge.MethodID, args []bridge.Value) {
	e.call("CallStaticVoidMethodA", staticCall, 0, cls, m, args)
}

func (e *env) CallStaticObjectMethodA(cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Ref {
	return e.local(e.call("CallStaticObjectMethodA", staticCall, 0, cls, m, args).Ref)
}

func (e *env) CallStaticBooleanMethodA(cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bool {
	return e.call("CallStaticBooleanMethodA", staticCall, 0, cls, m, args).Int != 0
}

func (e *env) CallStaticByteMethodA(cls bridge.Ref, m bridge.MethodID, args []bridge.Value) int8 {
	return int8(e.call("CallStaticByteMethodA", staticCall, 0, cls, m, args).Int)
}

func (e *env) CallStaticCharMethodA(cls bridge.Ref, m bridge.MethodID, args []bridge.Value) uint16 {
	return uint16(e.call("CallStaticCharMethodA", staticCall, 0, cls, m, args).Int)
}

func (e *env) CallStaticShortMethodA(cls bridge.Ref, m bridge.MethodID, args []bridge.Value) int16 {
	return int16(e.call("CallStaticShortMethodA", staticCall, 0, cls, m, args).Int)
}

func (e *env) CallStaticIntMethodA(cls bridge.Ref, m bridge.MethodID, args []bridge.Value) int32 {
	return e.call("CallStaticIntMethodA", staticCall, 0, cls, m, args).Int
}

func (e *env) CallStaticLongMethodA(cls bridge.Ref, m bridge.MethodID, args []bridge.Value) int64 {
	return e.call("CallStaticLongMethodA", staticCall, 0, cls, m, args).Long
}

func (e *env) CallStaticFloatMethodA(cls bridge.Ref, m bridge.MethodID, args []bridge.Value) float32 {
	return e.call("CallStaticFloatMethodA", staticCall, 0, cls, m, args).Float
}

func (e *env) CallStaticDoubleMethodA(cls bridge.Ref, m bridge.MethodID, args []bridge.Value) float64 {
	return e.call("CallStaticDoubleMethodA", staticCall, 0, cls, m, args).Double
}

func (e *env) GetObjectField(obj bridge.Ref, f bridge.FieldID) bridge.Ref {
	return e.local(e.getField("GetObjectField", obj, f).Ref)
}

func (e *env) GetBooleanField(obj bridge.Ref, f bridge.FieldID) bool {
	return e.getField("GetBooleanField", obj, f).Int != 0
}

func (e *env) GetByteField(obj bridge.Ref, f bridge.FieldID) int8 {
	return int8(e.getField("GetByteField", obj, f).Int)
}

func (e *env) GetCharField(obj bridge.Ref, f bridge.FieldID) uint16 {
	return uint16(e.getField("GetCharField", obj, f).Int)
}

func (e *env) GetShortField(obj bridge.Ref, f bridge.FieldID) int16 {
	return int16(e.getField("GetShortField", obj, f).Int)
}

func (e *env) GetIntField(obj bridge.Ref, f bridge.FieldID) int32 {
	return e.getField("GetIntField", obj, f).Int
}

func (e *env) GetLongField(obj bridge.Ref, f bridge.FieldID) int64 {
	return e.getField("GetLongField", obj, f).Long
}

func (e *env) GetFloatField(obj bridge.Ref, f bridge.FieldID) float32 {
	return e.getField("GetFloatField", obj, f).Float
}

func (e *env) GetDoubleField(obj bridge.Ref, f bridge.FieldID) float64 {
	return e.getField("GetDoubleField", obj, f).Double
}

func (e *env) SetObjectField(obj bridge.Ref, f bridge.FieldID, v bridge.Ref) {
	e.setField("SetObjectField", obj, f, RefValue(e.deref("SetObjectField", v)))
}

func (e *env) SetBooleanField(obj bridge.Ref, f bridge.FieldID, v bool) {
	e.setField("SetBooleanField", obj, f, BoolValue(v))
}

func (e *env) SetByteField(obj bridge.Ref, f bridge.FieldID, v int8) {
	e.setField("SetByteField", obj, f, IntValue(int32(v)))
}

func (e *env) SetCharField(obj bridge.Ref, f bridge.FieldID, v uint16) {
	e.setField("SetCharField", obj, f, IntValue(int32(v)))
}

func (e *env) SetShortField(obj bridge.Ref, f bridge.FieldID, v int16) {
	e.setField("SetShortField", obj, f, IntValue(int32(v)))
}

func (e *env) SetIntField(obj bridge.Ref, f bridge.FieldID, v int32) {
	e.setField("SetIntField", obj, f, IntValue(v))
}

func (e *env) SetLongField(obj bridge.Ref, f bridge.FieldID, v int64) {
	e.setField("SetLongField", obj, f, LongValue(v))
}

func (e *env) SetFloatField(obj bridge.Ref, f bridge.FieldID, v float32) {
	e.setField("SetFloatField", obj, f, FloatValue(v))
}

func (e *env) SetDoubleField(obj bridge.Ref, f bridge.FieldID, v float64) {
	e.setField("SetDoubleField", obj, f, DoubleValue(v))
}

func (e *env) GetStaticObjectField(cls bridge.Ref, f bridge.FieldID) bridge.Ref {
	return e.local(e.getStatic("GetStaticObjectField", cls, f).Ref)
}

func (e *env) GetStaticBooleanField(cls bridge.Ref, f bridge.FieldID) bool {
	return e.getStatic("GetStaticBooleanField", cls, f).Int != 0
}

func (e *env) GetStaticByteField(cls bridge.Ref, f bridge.FieldID) int8 {
	return int8(e.getStatic("GetStaticByteField", cls, f).Int)
}

func (e *env) GetStaticCharField(cls bridge.Ref, f bridge.FieldID) uint16 {
	return uint16(e.getStatic("GetStaticCharField", cls, f).Int)
}

func (e *env) GetStaticShortField(cls bridge.Ref, f bridge.FieldID) int16 {
	return int16(e.getStatic("GetStaticShortField", cls, f).Int)
}

func (e *env) GetStaticIntField(cls bridge.Ref, f bridge.FieldID) int32 {
	return e.getStatic("GetStaticIntField", cls, f).Int
}

func (e *env) GetStaticLongField(cls bridge.Ref, f bridge.FieldID) int64 {
	return e.getStatic("GetStaticLongField", cls, f).Long
}

func (e *env) GetStaticFloatField(cls bridge.Ref, f bridge.FieldID) float32 {
	return e.getStatic("GetStaticFloatField", cls, f).Float
}

func (e *env) GetStaticDoubleField(cls bridge.Ref, f bridge.FieldID) float64 {
	return e.getStatic("GetStaticDoubleField", cls, f).Double
}

func (e *env) SetStaticObjectField(cls bridge.Ref, f bridge.FieldID, v bridge.Ref) {
	e.setStatic("SetStaticObjectField", cls, f, RefValue(e.deref("SetStaticObjectField", v)))
}

func (e *env) SetStaticBooleanField(cls bridge.Ref, f bridge.FieldID, v bool) {
	e.setStatic("SetStaticBooleanField", cls, f, BoolValue(v))
}

func (e *env) SetStaticByteField(cls bridge.Ref, f bridge.FieldID, v int8) {
	e.setStatic("SetStaticByteField", cls, f, IntValue(int32(v)))
}

func (e *env) SetStaticCharField(cls bridge.Ref, f bridge.FieldID, v uint16) {
	e.setStatic("SetStaticCharField", cls, f, IntValue(int32(v)))
}

func (e *env) SetStaticShortField(cls bridge.Ref, f bridge.FieldID, v int16) {
	e.setStatic("SetStaticShortField", cls, f, IntValue(int32(v)))
}

func (e *env) SetStaticIntField(cls bridge.Ref, f bridge.FieldID, v int32) {
	e.setStatic("SetStaticIntField", cls, f, IntValue(v))
}

func (e *env) SetStaticLongField(cls bridge.Ref, f bridge.FieldID, v int64) {
	e.setStatic("SetStaticLongField", cls, f, LongValue(v))
}

func (e *env) SetStaticFloatField(cls bridge.Ref, f bridge.FieldID, v float32) {
	e.setStatic("SetStaticFloatField", cls, f, FloatValue(v))
}

func (e *env) SetStaticDoubleField(cls bridge.Ref, f bridge.FieldID, v float64) {
	e.setStatic("SetStaticDoubleField", cls, f, DoubleValue(v))
}
