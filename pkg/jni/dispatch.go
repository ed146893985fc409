package jni

import "github.com/daimatz/gojni/pkg/bridge"

// The bridge has one entry point per value kind for every call and field
// family. These tables select among them by bridge.Kind.

type (
	callFunc      func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value
	exactCallFunc func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value
	getFunc       func(env bridge.Env, obj bridge.Ref, f bridge.FieldID) bridge.Value
	setFunc       func(env bridge.Env, obj bridge.Ref, f bridge.FieldID, v bridge.Value)
)

var virtualCalls = [bridge.NumKinds]callFunc{
	bridge.KindVoid: func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		env.CallVoidMethodA(obj, m, args)
		return 0
	},
	bridge.KindBoolean: func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.BoolValue(env.CallBooleanMethodA(obj, m, args))
	},
	bridge.KindByte: func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.ByteValue(env.CallByteMethodA(obj, m, args))
	},
	bridge.KindChar: func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.CharValue(env.CallCharMethodA(obj, m, args))
	},
	bridge.KindShort: func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.ShortValue(env.CallShortMethodA(obj, m, args))
	},
	bridge.KindInt: func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.IntValue(env.CallIntMethodA(obj, m, args))
	},
	bridge.KindLong: func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.LongValue(env.CallLongMethodA(obj, m, args))
	},
	bridge.KindFloat: func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.FloatValue(env.CallFloatMethodA(obj, m, args))
	},
	bridge.KindDouble: func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.DoubleValue(env.CallDoubleMethodA(obj, m, args))
	},
	bridge.KindObject: func(env bridge.Env, obj bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.RefValue(env.CallObjectMethodA(obj, m, args))
	},
}

var staticCalls = [bridge.NumKinds]callFunc{
	bridge.KindVoid: func(env bridge.Env, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		env.CallStaticVoidMethodA(cls, m, args)
		return 0
	},
	bridge.KindBoolean: func(env bridge.Env, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.BoolValue(env.CallStaticBooleanMethodA(cls, m, args))
	},
	bridge.KindByte: func(env bridge.Env, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.ByteValue(env.CallStaticByteMethodA(cls, m, args))
	},
	bridge.KindChar: func(env bridge.Env, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.CharValue(env.CallStaticCharMethodA(cls, m, args))
	},
	bridge.KindShort: func(env bridge.Env, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.ShortValue(env.CallStaticShortMethodA(cls, m, args))
	},
	bridge.KindInt: func(env bridge.Env, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.IntValue(env.CallStaticIntMethodA(cls, m, args))
	},
	bridge.KindLong: func(env bridge.Env, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.LongValue(env.CallStaticLongMethodA(cls, m, args))
	},
	bridge.KindFloat: func(env bridge.Env, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.FloatValue(env.CallStaticFloatMethodA(cls, m, args))
	},
	bridge.KindDouble: func(env bridge.Env, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.DoubleValue(env.CallStaticDoubleMethodA(cls, m, args))
	},
	bridge.KindObject: func(env bridge.Env, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.RefValue(env.CallStaticObjectMethodA(cls, m, args))
	},
}

var exactCalls = [bridge.NumKinds]exactCallFunc{
	bridge.KindVoid: func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		env.CallNonvirtualVoidMethodA(obj, cls, m, args)
		return 0
	},
	bridge.KindBoolean: func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.BoolValue(env.CallNonvirtualBooleanMethodA(obj, cls, m, args))
	},
	bridge.KindByte: func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.ByteValue(env.CallNonvirtualByteMethodA(obj, cls, m, args))
	},
	bridge.KindChar: func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.CharValue(env.CallNonvirtualCharMethodA(obj, cls, m, args))
	},
	bridge.KindShort: func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.ShortValue(env.CallNonvirtualShortMethodA(obj, cls, m, args))
	},
	bridge.KindInt: func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.IntValue(env.CallNonvirtualIntMethodA(obj, cls, m, args))
	},
	bridge.KindLong: func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.LongValue(env.CallNonvirtualLongMethodA(obj, cls, m, args))
	},
	bridge.KindFloat: func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.FloatValue(env.CallNonvirtualFloatMethodA(obj, cls, m, args))
	},
	bridge.KindDouble: func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.DoubleValue(env.CallNonvirtualDoubleMethodA(obj, cls, m, args))
	},
	bridge.KindObject: func(env bridge.Env, obj, cls bridge.Ref, m bridge.MethodID, args []bridge.Value) bridge.Value {
		return bridge.RefValue(env.CallNonvirtualObjectMethodA(obj, cls, m, args))
	},
}

var fieldGetters = [bridge.NumKinds]getFunc{
	bridge.KindBoolean: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.BoolValue(env.GetBooleanField(obj, f))
	},
	bridge.KindByte: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.ByteValue(env.GetByteField(obj, f))
	},
	bridge.KindChar: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.CharValue(env.GetCharField(obj, f))
	},
	bridge.KindShort: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.ShortValue(env.GetShortField(obj, f))
	},
	bridge.KindInt: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.IntValue(env.GetIntField(obj, f))
	},
	bridge.KindLong: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.LongValue(env.GetLongField(obj, f))
	},
	bridge.KindFloat: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.FloatValue(env.GetFloatField(obj, f))
	},
	bridge.KindDouble: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.DoubleValue(env.GetDoubleField(obj, f))
	},
	bridge.KindObject: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.RefValue(env.GetObjectField(obj, f))
	},
}

var staticGetters = [bridge.NumKinds]getFunc{
	bridge.KindBoolean: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.BoolValue(env.GetStaticBooleanField(cls, f))
	},
	bridge.KindByte: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.ByteValue(env.GetStaticByteField(cls, f))
	},
	bridge.KindChar: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.CharValue(env.GetStaticCharField(cls, f))
	},
	bridge.KindShort: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.ShortValue(env.GetStaticShortField(cls, f))
	},
	bridge.KindInt: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.IntValue(env.GetStaticIntField(cls, f))
	},
	bridge.KindLong: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.LongValue(env.GetStaticLongField(cls, f))
	},
	bridge.KindFloat: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.FloatValue(env.GetStaticFloatField(cls, f))
	},
	bridge.KindDouble: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.DoubleValue(env.GetStaticDoubleField(cls, f))
	},
	bridge.KindObject: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID) bridge.Value {
		return bridge.RefValue(env.GetStaticObjectField(cls, f))
	},
}

var fieldSetters = [bridge.NumKinds]setFunc{
	bridge.KindBoolean: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetBooleanField(obj, f, v.Bool())
	},
	bridge.KindByte: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetByteField(obj, f, v.Byte())
	},
	bridge.KindChar: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetCharField(obj, f, v.Char())
	},
	bridge.KindShort: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetShortField(obj, f, v.Short())
	},
	bridge.KindInt: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetIntField(obj, f, v.Int())
	},
	bridge.KindLong: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetLongField(obj, f, v.Long())
	},
	bridge.KindFloat: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetFloatField(obj, f, v.Float())
	},
	bridge.KindDouble: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetDoubleField(obj, f, v.Double())
	},
	bridge.KindObject: func(env bridge.Env, obj bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetObjectField(obj, f, v.Ref())
	},
}

var staticSetters = [bridge.NumKinds]setFunc{
	bridge.KindBoolean: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetStaticBooleanField(cls, f, v.Bool())
	},
	bridge.KindByte: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetStaticByteField(cls, f, v.Byte())
	},
	bridge.KindChar: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetStaticCharField(cls, f, v.Char())
	},
	bridge.KindShort: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetStaticShortField(cls, f, v.Short())
	},
	bridge.KindInt: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetStaticIntField(cls, f, v.Int())
	},
	bridge.KindLong: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetStaticLongField(cls, f, v.Long())
	},
	bridge.KindFloat: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetStaticFloatField(cls, f, v.Float())
	},
	bridge.KindDouble: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetStaticDoubleField(cls, f, v.Double())
	},
	bridge.KindObject: func(env bridge.Env, cls bridge.Ref, f bridge.FieldID, v bridge.Value) {
		env.SetStaticObjectField(cls, f, v.Ref())
	},
}
