package jni

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daimatz/gojni/pkg/classfile"
	"github.com/daimatz/gojni/pkg/hostvm"
)

// kindMember describes the members demo/Kinds declares for one value type.
type kindMember struct {
	suffix string
	desc   string
	load   byte // load of local 0
	ret    byte
	zero   byte // pushes the type's zero value
}

var kindMembers = []kindMember{
	{"z", "Z", hostvm.OpIload0, hostvm.OpIreturn, hostvm.OpIconst0},
	{"b", "B", hostvm.OpIload0, hostvm.OpIreturn, hostvm.OpIconst0},
	{"c", "C", hostvm.OpIload0, hostvm.OpIreturn, hostvm.OpIconst0},
	{"s", "S", hostvm.OpIload0, hostvm.OpIreturn, hostvm.OpIconst0},
	{"i", "I", hostvm.OpIload0, hostvm.OpIreturn, hostvm.OpIconst0},
	{"j", "J", hostvm.OpLload0, hostvm.OpLreturn, hostvm.OpLconst0},
	{"f", "F", hostvm.OpFload0, hostvm.OpFreturn, hostvm.OpFconst0},
	{"d", "D", hostvm.OpDload0, hostvm.OpDreturn, hostvm.OpDconst0},
	{"l", "Ljava/lang/String;", hostvm.OpAload0, hostvm.OpAreturn, hostvm.OpAconstNull},
}

// kindsClass builds demo/Kinds. For every kind x it has an instance field
// f_x, a static field s_x, get_x() returning f_x, static sget_x() returning
// s_x and static echo_x(x) returning its argument, plus touch()V and
// stouch()V.
func kindsClass() []byte {
	b := classfile.NewBuilder("demo/Kinds", "")
	objInit := b.Methodref("java/lang/Object", "<init>", "()V")
	b.Method(classfile.AccPublic, "<init>", "()V", 1, 1, join(
		[]byte{hostvm.OpAload0},
		u16(hostvm.OpInvokespecial, objInit),
		[]byte{hostvm.OpReturn},
	))
	for _, k := range kindMembers {
		b.Field(classfile.AccPublic, "f_"+k.suffix, k.desc)
		b.Field(classfile.AccPublic|classfile.AccStatic, "s_"+k.suffix, k.desc)
		field := b.Fieldref("demo/Kinds", "f_"+k.suffix, k.desc)
		static := b.Fieldref("demo/Kinds", "s_"+k.suffix, k.desc)
		b.Method(classfile.AccPublic, "get_"+k.suffix, "()"+k.desc, 2, 1, join(
			[]byte{hostvm.OpAload0},
			u16(hostvm.OpGetfield, field),
			[]byte{k.ret},
		))
		b.Method(classfile.AccPublic|classfile.AccStatic, "sget_"+k.suffix, "()"+k.desc, 2, 0, join(
			u16(hostvm.OpGetstatic, static),
			[]byte{k.ret},
		))
		b.Method(classfile.AccPublic|classfile.AccStatic, "echo_"+k.suffix, "("+k.desc+")"+k.desc, 2, 2,
			[]byte{k.load, k.ret})
	}
	b.Method(classfile.AccPublic, "touch", "()V", 0, 1, []byte{hostvm.OpReturn})
	b.Method(classfile.AccPublic|classfile.AccStatic, "stouch", "()V", 0, 0, []byte{hostvm.OpReturn})
	return b.Bytes()
}

// kindsChildClass builds demo/KindsChild, whose get_x() overrides return
// the zero value.
func kindsChildClass() []byte {
	b := classfile.NewBuilder("demo/KindsChild", "demo/Kinds")
	superInit := b.Methodref("demo/Kinds", "<init>", "()V")
	b.Method(classfile.AccPublic, "<init>", "()V", 1, 1, join(
		[]byte{hostvm.OpAload0},
		u16(hostvm.OpInvokespecial, superInit),
		[]byte{hostvm.OpReturn},
	))
	for _, k := range kindMembers {
		b.Method(classfile.AccPublic, "get_"+k.suffix, "()"+k.desc, 2, 1, []byte{k.zero, k.ret})
	}
	return b.Bytes()
}

// kindFixture is demo/Kinds with one instance of it and one of its subclass.
type kindFixture struct {
	class       *Class
	parent, kid *Object
}

// kindRoundTrip drives one value through every call and field family.
func kindRoundTrip[T Type](t *testing.T, fx kindFixture, suffix string, v T) {
	t.Helper()
	var zero T
	sig := SignatureOf[T]()
	c := fx.class

	require.NoError(t, Set(fx.parent, "f_"+suffix, v))
	got, err := Get[T](fx.parent, "f_"+suffix)
	require.NoError(t, err)
	assert.Equal(t, v, got, "Get")

	f, err := c.Field("f_"+suffix, sig)
	require.NoError(t, err)
	require.NoError(t, SetField(fx.kid, f, v))
	got, err = GetField[T](fx.kid, f)
	require.NoError(t, err)
	assert.Equal(t, v, got, "GetField")

	require.NoError(t, SetStatic(c, "s_"+suffix, v))
	got, err = GetStatic[T](c, "s_"+suffix)
	require.NoError(t, err)
	assert.Equal(t, v, got, "GetStatic")

	sf, err := c.StaticField("s_"+suffix, sig)
	require.NoError(t, err)
	require.NoError(t, SetStaticField(c, sf, v))
	got, err = GetStaticField[T](c, sf)
	require.NoError(t, err)
	assert.Equal(t, v, got, "GetStaticField")

	got, err = Call[T](fx.parent, "get_"+suffix)
	require.NoError(t, err)
	assert.Equal(t, v, got, "Call")

	got, err = Call[T](fx.kid, "get_"+suffix)
	require.NoError(t, err)
	assert.Equal(t, zero, got, "Call dispatches to the override")

	got, err = CallExact[T](c, fx.kid, "get_"+suffix)
	require.NoError(t, err)
	assert.Equal(t, v, got, "CallExact")

	got, err = CallStatic[T](c, "sget_"+suffix)
	require.NoError(t, err)
	assert.Equal(t, v, got, "CallStatic")

	got, err = CallStatic[T](c, "echo_"+suffix, v)
	require.NoError(t, err)
	assert.Equal(t, v, got, "CallStatic with argument")
}

func TestEveryKindRoundTrips(t *testing.T) {
	kinds, err := DefineClass("demo/Kinds", nil, kindsClass())
	require.NoError(t, err)
	defer kinds.Release()
	child, err := DefineClass("demo/KindsChild", nil, kindsChildClass())
	require.NoError(t, err)
	defer child.Release()

	parent, err := kinds.NewInstance()
	require.NoError(t, err)
	defer parent.Release()
	kid, err := child.NewInstance()
	require.NoError(t, err)
	defer kid.Release()
	fx := kindFixture{class: kinds, parent: parent, kid: kid}

	before := len(rt.Violations())

	t.Run("boolean", func(t *testing.T) { kindRoundTrip(t, fx, "z", true) })
	t.Run("byte", func(t *testing.T) { kindRoundTrip(t, fx, "b", int8(-7)) })
	t.Run("char", func(t *testing.T) { kindRoundTrip(t, fx, "c", Char('λ')) })
	t.Run("short", func(t *testing.T) { kindRoundTrip(t, fx, "s", int16(-30000)) })
	t.Run("int", func(t *testing.T) { kindRoundTrip(t, fx, "i", int32(-2000000000)) })
	t.Run("long", func(t *testing.T) { kindRoundTrip(t, fx, "j", int64(1)<<40) })
	t.Run("float", func(t *testing.T) { kindRoundTrip(t, fx, "f", float32(1.5)) })
	t.Run("double", func(t *testing.T) { kindRoundTrip(t, fx, "d", -2.25) })
	t.Run("object", func(t *testing.T) { kindRoundTrip(t, fx, "l", "kinds") })

	t.Run("void", func(t *testing.T) {
		_, err := Call[Void](kid, "touch")
		require.NoError(t, err)
		_, err = CallExact[Void](kinds, kid, "touch")
		require.NoError(t, err)
		_, err = CallStatic[Void](kinds, "stouch")
		require.NoError(t, err)
	})

	// A table entry wired to the wrong typed function is reported by the
	// runtime even when the value survives the round trip.
	assert.Len(t, rt.Violations(), before)
}
