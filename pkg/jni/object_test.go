package jni

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullObject(t *testing.T) {
	var null *Object
	assert.True(t, null.IsNull())
	assert.True(t, (&Object{}).IsNull())
	assert.True(t, null.Equal(&Object{}))
	assert.Zero(t, null.Handle())
	assert.NoError(t, null.Release())

	_, err := Call[string](null, "toString")
	var ie *InvocationError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "java.lang.NullPointerException", ie.ClassName)

	_, err = null.Class()
	assert.ErrorIs(t, err, ErrInvocation)

	// null is an instance of every class
	ok, err := null.IsInstanceOf(base)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCopyAndMove(t *testing.T) {
	o, err := base.NewInstance()
	require.NoError(t, err)
	defer o.Release()
	require.NoError(t, Set[int32](o, "sides", 3))

	c, err := o.Copy()
	require.NoError(t, err)
	assert.NotEqual(t, o.Handle(), c.Handle())
	assert.True(t, o.Equal(c))
	require.NoError(t, c.Release())
	assert.True(t, c.IsNull())

	// the original survives releasing its copy
	sides, err := Get[int32](o, "sides")
	require.NoError(t, err)
	assert.Equal(t, int32(3), sides)

	h := o.Handle()
	m := o.Move()
	defer m.Release()
	assert.True(t, o.IsNull())
	assert.Equal(t, h, m.Handle())
	sides, err = Get[int32](m, "sides")
	require.NoError(t, err)
	assert.Equal(t, int32(3), sides)

	other, err := base.NewInstance()
	require.NoError(t, err)
	defer other.Release()
	assert.False(t, m.Equal(other))
}

func TestObjectClass(t *testing.T) {
	d, err := derived.NewInstance()
	require.NoError(t, err)
	defer d.Release()

	c, err := d.Class()
	require.NoError(t, err)
	assert.True(t, c.Equal(derived))
	name, err := c.Name()
	require.NoError(t, err)
	assert.Equal(t, "demo.Derived", name)

	parent, err := derived.Parent()
	require.NoError(t, err)
	defer parent.Release()
	assert.True(t, parent.Equal(base))

	object, err := FindClass("java/lang/Object")
	require.NoError(t, err)
	defer object.Release()
	root, err := object.Parent()
	require.NoError(t, err)
	assert.True(t, root.IsNull())

	copied, err := base.Copy()
	require.NoError(t, err)
	assert.True(t, copied.Equal(base))
	require.NoError(t, copied.Release())
	assert.False(t, base.IsNull())
}

func TestWrapTemporary(t *testing.T) {
	th, err := LockThread()
	require.NoError(t, err)
	defer th.Unlock()
	env := th.Env()

	local := env.FindClass("java/lang/Integer")
	require.NotZero(t, local)

	borrowed, err := WrapClass(local, Temporary)
	require.NoError(t, err)
	assert.Equal(t, local, borrowed.Handle())
	name, err := borrowed.Name()
	require.NoError(t, err)
	assert.Equal(t, "java.lang.Integer", name)
	require.NoError(t, borrowed.Release())

	owned, err := WrapClass(local, DeleteLocalInput)
	require.NoError(t, err)
	defer owned.Release()
	assert.NotEqual(t, local, owned.Handle())
	name, err = owned.Name()
	require.NoError(t, err)
	assert.Equal(t, "java.lang.Integer", name)
}

func TestNoReferenceLeaks(t *testing.T) {
	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	defer integer.Release()

	locals, globals := rt.LocalRefs(), rt.GlobalRefs()
	for i := 0; i < 10; i++ {
		o, err := integer.NewInstance("1000")
		require.NoError(t, err)
		_, err = Call[string](o, "toString")
		require.NoError(t, err)
		_, err = Signature(o)
		require.NoError(t, err)
		_, err = CallStatic[int32](integer, "parseInt", "x")
		require.Error(t, err)
		_, err = MethodSignature[Void]([]string{"a", "b"}, []*Object{o})
		require.NoError(t, err)
		require.NoError(t, o.Release())
	}
	assert.Equal(t, locals, rt.LocalRefs(), "local references")
	assert.Equal(t, globals, rt.GlobalRefs(), "global references")
}

func TestDefineClassErrors(t *testing.T) {
	var ie *InvocationError
	_, err := DefineClass("demo/Base", nil, baseClass())
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "java.lang.LinkageError", ie.ClassName)

	_, err = DefineClass("demo/Broken", nil, []byte{0xCA, 0xFE})
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "java.lang.ClassFormatError", ie.ClassName)

	_, err = FindClass("demo/Missing")
	var nre *NameResolutionError
	require.ErrorAs(t, err, &nre)
	assert.Equal(t, "class not found: demo/Missing", nre.Error())
}

func TestReleaseWaitsForCalls(t *testing.T) {
	before := len(rt.Violations())
	for round := 0; round < 50; round++ {
		o, err := base.NewInstance()
		require.NoError(t, err)

		var wg sync.WaitGroup
		start := make(chan struct{})
		for g := 0; g < 4; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				for {
					name, err := Call[string](o, "name")
					if err != nil {
						assert.ErrorIs(t, err, ErrInvocation)
						return
					}
					assert.Equal(t, "base", name)
					if _, err := Get[int32](o, "sides"); err != nil {
						assert.ErrorIs(t, err, ErrInvocation)
						return
					}
				}
			}()
		}
		close(start)
		require.NoError(t, o.Release())
		wg.Wait()
	}
	assert.Len(t, rt.Violations(), before)
}

func TestInstanceOfNullClass(t *testing.T) {
	o, err := base.NewInstance()
	require.NoError(t, err)
	defer o.Release()

	_, err = o.IsInstanceOf(nil)
	assert.ErrorIs(t, err, ErrInvocation)
	_, err = o.IsInstanceOf(&Class{})
	assert.ErrorIs(t, err, ErrInvocation)

	ok, err := o.IsInstanceOf(base)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = o.IsInstanceOf(derived)
	require.NoError(t, err)
	assert.False(t, ok)
}
