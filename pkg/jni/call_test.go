package jni

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerRoundTrip(t *testing.T) {
	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	defer integer.Release()

	size, err := GetStatic[int32](integer, "SIZE")
	require.NoError(t, err)
	assert.Equal(t, int32(32), size)

	i, err := integer.NewInstance("1000")
	require.NoError(t, err)
	defer i.Release()

	s, err := Call[string](i, "toString")
	require.NoError(t, err)
	assert.Equal(t, "1000", s)

	v, err := Call[int32](i, "intValue")
	require.NoError(t, err)
	assert.Equal(t, int32(1000), v)

	l, err := Call[int64](i, "longValue")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), l)

	d, err := Call[float64](i, "doubleValue")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, d)
}

func TestCallStatic(t *testing.T) {
	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	defer integer.Release()

	sum, err := CallStatic[int32](integer, "sum", 40, int32(2))
	require.NoError(t, err)
	assert.Equal(t, int32(42), sum)

	n, err := CallStatic[int32](base, "measure", "abcd", 3)
	require.NoError(t, err)
	assert.Equal(t, int32(7), n)

	n, err = CallStatic[int32](base, "measure(Ljava/lang/String;I)I", ModifiedUTF8("ab"), int32(1))
	require.NoError(t, err)
	assert.Equal(t, int32(3), n)

	m, err := base.StaticMethodByToken("measure(Ljava/lang/String;I)I")
	require.NoError(t, err)
	n, err = CallStaticMethod[int32](base, m, WideString("héllo"), int32(0))
	require.NoError(t, err)
	assert.Equal(t, int32(5), n)

	hex, err := CallStatic[string](integer, "toHexString", 255)
	require.NoError(t, err)
	assert.Equal(t, "ff", hex)
}

func TestVirtualAndExactDispatch(t *testing.T) {
	d, err := derived.NewInstance()
	require.NoError(t, err)
	defer d.Release()

	name, err := Call[string](d, "name")
	require.NoError(t, err)
	assert.Equal(t, "derived", name)

	name, err = CallExact[string](base, d, "name")
	require.NoError(t, err)
	assert.Equal(t, "base", name)

	m, err := base.Method("name", "()Ljava/lang/String;")
	require.NoError(t, err)
	name, err = CallMethod[string](d, m)
	require.NoError(t, err)
	assert.Equal(t, "derived", name)
	name, err = CallExactMethod[string](base, d, m)
	require.NoError(t, err)
	assert.Equal(t, "base", name)

	ok, err := d.IsInstanceOf(base)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResultTypes(t *testing.T) {
	str, err := FindClass("java/lang/String")
	require.NoError(t, err)
	defer str.Release()

	s, err := str.NewInstance("abc")
	require.NoError(t, err)
	defer s.Release()

	empty, err := Call[bool](s, "isEmpty")
	require.NoError(t, err)
	assert.False(t, empty)

	c, err := Call[Char](s, "charAt", 1)
	require.NoError(t, err)
	assert.Equal(t, Char('b'), c)

	system, err := FindClass("java/lang/System")
	require.NoError(t, err)
	defer system.Release()
	outID, err := system.StaticField("out", "Ljava/io/PrintStream;")
	require.NoError(t, err)
	out, err := GetStaticField[*Object](system, outID)
	require.NoError(t, err)
	defer out.Release()
	_, err = Call[Void](out, "println", s)
	require.NoError(t, err)
	_, err = Call[Void](out, "println(Ljava/lang/Object;)V", s)
	require.NoError(t, err)

	cls, err := Call[*Class](s, "getClass")
	require.NoError(t, err)
	defer cls.Release()
	name, err := cls.Name()
	require.NoError(t, err)
	assert.Equal(t, "java.lang.String", name)

	upper, err := Call[*Object](s, "toUpperCase()Ljava/lang/String;")
	require.NoError(t, err)
	defer upper.Release()
	sig, err := Signature(upper)
	require.NoError(t, err)
	assert.Equal(t, stringSig, sig)
}

func TestConstructorByID(t *testing.T) {
	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	defer integer.Release()

	ctor, err := integer.Constructor("(I)V")
	require.NoError(t, err)
	i, err := integer.NewInstanceWith(ctor, int32(-7))
	require.NoError(t, err)
	defer i.Release()

	s, err := Call[string](i, "toString")
	require.NoError(t, err)
	assert.Equal(t, "-7", s)

	_, err = integer.Constructor("(J)V")
	assert.ErrorIs(t, err, ErrNameResolution)
}

func TestCallResolutionErrors(t *testing.T) {
	d, err := derived.NewInstance()
	require.NoError(t, err)
	defer d.Release()

	_, err = Call[int32](d, "missing")
	var nre *NameResolutionError
	require.True(t, errors.As(err, &nre))
	assert.Equal(t, "method", nre.Kind)
	assert.Equal(t, "missing", nre.Name)
	assert.Equal(t, "()I", nre.Signature)
	assert.False(t, errors.Is(err, ErrInvocation))

	_, err = CallStatic[int32](base, "measure", 1, 2)
	assert.ErrorIs(t, err, ErrNameResolution)

	_, err = base.MethodByToken("name")
	assert.ErrorIs(t, err, ErrNameResolution)

	_, err = Call[int32](d, "name", struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	// the thread stays usable after a failed lookup
	name, err := Call[string](d, "name")
	require.NoError(t, err)
	assert.Equal(t, "derived", name)
}

func TestArrayArguments(t *testing.T) {
	str, err := FindClass("java/lang/String")
	require.NoError(t, err)
	defer str.Release()

	sig, err := MethodSignature[Void]([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "([Ljava/lang/String;)V", sig)

	s, err := str.NewInstance("x")
	require.NoError(t, err)
	defer s.Release()
	sig, err = MethodSignature[bool]([]*Object{s, nil})
	require.NoError(t, err)
	assert.Equal(t, "([Ljava/lang/Object;)Z", sig)
}

func TestConcurrentCalls(t *testing.T) {
	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	defer integer.Release()
	shared, err := integer.NewInstance(int32(5))
	require.NoError(t, err)
	defer shared.Release()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				sum, err := CallStatic[int32](integer, "sum", g, i)
				if err != nil {
					errs <- err
					return
				}
				if sum != int32(g+i) {
					errs <- errors.New("wrong sum")
					return
				}
				if _, err := Call[string](shared, "toString"); err != nil {
					errs <- err
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
