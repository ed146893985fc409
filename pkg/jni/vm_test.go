package jni

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daimatz/gojni/pkg/bridge"
)

type missingLoader struct{}

func (missingLoader) Locate() (string, error) { return "", errors.New("no jvm here") }

func (missingLoader) Open(path string) (bridge.Library, error) {
	return nil, errors.New("cannot open " + path)
}

func TestSecondVMFails(t *testing.T) {
	_, err := NewVM(WithLoader(rt.Loader()))
	require.ErrorIs(t, err, ErrInitialization)
	assert.Contains(t, err.Error(), "already initialized")

	// the live VM keeps working
	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	require.NoError(t, integer.Release())
}

func TestNewVMLoadFailures(t *testing.T) {
	r := freshProcess(t)

	_, err := NewVM(WithLoader(missingLoader{}))
	require.ErrorIs(t, err, ErrInitialization)
	assert.Contains(t, err.Error(), "Could not locate Java Virtual Machine")

	_, err = NewVM(WithLoader(missingLoader{}), WithLibrary("/opt/jvm/libjvm.so"))
	require.ErrorIs(t, err, ErrInitialization)
	assert.Contains(t, err.Error(), "Could not load JVM library")

	_, err = NewVM(WithLoader(r.Loader()), WithOptions("-Xunknown"))
	require.ErrorIs(t, err, ErrInitialization)
	assert.Contains(t, err.Error(), "failed during creation")
	assert.ErrorIs(t, err, bridge.ErrInvalid)

	// failures leave the process free to try again
	vm, err := NewVM(WithLoader(r.Loader()), WithClassPath("a", "b"), WithIgnoreUnrecognized(), WithOptions("-Xunknown"))
	require.NoError(t, err)
	defer vm.Close()
	assert.Equal(t, "hostvm", vm.Library())
	cp, ok := r.Property("java.class.path")
	require.True(t, ok)
	assert.Contains(t, cp, "a")
}

func TestCloseKeepsVMForReuse(t *testing.T) {
	r := freshProcess(t)

	vm, err := NewVM(WithLoader(r.Loader()))
	require.NoError(t, err)
	require.NoError(t, vm.Close())
	require.NoError(t, vm.Close())

	again, err := NewVM(WithLoader(missingLoader{}))
	require.NoError(t, err, "the retained VM is reused without loading")
	assert.Empty(t, again.Library())

	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	require.NoError(t, integer.Release())
	require.NoError(t, again.Close())
}

func TestDestroyOnClose(t *testing.T) {
	r := freshProcess(t)

	vm, err := NewVM(WithLoader(r.Loader()), WithDestroyOnClose())
	require.NoError(t, err)
	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	require.NoError(t, integer.Release())

	require.NoError(t, vm.Close())
	require.NoError(t, vm.Close())

	_, err = NewVM(WithLoader(r.Loader()))
	require.ErrorIs(t, err, ErrInitialization)
	assert.Contains(t, err.Error(), "shut down")

	_, err = FindClass("java/lang/Integer")
	require.ErrorIs(t, err, ErrInitialization)
	assert.Contains(t, err.Error(), "shut down")
}

func TestEnvironmentWithoutVM(t *testing.T) {
	freshProcess(t)

	_, err := FindClass("java/lang/Object")
	require.ErrorIs(t, err, ErrInitialization)
	assert.Contains(t, err.Error(), "JNI not initialized")

	_, err = LockThread()
	require.ErrorIs(t, err, ErrInitialization)
	assert.NoError(t, DetachCurrentThread())
}

func TestInitFromNativeEnv(t *testing.T) {
	r := freshProcess(t)
	pinned(t)

	lib, err := r.Loader().Open("")
	require.NoError(t, err)
	_, env, err := lib.CreateJavaVM(bridge.InitArgs{Version: bridge.Version1_8})
	require.NoError(t, err)

	require.NoError(t, Init(env))
	require.NoError(t, Init(env), "Init is idempotent")

	_, err = NewVM(WithLoader(r.Loader()))
	require.ErrorIs(t, err, ErrInitialization)

	integer, err := FindClass("java/lang/Integer")
	require.NoError(t, err)
	defer integer.Release()
	size, err := GetStatic[int32](integer, "SIZE")
	require.NoError(t, err)
	assert.Equal(t, int32(32), size)

	// the native thread was attached by its caller and stays attached
	require.NoError(t, DetachCurrentThread())
	assert.Equal(t, 1, r.Threads())
}

func TestThreadAttachment(t *testing.T) {
	r := freshProcess(t)
	pinned(t)

	vm, err := NewVM(WithLoader(r.Loader()))
	require.NoError(t, err)
	defer vm.Close()
	require.Equal(t, 1, r.Threads())

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Locked and never unlocked: the thread exits with the goroutine.
		pinnedThread()

		th, err := LockThread()
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 2, r.Threads())
		integer := th.Env().FindClass("java/lang/Integer")
		assert.NotZero(t, integer)
		th.Env().DeleteLocalRef(integer)
		assert.NoError(t, th.Unlock())
		assert.Equal(t, 1, r.Threads())

		c, err := FindClass("java/lang/Object")
		if assert.NoError(t, err) {
			assert.Equal(t, 2, r.Threads(), "first use attaches")
			assert.NoError(t, c.Release())
		}
		assert.NoError(t, DetachCurrentThread())
		assert.Equal(t, 1, r.Threads())
		assert.NoError(t, DetachCurrentThread(), "detaching twice does nothing")
	}()
	<-done
	assert.Empty(t, r.Violations())
}

func TestDestroyFromAnotherThread(t *testing.T) {
	r := freshProcess(t)

	// Each goroutine keeps its thread locked, so the threads are distinct
	// and exit with the goroutines without being detached.
	created := make(chan *VM)
	go func() {
		pinnedThread()
		vm, err := NewVM(WithLoader(r.Loader()), WithDestroyOnClose())
		assert.NoError(t, err)
		created <- vm
	}()
	vm := <-created
	require.NotNil(t, vm)

	used := make(chan struct{})
	go func() {
		defer close(used)
		pinnedThread()
		c, err := FindClass("java/lang/Object")
		if assert.NoError(t, err) {
			assert.NoError(t, c.Release())
		}
	}()
	<-used
	assert.Equal(t, 2, r.Threads())

	pinned(t)
	require.NoError(t, vm.Close())
	assert.Empty(t, r.Violations())
}
