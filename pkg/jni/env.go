package jni

import (
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/daimatz/gojni/internal/osthread"
	"github.com/daimatz/gojni/pkg/bridge"
)

type vmState int32

const (
	stateIdle vmState = iota
	stateStarting
	stateLive
	stateEmbedded
	stateShutdown
)

// process is the process-wide state: the lifecycle flag, the VM every thread
// attaches to and the per-thread environment cache.
type process struct {
	state atomic.Int32

	mu  sync.Mutex
	vm  bridge.JavaVM
	lib bridge.Library

	envs sync.Map // OS thread id -> *scopedEnv
}

func (p *process) javaVM() bridge.JavaVM {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vm
}

func (p *process) swap(from, to vmState) bool {
	return p.state.CompareAndSwap(int32(from), int32(to))
}

func (p *process) current() vmState { return vmState(p.state.Load()) }

var proc = &process{}

// scopedEnv is the environment of one OS thread. attached records whether
// this package attached the thread; only those threads are ever detached.
type scopedEnv struct {
	env      bridge.Env
	attached bool
}

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger replaces the package logger. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

func log() *zap.Logger { return logger.Load() }

// Environment returns the environment of the calling OS thread, attaching
// the thread as a daemon on first use so that destroying the VM does not
// wait for it. The caller must hold runtime.LockOSThread for as long as it
// uses the result.
func Environment() (bridge.Env, error) {
	tid := osthread.ID()
	if e, ok := proc.envs.Load(tid); ok {
		return e.(*scopedEnv).env, nil
	}
	if proc.current() == stateShutdown {
		return nil, initError("Java Virtual Machine has been shut down", nil)
	}
	vm := proc.javaVM()
	if vm == nil {
		return nil, initError("JNI not initialized", nil)
	}

	scoped := &scopedEnv{}
	env, err := vm.GetEnv(bridge.Version1_2)
	if err != nil {
		env, err = vm.AttachCurrentThreadAsDaemon()
		if err != nil {
			return nil, initError("Could not attach JNI to thread", err)
		}
		scoped.attached = true
		log().Debug("attached thread", zap.Int64("tid", tid))
	}
	scoped.env = env
	proc.envs.Store(tid, scoped)
	return env, nil
}

// DetachCurrentThread drops the calling thread's cached environment and
// detaches the thread if this package attached it. Threads that were already
// attached, such as the one a native method was called on, stay attached.
func DetachCurrentThread() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	return detach(osthread.ID())
}

func detach(tid int64) error {
	e, ok := proc.envs.LoadAndDelete(tid)
	if !ok || !e.(*scopedEnv).attached {
		return nil
	}
	vm := proc.javaVM()
	if vm == nil {
		return nil
	}
	if err := vm.DetachCurrentThread(); err != nil {
		return initError("Could not detach JNI from thread", err)
	}
	log().Debug("detached thread", zap.Int64("tid", tid))
	return nil
}

// Thread pins the calling goroutine to its OS thread so that a batch of raw
// bridge calls can share one environment.
type Thread struct {
	env      bridge.Env
	tid      int64
	attached bool
}

// LockThread locks the calling goroutine to its OS thread and returns the
// thread's environment. Unlock must be called on the same goroutine.
func LockThread() (*Thread, error) {
	runtime.LockOSThread()
	tid := osthread.ID()
	_, cached := proc.envs.Load(tid)
	env, err := Environment()
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return &Thread{env: env, tid: tid, attached: !cached}, nil
}

// Env returns the pinned thread's environment.
func (t *Thread) Env() bridge.Env { return t.env }

// Unlock releases the OS thread. If LockThread attached the thread, it is
// detached again.
func (t *Thread) Unlock() error {
	defer runtime.UnlockOSThread()
	if !t.attached {
		return nil
	}
	return detach(t.tid)
}

// withEnv runs fn on a locked OS thread with that thread's environment.
func withEnv(fn func(env bridge.Env) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	env, err := Environment()
	if err != nil {
		return err
	}
	return fn(env)
}
