package jni

import (
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/daimatz/gojni/internal/osthread"
	"github.com/daimatz/gojni/pkg/bridge"
	"github.com/daimatz/gojni/pkg/bridge/cjni"
)

// VM is the process's Java virtual machine. At most one VM is live at a
// time.
//
// Closing a VM releases the claim so that a later NewVM succeeds, but keeps
// the underlying virtual machine running and reuses it: most VMs cannot be
// created again in a process once destroyed. WithDestroyOnClose destroys it
// instead, after which no VM can be created in this process.
type VM struct {
	path    string
	destroy bool
	closed  atomic.Bool
}

type settings struct {
	library            string
	loader             bridge.Loader
	options            []string
	version            int32
	ignoreUnrecognized bool
	destroyOnClose     bool
}

// Option configures NewVM.
type Option func(*settings)

// WithLibrary sets the path of the VM shared library. Without it the library
// is located by the loader.
func WithLibrary(path string) Option {
	return func(s *settings) { s.library = path }
}

// WithLoader replaces the loader used to find and open the VM library. The
// default loads libjvm through cgo.
func WithLoader(l bridge.Loader) Option {
	return func(s *settings) { s.loader = l }
}

// WithOptions appends VM options such as "-Xmx512m" or "-Dkey=value".
func WithOptions(opts ...string) Option {
	return func(s *settings) { s.options = append(s.options, opts...) }
}

// WithClassPath sets java.class.path.
func WithClassPath(paths ...string) Option {
	return func(s *settings) {
		s.options = append(s.options, "-Djava.class.path="+strings.Join(paths, string(os.PathListSeparator)))
	}
}

// WithVersion sets the requested interface version. The default is
// bridge.Version1_8.
func WithVersion(v int32) Option {
	return func(s *settings) { s.version = v }
}

// WithIgnoreUnrecognized makes the VM skip options it does not know.
func WithIgnoreUnrecognized() Option {
	return func(s *settings) { s.ignoreUnrecognized = true }
}

// WithDestroyOnClose makes Close destroy the virtual machine.
func WithDestroyOnClose() Option {
	return func(s *settings) { s.destroyOnClose = true }
}

// NewVM starts the Java virtual machine, or takes over the one a previous
// VM left running. It fails if a VM is live or Init registered an embedding
// VM.
func NewVM(opts ...Option) (*VM, error) {
	s := settings{version: bridge.Version1_8}
	for _, opt := range opts {
		opt(&s)
	}
	if !proc.swap(stateIdle, stateStarting) {
		if proc.current() == stateShutdown {
			return nil, initError("Java Virtual Machine has been shut down", nil)
		}
		return nil, initError("Java Virtual Machine already initialized", nil)
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	vm, err := start(s)
	if err != nil {
		proc.state.Store(int32(stateIdle))
		return nil, err
	}
	proc.state.Store(int32(stateLive))
	return vm, nil
}

func start(s settings) (*VM, error) {
	proc.mu.Lock()
	retained := proc.vm != nil
	proc.mu.Unlock()
	if retained {
		log().Debug("reusing java vm")
		return &VM{destroy: s.destroyOnClose}, nil
	}

	loader := s.loader
	if loader == nil {
		loader = cjni.NewLoader()
	}
	path := s.library
	if path == "" {
		var err error
		if path, err = loader.Locate(); err != nil || path == "" {
			return nil, initError("Could not locate Java Virtual Machine", err)
		}
	}
	lib, err := loader.Open(path)
	if err != nil {
		return nil, initError("Could not load JVM library", err)
	}
	vm, _, err := lib.CreateJavaVM(bridge.InitArgs{
		Version:            s.version,
		Options:            s.options,
		IgnoreUnrecognized: s.ignoreUnrecognized,
	})
	if err != nil {
		return nil, initError("Java Virtual Machine failed during creation", multierr.Append(err, lib.Close()))
	}

	proc.mu.Lock()
	proc.vm, proc.lib = vm, lib
	proc.mu.Unlock()
	// The creating thread is attached as non-daemon, which would make a
	// destroying Close on any other thread wait for it forever.
	if env, err := asDaemon(vm); err != nil {
		log().Warn("could not reattach creating thread as daemon", zap.Error(err))
	} else {
		proc.envs.Store(osthread.ID(), &scopedEnv{env: env})
	}
	log().Debug("created java vm", zap.String("library", path), zap.Strings("options", s.options))
	return &VM{path: path, destroy: s.destroyOnClose}, nil
}

func asDaemon(vm bridge.JavaVM) (bridge.Env, error) {
	if err := vm.DetachCurrentThread(); err != nil {
		return nil, err
	}
	return vm.AttachCurrentThreadAsDaemon()
}

// Library returns the path of the library the VM was loaded from, or "" if
// it reuses a VM created earlier.
func (v *VM) Library() string { return v.path }

// Close releases the VM. See VM for what happens to the virtual machine.
// Closing twice does nothing.
func (v *VM) Close() error {
	if !v.closed.CompareAndSwap(false, true) {
		return nil
	}
	if !v.destroy {
		proc.swap(stateLive, stateIdle)
		log().Debug("released java vm")
		return nil
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	proc.state.Store(int32(stateShutdown))
	proc.mu.Lock()
	vm, lib := proc.vm, proc.lib
	proc.vm, proc.lib = nil, nil
	proc.mu.Unlock()
	proc.envs.Range(func(k, _ any) bool {
		proc.envs.Delete(k)
		return true
	})

	var err error
	if vm != nil {
		err = multierr.Append(err, vm.DestroyJavaVM())
	}
	if lib != nil {
		err = multierr.Append(err, lib.Close())
	}
	log().Debug("destroyed java vm", zap.Error(err))
	return err
}

// Init registers the VM of a native method's environment, for code whose
// entry point is a native method called from Java. Only the first call has
// an effect; Init after NewVM does nothing.
func Init(env bridge.Env) error {
	if !proc.swap(stateIdle, stateEmbedded) {
		if proc.current() == stateShutdown {
			return initError("Java Virtual Machine has been shut down", nil)
		}
		return nil
	}
	vm, err := env.GetJavaVM()
	if err != nil {
		proc.state.Store(int32(stateIdle))
		return initError("Could not acquire Java VM", err)
	}
	proc.mu.Lock()
	if proc.vm == nil {
		proc.vm = vm
	}
	proc.mu.Unlock()
	proc.envs.LoadOrStore(osthread.ID(), &scopedEnv{env: env})
	log().Debug("registered embedding java vm")
	return nil
}
