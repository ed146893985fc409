// Package hostvm is an in-process Java runtime that serves the bridge
// interfaces without a native libjvm. It interprets class files, provides a
// small java.lang core written in Go and tracks every reference it hands out
// so that leaks and thread misuse are observable.
package hostvm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/daimatz/gojni/internal/osthread"
	"github.com/daimatz/gojni/pkg/bridge"
	"github.com/daimatz/gojni/pkg/classfile"
)

// Runtime is the process-wide state of the in-process VM.
type Runtime struct {
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer

	mu         sync.Mutex
	classes    map[string]*Class
	classPath  []ClassLoader
	methods    []*Method
	fields     []*Field
	interned   map[string]*Object
	properties map[string]string
	threads    map[int64]*Thread
	refs       map[bridge.Ref]*refEntry
	nextRef    bridge.Ref
	violations []string
	created    bool
	destroyed  bool
}

type refEntry struct {
	obj    *Object
	global bool
	owner  *Thread
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(rt *Runtime) { rt.log = l }
}

// WithStdout redirects System.out.
func WithStdout(w io.Writer) Option {
	return func(rt *Runtime) { rt.stdout = w }
}

// WithStderr redirects System.err and ExceptionDescribe.
func WithStderr(w io.Writer) Option {
	return func(rt *Runtime) { rt.stderr = w }
}

// WithClassPath adds directories and jar files searched by FindClass.
func WithClassPath(paths ...string) Option {
	return func(rt *Runtime) {
		for _, p := range paths {
			rt.classPath = append(rt.classPath, NewClassPath(p)...)
		}
	}
}

// New creates a runtime with the built-in classes defined.
func New(opts ...Option) (*Runtime, error) {
	rt := &Runtime{
		log:        zap.NewNop(),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		classes:    make(map[string]*Class),
		interned:   make(map[string]*Object),
		properties: make(map[string]string),
		threads:    make(map[int64]*Thread),
		refs:       make(map[bridge.Ref]*refEntry),
	}
	for _, opt := range opts {
		opt(rt)
	}
	for _, def := range builtinClasses() {
		if _, err := rt.Define(def); err != nil {
			return nil, fmt.Errorf("defining %s: %w", def.Name, err)
		}
	}
	return rt, nil
}

// Define adds a class implemented in Go.
func (rt *Runtime) Define(def ClassDef) (*Class, error) {
	c, err := rt.build(def)
	if err != nil {
		return nil, err
	}
	return c, rt.register(c)
}

// DefineClassFile links and adds a parsed class file.
func (rt *Runtime) DefineClassFile(cf *classfile.ClassFile) (*Class, error) {
	c, err := rt.link(cf)
	if err != nil {
		return nil, err
	}
	return c, rt.register(c)
}

var errDuplicateClass = errors.New("duplicate class definition")

func (rt *Runtime) register(c *Class) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if _, ok := rt.classes[c.Name]; ok {
		return fmt.Errorf("%w: %s", errDuplicateClass, c.Name)
	}
	for _, m := range c.methods {
		rt.methods = append(rt.methods, m)
		m.id = bridge.MethodID(len(rt.methods))
	}
	for _, f := range c.fields {
		rt.fields = append(rt.fields, f)
		f.id = bridge.FieldID(len(rt.fields))
	}
	rt.classes[c.Name] = c
	if mirrorClass := rt.classes["java/lang/Class"]; mirrorClass != nil {
		rt.attachMirror(c, mirrorClass)
	}
	if c.Name == "java/lang/Class" {
		for _, k := range rt.classes {
			rt.attachMirror(k, c)
		}
	}
	rt.log.Debug("class defined", zap.String("class", c.Name))
	return nil
}

func (rt *Runtime) attachMirror(c, mirrorClass *Class) {
	if c.mirror == nil {
		c.mirror = allocate(mirrorClass)
		c.mirror.Native = c
	}
}

// Class returns a loaded class by name without searching the class path.
func (rt *Runtime) Class(name string) *Class {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.classes[name]
}

func (rt *Runtime) mustClass(name string) *Class {
	c := rt.Class(name)
	if c == nil {
		panic("hostvm: built-in class missing: " + name)
	}
	return c
}

// ErrClassNotFound is returned when no class path entry holds a class.
var ErrClassNotFound = errors.New("class not found")

func (rt *Runtime) loadClass(name string) (*Class, error) {
	if c := rt.Class(name); c != nil {
		return c, nil
	}
	if strings.HasPrefix(name, "[") {
		c, err := rt.arrayClass(name)
		if err != nil {
			return nil, err
		}
		if err := rt.register(c); err != nil && !errors.Is(err, errDuplicateClass) {
			return nil, err
		}
		return rt.Class(name), nil
	}
	rt.mu.Lock()
	path := rt.classPath
	rt.mu.Unlock()
	for _, l := range path {
		cf, err := l.LoadClass(name)
		if errors.Is(err, ErrClassNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		c, err := rt.DefineClassFile(cf)
		if errors.Is(err, errDuplicateClass) {
			return rt.Class(name), nil
		}
		return c, err
	}
	return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
}

func (rt *Runtime) method(id bridge.MethodID) *Method {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if id == 0 || int(id) > len(rt.methods) {
		return nil
	}
	return rt.methods[id-1]
}

func (rt *Runtime) field(id bridge.FieldID) *Field {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if id == 0 || int(id) > len(rt.fields) {
		return nil
	}
	return rt.fields[id-1]
}

// Property returns a system property set with -D.
func (rt *Runtime) Property(key string) (string, bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	v, ok := rt.properties[key]
	return v, ok
}

// LocalRefs returns the number of live local references across all threads.
func (rt *Runtime) LocalRefs() int {
	return rt.countRefs(false)
}

// GlobalRefs returns the number of live global references.
func (rt *Runtime) GlobalRefs() int {
	return rt.countRefs(true)
}

func (rt *Runtime) countRefs(global bool) int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	n := 0
	for _, e := range rt.refs {
		if e.global == global {
			n++
		}
	}
	return n
}

// Violations returns the interface misuse recorded so far: calls from the
// wrong thread, calls made while an exception is pending and invalid
// references.
func (rt *Runtime) Violations() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]string(nil), rt.violations...)
}

func (rt *Runtime) violate(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	rt.mu.Lock()
	rt.violations = append(rt.violations, msg)
	rt.mu.Unlock()
	rt.log.Warn("interface misuse", zap.String("violation", msg))
}

func (rt *Runtime) newRef(o *Object, global bool, owner *Thread) bridge.Ref {
	if o == nil {
		return 0
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.nextRef++
	rt.refs[rt.nextRef] = &refEntry{obj: o, global: global, owner: owner}
	return rt.nextRef
}

// Threads returns the number of attached threads.
func (rt *Runtime) Threads() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.threads)
}

var _ bridge.JavaVM = (*Runtime)(nil)

// GetEnv returns the Env of the calling OS thread.
func (rt *Runtime) GetEnv(version int32) (bridge.Env, error) {
	if version > bridge.Version10 {
		return nil, bridge.ErrVersion
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.destroyed {
		return nil, bridge.ErrFailed
	}
	t, ok := rt.threads[osthread.ID()]
	if !ok {
		return nil, bridge.ErrDetached
	}
	return t.env, nil
}

// AttachCurrentThread attaches the calling OS thread. Attaching an attached
// thread returns its existing Env.
func (rt *Runtime) AttachCurrentThread() (bridge.Env, error) {
	return rt.attach(false)
}

// AttachCurrentThreadAsDaemon attaches the calling OS thread as a daemon,
// which DestroyJavaVM does not wait for.
func (rt *Runtime) AttachCurrentThreadAsDaemon() (bridge.Env, error) {
	return rt.attach(true)
}

func (rt *Runtime) attach(daemon bool) (bridge.Env, error) {
	id := osthread.ID()
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.destroyed {
		return nil, bridge.ErrFailed
	}
	if t, ok := rt.threads[id]; ok {
		return t.env, nil
	}
	t := &Thread{rt: rt, id: id, daemon: daemon}
	t.env = &env{t: t}
	rt.threads[id] = t
	rt.log.Debug("thread attached", zap.Int64("tid", id), zap.Bool("daemon", daemon))
	return t.env, nil
}

// DetachCurrentThread detaches the calling OS thread and frees its local
// references.
func (rt *Runtime) DetachCurrentThread() error {
	id := osthread.ID()
	rt.mu.Lock()
	defer rt.mu.Unlock()
	t, ok := rt.threads[id]
	if !ok {
		return bridge.ErrDetached
	}
	for r, e := range rt.refs {
		if !e.global && e.owner == t {
			delete(rt.refs, r)
		}
	}
	t.detached = true
	delete(rt.threads, id)
	rt.log.Debug("thread detached", zap.Int64("tid", id))
	return nil
}

// DestroyJavaVM shuts the runtime down. Every later call fails.
//
// A JVM waits in DestroyJavaVM until the calling thread is the last
// non-daemon thread attached. Here that wait is recorded as a violation and
// the call fails.
func (rt *Runtime) DestroyJavaVM() error {
	id := osthread.ID()
	rt.mu.Lock()
	if rt.destroyed {
		rt.mu.Unlock()
		return bridge.ErrFailed
	}
	var waiting []int64
	for tid, t := range rt.threads {
		if tid != id && !t.daemon {
			waiting = append(waiting, tid)
		}
	}
	if len(waiting) > 0 {
		rt.mu.Unlock()
		rt.violate("DestroyJavaVM: would wait for non-daemon threads %v", waiting)
		return bridge.ErrFailed
	}
	defer rt.mu.Unlock()
	rt.destroyed = true
	rt.threads = map[int64]*Thread{}
	rt.refs = map[bridge.Ref]*refEntry{}
	rt.log.Debug("runtime destroyed")
	return nil
}

// Loader returns a bridge.Loader whose library creates this runtime.
func (rt *Runtime) Loader() bridge.Loader {
	return loader{rt: rt}
}

type loader struct{ rt *Runtime }

func (loader) Locate() (string, error) { return "hostvm", nil }

func (l loader) Open(string) (bridge.Library, error) { return library{rt: l.rt}, nil }

type library struct{ rt *Runtime }

func (library) Close() error { return nil }

// CreateJavaVM applies the init options and attaches the calling thread.
// Recognised options are -D properties (java.class.path extends the class
// path), -verbose, -Xcheck:jni and the -Xms/-Xmx/-Xss sizes.
func (l library) CreateJavaVM(args bridge.InitArgs) (bridge.JavaVM, bridge.Env, error) {
	rt := l.rt
	if args.Version > bridge.Version10 || args.Version < bridge.Version1_1 {
		return nil, nil, bridge.ErrVersion
	}
	rt.mu.Lock()
	if rt.created {
		rt.mu.Unlock()
		return nil, nil, bridge.ErrExists
	}
	for _, opt := range args.Options {
		switch {
		case strings.HasPrefix(opt, "-D"):
			key, value, _ := strings.Cut(opt[2:], "=")
			rt.properties[key] = value
			if key == "java.class.path" {
				for _, p := range filepath.SplitList(value) {
					rt.classPath = append(rt.classPath, NewClassPath(p)...)
				}
			}
		case strings.HasPrefix(opt, "-verbose"), opt == "-Xcheck:jni",
			strings.HasPrefix(opt, "-Xms"), strings.HasPrefix(opt, "-Xmx"), strings.HasPrefix(opt, "-Xss"):
		case args.IgnoreUnrecognized:
			rt.log.Debug("ignoring unrecognized option", zap.String("option", opt))
		default:
			rt.mu.Unlock()
			return nil, nil, fmt.Errorf("unrecognized option %q: %w", opt, bridge.ErrInvalid)
		}
	}
	rt.created = true
	rt.mu.Unlock()
	env, err := rt.AttachCurrentThread()
	if err != nil {
		return nil, nil, err
	}
	return rt, env, nil
}
