package hostvm

import (
	"io"
	"strings"
)

var exceptionHierarchy = [][2]string{
	{"java/lang/Exception", "java/lang/Throwable"},
	{"java/lang/Error", "java/lang/Throwable"},
	{"java/lang/RuntimeException", "java/lang/Exception"},
	{"java/lang/InterruptedException", "java/lang/Exception"},
	{"java/lang/ReflectiveOperationException", "java/lang/Exception"},
	{"java/lang/ClassNotFoundException", "java/lang/ReflectiveOperationException"},
	{"java/lang/InstantiationException", "java/lang/ReflectiveOperationException"},
	{"java/lang/invoke/StringConcatException", "java/lang/Exception"},
	{"java/lang/NullPointerException", "java/lang/RuntimeException"},
	{"java/lang/ArithmeticException", "java/lang/RuntimeException"},
	{"java/lang/ClassCastException", "java/lang/RuntimeException"},
	{"java/lang/ArrayStoreException", "java/lang/RuntimeException"},
	{"java/lang/NegativeArraySizeException", "java/lang/RuntimeException"},
	{"java/lang/IllegalStateException", "java/lang/RuntimeException"},
	{"java/lang/UnsupportedOperationException", "java/lang/RuntimeException"},
	{"java/lang/IllegalArgumentException", "java/lang/RuntimeException"},
	{"java/lang/NumberFormatException", "java/lang/IllegalArgumentException"},
	{"java/lang/IndexOutOfBoundsException", "java/lang/RuntimeException"},
	{"java/lang/ArrayIndexOutOfBoundsException", "java/lang/IndexOutOfBoundsException"},
	{"java/lang/StringIndexOutOfBoundsException", "java/lang/IndexOutOfBoundsException"},
	{"java/lang/LinkageError", "java/lang/Error"},
	{"java/lang/NoClassDefFoundError", "java/lang/LinkageError"},
	{"java/lang/ClassFormatError", "java/lang/LinkageError"},
	{"java/lang/UnsatisfiedLinkError", "java/lang/LinkageError"},
	{"java/lang/VerifyError", "java/lang/LinkageError"},
	{"java/lang/ExceptionInInitializerError", "java/lang/LinkageError"},
	{"java/lang/BootstrapMethodError", "java/lang/LinkageError"},
	{"java/lang/IncompatibleClassChangeError", "java/lang/LinkageError"},
	{"java/lang/NoSuchMethodError", "java/lang/IncompatibleClassChangeError"},
	{"java/lang/NoSuchFieldError", "java/lang/IncompatibleClassChangeError"},
	{"java/lang/AbstractMethodError", "java/lang/IncompatibleClassChangeError"},
	{"java/lang/InstantiationError", "java/lang/IncompatibleClassChangeError"},
	{"java/lang/VirtualMachineError", "java/lang/Error"},
	{"java/lang/InternalError", "java/lang/VirtualMachineError"},
	{"java/lang/OutOfMemoryError", "java/lang/VirtualMachineError"},
	{"java/lang/StackOverflowError", "java/lang/VirtualMachineError"},
}

// throwableConstructors are declared on every Throwable subclass since
// constructors are not inherited.
func throwableConstructors() []MethodDef {
	set := func(this *Object, msg, cause Value) {
		this.Fields["message"] = msg
		this.Fields["cause"] = cause
	}
	return []MethodDef{
		method("<init>", "()V", func(_ *Thread, this *Object, _ []Value) (Value, error) {
			set(this, NullValue(), NullValue())
			return Value{}, nil
		}),
		method("<init>", "(Ljava/lang/String;)V", func(_ *Thread, this *Object, args []Value) (Value, error) {
			set(this, args[0], NullValue())
			return Value{}, nil
		}),
		method("<init>", "(Ljava/lang/String;Ljava/lang/Throwable;)V", func(_ *Thread, this *Object, args []Value) (Value, error) {
			set(this, args[0], args[1])
			return Value{}, nil
		}),
		method("<init>", "(Ljava/lang/Throwable;)V", func(t *Thread, this *Object, args []Value) (Value, error) {
			msg := NullValue()
			if !args[0].IsNull() {
				s, err := t.ToString(args[0].Ref)
				if err != nil {
					return Value{}, err
				}
				msg = RefValue(t.rt.NewString(s))
			}
			set(this, msg, args[0])
			return Value{}, nil
		}),
	}
}

func throwableClasses() []ClassDef {
	root := ClassDef{
		Name:       "java/lang/Throwable",
		Super:      "java/lang/Object",
		Interfaces: []string{"java/io/Serializable"},
		Fields: []FieldDef{
			{Name: "message", Descriptor: "Ljava/lang/String;"},
			{Name: "cause", Descriptor: "Ljava/lang/Throwable;"},
		},
		Methods: append(throwableConstructors(),
			method("getMessage", "()Ljava/lang/String;", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				return this.Fields["message"], nil
			}),
			method("getLocalizedMessage", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
				return t.InvokeVirtual(this, "getMessage", "()Ljava/lang/String;")
			}),
			method("getCause", "()Ljava/lang/Throwable;", func(_ *Thread, this *Object, _ []Value) (Value, error) {
				return this.Fields["cause"], nil
			}),
			method("initCause", "(Ljava/lang/Throwable;)Ljava/lang/Throwable;", func(t *Thread, this *Object, args []Value) (Value, error) {
				if !this.Fields["cause"].IsNull() {
					return Value{}, t.Throw("java/lang/IllegalStateException", "Can't overwrite cause")
				}
				this.Fields["cause"] = args[0]
				return RefValue(this), nil
			}),
			method("toString", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
				msg, err := t.InvokeVirtual(this, "getLocalizedMessage", "()Ljava/lang/String;")
				if err != nil {
					return Value{}, err
				}
				s := this.Class.JavaName()
				if !msg.IsNull() {
					s += ": " + GoString(msg.Ref)
				}
				return RefValue(t.rt.NewString(s)), nil
			}),
			method("printStackTrace", "()V", func(t *Thread, this *Object, _ []Value) (Value, error) {
				trace, err := t.describe(this)
				if err != nil {
					return Value{}, err
				}
				_, err = io.WriteString(t.rt.stderr, trace)
				return Value{}, err
			}),
		),
	}
	defs := []ClassDef{root}
	for _, h := range exceptionHierarchy {
		defs = append(defs, ClassDef{Name: h[0], Super: h[1], Methods: throwableConstructors()})
	}
	return defs
}

// describe renders a Throwable and its causes the way printStackTrace does,
// without frames.
func (t *Thread) describe(o *Object) (string, error) {
	var sb strings.Builder
	seen := map[*Object]bool{}
	for prefix := ""; o != nil && !seen[o]; prefix = "Caused by: " {
		seen[o] = true
		s, err := t.ToString(o)
		if err != nil {
			return "", err
		}
		sb.WriteString(prefix + s + "\n")
		o = o.Fields["cause"].Ref
	}
	return sb.String(), nil
}
