package hostvm

import (
	"fmt"
	"strings"

	"github.com/daimatz/gojni/pkg/classfile"
)

const stringConcatFactory = "java/lang/invoke/StringConcatFactory"

// Recipe tags used by StringConcatFactory.makeConcatWithConstants.
const (
	tagArg   = '\u0001'
	tagConst = '\u0002'
)

// executeInvokedynamic links call sites bootstrapped by StringConcatFactory,
// which is what javac emits for string concatenation. Other bootstrap
// methods raise BootstrapMethodError.
func (t *Thread) executeInvokedynamic(frame *Frame) (Value, bool, error) {
	index := frame.ReadU16()
	frame.ReadU16() // two zero bytes
	cf := frame.Method.Class.File
	pool := cf.ConstantPool

	entry, err := pool.Entry(index)
	if err != nil {
		return Value{}, false, fmt.Errorf("invokedynamic: %w", err)
	}
	site, ok := entry.(*classfile.ConstantDynamic)
	if !ok || int(site.BootstrapMethodAttrIndex) >= len(cf.BootstrapMethods) {
		return Value{}, false, fmt.Errorf("invokedynamic: invalid call site at index %d", index)
	}
	name, desc, err := pool.NameAndType(site.NameAndTypeIndex)
	if err != nil {
		return Value{}, false, fmt.Errorf("invokedynamic: %w", err)
	}
	sig, err := parseDescriptor(desc)
	if err != nil {
		return Value{}, false, fmt.Errorf("invokedynamic: %w", err)
	}
	args := make([]Value, len(sig.Params))
	for i := len(args) - 1; i >= 0; i-- {
		args[i] = frame.Pop()
	}

	bsm := cf.BootstrapMethods[site.BootstrapMethodAttrIndex]
	target, err := bootstrapTarget(pool, bsm)
	if err != nil {
		return Value{}, false, fmt.Errorf("invokedynamic: %w", err)
	}
	if target.ClassName != stringConcatFactory {
		return Value{}, false, t.Throw("java/lang/BootstrapMethodError",
			fmt.Sprintf("unsupported bootstrap method %s.%s", dotted(target.ClassName), target.Name))
	}

	var recipe string
	var constants []uint16
	switch name {
	case "makeConcatWithConstants":
		if len(bsm.BootstrapArguments) == 0 {
			return Value{}, false, t.Throw("java/lang/BootstrapMethodError", "missing concatenation recipe")
		}
		if recipe, err = pool.StringValue(bsm.BootstrapArguments[0]); err != nil {
			return Value{}, false, fmt.Errorf("invokedynamic: %w", err)
		}
		constants = bsm.BootstrapArguments[1:]
	default:
		recipe = strings.Repeat(string(tagArg), len(args))
	}

	s, err := t.concat(pool, recipe, sig.Params, args, constants)
	if err != nil {
		return Value{}, false, err
	}
	frame.Push(RefValue(t.rt.NewString(s)))
	return Value{}, false, nil
}

func bootstrapTarget(pool classfile.Pool, bsm classfile.BootstrapMethod) (*classfile.MemberRef, error) {
	entry, err := pool.Entry(bsm.MethodRef)
	if err != nil {
		return nil, err
	}
	mh, ok := entry.(*classfile.ConstantMethodHandle)
	if !ok {
		return nil, fmt.Errorf("bootstrap method %d is not a method handle", bsm.MethodRef)
	}
	return pool.Member(mh.ReferenceIndex)
}

func (t *Thread) concat(pool classfile.Pool, recipe string, params []string, args []Value, constants []uint16) (string, error) {
	var sb strings.Builder
	next, nextConst := 0, 0
	for _, r := range recipe {
		switch r {
		case tagArg:
			if next >= len(args) {
				return "", t.Throw("java/lang/invoke/StringConcatException", "too few arguments for recipe")
			}
			s, err := t.stringify(args[next], params[next])
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
			next++
		case tagConst:
			if nextConst >= len(constants) {
				return "", t.Throw("java/lang/invoke/StringConcatException", "too few constants for recipe")
			}
			v, err := t.constant(pool, constants[nextConst])
			if err != nil {
				return "", err
			}
			s, err := t.stringify(v, constantDescriptor(v))
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
			nextConst++
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String(), nil
}

func constantDescriptor(v Value) string {
	switch v.Type {
	case TypeInt:
		return "I"
	case TypeLong:
		return "J"
	case TypeFloat:
		return "F"
	case TypeDouble:
		return "D"
	}
	return "Ljava/lang/Object;"
}
