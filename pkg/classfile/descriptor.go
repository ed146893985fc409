package classfile

import (
	"fmt"
	"strings"
)

// MethodDescriptor is a parsed method descriptor such as
// "(Ljava/lang/String;I)V".
type MethodDescriptor struct {
	Params []string
	Return string
}

// ParseMethodDescriptor splits a method descriptor into field descriptors.
func ParseMethodDescriptor(desc string) (*MethodDescriptor, error) {
	if !strings.HasPrefix(desc, "(") {
		return nil, fmt.Errorf("invalid method descriptor: %s", desc)
	}
	md := &MethodDescriptor{}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		end, err := fieldTypeEnd(desc, i)
		if err != nil {
			return nil, err
		}
		md.Params = append(md.Params, desc[i:end])
		i = end
	}
	if i >= len(desc) {
		return nil, fmt.Errorf("invalid method descriptor: %s", desc)
	}
	ret := desc[i+1:]
	if ret != "V" {
		end, err := fieldTypeEnd(desc, i+1)
		if err != nil {
			return nil, err
		}
		if end != len(desc) {
			return nil, fmt.Errorf("trailing data in method descriptor: %s", desc)
		}
	}
	md.Return = ret
	return md, nil
}

func (md *MethodDescriptor) String() string {
	return "(" + strings.Join(md.Params, "") + ")" + md.Return
}

// ValidFieldDescriptor reports whether desc is exactly one field type.
func ValidFieldDescriptor(desc string) bool {
	end, err := fieldTypeEnd(desc, 0)
	return err == nil && end == len(desc)
}

func fieldTypeEnd(desc string, i int) (int, error) {
	start := i
	for i < len(desc) && desc[i] == '[' {
		i++
	}
	if i >= len(desc) {
		return 0, fmt.Errorf("truncated type in descriptor %s at %d", desc, start)
	}
	switch desc[i] {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return i + 1, nil
	case 'L':
		semi := strings.IndexByte(desc[i:], ';')
		if semi <= 1 {
			return 0, fmt.Errorf("unterminated class type in descriptor %s at %d", desc, start)
		}
		return i + semi + 1, nil
	}
	return 0, fmt.Errorf("invalid type descriptor char '%c' in %s", desc[i], desc)
}

// ClassNameOf returns the class name a reference descriptor names:
// "Ljava/lang/String;" gives "java/lang/String", array descriptors are
// returned unchanged.
func ClassNameOf(desc string) string {
	if strings.HasPrefix(desc, "L") && strings.HasSuffix(desc, ";") {
		return desc[1 : len(desc)-1]
	}
	return desc
}
