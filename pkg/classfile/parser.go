package classfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const classMagic = 0xCAFEBABE

// ParseFile opens and parses a .class file from the given path.
func ParseFile(path string) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// ParseBytes parses an in-memory class file.
func ParseBytes(data []byte) (*ClassFile, error) {
	return Parse(bytes.NewReader(data))
}

// Parse reads a .class file from the given reader and returns a ClassFile.
func Parse(in io.Reader) (*ClassFile, error) {
	r := &reader{r: in}
	cf := &ClassFile{}

	magic := r.u4()
	if r.err != nil {
		return nil, fmt.Errorf("reading magic number: %w", r.err)
	}
	if magic != classMagic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0xCAFEBABE)", magic)
	}

	cf.MinorVersion = r.u2()
	cf.MajorVersion = r.u2()
	cpCount := r.u2()
	if r.err != nil {
		return nil, fmt.Errorf("reading header: %w", r.err)
	}

	pool, err := parseConstantPool(r, cpCount)
	if err != nil {
		return nil, fmt.Errorf("parsing constant pool: %w", err)
	}
	cf.ConstantPool = pool

	cf.AccessFlags = r.u2()
	cf.ThisClass = r.u2()
	cf.SuperClass = r.u2()
	cf.Interfaces = make([]uint16, r.u2())
	for i := range cf.Interfaces {
		cf.Interfaces[i] = r.u2()
	}
	if r.err != nil {
		return nil, fmt.Errorf("reading class header: %w", r.err)
	}

	if cf.Fields, err = parseFields(r, pool); err != nil {
		return nil, fmt.Errorf("parsing fields: %w", err)
	}
	if cf.Methods, err = parseMethods(r, pool); err != nil {
		return nil, fmt.Errorf("parsing methods: %w", err)
	}
	if cf.Attributes, err = parseAttributes(r, pool); err != nil {
		return nil, fmt.Errorf("parsing class attributes: %w", err)
	}
	for _, attr := range cf.Attributes {
		if attr.Name == "BootstrapMethods" {
			if cf.BootstrapMethods, err = parseBootstrapMethods(attr.Data); err != nil {
				return nil, fmt.Errorf("parsing BootstrapMethods: %w", err)
			}
		}
	}
	return cf, nil
}

func parseFields(r *reader, pool Pool) ([]FieldInfo, error) {
	fields := make([]FieldInfo, r.u2())
	for i := range fields {
		f := &fields[i]
		var err error
		f.AccessFlags = r.u2()
		if f.Name, f.Descriptor, err = memberHeader(r, pool); err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		if f.Attributes, err = parseAttributes(r, pool); err != nil {
			return nil, fmt.Errorf("field %s attributes: %w", f.Name, err)
		}
		for _, attr := range f.Attributes {
			if attr.Name == "ConstantValue" && len(attr.Data) == 2 {
				f.constantValue = binary.BigEndian.Uint16(attr.Data)
			}
		}
	}
	return fields, r.err
}

func parseMethods(r *reader, pool Pool) ([]MethodInfo, error) {
	methods := make([]MethodInfo, r.u2())
	for i := range methods {
		m := &methods[i]
		var err error
		m.AccessFlags = r.u2()
		if m.Name, m.Descriptor, err = memberHeader(r, pool); err != nil {
			return nil, fmt.Errorf("method %d: %w", i, err)
		}
		if m.Attributes, err = parseAttributes(r, pool); err != nil {
			return nil, fmt.Errorf("method %s attributes: %w", m.Name, err)
		}
		for _, attr := range m.Attributes {
			if attr.Name != "Code" {
				continue
			}
			if m.Code, err = parseCodeAttribute(attr.Data); err != nil {
				return nil, fmt.Errorf("parsing Code attribute for method %s: %w", m.Name, err)
			}
			break
		}
	}
	return methods, r.err
}

func memberHeader(r *reader, pool Pool) (name, desc string, err error) {
	nameIndex, descIndex := r.u2(), r.u2()
	if r.err != nil {
		return "", "", r.err
	}
	if name, err = pool.Utf8(nameIndex); err != nil {
		return "", "", fmt.Errorf("resolving name: %w", err)
	}
	if desc, err = pool.Utf8(descIndex); err != nil {
		return "", "", fmt.Errorf("resolving descriptor: %w", err)
	}
	return name, desc, nil
}

func parseAttributes(r *reader, pool Pool) ([]AttributeInfo, error) {
	attrs := make([]AttributeInfo, r.u2())
	for i := range attrs {
		nameIndex := r.u2()
		data := r.bytes(int(r.u4()))
		if r.err != nil {
			return nil, fmt.Errorf("reading attribute %d: %w", i, r.err)
		}
		name, err := pool.Utf8(nameIndex)
		if err != nil {
			return nil, fmt.Errorf("resolving attribute %d name: %w", i, err)
		}
		attrs[i] = AttributeInfo{Name: name, Data: data}
	}
	return attrs, r.err
}

func parseCodeAttribute(data []byte) (*CodeAttribute, error) {
	r := &reader{r: bytes.NewReader(data)}
	code := &CodeAttribute{
		MaxStack:  r.u2(),
		MaxLocals: r.u2(),
	}
	code.Code = r.bytes(int(r.u4()))
	if r.err != nil {
		return nil, fmt.Errorf("Code attribute too short: %w", r.err)
	}
	code.ExceptionHandlers = make([]ExceptionHandler, r.u2())
	for i := range code.ExceptionHandlers {
		code.ExceptionHandlers[i] = ExceptionHandler{
			StartPC:   r.u2(),
			EndPC:     r.u2(),
			HandlerPC: r.u2(),
			CatchType: r.u2(),
		}
	}
	if r.err != nil {
		return nil, fmt.Errorf("reading exception table: %w", r.err)
	}
	return code, nil
}

func parseBootstrapMethods(data []byte) ([]BootstrapMethod, error) {
	r := &reader{r: bytes.NewReader(data)}
	methods := make([]BootstrapMethod, r.u2())
	for i := range methods {
		methods[i].MethodRef = r.u2()
		methods[i].BootstrapArguments = make([]uint16, r.u2())
		for j := range methods[i].BootstrapArguments {
			methods[i].BootstrapArguments[j] = r.u2()
		}
		if r.err != nil {
			return nil, fmt.Errorf("BootstrapMethods truncated at method %d: %w", i, r.err)
		}
	}
	return methods, r.err
}
