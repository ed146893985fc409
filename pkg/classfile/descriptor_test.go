package classfile

import (
	"reflect"
	"testing"
)

func TestParseMethodDescriptor(t *testing.T) {
	tests := []struct {
		desc   string
		params []string
		ret    string
	}{
		{"()V", nil, "V"},
		{"(II)I", []string{"I", "I"}, "I"},
		{"(Ljava/lang/String;I)I", []string{"Ljava/lang/String;", "I"}, "I"},
		{"([Ljava/lang/String;)V", []string{"[Ljava/lang/String;"}, "V"},
		{"(J[[DZ)Ljava/lang/Object;", []string{"J", "[[D", "Z"}, "Ljava/lang/Object;"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			md, err := ParseMethodDescriptor(tt.desc)
			if err != nil {
				t.Fatalf("ParseMethodDescriptor(%q): %v", tt.desc, err)
			}
			if !reflect.DeepEqual(md.Params, tt.params) {
				t.Errorf("params: got %v, want %v", md.Params, tt.params)
			}
			if md.Return != tt.ret {
				t.Errorf("return: got %q, want %q", md.Return, tt.ret)
			}
			if md.String() != tt.desc {
				t.Errorf("String(): got %q, want %q", md.String(), tt.desc)
			}
		})
	}
}

func TestParseMethodDescriptorInvalid(t *testing.T) {
	for _, desc := range []string{"", "I", "(I", "(Q)V", "(Ljava/lang/String)V", "()", "()II"} {
		if _, err := ParseMethodDescriptor(desc); err == nil {
			t.Errorf("ParseMethodDescriptor(%q): expected error", desc)
		}
	}
}

func TestValidFieldDescriptor(t *testing.T) {
	valid := []string{"I", "[I", "Ljava/lang/String;", "[[Ljava/lang/Object;"}
	for _, d := range valid {
		if !ValidFieldDescriptor(d) {
			t.Errorf("%q should be valid", d)
		}
	}
	invalid := []string{"", "V", "II", "L;", "[", "Ljava/lang/String"}
	for _, d := range invalid {
		if ValidFieldDescriptor(d) {
			t.Errorf("%q should be invalid", d)
		}
	}
	if got := ClassNameOf("Ljava/lang/String;"); got != "java/lang/String" {
		t.Errorf("ClassNameOf: got %q", got)
	}
}
