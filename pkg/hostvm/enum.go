package hostvm

import "github.com/daimatz/gojni/pkg/classfile"

var threadStates = []string{"NEW", "RUNNABLE", "BLOCKED", "WAITING", "TIMED_WAITING", "TERMINATED"}

func enumClasses() []ClassDef {
	const state = "java/lang/Thread$State"
	stateDef := ClassDef{
		Name:  state,
		Super: "java/lang/Enum",
		Flags: classfile.AccFinal | classfile.AccEnum,
		Init: func(t *Thread, c *Class) error {
			values := make([]Value, len(threadStates))
			for i, name := range threadStates {
				o := allocate(c)
				o.Fields["name"] = RefValue(t.rt.Intern(name))
				o.Fields["ordinal"] = IntValue(int32(i))
				values[i] = RefValue(o)
				c.SetStatic(name, values[i])
			}
			arr, err := t.NewArray("[L"+state+";", len(values))
			if err != nil {
				return err
			}
			copy(arr.Elements(), values)
			c.SetStatic("$VALUES", RefValue(arr))
			return nil
		},
		Methods: []MethodDef{
			staticMethod("values", "()[L"+state+";", func(t *Thread, _ *Object, _ []Value) (Value, error) {
				c := t.rt.mustClass(state)
				src := c.Static("$VALUES").Ref.Elements()
				arr, err := t.NewArray("[L"+state+";", len(src))
				if err != nil {
					return Value{}, err
				}
				copy(arr.Elements(), src)
				return RefValue(arr), nil
			}),
			staticMethod("valueOf", "(Ljava/lang/String;)L"+state+";", func(t *Thread, _ *Object, args []Value) (Value, error) {
				if args[0].IsNull() {
					return Value{}, t.Throw("java/lang/NullPointerException", "Name is null")
				}
				name := GoString(args[0].Ref)
				c := t.rt.mustClass(state)
				if f := c.fields[name]; f != nil && f.IsStatic() && f.Descriptor == "L"+state+";" {
					return c.Static(name), nil
				}
				return Value{}, t.Throw("java/lang/IllegalArgumentException", "No enum constant java.lang.Thread.State."+name)
			}),
		},
	}
	for _, name := range threadStates {
		stateDef.Fields = append(stateDef.Fields, FieldDef{Name: name, Descriptor: "L" + state + ";", Static: true})
	}
	stateDef.Fields = append(stateDef.Fields, FieldDef{Name: "$VALUES", Descriptor: "[L" + state + ";", Static: true})

	return []ClassDef{
		{
			Name:       "java/lang/Enum",
			Super:      "java/lang/Object",
			Interfaces: []string{"java/lang/Comparable", "java/io/Serializable"},
			Flags:      classfile.AccAbstract,
			Fields: []FieldDef{
				{Name: "name", Descriptor: "Ljava/lang/String;"},
				{Name: "ordinal", Descriptor: "I"},
			},
			Methods: []MethodDef{
				method("<init>", "(Ljava/lang/String;I)V", func(_ *Thread, this *Object, args []Value) (Value, error) {
					this.Fields["name"] = args[0]
					this.Fields["ordinal"] = args[1]
					return Value{}, nil
				}),
				method("name", "()Ljava/lang/String;", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					return this.Fields["name"], nil
				}),
				method("ordinal", "()I", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					return this.Fields["ordinal"], nil
				}),
				method("toString", "()Ljava/lang/String;", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					return this.Fields["name"], nil
				}),
				method("compareTo", "(Ljava/lang/Enum;)I", func(t *Thread, this *Object, args []Value) (Value, error) {
					if args[0].IsNull() {
						return Value{}, t.Throw("java/lang/NullPointerException", "")
					}
					return IntValue(this.Fields["ordinal"].Int - args[0].Ref.Fields["ordinal"].Int), nil
				}),
			},
		},
		stateDef,
	}
}
