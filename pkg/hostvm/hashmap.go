package hostvm

import (
	"strings"

	"github.com/daimatz/gojni/pkg/classfile"
)

// hashMap backs java.util.HashMap. Keys are bucketed by hashCode and
// compared with equals, so user classes overriding both work as keys.
type hashMap struct {
	buckets map[int32][]*mapEntry
	size    int
}

type mapEntry struct {
	key, value Value
}

func (t *Thread) keyHash(key Value) (int32, error) {
	if key.IsNull() {
		return 0, nil
	}
	h, err := t.InvokeVirtual(key.Ref, "hashCode", "()I")
	return h.Int, err
}

func (t *Thread) keyEqual(a, b Value) (bool, error) {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull(), nil
	}
	if a.Ref == b.Ref {
		return true, nil
	}
	eq, err := t.InvokeVirtual(a.Ref, "equals", "(Ljava/lang/Object;)Z", b)
	return eq.Int != 0, err
}

// find returns the bucket hash and the position of key in it, or -1.
func (t *Thread) find(m *hashMap, key Value) (int32, int, error) {
	h, err := t.keyHash(key)
	if err != nil {
		return 0, -1, err
	}
	for i, e := range m.buckets[h] {
		eq, err := t.keyEqual(key, e.key)
		if err != nil {
			return 0, -1, err
		}
		if eq {
			return h, i, nil
		}
	}
	return h, -1, nil
}

func (m *hashMap) entries() []*mapEntry {
	var out []*mapEntry
	for _, b := range m.buckets {
		out = append(out, b...)
	}
	return out
}

func collectionClasses() []ClassDef {
	table := func(o *Object) *hashMap {
		m, ok := o.Native.(*hashMap)
		if !ok {
			m = &hashMap{buckets: make(map[int32][]*mapEntry)}
			o.Native = m
		}
		return m
	}
	abstract := func(name, desc string) MethodDef { return MethodDef{Name: name, Descriptor: desc} }
	return []ClassDef{
		{
			Name:  "java/util/Map",
			Flags: classfile.AccInterface | classfile.AccAbstract,
			Methods: []MethodDef{
				abstract("put", "(Ljava/lang/Object;Ljava/lang/Object;)Ljava/lang/Object;"),
				abstract("get", "(Ljava/lang/Object;)Ljava/lang/Object;"),
				abstract("containsKey", "(Ljava/lang/Object;)Z"),
				abstract("remove", "(Ljava/lang/Object;)Ljava/lang/Object;"),
				abstract("size", "()I"),
				abstract("isEmpty", "()Z"),
				abstract("clear", "()V"),
			},
		},
		{
			Name:       "java/util/HashMap",
			Super:      "java/lang/Object",
			Interfaces: []string{"java/util/Map", "java/lang/Cloneable", "java/io/Serializable"},
			Methods: []MethodDef{
				method("<init>", "()V", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					table(this)
					return Value{}, nil
				}),
				method("put", "(Ljava/lang/Object;Ljava/lang/Object;)Ljava/lang/Object;", func(t *Thread, this *Object, args []Value) (Value, error) {
					m := table(this)
					h, i, err := t.find(m, args[0])
					if err != nil {
						return Value{}, err
					}
					if i >= 0 {
						old := m.buckets[h][i].value
						m.buckets[h][i].value = args[1]
						return old, nil
					}
					m.buckets[h] = append(m.buckets[h], &mapEntry{key: args[0], value: args[1]})
					m.size++
					return NullValue(), nil
				}),
				method("get", "(Ljava/lang/Object;)Ljava/lang/Object;", func(t *Thread, this *Object, args []Value) (Value, error) {
					m := table(this)
					h, i, err := t.find(m, args[0])
					if err != nil || i < 0 {
						return NullValue(), err
					}
					return m.buckets[h][i].value, nil
				}),
				method("containsKey", "(Ljava/lang/Object;)Z", func(t *Thread, this *Object, args []Value) (Value, error) {
					_, i, err := t.find(table(this), args[0])
					return BoolValue(i >= 0), err
				}),
				method("remove", "(Ljava/lang/Object;)Ljava/lang/Object;", func(t *Thread, this *Object, args []Value) (Value, error) {
					m := table(this)
					h, i, err := t.find(m, args[0])
					if err != nil || i < 0 {
						return NullValue(), err
					}
					old := m.buckets[h][i].value
					m.buckets[h] = append(m.buckets[h][:i], m.buckets[h][i+1:]...)
					if len(m.buckets[h]) == 0 {
						delete(m.buckets, h)
					}
					m.size--
					return old, nil
				}),
				method("size", "()I", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					return IntValue(int32(table(this).size)), nil
				}),
				method("isEmpty", "()Z", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					return BoolValue(table(this).size == 0), nil
				}),
				method("clear", "()V", func(_ *Thread, this *Object, _ []Value) (Value, error) {
					m := table(this)
					m.buckets = make(map[int32][]*mapEntry)
					m.size = 0
					return Value{}, nil
				}),
				method("toString", "()Ljava/lang/String;", func(t *Thread, this *Object, _ []Value) (Value, error) {
					var parts []string
					for _, e := range table(this).entries() {
						k, err := t.ToString(e.key.Ref)
						if err != nil {
							return Value{}, err
						}
						v, err := t.ToString(e.value.Ref)
						if err != nil {
							return Value{}, err
						}
						parts = append(parts, k+"="+v)
					}
					return RefValue(t.rt.NewString("{" + strings.Join(parts, ", ") + "}")), nil
				}),
			},
		},
	}
}
