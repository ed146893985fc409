package jni

// Enum reads the constants of a Java enum class.
type Enum struct {
	class *Class
	sig   string
}

// NewEnum looks up an enum class by its slash-separated name.
func NewEnum(name string) (*Enum, error) {
	c, err := FindClass(name)
	if err != nil {
		return nil, err
	}
	return &Enum{class: c, sig: "L" + name + ";"}, nil
}

// Class returns the enum's class. It is owned by e.
func (e *Enum) Class() *Class { return e.class }

// Get returns the constant with the given name.
func (e *Enum) Get(constant string) (*Object, error) {
	f, err := e.class.StaticField(constant, e.sig)
	if err != nil {
		return nil, err
	}
	return GetStaticField[*Object](e.class, f)
}

// Release drops the class reference.
func (e *Enum) Release() error { return e.class.Release() }
