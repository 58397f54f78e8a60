package ignore

import "strings"

// Member identifies a field, property, method or constructor of a class.
// It is a comparable composite key: the declaring class, the member name,
// and for methods and constructors an optional signature used to tell
// overloads apart.
type Member struct {
	// Class is the fully qualified name of the declaring class.
	Class string

	// Name is the member name. Constructors use the simple class name.
	Name string

	// Signature is the comma-joined parameter type list, or empty when
	// the member is a field/property or the configuration does not
	// disambiguate overloads.
	Signature string
}

// MethodMember builds a Member for a method or constructor with the given
// parameter type descriptors.
func MethodMember(class, name string, paramTypes []string) Member {
	return Member{Class: class, Name: name, Signature: strings.Join(paramTypes, ",")}
}

// String returns "class#name" or "class#name(signature)".
func (m Member) String() string {
	if m.Signature == "" {
		return m.Class + "#" + m.Name
	}
	return m.Class + "#" + m.Name + "(" + m.Signature + ")"
}

// parameterKey identifies one parameter slot of a method or constructor.
type parameterKey struct {
	member Member
	index  int
}
