package config

// Config is the root of the override-configuration document. It lists,
// per validated class, which declaratively attached constraints are
// suppressed in favor of externally configured ones.
//
// Only the fields feeding override resolution are modeled here; the
// wider configuration document (constraint definitions, message
// interpolation, ...) is out of scope.
type Config struct {
	// Beans lists the per-class override entries.
	Beans []BeanConfig `yaml:"beans"`
}

// BeanConfig carries the override flags for one class.
type BeanConfig struct {
	// Class is the fully qualified name of the configured class.
	Class string `yaml:"class"`

	// IgnoreAnnotations is the class-wide default flag. Naming the
	// class without an explicit value means true.
	IgnoreAnnotations *bool `yaml:"ignore-annotations"`

	// ClassLevel carries the explicit class-level flag, overriding the
	// default for class-level constraints.
	ClassLevel *ElementConfig `yaml:"class-level"`

	// Fields and Getters carry explicit per-member flags.
	Fields  []MemberConfig `yaml:"fields"`
	Getters []MemberConfig `yaml:"getters"`

	// Methods and Constructors carry explicit flags per parameter,
	// return value and cross-parameter group.
	Methods      []MethodConfig `yaml:"methods"`
	Constructors []MethodConfig `yaml:"constructors"`
}

// MemberConfig carries the explicit flag for a field or getter.
type MemberConfig struct {
	// Name is the field or property name.
	Name string `yaml:"name"`

	// IgnoreAnnotations is the explicit member flag. Naming the member
	// without an explicit value means true.
	IgnoreAnnotations *bool `yaml:"ignore-annotations"`
}

// MethodConfig carries the override flags for a method or constructor.
type MethodConfig struct {
	// Name is the method name. Constructor entries may leave it empty;
	// the simple class name is used.
	Name string `yaml:"name"`

	// ParameterTypes disambiguates overloads. Optional.
	ParameterTypes []string `yaml:"parameter-types"`

	// Parameters carries explicit per-slot flags.
	Parameters []ParameterConfig `yaml:"parameters"`

	// ReturnValue carries the explicit return-value flag.
	ReturnValue *ElementConfig `yaml:"return-value"`

	// CrossParameter carries the explicit cross-parameter flag.
	CrossParameter *ElementConfig `yaml:"cross-parameter"`
}

// ParameterConfig carries the explicit flag for one parameter slot.
type ParameterConfig struct {
	// Index is the zero-based parameter position.
	Index int `yaml:"index"`

	// IgnoreAnnotations is the explicit flag. Naming the slot without
	// an explicit value means true.
	IgnoreAnnotations *bool `yaml:"ignore-annotations"`
}

// ElementConfig carries an explicit flag for a scope that needs no
// further identification (class level, return value, cross-parameter).
type ElementConfig struct {
	// IgnoreAnnotations is the explicit flag. Naming the scope without
	// an explicit value means true.
	IgnoreAnnotations *bool `yaml:"ignore-annotations"`
}

// flag collapses the "absent means true" convention shared by all
// explicit per-scope entries.
func flag(b *bool) bool {
	return b == nil || *b
}
