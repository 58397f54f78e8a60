package ignore

import (
	"io"
	"log/slog"
)

// Observer is notified whenever a registry query resolves to "ignore".
// It exists for diagnosability (metrics, tracing) and has no effect on
// the returned decision.
type Observer interface {
	// IgnoreResolved is called with the scope of the query ("class",
	// "member", "parameter", "return" or "cross-parameter") and a
	// human-readable description of the target.
	IgnoreResolved(scope, target string)
}

// Option configures a Registry.
type Option func(*Registry)

// WithObserver attaches an observer to the registry.
func WithObserver(o Observer) Option {
	return func(r *Registry) { r.observer = o }
}

// Registry records which declaratively attached constraints are
// suppressed in favor of externally configured ones.
//
// The registry is populated once, during the single-threaded
// configuration-load phase, through the Set methods, then published via
// Freeze. After publication it is logically immutable and may be read
// from any number of concurrent validation runs without locking. Calling
// a Set method on a frozen registry is a programming error and panics.
//
// Resolution precedence: explicit member and class flags fall back to the
// declaring class's default flag, while parameter, return-value and
// cross-parameter flags do not — those are leaf opt-outs that only take
// effect when the configuration addresses that exact slot.
type Registry struct {
	logger   *slog.Logger
	observer Observer
	frozen   bool

	// defaults holds the per-class "ignore-annotations" default flag
	// from the configuration's bean element.
	defaults map[string]bool

	classes     map[string]bool
	members     map[Member]bool
	parameters  map[parameterKey]bool
	returns     map[Member]bool
	crossParams map[Member]bool
}

// NewRegistry creates an empty registry. The logger is used for the
// diagnostic message emitted when a query resolves to "ignore"; a nil
// logger disables that output.
func NewRegistry(logger *slog.Logger, opts ...Option) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Registry{
		logger:      logger,
		defaults:    make(map[string]bool),
		classes:     make(map[string]bool),
		members:     make(map[Member]bool),
		parameters:  make(map[parameterKey]bool),
		returns:     make(map[Member]bool),
		crossParams: make(map[Member]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Freeze publishes the registry. Set methods panic afterwards.
func (r *Registry) Freeze() { r.frozen = true }

func (r *Registry) mutable() {
	if r.frozen {
		panic("ignore: registry mutated after publication")
	}
}

// SetDefaultIgnore records the class-wide default flag. A nil value
// means the configuration named the class without an explicit flag and
// is treated as true.
func (r *Registry) SetDefaultIgnore(class string, b *bool) {
	r.mutable()
	if b == nil {
		r.defaults[class] = true
		return
	}
	r.defaults[class] = *b
}

// SetClassIgnore records the explicit class-level flag.
func (r *Registry) SetClassIgnore(class string, b bool) {
	r.mutable()
	r.classes[class] = b
}

// SetMemberIgnore records the explicit flag for a field or property.
func (r *Registry) SetMemberIgnore(m Member, b bool) {
	r.mutable()
	r.members[m] = b
}

// SetParameterIgnore records the explicit flag for one parameter slot of
// a method or constructor.
func (r *Registry) SetParameterIgnore(m Member, index int, b bool) {
	r.mutable()
	r.parameters[parameterKey{member: m, index: index}] = b
}

// SetReturnIgnore records the explicit flag for a method return value.
func (r *Registry) SetReturnIgnore(m Member, b bool) {
	r.mutable()
	r.returns[m] = b
}

// SetCrossParameterIgnore records the explicit flag for a method's
// cross-parameter constraint group.
func (r *Registry) SetCrossParameterIgnore(m Member, b bool) {
	r.mutable()
	r.crossParams[m] = b
}

// IsDefaultIgnore returns the class-wide default flag, false if the
// class was never configured.
func (r *Registry) IsDefaultIgnore(class string) bool {
	return r.defaults[class]
}

// IsIgnoreOnClass resolves the class-level decision: the explicit class
// flag if set, else the class default.
func (r *Registry) IsIgnoreOnClass(class string) bool {
	result, ok := r.classes[class]
	if !ok {
		result = r.IsDefaultIgnore(class)
	}
	if result {
		r.resolved("class", class)
	}
	return result
}

// IsIgnoreOnMember resolves the decision for a field or property: the
// explicit member flag if set, else the declaring class's default.
func (r *Registry) IsIgnoreOnMember(m Member) bool {
	result, ok := r.members[m]
	if !ok {
		result = r.IsDefaultIgnore(m.Class)
	}
	if result {
		r.resolved("member", m.String())
	}
	return result
}

// IsIgnoreOnParameter resolves the decision for one parameter slot.
// There is no fallback to the class default: the flag must address this
// exact slot.
func (r *Registry) IsIgnoreOnParameter(m Member, index int) bool {
	if r.parameters[parameterKey{member: m, index: index}] {
		r.resolved("parameter", m.String())
		return true
	}
	return false
}

// IsIgnoreOnReturn resolves the decision for a method return value.
// There is no fallback to the class default.
func (r *Registry) IsIgnoreOnReturn(m Member) bool {
	if r.returns[m] {
		r.resolved("return", m.String())
		return true
	}
	return false
}

// IsIgnoreOnCrossParameter resolves the decision for a method's
// cross-parameter constraint group. There is no fallback to the class
// default.
func (r *Registry) IsIgnoreOnCrossParameter(m Member) bool {
	if r.crossParams[m] {
		r.resolved("cross-parameter", m.String())
		return true
	}
	return false
}

func (r *Registry) resolved(scope, target string) {
	r.logger.Debug("declared constraints ignored", "scope", scope, "target", target)
	if r.observer != nil {
		r.observer.IgnoreResolved(scope, target)
	}
}
