package results

import "github.com/google/uuid"

// Error is one reported violation: a reason classifying the failure, the
// owner instance the violation is attributed to, and the property the
// violation occurred at. Owner and PropertyName are optional; Reason is
// set by every well-formed report but the store tolerates its absence.
type Error struct {
	// Reason classifies why the violation occurred, typically a
	// failed-constraint category such as "MANDATORY".
	Reason string

	// Owner is an opaque reference to the object the violation is
	// attributed to, or nil.
	Owner any

	// PropertyName is the property the violation occurred at, or empty.
	PropertyName string
}

// Observer is notified for every error added to a Store. It exists for
// diagnosability and has no effect on the stored data.
type Observer interface {
	ViolationRecorded(reason string)
}

// Option configures a Store.
type Option func(*Store)

// WithObserver attaches an observer to the store.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

// Store aggregates the violations reported during one validation run.
//
// Errors are indexed twice, independently: by reason (when the reason is
// present) and by owner and property name (when the owner is present).
// Both indices preserve insertion order. The indices are allocated
// lazily on the first AddError so that error-free runs cost nothing.
//
// A Store belongs to a single validation run and is not safe for
// concurrent use.
type Store struct {
	runID    uuid.UUID
	observer Observer

	byReason    map[string][]*Error
	reasonOrder []string

	byOwner    map[any]map[string][]*Error
	ownerOrder []any
}

// NewStore creates an empty store for one validation run.
func NewStore(opts ...Option) *Store {
	s := &Store{runID: uuid.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunID returns the identifier of the validation run this store belongs
// to, for correlating reports and log output.
func (s *Store) RunID() uuid.UUID { return s.runID }

// AddError records a violation. The error enters the reason index iff
// reason is non-empty and the owner index iff owner is non-nil; an error
// may therefore appear in only one of the two indices.
func (s *Store) AddError(reason string, owner any, propertyName string) {
	if s.byReason == nil {
		s.initialize()
	}
	err := &Error{Reason: reason, Owner: owner, PropertyName: propertyName}
	s.addToReasonBucket(err)
	s.addToOwnerBucket(err)
	if s.observer != nil {
		s.observer.ViolationRecorded(reason)
	}
}

// initialize allocates the index maps. Deferred to the first AddError so
// an error-free run allocates nothing.
func (s *Store) initialize() {
	s.byReason = make(map[string][]*Error)
	s.byOwner = make(map[any]map[string][]*Error)
}

func (s *Store) addToReasonBucket(err *Error) {
	if err.Reason == "" {
		return
	}
	if _, ok := s.byReason[err.Reason]; !ok {
		s.reasonOrder = append(s.reasonOrder, err.Reason)
	}
	s.byReason[err.Reason] = append(s.byReason[err.Reason], err)
}

func (s *Store) addToOwnerBucket(err *Error) {
	if err.Owner == nil {
		return
	}
	byProperty, ok := s.byOwner[err.Owner]
	if !ok {
		byProperty = make(map[string][]*Error)
		s.byOwner[err.Owner] = byProperty
		s.ownerOrder = append(s.ownerOrder, err.Owner)
	}
	byProperty[err.PropertyName] = append(byProperty[err.PropertyName], err)
}

// IsEmpty reports whether the store holds no errors: true when nothing
// was ever added, or when every list in both indices is empty. Both
// indices are checked because an error may exist in only one of them.
func (s *Store) IsEmpty() bool {
	if s.byReason == nil {
		return true
	}
	for _, errs := range s.byReason {
		if len(errs) > 0 {
			return false
		}
	}
	for _, byProperty := range s.byOwner {
		for _, errs := range byProperty {
			if len(errs) > 0 {
				return false
			}
		}
	}
	return true
}

// HasErrorForReason reports whether at least one error was recorded with
// the given reason.
func (s *Store) HasErrorForReason(reason string) bool {
	return len(s.byReason[reason]) > 0
}

// HasError reports whether the owner has any recorded error. When
// propertyName is empty every property of the owner is checked;
// otherwise only that property.
func (s *Store) HasError(owner any, propertyName string) bool {
	byProperty, ok := s.byOwner[owner]
	if !ok {
		return false
	}
	if propertyName == "" {
		for _, errs := range byProperty {
			if len(errs) > 0 {
				return true
			}
		}
		return false
	}
	return len(byProperty[propertyName]) > 0
}

// ErrorsByReason returns the reason index: reason to errors in insertion
// order. The returned map is a read-only view; callers must not modify
// it.
func (s *Store) ErrorsByReason() map[string][]*Error {
	if s.byReason == nil {
		return map[string][]*Error{}
	}
	return s.byReason
}

// ErrorsByOwner returns the owner index: owner to property name to
// errors in insertion order. The returned map is a read-only view;
// callers must not modify it.
func (s *Store) ErrorsByOwner() map[any]map[string][]*Error {
	if s.byOwner == nil {
		return map[any]map[string][]*Error{}
	}
	return s.byOwner
}

// Reasons returns the distinct reasons in first-seen order.
func (s *Store) Reasons() []string { return s.reasonOrder }

// Owners returns the distinct owners in first-seen order.
func (s *Store) Owners() []any { return s.ownerOrder }
