// Package ignore resolves whether declaratively attached (annotation
// style) constraints are suppressed in favor of externally configured
// ones.
//
// The Registry holds, per declaring class, a default flag plus explicit
// flags per class, per member, per (method, parameter index), per method
// return value and per method cross-parameter group. It is populated
// once at startup from the external configuration (see pkg/config),
// frozen, and then read without locking by concurrent validation runs.
//
// # Precedence
//
// Member- and class-level queries fall back to the declaring class's
// default flag when no explicit flag is set. Parameter, return-value and
// cross-parameter queries do not: those are leaf opt-outs that only take
// effect when the configuration addresses the exact slot, and must not
// inherit a coarser class default meant for field-level annotations.
package ignore
