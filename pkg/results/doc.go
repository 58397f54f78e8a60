// Package results aggregates the violations reported during a single
// validation run.
//
// The Store indexes each reported Error by two independent keys — the
// failure reason, and the owner plus property name — while preserving
// insertion order, and answers cheap emptiness and membership queries.
// The reporting layer consumes the index views to materialize public
// violation result objects.
package results
