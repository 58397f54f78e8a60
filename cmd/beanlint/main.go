// Beanlint ships the core of a declarative object-graph validator: the
// graph-location path model, the override-resolution registry, and the
// violation aggregation store.
//
// Usage:
//
//	# Parse a path expression and print its structure
//	beanlint path parse 'orders[2].amount'
//
//	# Validate an override-configuration document
//	beanlint config validate overrides.yaml
//
//	# Validate and dump the resolved ignore decisions
//	beanlint config validate overrides.yaml --dump
//
//	# Show version information
//	beanlint version
package main

func main() {
	Execute()
}
