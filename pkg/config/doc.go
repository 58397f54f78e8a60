// Package config binds the external override-configuration document.
//
// The document is YAML, listing per-class override entries: a class-wide
// default flag, an explicit class-level flag, and explicit flags per
// field, getter, method parameter, return value and cross-parameter
// group. Loading follows the load/validate split: LoadConfig reads and
// parses the file, Validate collects every schema violation into a
// ValidationError, and Apply drives the six ignore.Registry setters.
//
// A minimal document:
//
//	beans:
//	  - class: com.acme.Customer
//	    ignore-annotations: true
//	    fields:
//	      - name: email
//	        ignore-annotations: false
//	    methods:
//	      - name: placeOrder
//	        parameters:
//	          - index: 0
//	        return-value:
//	          ignore-annotations: true
//
// The document is read once at startup; the resulting registry is frozen
// before validation runs begin.
package config
