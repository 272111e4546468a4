// Package manifest reads YAML batch manifests describing groups of reference
// codes and generates them with a reference.Generator.
//
// A manifest lists named entries, each with a kind, a suffix length, an
// optional prefix and a count:
//
//	references:
//	  - name: invoices
//	    kind: alphanumeric
//	    length: 10
//	    prefix: INV-
//	    count: 5
//	  - name: sessions
//	    kind: guid
//
// Kinds accept the same names as reference.ParseKind. Count defaults to 1.
// Length is required for every kind except guid.
package manifest
