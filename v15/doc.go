// Package v15 parses COLLADA 1.5.0 documents into typed document
// trees.
//
// The entry points are Parse, ParseString and ParseRoot. Coverage is
// narrower than package v14: the asset block is decoded in full,
// including the geographic coverage elements 1.5.0 introduced, while
// every library kind is consumed and recorded as an empty marker
// value. Vendor extension content is retained as raw XML token runs
// on types.Technique.
//
// Optional attributes and children are pointer fields, nil when
// absent.
package v15
