// Package v14 parses COLLADA 1.4.0 and 1.4.1 documents into typed
// document trees.
//
// The entry points are Parse, ParseString and ParseRoot. A parsed
// Collada mirrors the element structure of the document one-to-one:
// recognized elements become structs with their fields in schema
// order, vendor extension content is retained as raw XML token runs
// on types.Technique, and element kinds this package does not
// interpret are consumed and recorded as empty marker values.
//
// Optional attributes and children are pointer fields, nil when
// absent. Fields the schema declares optional-with-default (the
// asset's unit and up axis, a float array's digits and magnitude, an
// accessor's offset and stride) hold their default when the document
// omits them.
package v14
