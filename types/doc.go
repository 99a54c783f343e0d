// Package types holds the document value types shared by both COLLADA
// schema generations: URIs and fragment references, timestamps, scene
// units and axes, and the vendor extension technique block with its
// XPath query surface.
package types
