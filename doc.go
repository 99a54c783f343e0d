/*
Package collada parses COLLADA 3D asset interchange documents.

COLLADA is an XML schema for exchanging scenes, geometry and related
assets between 3D authoring tools. This package reads a document,
detects its schema version from the root element and returns a typed
document tree, leaving vendor extension payloads available as raw XML
for the caller to interpret.

Versions 1.4.0, 1.4.1 and 1.5.0 are supported. The 1.4 versions are
handled identically. Version 1.5 is not compatible with 1.4, so the
two generations are decoded by separate packages with separate types:
v14 for 1.4 documents and v15 for 1.5 documents. Use Parse in this
package when the document version is not known in advance, or the
version package's Parse when it is.

Documents are validated against the schema's sequence grammar as they
are decoded. Any structural violation stops the parse and is reported
as a *colerr.Error carrying the document position, the condition kind
and its context; see the colerr sub-directory for the conditions
reported.
*/
package collada
