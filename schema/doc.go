// Package schema provides the COLLADA element grammar engine and the
// token scanner it consumes.
//
// An element's content model is described by an Element value: an
// ordered sequence of Child rules, or a text handler for leaf
// elements. Each call to Element.Parse consumes XML tokens from a
// Scanner, matching child start elements against the rule sequence
// with a cursor that only moves forward. Depending on the XML token
// type received the following occurs;
//
//	xml.StartElement
//	    The rules from the cursor onward are scanned for a name
//	    match. Passing over a Required rule (or a RequiredMany rule
//	    that has not matched) raises MissingElement at the parent's
//	    start position; a token matching no remaining rule raises
//	    UnexpectedElement naming everything still acceptable. A
//	    match runs the rule's Parse func, which consumes the child
//	    through its end token.
//
//	xml.CharData
//	    Raises UnexpectedCharacterData: elements with child rules
//	    admit no text. Text leaf elements use the Element.Text
//	    handler instead, which consumes exactly one text run.
//
//	xml.EndElement
//	    Ends the element. Any remaining Required rule, or a
//	    RequiredMany rule that never matched, raises MissingElement
//	    at the parent's start position.
//
// Attribute validation is a separate, earlier step: Attrs checks a
// start element's attributes against a closed rule set immediately
// after the start token is taken, before any content is examined.
//
// The engine has no knowledge of any particular COLLADA element; the
// version packages supply the rule tables.
package schema
