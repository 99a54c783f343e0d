// Package colerr defines the error type shared by all layers of the
// COLLADA parser.
//
// Every condition the parser can report is an *Error carrying the
// document position at which it was detected, a Kind discriminating
// the condition, and the per-kind context fields. Kinds that wrap a
// lower level failure (the XML tokenizer, strconv, time, URI fragment
// parsing) retain the underlying error and support errors.Unwrap.
package colerr

import (
	"fmt"
	"strings"
)

// Pos is a location in the source document: 1-based line and column as
// reported by the XML tokenizer immediately after the token that
// raised (or preceded) the condition.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Kind identifies the category of a document error.
type Kind int

const (
	// KindXML is a tokenizer failure passed through unmodified.
	KindXML Kind = iota
	// KindMissingAttribute reports a required attribute that was absent.
	KindMissingAttribute
	// KindUnexpectedAttribute reports an attribute outside the
	// element's allowed set.
	KindUnexpectedAttribute
	// KindMissingElement reports a required child element that never
	// appeared, located at the parent element's start position.
	KindMissingElement
	// KindUnexpectedElement reports a child element that matched no
	// remaining grammar rule of its parent.
	KindUnexpectedElement
	// KindMissingValue reports an element that closed without the text
	// data it requires.
	KindMissingValue
	// KindUnexpectedCharacterData reports text inside an element whose
	// grammar allows only child elements.
	KindUnexpectedCharacterData
	// KindInvalidValue reports a value outside an enumerated set.
	KindInvalidValue
	// KindUnexpectedRootElement reports a document whose root element
	// is not <COLLADA>.
	KindUnexpectedRootElement
	// KindUnsupportedVersion reports a COLLADA version attribute this
	// library does not handle.
	KindUnsupportedVersion
	// KindParseFloat wraps a floating point conversion failure.
	KindParseFloat
	// KindParseInt wraps an integer conversion failure.
	KindParseInt
	// KindTime wraps a timestamp conversion failure.
	KindTime
	// KindURIFragment wraps a URI fragment conversion failure.
	KindURIFragment
)

var kindNames = map[Kind]string{
	KindXML:                     "xml error",
	KindMissingAttribute:        "missing attribute",
	KindUnexpectedAttribute:     "unexpected attribute",
	KindMissingElement:          "missing element",
	KindUnexpectedElement:       "unexpected element",
	KindMissingValue:            "missing value",
	KindUnexpectedCharacterData: "unexpected character data",
	KindInvalidValue:            "invalid value",
	KindUnexpectedRootElement:   "unexpected root element",
	KindUnsupportedVersion:      "unsupported version",
	KindParseFloat:              "parse float error",
	KindParseInt:                "parse int error",
	KindTime:                    "time error",
	KindURIFragment:             "uri fragment error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a COLLADA document error.
type Error struct {
	// Pos is where the condition was detected. For KindMissingElement
	// it is the owning parent's start position, not the position of
	// whichever token ended the parent.
	Pos  Pos
	Kind Kind
	// Element is the element owning the condition. For element grammar
	// errors it names the parent element.
	Element string
	// Name is the offending attribute or child element name, when the
	// Kind concerns one.
	Name string
	// Value is the offending attribute value, version string or
	// character data, when the Kind concerns one.
	Value string
	// Expected lists the names allowed at the point the condition was
	// raised. May be empty.
	Expected []string
	// Err is the underlying error for the wrapping kinds: KindXML,
	// KindParseFloat, KindParseInt, KindTime and KindURIFragment.
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.message()) }

// Unwrap returns the underlying error for wrapping kinds, or nil.
func (e *Error) Unwrap() error { return e.Err }

func (e *Error) message() string {
	switch e.Kind {
	case KindXML, KindParseFloat, KindParseInt, KindTime, KindURIFragment:
		return e.Err.Error()
	case KindMissingAttribute:
		return fmt.Sprintf("<%s> is missing the required attribute %q", e.Element, e.Name)
	case KindUnexpectedAttribute:
		if len(e.Expected) == 0 {
			return fmt.Sprintf("<%s> has an attribute %q that is not allowed; <%s> takes no attributes",
				e.Element, e.Name, e.Element)
		}
		return fmt.Sprintf("<%s> has an attribute %q that is not allowed, only the following attributes are allowed for <%s>: %s",
			e.Element, e.Name, e.Element, strings.Join(e.Expected, ", "))
	case KindMissingElement:
		if len(e.Expected) == 1 {
			return fmt.Sprintf("<%s> is missing a required child element: %s", e.Element, e.Expected[0])
		}
		return fmt.Sprintf("<%s> is missing a required child element (may be one of %s)",
			e.Element, strings.Join(e.Expected, ", "))
	case KindUnexpectedElement:
		if len(e.Expected) == 0 {
			return fmt.Sprintf("<%s> has a child <%s> which is not allowed; no further children were expected",
				e.Element, e.Name)
		}
		return fmt.Sprintf("<%s> has a child <%s> which is not allowed, <%s> may only have the following children: %s",
			e.Element, e.Name, e.Element, strings.Join(e.Expected, ", "))
	case KindMissingValue:
		return fmt.Sprintf("<%s> is missing required text data", e.Element)
	case KindUnexpectedCharacterData:
		return fmt.Sprintf("<%s> contains text data where none is allowed", e.Element)
	case KindInvalidValue:
		return fmt.Sprintf("<%s> contains an invalid value %q", e.Element, e.Value)
	case KindUnexpectedRootElement:
		return fmt.Sprintf("document begins with <%s> instead of <COLLADA>", e.Name)
	case KindUnsupportedVersion:
		return fmt.Sprintf("unsupported COLLADA version %q, supported versions are \"1.4.0\", \"1.4.1\", \"1.5.0\"", e.Value)
	}
	return e.Kind.String()
}

// XML returns a tokenizer failure passed through from the XML decoder.
func XML(pos Pos, err error) *Error {
	return &Error{Pos: pos, Kind: KindXML, Err: err}
}

// MissingAttribute returns an error indicating element lacks the
// required attribute.
func MissingAttribute(pos Pos, element, attribute string) *Error {
	return &Error{Pos: pos, Kind: KindMissingAttribute, Element: element, Name: attribute}
}

// UnexpectedAttribute returns an error indicating element carries
// attribute, which is outside its allowed set. expected lists the
// attributes element does allow and may be empty.
func UnexpectedAttribute(pos Pos, element, attribute string, expected []string) *Error {
	return &Error{Pos: pos, Kind: KindUnexpectedAttribute, Element: element, Name: attribute, Expected: expected}
}

// MissingElement returns an error indicating a required child of
// parent never appeared. expected holds the name set of the missing
// rule; pos is the parent's start position.
func MissingElement(pos Pos, parent string, expected []string) *Error {
	return &Error{Pos: pos, Kind: KindMissingElement, Element: parent, Expected: expected}
}

// UnexpectedElement returns an error indicating child matched no
// remaining grammar rule of parent. expected lists every name still
// acceptable at this point in the parent's grammar.
func UnexpectedElement(pos Pos, parent, child string, expected []string) *Error {
	return &Error{Pos: pos, Kind: KindUnexpectedElement, Element: parent, Name: child, Expected: expected}
}

// MissingValue returns an error indicating element closed without its
// required text data.
func MissingValue(pos Pos, element string) *Error {
	return &Error{Pos: pos, Kind: KindMissingValue, Element: element}
}

// UnexpectedCharacterData returns an error indicating element contains
// text data its grammar does not allow.
func UnexpectedCharacterData(pos Pos, element, data string) *Error {
	return &Error{Pos: pos, Kind: KindUnexpectedCharacterData, Element: element, Value: data}
}

// InvalidValue returns an error indicating value lies outside the
// enumerated set element accepts.
func InvalidValue(pos Pos, element, value string) *Error {
	return &Error{Pos: pos, Kind: KindInvalidValue, Element: element, Value: value}
}

// UnexpectedRootElement returns an error indicating the document's
// root element is named root rather than COLLADA.
func UnexpectedRootElement(pos Pos, root string) *Error {
	return &Error{Pos: pos, Kind: KindUnexpectedRootElement, Name: root}
}

// UnsupportedVersion returns an error indicating the document declares
// a COLLADA version this library does not handle.
func UnsupportedVersion(pos Pos, version string) *Error {
	return &Error{Pos: pos, Kind: KindUnsupportedVersion, Value: version}
}

// Float returns an error wrapping a floating point conversion failure
// inside element.
func Float(pos Pos, element string, err error) *Error {
	return &Error{Pos: pos, Kind: KindParseFloat, Element: element, Err: err}
}

// Int returns an error wrapping an integer conversion failure inside
// element.
func Int(pos Pos, element string, err error) *Error {
	return &Error{Pos: pos, Kind: KindParseInt, Element: element, Err: err}
}

// Time returns an error wrapping a timestamp conversion failure inside
// element.
func Time(pos Pos, element string, err error) *Error {
	return &Error{Pos: pos, Kind: KindTime, Element: element, Err: err}
}

// URIFragment returns an error wrapping a URI fragment conversion
// failure inside element.
func URIFragment(pos Pos, element string, err error) *Error {
	return &Error{Pos: pos, Kind: KindURIFragment, Element: element, Err: err}
}
