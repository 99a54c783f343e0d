package schema

import (
	"encoding/xml"

	"github.com/pkg/errors"

	"github.com/andaru/collada/colerr"
)

// Occurs describes how many times a child rule may match.
type Occurs int

const (
	// Optional matches zero or one time.
	Optional Occurs = iota
	// OptionalWithDefault matches zero or one time. The owning entity
	// applies its declared default when the rule never matches; the
	// engine treats the rule exactly as Optional.
	OptionalWithDefault
	// Required matches exactly once.
	Required
	// Many matches zero or more times.
	Many
	// RequiredMany matches one or more times.
	RequiredMany
)

// NameTest reports whether a child element name satisfies a rule.
type NameTest func(name string) bool

// Name returns a NameTest matching exactly name.
func Name(name string) NameTest {
	return func(n string) bool { return n == name }
}

// AddName returns a Names func appending the given names.
func AddName(names ...string) func([]string) []string {
	return func(out []string) []string { return append(out, names...) }
}

// Child is one rule in an element's ordered content model.
type Child struct {
	// Match tests a child element's local name against the rule.
	Match NameTest
	// Occurs is the rule's cardinality.
	Occurs Occurs
	// Parse consumes a matched child. The child's start token has
	// already been taken; Parse must consume through its end token.
	Parse func(sc *Scanner, start xml.StartElement) error
	// Names appends every element name the rule accepts, for
	// diagnostics.
	Names func(names []string) []string
}

// Rule returns a Child matching a single element name.
func Rule(name string, occurs Occurs, parse func(sc *Scanner, start xml.StartElement) error) Child {
	return Child{Match: Name(name), Occurs: occurs, Parse: parse, Names: AddName(name)}
}

// Element is the content model of one element: an ordered child rule
// sequence, or a text handler. The two are mutually exclusive.
type Element struct {
	Name     string
	Children []Child
	// Text consumes the element's required text data. Set only for
	// text leaf elements, which admit no child rules.
	Text func(sc *Scanner, text string) error
}

// Parse consumes the element's content from just after its start token
// through its end token, dispatching child rules in declared order
// with a cursor that only moves forward.
func (e *Element) Parse(sc *Scanner) error {
	if e.Text != nil {
		if len(e.Children) > 0 {
			panic(errors.Errorf("element <%s> declares both child rules and a text handler", e.Name))
		}
		return e.parseText(sc)
	}
	parentPos := sc.Pos()
	cursor := 0
	matched := false // the rule at the cursor matched at least once
	for {
		tok, err := sc.Token()
		if err != nil {
			return colerr.XML(sc.Pos(), err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			next := cursor
			for next < len(e.Children) && !e.Children[next].Match(name) {
				next++
			}
			if next == len(e.Children) {
				return colerr.UnexpectedElement(sc.Pos(), e.Name, name, e.names(cursor, len(e.Children)))
			}
			if i := e.unsatisfied(cursor, next, matched); i >= 0 {
				return colerr.MissingElement(parentPos, e.Name, e.Children[i].Names(nil))
			}
			if next != cursor {
				cursor, matched = next, false
			}
			rule := &e.Children[cursor]
			if err := rule.Parse(sc, t); err != nil {
				return err
			}
			switch rule.Occurs {
			case Many, RequiredMany:
				matched = true
			default:
				cursor, matched = cursor+1, false
			}
		case xml.CharData:
			return colerr.UnexpectedCharacterData(sc.Pos(), e.Name, string(t))
		case xml.EndElement:
			if i := e.unsatisfied(cursor, len(e.Children), matched); i >= 0 {
				return colerr.MissingElement(parentPos, e.Name, e.Children[i].Names(nil))
			}
			return nil
		}
	}
}

// parseText consumes a text leaf: one character data run, then the end
// token. Closing with no text is a MissingValue error.
func (e *Element) parseText(sc *Scanner) error {
	tok, err := sc.Token()
	if err != nil {
		return colerr.XML(sc.Pos(), err)
	}
	switch t := tok.(type) {
	case xml.CharData:
		if err := e.Text(sc, string(t)); err != nil {
			return err
		}
		return End(sc, e.Name)
	case xml.StartElement:
		return colerr.UnexpectedElement(sc.Pos(), e.Name, t.Name.Local, nil)
	case xml.EndElement:
		return colerr.MissingValue(sc.Pos(), e.Name)
	}
	return nil
}

// unsatisfied returns the index of the first rule in [from, to) that
// cannot be passed over: a Required rule, or a RequiredMany rule that
// has not matched. matched reports whether the rule at index from has
// matched at least once.
func (e *Element) unsatisfied(from, to int, matched bool) int {
	for i := from; i < to; i++ {
		switch e.Children[i].Occurs {
		case Required:
			return i
		case RequiredMany:
			if i == from && matched {
				continue
			}
			return i
		}
	}
	return -1
}

// names collects the name sets of the rules in [from, to).
func (e *Element) names(from, to int) []string {
	var out []string
	for i := from; i < to; i++ {
		out = e.Children[i].Names(out)
	}
	return out
}

// DocumentStart consumes the document prolog and returns the root
// element's start token.
func DocumentStart(sc *Scanner) (xml.StartElement, error) {
	tok, err := sc.Token()
	if err != nil {
		return xml.StartElement{}, colerr.XML(sc.Pos(), err)
	}
	switch t := tok.(type) {
	case xml.StartElement:
		return t, nil
	case xml.CharData:
		return xml.StartElement{}, colerr.XML(sc.Pos(), errors.New("character data before the root element"))
	default:
		return xml.StartElement{}, colerr.XML(sc.Pos(), errors.Errorf("unexpected %T before the root element", tok))
	}
}

// RequiredText reads element's text data and end token. An element
// closing with no text is a MissingValue error.
func RequiredText(sc *Scanner, element string) (string, error) {
	text, ok, err := OptionalText(sc, element)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", colerr.MissingValue(sc.Pos(), element)
	}
	return text, nil
}

// OptionalText reads element's text data, if any, and its end token.
// ok reports whether text was present.
func OptionalText(sc *Scanner, element string) (text string, ok bool, err error) {
	tok, err := sc.Token()
	if err != nil {
		return "", false, colerr.XML(sc.Pos(), err)
	}
	switch t := tok.(type) {
	case xml.CharData:
		return string(t), true, End(sc, element)
	case xml.EndElement:
		return "", false, nil
	case xml.StartElement:
		return "", false, colerr.UnexpectedElement(sc.Pos(), element, t.Name.Local, nil)
	}
	return "", false, nil
}

// OptionalTextElement parses an element with no attributes whose text
// content may be absent, consuming through its end token. ok reports
// whether text was present.
func OptionalTextElement(sc *Scanner, element string, start xml.StartElement) (text string, ok bool, err error) {
	if err := NoAttrs(sc, element, start); err != nil {
		return "", false, err
	}
	return OptionalText(sc, element)
}

// End consumes element's end token, which must be the next token.
func End(sc *Scanner, element string) error {
	tok, err := sc.Token()
	if err != nil {
		return colerr.XML(sc.Pos(), err)
	}
	switch t := tok.(type) {
	case xml.StartElement:
		return colerr.UnexpectedElement(sc.Pos(), element, t.Name.Local, nil)
	case xml.CharData:
		return colerr.UnexpectedCharacterData(sc.Pos(), element, string(t))
	}
	return nil
}

// Skip consumes element's entire subtree without interpreting it. The
// walk tracks nested elements of the same name and stops at the
// matching end token.
func Skip(sc *Scanner, element string) error {
	depth := 0
	for {
		tok, err := sc.Token()
		if err != nil {
			return colerr.XML(sc.Pos(), err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == element {
				depth++
			}
		case xml.EndElement:
			if t.Name.Local == element {
				if depth == 0 {
					return nil
				}
				depth--
			}
		}
	}
}

// Capture consumes element's subtree like Skip but returns the raw
// token run, element's own start and end tokens excluded. Captured
// tokens are safe to retain.
func Capture(sc *Scanner, element string) ([]xml.Token, error) {
	var run []xml.Token
	depth := 0
	for {
		tok, err := sc.Token()
		if err != nil {
			return nil, colerr.XML(sc.Pos(), err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == element {
				depth++
			}
		case xml.EndElement:
			if t.Name.Local == element {
				if depth == 0 {
					return run, nil
				}
				depth--
			}
		}
		run = append(run, xml.CopyToken(tok))
	}
}
