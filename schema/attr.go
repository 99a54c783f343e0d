package schema

import (
	"encoding/xml"

	"github.com/andaru/collada/colerr"
)

// Attr is one attribute rule: the attribute's name, whether it must
// appear, and the decoder invoked with its value.
type Attr struct {
	Name     string
	Required bool
	// Set decodes and assigns the attribute value. Conversion
	// failures must be returned with position and element context
	// already attached.
	Set func(value string) error
}

// Attrs validates start's attributes against rules, immediately after
// the start token is taken and before any content is examined. An
// attribute outside the rule set raises UnexpectedAttribute naming
// every allowed attribute; a Required rule never seen raises
// MissingAttribute. Namespace declarations are ignored unless a rule
// names xmlns explicitly.
func Attrs(sc *Scanner, element string, start xml.StartElement, rules ...Attr) error {
	seen := make(map[string]bool, len(rules))
	for _, attr := range start.Attr {
		if attr.Name.Space == "xmlns" {
			continue
		}
		if attr.Name.Space != "" {
			return colerr.UnexpectedAttribute(sc.Pos(), element, attr.Name.Local, attrNames(rules))
		}
		i := attrIndex(rules, attr.Name.Local)
		if i < 0 {
			if attr.Name.Local == "xmlns" {
				continue
			}
			return colerr.UnexpectedAttribute(sc.Pos(), element, attr.Name.Local, attrNames(rules))
		}
		seen[attr.Name.Local] = true
		if rules[i].Set != nil {
			if err := rules[i].Set(attr.Value); err != nil {
				return err
			}
		}
	}
	for _, rule := range rules {
		if rule.Required && !seen[rule.Name] {
			return colerr.MissingAttribute(sc.Pos(), element, rule.Name)
		}
	}
	return nil
}

// NoAttrs validates that start carries no attributes.
func NoAttrs(sc *Scanner, element string, start xml.StartElement) error {
	return Attrs(sc, element, start)
}

// SetString returns an attribute Set func assigning the raw value.
func SetString(dst *string) func(string) error {
	return func(v string) error {
		*dst = v
		return nil
	}
}

// SetOptional returns an attribute Set func assigning the raw value
// through a presence pointer.
func SetOptional(dst **string) func(string) error {
	return func(v string) error {
		s := v
		*dst = &s
		return nil
	}
}

func attrIndex(rules []Attr, name string) int {
	for i, rule := range rules {
		if rule.Name == name {
			return i
		}
	}
	return -1
}

func attrNames(rules []Attr) []string {
	if len(rules) == 0 {
		return nil
	}
	names := make([]string, len(rules))
	for i, rule := range rules {
		names[i] = rule.Name
	}
	return names
}
