package v15

import (
	"encoding/xml"
	"strconv"

	"github.com/andaru/collada/colerr"
	"github.com/andaru/collada/schema"
)

// textChild is a rule for an optional text leaf child stored through
// a presence pointer. A present but empty child stores the empty
// string.
func textChild(name string, dst **string) schema.Child {
	return schema.Rule(name, schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
		text, _, err := schema.OptionalTextElement(sc, name, start)
		if err != nil {
			return err
		}
		*dst = &text
		return nil
	})
}

// parseFloat decodes one floating point value from element text.
func parseFloat(sc *schema.Scanner, element, text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, colerr.Float(sc.Pos(), element, err)
	}
	return v, nil
}

// parseFloatElement decodes a leaf element with no attributes holding
// one floating point value.
func parseFloatElement(sc *schema.Scanner, element string, start xml.StartElement) (float64, error) {
	if err := schema.NoAttrs(sc, element, start); err != nil {
		return 0, err
	}
	text, err := schema.RequiredText(sc, element)
	if err != nil {
		return 0, err
	}
	return parseFloat(sc, element, text)
}
