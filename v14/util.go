package v14

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/andaru/collada/colerr"
	"github.com/andaru/collada/schema"
	"github.com/andaru/collada/types"
)

// setInt returns an attribute Set func decoding a non-negative
// integer.
func setInt(sc *schema.Scanner, element string, dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.ParseUint(v, 10, 63)
		if err != nil {
			return colerr.Int(sc.Pos(), element, err)
		}
		*dst = int(n)
		return nil
	}
}

// setOptionalInt is setInt through a presence pointer.
func setOptionalInt(sc *schema.Scanner, element string, dst **int) func(string) error {
	return func(v string) error {
		n, err := strconv.ParseUint(v, 10, 63)
		if err != nil {
			return colerr.Int(sc.Pos(), element, err)
		}
		i := int(n)
		*dst = &i
		return nil
	}
}

// setFragment returns an attribute Set func decoding a same-document
// URI fragment.
func setFragment(sc *schema.Scanner, element string, dst *types.URIFragment) func(string) error {
	return func(v string) error {
		f, err := types.ParseURIFragment(v)
		if err != nil {
			return colerr.URIFragment(sc.Pos(), element, err)
		}
		*dst = f
		return nil
	}
}

// parseFloats decodes whitespace separated floating point list text.
func parseFloats(sc *schema.Scanner, element, text string) ([]float32, error) {
	fields := strings.Fields(text)
	out := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, colerr.Float(sc.Pos(), element, err)
		}
		out = append(out, float32(v))
	}
	return out, nil
}

// parseInts decodes whitespace separated non-negative integer list
// text.
func parseInts(sc *schema.Scanner, element, text string) ([]int, error) {
	fields := strings.Fields(text)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 63)
		if err != nil {
			return nil, colerr.Int(sc.Pos(), element, err)
		}
		out = append(out, int(v))
	}
	return out, nil
}

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
