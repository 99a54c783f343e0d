package v14

import (
	"encoding/xml"

	"github.com/andaru/collada/schema"
	"github.com/andaru/collada/types"
)

// ArrayElement is the storage array inside a source. Only float
// arrays carry decoded data; the remaining kinds are markers
// recording which array element appeared.
type ArrayElement interface {
	arrayElement()
}

// IDREFArray marks an IDREF_array element.
type IDREFArray struct{}

// NameArray marks a Name_array element.
type NameArray struct{}

// BoolArray marks a bool_array element.
type BoolArray struct{}

// IntArray marks an int_array element.
type IntArray struct{}

// FloatArray is a source's floating point storage array.
type FloatArray struct {
	// Count is the declared number of values.
	Count int
	ID    *string
	Name  *string
	// Digits is the significand precision of the values, 6 when not
	// declared.
	Digits int
	// Magnitude is the largest exponent of the values, 38 when not
	// declared.
	Magnitude int
	Data      []float32
}

func (*IDREFArray) arrayElement() {}
func (*NameArray) arrayElement()  {}
func (*BoolArray) arrayElement()  {}
func (*IntArray) arrayElement()   {}
func (*FloatArray) arrayElement() {}

var arrayStubs = map[string]func() ArrayElement{
	"IDREF_array": func() ArrayElement { return &IDREFArray{} },
	"Name_array":  func() ArrayElement { return &NameArray{} },
	"bool_array":  func() ArrayElement { return &BoolArray{} },
	"int_array":   func() ArrayElement { return &IntArray{} },
}

func isArrayElement(name string) bool {
	if name == "float_array" {
		return true
	}
	_, ok := arrayStubs[name]
	return ok
}

var arrayElementNames = schema.AddName(
	"IDREF_array", "Name_array", "bool_array", "float_array", "int_array")

func parseArrayElement(sc *schema.Scanner, start xml.StartElement) (ArrayElement, error) {
	name := start.Name.Local
	if name == "float_array" {
		return parseFloatArray(sc, start)
	}
	if err := schema.Skip(sc, name); err != nil {
		return nil, err
	}
	return arrayStubs[name](), nil
}

func parseFloatArray(sc *schema.Scanner, start xml.StartElement) (*FloatArray, error) {
	fa := &FloatArray{Digits: 6, Magnitude: 38}
	err := schema.Attrs(sc, "float_array", start,
		schema.Attr{Name: "count", Required: true, Set: setInt(sc, "float_array", &fa.Count)},
		schema.Attr{Name: "id", Set: schema.SetOptional(&fa.ID)},
		schema.Attr{Name: "name", Set: schema.SetOptional(&fa.Name)},
		schema.Attr{Name: "digits", Set: setInt(sc, "float_array", &fa.Digits)},
		schema.Attr{Name: "magnitude", Set: setInt(sc, "float_array", &fa.Magnitude)},
	)
	if err != nil {
		return nil, err
	}
	e := &schema.Element{Name: "float_array", Text: func(sc *schema.Scanner, text string) error {
		data, err := parseFloats(sc, "float_array", text)
		if err != nil {
			return err
		}
		fa.Data = data
		return nil
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return fa, nil
}

// Source is a data repository: a storage array plus the accessor that
// describes how to read values out of it.
type Source struct {
	ID              string
	Name            *string
	Asset           *Asset
	Array           ArrayElement
	TechniqueCommon *SourceTechniqueCommon
	Techniques      []*types.Technique
}

// FloatArray returns the source's array when it is a float array,
// else nil.
func (s *Source) FloatArray() *FloatArray {
	if fa, ok := s.Array.(*FloatArray); ok {
		return fa
	}
	return nil
}

// CommonAccessor returns the accessor of the source's common profile
// technique, or nil when the source has none.
func (s *Source) CommonAccessor() *Accessor {
	if s.TechniqueCommon == nil {
		return nil
	}
	return &s.TechniqueCommon.Accessor
}

func parseSource(sc *schema.Scanner, start xml.StartElement) (*Source, error) {
	src := &Source{}
	err := schema.Attrs(sc, "source", start,
		schema.Attr{Name: "id", Required: true, Set: schema.SetString(&src.ID)},
		schema.Attr{Name: "name", Set: schema.SetOptional(&src.Name)},
	)
	if err != nil {
		return nil, err
	}
	e := &schema.Element{Name: "source", Children: []schema.Child{
		schema.Rule("asset", schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			a, err := parseAsset(sc, start)
			if err != nil {
				return err
			}
			src.Asset = a
			return nil
		}),
		{
			Match:  isArrayElement,
			Occurs: schema.Optional,
			Parse: func(sc *schema.Scanner, start xml.StartElement) error {
				arr, err := parseArrayElement(sc, start)
				if err != nil {
					return err
				}
				src.Array = arr
				return nil
			},
			Names: arrayElementNames,
		},
		schema.Rule("technique_common", schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			tc, err := parseSourceTechniqueCommon(sc, start)
			if err != nil {
				return err
			}
			src.TechniqueCommon = tc
			return nil
		}),
		schema.Rule("technique", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			t, err := types.ParseTechnique(sc, start)
			if err != nil {
				return err
			}
			src.Techniques = append(src.Techniques, t)
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return src, nil
}

// SourceTechniqueCommon is the common profile view of a source,
// holding the accessor for its array.
type SourceTechniqueCommon struct {
	Accessor Accessor
}

func parseSourceTechniqueCommon(sc *schema.Scanner, start xml.StartElement) (*SourceTechniqueCommon, error) {
	if err := schema.NoAttrs(sc, "technique_common", start); err != nil {
		return nil, err
	}
	tc := &SourceTechniqueCommon{}
	e := &schema.Element{Name: "technique_common", Children: []schema.Child{
		schema.Rule("accessor", schema.Required, func(sc *schema.Scanner, start xml.StartElement) error {
			acc, err := parseAccessor(sc, start)
			if err != nil {
				return err
			}
			tc.Accessor = *acc
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return tc, nil
}
