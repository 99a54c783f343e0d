package v14

import (
	"encoding/xml"

	"github.com/andaru/collada/schema"
	"github.com/andaru/collada/types"
)

// Mesh is basic polygonal geometry: raw data sources, the vertex
// declaration binding positions, and the primitives that index into
// them.
type Mesh struct {
	Sources    []*Source
	Vertices   Vertices
	Primitives []Primitive
	Extras     []*Extra
}

// SourceByID returns the mesh source with the given id, or nil.
func (m *Mesh) SourceByID(id string) *Source {
	for _, s := range m.Sources {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func parseMesh(sc *schema.Scanner, start xml.StartElement) (*Mesh, error) {
	if err := schema.NoAttrs(sc, "mesh", start); err != nil {
		return nil, err
	}
	m := &Mesh{}
	e := &schema.Element{Name: "mesh", Children: []schema.Child{
		schema.Rule("source", schema.RequiredMany, func(sc *schema.Scanner, start xml.StartElement) error {
			s, err := parseSource(sc, start)
			if err != nil {
				return err
			}
			m.Sources = append(m.Sources, s)
			return nil
		}),
		schema.Rule("vertices", schema.Required, func(sc *schema.Scanner, start xml.StartElement) error {
			v, err := parseVertices(sc, start)
			if err != nil {
				return err
			}
			m.Vertices = *v
			return nil
		}),
		{
			Match:  isPrimitiveElement,
			Occurs: schema.Many,
			Parse: func(sc *schema.Scanner, start xml.StartElement) error {
				p, err := parsePrimitive(sc, start)
				if err != nil {
					return err
				}
				m.Primitives = append(m.Primitives, p)
				return nil
			},
			Names: primitiveElementNames,
		},
		schema.Rule("extra", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			x, err := parseExtra(sc, start)
			if err != nil {
				return err
			}
			m.Extras = append(m.Extras, x)
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return m, nil
}

// Vertices names the mesh attributes that are per vertex, at minimum
// the POSITION input.
type Vertices struct {
	ID     string
	Name   *string
	Inputs []*UnsharedInput
	Extras []*Extra
}

// InputForSemantic returns the first vertex input with the given
// semantic, or nil.
func (v *Vertices) InputForSemantic(semantic string) *UnsharedInput {
	for _, in := range v.Inputs {
		if in.Semantic == semantic {
			return in
		}
	}
	return nil
}

func parseVertices(sc *schema.Scanner, start xml.StartElement) (*Vertices, error) {
	v := &Vertices{}
	err := schema.Attrs(sc, "vertices", start,
		schema.Attr{Name: "id", Required: true, Set: schema.SetString(&v.ID)},
		schema.Attr{Name: "name", Set: schema.SetOptional(&v.Name)},
	)
	if err != nil {
		return nil, err
	}
	e := &schema.Element{Name: "vertices", Children: []schema.Child{
		schema.Rule("input", schema.RequiredMany, func(sc *schema.Scanner, start xml.StartElement) error {
			in, err := parseUnsharedInput(sc, start)
			if err != nil {
				return err
			}
			v.Inputs = append(v.Inputs, in)
			return nil
		}),
		schema.Rule("extra", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			x, err := parseExtra(sc, start)
			if err != nil {
				return err
			}
			v.Extras = append(v.Extras, x)
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return v, nil
}

// UnsharedInput binds a source to a semantic without an index offset.
// It appears where the parent implies how the input is indexed, as in
// vertices.
type UnsharedInput struct {
	Semantic string
	Source   types.URIFragment
}

func parseUnsharedInput(sc *schema.Scanner, start xml.StartElement) (*UnsharedInput, error) {
	in := &UnsharedInput{}
	err := schema.Attrs(sc, "input", start,
		schema.Attr{Name: "semantic", Required: true, Set: schema.SetString(&in.Semantic)},
		schema.Attr{Name: "source", Required: true, Set: setFragment(sc, "input", &in.Source)},
	)
	if err != nil {
		return nil, err
	}
	return in, schema.End(sc, "input")
}

// SharedInput binds a source to a semantic within a primitive's index
// list. Offset selects which index slot of each vertex tuple
// addresses the source.
type SharedInput struct {
	Offset   int
	Semantic string
	Source   types.URIFragment
	Set      *int
}

func parseSharedInput(sc *schema.Scanner, start xml.StartElement) (*SharedInput, error) {
	in := &SharedInput{}
	err := schema.Attrs(sc, "input", start,
		schema.Attr{Name: "offset", Required: true, Set: setInt(sc, "input", &in.Offset)},
		schema.Attr{Name: "semantic", Required: true, Set: schema.SetString(&in.Semantic)},
		schema.Attr{Name: "source", Required: true, Set: setFragment(sc, "input", &in.Source)},
		schema.Attr{Name: "set", Set: setOptionalInt(sc, "input", &in.Set)},
	)
	if err != nil {
		return nil, err
	}
	return in, schema.End(sc, "input")
}
