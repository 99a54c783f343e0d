package v14

import (
	"encoding/xml"

	"github.com/andaru/collada/schema"
)

// GeometricElement is the shape data inside a geometry. Only meshes
// are decoded; convex hulls and splines are markers recording which
// element appeared.
type GeometricElement interface {
	geometricElement()
}

// ConvexMesh marks a convex_mesh element.
type ConvexMesh struct{}

// Spline marks a spline element.
type Spline struct{}

func (*ConvexMesh) geometricElement() {}
func (*Mesh) geometricElement()       {}
func (*Spline) geometricElement()     {}

// Geometry describes the shape of one object in a scene.
type Geometry struct {
	ID      *string
	Name    *string
	Asset   *Asset
	Element GeometricElement
	Extras  []*Extra
}

// Mesh returns the geometry's element when it is a mesh, else nil.
func (g *Geometry) Mesh() *Mesh {
	if m, ok := g.Element.(*Mesh); ok {
		return m
	}
	return nil
}

func parseGeometry(sc *schema.Scanner, start xml.StartElement) (*Geometry, error) {
	g := &Geometry{}
	err := schema.Attrs(sc, "geometry", start,
		schema.Attr{Name: "id", Set: schema.SetOptional(&g.ID)},
		schema.Attr{Name: "name", Set: schema.SetOptional(&g.Name)},
	)
	if err != nil {
		return nil, err
	}
	e := &schema.Element{Name: "geometry", Children: []schema.Child{
		schema.Rule("asset", schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			a, err := parseAsset(sc, start)
			if err != nil {
				return err
			}
			g.Asset = a
			return nil
		}),
		{
			Match: func(name string) bool {
				return name == "convex_mesh" || name == "mesh" || name == "spline"
			},
			Occurs: schema.Required,
			Parse: func(sc *schema.Scanner, start xml.StartElement) error {
				switch start.Name.Local {
				case "mesh":
					m, err := parseMesh(sc, start)
					if err != nil {
						return err
					}
					g.Element = m
				case "convex_mesh":
					if err := schema.Skip(sc, "convex_mesh"); err != nil {
						return err
					}
					g.Element = &ConvexMesh{}
				case "spline":
					if err := schema.Skip(sc, "spline"); err != nil {
						return err
					}
					g.Element = &Spline{}
				}
				return nil
			},
			Names: schema.AddName("convex_mesh", "mesh", "spline"),
		},
		schema.Rule("extra", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			x, err := parseExtra(sc, start)
			if err != nil {
				return err
			}
			g.Extras = append(g.Extras, x)
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return g, nil
}
