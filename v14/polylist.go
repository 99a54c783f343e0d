package v14

import (
	"encoding/xml"

	"github.com/pkg/errors"

	"github.com/andaru/collada/schema"
)

// Primitive is one primitive element of a mesh. Only polylists carry
// decoded data; the remaining kinds are markers recording which
// primitive appeared.
type Primitive interface {
	primitive()
}

// Lines marks a lines element.
type Lines struct{}

// Linestrips marks a linestrips element.
type Linestrips struct{}

// Polygons marks a polygons element.
type Polygons struct{}

// Triangles marks a triangles element.
type Triangles struct{}

// Trifans marks a trifans element.
type Trifans struct{}

// Tristrips marks a tristrips element.
type Tristrips struct{}

func (*Lines) primitive()      {}
func (*Linestrips) primitive() {}
func (*Polygons) primitive()   {}
func (*Polylist) primitive()   {}
func (*Triangles) primitive()  {}
func (*Trifans) primitive()    {}
func (*Tristrips) primitive()  {}

var primitiveStubs = map[string]func() Primitive{
	"lines":      func() Primitive { return &Lines{} },
	"linestrips": func() Primitive { return &Linestrips{} },
	"polygons":   func() Primitive { return &Polygons{} },
	"triangles":  func() Primitive { return &Triangles{} },
	"trifans":    func() Primitive { return &Trifans{} },
	"tristrips":  func() Primitive { return &Tristrips{} },
}

func isPrimitiveElement(name string) bool {
	if name == "polylist" {
		return true
	}
	_, ok := primitiveStubs[name]
	return ok
}

var primitiveElementNames = schema.AddName(
	"lines", "linestrips", "polygons", "polylist", "triangles", "trifans", "tristrips")

func parsePrimitive(sc *schema.Scanner, start xml.StartElement) (Primitive, error) {
	name := start.Name.Local
	if name == "polylist" {
		return parsePolylist(sc, start)
	}
	if err := schema.Skip(sc, name); err != nil {
		return nil, err
	}
	return primitiveStubs[name](), nil
}

// VCount lists the number of vertices of each polygon in a polylist.
type VCount []int

// IndexList is a primitive's flat vertex attribute index list.
type IndexList []int

// Polylist is a primitive holding an arbitrary number of polygons,
// each with its own vertex count.
type Polylist struct {
	Name *string
	// Count is the declared number of polygons.
	Count    int
	Material *string
	Inputs   []*SharedInput
	VCount   VCount
	P        IndexList
	Extras   []*Extra
}

// Len returns the declared number of polygons.
func (p *Polylist) Len() int { return p.Count }

// InputsForOffset returns the inputs reading index slot n. Inputs may
// share an offset, so more than one input can match.
func (p *Polylist) InputsForOffset(n int) []*SharedInput {
	var out []*SharedInput
	for _, in := range p.Inputs {
		if in.Offset == n {
			out = append(out, in)
		}
	}
	return out
}

// Iter returns an iterator over the polylist's polygons. Iter panics
// when the polylist has no inputs, since the number of index slots
// per vertex is then undefined.
func (p *Polylist) Iter() *PolygonIter {
	// Inputs may share an offset, so the slots per vertex come from
	// the largest offset rather than the input count.
	width := 0
	for _, in := range p.Inputs {
		if in.Offset >= width {
			width = in.Offset + 1
		}
	}
	if width == 0 {
		panic(errors.New("polylist has no inputs, the vertex width is undefined"))
	}
	return &PolygonIter{p: p, width: width}
}

// PolygonIter walks a polylist's index list polygon by polygon.
//
//	iter := polylist.Iter()
//	for iter.Next() {
//		polygon := iter.Polygon()
//	}
//
// A missing vcount or index list yields no polygons. Next panics when
// the index list is shorter than the vertex counts demand; the two
// came from the same document, so running out mid polygon means the
// document contradicts itself.
type PolygonIter struct {
	p       *Polylist
	width   int
	next    int
	cursor  int
	current Polygon
}

// Next advances to the next polygon, returning false when the
// polylist is exhausted.
func (it *PolygonIter) Next() bool {
	if it.p.P == nil || it.next >= len(it.p.VCount) {
		return false
	}
	verts := it.p.VCount[it.next]
	lo := it.cursor * it.width
	hi := (it.cursor + verts) * it.width
	if hi > len(it.p.P) {
		panic(errors.Errorf("polylist index list exhausted: polygon %d needs indices [%d:%d] of %d",
			it.next, lo, hi, len(it.p.P)))
	}
	it.current = Polygon{indices: it.p.P[lo:hi], width: it.width}
	it.cursor += verts
	it.next++
	return true
}

// Polygon returns the polygon Next advanced to.
func (it *PolygonIter) Polygon() Polygon { return it.current }

// Polygon is one polygon of a polylist: a window of the index list
// holding Width indices for each of Len vertices.
type Polygon struct {
	indices []int
	width   int
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.indices) / p.width }

// Width returns the number of index slots per vertex.
func (p Polygon) Width() int { return p.width }

// Vertex returns the index tuple of vertex i.
func (p Polygon) Vertex(i int) []int {
	return p.indices[i*p.width : (i+1)*p.width]
}

func parsePolylist(sc *schema.Scanner, start xml.StartElement) (*Polylist, error) {
	p := &Polylist{}
	err := schema.Attrs(sc, "polylist", start,
		schema.Attr{Name: "name", Set: schema.SetOptional(&p.Name)},
		schema.Attr{Name: "count", Required: true, Set: setInt(sc, "polylist", &p.Count)},
		schema.Attr{Name: "material", Set: schema.SetOptional(&p.Material)},
	)
	if err != nil {
		return nil, err
	}
	e := &schema.Element{Name: "polylist", Children: []schema.Child{
		schema.Rule("input", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			in, err := parseSharedInput(sc, start)
			if err != nil {
				return err
			}
			p.Inputs = append(p.Inputs, in)
			return nil
		}),
		schema.Rule("vcount", schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			vc, err := parseVCount(sc, start)
			if err != nil {
				return err
			}
			p.VCount = vc
			return nil
		}),
		schema.Rule("p", schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			ix, err := parseIndexList(sc, start)
			if err != nil {
				return err
			}
			p.P = ix
			return nil
		}),
		schema.Rule("extra", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			x, err := parseExtra(sc, start)
			if err != nil {
				return err
			}
			p.Extras = append(p.Extras, x)
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return p, nil
}

func parseVCount(sc *schema.Scanner, start xml.StartElement) (VCount, error) {
	if err := schema.NoAttrs(sc, "vcount", start); err != nil {
		return nil, err
	}
	var vc VCount
	e := &schema.Element{Name: "vcount", Text: func(sc *schema.Scanner, text string) error {
		data, err := parseInts(sc, "vcount", text)
		if err != nil {
			return err
		}
		vc = data
		return nil
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return vc, nil
}

func parseIndexList(sc *schema.Scanner, start xml.StartElement) (IndexList, error) {
	if err := schema.NoAttrs(sc, "p", start); err != nil {
		return nil, err
	}
	var ix IndexList
	e := &schema.Element{Name: "p", Text: func(sc *schema.Scanner, text string) error {
		data, err := parseInts(sc, "p", text)
		if err != nil {
			return err
		}
		ix = data
		return nil
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return ix, nil
}
