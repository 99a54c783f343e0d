package v14

import (
	"encoding/xml"

	"github.com/pkg/errors"

	"github.com/andaru/collada/schema"
	"github.com/andaru/collada/types"
)

// Accessor describes how a source's flat array decomposes into typed
// values: Count windows of Stride values each, starting at Offset.
type Accessor struct {
	// Count is the number of values the accessor addresses.
	Count int
	// Offset is the array index of the first value, 0 when not
	// declared.
	Offset int
	Source types.AnyURI
	// Stride is the number of array values per addressed value, 1
	// when not declared.
	Stride int
	Params []*Param
}

// Access returns value i of data, the window
// data[Offset+Stride*i : Offset+Stride*i+Stride]. Access panics when
// i is outside [0, Count) or the window runs past the end of data;
// either means the accessor's declaration disagrees with the array it
// addresses.
func (a *Accessor) Access(data []float32, i int) []float32 {
	if i < 0 || i >= a.Count {
		panic(errors.Errorf("accessor index %d out of range, count is %d", i, a.Count))
	}
	lo := a.Offset + a.Stride*i
	hi := lo + a.Stride
	if hi > len(data) {
		panic(errors.Errorf("accessor window [%d:%d] is outside the array, which holds %d values", lo, hi, len(data)))
	}
	return data[lo:hi]
}

// Param declares the name and type of one value slot inside an
// accessor's stride.
type Param struct {
	Name     *string
	SID      *string
	Type     *string
	Semantic *string
}

func parseAccessor(sc *schema.Scanner, start xml.StartElement) (*Accessor, error) {
	acc := &Accessor{Stride: 1}
	err := schema.Attrs(sc, "accessor", start,
		schema.Attr{Name: "count", Required: true, Set: setInt(sc, "accessor", &acc.Count)},
		schema.Attr{Name: "offset", Set: setInt(sc, "accessor", &acc.Offset)},
		schema.Attr{Name: "source", Required: true, Set: func(v string) error {
			acc.Source = types.AnyURI(v)
			return nil
		}},
		schema.Attr{Name: "stride", Set: setInt(sc, "accessor", &acc.Stride)},
	)
	if err != nil {
		return nil, err
	}
	e := &schema.Element{Name: "accessor", Children: []schema.Child{
		schema.Rule("param", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			p, err := parseParam(sc, start)
			if err != nil {
				return err
			}
			acc.Params = append(acc.Params, p)
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return acc, nil
}

func parseParam(sc *schema.Scanner, start xml.StartElement) (*Param, error) {
	p := &Param{}
	err := schema.Attrs(sc, "param", start,
		schema.Attr{Name: "name", Set: schema.SetOptional(&p.Name)},
		schema.Attr{Name: "sid", Set: schema.SetOptional(&p.SID)},
		schema.Attr{Name: "type", Set: schema.SetOptional(&p.Type)},
		schema.Attr{Name: "semantic", Set: schema.SetOptional(&p.Semantic)},
	)
	if err != nil {
		return nil, err
	}
	return p, schema.End(sc, "param")
}
