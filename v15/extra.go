package v15

import (
	"encoding/xml"

	"github.com/andaru/collada/schema"
	"github.com/andaru/collada/types"
)

// Extra carries application specific information the core schema does
// not model. Its techniques hold the raw content for callers to
// interpret.
type Extra struct {
	ID   *string
	Name *string
	// Type hints at the kind of information the element carries. The
	// hint is meaningful to the producing application, not to the
	// schema.
	Type       *string
	Asset      *Asset
	Techniques []*types.Technique
}

// TechniqueByProfile returns the first technique with the given
// profile, or nil.
func (x *Extra) TechniqueByProfile(profile string) *types.Technique {
	for _, t := range x.Techniques {
		if t.Profile == profile {
			return t
		}
	}
	return nil
}

func parseExtra(sc *schema.Scanner, start xml.StartElement) (*Extra, error) {
	x := &Extra{}
	err := schema.Attrs(sc, "extra", start,
		schema.Attr{Name: "id", Set: schema.SetOptional(&x.ID)},
		schema.Attr{Name: "name", Set: schema.SetOptional(&x.Name)},
		schema.Attr{Name: "type", Set: schema.SetOptional(&x.Type)},
	)
	if err != nil {
		return nil, err
	}
	e := &schema.Element{Name: "extra", Children: []schema.Child{
		schema.Rule("asset", schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			a, err := parseAsset(sc, start)
			if err != nil {
				return err
			}
			x.Asset = a
			return nil
		}),
		schema.Rule("technique", schema.RequiredMany, func(sc *schema.Scanner, start xml.StartElement) error {
			t, err := types.ParseTechnique(sc, start)
			if err != nil {
				return err
			}
			x.Techniques = append(x.Techniques, t)
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return x, nil
}
