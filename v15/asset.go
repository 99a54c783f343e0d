package v15

import (
	"encoding/xml"

	"github.com/andaru/collada/schema"
	"github.com/andaru/collada/types"
)

// Asset is the management information of the document or of one of
// its elements. Relative to version 1.4, an asset may also carry
// geographic coverage and extras.
type Asset struct {
	Contributors []*Contributor
	Coverage     *Coverage
	Created      types.DateTime
	Keywords     *string
	Modified     types.DateTime
	Revision     *string
	Subject      *string
	Title        *string
	// Unit is the document's unit of distance, 1 meter when not
	// declared.
	Unit types.Unit
	// UpAxis orients the document's coordinate system, Y up when not
	// declared.
	UpAxis types.UpAxis
	Extras []*Extra
}

func parseAsset(sc *schema.Scanner, start xml.StartElement) (*Asset, error) {
	if err := schema.NoAttrs(sc, "asset", start); err != nil {
		return nil, err
	}
	a := &Asset{Unit: types.DefaultUnit(), UpAxis: types.UpAxisY}
	e := &schema.Element{Name: "asset", Children: []schema.Child{
		schema.Rule("contributor", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			c, err := parseContributor(sc, start)
			if err != nil {
				return err
			}
			a.Contributors = append(a.Contributors, c)
			return nil
		}),
		schema.Rule("coverage", schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			cov, err := parseCoverage(sc, start)
			if err != nil {
				return err
			}
			a.Coverage = cov
			return nil
		}),
		schema.Rule("created", schema.Required, func(sc *schema.Scanner, start xml.StartElement) error {
			dt, err := types.ParseDateTimeElement(sc, "created", start)
			if err != nil {
				return err
			}
			a.Created = dt
			return nil
		}),
		textChild("keywords", &a.Keywords),
		schema.Rule("modified", schema.Required, func(sc *schema.Scanner, start xml.StartElement) error {
			dt, err := types.ParseDateTimeElement(sc, "modified", start)
			if err != nil {
				return err
			}
			a.Modified = dt
			return nil
		}),
		textChild("revision", &a.Revision),
		textChild("subject", &a.Subject),
		textChild("title", &a.Title),
		schema.Rule("unit", schema.OptionalWithDefault, func(sc *schema.Scanner, start xml.StartElement) error {
			u, err := types.ParseUnit(sc, start)
			if err != nil {
				return err
			}
			a.Unit = u
			return nil
		}),
		schema.Rule("up_axis", schema.OptionalWithDefault, func(sc *schema.Scanner, start xml.StartElement) error {
			axis, err := types.ParseUpAxis(sc, start)
			if err != nil {
				return err
			}
			a.UpAxis = axis
			return nil
		}),
		schema.Rule("extra", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			x, err := parseExtra(sc, start)
			if err != nil {
				return err
			}
			a.Extras = append(a.Extras, x)
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return a, nil
}

// Contributor identifies one author of the asset and the tool that
// produced it. Relative to version 1.4, a contributor may also carry
// the author's email address and website.
type Contributor struct {
	Author        *string
	AuthorEmail   *string
	AuthorWebsite *types.AnyURI
	AuthoringTool *string
	Comments      *string
	Copyright     *string
	SourceData    *types.AnyURI
}

func parseContributor(sc *schema.Scanner, start xml.StartElement) (*Contributor, error) {
	if err := schema.NoAttrs(sc, "contributor", start); err != nil {
		return nil, err
	}
	c := &Contributor{}
	uriChild := func(name string, dst **types.AnyURI) schema.Child {
		return schema.Rule(name, schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			text, _, err := schema.OptionalTextElement(sc, name, start)
			if err != nil {
				return err
			}
			uri := types.AnyURI(text)
			*dst = &uri
			return nil
		})
	}
	e := &schema.Element{Name: "contributor", Children: []schema.Child{
		textChild("author", &c.Author),
		textChild("author_email", &c.AuthorEmail),
		uriChild("author_website", &c.AuthorWebsite),
		textChild("authoring_tool", &c.AuthoringTool),
		textChild("comments", &c.Comments),
		textChild("copyright", &c.Copyright),
		uriChild("source_data", &c.SourceData),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return c, nil
}
