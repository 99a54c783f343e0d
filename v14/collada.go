package v14

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/andaru/collada/colerr"
	"github.com/andaru/collada/schema"
	"github.com/andaru/collada/types"
	"github.com/andaru/collada/xmlutil"
)

// Collada is the root of a version 1.4 document.
type Collada struct {
	// Version is "1.4.0" or "1.4.1".
	Version string
	XMLNS   *types.AnyURI
	// Base is the base URI for relative URIs in the document.
	Base      *types.AnyURI
	Asset     Asset
	Libraries []Library
	Scene     *Scene
	Extras    []*Extra
}

// Scene marks a scene element. The scene hierarchy is not decoded.
type Scene struct{}

// Parse reads a version 1.4 document from r. Use the root package
// when the document's version is not known in advance.
func Parse(r io.Reader, opts ...schema.ScannerOption) (*Collada, error) {
	sc := schema.NewScanner(r, opts...)
	start, err := schema.DocumentStart(sc)
	if err != nil {
		return nil, err
	}
	return ParseRoot(sc, start)
}

// ParseString reads a version 1.4 document from s.
func ParseString(s string, opts ...schema.ScannerOption) (*Collada, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseRoot decodes a document whose root start element has already
// been read from sc.
func ParseRoot(sc *schema.Scanner, start xml.StartElement) (*Collada, error) {
	if start.Name.Local != "COLLADA" {
		return nil, colerr.UnexpectedRootElement(sc.Pos(), start.Name.Local)
	}
	version, ok := xmlutil.AttrValue(start, "version")
	if !ok {
		return nil, colerr.MissingAttribute(sc.Pos(), "COLLADA", "version")
	}
	switch version {
	case "1.4.0", "1.4.1":
	default:
		return nil, colerr.UnsupportedVersion(sc.Pos(), version)
	}
	doc := &Collada{}
	var xmlns, base *string
	err := schema.Attrs(sc, "COLLADA", start,
		schema.Attr{Name: "version", Required: true, Set: schema.SetString(&doc.Version)},
		schema.Attr{Name: "xmlns", Set: schema.SetOptional(&xmlns)},
		schema.Attr{Name: "base", Set: schema.SetOptional(&base)},
	)
	if err != nil {
		return nil, err
	}
	if xmlns != nil {
		uri := types.AnyURI(*xmlns)
		doc.XMLNS = &uri
	}
	if base != nil {
		uri := types.AnyURI(*base)
		doc.Base = &uri
	}
	e := &schema.Element{Name: "COLLADA", Children: []schema.Child{
		schema.Rule("asset", schema.Required, func(sc *schema.Scanner, start xml.StartElement) error {
			a, err := parseAsset(sc, start)
			if err != nil {
				return err
			}
			doc.Asset = *a
			return nil
		}),
		{
			Match:  isLibraryElement,
			Occurs: schema.Many,
			Parse: func(sc *schema.Scanner, start xml.StartElement) error {
				lib, err := parseLibrary(sc, start)
				if err != nil {
					return err
				}
				doc.Libraries = append(doc.Libraries, lib)
				return nil
			},
			Names: libraryElementNames,
		},
		schema.Rule("scene", schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			if err := schema.Skip(sc, "scene"); err != nil {
				return err
			}
			doc.Scene = &Scene{}
			return nil
		}),
		schema.Rule("extra", schema.Many, func(sc *schema.Scanner, start xml.StartElement) error {
			x, err := parseExtra(sc, start)
			if err != nil {
				return err
			}
			doc.Extras = append(doc.Extras, x)
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LibraryGeometries returns the document's geometry libraries in
// document order.
func (c *Collada) LibraryGeometries() []*LibraryGeometries {
	var out []*LibraryGeometries
	for _, lib := range c.Libraries {
		if lg, ok := lib.(*LibraryGeometries); ok {
			out = append(out, lg)
		}
	}
	return out
}
