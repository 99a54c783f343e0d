package types

import (
	"bytes"
	"encoding/xml"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/andaru/collada/schema"
	"github.com/andaru/collada/xmlutil"
)

// Technique is a vendor extension block. Its content is arbitrary
// well-formed XML outside the COLLADA schema, retained as a raw token
// run for the consumer to interpret.
type Technique struct {
	// Profile names the vendor or tool the content targets.
	Profile string
	XMLNS   *AnyURI
	// Data is the raw content, the technique element's own start and
	// end tokens excluded.
	Data []xml.Token
}

// ParseTechnique parses a <technique> element, capturing its content
// without validation.
func ParseTechnique(sc *schema.Scanner, start xml.StartElement) (*Technique, error) {
	t := &Technique{}
	var xmlns *string
	err := schema.Attrs(sc, "technique", start,
		schema.Attr{Name: "profile", Required: true, Set: schema.SetString(&t.Profile)},
		schema.Attr{Name: "xmlns", Set: schema.SetOptional(&xmlns)},
	)
	if err != nil {
		return nil, err
	}
	if xmlns != nil {
		uri := AnyURI(*xmlns)
		t.XMLNS = &uri
	}
	t.Data, err = schema.Capture(sc, "technique")
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Document re-renders the technique, its own element included, and
// parses the result into a DOM for XPath queries.
func (t *Technique) Document() (*xmlquery.Node, error) {
	start := xml.StartElement{
		Name: xml.Name{Local: "technique"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "profile"}, Value: t.Profile}},
	}
	if t.XMLNS != nil {
		start.Attr = append(start.Attr,
			xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: string(*t.XMLNS)})
	}
	tokens := make([]xml.Token, 0, len(t.Data)+2)
	tokens = append(tokens, start)
	tokens = append(tokens, t.Data...)
	tokens = append(tokens, xml.EndElement{Name: start.Name})

	buf := &bytes.Buffer{}
	if err := xmlutil.EncodeTokens(buf, tokens...); err != nil {
		return nil, errors.Wrap(err, "encoding technique content")
	}
	doc, err := xmlquery.Parse(buf)
	if err != nil {
		return nil, errors.Wrap(err, "parsing technique content")
	}
	return doc, nil
}

// Query returns the first node of the technique content matching the
// XPath expression, or nil.
func (t *Technique) Query(expr string) (*xmlquery.Node, error) {
	doc, err := t.Document()
	if err != nil {
		return nil, err
	}
	return xmlquery.Query(doc, expr)
}

// QueryAll returns every node of the technique content matching the
// XPath expression.
func (t *Technique) QueryAll(expr string) ([]*xmlquery.Node, error) {
	doc, err := t.Document()
	if err != nil {
		return nil, err
	}
	return xmlquery.QueryAll(doc, expr)
}

// Select is Query for a precompiled expression.
func (t *Technique) Select(expr *xpath.Expr) (*xmlquery.Node, error) {
	doc, err := t.Document()
	if err != nil {
		return nil, err
	}
	return xmlquery.QuerySelector(doc, expr), nil
}

// SelectAll is QueryAll for a precompiled expression.
func (t *Technique) SelectAll(expr *xpath.Expr) ([]*xmlquery.Node, error) {
	doc, err := t.Document()
	if err != nil {
		return nil, err
	}
	return xmlquery.QuerySelectorAll(doc, expr), nil
}
