package collada

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/andaru/collada/colerr"
	"github.com/andaru/collada/schema"
	"github.com/andaru/collada/v14"
	"github.com/andaru/collada/v15"
	"github.com/andaru/collada/xmlutil"
)

// Document is a parsed COLLADA document of any supported version.
// Exactly one field is populated, selected by the version attribute
// of the document's root element.
type Document struct {
	// V14 holds a version 1.4.0 or 1.4.1 document.
	V14 *v14.Collada
	// V15 holds a version 1.5.0 document.
	V15 *v15.Collada
}

// Parse reads a COLLADA document from r, selecting the schema
// generation named by the root element's version attribute. When the
// document version is known in advance, the version packages may be
// used directly instead.
func Parse(r io.Reader, opts ...schema.ScannerOption) (*Document, error) {
	sc := schema.NewScanner(r, opts...)
	start, err := schema.DocumentStart(sc)
	if err != nil {
		return nil, err
	}
	return parseRoot(sc, start)
}

// ParseString reads a COLLADA document from s.
func ParseString(s string, opts ...schema.ScannerOption) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

func parseRoot(sc *schema.Scanner, start xml.StartElement) (*Document, error) {
	if start.Name.Local != "COLLADA" {
		return nil, colerr.UnexpectedRootElement(sc.Pos(), start.Name.Local)
	}
	version, ok := xmlutil.AttrValue(start, "version")
	if !ok {
		return nil, colerr.MissingAttribute(sc.Pos(), "COLLADA", "version")
	}
	switch version {
	case "1.4.0", "1.4.1":
		doc, err := v14.ParseRoot(sc, start)
		if err != nil {
			return nil, err
		}
		return &Document{V14: doc}, nil
	case "1.5.0":
		doc, err := v15.ParseRoot(sc, start)
		if err != nil {
			return nil, err
		}
		return &Document{V15: doc}, nil
	}
	return nil, colerr.UnsupportedVersion(sc.Pos(), version)
}
