package v15

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andaru/collada/colerr"
	"github.com/andaru/collada/schema"
	"github.com/andaru/collada/types"
)

// testStart scans input up to its root element's start token.
func testStart(t *testing.T, input string) (*schema.Scanner, xml.StartElement) {
	t.Helper()
	sc := schema.NewScanner(strings.NewReader(input))
	start, err := schema.DocumentStart(sc)
	assert.New(t).NoError(err)
	return sc, start
}

func str(s string) *string { return &s }

func uri(s string) *types.AnyURI {
	u := types.AnyURI(s)
	return &u
}

const minimalDocument = `<?xml version="1.0" encoding="utf-8"?>
<COLLADA xmlns="http://www.collada.org/2008/03/COLLADASchema" version="1.5.0">
    <asset>
        <created>2018-06-01T10:00:00Z</created>
        <modified>2018-06-01T10:00:00Z</modified>
    </asset>
</COLLADA>`

func TestParseMinimalDocument(t *testing.T) {
	check := assert.New(t)
	doc, err := ParseString(minimalDocument)
	check.NoError(err)
	if doc == nil {
		return
	}
	check.Equal("1.5.0", doc.Version)
	if check.NotNil(doc.XMLNS) {
		check.Equal(types.AnyURI("http://www.collada.org/2008/03/COLLADASchema"), *doc.XMLNS)
	}
	check.Nil(doc.Base)
	check.True(doc.Asset.Created.Zoned)
	check.True(doc.Asset.Created.Value.Equal(time.Date(2018, 6, 1, 10, 0, 0, 0, time.UTC)))
	check.Equal(types.DefaultUnit(), doc.Asset.Unit)
	check.Equal(types.UpAxisY, doc.Asset.UpAxis)
	check.Nil(doc.Asset.Coverage)
	check.Empty(doc.Libraries)
	check.Nil(doc.Scene)
	check.Empty(doc.Extras)
}

func TestParseLibraries(t *testing.T) {
	check := assert.New(t)
	doc, err := ParseString(`<COLLADA version="1.5.0">
		<asset>
			<created>2018-06-01T10:00:00Z</created>
			<modified>2018-06-01T10:00:00Z</modified>
		</asset>
		<library_kinematics_models id="kin">
			<kinematics_model id="robot"/>
		</library_kinematics_models>
		<library_articulated_systems/>
		<library_geometries>
			<geometry id="box"><mesh/></geometry>
		</library_geometries>
		<library_formulas/>
		<scene>
			<instance_kinematics_scene url="#scene"/>
		</scene>
		<extra>
			<technique profile="OpenCOLLADA"><originator>exporter</originator></technique>
		</extra>
	</COLLADA>`)
	check.NoError(err)
	if doc == nil {
		return
	}
	// Every library kind is consumed whole, content and all, leaving
	// only a marker for its position in the document.
	if check.Len(doc.Libraries, 4) {
		check.IsType(&LibraryKinematicsModels{}, doc.Libraries[0])
		check.IsType(&LibraryArticulatedSystems{}, doc.Libraries[1])
		check.IsType(&LibraryGeometries{}, doc.Libraries[2])
		check.IsType(&LibraryFormulas{}, doc.Libraries[3])
	}
	check.NotNil(doc.Scene)
	if check.Len(doc.Extras, 1) {
		check.NotNil(doc.Extras[0].TechniqueByProfile("OpenCOLLADA"))
	}
}

func TestParseDocumentErrors(t *testing.T) {
	for _, tc := range []struct {
		name      string
		input     string
		wantKind  colerr.Kind
		wantName  string
		wantValue string
	}{
		{
			name:     "wrong root element",
			input:    `<scene version="1.5.0"/>`,
			wantKind: colerr.KindUnexpectedRootElement,
			wantName: "scene",
		},
		{
			name:     "missing version",
			input:    `<COLLADA></COLLADA>`,
			wantKind: colerr.KindMissingAttribute,
			wantName: "version",
		},
		{
			name:      "older version",
			input:     `<COLLADA version="1.4.1"/>`,
			wantKind:  colerr.KindUnsupportedVersion,
			wantValue: "1.4.1",
		},
		{
			name:      "unknown version",
			input:     `<COLLADA version="2.0.0"/>`,
			wantKind:  colerr.KindUnsupportedVersion,
			wantValue: "2.0.0",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			_, err := ParseString(tc.input)
			if check.IsType(&colerr.Error{}, err) {
				ce := err.(*colerr.Error)
				check.Equal(tc.wantKind, ce.Kind)
				check.Equal(tc.wantName, ce.Name)
				check.Equal(tc.wantValue, ce.Value)
			}
		})
	}
}

func TestParseMissingAsset(t *testing.T) {
	check := assert.New(t)
	_, err := ParseString(`<COLLADA version="1.5.0"></COLLADA>`)
	if check.IsType(&colerr.Error{}, err) {
		ce := err.(*colerr.Error)
		check.Equal(colerr.KindMissingElement, ce.Kind)
		check.Equal("COLLADA", ce.Element)
		check.Equal([]string{"asset"}, ce.Expected)
	}
}
