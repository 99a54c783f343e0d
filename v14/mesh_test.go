package v14

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andaru/collada/colerr"
	"github.com/andaru/collada/types"
)

func TestParseMesh(t *testing.T) {
	check := assert.New(t)
	sc, start := testStart(t, `<mesh>`+
		`<source id="positions"><float_array count="3">0 0 0</float_array></source>`+
		`<source id="normals"><float_array count="3">0 1 0</float_array></source>`+
		`<vertices id="verts" name="mesh vertices">`+
		`<input semantic="POSITION" source="#positions"/>`+
		`<input semantic="NORMAL" source="#normals"/>`+
		`</vertices>`+
		`<polylist count="0"/>`+
		`<extra><technique profile="MAYA"><double_sided>1</double_sided></technique></extra>`+
		`</mesh>`)
	m, err := parseMesh(sc, start)
	check.NoError(err)
	if m == nil {
		return
	}
	check.Len(m.Sources, 2)
	if s := m.SourceByID("normals"); check.NotNil(s) {
		check.Equal("normals", s.ID)
	}
	check.Nil(m.SourceByID("tangents"))

	check.Equal("verts", m.Vertices.ID)
	check.Equal(str("mesh vertices"), m.Vertices.Name)
	if in := m.Vertices.InputForSemantic("NORMAL"); check.NotNil(in) {
		check.Equal("normals", in.Source.ID())
	}
	check.Nil(m.Vertices.InputForSemantic("TEXCOORD"))

	if check.Len(m.Primitives, 1) {
		check.IsType(&Polylist{}, m.Primitives[0])
	}
	check.Len(m.Extras, 1)
}

func TestParseMeshPrimitiveKinds(t *testing.T) {
	check := assert.New(t)
	sc, start := testStart(t, `<mesh>`+
		`<source id="s"><float_array count="1">1</float_array></source>`+
		`<vertices id="v"><input semantic="POSITION" source="#s"/></vertices>`+
		`<lines count="1"><p>0 1</p></lines>`+
		`<triangles count="1"><p>0 1 2</p></triangles>`+
		`<polylist count="0"/>`+
		`<tristrips count="1"/>`+
		`</mesh>`)
	m, err := parseMesh(sc, start)
	check.NoError(err)
	if m == nil {
		return
	}
	if check.Len(m.Primitives, 4) {
		check.IsType(&Lines{}, m.Primitives[0])
		check.IsType(&Triangles{}, m.Primitives[1])
		check.IsType(&Polylist{}, m.Primitives[2])
		check.IsType(&Tristrips{}, m.Primitives[3])
	}
}

func TestParseMeshGrammar(t *testing.T) {
	for _, tc := range []struct {
		name         string
		input        string
		wantKind     colerr.Kind
		wantElement  string
		wantExpected []string
	}{
		{
			name:         "no sources",
			input:        `<mesh></mesh>`,
			wantKind:     colerr.KindMissingElement,
			wantElement:  "mesh",
			wantExpected: []string{"source"},
		},
		{
			name: "vertices before sources",
			input: `<mesh>` +
				`<vertices id="v"><input semantic="POSITION" source="#s"/></vertices>` +
				`</mesh>`,
			wantKind:     colerr.KindMissingElement,
			wantElement:  "mesh",
			wantExpected: []string{"source"},
		},
		{
			name: "missing vertices",
			input: `<mesh>` +
				`<source id="s"><float_array count="1">1</float_array></source>` +
				`</mesh>`,
			wantKind:     colerr.KindMissingElement,
			wantElement:  "mesh",
			wantExpected: []string{"vertices"},
		},
		{
			name:        "stray text",
			input:       `<mesh>stray</mesh>`,
			wantKind:    colerr.KindUnexpectedCharacterData,
			wantElement: "mesh",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			sc, start := testStart(t, tc.input)
			_, err := parseMesh(sc, start)
			if check.IsType(&colerr.Error{}, err) {
				ce := err.(*colerr.Error)
				check.Equal(tc.wantKind, ce.Kind)
				check.Equal(tc.wantElement, ce.Element)
				check.Equal(tc.wantExpected, ce.Expected)
			}
		})
	}
}

func TestParseVertices(t *testing.T) {
	check := assert.New(t)

	sc, start := testStart(t, `<vertices id="v"></vertices>`)
	_, err := parseVertices(sc, start)
	if check.IsType(&colerr.Error{}, err) {
		ce := err.(*colerr.Error)
		check.Equal(colerr.KindMissingElement, ce.Kind)
		check.Equal("vertices", ce.Element)
		check.Equal([]string{"input"}, ce.Expected)
	}

	sc, start = testStart(t, `<vertices><input semantic="POSITION" source="#s"/></vertices>`)
	_, err = parseVertices(sc, start)
	if check.IsType(&colerr.Error{}, err) {
		ce := err.(*colerr.Error)
		check.Equal(colerr.KindMissingAttribute, ce.Kind)
		check.Equal("id", ce.Name)
	}
}

func TestParseInputs(t *testing.T) {
	check := assert.New(t)

	sc, start := testStart(t, `<input semantic="POSITION" source="#positions"/>`)
	un, err := parseUnsharedInput(sc, start)
	check.NoError(err)
	if check.NotNil(un) {
		check.Equal("POSITION", un.Semantic)
		check.Equal(types.URIFragment("#positions"), un.Source)
		check.Equal("positions", un.Source.ID())
	}

	// Vertex inputs carry no index offset.
	sc, start = testStart(t, `<input offset="0" semantic="POSITION" source="#p"/>`)
	_, err = parseUnsharedInput(sc, start)
	if check.IsType(&colerr.Error{}, err) {
		ce := err.(*colerr.Error)
		check.Equal(colerr.KindUnexpectedAttribute, ce.Kind)
		check.Equal("offset", ce.Name)
		check.Equal([]string{"semantic", "source"}, ce.Expected)
	}

	sc, start = testStart(t, `<input offset="1" semantic="NORMAL" source="#n" set="2"/>`)
	sh, err := parseSharedInput(sc, start)
	check.NoError(err)
	if check.NotNil(sh) {
		check.Equal(1, sh.Offset)
		check.Equal("NORMAL", sh.Semantic)
		check.Equal(types.URIFragment("#n"), sh.Source)
		if check.NotNil(sh.Set) {
			check.Equal(2, *sh.Set)
		}
	}

	sc, start = testStart(t, `<input semantic="NORMAL" source="#n"/>`)
	_, err = parseSharedInput(sc, start)
	if check.IsType(&colerr.Error{}, err) {
		ce := err.(*colerr.Error)
		check.Equal(colerr.KindMissingAttribute, ce.Kind)
		check.Equal("offset", ce.Name)
	}

	// Input references are same-document fragments, not general URIs.
	sc, start = testStart(t, `<input semantic="POSITION" source="positions"/>`)
	_, err = parseUnsharedInput(sc, start)
	if check.IsType(&colerr.Error{}, err) {
		ce := err.(*colerr.Error)
		check.Equal(colerr.KindURIFragment, ce.Kind)
		check.Equal("input", ce.Element)
	}
}
