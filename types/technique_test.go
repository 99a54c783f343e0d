package types

import (
	"testing"

	"github.com/antchfx/xpath"
	"github.com/stretchr/testify/assert"

	"github.com/andaru/collada/colerr"
)

func TestParseTechnique(t *testing.T) {
	check := assert.New(t)

	input := `<technique profile="OpenCOLLADA">` +
		`<double_sided>1</double_sided>` +
		`<params><param sid="origin">0 0 0</param></params>` +
		`</technique>`
	sc, start := testStart(t, input)
	tech, err := ParseTechnique(sc, start)
	check.NoError(err)
	check.Equal("OpenCOLLADA", tech.Profile)
	check.Nil(tech.XMLNS)
	check.NotEmpty(tech.Data)

	node, err := tech.Query("//double_sided")
	check.NoError(err)
	if check.NotNil(node) {
		check.Equal("1", node.InnerText())
	}

	nodes, err := tech.QueryAll("//params/param")
	check.NoError(err)
	check.Len(nodes, 1)

	node, err = tech.Select(xpath.MustCompile("//param[@sid='origin']"))
	check.NoError(err)
	if check.NotNil(node) {
		check.Equal("0 0 0", node.InnerText())
	}

	nodes, err = tech.SelectAll(xpath.MustCompile("//double_sided | //param"))
	check.NoError(err)
	check.Len(nodes, 2)
}

func TestParseTechniqueXMLNS(t *testing.T) {
	check := assert.New(t)
	sc, start := testStart(t, `<technique profile="EXT" xmlns="http://example.com/ext"><knob/></technique>`)
	tech, err := ParseTechnique(sc, start)
	check.NoError(err)
	if check.NotNil(tech.XMLNS) {
		check.Equal(AnyURI("http://example.com/ext"), *tech.XMLNS)
	}
}

func TestParseTechniqueMissingProfile(t *testing.T) {
	check := assert.New(t)
	sc, start := testStart(t, `<technique><knob/></technique>`)
	_, err := ParseTechnique(sc, start)
	if check.IsType(&colerr.Error{}, err) {
		ce := err.(*colerr.Error)
		check.Equal(colerr.KindMissingAttribute, ce.Kind)
		check.Equal("technique", ce.Element)
		check.Equal("profile", ce.Name)
	}
}

func TestTechniqueNestedSameName(t *testing.T) {
	check := assert.New(t)
	sc, start := testStart(t, `<technique profile="p"><technique profile="inner"><v/></technique></technique>`)
	tech, err := ParseTechnique(sc, start)
	check.NoError(err)

	nodes, err := tech.QueryAll("//technique")
	check.NoError(err)
	check.Len(nodes, 2)
}
