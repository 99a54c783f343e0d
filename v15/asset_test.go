package v15

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andaru/collada/colerr"
)

func TestParseAsset(t *testing.T) {
	check := assert.New(t)
	sc, start := testStart(t, `<asset>
		<contributor>
			<author>Noodles</author>
			<author_email>noodles@example.com</author_email>
			<author_website>https://example.com/noodles</author_website>
			<authoring_tool>SuperModeler 4.0</authoring_tool>
		</contributor>
		<coverage>
			<geographic_location>
				<longitude>-122.4</longitude>
				<latitude>37.77</latitude>
				<altitude mode="relativeToGround">0</altitude>
			</geographic_location>
		</coverage>
		<created>2018-06-01T10:00:00Z</created>
		<modified>2018-06-02T11:30:00Z</modified>
		<extra>
			<technique profile="MAX3D"><frame_rate>29.97</frame_rate></technique>
		</extra>
	</asset>`)
	a, err := parseAsset(sc, start)
	check.NoError(err)
	if a == nil {
		return
	}
	if check.Len(a.Contributors, 1) {
		c := a.Contributors[0]
		check.Equal(str("Noodles"), c.Author)
		check.Equal(str("noodles@example.com"), c.AuthorEmail)
		check.Equal(uri("https://example.com/noodles"), c.AuthorWebsite)
		check.Equal(str("SuperModeler 4.0"), c.AuthoringTool)
		check.Nil(c.Comments)
		check.Nil(c.SourceData)
	}
	if check.NotNil(a.Coverage) && check.NotNil(a.Coverage.GeographicLocation) {
		loc := a.Coverage.GeographicLocation
		check.Equal(-122.4, loc.Longitude)
		check.Equal(37.77, loc.Latitude)
		check.Equal(Altitude{Mode: AltitudeRelativeToGround, Value: 0}, loc.Altitude)
	}
	if check.Len(a.Extras, 1) {
		check.NotNil(a.Extras[0].TechniqueByProfile("MAX3D"))
	}
}

func TestParseAssetGrammar(t *testing.T) {
	for _, tc := range []struct {
		name         string
		input        string
		wantKind     colerr.Kind
		wantElement  string
		wantName     string
		wantExpected []string
	}{
		{
			name: "coverage does not excuse created",
			input: `<asset><coverage></coverage>` +
				`<modified>2018-06-01T10:00:00Z</modified></asset>`,
			wantKind:     colerr.KindMissingElement,
			wantElement:  "asset",
			wantExpected: []string{"created"},
		},
		{
			name: "coverage after created",
			input: `<asset><created>2018-06-01T10:00:00Z</created>` +
				`<coverage></coverage>` +
				`<modified>2018-06-01T10:00:00Z</modified></asset>`,
			wantKind:    colerr.KindUnexpectedElement,
			wantElement: "asset",
			wantName:    "coverage",
			wantExpected: []string{
				"keywords", "modified", "revision", "subject",
				"title", "unit", "up_axis", "extra",
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			sc, start := testStart(t, tc.input)
			_, err := parseAsset(sc, start)
			if check.IsType(&colerr.Error{}, err) {
				ce := err.(*colerr.Error)
				check.Equal(tc.wantKind, ce.Kind)
				check.Equal(tc.wantElement, ce.Element)
				check.Equal(tc.wantName, ce.Name)
				check.Equal(tc.wantExpected, ce.Expected)
			}
		})
	}
}

func TestParseContributorGrammar(t *testing.T) {
	for _, tc := range []struct {
		name         string
		input        string
		wantName     string
		wantExpected []string
	}{
		{
			name: "email before author",
			input: `<contributor>` +
				`<author_email>noodles@example.com</author_email>` +
				`<author>Noodles</author>` +
				`</contributor>`,
			wantName: "author",
			wantExpected: []string{
				"author_website", "authoring_tool", "comments",
				"copyright", "source_data",
			},
		},
		{
			name: "website before email",
			input: `<contributor>` +
				`<author_website>https://example.com</author_website>` +
				`<author_email>noodles@example.com</author_email>` +
				`</contributor>`,
			wantName: "author_email",
			wantExpected: []string{
				"authoring_tool", "comments", "copyright", "source_data",
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			sc, start := testStart(t, tc.input)
			_, err := parseContributor(sc, start)
			if check.IsType(&colerr.Error{}, err) {
				ce := err.(*colerr.Error)
				check.Equal(colerr.KindUnexpectedElement, ce.Kind)
				check.Equal("contributor", ce.Element)
				check.Equal(tc.wantName, ce.Name)
				check.Equal(tc.wantExpected, ce.Expected)
			}
		})
	}
}
