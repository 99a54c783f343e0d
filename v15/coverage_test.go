package v15

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andaru/collada/colerr"
)

func TestParseCoverage(t *testing.T) {
	check := assert.New(t)
	sc, start := testStart(t, `<coverage>`+
		`<geographic_location>`+
		`<longitude>151.2</longitude>`+
		`<latitude>-33.87</latitude>`+
		`<altitude mode="absolute">58</altitude>`+
		`</geographic_location>`+
		`</coverage>`)
	cov, err := parseCoverage(sc, start)
	check.NoError(err)
	check.Equal(&Coverage{GeographicLocation: &GeographicLocation{
		Longitude: 151.2,
		Latitude:  -33.87,
		Altitude:  Altitude{Mode: AltitudeAbsolute, Value: 58},
	}}, cov)
}

func TestParseCoverageEmpty(t *testing.T) {
	check := assert.New(t)
	sc, start := testStart(t, `<coverage></coverage>`)
	cov, err := parseCoverage(sc, start)
	check.NoError(err)
	check.Equal(&Coverage{}, cov)
}

func TestParseAltitude(t *testing.T) {
	for _, tc := range []struct {
		name         string
		input        string
		want         Altitude
		wantErr      bool
		wantKind     colerr.Kind
		wantName     string
		wantValue    string
		wantExpected []string
	}{
		{
			name:  "absolute",
			input: `<altitude mode="absolute">1600.5</altitude>`,
			want:  Altitude{Mode: AltitudeAbsolute, Value: 1600.5},
		},
		{
			name:  "relative to ground",
			input: `<altitude mode="relativeToGround">-2.25</altitude>`,
			want:  Altitude{Mode: AltitudeRelativeToGround, Value: -2.25},
		},
		{
			name:      "unknown mode",
			input:     `<altitude mode="floating">1</altitude>`,
			wantErr:   true,
			wantKind:  colerr.KindInvalidValue,
			wantValue: "floating",
		},
		{
			name:     "missing mode",
			input:    `<altitude>1</altitude>`,
			wantErr:  true,
			wantKind: colerr.KindMissingAttribute,
			wantName: "mode",
		},
		{
			name:         "undeclared attribute",
			input:        `<altitude mode="absolute" datum="egm96">1</altitude>`,
			wantErr:      true,
			wantKind:     colerr.KindUnexpectedAttribute,
			wantName:     "datum",
			wantExpected: []string{"mode"},
		},
		{
			name:     "unparsable value",
			input:    `<altitude mode="absolute">high</altitude>`,
			wantErr:  true,
			wantKind: colerr.KindParseFloat,
		},
		{
			name:     "no value",
			input:    `<altitude mode="absolute"></altitude>`,
			wantErr:  true,
			wantKind: colerr.KindMissingValue,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			sc, start := testStart(t, tc.input)
			got, err := parseAltitude(sc, start)
			if tc.wantErr {
				if check.IsType(&colerr.Error{}, err) {
					ce := err.(*colerr.Error)
					check.Equal(tc.wantKind, ce.Kind)
					check.Equal("altitude", ce.Element)
					check.Equal(tc.wantName, ce.Name)
					check.Equal(tc.wantValue, ce.Value)
					check.Equal(tc.wantExpected, ce.Expected)
				}
				return
			}
			check.NoError(err)
			check.Equal(tc.want, got)
		})
	}
}

func TestParseGeographicLocationGrammar(t *testing.T) {
	for _, tc := range []struct {
		name         string
		input        string
		wantKind     colerr.Kind
		wantName     string
		wantExpected []string
		wantPos      colerr.Pos
	}{
		{
			name: "latitude before longitude",
			input: `<geographic_location>` +
				`<latitude>37.77</latitude>` +
				`<longitude>-122.4</longitude>` +
				`</geographic_location>`,
			wantKind:     colerr.KindMissingElement,
			wantExpected: []string{"longitude"},
			wantPos:      colerr.Pos{Line: 1, Column: 22},
		},
		{
			name: "missing altitude",
			input: `<geographic_location>` +
				`<longitude>0</longitude>` +
				`<latitude>0</latitude>` +
				`</geographic_location>`,
			wantKind:     colerr.KindMissingElement,
			wantExpected: []string{"altitude"},
			wantPos:      colerr.Pos{Line: 1, Column: 22},
		},
		{
			name: "unknown child",
			input: `<geographic_location>` +
				`<longitude>0</longitude>` +
				`<region>CA</region>` +
				`</geographic_location>`,
			wantKind:     colerr.KindUnexpectedElement,
			wantName:     "region",
			wantExpected: []string{"latitude", "altitude"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			sc, start := testStart(t, tc.input)
			_, err := parseGeographicLocation(sc, start)
			if check.IsType(&colerr.Error{}, err) {
				ce := err.(*colerr.Error)
				check.Equal(tc.wantKind, ce.Kind)
				check.Equal("geographic_location", ce.Element)
				check.Equal(tc.wantName, ce.Name)
				check.Equal(tc.wantExpected, ce.Expected)
				if tc.wantPos != (colerr.Pos{}) {
					check.Equal(tc.wantPos, ce.Pos)
				}
			}
		})
	}
}

func TestAltitudeModeString(t *testing.T) {
	check := assert.New(t)
	check.Equal("absolute", AltitudeAbsolute.String())
	check.Equal("relativeToGround", AltitudeRelativeToGround.String())
	check.Equal("AltitudeMode(9)", AltitudeMode(9).String())
}
