package v15

import (
	"encoding/xml"
	"fmt"

	"github.com/andaru/collada/colerr"
	"github.com/andaru/collada/schema"
)

// Coverage locates the asset's visual scene in physical space.
type Coverage struct {
	GeographicLocation *GeographicLocation
}

func parseCoverage(sc *schema.Scanner, start xml.StartElement) (*Coverage, error) {
	if err := schema.NoAttrs(sc, "coverage", start); err != nil {
		return nil, err
	}
	cov := &Coverage{}
	e := &schema.Element{Name: "coverage", Children: []schema.Child{
		schema.Rule("geographic_location", schema.Optional, func(sc *schema.Scanner, start xml.StartElement) error {
			loc, err := parseGeographicLocation(sc, start)
			if err != nil {
				return err
			}
			cov.GeographicLocation = loc
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return cov, nil
}

// GeographicLocation is a position in the WGS 84 geodetic system.
type GeographicLocation struct {
	// Longitude is in degrees, -180 to 180.
	Longitude float64
	// Latitude is in degrees, -180 to 180.
	Latitude float64
	Altitude Altitude
}

func parseGeographicLocation(sc *schema.Scanner, start xml.StartElement) (*GeographicLocation, error) {
	if err := schema.NoAttrs(sc, "geographic_location", start); err != nil {
		return nil, err
	}
	loc := &GeographicLocation{}
	e := &schema.Element{Name: "geographic_location", Children: []schema.Child{
		schema.Rule("longitude", schema.Required, func(sc *schema.Scanner, start xml.StartElement) error {
			v, err := parseFloatElement(sc, "longitude", start)
			if err != nil {
				return err
			}
			loc.Longitude = v
			return nil
		}),
		schema.Rule("latitude", schema.Required, func(sc *schema.Scanner, start xml.StartElement) error {
			v, err := parseFloatElement(sc, "latitude", start)
			if err != nil {
				return err
			}
			loc.Latitude = v
			return nil
		}),
		schema.Rule("altitude", schema.Required, func(sc *schema.Scanner, start xml.StartElement) error {
			alt, err := parseAltitude(sc, start)
			if err != nil {
				return err
			}
			loc.Altitude = alt
			return nil
		}),
	}}
	if err := e.Parse(sc); err != nil {
		return nil, err
	}
	return loc, nil
}

// AltitudeMode selects the datum an altitude is measured from.
type AltitudeMode int

const (
	// AltitudeAbsolute measures from global sea level.
	AltitudeAbsolute AltitudeMode = iota
	// AltitudeRelativeToGround measures from ground level at the
	// location's latitude and longitude.
	AltitudeRelativeToGround
)

var altitudeModeNames = map[AltitudeMode]string{
	AltitudeAbsolute:         "absolute",
	AltitudeRelativeToGround: "relativeToGround",
}

func (m AltitudeMode) String() string {
	if s, ok := altitudeModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("AltitudeMode(%d)", int(m))
}

// Altitude is a distance above or below the datum its mode names.
type Altitude struct {
	Mode  AltitudeMode
	Value float64
}

func parseAltitude(sc *schema.Scanner, start xml.StartElement) (Altitude, error) {
	var alt Altitude
	err := schema.Attrs(sc, "altitude", start,
		schema.Attr{Name: "mode", Required: true, Set: func(v string) error {
			switch v {
			case "absolute":
				alt.Mode = AltitudeAbsolute
			case "relativeToGround":
				alt.Mode = AltitudeRelativeToGround
			default:
				return colerr.InvalidValue(sc.Pos(), "altitude", v)
			}
			return nil
		}},
	)
	if err != nil {
		return Altitude{}, err
	}
	text, err := schema.RequiredText(sc, "altitude")
	if err != nil {
		return Altitude{}, err
	}
	v, err := parseFloat(sc, "altitude", text)
	if err != nil {
		return Altitude{}, err
	}
	alt.Value = v
	return alt, nil
}
