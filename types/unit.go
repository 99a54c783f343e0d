package types

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/andaru/collada/colerr"
	"github.com/andaru/collada/schema"
)

// Unit declares the scene's base unit of distance relative to the
// meter.
type Unit struct {
	// Meter is the unit's length in meters.
	Meter float64
	// Name is the unit's human readable name.
	Name string
}

// DefaultUnit is the unit assumed when a document declares none: the
// meter itself.
func DefaultUnit() Unit { return Unit{Meter: 1, Name: "meter"} }

// ParseUnit parses a <unit> element, applying the defaults for absent
// attributes.
func ParseUnit(sc *schema.Scanner, start xml.StartElement) (Unit, error) {
	unit := DefaultUnit()
	err := schema.Attrs(sc, "unit", start,
		schema.Attr{Name: "meter", Set: func(v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return colerr.Float(sc.Pos(), "unit", err)
			}
			unit.Meter = f
			return nil
		}},
		schema.Attr{Name: "name", Set: schema.SetString(&unit.Name)},
	)
	if err != nil {
		return Unit{}, err
	}
	return unit, schema.End(sc, "unit")
}

// UpAxis designates which axis of the scene points up.
type UpAxis int

const (
	// UpAxisX: negative y is right, positive x is up, positive z is in.
	UpAxisX UpAxis = iota
	// UpAxisY: positive x is right, positive y is up, positive z is in.
	UpAxisY
	// UpAxisZ: positive x is right, positive z is up, negative y is in.
	UpAxisZ
)

var upAxisNames = map[UpAxis]string{
	UpAxisX: "X_UP",
	UpAxisY: "Y_UP",
	UpAxisZ: "Z_UP",
}

func (a UpAxis) String() string {
	if s, ok := upAxisNames[a]; ok {
		return s
	}
	return fmt.Sprintf("UpAxis(%d)", int(a))
}

// ParseUpAxis parses an <up_axis> element. The value must be one of
// the three axis designators; documents omitting the element entirely
// get UpAxisY from their asset defaults instead.
func ParseUpAxis(sc *schema.Scanner, start xml.StartElement) (UpAxis, error) {
	if err := schema.NoAttrs(sc, "up_axis", start); err != nil {
		return UpAxisY, err
	}
	text, ok, err := schema.OptionalText(sc, "up_axis")
	if err != nil {
		return UpAxisY, err
	}
	if !ok {
		return UpAxisY, colerr.InvalidValue(sc.Pos(), "up_axis", "")
	}
	switch text {
	case "X_UP":
		return UpAxisX, nil
	case "Y_UP":
		return UpAxisY, nil
	case "Z_UP":
		return UpAxisZ, nil
	}
	return UpAxisY, colerr.InvalidValue(sc.Pos(), "up_axis", text)
}
