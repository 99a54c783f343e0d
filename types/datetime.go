package types

import (
	"encoding/xml"
	"time"

	"github.com/andaru/collada/colerr"
	"github.com/andaru/collada/schema"
)

const (
	layoutZoned = "2006-01-02T15:04:05.999999999Z07:00"
	layoutNaive = "2006-01-02T15:04:05.999999999"
)

// DateTime is an xs:dateTime value. The timestamp grammar makes the
// timezone offset optional; Zoned records whether one was present.
type DateTime struct {
	Value time.Time
	Zoned bool
}

// ParseDateTime converts a raw timestamp. Offset-qualified timestamps
// are tried first, timezone-naive ones second; when both attempts fail
// the naive attempt's error is returned.
func ParseDateTime(v string) (DateTime, error) {
	if t, err := time.Parse(layoutZoned, v); err == nil {
		return DateTime{Value: t, Zoned: true}, nil
	}
	t, err := time.Parse(layoutNaive, v)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Value: t}, nil
}

// ParseDateTimeElement parses a timestamp leaf element such as
// <created>, consuming through its end token.
func ParseDateTimeElement(sc *schema.Scanner, element string, start xml.StartElement) (DateTime, error) {
	if err := schema.NoAttrs(sc, element, start); err != nil {
		return DateTime{}, err
	}
	text, err := schema.RequiredText(sc, element)
	if err != nil {
		return DateTime{}, err
	}
	dt, err := ParseDateTime(text)
	if err != nil {
		return DateTime{}, colerr.Time(sc.Pos(), element, err)
	}
	return dt, nil
}
