package xmlutil

import "encoding/xml"

// AttrValue returns the value of the named unprefixed attribute of
// start, and whether it was present.
func AttrValue(start xml.StartElement, name string) (string, bool) {
	for _, attr := range start.Attr {
		if attr.Name.Space == "" && attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}
