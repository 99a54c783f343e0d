package collada_test

import (
	"fmt"

	"github.com/andaru/collada"
)

// This example parses a document without knowing its schema version in
// advance. Parse reads the root element's version attribute and
// decodes with the matching schema generation, populating exactly one
// of the Document fields.
func Example() {
	const document = `<?xml version="1.0" encoding="utf-8"?>
<COLLADA xmlns="http://www.collada.org/2005/11/COLLADASchema" version="1.4.1">
    <asset>
        <created>2017-02-07T20:44:30Z</created>
        <modified>2017-02-07T20:44:30Z</modified>
    </asset>
</COLLADA>`

	doc, err := collada.ParseString(document)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}
	switch {
	case doc.V14 != nil:
		fmt.Println("loaded a", doc.V14.Version, "document")
	case doc.V15 != nil:
		fmt.Println("loaded a", doc.V15.Version, "document")
	}
	// Output: loaded a 1.4.1 document
}
