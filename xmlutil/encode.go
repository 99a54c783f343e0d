package xmlutil

import (
	"encoding/xml"
	"io"
)

// EncodeTokens writes tokens to w as an XML fragment. Start and end
// tokens must balance within the run.
func EncodeTokens(w io.Writer, tokens ...xml.Token) error {
	enc := xml.NewEncoder(w)
	for _, tok := range tokens {
		if err := enc.EncodeToken(tok); err != nil {
			return err
		}
	}
	return enc.Flush()
}
