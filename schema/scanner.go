package schema

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/andaru/collada/colerr"
)

// ScannerOption is a constructor option function for the Scanner type.
type ScannerOption func(*Scanner)

// WithEntities supplies a custom entity table to the tokenizer, for
// documents using entities beyond the XML built-ins.
func WithEntities(entities map[string]string) ScannerOption {
	return func(s *Scanner) { s.d.Entity = entities }
}

// WithCharsetReader supplies a converter for documents in encodings
// other than UTF-8.
func WithCharsetReader(fn func(charset string, input io.Reader) (io.Reader, error)) ScannerOption {
	return func(s *Scanner) { s.d.CharsetReader = fn }
}

// Scanner adapts an xml.Decoder into the token stream the element
// grammar consumes. Comments, processing instructions and directives
// are dropped; character data is coalesced across them and across
// CDATA boundaries, whitespace trimmed, and omitted entirely when
// nothing but whitespace remains. Returned tokens hold no references
// to decoder internals.
//
// A Scanner is driven by a single goroutine.
type Scanner struct {
	d       *xml.Decoder
	held    xml.Token
	heldPos colerr.Pos
	hasHeld bool
	cur     colerr.Pos
}

// NewScanner returns a Scanner reading the document in r.
func NewScanner(r io.Reader, opts ...ScannerOption) *Scanner {
	s := &Scanner{d: xml.NewDecoder(r)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pos reports the tokenizer position immediately after the most
// recently returned token. Lines and columns are 1-based.
func (s *Scanner) Pos() colerr.Pos { return s.cur }

func (s *Scanner) rawToken() (xml.Token, colerr.Pos, error) {
	if s.hasHeld {
		s.hasHeld = false
		return s.held, s.heldPos, nil
	}
	tok, err := s.d.Token()
	line, col := s.d.InputPos()
	return tok, colerr.Pos{Line: line, Column: col}, err
}

// Token returns the next structural token: a start element, an end
// element, or a non-empty character data run. Errors are returned
// untouched from the underlying decoder, io.EOF included.
func (s *Scanner) Token() (xml.Token, error) {
	for {
		tok, pos, err := s.rawToken()
		if err != nil {
			s.cur = pos
			return nil, err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst, xml.Directive:
			continue
		case xml.CharData:
			text, textPos, err := s.coalesce(t, pos)
			if err != nil {
				s.cur = textPos
				return nil, err
			}
			if len(text) == 0 {
				continue
			}
			s.cur = textPos
			return text, nil
		default:
			s.cur = pos
			return xml.CopyToken(tok), nil
		}
	}
}

// coalesce accumulates a character data run beginning with first,
// absorbing adjacent character data and any skippable tokens between,
// and holds back the structural token that ends the run. The returned
// run is trimmed and owned by the caller; it is empty when the run was
// all whitespace.
func (s *Scanner) coalesce(first xml.CharData, firstPos colerr.Pos) (xml.CharData, colerr.Pos, error) {
	buf := append([]byte(nil), first...)
	pos := firstPos
	for {
		tok, tokPos, err := s.rawToken()
		if err != nil {
			return nil, tokPos, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf = append(buf, t...)
			pos = tokPos
		case xml.Comment, xml.ProcInst, xml.Directive:
		default:
			s.held, s.heldPos, s.hasHeld = xml.CopyToken(tok), tokPos, true
			return bytes.TrimSpace(buf), pos, nil
		}
	}
}
