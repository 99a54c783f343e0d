package types

import (
	"strings"

	"github.com/pkg/errors"
)

// AnyURI is an xs:anyURI value, carried verbatim with no syntax
// checking.
type AnyURI string

// URIFragment addresses an element in the same document by its id
// attribute, in the "#id" form.
type URIFragment string

// ParseURIFragment converts a raw attribute value to a URIFragment.
// Only same-document references are accepted.
func ParseURIFragment(v string) (URIFragment, error) {
	if !strings.HasPrefix(v, "#") {
		return "", errors.Errorf("%q is not a URI fragment, expected a leading \"#\"", v)
	}
	return URIFragment(v), nil
}

// ID returns the element id the fragment addresses.
func (f URIFragment) ID() string { return strings.TrimPrefix(string(f), "#") }
