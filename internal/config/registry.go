package config

import (
	"strings"

	"github.com/csscript/gocs/internal/config/value"
)

// normalizeName lowercases a property name and drops underscores.
// Directive syntax allows relaxed spelling of long names, so
// "Default_Arguments" and "defaultarguments" address the same setting.
func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

// Lookup returns the descriptor for a property name, ignoring case and
// underscores.
func Lookup(name string) (*Descriptor, bool) {
	d, ok := descriptorIndex[normalizeName(name)]
	return d, ok
}

// AllDescriptors returns the full property table in config file order.
func AllDescriptors() []*Descriptor {
	result := make([]*Descriptor, len(descriptors))
	copy(result, descriptors)
	return result
}

// Set assigns a directive-style value to the named property.
//
// The name is matched ignoring case and underscores. A single layer of
// surrounding quotes is stripped from rawValue. Amendable string
// properties route add:/del: values through the amendment codec against
// the current value; everything else is a literal assignment parsed by
// the property's type. Environment-backed properties write the process
// environment as a side effect.
func (s *Settings) Set(name, rawValue string) error {
	d, ok := Lookup(name)
	if !ok {
		return &PropertyError{Name: name, Err: ErrUnknownProperty}
	}

	raw := value.TrimQuotes(rawValue)
	if d.Type == TypeString && d.Amendable && value.IsAmendment(raw) {
		raw = value.Amend(d.get(s), raw)
	}

	old := d.get(s)
	if err := d.set(s, raw); err != nil {
		return &PropertyError{Name: name, Value: rawValue, Err: err}
	}
	s.notifySet(d.Name, old, d.get(s))
	return nil
}

// Get returns the canonical name of the property and its current value
// formatted as text. String values are quote-wrapped; booleans and
// enums are their plain textual form. Environment-backed properties
// read the process environment at call time.
func (s *Settings) Get(name string) (canonical, formatted string, err error) {
	d, ok := Lookup(name)
	if !ok {
		return "", "", &PropertyError{Name: name, Err: ErrUnknownProperty}
	}

	v := d.get(s)
	if d.Type == TypeString {
		v = `"` + v + `"`
	}
	return d.Name, v, nil
}
