// Package value implements the scalar codec for engine settings.
//
// The codec covers the directive-style value grammar accepted by the
// dynamic Set path: literal values, optional single-layer quoting, the
// add:/del: amendment prefixes for list-like string settings, and strict
// parsing of boolean and enum tokens.
package value

import (
	"errors"
	"strings"
)

// Amendment prefixes recognized for list-like string settings.
const (
	AddPrefix = "add:"
	DelPrefix = "del:"
)

// Errors returned by the codec.
var (
	// ErrNotBool indicates a token that is neither "true" nor "false".
	ErrNotBool = errors.New("not a boolean token")

	// ErrNotEnumMember indicates a token that matches no enum member name.
	ErrNotEnumMember = errors.New("not an enum member")
)

// TrimQuotes removes a single layer of surrounding quote characters.
// Both double and single quotes are accepted; mismatched or unpaired
// quotes are left alone.
func TrimQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first != last {
		return s
	}
	if first == '"' || first == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

// IsAmendment reports whether the value uses the add:/del: grammar.
func IsAmendment(s string) bool {
	return strings.HasPrefix(s, AddPrefix) || strings.HasPrefix(s, DelPrefix)
}

// Amend applies a directive-style value to the current value. An add:
// directive appends its token, a del: directive removes its token, and
// any other form replaces the whole value.
func Amend(current, directive string) string {
	switch {
	case strings.HasPrefix(directive, AddPrefix):
		return Add(current, TrimQuotes(directive[len(AddPrefix):]))
	case strings.HasPrefix(directive, DelPrefix):
		return Del(current, TrimQuotes(directive[len(DelPrefix):]))
	default:
		return directive
	}
}

// Add appends token to the current value, separated by a single space.
// Duplicate tokens are allowed to accumulate.
func Add(current, token string) string {
	if current == "" {
		return token
	}
	return current + " " + token
}

// Del removes token from the current value in three passes: strip it as
// a space-delimited prefix, then as a space-delimited suffix, then drop
// any interior occurrence surrounded by spaces. Each pass tests the
// original token text, so a token appearing in more than one position is
// removed from each of them in a single call. The result is trimmed.
func Del(current, token string) string {
	s := current
	if strings.HasPrefix(s, token+" ") {
		s = s[len(token)+1:]
	}
	if strings.HasSuffix(s, " "+token) {
		s = s[:len(s)-len(token)-1]
	}
	s = strings.ReplaceAll(s, " "+token+" ", " ")
	return strings.TrimSpace(s)
}

// ParseBool parses "true" or "false" (case-insensitive). Any other
// token fails with ErrNotBool.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, ErrNotBool
	}
}

// ParseEnum matches s against the member names case-insensitively and
// returns the member index. Fails with ErrNotEnumMember on no match.
func ParseEnum(s string, members []string) (int, error) {
	for i, m := range members {
		if strings.EqualFold(s, m) {
			return i, nil
		}
	}
	return 0, ErrNotEnumMember
}
