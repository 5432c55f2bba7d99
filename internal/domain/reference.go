package domain

import (
	"regexp"
	"strings"
)

// nameRe is the collection name charset: lowercase alphanumeric runs
// separated by single hyphens. Prefixes and icon names share it.
var nameRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidName reports whether s is a well-formed prefix or icon name.
func ValidName(s string) bool { return nameRe.MatchString(s) }

// Reference is a parsed "prefix:name" icon reference.
type Reference struct {
	Prefix Prefix
	Name   IconName
}

// String returns the "prefix:name" form of the reference.
func (r Reference) String() string { return string(r.Prefix) + ":" + string(r.Name) }

// ParseReference parses a "prefix:name" string. Both parts must be
// well-formed names; anything else yields ok == false. Callers treat
// malformed references as skippable, not as errors.
func ParseReference(s string) (Reference, bool) {
	prefix, name, found := strings.Cut(s, ":")
	if !found || !ValidName(prefix) || !ValidName(name) {
		return Reference{}, false
	}
	return Reference{Prefix: Prefix(prefix), Name: IconName(name)}, true
}
