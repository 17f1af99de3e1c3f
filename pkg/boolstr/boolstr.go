package boolstr

import (
	"strings"

	"golang.org/x/text/cases"
)

// Canonical encodings produced by FromBool.
const (
	True  = "true"
	False = "false"
)

// falsy holds the case-folded strings that decode to false.
var falsy = map[string]struct{}{
	"":      {},
	"0":     {},
	"false": {},
	"no":    {},
}

// FromBool returns the canonical string for v.
func FromBool(v bool) string {
	if v {
		return True
	}
	return False
}

// ToBool decodes s. Unrecognized values decode to true.
func ToBool(s string) bool {
	// Casers are stateful, one per call.
	folded := cases.Fold().String(strings.TrimSpace(s))
	_, ok := falsy[folded]
	return !ok
}

// IsCanonical reports whether s is exactly True or False.
func IsCanonical(s string) bool {
	return s == True || s == False
}
