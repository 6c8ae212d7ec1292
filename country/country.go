// Package country resolves human-readable country names to ISO-3166-1 alpha-2 codes
// and groups the recognized countries by continent.
//
// The name table and continent grouping are static, initialized at process start,
// and safe for unsynchronized concurrent reads.
package country

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Code is a two-letter lowercase ISO-3166-1 alpha-2 country code.
type Code string

func (c Code) String() string {
	return string(c)
}

// codeByLoweredName indexes the table by lowercased name so lookups are
// case-insensitive.
var codeByLoweredName = func() map[string]Code {
	m := make(map[string]Code, len(codeByName))
	for name, code := range codeByName {
		m[strings.ToLower(name)] = code
	}
	return m
}()

// Resolve maps a country name to its alpha-2 code, ignoring case.
//
// Unknown names fall back to the lowercase first two characters of the name.
// The fallback is a degraded guess, not an ISO lookup, but it guarantees
// Resolve always returns a two-character code.
func Resolve(name string) Code {
	if code, ok := codeByLoweredName[strings.ToLower(name)]; ok {
		return code
	}

	lowered := strings.ToLower(name)
	if len(lowered) < 2 {
		lowered += strings.Repeat("x", 2-len(lowered))
	}
	return Code(lowered[:2])
}

// Known reports whether the name appears in the table, ignoring case.
func Known(name string) bool {
	_, ok := codeByLoweredName[strings.ToLower(name)]
	return ok
}

// Name performs the reverse lookup from code to display name.
// The empty string is returned for codes not present in the table.
func Name(code Code) string {
	for name, c := range codeByName {
		if c == code {
			return name
		}
	}
	return ""
}

// Names returns every country name in the static table, sorted.
func Names() []string {
	names := lo.Keys(codeByName)
	slices.Sort(names)
	return names
}

// Closest returns the table entry with the smallest levenshtein distance to
// the given name. Useful for "did you mean" hints on unrecognized input.
func Closest(name string) string {
	return lo.MinBy(lo.Keys(codeByName), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}
