// Package openmeasures provides a client for the Open Measures public
// content-search API.
package openmeasures

// Sites lists the platforms searchable through the public API.
var Sites = []string{"telegram", "gettr", "win", "gab", "parler", "scored", "truthsocial"}

// QueryTypes lists the supported query syntaxes: plain term matching,
// boolean expressions and advanced field queries.
var QueryTypes = []string{"content", "boolean_content", "query_string"}

// ValidSite reports whether site is a known platform identifier.
func ValidSite(site string) bool {
	for _, s := range Sites {
		if s == site {
			return true
		}
	}
	return false
}

// ValidQueryType reports whether qt is a known query syntax.
func ValidQueryType(qt string) bool {
	for _, q := range QueryTypes {
		if q == qt {
			return true
		}
	}
	return false
}
