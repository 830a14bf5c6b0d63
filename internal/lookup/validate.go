package lookup

import "regexp"

// domainPattern matches one or more dot-separated labels of 1-63 letters,
// digits, and hyphens with no leading or trailing hyphen, ending in a final
// label of at least two alphabetic characters.
var domainPattern = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// ValidDomain reports whether raw is a syntactically valid domain name.
// It never touches the network; the orchestrator uses it as a gate so that
// malformed input costs no round-trips.
func ValidDomain(raw string) bool {
	return domainPattern.MatchString(raw)
}
