package facade

import "strings"

// APIVersion is the facade's own version.
const APIVersion = "1.7.0"

var compatibleVersions = []string{"1.6", "1.7"}

// IsCompatible reports whether a binder built against requested can serve this facade.
func IsCompatible(requested string) bool {
	for _, v := range compatibleVersions {
		if requested == v || strings.HasPrefix(requested, v+".") {
			return true
		}
	}
	return false
}
