package recognize

import (
	"metaf/internal/group"
	"metaf/internal/syntax"
)

// recognizeLocation accepts a 4-character ICAO station identifier:
// a letter followed by three letters or digits.
func recognizeLocation(token string, _ syntax.Section) (group.Group, bool) {
	if len(token) != 4 {
		return group.Group{}, false
	}
	if token[0] < 'A' || token[0] > 'Z' {
		return group.Group{}, false
	}
	for i := 1; i < 4; i++ {
		c := token[i]
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return group.Group{}, false
		}
	}
	return group.Group{Kind: group.Location, ICAO: token}, true
}
