package recognize

import (
	"strings"

	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

// recognizeTemperatureDewPoint accepts "TT/DD" where each field is an
// optional M?\d\d; a field of "//" means not reported, and the dew-point
// field may also be empty. An empty temperature field declines.
func recognizeTemperatureDewPoint(token string, _ syntax.Section) (group.Group, bool) {
	idx := strings.IndexByte(token, '/')
	if idx < 0 {
		return group.Group{}, false
	}
	tempStr, dewStr := token[:idx], token[idx+1:]
	if tempStr == "" {
		return group.Group{}, false
	}

	g := group.Group{Kind: group.TemperatureDewPoint}
	if tempStr != "//" {
		t, ok := quantity.TemperatureFromString(tempStr)
		if !ok {
			return group.Group{}, false
		}
		g.Temperature = t
		g.HaveTemperature = true
	}
	if dewStr != "" && dewStr != "//" {
		d, ok := quantity.TemperatureFromString(dewStr)
		if !ok {
			return group.Group{}, false
		}
		g.DewPoint = d
		g.HaveDewPoint = true
	}
	return g, true
}
