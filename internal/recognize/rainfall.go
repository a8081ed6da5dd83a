package recognize

import (
	"strings"

	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

// recognizeRainfall accepts RF\d\d\.\d/\d{3}\.\d(/\d{3}\.\d)?: a 10-minute
// field, a since-0900 field, and an optional 60-minute field. The three
// fields are kept distinct in the data model even though the only known
// renderer prints the 60-minute field under a "total since 9 AM" label
// rather than a single combined total.
func recognizeRainfall(token string, _ syntax.Section) (group.Group, bool) {
	if !strings.HasPrefix(token, "RF") {
		return group.Group{}, false
	}
	fields := strings.Split(token[2:], "/")
	if len(fields) < 2 || len(fields) > 3 {
		return group.Group{}, false
	}
	tenMin, ok := quantity.PrecipitationFromRainfallString(fields[0])
	if !ok {
		return group.Group{}, false
	}
	since0900, ok := quantity.PrecipitationFromRainfallString(fields[1])
	if !ok {
		return group.Group{}, false
	}
	g := group.Group{
		Kind: group.Rainfall, Rainfall10Min: tenMin, RainfallSince0900: since0900,
	}
	if len(fields) == 3 {
		sixtyMin, ok := quantity.PrecipitationFromRainfallString(fields[2])
		if !ok {
			return group.Group{}, false
		}
		g.Rainfall60Min = sixtyMin
		g.HaveRainfall60 = true
	}
	return g, true
}
