package recognize

import (
	"strings"

	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

// recognizeMinMaxTemperature accepts a TAF min/max temperature forecast
// group: (TX|TN)M?dd/DDHHZ.
func recognizeMinMaxTemperature(token string, _ syntax.Section) (group.Group, bool) {
	var isMax bool
	switch {
	case strings.HasPrefix(token, "TX"):
		isMax = true
	case strings.HasPrefix(token, "TN"):
		isMax = false
	default:
		return group.Group{}, false
	}
	rest := token[2:]
	idx := strings.IndexByte(rest, '/')
	if idx < 0 {
		return group.Group{}, false
	}
	tempStr, timeStr := rest[:idx], rest[idx+1:]
	if len(timeStr) != 5 || timeStr[4] != 'Z' {
		return group.Group{}, false
	}
	temp, ok := quantity.TemperatureFromString(tempStr)
	if !ok {
		return group.Group{}, false
	}
	t, ok := quantity.MetafTimeFromDDHH(timeStr[:4])
	if !ok {
		return group.Group{}, false
	}
	return group.Group{
		Kind: group.MinMaxTemperature, IsMaxTemperature: isMax,
		ForecastTemp: temp, Time: t,
	}, true
}
