package recognize

import (
	"strings"

	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

// recognizeWind accepts a surface wind group: ddd(ff|fff)[Gfff]UU, with an
// optional WSnnn/ wind-shear height prefix and UU in {KT, MPS, KMH}.
func recognizeWind(token string, _ syntax.Section) (group.Group, bool) {
	g := group.Group{Kind: group.Wind}

	if strings.HasPrefix(token, "WS") {
		idx := strings.IndexByte(token, '/')
		if idx < 0 || idx <= 2 {
			return group.Group{}, false
		}
		heightStr := token[2:idx]
		height, ok := quantity.DistanceFromHeight(heightStr)
		if !ok {
			return group.Group{}, false
		}
		g.WindShearHeight = height
		g.HaveWindShear = true
		token = token[idx+1:]
	}

	unit, unitLen := windUnitSuffix(token)
	if unitLen == 0 {
		return group.Group{}, false
	}
	body := token[:len(token)-unitLen]

	var dirStr string
	switch {
	case len(body) >= 3 && body[:3] == "VRB":
		dirStr = "VRB"
		body = body[3:]
	case len(body) >= 3:
		dirStr = body[:3]
		body = body[3:]
	default:
		return group.Group{}, false
	}
	dir, ok := quantity.DirectionFromString(dirStr)
	if !ok {
		return group.Group{}, false
	}
	g.WindDirection = dir

	var speedStr, gustStr string
	if idx := strings.IndexByte(body, 'G'); idx >= 0 {
		speedStr, gustStr = body[:idx], body[idx+1:]
	} else {
		speedStr = body
	}
	if speedStr == "" {
		return group.Group{}, false
	}
	speed, ok := quantity.SpeedFromString(speedStr, unit)
	if !ok {
		return group.Group{}, false
	}
	g.WindSpeed = speed

	if gustStr != "" {
		gust, ok := quantity.SpeedFromString(gustStr, unit)
		if !ok {
			return group.Group{}, false
		}
		g.GustSpeed = gust
		g.HaveGust = true
	}

	return g, true
}

// windUnitSuffix returns the parsed unit and how many trailing characters
// it occupies, or (0,0) if token does not end in a recognized wind unit.
func windUnitSuffix(token string) (quantity.SpeedUnit, int) {
	for _, suffix := range [...]string{"KT", "MPS", "KMH"} {
		if strings.HasSuffix(token, suffix) {
			if unit, ok := quantity.UnitFromSuffix(suffix); ok {
				return unit, len(suffix)
			}
		}
	}
	return quantity.SpeedUnitNone, 0
}

// recognizeVariableWindSector accepts the "dddVddd" variable-wind-sector
// group, combined by internal/combine with a preceding surface wind.
func recognizeVariableWindSector(token string, _ syntax.Section) (group.Group, bool) {
	if len(token) != 7 || token[3] != 'V' {
		return group.Group{}, false
	}
	begin, ok1 := quantity.DirectionFromString(token[:3])
	end, ok2 := quantity.DirectionFromString(token[4:])
	if !ok1 || !ok2 {
		return group.Group{}, false
	}
	return group.Group{Kind: group.VariableWindSector, SectorBegin: begin, SectorEnd: end}, true
}
