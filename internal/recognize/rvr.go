package recognize

import (
	"strings"

	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

// recognizeRunwayVisualRange accepts
// R\d\d[LCR]?/[PM]?\d{4}(V[PM]?\d{4})?(FT)?[UND]?
func recognizeRunwayVisualRange(token string, _ syntax.Section) (group.Group, bool) {
	if len(token) < 2 || token[0] != 'R' {
		return group.Group{}, false
	}
	slash := strings.IndexByte(token, '/')
	if slash < 0 {
		return group.Group{}, false
	}
	rwy, ok := quantity.RunwayFromString(token[1:slash])
	if !ok {
		return group.Group{}, false
	}
	rest := token[slash+1:]

	trend := group.RVRTrendNone
	if len(rest) > 0 {
		switch rest[len(rest)-1] {
		case 'U':
			trend = group.RVRTrendUp
			rest = rest[:len(rest)-1]
		case 'D':
			trend = group.RVRTrendDown
			rest = rest[:len(rest)-1]
		case 'N':
			trend = group.RVRTrendNoChange
			rest = rest[:len(rest)-1]
		}
	}

	feet := strings.HasSuffix(rest, "FT")
	if feet {
		rest = rest[:len(rest)-2]
	}

	g := group.Group{Kind: group.RunwayVisualRange, Runway: rwy, RVRTrend: trend}

	if idx := strings.IndexByte(rest, 'V'); idx >= 0 {
		min, ok1 := quantity.DistanceFromRVR(rest[:idx], feet)
		max, ok2 := quantity.DistanceFromRVR(rest[idx+1:], feet)
		if !ok1 || !ok2 {
			return group.Group{}, false
		}
		g.RVRDistance = min
		g.RVRVarDistance = max
		g.HaveRVRVariable = true
		return g, true
	}

	d, ok := quantity.DistanceFromRVR(rest, feet)
	if !ok {
		return group.Group{}, false
	}
	g.RVRDistance = d
	return g, true
}
