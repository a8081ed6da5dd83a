package recognize

import (
	"strings"

	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

// recognizeRunwayState accepts
// R\d\d[LCR]?/(SNOCLO|(\d|/)(\d|/)(\d\d|//)(\d\d|//)|CLRD(\d\d|//))
func recognizeRunwayState(token string, _ syntax.Section) (group.Group, bool) {
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
	g := group.Group{Kind: group.RunwayState, Runway: rwy}

	if rest == "SNOCLO" {
		g.RunwayClearedSNOCLO = true
		return g, true
	}
	if strings.HasPrefix(rest, "CLRD") {
		frictionStr := rest[len("CLRD"):]
		f, ok := quantity.SurfaceFrictionFromString(frictionStr)
		if !ok {
			return group.Group{}, false
		}
		g.RunwayCleared = true
		g.Friction = f
		return g, true
	}

	if len(rest) != 6 {
		return group.Group{}, false
	}
	depositChar, extentChar := rest[0], rest[1]
	depthStr, frictionStr := rest[2:4], rest[4:6]

	if depositChar != '/' {
		if depositChar < '0' || depositChar > '9' {
			return group.Group{}, false
		}
		g.DepositCode = int(depositChar - '0')
		g.HaveDeposit = true
	}
	if extentChar != '/' {
		if extentChar < '0' || extentChar > '9' {
			return group.Group{}, false
		}
		g.ContaminationExtent = int(extentChar - '0')
		g.ExtentReserved = reservedExtentCode(g.ContaminationExtent)
	}

	if depthStr == "//" {
		g.DepositDepth = quantity.Precipitation{}
	} else {
		depth, ok := quantity.PrecipitationFromRunwayDeposits(depthStr)
		if !ok {
			return group.Group{}, false
		}
		g.DepositDepth = depth
		if depth.Status() == quantity.PrecipitationRunwayNotOperational {
			g.RunwayNotOperational = true
		}
	}

	if frictionStr == "//" {
		g.Friction = quantity.SurfaceFriction{}
	} else {
		f, ok := quantity.SurfaceFrictionFromString(frictionStr)
		if !ok {
			return group.Group{}, false
		}
		g.Friction = f
	}

	return g, true
}

func reservedExtentCode(n int) bool {
	switch n {
	case 3, 4, 6, 7, 8:
		return true
	default:
		return false
	}
}
