package recognize

import (
	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

var cloudFixedAmounts = map[string]group.CloudAmount{
	"NSC": group.NoSignificantCloud,
	"NCD": group.NoCloudDetected,
	"CLR": group.Clear,
	"SKC": group.SkyClear,
}

var cloudAmountPrefixes = map[string]group.CloudAmount{
	"FEW": group.Few,
	"SCT": group.Scattered,
	"BKN": group.Broken,
	"OVC": group.Overcast,
	"VV":  group.VerticalVisibilityAmount,
	"///": group.CloudAmountNotReported,
}

// recognizeCloud accepts a cloud-layer or vertical-visibility group:
// (FEW|SCT|BKN|OVC|VV|///)ddd(TCU|CB|///)?, or one of the fixed
// no-cloud-reported keywords (NSC, NCD, CLR, SKC).
func recognizeCloud(token string, _ syntax.Section) (group.Group, bool) {
	if amount, ok := cloudFixedAmounts[token]; ok {
		return group.Group{Kind: group.Cloud, CloudAmount: amount}, true
	}

	for _, prefixLen := range [...]int{3, 2} {
		if len(token) <= prefixLen {
			continue
		}
		prefix := token[:prefixLen]
		amount, ok := cloudAmountPrefixes[prefix]
		if !ok || prefixLen == 2 && prefix != "VV" {
			continue
		}
		rest := token[prefixLen:]
		isVV := prefix == "VV"

		heightStr := rest
		convective := ""
		if len(rest) > 3 {
			heightStr, convective = rest[:3], rest[3:]
		}
		height, ok := quantity.DistanceFromHeight(heightStr)
		if !ok {
			return group.Group{}, false
		}
		g := group.Group{
			Kind: group.Cloud, CloudAmount: amount,
			CloudHeight: height, HaveCloudBase: !isVV,
			IsVerticalVisibility: isVV,
		}
		switch convective {
		case "", "///":
		case "TCU":
			if isVV {
				return group.Group{}, false
			}
			g.ConvectiveType = group.ToweringCumulus
		case "CB":
			if isVV {
				return group.Group{}, false
			}
			g.ConvectiveType = group.Cumulonimbus
		default:
			return group.Group{}, false
		}
		return g, true
	}

	return group.Group{}, false
}
