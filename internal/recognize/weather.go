package recognize

import (
	"metaf/internal/group"
	"metaf/internal/syntax"
)

var weatherDescriptors = map[string]group.WeatherDescriptor{
	"MI": group.Shallow,
	"PR": group.Partial,
	"BC": group.Patches,
	"DR": group.LowDrifting,
	"BL": group.Blowing,
	"SH": group.Showers,
	"TS": group.Thunderstorm,
	"FZ": group.Freezing,
}

// phenomenaCodes is the closed two-letter weather-phenomena vocabulary.
var phenomenaCodes = map[string]bool{
	"DZ": true, "RA": true, "SN": true, "SG": true, "IC": true,
	"PL": true, "GR": true, "GS": true, "UP": true,
	"BR": true, "FG": true, "FU": true, "VA": true, "DU": true,
	"SA": true, "HZ": true,
	"PO": true, "SQ": true, "FC": true, "SS": true, "DS": true,
}

// promotablePhenomena are the phenomena that promote an unmarked qualifier
// to "moderate": rain, drizzle, ice pellets, undetermined precipitation,
// and snow (unless drifting/blowing).
var promotablePhenomena = map[string]bool{
	"RA": true, "DZ": true, "PL": true, "UP": true, "SN": true,
}

// recognizeWeather accepts a weather-phenomena group: an optional
// intensity/proximity/recency qualifier, an optional descriptor, and zero or
// more two-letter phenomena codes from the closed set above.
func recognizeWeather(token string, _ syntax.Section) (group.Group, bool) {
	g := group.Group{Kind: group.Weather}
	rest := token

	switch {
	case len(rest) > 0 && rest[0] == '-':
		g.WeatherQualifier = group.QualifierLight
		rest = rest[1:]
	case len(rest) > 0 && rest[0] == '+':
		g.WeatherQualifier = group.QualifierHeavy
		rest = rest[1:]
	case len(rest) >= 2 && rest[:2] == "VC":
		g.WeatherQualifier = group.QualifierVicinity
		rest = rest[2:]
	case len(rest) >= 2 && rest[:2] == "RE":
		g.WeatherQualifier = group.QualifierRecent
		rest = rest[2:]
	}

	if len(rest) >= 2 {
		if d, ok := weatherDescriptors[rest[:2]]; ok {
			g.WeatherDescriptor = d
			rest = rest[2:]
		}
	}

	if len(rest)%2 != 0 {
		return group.Group{}, false
	}
	for i := 0; i < len(rest); i += 2 {
		code := rest[i : i+2]
		if !phenomenaCodes[code] {
			return group.Group{}, false
		}
		g.WeatherPhenomena = append(g.WeatherPhenomena, code)
	}
	if g.WeatherDescriptor == group.DescriptorNone && len(g.WeatherPhenomena) == 0 {
		return group.Group{}, false
	}

	if g.WeatherQualifier == group.QualifierNone {
		snowDriftingOrBlowing := g.WeatherDescriptor == group.LowDrifting || g.WeatherDescriptor == group.Blowing
		for _, code := range g.WeatherPhenomena {
			if promotablePhenomena[code] && !(code == "SN" && snowDriftingOrBlowing) {
				g.WeatherQualifier = group.QualifierModerate
				break
			}
		}
	}

	return g, true
}
