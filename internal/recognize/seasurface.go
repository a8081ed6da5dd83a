package recognize

import (
	"strings"

	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

// recognizeSeaSurface accepts W\d\d/[HS]...: a sea-surface temperature
// followed by either a descriptive state of surface (S0..S9) or an
// explicit wave height in decimeters (Hxxx).
func recognizeSeaSurface(token string, _ syntax.Section) (group.Group, bool) {
	if len(token) < 2 || token[0] != 'W' {
		return group.Group{}, false
	}
	slash := strings.IndexByte(token, '/')
	if slash < 0 {
		return group.Group{}, false
	}
	tempStr, waveStr := token[1:slash], token[slash+1:]

	g := group.Group{Kind: group.SeaSurface}
	if tempStr != "//" {
		t, ok := quantity.TemperatureFromString(tempStr)
		if !ok {
			return group.Group{}, false
		}
		g.SeaTemperature = t
		g.HaveSeaTemperature = true
	}

	if len(waveStr) < 1 {
		return group.Group{}, false
	}
	switch waveStr[0] {
	case 'S':
		if len(waveStr) != 2 {
			return group.Group{}, false
		}
		w, ok := quantity.WaveHeightFromStateString(waveStr[1])
		if !ok {
			return group.Group{}, false
		}
		g.WaveHeight = w
		g.HaveWaveHeight = true
	case 'H':
		w, ok := quantity.WaveHeightFromExplicitString(waveStr[1:])
		if !ok {
			return group.Group{}, false
		}
		g.WaveHeight = w
		g.HaveWaveHeight = true
	default:
		return group.Group{}, false
	}
	return g, true
}
