package recognize

import (
	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

func recognizePressureAltimeter(token string, _ syntax.Section) (group.Group, bool) {
	p, ok := quantity.PressureFromAltimeter(token)
	if !ok {
		return group.Group{}, false
	}
	return group.Group{Kind: group.Pressure, PressureValue: p, PressureKind: group.PressureAltimeter}, true
}

func recognizePressureForecast(token string, _ syntax.Section) (group.Group, bool) {
	p, ok := quantity.PressureFromForecastString(token)
	if !ok {
		return group.Group{}, false
	}
	return group.Group{Kind: group.Pressure, PressureValue: p, PressureKind: group.PressureForecast}, true
}

func recognizePressureSeaLevel(token string, _ syntax.Section) (group.Group, bool) {
	p, ok := quantity.PressureFromSeaLevelString(token)
	if !ok {
		return group.Group{}, false
	}
	return group.Group{Kind: group.Pressure, PressureValue: p, PressureKind: group.PressureSeaLevel}, true
}

func recognizePressureQFE(token string, _ syntax.Section) (group.Group, bool) {
	p, ok := quantity.PressureFromQFEString(token)
	if !ok {
		return group.Group{}, false
	}
	return group.Group{Kind: group.Pressure, PressureValue: p, PressureKind: group.PressureQFE}, true
}
