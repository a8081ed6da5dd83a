// Package recognize implements the group-token recognizer battery and the
// fixed-order dispatcher: one pure function per group kind, tried in a
// fixed compile-time order, gated by report section, with a plain-text
// fallback when nothing claims the token.
package recognize

import (
	"metaf/internal/group"
	"metaf/internal/syntax"
)

// Recognizer is a pure function of a raw token and the report section it
// appears in. It either claims the token, returning a fully populated
// Group, or declines.
type Recognizer func(token string, section syntax.Section) (group.Group, bool)

// entry pairs a recognizer with the sections it is allowed to fire in. A nil
// Sections slice means "every section" (used by fixed keywords, whose
// vocabulary itself is section-coded, and by trends, whose recognizer
// checks the section itself).
type entry struct {
	recognize Recognizer
	sections  []syntax.Section
}

// battery is the closed, compile-time list of recognizers tried in order:
// a fixed list, not a dynamic plugin table. Order matters because several
// recognizers (fixed keyword vs. location, visibility vs. incomplete
// integer) would otherwise both accept ambiguous input.
var battery = []entry{
	{recognizeFixedKeyword, nil},
	{recognizeLocation, []syntax.Section{syntax.Header}},
	{recognizeReportTime, []syntax.Section{syntax.Header}},
	{recognizeTrend, nil},
	{recognizeWind, []syntax.Section{syntax.METARBody, syntax.TAFBody}},
	{recognizeVariableWindSector, []syntax.Section{syntax.METARBody, syntax.TAFBody}},
	{recognizeVisibility, []syntax.Section{syntax.METARBody, syntax.TAFBody}},
	{recognizeRunwayVisualRange, []syntax.Section{syntax.METARBody}},
	{recognizeRunwayState, []syntax.Section{syntax.METARBody}},
	{recognizeLowLayerWindShear, []syntax.Section{syntax.METARBody, syntax.TAFBody}},
	{recognizeCloud, []syntax.Section{syntax.METARBody, syntax.TAFBody}},
	{recognizeWeather, []syntax.Section{syntax.METARBody, syntax.TAFBody}},
	{recognizeMinMaxTemperature, []syntax.Section{syntax.TAFBody}},
	{recognizeTemperatureDewPoint, []syntax.Section{syntax.METARBody}},
	{recognizePressureAltimeter, []syntax.Section{syntax.METARBody, syntax.TAFBody}},
	{recognizePressureForecast, []syntax.Section{syntax.TAFBody}},
	{recognizeColorCode, []syntax.Section{syntax.METARBody}},
	{recognizeSeaSurface, []syntax.Section{syntax.Remarks}},
	{recognizeRainfall, []syntax.Section{syntax.Remarks}},
	{recognizePressureSeaLevel, []syntax.Section{syntax.Remarks}},
	{recognizePressureQFE, []syntax.Section{syntax.Remarks}},
}

func allowed(sections []syntax.Section, s syntax.Section) bool {
	if sections == nil {
		return true
	}
	for _, want := range sections {
		if want == s {
			return true
		}
	}
	return false
}

// Dispatch tries every recognizer in battery, in order, gated by section.
// The first to claim the token wins. If none claim it, the token becomes a
// PlainText group so the driver always has something to append.
func Dispatch(token string, section syntax.Section) group.Group {
	for _, e := range battery {
		if !allowed(e.sections, section) {
			continue
		}
		if g, ok := e.recognize(token, section); ok {
			return g
		}
	}
	return group.Group{Kind: group.PlainText, Text: token}
}
