package recognize

import (
	"metaf/internal/group"
	"metaf/internal/syntax"
)

// fixedKeywordSections restricts each closed-vocabulary keyword to the
// sections it may legally appear in; an empty slice means "any section".
var fixedKeywordSections = map[string][]syntax.Section{
	"METAR": {syntax.Header},
	"SPECI": {syntax.Header},
	"TAF":   {syntax.Header},
	"COR":   {syntax.Header},
	"AMD":   {syntax.Header},
	"AUTO":  {syntax.METARBody},
	"CAVOK": {syntax.METARBody, syntax.TAFBody},
	"NSW":   {syntax.METARBody, syntax.TAFBody},
	"NIL":   {syntax.Header, syntax.METARBody, syntax.TAFBody},
	"CNL":   {syntax.TAFBody},
	"RMK":   {syntax.METARBody, syntax.TAFBody},
	"SNOCLO": {syntax.METARBody},
	"$":     {syntax.Remarks},
	"AO1":   {syntax.Remarks},
	"AO2":   {syntax.Remarks},
	"PRESFR": {syntax.Remarks},
	"PRESRR": {syntax.Remarks},
}

func recognizeFixedKeyword(token string, section syntax.Section) (group.Group, bool) {
	sections, known := fixedKeywordSections[token]
	if !known {
		return group.Group{}, false
	}
	if len(sections) > 0 && !allowed(sections, section) {
		return group.Group{}, false
	}
	return group.Group{Kind: group.FixedKeyword, Text: token}, true
}
