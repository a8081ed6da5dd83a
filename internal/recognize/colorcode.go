package recognize

import (
	"strings"

	"metaf/internal/group"
	"metaf/internal/syntax"
)

var colorCodeWords = map[string]group.ColorCodeValue{
	"BLU":  group.ColorBlue,
	"WHT":  group.ColorWhite,
	"GRN":  group.ColorGreen,
	"YLO1": group.ColorYellow1,
	"YLO2": group.ColorYellow2,
	"AMB":  group.ColorAmber,
	"RED":  group.ColorRed,
}

// recognizeColorCode accepts BLACK?(BLU|WHT|GRN|YLO1|YLO2|AMB|RED): one of
// the seven NATO color codes, optionally prefixed BLACK meaning "also
// closed".
func recognizeColorCode(token string, _ syntax.Section) (group.Group, bool) {
	black := strings.HasPrefix(token, "BLACK")
	rest := token
	if black {
		rest = token[len("BLACK"):]
	}
	code, ok := colorCodeWords[rest]
	if !ok {
		return group.Group{}, false
	}
	return group.Group{Kind: group.ColorCode, ColorCodeValue: code, ColorBlack: black}, true
}
