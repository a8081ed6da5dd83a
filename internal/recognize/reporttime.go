package recognize

import (
	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

// recognizeReportTime accepts the header issue-time group "DDHHMMZ".
func recognizeReportTime(token string, _ syntax.Section) (group.Group, bool) {
	if len(token) != 7 || token[6] != 'Z' {
		return group.Group{}, false
	}
	t, ok := quantity.MetafTimeFromDDHHMM(token[:6])
	if !ok {
		return group.Group{}, false
	}
	return group.Group{Kind: group.ReportTime, Time: t}, true
}
