package recognize

import (
	"metaf/internal/group"
	"metaf/internal/syntax"
)

// recognizeLowLayerWindShear accepts only the bare "WS" token that begins
// the three-state progression internal/combine assembles: WS -> WS ALL ->
// WS ALL RWY (all runways), or WS -> WS Rnn[LCR] (a specific runway).
func recognizeLowLayerWindShear(token string, _ syntax.Section) (group.Group, bool) {
	if token != "WS" {
		return group.Group{}, false
	}
	return group.Group{Kind: group.LowLayerWindShear}, true
}
