package combine

import (
	"metaf/internal/group"
	"metaf/internal/quantity"
)

// combineLowLayerWindShear assembles the three-state progression
// WS -> WS ALL -> WS ALL RWY (all runways), or WS -> WS Rnn[LCR] (a specific
// runway). Only a plain-text next token is ever accepted; anything else
// refuses.
func combineLowLayerWindShear(prev, next group.Group) (group.Group, bool) {
	if prev.ShearComplete {
		return group.Group{}, false
	}
	if next.Kind != group.PlainText {
		return group.Group{}, false
	}

	if prev.ShearAllRunways {
		if next.Text == "RWY" {
			return group.Group{Kind: group.LowLayerWindShear, ShearAllRunways: true, ShearComplete: true}, true
		}
		return group.Group{}, false
	}

	if next.Text == "ALL" {
		return group.Group{Kind: group.LowLayerWindShear, ShearAllRunways: true}, true
	}

	if len(next.Text) >= 2 && next.Text[0] == 'R' {
		rwy, ok := quantity.RunwayFromString(next.Text[1:])
		if !ok {
			return group.Group{}, false
		}
		return group.Group{Kind: group.LowLayerWindShear, Runway: rwy, ShearComplete: true}, true
	}

	return group.Group{}, false
}
