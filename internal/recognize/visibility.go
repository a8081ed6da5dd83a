package recognize

import (
	"metaf/internal/group"
	"metaf/internal/quantity"
	"metaf/internal/syntax"
)

// recognizeVisibility accepts three shapes: meters optionally followed by a
// compass-direction suffix ("8000", "1200NE"), statute miles with optional
// P/M modifier and optional fraction ("P6SM", "M1/4SM"), or a bare single
// digit ("1") that is an "incomplete integer" for the combiner to fuse with
// a following fraction group into a mixed value ("1 1/2SM").
func recognizeVisibility(token string, _ syntax.Section) (group.Group, bool) {
	if len(token) == 1 && token[0] >= '1' && token[0] <= '9' {
		return group.Group{Kind: group.Visibility, VisIncompleteInteger: int(token[0] - '0'), IsIncompleteInteger: true}, true
	}

	if d, ok := quantity.DistanceFromMiles(token); ok {
		return group.Group{Kind: group.Visibility, VisDistance: d}, true
	}

	if len(token) >= 4 {
		if d, ok := quantity.DistanceFromMeters(token[:4]); ok {
			g := group.Group{Kind: group.Visibility, VisDistance: d}
			if len(token) > 4 {
				dir, ok := quantity.DirectionFromCardinalString(token[4:])
				if !ok {
					return group.Group{}, false
				}
				g.VisDirection = dir
				g.HaveVisDirection = true
			}
			return g, true
		}
	}

	return group.Group{}, false
}
