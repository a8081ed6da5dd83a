package quantity

import "strconv"

// DirectionStatus distinguishes the ways a direction field can be absent,
// variable, or present.
type DirectionStatus int

const (
	DirectionOmitted DirectionStatus = iota
	DirectionNotReported
	DirectionVariable
	DirectionNoDirectionalVariation
	DirectionDegrees
	DirectionCardinalReported
)

// Cardinal is an 8-point compass sector, with a distinct "true" variant for
// the four axis directions at exact 0/90/180/270 degrees.
type Cardinal int

const (
	CardinalNone Cardinal = iota
	N
	NE
	E
	SE
	S
	SW
	W
	NW
	TrueN
	TrueE
	TrueS
	TrueW
)

// Direction is a status plus an optional 0-360 degree value, or (for
// visibility groups that report a compass letter rather than a bearing) an
// already-resolved Cardinal.
type Direction struct {
	status   DirectionStatus
	degree   int
	cardinal Cardinal
}

// Status returns the direction's status.
func (d Direction) Status() DirectionStatus { return d.status }

// Degrees returns the reported degree value.
func (d Direction) Degrees() (int, bool) {
	return d.degree, d.status == DirectionDegrees
}

// DirectionFromValue builds a reported direction from an already-known
// degree value (0-360).
func DirectionFromValue(degrees int) (Direction, bool) {
	if degrees < 0 || degrees > 360 {
		return Direction{}, false
	}
	return Direction{status: DirectionDegrees, degree: degrees}, true
}

// DirectionFromString parses a 3-digit direction field. "///" declines to
// not-reported, "VRB" to variable. A group ending in a digit other than 0 is
// not a valid direction (directions are always reported as multiples of 10
// within wind/visibility groups).
func DirectionFromString(s string) (Direction, bool) {
	switch s {
	case "///":
		return Direction{status: DirectionNotReported}, true
	case "VRB":
		return Direction{status: DirectionVariable}, true
	}
	if len(s) != 3 || !isAllDigits(s) {
		return Direction{}, false
	}
	if s[2] != '0' {
		return Direction{}, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > 360 {
		return Direction{}, false
	}
	return Direction{status: DirectionDegrees, degree: n}, true
}

// cardinalLetters maps a visibility/secondary-location direction suffix to a
// Cardinal; "NDV" (no directional variation) is handled separately since it
// is a status, not a direction.
var cardinalLetters = map[string]Cardinal{
	"N": N, "NE": NE, "E": E, "SE": SE, "S": S, "SW": SW, "W": W, "NW": NW,
}

// DirectionFromCardinalString parses a compass-letter direction suffix, as
// used by visibility groups that report a direction qualifier directly
// ("dddd NE") instead of an azimuth in degrees. "NDV" is recognized as the
// no-directional-variation status rather than a Cardinal.
func DirectionFromCardinalString(s string) (Direction, bool) {
	if s == "NDV" {
		return Direction{status: DirectionNoDirectionalVariation}, true
	}
	if c, ok := cardinalLetters[s]; ok {
		return Direction{status: DirectionCardinalReported, cardinal: c}, true
	}
	return Direction{}, false
}

// octant sector boundaries, matching a 45-degree sector centered on each
// cardinal point with N wrapping across 0/360.
const (
	degreesN  = 0
	degreesNE = 45
	degreesE  = 90
	degreesSE = 135
	degreesS  = 180
	degreesSW = 225
	degreesW  = 270
	degreesNW = 315
	maxDegree = 360
	halfOctant = 45 / 2
)

// Cardinal maps the direction to an 8-point compass sector. When
// trueDirections is set, the four axis directions (N/S/E/W) at exactly
// 0/90/180/270 degrees are reported as their "true" variants instead.
func (d Direction) Cardinal(trueDirections bool) Cardinal {
	if d.status == DirectionCardinalReported {
		return d.cardinal
	}
	if d.status != DirectionDegrees {
		return CardinalNone
	}
	deg := d.degree
	if trueDirections {
		switch deg {
		case degreesN, maxDegree:
			return TrueN
		case degreesE:
			return TrueE
		case degreesS:
			return TrueS
		case degreesW:
			return TrueW
		}
	}
	switch {
	case deg <= halfOctant:
		return N
	case deg <= degreesNE+halfOctant:
		return NE
	case deg <= degreesE+halfOctant:
		return E
	case deg <= degreesSE+halfOctant:
		return SE
	case deg <= degreesS+halfOctant:
		return S
	case deg <= degreesSW+halfOctant:
		return SW
	case deg <= degreesW+halfOctant:
		return W
	case deg <= degreesNW+halfOctant:
		return NW
	case deg <= maxDegree:
		return N
	default:
		return CardinalNone
	}
}
