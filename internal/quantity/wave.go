package quantity

import "strconv"

// WaveHeightType distinguishes a descriptive sea-state code (S0-S9) from an
// explicit wave height in decimeters (Hxxx).
type WaveHeightType int

const (
	WaveHeightNotReported WaveHeightType = iota
	StateOfSurface
	ExplicitHeight
)

// StateOfSurfaceCode is the WMO 3700 descriptive sea-surface state.
type StateOfSurfaceCode int

const (
	StateCalmGlassy StateOfSurfaceCode = iota
	StateCalmRippled
	StateSmooth
	StateSlight
	StateModerate
	StateRough
	StateVeryRough
	StateHigh
	StateVeryHigh
	StatePhenomenal
)

// WaveHeight is a state-of-surface descriptor or an explicit height, both
// ultimately expressed in decimeters (divide by 10 for meters).
type WaveHeight struct {
	kind          WaveHeightType
	state         StateOfSurfaceCode
	decimeters    int
	haveDecimeter bool
}

// Kind returns whether this is a descriptive state or an explicit height.
func (w WaveHeight) Kind() WaveHeightType { return w.kind }

// State returns the descriptive sea-surface state (only meaningful when
// Kind() == StateOfSurface).
func (w WaveHeight) State() StateOfSurfaceCode { return w.state }

// Decimeters returns the wave height in decimeters. For a descriptive state
// this is the state's upper bound (S9/Phenomenal has no upper bound and
// returns false).
func (w WaveHeight) Decimeters() (int, bool) { return w.decimeters, w.haveDecimeter }

// Meters returns the wave height in meters, where available.
func (w WaveHeight) Meters() (float64, bool) {
	if !w.haveDecimeter {
		return 0, false
	}
	return float64(w.decimeters) / 10, true
}

// stateUpperBoundDecimeters are the upper bounds (in decimeters) for each
// descriptive sea-surface state; StatePhenomenal is open-ended (141+).
var stateUpperBoundDecimeters = map[StateOfSurfaceCode]int{
	StateCalmGlassy:  0,
	StateCalmRippled: 1,
	StateSmooth:      5,
	StateSlight:      12,
	StateModerate:    25,
	StateRough:       40,
	StateVeryRough:   60,
	StateHigh:        90,
	StateVeryHigh:    140,
}

// minPhenomenalDecimeters is StatePhenomenal's open lower bound.
const minPhenomenalDecimeters = 141

// WaveHeightFromStateString parses a single-digit descriptive state code
// "S0".."S9" (the leading "S" is expected already stripped by the caller).
func WaveHeightFromStateString(digit byte) (WaveHeight, bool) {
	if digit < '0' || digit > '9' {
		return WaveHeight{}, false
	}
	state := StateOfSurfaceCode(digit - '0')
	w := WaveHeight{kind: StateOfSurface, state: state}
	if bound, ok := stateUpperBoundDecimeters[state]; ok {
		w.decimeters, w.haveDecimeter = bound, true
	}
	return w, true
}

// WaveHeightFromExplicitString parses a 3-digit explicit wave height in
// decimeters ("H120" with the leading "H" already stripped, i.e. "120").
func WaveHeightFromExplicitString(s string) (WaveHeight, bool) {
	if len(s) != 3 || !isAllDigits(s) {
		return WaveHeight{}, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return WaveHeight{}, false
	}
	return WaveHeight{kind: ExplicitHeight, decimeters: n, haveDecimeter: true}, true
}
