package group

// reservedExtentCodes are runway-state contamination-extent codes that parse
// (so the group is still produced) but are semantically invalid.
var reservedExtentCodes = map[int]bool{3: true, 4: true, 6: true, 7: true, 8: true}

// IsValid reports whether a structurally-parsed Group also satisfies its
// semantic invariants (gust exceeding reported speed, dew point exceeding
// temperature, reserved runway-state extent codes). A Group that fails
// IsValid is still a fully shaped value — recognition and validity are
// separate concerns, and an invalid group is never rejected by the
// dispatcher or the state machine.
func (g Group) IsValid() bool {
	switch g.Kind {
	case Wind:
		if g.HaveGust {
			speed, haveSpeed := g.WindSpeed.Magnitude()
			gust, haveGust := g.GustSpeed.Magnitude()
			if haveSpeed && haveGust && (gust <= speed) {
				return false
			}
		}
		return true
	case TemperatureDewPoint:
		if g.HaveTemperature && g.HaveDewPoint {
			t, _ := g.Temperature.Celsius()
			d, _ := g.DewPoint.Celsius()
			if d > t {
				return false
			}
			// Exception: a freezing-zero temperature (M00) paired with a
			// non-freezing-zero dew point (00) is invalid even though the
			// magnitudes compare equal. The reverse (00 temperature, M00 dew
			// point) is valid: the dew point genuinely does not exceed it.
			if t == 0 && d == 0 && g.Temperature.Freezing() && !g.DewPoint.Freezing() {
				return false
			}
		}
		return true
	case RunwayState:
		if g.ExtentReserved {
			return false
		}
		return true
	default:
		return true
	}
}
