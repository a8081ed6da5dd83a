package quantity

import "strconv"

// PressureUnit is the unit a Pressure is expressed in.
type PressureUnit int

const (
	PressureUnitNone PressureUnit = iota
	Hectopascal
	InchesOfMercury
	MillimetersOfMercury
)

// Pressure is an optional value with a unit. It has four source encodings:
// altimeter (Q/A), forecast inches (QNHddddINS), sea-level pressure remark
// (SLPppp), and QFE.
type Pressure struct {
	reported bool
	value    float64
	unit     PressureUnit
}

// IsReported reports whether a value is present.
func (p Pressure) IsReported() bool { return p.reported }

// Unit returns the pressure's unit.
func (p Pressure) Unit() PressureUnit { return p.unit }

// Value returns the pressure's value in its own unit.
func (p Pressure) Value() (float64, bool) { return p.value, p.reported }

// inHgDecimalPointShift converts a 4-digit altimeter reading (e.g. "2992")
// to inches of mercury (29.92).
const inHgDecimalPointShift = 0.01

// PressureFromAltimeter parses a Q/A altimeter group: "Q1013" (hPa, no
// shift) or "A2992" (inHg, shifted by 0.01). "Q////"/"A////" decline (not
// reported, no numeric value, but the unit is still known).
func PressureFromAltimeter(s string) (Pressure, bool) {
	if len(s) != 5 {
		return Pressure{}, false
	}
	switch s[0] {
	case 'Q':
		if s[1:] == "////" {
			return Pressure{unit: Hectopascal}, true
		}
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return Pressure{}, false
		}
		return Pressure{reported: true, value: float64(n), unit: Hectopascal}, true
	case 'A':
		if s[1:] == "////" {
			return Pressure{unit: InchesOfMercury}, true
		}
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return Pressure{}, false
		}
		return Pressure{reported: true, value: float64(n) * inHgDecimalPointShift, unit: InchesOfMercury}, true
	default:
		return Pressure{}, false
	}
}

// PressureFromForecastString parses a TAF forecast pressure group
// "QNHddddINS" where dddd is inHg shifted by 0.01, e.g. "QNH2992INS".
func PressureFromForecastString(s string) (Pressure, bool) {
	const prefix, suffix = "QNH", "INS"
	if len(s) != len(prefix)+4+len(suffix) {
		return Pressure{}, false
	}
	if s[:len(prefix)] != prefix || s[len(s)-len(suffix):] != suffix {
		return Pressure{}, false
	}
	digits := s[len(prefix) : len(s)-len(suffix)]
	n, err := strconv.Atoi(digits)
	if err != nil || !isAllDigits(digits) {
		return Pressure{}, false
	}
	return Pressure{reported: true, value: float64(n) * inHgDecimalPointShift, unit: InchesOfMercury}, true
}

// seaLevelPressureThreshold is the cutover used to disambiguate a 3-digit
// SLP remark between the 900s and 1000s decade: p < 500 means 1000+p/10,
// p >= 500 means 900+p/10 (sea level pressure rarely exceeds 1050 hPa).
const seaLevelPressureThreshold = 500

// PressureFromSeaLevelString parses a remark-section "SLPppp" group (ppp is
// tenths of hPa above a 900 or 1000 hPa base, chosen by a 500 threshold):
// "SLP134" -> 1013.4 hPa, "SLP512" -> 951.2 hPa.
func PressureFromSeaLevelString(s string) (Pressure, bool) {
	const prefix = "SLP"
	if len(s) != len(prefix)+3 || s[:len(prefix)] != prefix {
		return Pressure{}, false
	}
	digits := s[len(prefix):]
	if !isAllDigits(digits) {
		return Pressure{}, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Pressure{}, false
	}
	base := 1000
	if n >= seaLevelPressureThreshold {
		base = 900
	}
	return Pressure{reported: true, value: float64(base) + float64(n)/10, unit: Hectopascal}, true
}

// PressureFromQFEString parses a remark-section "QFEmmm[/hhhh]" group, where
// mmm is mmHg and the optional hhhh after the slash is a hectopascal
// cross-check that is not retained (QFE is a single physical quantity).
func PressureFromQFEString(s string) (Pressure, bool) {
	const prefix = "QFE"
	if len(s) < len(prefix)+3 || s[:len(prefix)] != prefix {
		return Pressure{}, false
	}
	rest := s[len(prefix):]
	mmPart := rest
	if idx := indexByte(rest, '/'); idx >= 0 {
		mmPart = rest[:idx]
		hpaPart := rest[idx+1:]
		if hpaPart != "" && !isAllDigits(hpaPart) {
			return Pressure{}, false
		}
	}
	if !isAllDigits(mmPart) {
		return Pressure{}, false
	}
	n, err := strconv.Atoi(mmPart)
	if err != nil {
		return Pressure{}, false
	}
	return Pressure{reported: true, value: float64(n), unit: MillimetersOfMercury}, true
}

// conversion factors to hectopascal.
const (
	hpaPerInHg = 33.8639
	hpaPerMmHg = 1.33322
)

// ToUnit converts the pressure to another unit.
func (p Pressure) ToUnit(unit PressureUnit) (Pressure, bool) {
	if !p.reported {
		return Pressure{}, false
	}
	hpa := p.value
	switch p.unit {
	case Hectopascal:
	case InchesOfMercury:
		hpa = p.value * hpaPerInHg
	case MillimetersOfMercury:
		hpa = p.value * hpaPerMmHg
	default:
		return Pressure{}, false
	}
	var converted float64
	switch unit {
	case Hectopascal:
		converted = hpa
	case InchesOfMercury:
		converted = hpa / hpaPerInHg
	case MillimetersOfMercury:
		converted = hpa / hpaPerMmHg
	default:
		return Pressure{}, false
	}
	return Pressure{reported: true, value: converted, unit: unit}, true
}
