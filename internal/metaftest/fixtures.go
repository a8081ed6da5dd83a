// Package metaftest holds the canonical reports exercised by the driver
// test suite (metaf_test.go), so a single corrected fixture fixes every
// dependent test.
package metaftest

const (
	// SimpleMETAR is a full ten-group METAR with no trend, no combiner
	// involvement, and a two-token remarks section.
	SimpleMETAR = "METAR KABQ 092052Z 23004KT 10SM FEW080 29/07 A3005 RMK AO2"

	// TafBecomingTrend exercises the TAF header validity time span and the
	// BECMG-then-DDhh/DDhh trend combiner merge.
	TafBecomingTrend = "TAF BGTL 060900Z 0609/0715 VRB06KT 8000 -SHRASN OVC003 BECMG 0614/0615"

	// ColorCodeBlackGreen exercises the BLACK-prefixed NATO color code.
	ColorCodeBlackGreen = "METAR EGYD 281050Z 11015KT 5000 M04/M05 Q1020 BLACKGRN"

	// NilAfterHeader exercises UNEXPECTED_GROUP_AFTER_NIL: a group appears
	// after a NIL report body.
	NilAfterHeader = "METAR KXYZ 092052Z NIL 23004KT"

	// MixedVisibility exercises the incomplete-integer/fraction visibility
	// combine ("1" + "1/2SM" -> 1.5 SM).
	MixedVisibility = "METAR KXYZ 092052Z 1 1/2SM"
)
