package group

// TrendType distinguishes the four trend-envelope shapes a single token can
// carry before the combiner fuses them (see internal/combine).
type TrendType int

const (
	TrendTypeNone TrendType = iota
	TrendBecoming
	TrendTemporary
	TrendInterrupt
	TrendNotSignificant
	TrendTimeSpanOnly // a bare DDhh/DDhh validity span, not yet attached to a type
	TrendProbabilityOnly
	TrendTimeOnly // FM/TL/AT anchor with no type yet
)

// Probability is the PROB30/PROB40 qualifier on a trend. "Not significant"
// has no explicit annotation and is read as ProbabilityNone meaning >= 50%.
type Probability int

const (
	ProbabilityNone Probability = iota
	Probability30
	Probability40
)

// CloudAmount is the okta-band amount keyword of a cloud-layer group.
type CloudAmount int

const (
	CloudAmountNotReported CloudAmount = iota
	Few
	Scattered
	Broken
	Overcast
	VerticalVisibilityAmount
	NoSignificantCloud
	NoCloudDetected
	Clear
	SkyClear
)

// ConvectiveType is the optional cumulonimbus/towering-cumulus suffix on a
// cloud layer.
type ConvectiveType int

const (
	ConvectiveTypeNone ConvectiveType = iota
	ToweringCumulus
	Cumulonimbus
)

// WeatherQualifier is the intensity/proximity/recency prefix of a weather
// group.
type WeatherQualifier int

const (
	QualifierNone WeatherQualifier = iota
	QualifierLight
	QualifierModerate
	QualifierHeavy
	QualifierVicinity
	QualifierRecent
)

// WeatherDescriptor is the optional two-letter descriptor of a weather
// group (shallow/partial/patches/low-drifting/blowing/shower/thunderstorm/
// freezing).
type WeatherDescriptor int

const (
	DescriptorNone WeatherDescriptor = iota
	Shallow
	Partial
	Patches
	LowDrifting
	Blowing
	Showers
	Thunderstorm
	Freezing
)

// PressureKind distinguishes the four wire encodings a Pressure group can
// come from, so callers can tell an altimeter reading from a remark.
type PressureKind int

const (
	PressureAltimeter PressureKind = iota
	PressureForecast
	PressureSeaLevel
	PressureQFE
)

// RVRTrend is the optional U/D/N trend suffix of a runway-visual-range group.
type RVRTrend int

const (
	RVRTrendNone RVRTrend = iota
	RVRTrendUp
	RVRTrendDown
	RVRTrendNoChange
)

// ColorCodeValue is one of the seven closed NATO color-code words.
type ColorCodeValue int

const (
	ColorCodeNone ColorCodeValue = iota
	ColorBlue
	ColorWhite
	ColorGreen
	ColorYellow1
	ColorYellow2
	ColorAmber
	ColorRed
)
