package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaf/internal/group"
	"metaf/internal/syntax"
)

func TestDispatchFixedKeyword(t *testing.T) {
	g := Dispatch("METAR", syntax.Header)
	assert.Equal(t, group.FixedKeyword, g.Kind)
	assert.Equal(t, "METAR", g.Text)
}

func TestDispatchLocation(t *testing.T) {
	g := Dispatch("KABQ", syntax.Header)
	assert.Equal(t, group.Location, g.Kind)
	assert.Equal(t, "KABQ", g.ICAO)
}

func TestDispatchWind(t *testing.T) {
	g := Dispatch("23004KT", syntax.METARBody)
	require.Equal(t, group.Wind, g.Kind)
	deg, _ := g.WindDirection.Degrees()
	assert.Equal(t, 230, deg)
	mag, _ := g.WindSpeed.Magnitude()
	assert.Equal(t, 4, mag)
	assert.False(t, g.HaveGust)
}

func TestDispatchWindWithGust(t *testing.T) {
	g := Dispatch("23015G25KT", syntax.METARBody)
	require.Equal(t, group.Wind, g.Kind)
	assert.True(t, g.HaveGust)
	assert.True(t, g.IsValid())
}

func TestWindGustEqualSpeedInvalid(t *testing.T) {
	g := Dispatch("23015G15KT", syntax.METARBody)
	require.Equal(t, group.Wind, g.Kind)
	assert.False(t, g.IsValid())
}

func TestDispatchVisibilityMiles(t *testing.T) {
	g := Dispatch("10SM", syntax.METARBody)
	require.Equal(t, group.Visibility, g.Kind)
	v, _ := g.VisDistance.Value()
	assert.Equal(t, float64(10), v)
}

func TestDispatchCloud(t *testing.T) {
	g := Dispatch("FEW080", syntax.METARBody)
	require.Equal(t, group.Cloud, g.Kind)
	assert.Equal(t, group.Few, g.CloudAmount)
	v, _ := g.CloudHeight.Value()
	assert.Equal(t, float64(8000), v)
}

func TestDispatchTemperatureDewPoint(t *testing.T) {
	g := Dispatch("29/07", syntax.METARBody)
	require.Equal(t, group.TemperatureDewPoint, g.Kind)
	temp, _ := g.Temperature.Celsius()
	assert.Equal(t, 29, temp)
	dew, _ := g.DewPoint.Celsius()
	assert.Equal(t, 7, dew)
	assert.True(t, g.IsValid())
}

func TestDispatchPressureAltimeter(t *testing.T) {
	g := Dispatch("A3005", syntax.METARBody)
	require.Equal(t, group.Pressure, g.Kind)
	v, _ := g.PressureValue.Value()
	assert.InDelta(t, 30.05, v, 1e-9)
}

func TestDispatchColorCodeWithBlack(t *testing.T) {
	g := Dispatch("BLACKGRN", syntax.METARBody)
	require.Equal(t, group.ColorCode, g.Kind)
	assert.Equal(t, group.ColorGreen, g.ColorCodeValue)
	assert.True(t, g.ColorBlack)
}

func TestDispatchPlainTextFallback(t *testing.T) {
	g := Dispatch("XYZZY123", syntax.METARBody)
	assert.Equal(t, group.PlainText, g.Kind)
	assert.Equal(t, "XYZZY123", g.Text)
}

func TestDispatchTrendTimeSpan(t *testing.T) {
	g := Dispatch("0614/0615", syntax.TAFBody)
	require.Equal(t, group.Trend, g.Kind)
	assert.Equal(t, group.TrendTimeSpanOnly, g.TrendType)
}

func TestDispatchWeatherPromotion(t *testing.T) {
	g := Dispatch("SHRASN", syntax.TAFBody)
	require.Equal(t, group.Weather, g.Kind)
	assert.Equal(t, group.Showers, g.WeatherDescriptor)
	assert.Contains(t, g.WeatherPhenomena, "RA")
	assert.Contains(t, g.WeatherPhenomena, "SN")
	assert.Equal(t, group.QualifierModerate, g.WeatherQualifier)
}

func TestDispatchRunwayStateReservedExtent(t *testing.T) {
	g := Dispatch("R06/533064", syntax.METARBody)
	require.Equal(t, group.RunwayState, g.Kind)
	assert.False(t, g.IsValid())
}
