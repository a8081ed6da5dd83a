package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaf/internal/group"
)

func TestEmptyReport(t *testing.T) {
	m := New()
	assert.Equal(t, EmptyReport, m.FinalTransition())
}

func TestMetarHeaderThenBody(t *testing.T) {
	m := New()
	m.Transition(group.CategoryMETAR)
	require.Equal(t, NONE, m.Error())
	m.Transition(group.CategoryLocation)
	m.Transition(group.CategoryReportTime)
	assert.Equal(t, METARBody, m.Section())
	m.Transition(group.CategoryOther) // wind, visibility, etc.
	assert.Equal(t, NONE, m.FinalTransition())
}

func TestTafRequiresTimeSpan(t *testing.T) {
	m := New()
	m.Transition(group.CategoryTAF)
	m.Transition(group.CategoryLocation)
	m.Transition(group.CategoryReportTime)
	assert.Equal(t, Header, m.Section())
	m.Transition(group.CategoryTimeSpan)
	assert.Equal(t, TAFBody, m.Section())
	assert.Equal(t, NONE, m.Error())
}

func TestTafMissingTimeSpanErrors(t *testing.T) {
	m := New()
	m.Transition(group.CategoryTAF)
	m.Transition(group.CategoryLocation)
	m.Transition(group.CategoryReportTime)
	m.Transition(group.CategoryOther)
	assert.Equal(t, ExpectedTimeSpan, m.Error())
}

func TestBareLocationDisambiguatesByTimeSpan(t *testing.T) {
	m := New()
	m.Transition(group.CategoryLocation)
	m.Transition(group.CategoryReportTime)
	assert.Equal(t, KindUnknown, m.Kind())
	m.Transition(group.CategoryTimeSpan)
	assert.Equal(t, KindTAF, m.Kind())
	assert.Equal(t, TAFBody, m.Section())
}

func TestBareLocationFallsBackToMetarWithReparse(t *testing.T) {
	m := New()
	m.Transition(group.CategoryLocation)
	m.Transition(group.CategoryReportTime)
	m.Transition(group.CategoryOther) // not a second time-span
	assert.Equal(t, KindMETAR, m.Kind())
	assert.True(t, m.IsReparseRequired())
	assert.Equal(t, METARBody, m.Section())
}

func TestNilForbidsFurtherGroups(t *testing.T) {
	m := New()
	m.Transition(group.CategoryMETAR)
	m.Transition(group.CategoryLocation)
	m.Transition(group.CategoryReportTime)
	m.Transition(group.CategoryNil)
	m.Transition(group.CategoryOther)
	assert.Equal(t, UnexpectedGroupAfterNil, m.Error())
}

func TestCnlOnlyInTaf(t *testing.T) {
	m := New()
	m.Transition(group.CategoryMETAR)
	m.Transition(group.CategoryLocation)
	m.Transition(group.CategoryReportTime)
	m.Transition(group.CategoryCnl)
	assert.Equal(t, CnlAllowedInTafOnly, m.Error())
}

func TestAmdOnlyInTaf(t *testing.T) {
	m := New()
	m.Transition(group.CategoryMETAR)
	m.Transition(group.CategoryAMD)
	assert.Equal(t, AmdAllowedInTafOnly, m.Error())
}

func TestMaintenanceOnlyInMetarRemarks(t *testing.T) {
	m := New()
	m.Transition(group.CategoryTAF)
	m.Transition(group.CategoryLocation)
	m.Transition(group.CategoryReportTime)
	m.Transition(group.CategoryTimeSpan)
	m.Transition(group.CategoryRmk)
	m.Transition(group.CategoryMaintenance)
	assert.Equal(t, MaintenanceIndicatorAllowedInMetarOnly, m.Error())
}

func TestMaintenanceIndicatorTerminatesMetarRemarks(t *testing.T) {
	m := New()
	m.Transition(group.CategoryMETAR)
	m.Transition(group.CategoryLocation)
	m.Transition(group.CategoryReportTime)
	m.Transition(group.CategoryRmk)
	m.Transition(group.CategoryMaintenance)
	require.Equal(t, NONE, m.Error())
	m.Transition(group.CategoryOther)
	assert.Equal(t, UnexpectedGroupAfterMaintenanceIndicator, m.Error())
}

func TestUnexpectedReportEndInHeader(t *testing.T) {
	m := New()
	m.Transition(group.CategoryMETAR)
	assert.Equal(t, UnexpectedReportEnd, m.FinalTransition())
}
