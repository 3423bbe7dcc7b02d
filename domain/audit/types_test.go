package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
	}{
		{"RED", StatusRed},
		{"red", StatusRed},
		{" Green ", StatusGreen},
		{"YELLOW", StatusYellow},
		{"", StatusYellow},
		{"AMBER", StatusYellow},
		{"mostly fine", StatusYellow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeStatus(tt.input), "input %q", tt.input)
	}
}

func TestStatusScore(t *testing.T) {
	assert.Equal(t, 100.0, StatusGreen.Score())
	assert.Equal(t, 50.0, StatusYellow.Score())
	assert.Equal(t, 0.0, StatusRed.Score())
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{"Food", CategoryFood},
		{"It looks like a snack", CategoryFood},
		{"Beverage", CategoryFood},
		{"Facial lotion", CategoryCosmetic},
		{"soap bar", CategoryCosmetic}, // cosmetic keywords win over cleaning
		{"laundry detergent", CategoryCleaning},
		{"", CategoryOther},
		{"Power tool", CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeCategory(tt.input), "input %q", tt.input)
	}
}

func TestEmptyReport(t *testing.T) {
	report := EmptyReport("scan-1", CategoryOther)

	assert.Empty(t, report.Verdicts)
	assert.Equal(t, NothingToAnalyze, report.Summary)
	assert.Equal(t, "Unknown", report.Logistics.Origin)
	assert.Equal(t, 1.0, report.ConsensusRate())
}

func TestConsensusRate(t *testing.T) {
	report := AuditReport{Verdicts: []FinalVerdict{
		{Item: "a", Status: StatusGreen, Consensus: true},
		{Item: "b", Status: StatusRed, Consensus: false},
		{Item: "c", Status: StatusYellow, Consensus: true},
		{Item: "d", Status: StatusRed, Consensus: false},
	}}

	assert.Equal(t, 0.5, report.ConsensusRate())
}

func TestCountByStatus(t *testing.T) {
	report := AuditReport{Verdicts: []FinalVerdict{
		{Status: StatusGreen}, {Status: StatusGreen}, {Status: StatusRed},
	}}

	counts := report.CountByStatus()
	assert.Equal(t, 2, counts[StatusGreen])
	assert.Equal(t, 1, counts[StatusRed])
	assert.Equal(t, 0, counts[StatusYellow])
}
