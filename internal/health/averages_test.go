package health

import (
	"testing"

	"vitalog/internal/models"
)

func TestAverageValuesEmpty(t *testing.T) {
	avg := AverageValues(nil)

	if avg.AvgPulse != 0 || avg.AvgSystolic != 0 || avg.AvgDiastolic != 0 {
		t.Errorf("averages over no entries should be zero, got %+v", avg)
	}
}

func TestAverageValuesRounding(t *testing.T) {
	entries := []models.HealthEntry{
		{PulseResting: intp(70)},
		{PulseResting: intp(71)},
	}

	avg := AverageValues(entries)

	// 70.5 rounds to 71
	if avg.AvgPulse != 71 {
		t.Errorf("AvgPulse = %d, want 71", avg.AvgPulse)
	}
}

func TestAverageValuesSkipsAbsentFields(t *testing.T) {
	entries := []models.HealthEntry{
		{PulseResting: intp(60), SystolicResting: intp(120)},
		{SystolicResting: intp(130)},
		{DiastolicResting: intp(80)},
	}

	avg := AverageValues(entries)

	if avg.AvgPulse != 60 {
		t.Errorf("AvgPulse = %d, want 60", avg.AvgPulse)
	}
	if avg.AvgSystolic != 125 {
		t.Errorf("AvgSystolic = %d, want 125", avg.AvgSystolic)
	}
	if avg.AvgDiastolic != 80 {
		t.Errorf("AvgDiastolic = %d, want 80", avg.AvgDiastolic)
	}
}

func TestAverageValuesByActivity(t *testing.T) {
	entries := []models.HealthEntry{
		{PulseResting: intp(60), ActivityLevel: models.ActivityResting},
		{PulseResting: intp(62), ActivityLevel: models.ActivityResting},
		{PulseResting: intp(90), ActivityLevel: models.ActivityLight},
		{PulseResting: intp(140), ActivityLevel: models.ActivitySports},
		{PulseResting: intp(75)}, // no activity level set
	}

	avg := AverageValues(entries)

	if avg.AvgPulseResting != 61 {
		t.Errorf("AvgPulseResting = %d, want 61", avg.AvgPulseResting)
	}
	if avg.AvgPulseLight != 90 {
		t.Errorf("AvgPulseLight = %d, want 90", avg.AvgPulseLight)
	}
	if avg.AvgPulseSports != 140 {
		t.Errorf("AvgPulseSports = %d, want 140", avg.AvgPulseSports)
	}
}
