package health

import (
	"testing"

	"vitalog/internal/models"
)

func baselineProfile() models.UserProfile {
	return models.UserProfile{
		Name:         "Test",
		Age:          40,
		AvgPulse:     70,
		AvgSystolic:  120,
		AvgDiastolic: 80,
	}
}

func intp(v int) *int { return &v }

func TestCheckWarningsHighPulse(t *testing.T) {
	entry := models.HealthEntry{PulseResting: intp(92)}

	warnings := CheckWarnings(entry, baselineProfile())

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
	if warnings[0] != "High pulse: 92 bpm (avg: 70 bpm)" {
		t.Errorf("unexpected warning: %q", warnings[0])
	}
}

func TestCheckWarningsLowPulse(t *testing.T) {
	entry := models.HealthEntry{PulseResting: intp(48)}

	warnings := CheckWarnings(entry, baselineProfile())

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
	if warnings[0] != "Low pulse: 48 bpm (avg: 70 bpm)" {
		t.Errorf("unexpected warning: %q", warnings[0])
	}
}

func TestCheckWarningsAtThresholdIsQuiet(t *testing.T) {
	// 91 == 70*1.3 exactly; threshold crossings are strict.
	entry := models.HealthEntry{PulseResting: intp(91), SystolicResting: intp(144)}

	if warnings := CheckWarnings(entry, baselineProfile()); len(warnings) != 0 {
		t.Errorf("expected no warnings at exact threshold, got %v", warnings)
	}
}

func TestCheckWarningsSystolic(t *testing.T) {
	high := models.HealthEntry{SystolicResting: intp(145)}
	if warnings := CheckWarnings(high, baselineProfile()); len(warnings) != 1 ||
		warnings[0] != "High systolic: 145 mmHg (avg: 120 mmHg)" {
		t.Errorf("unexpected warnings for high systolic: %v", warnings)
	}

	low := models.HealthEntry{SystolicResting: intp(95)}
	if warnings := CheckWarnings(low, baselineProfile()); len(warnings) != 1 ||
		warnings[0] != "Low systolic: 95 mmHg (avg: 120 mmHg)" {
		t.Errorf("unexpected warnings for low systolic: %v", warnings)
	}
}

func TestCheckWarningsNoDiastolicCheck(t *testing.T) {
	// Diastolic values are stored but never evaluated.
	entry := models.HealthEntry{DiastolicResting: intp(200)}

	if warnings := CheckWarnings(entry, baselineProfile()); len(warnings) != 0 {
		t.Errorf("expected no diastolic warnings, got %v", warnings)
	}
}

func TestCheckWarningsAbsentFields(t *testing.T) {
	warnings := CheckWarnings(models.HealthEntry{}, baselineProfile())

	if warnings == nil {
		t.Fatal("warnings should be an empty slice, not nil")
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings for an empty entry, got %v", warnings)
	}
}

func TestCheckWarningsNormalReading(t *testing.T) {
	entry := models.HealthEntry{PulseResting: intp(70), SystolicResting: intp(120)}

	if warnings := CheckWarnings(entry, baselineProfile()); len(warnings) != 0 {
		t.Errorf("expected no warnings for a baseline reading, got %v", warnings)
	}
}

func TestCheckWarningsCombined(t *testing.T) {
	entry := models.HealthEntry{PulseResting: intp(95), SystolicResting: intp(150)}

	warnings := CheckWarnings(entry, baselineProfile())
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
}
