// Package health holds the pure evaluation helpers for manual readings and
// wearable snapshots: baseline warnings, averages and sleep quality.
package health

import (
	"fmt"

	"vitalog/internal/models"
)

// Relative thresholds against the profile baseline.
const (
	highPulseFactor    = 1.3
	lowPulseFactor     = 0.7
	highSystolicFactor = 1.2
	lowSystolicFactor  = 0.8
)

// CheckWarnings compares the present vital signs of an entry against the
// profile baseline and returns one human-readable warning per crossed
// threshold, in check order. Absent fields produce no warnings. There is
// deliberately no diastolic check.
func CheckWarnings(entry models.HealthEntry, profile models.UserProfile) []string {
	warnings := []string{}

	if entry.PulseResting != nil && float64(*entry.PulseResting) > float64(profile.AvgPulse)*highPulseFactor {
		warnings = append(warnings, fmt.Sprintf("High pulse: %d bpm (avg: %d bpm)", *entry.PulseResting, profile.AvgPulse))
	}

	if entry.PulseResting != nil && float64(*entry.PulseResting) < float64(profile.AvgPulse)*lowPulseFactor {
		warnings = append(warnings, fmt.Sprintf("Low pulse: %d bpm (avg: %d bpm)", *entry.PulseResting, profile.AvgPulse))
	}

	if entry.SystolicResting != nil && float64(*entry.SystolicResting) > float64(profile.AvgSystolic)*highSystolicFactor {
		warnings = append(warnings, fmt.Sprintf("High systolic: %d mmHg (avg: %d mmHg)", *entry.SystolicResting, profile.AvgSystolic))
	}

	if entry.SystolicResting != nil && float64(*entry.SystolicResting) < float64(profile.AvgSystolic)*lowSystolicFactor {
		warnings = append(warnings, fmt.Sprintf("Low systolic: %d mmHg (avg: %d mmHg)", *entry.SystolicResting, profile.AvgSystolic))
	}

	return warnings
}
