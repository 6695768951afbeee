package health

import (
	"math"

	"vitalog/internal/models"
)

// Averages holds rounded means over a set of entries. A metric with no
// samples averages to 0, never NaN.
type Averages struct {
	AvgPulse        int
	AvgSystolic     int
	AvgDiastolic    int
	AvgPulseResting int
	AvgPulseLight   int
	AvgPulseSports  int
}

// AverageValues computes unweighted means of the resting vitals over entries
// where the field is present, plus resting-pulse means partitioned by
// activity level.
func AverageValues(entries []models.HealthEntry) Averages {
	var totalPulse, pulseCount int
	var totalSystolic, systolicCount int
	var totalDiastolic, diastolicCount int
	var totalResting, restingCount int
	var totalLight, lightCount int
	var totalSports, sportsCount int

	for _, entry := range entries {
		if entry.PulseResting != nil {
			totalPulse += *entry.PulseResting
			pulseCount++

			switch entry.ActivityLevel {
			case models.ActivityResting:
				totalResting += *entry.PulseResting
				restingCount++
			case models.ActivityLight:
				totalLight += *entry.PulseResting
				lightCount++
			case models.ActivitySports:
				totalSports += *entry.PulseResting
				sportsCount++
			}
		}
		if entry.SystolicResting != nil {
			totalSystolic += *entry.SystolicResting
			systolicCount++
		}
		if entry.DiastolicResting != nil {
			totalDiastolic += *entry.DiastolicResting
			diastolicCount++
		}
	}

	return Averages{
		AvgPulse:        roundedMean(totalPulse, pulseCount),
		AvgSystolic:     roundedMean(totalSystolic, systolicCount),
		AvgDiastolic:    roundedMean(totalDiastolic, diastolicCount),
		AvgPulseResting: roundedMean(totalResting, restingCount),
		AvgPulseLight:   roundedMean(totalLight, lightCount),
		AvgPulseSports:  roundedMean(totalSports, sportsCount),
	}
}

func roundedMean(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
