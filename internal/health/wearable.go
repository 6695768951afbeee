package health

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"vitalog/internal/models"
)

// SimulateSync produces a plausible wearable snapshot for a date. Used by the
// sync command in place of a real device bridge.
func SimulateSync(date string, now time.Time) models.SamsungHealthData {
	heartRateResting := rand.Intn(20) + 60
	heartRateLight := rand.Intn(30) + 80
	heartRateSports := rand.Intn(50) + 130
	stepCount := rand.Intn(10000) + 5000
	sleepDuration := float64(rand.Intn(3) + 6)
	sleepLight := float64(rand.Intn(2) + 2)
	sleepDeep := float64(rand.Intn(2) + 1)
	sleepREM := rand.Float64()*1.5 + 0.5

	return models.SamsungHealthData{
		ID:               uuid.New().String(),
		Date:             date,
		HeartRateResting: &heartRateResting,
		HeartRateLight:   &heartRateLight,
		HeartRateSports:  &heartRateSports,
		StepCount:        &stepCount,
		SleepDuration:    &sleepDuration,
		SleepLight:       &sleepLight,
		SleepDeep:        &sleepDeep,
		SleepREM:         &sleepREM,
		LastSyncTime:     now.UTC().Format(time.RFC3339),
	}
}

// SleepQuality classifies a night by the deep-sleep and REM share of total
// sleep. Returns "No data" when the snapshot has no sleep duration.
func SleepQuality(data models.SamsungHealthData) string {
	if data.SleepDuration == nil || *data.SleepDuration == 0 {
		return "No data"
	}

	var deepPercent, remPercent float64
	if data.SleepDeep != nil {
		deepPercent = *data.SleepDeep / *data.SleepDuration * 100
	}
	if data.SleepREM != nil {
		remPercent = *data.SleepREM / *data.SleepDuration * 100
	}

	switch {
	case deepPercent > 20 && remPercent > 15:
		return "Excellent"
	case deepPercent > 15 && remPercent > 10:
		return "Good"
	case deepPercent > 10 && remPercent > 5:
		return "Fair"
	default:
		return "Poor"
	}
}
