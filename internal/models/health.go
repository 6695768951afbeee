package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// UserProfile is the onboarding profile. The avg* fields form the personal
// baseline that new readings are flagged against.
type UserProfile struct {
	Name         string `json:"name" validate:"required"`
	Age          int    `json:"age" validate:"gt=0,lt=150"`
	Gender       Gender `json:"gender" validate:"oneof=male female other"`
	Height       int    `json:"height" validate:"gt=0"`
	Weight       int    `json:"weight" validate:"gt=0"`
	AvgPulse     int    `json:"avgPulse" validate:"gt=0"`
	AvgSystolic  int    `json:"avgSystolic" validate:"gt=0"`
	AvgDiastolic int    `json:"avgDiastolic" validate:"gt=0"`
	Language     string `json:"language,omitempty" validate:"omitempty,oneof=en de es fr"`
}

type ActivityLevel string

const (
	ActivityResting ActivityLevel = "resting"
	ActivityLight   ActivityLevel = "light"
	ActivitySports  ActivityLevel = "sports"
)

// HealthEntry is a single manual measurement. Vital-sign fields are pointers
// because absent and zero are different things for the warning evaluator and
// the averaging helpers.
type HealthEntry struct {
	ID                string        `json:"id"`
	Date              string        `json:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Time              string        `json:"time" validate:"required"`                     // HH:MM
	Medication        string        `json:"medication,omitempty"`
	MedicationAmount  string        `json:"medicationAmount,omitempty"`
	PulseResting      *int          `json:"pulseResting,omitempty"`
	PulseSitting      *int          `json:"pulseSitting,omitempty"`
	PulseStanding     *int          `json:"pulseStanding,omitempty"`
	SystolicResting   *int          `json:"systolicResting,omitempty"`
	DiastolicResting  *int          `json:"diastolicResting,omitempty"`
	SystolicSitting   *int          `json:"systolicSitting,omitempty"`
	DiastolicSitting  *int          `json:"diastolicSitting,omitempty"`
	SystolicStanding  *int          `json:"systolicStanding,omitempty"`
	DiastolicStanding *int          `json:"diastolicStanding,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	ActivityLevel     ActivityLevel `json:"activityLevel,omitempty" validate:"omitempty,oneof=resting light sports"`
	Mood              *int          `json:"mood,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// DrinkEntry records hydration in milliliters. Append-only.
type DrinkEntry struct {
	ID     string `json:"id"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required"`
	Amount int    `json:"amount" validate:"gt=0"`
}

type ReminderType string

const (
	ReminderPulse      ReminderType = "pulse"
	ReminderMedication ReminderType = "medication"
)

type Reminder struct {
	ID      string       `json:"id"`
	Type    ReminderType `json:"type" validate:"oneof=pulse medication"`
	Time    string       `json:"time" validate:"required"` // HH:MM
	Enabled bool         `json:"enabled"`
	Days    []string     `json:"days,omitempty"` // weekday names, empty means every day
}

type ForumMessage struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
}

// SamsungHealthData is one wearable-sync snapshot. One record per date; the
// date is the natural key on the write path.
type SamsungHealthData struct {
	ID               string   `json:"id"`
	Date             string   `json:"date"`
	HeartRateResting *int     `json:"heartRateResting,omitempty"`
	HeartRateLight   *int     `json:"heartRateLight,omitempty"`
	HeartRateSports  *int     `json:"heartRateSports,omitempty"`
	StepCount        *int     `json:"stepCount,omitempty"`
	SleepDuration    *float64 `json:"sleepDuration,omitempty"`
	SleepLight       *float64 `json:"sleepLight,omitempty"`
	SleepDeep        *float64 `json:"sleepDeep,omitempty"`
	SleepREM         *float64 `json:"sleepREM,omitempty"`
	LastSyncTime     string   `json:"lastSyncTime,omitempty"`
}
