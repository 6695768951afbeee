// Package validation checks records at the input boundary. The repository
// itself accepts any well-shaped record; commands validate before calling it,
// mirroring where the checks live in the app's forms.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"vitalog/internal/models"
)

var validate = validator.New()

// ValidateProfile checks the onboarding profile fields.
func ValidateProfile(profile models.UserProfile) error {
	if err := validate.Struct(profile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// ValidateHealthEntry checks an entry's shape and the rule that every entry
// carries at least one resting vital sign.
func ValidateHealthEntry(entry models.HealthEntry) error {
	if err := validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	if entry.PulseResting == nil && entry.SystolicResting == nil {
		return fmt.Errorf("entry needs a resting pulse or a resting systolic value")
	}
	return nil
}

// ValidateDrinkEntry checks a hydration record.
func ValidateDrinkEntry(entry models.DrinkEntry) error {
	if err := validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid drink entry: %w", err)
	}
	return nil
}

// ValidateReminder checks a reminder record.
func ValidateReminder(r models.Reminder) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid reminder: %w", err)
	}
	return nil
}

// ValidateAppointment checks an appointment record.
func ValidateAppointment(a models.Appointment) error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid appointment: %w", err)
	}
	return nil
}

// ValidateSettings checks the app settings singleton.
func ValidateSettings(s models.AppSettings) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
