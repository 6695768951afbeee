package cli

import (
	"fmt"

	"vitalog/internal/models"
	"vitalog/internal/validation"
)

type ProfileCmd struct {
	Set  ProfileSetCmd  `cmd:"" help:"Create or update the user profile."`
	Show ProfileShowCmd `cmd:"" help:"Show the user profile."`
}

type ProfileSetCmd struct {
	Name         string `help:"Display name." required:""`
	Age          int    `help:"Age in years." required:""`
	Gender       string `help:"Gender (male|female|other)." default:"other"`
	Height       int    `help:"Height in cm." required:""`
	Weight       int    `help:"Weight in kg." required:""`
	AvgPulse     int    `help:"Personal average resting pulse (bpm)." required:""`
	AvgSystolic  int    `help:"Personal average systolic pressure (mmHg)." required:""`
	AvgDiastolic int    `help:"Personal average diastolic pressure (mmHg)." required:""`
	Language     string `help:"Display language (en|de|es|fr)." default:""`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	profile := models.UserProfile{
		Name:         c.Name,
		Age:          c.Age,
		Gender:       models.Gender(c.Gender),
		Height:       c.Height,
		Weight:       c.Weight,
		AvgPulse:     c.AvgPulse,
		AvgSystolic:  c.AvgSystolic,
		AvgDiastolic: c.AvgDiastolic,
		Language:     c.Language,
	}

	if err := validation.ValidateProfile(profile); err != nil {
		return err
	}

	if err := ctx.Repo.UpdateUserProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Profile saved for %s\n", profile.Name)
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	profile, err := ctx.requireProfile()
	if err != nil {
		return err
	}

	fmt.Printf("Name:     %s\n", profile.Name)
	fmt.Printf("Age:      %d\n", profile.Age)
	fmt.Printf("Gender:   %s\n", profile.Gender)
	fmt.Printf("Height:   %d cm\n", profile.Height)
	fmt.Printf("Weight:   %d kg\n", profile.Weight)
	fmt.Printf("Baseline: pulse %d bpm, blood pressure %d/%d mmHg\n",
		profile.AvgPulse, profile.AvgSystolic, profile.AvgDiastolic)
	if profile.Language != "" {
		fmt.Printf("Language: %s\n", profile.Language)
	}
	return nil
}
