package cli

import (
	"fmt"

	"github.com/google/uuid"

	"vitalog/internal/models"
	"vitalog/internal/validation"
)

type AppointmentCmd struct {
	Add    AppointmentAddCmd    `cmd:"" help:"Add an appointment."`
	List   AppointmentListCmd   `cmd:"" help:"List appointments."`
	Delete AppointmentDeleteCmd `cmd:"" help:"Delete an appointment."`
}

type AppointmentAddCmd struct {
	Title string `arg:"" help:"Appointment title."`
	Date  string `arg:"" help:"Date (YYYY-MM-DD or 'today')."`
	Time  string `arg:"" help:"Time (HH:MM)."`
	Notes string `short:"n" help:"Notes." default:""`
}

func (c *AppointmentAddCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	appointment := models.Appointment{
		ID:    uuid.New().String(),
		Date:  date,
		Time:  c.Time,
		Title: c.Title,
		Notes: c.Notes,
	}

	if err := validation.ValidateAppointment(appointment); err != nil {
		return err
	}

	if err := ctx.Repo.AddAppointment(appointment); err != nil {
		return err
	}

	fmt.Printf("Added appointment: %s on %s %s (ID: %s)\n", c.Title, date, c.Time, appointment.ID)
	return nil
}

type AppointmentListCmd struct {
	Date string `help:"Only appointments for this date (YYYY-MM-DD or 'today')." default:""`
}

func (c *AppointmentListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	var appointments []models.Appointment
	if c.Date != "" {
		date, err := resolveDate(c.Date)
		if err != nil {
			return err
		}
		appointments = ctx.Repo.AppointmentsByDate(date)
	} else {
		appointments = ctx.Repo.Appointments()
	}

	if len(appointments) == 0 {
		fmt.Println("No appointments found")
		return nil
	}

	for _, appointment := range appointments {
		fmt.Printf("%s %s  %s  [%s]\n", appointment.Date, appointment.Time, appointment.Title, appointment.ID)
		if appointment.Notes != "" {
			fmt.Printf("    %s\n", appointment.Notes)
		}
	}

	return nil
}

type AppointmentDeleteCmd struct {
	ID string `arg:"" help:"ID of the appointment to delete."`
}

func (c *AppointmentDeleteCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.DeleteAppointment(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted appointment %s\n", c.ID)
	return nil
}
