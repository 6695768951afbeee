package cli

import (
	"fmt"

	"vitalog/internal/models"
	"vitalog/internal/validation"
)

type SettingsCmd struct {
	Theme        *string `help:"Theme (light|dark|auto)."`
	FontSize     *string `help:"Font size (small|medium|large)."`
	Security     *bool   `help:"Enable or disable the security code."`
	SecurityCode *string `help:"Set the security code."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	settings := ctx.Repo.AppSettings()

	changed := false
	if c.Theme != nil {
		settings.Theme = models.Theme(*c.Theme)
		changed = true
	}
	if c.FontSize != nil {
		settings.FontSize = models.FontSize(*c.FontSize)
		changed = true
	}
	if c.SecurityCode != nil {
		settings.SecurityCode = *c.SecurityCode
		changed = true
	}
	if c.Security != nil {
		if *c.Security && settings.SecurityCode == "" {
			return fmt.Errorf("set a security code before enabling security")
		}
		settings.SecurityEnabled = *c.Security
		changed = true
	}

	if changed {
		if err := validation.ValidateSettings(settings); err != nil {
			return err
		}
		if err := ctx.Repo.UpdateAppSettings(settings); err != nil {
			return err
		}
		fmt.Println("Settings updated.")
	}

	fmt.Println("Current settings:")
	fmt.Printf("  theme:     %s\n", settings.Theme)
	fmt.Printf("  font_size: %s\n", settings.FontSize)
	fmt.Printf("  security:  %t\n", settings.SecurityEnabled)

	return nil
}
