package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"vitalog/internal/cli"
	"vitalog/internal/config"
	"vitalog/internal/logging"
	"vitalog/internal/repo"
	"vitalog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:""`
	Storage string `help:"Store file path; extension selects the backend (.json or SQLite)." type:"path" default:""`
	Debug   bool   `help:"Enable debug logging."`

	Init        cli.InitCmd        `cmd:"" help:"Initialize vitalog storage."`
	Tui         cli.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Profile     cli.ProfileCmd     `cmd:"" help:"Manage the user profile."`
	Entry       cli.EntryCmd       `cmd:"" help:"Record and review health entries."`
	Drink       cli.DrinkCmd       `cmd:"" help:"Track hydration."`
	Reminder    cli.ReminderCmd    `cmd:"" help:"Manage reminders."`
	Todo        cli.TodoCmd        `cmd:"" help:"Manage to-do lists."`
	Shopping    cli.ShoppingCmd    `cmd:"" help:"Manage shopping lists."`
	Note        cli.NoteCmd        `cmd:"" help:"Manage notes."`
	Appointment cli.AppointmentCmd `cmd:"" help:"Manage appointments."`
	Recipe      cli.RecipeCmd      `cmd:"" help:"Manage recipes."`
	Forum       cli.ForumCmd       `cmd:"" help:"Local message board."`
	Sync        cli.SyncCmd        `cmd:"" help:"Wearable data sync."`
	Stats       cli.StatsCmd       `cmd:"" help:"Show progress, averages and achievements."`
	Settings    cli.SettingsCmd    `cmd:"" help:"View or update app settings."`
	Garden      cli.GardenCmd      `cmd:"" help:"The flower garden."`
	Backup      cli.BackupCmd      `cmd:"" help:"Manage backups."`
	Doctor      cli.DoctorCmd      `cmd:"" help:"Run diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("vitalog"),
		kong.Description("Personal health tracker with a flower garden to keep you coming back"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Storage != "" {
		cfg.Storage = CLI.Storage
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(cfg.Storage, ".json") {
		store = storage.NewJSONStore(cfg.Storage)
	} else {
		store = storage.NewSQLiteStore(cfg.Storage)
	}

	logger := logging.New(os.Stderr, cfg.Debug)

	appCtx := &cli.Context{
		Store:  store,
		Repo:   repo.New(store, logger),
		Config: cfg,
		Log:    logger,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
