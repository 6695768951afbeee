package cli

import (
	"fmt"
	"log/slog"
	"time"

	"vitalog/internal/backup"
	"vitalog/internal/config"
	"vitalog/internal/models"
	"vitalog/internal/progression"
	"vitalog/internal/repo"
	"vitalog/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Repo   *repo.Repository
	Config *config.Config
	Log    *slog.Logger
}

// LoadAll opens the store and hydrates the repository. Almost every command
// starts here; init is the exception.
func (c *Context) LoadAll() error {
	if err := c.Store.Load(); err != nil {
		return err
	}
	return c.Repo.Load()
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	mgr.SetMaxBackups(c.Config.BackupKeep)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		c.Log.Warn("automatic backup failed", "error", err)
	}
}

// requireProfile returns the onboarded profile or an actionable error.
func (c *Context) requireProfile() (models.UserProfile, error) {
	profile, ok := c.Repo.UserProfile()
	if !ok {
		return models.UserProfile{}, fmt.Errorf("no profile found, run 'vitalog profile set' first")
	}
	return profile, nil
}

func getCurrentDate() string {
	return time.Now().Format("2006-01-02")
}

func getCurrentTime() string {
	return time.Now().Format("15:04")
}

// resolveDate accepts YYYY-MM-DD or the literal "today".
func resolveDate(s string) (string, error) {
	if s == "" || s == "today" {
		return getCurrentDate(), nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", s)
	}
	return s, nil
}

// intPtr turns a zero-means-absent flag into an optional field.
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func fmtOptInt(v *int, unit string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d%s", *v, unit)
}

// recordEntryDay advances the consecutive-days streak for today's first entry
// and refreshes the streak achievements.
func recordEntryDay(stats *models.UserStats, today, timestamp string) {
	if stats.LastEntryDate == today {
		return
	}

	yesterday := ""
	if t, err := time.Parse("2006-01-02", today); err == nil {
		yesterday = t.AddDate(0, 0, -1).Format("2006-01-02")
	}

	if stats.LastEntryDate == yesterday {
		stats.ConsecutiveDays++
	} else {
		stats.ConsecutiveDays = 1
	}
	stats.LastEntryDate = today

	unlockAchievements(stats, models.AchievementConsecutiveDays, stats.ConsecutiveDays, timestamp)
}

// unlockAchievements appends a badge for every newly reached tier of one
// achievement type. Already-unlocked tiers keep their original stamp.
func unlockAchievements(stats *models.UserStats, achievementType models.AchievementType, value int, timestamp string) {
	unlocked := map[int]bool{}
	for _, a := range stats.Achievements {
		if a.Type == achievementType {
			unlocked[a.Tier] = true
		}
	}

	reached := progression.AchievementProgress(achievementType, value)
	for tier := 1; tier <= reached; tier++ {
		if unlocked[tier] {
			continue
		}
		stats.Achievements = append(stats.Achievements, models.Achievement{
			ID:         fmt.Sprintf("%s-%d", achievementType, tier),
			Type:       achievementType,
			Tier:       tier,
			UnlockedAt: timestamp,
		})
	}
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
