package repo

import (
	"vitalog/internal/models"
	"vitalog/internal/progression"
	"vitalog/internal/storage"
)

// UserStats returns the stats singleton.
func (r *Repository) UserStats() models.UserStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// UpdateUserStats overwrites the stats singleton. Callers adjusting counters
// (streaks, completed todos) go through here; point awards use AddPoints so
// the level fields stay derived.
func (r *Repository) UpdateUserStats(stats models.UserStats) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.stats = stats
	return r.persist(storage.KeyUserStats, r.stats)
}

// AddPoints is the sole entry point for point awards. It adds n points,
// recomputes level and level progress, and persists the stats.
func (r *Repository) AddPoints(n int) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()
	return r.addPointsLocked(n)
}

func (r *Repository) addPointsLocked(n int) error {
	r.stats.TotalPoints += n
	r.stats.Level = progression.LevelForPoints(r.stats.TotalPoints)
	r.stats.LevelProgress = progression.ProgressForPoints(r.stats.TotalPoints)
	return r.persist(storage.KeyUserStats, r.stats)
}

// AppSettings returns the settings singleton.
func (r *Repository) AppSettings() models.AppSettings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

// UpdateAppSettings overwrites the settings singleton.
func (r *Repository) UpdateAppSettings(settings models.AppSettings) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.settings = settings
	return r.persist(storage.KeyAppSettings, r.settings)
}
