package repo

import (
	"fmt"

	"vitalog/internal/models"
	"vitalog/internal/storage"
)

// UserProfile returns the profile and whether onboarding has completed.
func (r *Repository) UserProfile() (models.UserProfile, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.profile == nil {
		return models.UserProfile{}, false
	}
	return *r.profile, true
}

// UpdateUserProfile overwrites the singleton profile.
func (r *Repository) UpdateUserProfile(profile models.UserProfile) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.profile = &profile
	return r.persist(storage.KeyUserProfile, r.profile)
}

// HealthEntries returns a snapshot of all entries.
func (r *Repository) HealthEntries() []models.HealthEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.HealthEntry(nil), r.entries...)
}

// AddHealthEntry appends an entry. Entries are immutable once created; the
// only later operation is deletion.
func (r *Repository) AddHealthEntry(entry models.HealthEntry) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return r.persist(storage.KeyHealthEntries, r.entries)
}

// DeleteHealthEntry removes the entry with the given id.
func (r *Repository) DeleteHealthEntry(id string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	kept := make([]models.HealthEntry, 0, len(r.entries))
	found := false
	for _, entry := range r.entries {
		if entry.ID == id {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return fmt.Errorf("%w: health entry %s", ErrNotFound, id)
	}

	r.entries = kept
	return r.persist(storage.KeyHealthEntries, r.entries)
}

// EntriesByDate filters entries by exact date match.
func (r *Repository) EntriesByDate(date string) []models.HealthEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matches []models.HealthEntry
	for _, entry := range r.entries {
		if entry.Date == date {
			matches = append(matches, entry)
		}
	}
	return matches
}

// DrinkEntries returns a snapshot of all hydration records.
func (r *Repository) DrinkEntries() []models.DrinkEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.DrinkEntry(nil), r.drinks...)
}

// AddDrinkEntry appends a hydration record. Drink entries are append-only.
func (r *Repository) AddDrinkEntry(entry models.DrinkEntry) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.drinks = append(r.drinks, entry)
	return r.persist(storage.KeyDrinkEntries, r.drinks)
}

// DrinkEntriesByDate filters hydration records by exact date match.
func (r *Repository) DrinkEntriesByDate(date string) []models.DrinkEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matches []models.DrinkEntry
	for _, entry := range r.drinks {
		if entry.Date == date {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Reminders returns a snapshot of all reminders.
func (r *Repository) Reminders() []models.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Reminder(nil), r.reminders...)
}

// AddReminder appends a reminder.
func (r *Repository) AddReminder(reminder models.Reminder) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.reminders = append(r.reminders, reminder)
	return r.persist(storage.KeyReminders, r.reminders)
}

// UpdateReminder replaces the reminder with the matching id.
func (r *Repository) UpdateReminder(reminder models.Reminder) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	for i := range r.reminders {
		if r.reminders[i].ID == reminder.ID {
			r.reminders[i] = reminder
			return r.persist(storage.KeyReminders, r.reminders)
		}
	}
	return fmt.Errorf("%w: reminder %s", ErrNotFound, reminder.ID)
}

// DeleteReminder removes the reminder with the given id.
func (r *Repository) DeleteReminder(id string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	kept := make([]models.Reminder, 0, len(r.reminders))
	found := false
	for _, reminder := range r.reminders {
		if reminder.ID == id {
			found = true
			continue
		}
		kept = append(kept, reminder)
	}
	if !found {
		return fmt.Errorf("%w: reminder %s", ErrNotFound, id)
	}

	r.reminders = kept
	return r.persist(storage.KeyReminders, r.reminders)
}

// ForumMessages returns a snapshot of the local message board.
func (r *Repository) ForumMessages() []models.ForumMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ForumMessage(nil), r.forum...)
}

// AddForumMessage appends a message.
func (r *Repository) AddForumMessage(message models.ForumMessage) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.forum = append(r.forum, message)
	return r.persist(storage.KeyForumMessages, r.forum)
}

// LikeForumMessage increments and persists the like count. The app this
// replaces lost likes on reload; persisting here is the deliberate fix.
func (r *Repository) LikeForumMessage(id string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	for i := range r.forum {
		if r.forum[i].ID == id {
			r.forum[i].Likes++
			return r.persist(storage.KeyForumMessages, r.forum)
		}
	}
	return fmt.Errorf("%w: forum message %s", ErrNotFound, id)
}

// SamsungHealthData returns a snapshot of all wearable records.
func (r *Repository) SamsungHealthData() []models.SamsungHealthData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.SamsungHealthData(nil), r.wearable...)
}

// UpsertSamsungHealthData inserts a wearable record, replacing any existing
// record for the same date. The date is the natural key, not the id.
func (r *Repository) UpsertSamsungHealthData(data models.SamsungHealthData) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	replaced := false
	for i := range r.wearable {
		if r.wearable[i].Date == data.Date {
			r.wearable[i] = data
			replaced = true
			break
		}
	}
	if !replaced {
		r.wearable = append(r.wearable, data)
	}

	return r.persist(storage.KeySamsungHealthData, r.wearable)
}

// ReplaceSamsungHealthData swaps the whole wearable collection, for bulk
// sync results.
func (r *Repository) ReplaceSamsungHealthData(data []models.SamsungHealthData) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.wearable = append([]models.SamsungHealthData(nil), data...)
	return r.persist(storage.KeySamsungHealthData, r.wearable)
}

// SamsungHealthDataByDate returns the single record for a date, if any.
func (r *Repository) SamsungHealthDataByDate(date string) (models.SamsungHealthData, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, data := range r.wearable {
		if data.Date == date {
			return data, true
		}
	}
	return models.SamsungHealthData{}, false
}
