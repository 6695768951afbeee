// Package repo owns every persisted collection. All reads serve the current
// in-memory state; every mutation recomputes the collection, stores it under
// its fixed key and notifies observers. A store-write failure is logged and
// returned but the in-memory change is kept, so memory and disk can diverge
// until the next successful write (accepted, see DESIGN.md).
package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"vitalog/internal/models"
	"vitalog/internal/storage"
)

// ErrNotFound is returned when an update or delete names an unknown id.
var ErrNotFound = errors.New("not found")

// ErrAlreadyClaimed rejects double-claiming a challenge reward.
var ErrAlreadyClaimed = errors.New("challenge reward already claimed")

// ErrChallengeIncomplete rejects claiming before the target is reached.
var ErrChallengeIncomplete = errors.New("challenge not completed")

// ErrInsufficientCoins rejects a shop purchase the balance cannot cover.
var ErrInsufficientCoins = errors.New("not enough coins")

// Repository is constructed once at process start and passed to whatever
// consumes it; there is no ambient global instance.
type Repository struct {
	store storage.Provider
	log   *slog.Logger
	now   func() time.Time

	mu        sync.Mutex
	loading   bool
	observers []func()

	profile       *models.UserProfile
	entries       []models.HealthEntry
	drinks        []models.DrinkEntry
	reminders     []models.Reminder
	forum         []models.ForumMessage
	wearable      []models.SamsungHealthData
	todoLists     []models.TodoList
	shoppingLists []models.ShoppingList
	notes         []models.Note
	appointments  []models.Appointment
	recipes       []models.Recipe
	stats         models.UserStats
	settings      models.AppSettings
	game          models.GameState
}

// New creates a repository over the given store. Call Load before use.
func New(store storage.Provider, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		store:   store,
		log:     logger,
		now:     time.Now,
		loading: true,
	}
}

// Loading is true from construction until the first Load finishes.
func (r *Repository) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// Subscribe registers a callback invoked after every mutation. Callbacks run
// outside the repository lock and may call back into the repository.
func (r *Repository) Subscribe(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

func (r *Repository) notify() {
	r.mu.Lock()
	observers := make([]func(), len(r.observers))
	copy(observers, r.observers)
	r.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// Load reads every known key. Failures are isolated per key: a missing or
// unparseable value falls back to that collection's default without touching
// the others. Absent singletons are seeded and persisted immediately.
func (r *Repository) Load() error {
	r.mu.Lock()

	// No profile key means onboarding has not completed; nil stands in.
	r.profile = nil
	r.loadKey(storage.KeyUserProfile, &r.profile)

	r.entries = []models.HealthEntry{}
	r.loadKey(storage.KeyHealthEntries, &r.entries)
	r.drinks = []models.DrinkEntry{}
	r.loadKey(storage.KeyDrinkEntries, &r.drinks)
	r.reminders = []models.Reminder{}
	r.loadKey(storage.KeyReminders, &r.reminders)
	r.forum = []models.ForumMessage{}
	r.loadKey(storage.KeyForumMessages, &r.forum)
	r.wearable = []models.SamsungHealthData{}
	r.loadKey(storage.KeySamsungHealthData, &r.wearable)
	r.todoLists = []models.TodoList{}
	r.loadKey(storage.KeyTodoLists, &r.todoLists)
	r.shoppingLists = []models.ShoppingList{}
	r.loadKey(storage.KeyShoppingLists, &r.shoppingLists)
	r.notes = []models.Note{}
	r.loadKey(storage.KeyNotes, &r.notes)
	r.appointments = []models.Appointment{}
	r.loadKey(storage.KeyAppointments, &r.appointments)
	r.recipes = []models.Recipe{}
	r.loadKey(storage.KeyRecipes, &r.recipes)

	if !r.loadKey(storage.KeyUserStats, &r.stats) {
		r.stats = models.DefaultUserStats()
		if err := r.persist(storage.KeyUserStats, r.stats); err != nil {
			r.log.Warn("failed to seed default user stats", "error", err)
		}
	}
	if !r.loadKey(storage.KeyAppSettings, &r.settings) {
		r.settings = models.DefaultAppSettings()
		if err := r.persist(storage.KeyAppSettings, r.settings); err != nil {
			r.log.Warn("failed to seed default settings", "error", err)
		}
	}
	if !r.loadKey(storage.KeyGameState, &r.game) {
		r.game = models.DefaultGameState(r.now())
		if err := r.persist(storage.KeyGameState, r.game); err != nil {
			r.log.Warn("failed to seed default game state", "error", err)
		}
	}

	r.loading = false
	r.mu.Unlock()

	r.notify()
	return nil
}

// Refresh re-runs the whole load protocol.
func (r *Repository) Refresh() error {
	r.mu.Lock()
	r.loading = true
	r.mu.Unlock()
	return r.Load()
}

// loadKey reads and decodes one key into dst. Returns false when the value is
// absent, unreadable or unparseable; dst is untouched in those cases.
func (r *Repository) loadKey(key string, dst any) bool {
	data, err := r.store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			r.log.Error("failed to read collection", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.log.Error("failed to parse stored collection, using default", "key", key, "error", err)
		return false
	}

	return true
}

// persist serializes value under key. Callers hold the repository lock.
func (r *Repository) persist(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	if err := r.store.Set(key, data); err != nil {
		r.log.Error("failed to persist collection", "key", key, "error", err)
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}

	return nil
}

func (r *Repository) today() string {
	return r.now().Format("2006-01-02")
}

func (r *Repository) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}
