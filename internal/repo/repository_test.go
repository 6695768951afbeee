package repo

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"vitalog/internal/models"
	"vitalog/internal/storage"
)

func setupTestRepo(t *testing.T) (*Repository, storage.Provider) {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := New(store, logger)
	if err := r.Load(); err != nil {
		t.Fatalf("failed to load repository: %v", err)
	}

	return r, store
}

func intp(v int) *int { return &v }

func TestLoadSeedsDefaults(t *testing.T) {
	r, store := setupTestRepo(t)

	if r.Loading() {
		t.Error("Loading should be false after Load")
	}

	stats := r.UserStats()
	if stats.Level != 1 || stats.TotalPoints != 0 {
		t.Errorf("unexpected default stats: %+v", stats)
	}

	settings := r.AppSettings()
	if settings.Theme != models.ThemeAuto || settings.FontSize != models.FontMedium {
		t.Errorf("unexpected default settings: %+v", settings)
	}

	game := r.GameState()
	if len(game.Flowers) != 1 || game.Flowers[0].Name != "Blüte" {
		t.Errorf("expected the starter flower, got %+v", game.Flowers)
	}
	if len(game.Challenges) != 3 {
		t.Errorf("expected 3 seeded challenges, got %d", len(game.Challenges))
	}

	// Seeded singletons are written back immediately.
	if _, err := store.Get(storage.KeyGameState); err != nil {
		t.Errorf("seeded game state was not persisted: %v", err)
	}
	if _, err := store.Get(storage.KeyUserStats); err != nil {
		t.Errorf("seeded stats were not persisted: %v", err)
	}
}

func TestProfileLifecycle(t *testing.T) {
	r, _ := setupTestRepo(t)

	if _, ok := r.UserProfile(); ok {
		t.Error("profile should be absent before onboarding")
	}

	profile := models.UserProfile{Name: "Maria", Age: 62, Gender: models.GenderFemale,
		Height: 168, Weight: 70, AvgPulse: 70, AvgSystolic: 120, AvgDiastolic: 80}
	if err := r.UpdateUserProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	got, ok := r.UserProfile()
	if !ok || got.Name != "Maria" {
		t.Errorf("got %+v, ok=%t", got, ok)
	}
}

func TestHealthEntryCRUD(t *testing.T) {
	r, _ := setupTestRepo(t)

	entry := models.HealthEntry{ID: "e1", Date: "2026-08-31", Time: "08:00", PulseResting: intp(72)}
	if err := r.AddHealthEntry(entry); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	if got := r.EntriesByDate("2026-08-31"); len(got) != 1 || got[0].ID != "e1" {
		t.Errorf("EntriesByDate = %v", got)
	}
	if got := r.EntriesByDate("2026-09-01"); len(got) != 0 {
		t.Errorf("expected no entries for other dates, got %v", got)
	}

	if err := r.DeleteHealthEntry("e1"); err != nil {
		t.Fatalf("failed to delete entry: %v", err)
	}
	if err := r.DeleteHealthEntry("e1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for a second delete, got %v", err)
	}
}

func TestUpdateUnknownReminder(t *testing.T) {
	r, _ := setupTestRepo(t)

	err := r.UpdateReminder(models.Reminder{ID: "missing", Type: models.ReminderPulse, Time: "08:00"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertSamsungHealthDataReplacesByDate(t *testing.T) {
	r, _ := setupTestRepo(t)

	first := models.SamsungHealthData{ID: "s1", Date: "2026-08-31", StepCount: intp(5000)}
	second := models.SamsungHealthData{ID: "s2", Date: "2026-08-31", StepCount: intp(9000)}
	other := models.SamsungHealthData{ID: "s3", Date: "2026-09-01", StepCount: intp(100)}

	for _, data := range []models.SamsungHealthData{first, second, other} {
		if err := r.UpsertSamsungHealthData(data); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	all := r.SamsungHealthData()
	if len(all) != 2 {
		t.Fatalf("expected one record per date, got %d", len(all))
	}

	got, ok := r.SamsungHealthDataByDate("2026-08-31")
	if !ok || got.ID != "s2" || *got.StepCount != 9000 {
		t.Errorf("record for 2026-08-31 = %+v, ok=%t", got, ok)
	}
}

func TestLikeForumMessageIsPersisted(t *testing.T) {
	r, _ := setupTestRepo(t)

	message := models.ForumMessage{ID: "m1", Author: "Maria", Content: "Hello"}
	if err := r.AddForumMessage(message); err != nil {
		t.Fatalf("failed to post: %v", err)
	}
	if err := r.LikeForumMessage("m1"); err != nil {
		t.Fatalf("failed to like: %v", err)
	}

	// Likes survive a full reload.
	if err := r.Refresh(); err != nil {
		t.Fatalf("failed to refresh: %v", err)
	}

	messages := r.ForumMessages()
	if len(messages) != 1 || messages[0].Likes != 1 {
		t.Errorf("messages after reload = %+v", messages)
	}
}

func TestDeleteTodoListRemovesTasks(t *testing.T) {
	r, _ := setupTestRepo(t)

	list := models.TodoList{
		ID:   "l1",
		Name: "Errands",
		Tasks: []models.TodoTask{
			{ID: "t1", Title: "Pick up medication", ListID: "l1"},
		},
	}
	if err := r.AddTodoList(list); err != nil {
		t.Fatalf("failed to add list: %v", err)
	}

	if err := r.DeleteTodoList("l1"); err != nil {
		t.Fatalf("failed to delete list: %v", err)
	}

	if lists := r.TodoLists(); len(lists) != 0 {
		t.Errorf("expected no lists left, got %v", lists)
	}
}

func TestAddRecipeAwardsPoints(t *testing.T) {
	r, _ := setupTestRepo(t)

	recipe := models.Recipe{ID: "r1", Title: "Overnight oats"}
	if err := r.AddRecipe(recipe); err != nil {
		t.Fatalf("failed to add recipe: %v", err)
	}

	stats := r.UserStats()
	if stats.TotalPoints != 50 {
		t.Errorf("TotalPoints = %d, want 50", stats.TotalPoints)
	}
}

func TestAddPointsRecomputesLevel(t *testing.T) {
	r, _ := setupTestRepo(t)

	for _, n := range []int{20, 5, 50} {
		if err := r.AddPoints(n); err != nil {
			t.Fatalf("failed to add points: %v", err)
		}
	}

	stats := r.UserStats()
	if stats.TotalPoints != 75 {
		t.Errorf("TotalPoints = %d, want 75", stats.TotalPoints)
	}
	if stats.Level != 1 {
		t.Errorf("Level = %d, want 1", stats.Level)
	}
	if stats.LevelProgress != 0.15 {
		t.Errorf("LevelProgress = %v, want 0.15", stats.LevelProgress)
	}

	if err := r.AddPoints(500); err != nil {
		t.Fatalf("failed to add points: %v", err)
	}
	if stats := r.UserStats(); stats.Level != 2 {
		t.Errorf("Level = %d after 575 points, want 2", stats.Level)
	}
}

func TestWaterFlower(t *testing.T) {
	r, _ := setupTestRepo(t)

	state := r.GameState()
	state.Flowers[0].XP = 45
	if err := r.UpdateGameState(state); err != nil {
		t.Fatalf("failed to prepare game state: %v", err)
	}

	if err := r.WaterFlower("1"); err != nil {
		t.Fatalf("failed to water: %v", err)
	}

	game := r.GameState()
	flower := game.Flowers[0]
	if flower.XP != 55 {
		t.Errorf("XP = %d, want 55", flower.XP)
	}
	if flower.Level != 2 {
		t.Errorf("Level = %d, want 2 at 55 xp", flower.Level)
	}
	if !flower.WateredToday {
		t.Error("flower should be marked watered today")
	}
	if flower.LastWateredDate != time.Now().Format("2006-01-02") {
		t.Errorf("LastWateredDate = %q", flower.LastWateredDate)
	}
	if game.TotalXP != 10 {
		t.Errorf("TotalXP = %d, want 10", game.TotalXP)
	}

	// The single-flower daily challenge completes on the first watering.
	daily := game.Challenges[0]
	if !daily.Completed || daily.CompletedAt == "" {
		t.Errorf("daily challenge should be completed and stamped: %+v", daily)
	}
}

func TestWaterFlowerRepeatsWithoutLockout(t *testing.T) {
	r, _ := setupTestRepo(t)

	for i := 0; i < 3; i++ {
		if err := r.WaterFlower("1"); err != nil {
			t.Fatalf("watering %d failed: %v", i, err)
		}
	}

	game := r.GameState()
	if game.Flowers[0].XP != 30 {
		t.Errorf("XP = %d after three waterings, want 30", game.Flowers[0].XP)
	}
	if game.TotalXP != 30 {
		t.Errorf("TotalXP = %d, want 30", game.TotalXP)
	}
}

func TestWaterUnknownFlower(t *testing.T) {
	r, _ := setupTestRepo(t)

	if err := r.WaterFlower("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClaimChallenge(t *testing.T) {
	r, _ := setupTestRepo(t)

	state := r.GameState()
	state.Challenges[1].Completed = true // weekly-1, reward 50
	if err := r.UpdateGameState(state); err != nil {
		t.Fatalf("failed to prepare game state: %v", err)
	}

	if err := r.ClaimChallenge("weekly-1"); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	game := r.GameState()
	if game.Coins != 50 {
		t.Errorf("Coins = %d, want 50", game.Coins)
	}
	if game.Challenges[1].CompletedAt == "" {
		t.Error("claimed challenge should be stamped")
	}

	if err := r.ClaimChallenge("weekly-1"); !errors.Is(err, ErrAlreadyClaimed) {
		t.Errorf("expected ErrAlreadyClaimed, got %v", err)
	}
	if game := r.GameState(); game.Coins != 50 {
		t.Errorf("double claim changed the balance: %d", game.Coins)
	}
}

func TestClaimIncompleteChallenge(t *testing.T) {
	r, _ := setupTestRepo(t)

	if err := r.ClaimChallenge("weekly-1"); !errors.Is(err, ErrChallengeIncomplete) {
		t.Errorf("expected ErrChallengeIncomplete, got %v", err)
	}
	if err := r.ClaimChallenge("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBuyShopItem(t *testing.T) {
	r, _ := setupTestRepo(t)

	if err := r.BuyShopItem("fertilizer"); !errors.Is(err, ErrInsufficientCoins) {
		t.Errorf("expected ErrInsufficientCoins with 0 coins, got %v", err)
	}

	if err := r.AddGameCoins(12); err != nil {
		t.Fatalf("failed to grant coins: %v", err)
	}
	if err := r.BuyShopItem("fertilizer"); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if err := r.BuyShopItem("fertilizer"); err != nil {
		t.Fatalf("second purchase failed: %v", err)
	}

	game := r.GameState()
	if game.Coins != 2 {
		t.Errorf("Coins = %d, want 2", game.Coins)
	}
	if len(game.Inventory) != 1 || game.Inventory[0].Quantity != 2 {
		t.Errorf("inventory should hold one stack of two, got %+v", game.Inventory)
	}

	if err := r.BuyShopItem("unobtainium"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for an unknown item, got %v", err)
	}
}

func TestUseGameItem(t *testing.T) {
	r, _ := setupTestRepo(t)

	if err := r.AddGameCoins(5); err != nil {
		t.Fatalf("failed to grant coins: %v", err)
	}
	if err := r.BuyShopItem("fertilizer"); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	if err := r.UseGameItem("fertilizer", "1"); err != nil {
		t.Fatalf("use failed: %v", err)
	}

	game := r.GameState()
	if game.Flowers[0].XP != 10 {
		t.Errorf("flower XP = %d, want 10", game.Flowers[0].XP)
	}
	if game.TotalXP != 10 {
		t.Errorf("TotalXP = %d, want 10", game.TotalXP)
	}
	if len(game.Inventory) != 0 {
		t.Errorf("a used-up item should leave the inventory, got %+v", game.Inventory)
	}

	if err := r.UseGameItem("fertilizer", "1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for a spent item, got %v", err)
	}
}

func TestCreateFlower(t *testing.T) {
	r, _ := setupTestRepo(t)

	flower, err := r.CreateFlower("Rose")
	if err != nil {
		t.Fatalf("failed to plant: %v", err)
	}
	if flower.ID == "" || flower.Level != 1 || flower.XP != 0 {
		t.Errorf("unexpected new flower: %+v", flower)
	}

	if game := r.GameState(); len(game.Flowers) != 2 {
		t.Errorf("expected 2 flowers, got %d", len(game.Flowers))
	}
}

func TestClaimLevelUpReward(t *testing.T) {
	r, _ := setupTestRepo(t)

	if err := r.ClaimLevelUpReward("1", RewardCoins); err != nil {
		t.Fatalf("coin reward failed: %v", err)
	}
	if game := r.GameState(); game.Coins != 50 {
		t.Errorf("Coins = %d, want 50", game.Coins)
	}

	if err := r.ClaimLevelUpReward("1", RewardXP); err != nil {
		t.Fatalf("xp reward failed: %v", err)
	}
	game := r.GameState()
	if game.Flowers[0].XP != 25 {
		t.Errorf("flower XP = %d, want 25", game.Flowers[0].XP)
	}
	if game.TotalXP != 25 {
		t.Errorf("TotalXP = %d, want 25", game.TotalXP)
	}

	if err := r.ClaimLevelUpReward("1", RewardItem); err != nil {
		t.Fatalf("item reward failed: %v", err)
	}
	if game := r.GameState(); len(game.Inventory) != 1 {
		t.Errorf("expected one inventory item, got %+v", game.Inventory)
	}

	if err := r.ClaimLevelUpReward("1", "jackpot"); err == nil {
		t.Error("expected an error for an unknown reward type")
	}
	if err := r.ClaimLevelUpReward("missing", RewardXP); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadIsolatesCorruptKeys(t *testing.T) {
	r, store := setupTestRepo(t)

	// Valid JSON of the wrong shape for this key.
	if err := store.Set(storage.KeyHealthEntries, []byte(`{"oops":true}`)); err != nil {
		t.Fatalf("failed to plant corrupt value: %v", err)
	}
	if err := store.Set(storage.KeyNotes, []byte(`[{"id":"n1","title":"ok"}]`)); err != nil {
		t.Fatalf("failed to set notes: %v", err)
	}

	if err := r.Refresh(); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	if entries := r.HealthEntries(); len(entries) != 0 {
		t.Errorf("corrupt key should fall back to empty, got %v", entries)
	}
	if notes := r.Notes(); len(notes) != 1 || notes[0].ID != "n1" {
		t.Errorf("healthy key was affected: %v", notes)
	}
}

func TestSubscribeNotifies(t *testing.T) {
	r, _ := setupTestRepo(t)

	calls := 0
	r.Subscribe(func() { calls++ })

	if err := r.AddGameCoins(1); err != nil {
		t.Fatalf("mutation failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("observer ran %d times, want 1", calls)
	}

	// Reads do not notify.
	r.GameState()
	if calls != 1 {
		t.Errorf("a read notified observers")
	}
}
