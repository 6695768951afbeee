package storage

// Fixed key set, one per collection or singleton. The names are part of the
// persisted format and must not change between releases.
const (
	KeyUserProfile       = "userProfile"
	KeyHealthEntries     = "healthEntries"
	KeyDrinkEntries      = "drinkEntries"
	KeyReminders         = "reminders"
	KeyForumMessages     = "forumMessages"
	KeySamsungHealthData = "samsungHealthData"
	KeyTodoLists         = "todoLists"
	KeyShoppingLists     = "shoppingLists"
	KeyNotes             = "notes"
	KeyAppointments      = "appointments"
	KeyRecipes           = "recipes"
	KeyUserStats         = "userStats"
	KeyAppSettings       = "appSettings"
	KeyGameState         = "gameState"
)

// AllKeys lists every known key in load order.
var AllKeys = []string{
	KeyUserProfile,
	KeyHealthEntries,
	KeyDrinkEntries,
	KeyReminders,
	KeyForumMessages,
	KeySamsungHealthData,
	KeyTodoLists,
	KeyShoppingLists,
	KeyNotes,
	KeyAppointments,
	KeyRecipes,
	KeyUserStats,
	KeyAppSettings,
	KeyGameState,
}
