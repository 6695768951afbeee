package models

type TodoTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate,omitempty"`
	DueTime   string `json:"dueTime,omitempty"`
	ListID    string `json:"listId"`
}

// TodoList embeds its tasks; deleting the list deletes them with it.
type TodoList struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt string     `json:"createdAt"`
	Tasks     []TodoTask `json:"tasks"`
}

type ShoppingItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Category string `json:"category,omitempty"`
	Checked  bool   `json:"checked"`
	ListID   string `json:"listId"`
}

type ShoppingList struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt string         `json:"createdAt"`
	Items     []ShoppingItem `json:"items"`
}

type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
}

type Appointment struct {
	ID    string `json:"id"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Time  string `json:"time" validate:"required"`
	Title string `json:"title" validate:"required"`
	Notes string `json:"notes"`
}

type RecipeIngredient struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type Recipe struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	ImageURI     string             `json:"imageUri,omitempty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions string             `json:"instructions"`
	CreatedAt    string             `json:"createdAt"`
}
