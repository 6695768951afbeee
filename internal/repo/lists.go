package repo

import (
	"fmt"

	"vitalog/internal/models"
	"vitalog/internal/progression"
	"vitalog/internal/storage"
)

// TodoLists returns a snapshot of all to-do lists with their tasks.
func (r *Repository) TodoLists() []models.TodoList {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.TodoList(nil), r.todoLists...)
}

// AddTodoList appends a list.
func (r *Repository) AddTodoList(list models.TodoList) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.todoLists = append(r.todoLists, list)
	return r.persist(storage.KeyTodoLists, r.todoLists)
}

// UpdateTodoList replaces the list with the matching id, tasks included.
func (r *Repository) UpdateTodoList(list models.TodoList) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	for i := range r.todoLists {
		if r.todoLists[i].ID == list.ID {
			r.todoLists[i] = list
			return r.persist(storage.KeyTodoLists, r.todoLists)
		}
	}
	return fmt.Errorf("%w: todo list %s", ErrNotFound, list.ID)
}

// DeleteTodoList removes a list. Tasks are embedded in the list record, so
// removing the parent removes them all.
func (r *Repository) DeleteTodoList(id string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	kept := make([]models.TodoList, 0, len(r.todoLists))
	found := false
	for _, list := range r.todoLists {
		if list.ID == id {
			found = true
			continue
		}
		kept = append(kept, list)
	}
	if !found {
		return fmt.Errorf("%w: todo list %s", ErrNotFound, id)
	}

	r.todoLists = kept
	return r.persist(storage.KeyTodoLists, r.todoLists)
}

// ShoppingLists returns a snapshot of all shopping lists with their items.
func (r *Repository) ShoppingLists() []models.ShoppingList {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ShoppingList(nil), r.shoppingLists...)
}

// AddShoppingList appends a list.
func (r *Repository) AddShoppingList(list models.ShoppingList) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.shoppingLists = append(r.shoppingLists, list)
	return r.persist(storage.KeyShoppingLists, r.shoppingLists)
}

// UpdateShoppingList replaces the list with the matching id, items included.
func (r *Repository) UpdateShoppingList(list models.ShoppingList) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	for i := range r.shoppingLists {
		if r.shoppingLists[i].ID == list.ID {
			r.shoppingLists[i] = list
			return r.persist(storage.KeyShoppingLists, r.shoppingLists)
		}
	}
	return fmt.Errorf("%w: shopping list %s", ErrNotFound, list.ID)
}

// DeleteShoppingList removes a list and, with it, its embedded items.
func (r *Repository) DeleteShoppingList(id string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	kept := make([]models.ShoppingList, 0, len(r.shoppingLists))
	found := false
	for _, list := range r.shoppingLists {
		if list.ID == id {
			found = true
			continue
		}
		kept = append(kept, list)
	}
	if !found {
		return fmt.Errorf("%w: shopping list %s", ErrNotFound, id)
	}

	r.shoppingLists = kept
	return r.persist(storage.KeyShoppingLists, r.shoppingLists)
}

// Notes returns a snapshot of all notes.
func (r *Repository) Notes() []models.Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Note(nil), r.notes...)
}

// AddNote appends a note.
func (r *Repository) AddNote(note models.Note) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.notes = append(r.notes, note)
	return r.persist(storage.KeyNotes, r.notes)
}

// UpdateNote replaces the note with the matching id.
func (r *Repository) UpdateNote(note models.Note) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	for i := range r.notes {
		if r.notes[i].ID == note.ID {
			r.notes[i] = note
			return r.persist(storage.KeyNotes, r.notes)
		}
	}
	return fmt.Errorf("%w: note %s", ErrNotFound, note.ID)
}

// DeleteNote removes the note with the given id.
func (r *Repository) DeleteNote(id string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	kept := make([]models.Note, 0, len(r.notes))
	found := false
	for _, note := range r.notes {
		if note.ID == id {
			found = true
			continue
		}
		kept = append(kept, note)
	}
	if !found {
		return fmt.Errorf("%w: note %s", ErrNotFound, id)
	}

	r.notes = kept
	return r.persist(storage.KeyNotes, r.notes)
}

// Appointments returns a snapshot of all appointments.
func (r *Repository) Appointments() []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Appointment(nil), r.appointments...)
}

// AddAppointment appends an appointment.
func (r *Repository) AddAppointment(appointment models.Appointment) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.appointments = append(r.appointments, appointment)
	return r.persist(storage.KeyAppointments, r.appointments)
}

// UpdateAppointment replaces the appointment with the matching id.
func (r *Repository) UpdateAppointment(appointment models.Appointment) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == appointment.ID {
			r.appointments[i] = appointment
			return r.persist(storage.KeyAppointments, r.appointments)
		}
	}
	return fmt.Errorf("%w: appointment %s", ErrNotFound, appointment.ID)
}

// DeleteAppointment removes the appointment with the given id.
func (r *Repository) DeleteAppointment(id string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	kept := make([]models.Appointment, 0, len(r.appointments))
	found := false
	for _, appointment := range r.appointments {
		if appointment.ID == id {
			found = true
			continue
		}
		kept = append(kept, appointment)
	}
	if !found {
		return fmt.Errorf("%w: appointment %s", ErrNotFound, id)
	}

	r.appointments = kept
	return r.persist(storage.KeyAppointments, r.appointments)
}

// AppointmentsByDate filters appointments by exact date match.
func (r *Repository) AppointmentsByDate(date string) []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matches []models.Appointment
	for _, appointment := range r.appointments {
		if appointment.Date == date {
			matches = append(matches, appointment)
		}
	}
	return matches
}

// Recipes returns a snapshot of all recipes.
func (r *Repository) Recipes() []models.Recipe {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Recipe(nil), r.recipes...)
}

// AddRecipe appends a recipe and awards the fixed recipe bonus as part of the
// same user-visible action. The two writes (recipes, then stats) are
// sequential best-effort: a stats failure leaves the recipe saved.
func (r *Repository) AddRecipe(recipe models.Recipe) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.recipes = append(r.recipes, recipe)
	if err := r.persist(storage.KeyRecipes, r.recipes); err != nil {
		return err
	}

	return r.addPointsLocked(progression.PointsRecipe)
}

// UpdateRecipe replaces the recipe with the matching id.
func (r *Repository) UpdateRecipe(recipe models.Recipe) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	for i := range r.recipes {
		if r.recipes[i].ID == recipe.ID {
			r.recipes[i] = recipe
			return r.persist(storage.KeyRecipes, r.recipes)
		}
	}
	return fmt.Errorf("%w: recipe %s", ErrNotFound, recipe.ID)
}

// DeleteRecipe removes the recipe with the given id. Points already awarded
// for it are kept; totals are cumulative.
func (r *Repository) DeleteRecipe(id string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	kept := make([]models.Recipe, 0, len(r.recipes))
	found := false
	for _, recipe := range r.recipes {
		if recipe.ID == id {
			found = true
			continue
		}
		kept = append(kept, recipe)
	}
	if !found {
		return fmt.Errorf("%w: recipe %s", ErrNotFound, id)
	}

	r.recipes = kept
	return r.persist(storage.KeyRecipes, r.recipes)
}
