package cli

import (
	"fmt"

	"github.com/google/uuid"

	"vitalog/internal/models"
)

type TodoCmd struct {
	NewList    TodoNewListCmd    `cmd:"" name:"new-list" help:"Create a to-do list."`
	List       TodoListCmd       `cmd:"" help:"Show all to-do lists."`
	Add        TodoAddCmd        `cmd:"" help:"Add a task to a list."`
	Done       TodoDoneCmd       `cmd:"" help:"Mark a task as completed."`
	DeleteList TodoDeleteListCmd `cmd:"" name:"delete-list" help:"Delete a list and its tasks."`
}

type TodoNewListCmd struct {
	Name string `arg:"" help:"List name."`
}

func (c *TodoNewListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	list := models.TodoList{
		ID:        uuid.New().String(),
		Name:      c.Name,
		CreatedAt: nowTimestamp(),
		Tasks:     []models.TodoTask{},
	}

	if err := ctx.Repo.AddTodoList(list); err != nil {
		return err
	}

	fmt.Printf("Created list: %s (ID: %s)\n", list.Name, list.ID)
	return nil
}

type TodoListCmd struct{}

func (c *TodoListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	lists := ctx.Repo.TodoLists()
	if len(lists) == 0 {
		fmt.Println("No to-do lists found")
		return nil
	}

	for _, list := range lists {
		fmt.Printf("%s  [%s]\n", list.Name, list.ID)
		for _, task := range list.Tasks {
			mark := " "
			if task.Completed {
				mark = "x"
			}
			due := ""
			if task.DueDate != "" {
				due = fmt.Sprintf("  (due %s %s)", task.DueDate, task.DueTime)
			}
			fmt.Printf("  [%s] %s%s  [%s]\n", mark, task.Title, due, task.ID)
		}
	}

	return nil
}

type TodoAddCmd struct {
	ListID  string `arg:"" help:"ID of the list."`
	Title   string `arg:"" help:"Task title."`
	DueDate string `help:"Due date (YYYY-MM-DD)." default:""`
	DueTime string `help:"Due time (HH:MM)." default:""`
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	for _, list := range ctx.Repo.TodoLists() {
		if list.ID == c.ListID {
			list.Tasks = append(list.Tasks, models.TodoTask{
				ID:      uuid.New().String(),
				Title:   c.Title,
				DueDate: c.DueDate,
				DueTime: c.DueTime,
				ListID:  list.ID,
			})
			if err := ctx.Repo.UpdateTodoList(list); err != nil {
				return err
			}
			fmt.Printf("Added task: %s\n", c.Title)
			return nil
		}
	}

	return fmt.Errorf("to-do list not found: %s", c.ListID)
}

type TodoDoneCmd struct {
	TaskID string `arg:"" help:"ID of the task to complete."`
}

func (c *TodoDoneCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	for _, list := range ctx.Repo.TodoLists() {
		for i, task := range list.Tasks {
			if task.ID != c.TaskID {
				continue
			}
			if task.Completed {
				fmt.Println("Task is already completed")
				return nil
			}

			list.Tasks[i].Completed = true
			if err := ctx.Repo.UpdateTodoList(list); err != nil {
				return err
			}

			stats := ctx.Repo.UserStats()
			stats.TodosCompleted++
			unlockAchievements(&stats, models.AchievementTodosCompleted, stats.TodosCompleted, nowTimestamp())
			if err := ctx.Repo.UpdateUserStats(stats); err != nil {
				return err
			}

			fmt.Printf("Completed: %s\n", task.Title)
			return nil
		}
	}

	return fmt.Errorf("task not found: %s", c.TaskID)
}

type TodoDeleteListCmd struct {
	ID string `arg:"" help:"ID of the list to delete."`
}

func (c *TodoDeleteListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.DeleteTodoList(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted list %s\n", c.ID)
	return nil
}
