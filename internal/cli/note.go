package cli

import (
	"fmt"

	"github.com/google/uuid"

	"vitalog/internal/models"
)

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Add a note."`
	List   NoteListCmd   `cmd:"" help:"List notes."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete a note."`
}

type NoteAddCmd struct {
	Title   string `arg:"" help:"Note title."`
	Content string `arg:"" optional:"" help:"Note body."`
	Date    string `help:"Associated date (YYYY-MM-DD)." default:""`
	Time    string `help:"Associated time (HH:MM)." default:""`
}

func (c *NoteAddCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	note := models.Note{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Content:   c.Content,
		CreatedAt: nowTimestamp(),
		Date:      c.Date,
		Time:      c.Time,
	}

	if err := ctx.Repo.AddNote(note); err != nil {
		return err
	}

	fmt.Printf("Added note: %s (ID: %s)\n", note.Title, note.ID)
	return nil
}

type NoteListCmd struct{}

func (c *NoteListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	notes := ctx.Repo.Notes()
	if len(notes) == 0 {
		fmt.Println("No notes found")
		return nil
	}

	for _, note := range notes {
		fmt.Printf("%s  [%s]\n", note.Title, note.ID)
		if note.Content != "" {
			fmt.Printf("    %s\n", note.Content)
		}
	}

	return nil
}

type NoteDeleteCmd struct {
	ID string `arg:"" help:"ID of the note to delete."`
}

func (c *NoteDeleteCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.DeleteNote(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted note %s\n", c.ID)
	return nil
}
