package cli

import (
	"fmt"

	"github.com/google/uuid"

	"vitalog/internal/models"
)

type ForumCmd struct {
	Post ForumPostCmd `cmd:"" help:"Post a message."`
	List ForumListCmd `cmd:"" help:"Show the message board."`
	Like ForumLikeCmd `cmd:"" help:"Like a message."`
}

type ForumPostCmd struct {
	Content string `arg:"" help:"Message text."`
	Author  string `short:"a" help:"Author name (defaults to the profile name)." default:""`
}

func (c *ForumPostCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	author := c.Author
	if author == "" {
		if profile, ok := ctx.Repo.UserProfile(); ok {
			author = profile.Name
		} else {
			author = "Anonymous"
		}
	}

	message := models.ForumMessage{
		ID:        uuid.New().String(),
		Author:    author,
		Content:   c.Content,
		Timestamp: nowTimestamp(),
	}

	if err := ctx.Repo.AddForumMessage(message); err != nil {
		return err
	}

	fmt.Printf("Posted as %s (ID: %s)\n", author, message.ID)
	return nil
}

type ForumListCmd struct{}

func (c *ForumListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	messages := ctx.Repo.ForumMessages()
	if len(messages) == 0 {
		fmt.Println("No messages yet")
		return nil
	}

	for _, message := range messages {
		fmt.Printf("%s  %s (♥ %d)  [%s]\n", message.Timestamp, message.Author, message.Likes, message.ID)
		fmt.Printf("    %s\n", message.Content)
	}

	return nil
}

type ForumLikeCmd struct {
	ID string `arg:"" help:"ID of the message to like."`
}

func (c *ForumLikeCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.LikeForumMessage(c.ID); err != nil {
		return err
	}

	fmt.Println("Liked!")
	return nil
}
