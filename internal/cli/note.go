package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/services"
)

var errNotLoggedIn = errors.New("not logged in")

// requireOwner resolves the current session account, printing a hint when
// there is none.
func (a *App) requireOwner(ctx context.Context) (*models.Account, error) {
	account := a.auth.CurrentUser(ctx)
	if account == nil {
		fmt.Fprintln(a.out, "Log in first (type 'login')")
		return nil, errNotLoggedIn
	}
	return account, nil
}

func (a *App) promptNoteID(prompt string) (int64, error) {
	raw, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Not a note id:", raw)
		return 0, err
	}
	return id, nil
}

func (a *App) AddNote(ctx context.Context) error {
	owner, err := a.requireOwner(ctx)
	if err != nil {
		return err
	}

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	image, err := GetSimpleText(a.reader, "Image path (optional)", a.out)
	if err != nil {
		return err
	}

	input := models.NoteInput{Title: title, Content: content, ImageURI: image}
	if err := input.Validate(); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if err := a.notes.CreateNote(ctx, owner.ID, title, content, image); err != nil {
		fmt.Fprintln(a.out, "Failed to create note:", err)
		return err
	}

	fmt.Fprintln(a.out, "Note created")
	return nil
}

// List prints the owner's notes, filtered by an optional query over
// title/content and arranged by the session's sort order.
func (a *App) List(ctx context.Context, args []string) error {
	owner, err := a.requireOwner(ctx)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	notes := services.FilterNotes(a.notes.ListNotes(ctx, owner.ID), query)
	services.SortNotes(notes, a.sortOrder)
	if len(notes) == 0 {
		if query != "" {
			fmt.Fprintln(a.out, "No notes match", query)
		} else {
			fmt.Fprintln(a.out, "No notes yet")
		}
		return nil
	}

	for _, n := range notes {
		marker := "   "
		if n.ImageURI != "" {
			marker = "img"
		}
		fmt.Fprintf(a.out, "%d  %s  %s  %s\n",
			n.ID, n.CreatedAt.Format("2006-01-02 15:04"), marker, n.Title)
	}
	return nil
}

// Sort switches the session's listing arrangement.
func (a *App) Sort(args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: sort newest|oldest|title|title-desc")
		return nil
	}

	order, err := services.ParseSortOrder(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.sortOrder = order
	fmt.Fprintln(a.out, "Sorting by", order)
	return nil
}

func (a *App) Show(ctx context.Context) error {
	owner, err := a.requireOwner(ctx)
	if err != nil {
		return err
	}

	id, err := a.promptNoteID("Enter note id to show")
	if err != nil {
		return err
	}

	for _, n := range a.notes.ListNotes(ctx, owner.ID) {
		if n.ID != id {
			continue
		}
		fmt.Fprintf(a.out, "# %s\n%s\n", n.Title, n.Content)
		if n.ImageURI != "" {
			fmt.Fprintln(a.out, "image:", n.ImageURI)
		}
		return nil
	}

	fmt.Fprintln(a.out, "No such note")
	return nil
}

func (a *App) Edit(ctx context.Context) error {
	owner, err := a.requireOwner(ctx)
	if err != nil {
		return err
	}

	id, err := a.promptNoteID("Enter note id to edit")
	if err != nil {
		return err
	}

	var current *models.Note
	for _, n := range a.notes.ListNotes(ctx, owner.ID) {
		if n.ID == id {
			current = &n
			break
		}
	}
	if current == nil {
		fmt.Fprintln(a.out, "No such note")
		return nil
	}

	title, err := GetSimpleText(a.reader, "New title (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = current.Title
	}
	content, err := GetMultiline(a.reader, "New content (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = current.Content
	}
	image, err := GetSimpleText(a.reader, "New image path (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if image == "" {
		image = current.ImageURI
	}

	input := models.NoteInput{Title: title, Content: content, ImageURI: image}
	if err := input.Validate(); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if err := a.notes.UpdateNote(ctx, id, title, content, image); err != nil {
		fmt.Fprintln(a.out, "Failed to update note:", err)
		return err
	}

	fmt.Fprintln(a.out, "Note updated")
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	if _, err := a.requireOwner(ctx); err != nil {
		return err
	}

	id, err := a.promptNoteID("Enter note id to delete")
	if err != nil {
		return err
	}

	if err := a.notes.DeleteNote(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Failed to delete note:", err)
		return err
	}

	fmt.Fprintln(a.out, "Note deleted")
	return nil
}
