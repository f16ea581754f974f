package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/notekeeper/internal/models"
	"github.com/dmitrijs2005/notekeeper/internal/services"
)

// requireOwner fails the command when no session is active.
func requireOwner(cmd *cobra.Command) (*models.Account, error) {
	account := auth.CurrentUser(cmd.Context())
	if account == nil {
		return nil, fmt.Errorf("not logged in; run 'notekeeper login <username>' first")
	}
	return account, nil
}

func parseNoteID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a note id: %s", arg)
	}
	return id, nil
}

func addCmd() *cobra.Command {
	var title, content, image string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note for the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := requireOwner(cmd)
			if err != nil {
				return err
			}

			input := models.NoteInput{Title: title, Content: content, ImageURI: image}
			if err := input.Validate(); err != nil {
				return err
			}

			if err := notes.CreateNote(cmd.Context(), owner.ID, title, content, image); err != nil {
				return err
			}
			fmt.Println("Note created")
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&content, "content", "m", "", "note content")
	cmd.Flags().StringVarP(&image, "image", "i", "", "path to a cover image")
	return cmd
}

func listCmd() *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"ls"},
		Short:   "List the logged-in user's notes, optionally filtered and sorted",
		Long: `List the logged-in user's notes. A query filters to notes whose title or
content contains it, compared case-insensitively.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := requireOwner(cmd)
			if err != nil {
				return err
			}
			order, err := services.ParseSortOrder(sortBy)
			if err != nil {
				return err
			}

			list := services.FilterNotes(notes.ListNotes(cmd.Context(), owner.ID), strings.Join(args, " "))
			services.SortNotes(list, order)
			for _, n := range list {
				fmt.Printf("%d\t%s\t%s\n", n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sortBy, "sort", "s", string(services.SortNewestFirst),
		"sort order: newest, oldest, title or title-desc")
	return cmd
}

func editCmd() *cobra.Command {
	var title, content, image string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a note; omitted flags keep the stored values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := requireOwner(cmd)
			if err != nil {
				return err
			}
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			var current *models.Note
			for _, n := range notes.ListNotes(cmd.Context(), owner.ID) {
				if n.ID == id {
					current = &n
					break
				}
			}
			if current == nil {
				return fmt.Errorf("no note with id %d", id)
			}

			if !cmd.Flags().Changed("title") {
				title = current.Title
			}
			if !cmd.Flags().Changed("content") {
				content = current.Content
			}
			if !cmd.Flags().Changed("image") {
				image = current.ImageURI
			}

			input := models.NoteInput{Title: title, Content: content, ImageURI: image}
			if err := input.Validate(); err != nil {
				return err
			}

			if err := notes.UpdateNote(cmd.Context(), id, title, content, image); err != nil {
				return err
			}
			fmt.Println("Note updated")
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "m", "", "new content")
	cmd.Flags().StringVarP(&image, "image", "i", "", "new cover image path")
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note (no-op when the id does not exist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireOwner(cmd); err != nil {
				return err
			}
			id, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			if err := notes.DeleteNote(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Note deleted")
			return nil
		},
	}
}
