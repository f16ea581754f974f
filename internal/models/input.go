package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Credentials is the registration/login input. Validation runs at the call
// site (CLI), not inside the stores.
type Credentials struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=4"`
}

func (c Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}

// NoteInput is the editor input for creating or updating a note.
// A note is valid when at least one of title/content is non-blank.
type NoteInput struct {
	Title    string `validate:"required_without=Content"`
	Content  string `validate:"required_without=Title"`
	ImageURI string
}

func (n NoteInput) Validate() error {
	trimmed := NoteInput{
		Title:    strings.TrimSpace(n.Title),
		Content:  strings.TrimSpace(n.Content),
		ImageURI: n.ImageURI,
	}
	if err := validate.Struct(trimmed); err != nil {
		return fmt.Errorf("%w: note needs a title or some content", common.ErrValidation)
	}
	return nil
}
