package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

func TestCredentials_Validate(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr bool
	}{
		{"valid", Credentials{Username: "alice", Password: "secret"}, false},
		{"empty username", Credentials{Password: "secret"}, true},
		{"short username", Credentials{Username: "al", Password: "secret"}, true},
		{"empty password", Credentials{Username: "alice"}, true},
		{"short password", Credentials{Username: "alice", Password: "abc"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.creds.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, common.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNoteInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   NoteInput
		wantErr bool
	}{
		{"title only", NoteInput{Title: "A"}, false},
		{"content only", NoteInput{Content: "B"}, false},
		{"both", NoteInput{Title: "A", Content: "B"}, false},
		{"both blank", NoteInput{}, true},
		{"whitespace only", NoteInput{Title: "   ", Content: "\t"}, true},
		{"image alone is not enough", NoteInput{ImageURI: "/tmp/cat.png"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, common.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
