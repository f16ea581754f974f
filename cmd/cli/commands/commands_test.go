package commands

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/notekeeper/internal/kvstore"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(w io.Writer) (string, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}

// run executes one command against the state stored under dir.
func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(append(args,
		"--db", filepath.Join(dir, "nk.db"),
		"--images", filepath.Join(dir, "images"),
	))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestCommands_RegisterLoginAddRoundTrip(t *testing.T) {
	dir := t.TempDir()
	stubPassword(t, "secret1")

	require.NoError(t, run(t, dir, "register", "alice"))
	require.NoError(t, run(t, dir, "login", "alice"))
	require.NoError(t, run(t, dir, "add", "-t", "first", "-m", "hello"))

	// each command closed its store; reopen and inspect the stored state
	ctx := context.Background()
	s, err := kvstore.OpenSQLite(ctx, filepath.Join(dir, "nk.db"))
	require.NoError(t, err)
	defer s.Close()

	raw, err := s.Get(ctx, "currentUser")
	require.NoError(t, err)
	var current models.Account
	require.NoError(t, json.Unmarshal([]byte(raw), &current))
	require.Equal(t, "alice", current.Username)

	raw, err = s.Get(ctx, "notes_"+strconv.FormatInt(current.ID, 10))
	require.NoError(t, err)
	var list []models.Note
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 1)
	require.Equal(t, "first", list[0].Title)
	require.Equal(t, "hello", list[0].Content)
	require.Equal(t, current.ID, list[0].UserID)
}

func TestCommands_LoginWithWrongPasswordFails(t *testing.T) {
	dir := t.TempDir()

	stubPassword(t, "secret1")
	require.NoError(t, run(t, dir, "register", "alice"))

	stubPassword(t, "wrong")
	require.Error(t, run(t, dir, "login", "alice"))
}

func TestCommands_AddWithoutSessionFails(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, run(t, dir, "add", "-t", "orphan"))
}

func TestCommands_ListRejectsUnknownSortOrder(t *testing.T) {
	dir := t.TempDir()
	stubPassword(t, "secret1")

	require.NoError(t, run(t, dir, "register", "alice"))
	require.NoError(t, run(t, dir, "login", "alice"))

	require.Error(t, run(t, dir, "list", "--sort", "sideways"))
	require.NoError(t, run(t, dir, "list", "--sort", "title"))
}
