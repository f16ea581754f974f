// Package services contains the application services of NoteKeeper: account
// registration and session handling (AuthService) and per-account note
// collections (NotesService), both persisted through a kvstore.Store.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/kvstore"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/models"
)

// timeNow is a test seam for the clock used to derive record identifiers
// and creation timestamps.
var timeNow = time.Now

// AuthService manages the account list and the single current session.
//
// Contract:
//   - Register: create an account; usernames are unique case-insensitively.
//   - Login: verify credentials and persist the account snapshot as the
//     current session. Unknown username and wrong password are deliberately
//     indistinguishable to the caller.
//   - CurrentUser: the persisted session snapshot, nil when absent.
//   - Logout: drop the session; idempotent.
//   - AllAccounts: diagnostic listing of every account, passwords included.
//     Keep it behind an explicitly named diagnostic surface.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*models.Account, error)
	CurrentUser(ctx context.Context) *models.Account
	Logout(ctx context.Context) error
	AllAccounts(ctx context.Context) []models.Account
}

type authService struct {
	store kvstore.Store
	log   logging.Logger
	locks keyedMutex
}

// NewAuthService constructs an AuthService over the given store.
func NewAuthService(store kvstore.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &authService{store: store, log: log}
}

// Register appends a new account to the stored list. Fails with
// common.ErrDuplicateUsername when the username is already taken under
// case-insensitive comparison.
func (s *authService) Register(ctx context.Context, username, password string) error {
	unlock := s.locks.Lock(usersKey)
	defer unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return err
	}

	for _, a := range accounts {
		if strings.EqualFold(a.Username, username) {
			return common.ErrDuplicateUsername
		}
	}

	account := models.Account{
		ID:        nextAccountID(accounts),
		Username:  username,
		Password:  password,
		CreatedAt: timeNow().UTC(),
	}
	accounts = append(accounts, account)

	return s.saveAccounts(ctx, accounts)
}

// Login matches the username case-insensitively and the password exactly.
// On success the matched account is persisted as the session snapshot.
func (s *authService) Login(ctx context.Context, username, password string) (*models.Account, error) {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		a := accounts[i]
		if !strings.EqualFold(a.Username, username) || a.Password != password {
			continue
		}

		raw, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding session: %v", common.ErrPersistence, err)
		}
		if err := s.store.Set(ctx, currentUserKey, string(raw)); err != nil {
			return nil, fmt.Errorf("%w: saving session: %v", common.ErrPersistence, err)
		}
		return &a, nil
	}

	return nil, common.ErrInvalidCredentials
}

// CurrentUser returns the session snapshot, or nil when no session exists or
// the stored value cannot be read. Read failures degrade to "not logged in"
// but are logged so corruption stays visible.
func (s *authService) CurrentUser(ctx context.Context) *models.Account {
	raw, err := s.store.Get(ctx, currentUserKey)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.log.Warn(ctx, "failed to read session", "error", err)
		return nil
	}

	var account models.Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		s.log.Warn(ctx, "failed to decode session", "error", err)
		return nil
	}
	return &account
}

// Logout removes the session entry. Logging out twice is not an error.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("%w: removing session: %v", common.ErrPersistence, err)
	}
	return nil
}

// AllAccounts lists every registered account. Degrades to an empty listing
// on read failure.
func (s *authService) AllAccounts(ctx context.Context) []models.Account {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read accounts", "error", err)
		return nil
	}
	return accounts
}

func (s *authService) loadAccounts(ctx context.Context) ([]models.Account, error) {
	raw, err := s.store.Get(ctx, usersKey)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading accounts: %v", common.ErrPersistence, err)
	}

	var accounts []models.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("%w: decoding accounts: %v", common.ErrPersistence, err)
	}
	return accounts, nil
}

func (s *authService) saveAccounts(ctx context.Context, accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("%w: encoding accounts: %v", common.ErrPersistence, err)
	}
	if err := s.store.Set(ctx, usersKey, string(raw)); err != nil {
		return fmt.Errorf("%w: saving accounts: %v", common.ErrPersistence, err)
	}
	return nil
}

// nextAccountID derives an identifier from the clock, bumping past any id
// already in the list so rapid registrations within one millisecond cannot
// collide.
func nextAccountID(accounts []models.Account) int64 {
	id := timeNow().UnixMilli()
	for taken(accounts, id) {
		id++
	}
	return id
}

func taken(accounts []models.Account, id int64) bool {
	for _, a := range accounts {
		if a.ID == id {
			return true
		}
	}
	return false
}
