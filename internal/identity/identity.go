// Package identity is a local account placeholder. It records who is using
// this installation and remembers the signed-in user; it is not an
// authentication system and protects nothing.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindwell/mindwell/internal/kvstore"
)

// ErrMissingField is returned when a required registration or login field is blank.
var ErrMissingField = errors.New("name, email and password are required")

// User is the public account record, also stored as the current session.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// account is the stored record under kvstore.KeyUsers.
type account struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// Service registers accounts and tracks the signed-in user.
type Service struct {
	store  kvstore.Store
	logger *slog.Logger
	now    func() time.Time
	idGen  func() string
	cost   int
}

// NewService creates a Service hashing credentials with the given bcrypt
// cost (bcrypt.DefaultCost when cost is 0). A nil logger uses slog.Default().
func NewService(store kvstore.Store, cost int, logger *slog.Logger) *Service {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		idGen:  func() string { return uuid.NewString() },
		cost:   cost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) accounts(ctx context.Context) ([]account, error) {
	accounts, _, err := kvstore.LoadJSON[[]account](ctx, s.store, kvstore.KeyUsers)
	return accounts, err
}

// Register creates an account and signs it in. ok is false, with a nil
// error, when the email is already registered.
func (s *Service) Register(ctx context.Context, name, email, password string) (u User, ok bool, err error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return User{}, false, ErrMissingField
	}

	accounts, err := s.accounts(ctx)
	if err != nil {
		return User{}, false, err
	}
	for _, a := range accounts {
		if a.Email == email {
			s.logger.Debug("registration rejected: email exists", "email", email)
			return User{}, false, nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, false, fmt.Errorf("hashing password: %w", err)
	}
	u = User{ID: s.idGen(), Name: name, Email: email, RegisteredAt: s.now()}
	accounts = append(accounts, account{User: u, PasswordHash: string(hash)})

	if err := kvstore.SaveJSON(ctx, s.store, kvstore.KeyUsers, accounts); err != nil {
		return User{}, false, err
	}
	if err := kvstore.SaveJSON(ctx, s.store, kvstore.KeySession, u); err != nil {
		return User{}, false, err
	}
	return u, true, nil
}

// Login signs in the account matching email and password. ok is false,
// with a nil error, when no account matches.
func (s *Service) Login(ctx context.Context, email, password string) (u User, ok bool, err error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, false, ErrMissingField
	}

	accounts, err := s.accounts(ctx)
	if err != nil {
		return User{}, false, err
	}
	for _, a := range accounts {
		if a.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
			return User{}, false, nil
		}
		if err := kvstore.SaveJSON(ctx, s.store, kvstore.KeySession, a.User); err != nil {
			return User{}, false, err
		}
		return a.User, true, nil
	}
	return User{}, false, nil
}

// Logout forgets the signed-in user.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, kvstore.KeySession)
}

// Current returns the signed-in user, if any.
func (s *Service) Current(ctx context.Context) (User, bool, error) {
	return kvstore.LoadJSON[User](ctx, s.store, kvstore.KeySession)
}
