package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/rogerio-castellano/inventario-api/internal/repo"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("inactive account")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrInvalidInput       = errors.New("invalid registration input")
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	// bcrypt rejects longer passwords.
	maxPasswordLength = 72
)

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      models.User
}

// AuthService registers users, checks their credentials and resolves session
// tokens back to users.
type AuthService struct {
	users     repo.UserRepository
	tokens    *Tokens
	passwords Passwords

	// dummyHash is compared against when the username is unknown so that
	// both failure paths cost one bcrypt comparison.
	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(users repo.UserRepository, tokens *Tokens, passwords Passwords) *AuthService {
	return &AuthService{users: users, tokens: tokens, passwords: passwords}
}

func (a *AuthService) Register(ctx context.Context, username, fullName, password string) (models.User, error) {
	fullName = strings.TrimSpace(fullName)
	if len(username) < minUsernameLength || len(password) < minPasswordLength ||
		len(password) > maxPasswordLength || fullName == "" {
		return models.User{}, ErrInvalidInput
	}

	if _, err := a.users.GetByUsername(ctx, username); err == nil {
		return models.User{}, ErrUserExists
	} else if !errors.Is(err, repo.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("check user: %w", err)
	}

	hash, err := a.passwords.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := a.users.CreateUser(ctx, models.User{
		ID:           uuid.NewString(),
		Username:     username,
		FullName:     fullName,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (a *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			a.passwords.Matches(a.unknownUserHash(), password)
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("load user: %w", err)
	}

	if !a.passwords.Matches(user.PasswordHash, password) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !user.Active {
		return LoginResult{}, ErrInactiveUser
	}

	token, expiresAt, err := a.tokens.Issue(user.Username)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	return LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate resolves a bearer token to an active user.
func (a *AuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	username, err := a.tokens.Subject(token)
	if err != nil {
		return models.User{}, ErrUnauthorized
	}

	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return models.User{}, ErrUnauthorized
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !user.Active {
		return models.User{}, ErrUnauthorized
	}
	return user, nil
}

func (a *AuthService) unknownUserHash() string {
	a.dummyOnce.Do(func() {
		a.dummyHash, _ = a.passwords.Hash(uuid.NewString())
	})
	return a.dummyHash
}
