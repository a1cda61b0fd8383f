// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and logout on top of the
// users collection and the session resolver.
package services

import (
	"context"
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/teamboard/internal/common"
	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/dmitrijs2005/teamboard/internal/server/auth"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
	"github.com/dmitrijs2005/teamboard/internal/server/password"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/users"
)

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// UserService provides account operations:
// - Register: validate, hash the password, store the user and log them in
// - Login: verify credentials and open a session
// - Logout: revoke the session
type UserService struct {
	users    users.Repository
	resolver *auth.Resolver
	hasher   password.Hasher
	msgs     Messages
	logger   logging.Logger

	dummyOnce sync.Once
	dummy     string
}

// NewUserService constructs a UserService.
func NewUserService(u users.Repository, r *auth.Resolver, h password.Hasher, locale string, l logging.Logger) *UserService {
	return &UserService{
		users:    u,
		resolver: r,
		hasher:   h,
		msgs:     MessagesFor(locale),
		logger:   l.With("module", "user_service"),
	}
}

func (s *UserService) invalid(code string) error {
	return &common.ValidationError{Code: code, Message: s.msgs.text(code)}
}

// Register creates an account and returns it with a fresh session token.
// Nothing is stored when validation fails.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, "", s.invalid(CodeRequired)
	}
	if in.Password != in.ConfirmPassword {
		return nil, "", s.invalid(CodePasswordMismatch)
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return nil, "", s.invalid(CodePasswordTooShort)
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", s.invalid(CodeEmailTaken)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, "", s.invalid(CodeRegistrationFailed)
	}

	user, err := s.users.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", s.invalid(CodeEmailTaken)
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.resolver.Establish(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "user registered", "user", user.ID)
	return user, token, nil
}

// Login checks the credentials and opens a session. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, pass string) (*models.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || pass == "" {
		return nil, "", s.invalid(CodeLoginRequired)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// spend the same work as a real comparison
		s.hasher.Verify(pass, s.dummyHash())
		return nil, "", s.invalid(CodeInvalidCredentials)
	}

	if !s.hasher.Verify(pass, user.PasswordHash) {
		return nil, "", s.invalid(CodeInvalidCredentials)
	}

	token, err := s.resolver.Establish(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "user logged in", "user", user.ID)
	return user, token, nil
}

// Logout revokes the session behind token.
func (s *UserService) Logout(ctx context.Context, token string) error {
	return s.resolver.Destroy(ctx, token)
}

// Me returns the account behind the principal.
func (s *UserService) Me(ctx context.Context, p auth.Principal) (*models.User, error) {
	u, ok := p.User()
	if !ok {
		return nil, common.ErrorUnauthenticated
	}
	return &u, nil
}

// Directory lists every account ordered by name, so callers can pick team
// member ids.
func (s *UserService) Directory(ctx context.Context, p auth.Principal) ([]models.User, error) {
	if !p.IsAuthenticated() {
		return nil, common.ErrorUnauthenticated
	}

	all := s.users.List(ctx)
	slices.SortStableFunc(all, func(a, b models.User) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return all, nil
}

func (s *UserService) dummyHash() string {
	s.dummyOnce.Do(func() {
		seed, err := common.MakeRandHexString(16)
		if err != nil {
			return
		}
		if h, err := s.hasher.Hash(seed); err == nil {
			s.dummy = h
		}
	})
	return s.dummy
}
