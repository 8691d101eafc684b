package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Profile  domain.Profile
}

// Session is a freshly issued bearer token and its user.
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Profile:      in.Profile,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", user.ID).Msg("user signed up")

	return s.openSession(ctx, user)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.openSession(ctx, user)
}

func (s *Service) openSession(ctx context.Context, user *domain.User) (*Session, error) {
	token := uuid.NewString()
	if err := s.cache.CreateSession(ctx, token, user.ID, s.sessionTTL); err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}

// Logout forgets token. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.cache.DeleteSession(ctx, token)
}

// Authenticate resolves a bearer token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	userID, err := s.cache.SessionUser(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		// The account went away under a live session.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial change and drops the user's cached plan.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	update.Apply(user)
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.cache.ClearUserCache(ctx, userID); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("cache invalidation failed")
	}
	return user, nil
}
