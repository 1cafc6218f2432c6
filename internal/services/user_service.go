package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	apperrors "finpredictor/internal/errors"
	"finpredictor/internal/models"
	"finpredictor/internal/store"
	"finpredictor/internal/uuid"
)

// Users and the email index live in single collections.
const (
	usersCollection  = "users"
	emailsCollection = "emails"
)

// SignupInput holds the fields of a new user.
type SignupInput struct {
	Name            string
	Age             int
	DOB             models.Date
	Email           string
	Password        string
	ProfilePhotoURL *string
	RiskProfile     *string
	MonthlyIncome   *float64
}

// userService handles user-related business logic.
type userService struct {
	accounts store.Store[models.UserAccount]
	emails   store.Store[string]
	locks    *store.KeyedMutex
}

// NewUserService creates a new UserServicer. emails maps a normalized email
// to the owning user ID.
func NewUserService(accounts store.Store[models.UserAccount], emails store.Store[string]) UserServicer {
	return &userService{accounts: accounts, emails: emails, locks: store.NewKeyedMutex()}
}

// Signup registers a new user. Emails are unique, compared case-insensitively.
func (s *userService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	unlock := s.locks.Lock(email)
	defer unlock()

	_, err := s.emails.Get(ctx, emailsCollection, email)
	switch {
	case err == nil:
		return nil, apperrors.ErrDuplicateEmail
	case !errors.Is(err, store.ErrNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	riskProfile := in.RiskProfile
	if riskProfile == nil {
		moderate := string(models.RiskModerate)
		riskProfile = &moderate
	}

	account := models.UserAccount{
		User: models.User{
			ID:              uuid.New(),
			Name:            in.Name,
			Age:             in.Age,
			DOB:             in.DOB,
			Email:           email,
			ProfilePhotoURL: in.ProfilePhotoURL,
			RiskProfile:     riskProfile,
			MonthlyIncome:   in.MonthlyIncome,
		},
		Password: in.Password,
	}

	if err := s.accounts.Put(ctx, usersCollection, account.User.ID, account); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.emails.Put(ctx, emailsCollection, email, account.User.ID); err != nil {
		// An account without an index entry could never log in.
		if derr := s.accounts.Delete(ctx, usersCollection, account.User.ID); derr != nil {
			err = errors.Join(err, derr)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &account.User, nil
}

// Login checks the credentials and returns the matching user.
func (s *userService) Login(ctx context.Context, email, password string) (*models.User, error) {
	userID, err := s.emails.Get(ctx, emailsCollection, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	account, err := s.accounts.Get(ctx, usersCollection, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &account.User, nil
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	account, err := s.accounts.Get(ctx, usersCollection, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account.User, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
