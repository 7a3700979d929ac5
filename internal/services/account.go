package services

import (
	"errors"
	"regexp"
	"strings"

	"fitlog/internal/apperrors"
	"fitlog/internal/models"
	"fitlog/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Password length limits carried over from the original product rules.
const (
	minPasswordLen = 4
	maxPasswordLen = 8
)

// AccountService handles registration and login. Credentials are stored
// as bcrypt hashes; login gives no hint whether the email or the
// password was wrong.
type AccountService struct {
	users repository.UserRepository
}

func NewAccountService(users repository.UserRepository) *AccountService {
	return &AccountService{users: users}
}

func (s *AccountService) Register(name, email, password, goal string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "name, email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperrors.New(apperrors.ErrValidation, "malformed email address")
	}
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return nil, apperrors.New(apperrors.ErrValidation,
			"password must be between %d and %d characters", minPasswordLen, maxPasswordLen)
	}

	_, err := s.users.FindByEmail(email)
	if err == nil {
		return nil, apperrors.New(apperrors.ErrConflict, "email %s is already registered", email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Goal:         goal,
	}
	if err := s.users.Create(user); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return user, nil
}

// Login returns the user for valid credentials. A missing user and a
// wrong password produce the same error, so callers cannot enumerate
// registered emails.
func (s *AccountService) Login(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrUnauthorized, "invalid email or password")
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.New(apperrors.ErrUnauthorized, "invalid email or password")
	}
	return user, nil
}
