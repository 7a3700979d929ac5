package services_test

import (
	"testing"

	"fitlog/internal/apperrors"
	"fitlog/internal/mocks"
	"fitlog/internal/models"
	"fitlog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestRegisterSuccess(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("FindByEmail", "ana@x.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	svc := services.NewAccountService(userRepo)
	user, err := svc.Register("Ana", "ana@x.com", "pw123", "lose fat")

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "lose fat", user.Goal)
	assert.NotEqual(t, "pw123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123")))
	userRepo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("FindByEmail", "ana@x.com").Return(nil, gorm.ErrRecordNotFound).Once()
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	svc := services.NewAccountService(userRepo)
	_, err := svc.Register("Ana", "ana@x.com", "pw123", "lose fat")
	require.NoError(t, err)

	// Second registration with the same email must be rejected.
	userRepo.On("FindByEmail", "ana@x.com").Return(&models.User{ID: 1, Email: "ana@x.com"}, nil).Once()

	_, err = svc.Register("Ana", "ana@x.com", "pw123", "lose fat")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	userRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"blank name", "", "ana@x.com", "pw123"},
		{"blank email", "Ana", "", "pw123"},
		{"blank password", "Ana", "ana@x.com", ""},
		{"malformed email", "Ana", "not-an-email", "pw123"},
		{"password too short", "Ana", "ana@x.com", "pw"},
		{"password too long", "Ana", "ana@x.com", "averylongpassword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mocks.MockUserRepository)
			svc := services.NewAccountService(userRepo)

			_, err := svc.Register(tt.userName, tt.email, tt.password, "")
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			userRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := &models.User{ID: 7, Email: "ana@x.com", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", "ana@x.com").Return(stored, nil)

		svc := services.NewAccountService(userRepo)
		user, err := svc.Login("ana@x.com", "pw123")
		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", "ana@x.com").Return(stored, nil)

		svc := services.NewAccountService(userRepo)
		_, err := svc.Login("ana@x.com", "nope1")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("unknown email yields the same error as wrong password", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)

		svc := services.NewAccountService(userRepo)
		_, errUnknown := svc.Login("ghost@x.com", "pw123")

		userRepo2 := new(mocks.MockUserRepository)
		userRepo2.On("FindByEmail", "ana@x.com").Return(stored, nil)
		_, errWrongPw := services.NewAccountService(userRepo2).Login("ana@x.com", "nope1")

		assert.ErrorIs(t, errUnknown, apperrors.ErrUnauthorized)
		assert.EqualError(t, errUnknown, errWrongPw.Error())
	})
}
