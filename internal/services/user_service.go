package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/erickazee/jobtrack/internal/apperrors"
	"github.com/erickazee/jobtrack/internal/models"
)

// ErrEmailTaken is returned by Register when the address already has an
// account.
var ErrEmailTaken = errors.New("email already registered")

type UserService struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserService(db *gorm.DB, bcryptCost int) *UserService {
	return &UserService{
		DB:         db,
		BcryptCost: bcryptCost,
	}
}

func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.DataAccess("failed to check existing user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return nil, apperrors.DataAccess("failed to hash password", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, apperrors.DataAccess("failed to create user", err)
	}
	return user, nil
}

// Authenticate checks the credentials. A missing account and a wrong
// password return the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Auth("invalid email or password")
		}
		return nil, apperrors.DataAccess("failed to load user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.Auth("invalid email or password")
	}
	return &user, nil
}
