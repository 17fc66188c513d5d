package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "walletwise/internal/errors"
	"walletwise/internal/models"
)

// userService handles user profile business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser stores the profile of an identity managed by the identity
// provider.
func (s *userService) CreateUser(userID, name, email, phoneNumber string) (*models.User, error) {
	userID = strings.TrimSpace(userID)
	email = strings.ToLower(strings.TrimSpace(email))
	if userID == "" || email == "" || strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "userId, name and email are required")
	}

	if err := s.conflictFor(userID, email); err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Email:       email,
		PhoneNumber: strings.TrimSpace(phoneNumber),
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if conflict := s.conflictFor(userID, email); conflict != nil {
				return nil, conflict
			}
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// conflictFor returns ErrDuplicateUser or ErrDuplicateEmail when a stored
// profile already holds userID or email, and nil when neither is taken.
func (s *userService) conflictFor(userID, email string) error {
	var existing []models.User
	if err := s.db.Where("user_id = ? OR email = ?", userID, email).Limit(1).Find(&existing).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(existing) == 0 {
		return nil
	}
	if existing[0].UserID == userID {
		return apperrors.ErrDuplicateUser
	}
	return apperrors.ErrDuplicateEmail
}

// ListUsers returns every stored profile, oldest first.
func (s *userService) ListUsers() ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}
