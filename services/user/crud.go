package user

import (
	"fmt"
	"time"

	"fittribe/models"
	"fittribe/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID fetches an account by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	account, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	return account, nil
}

// GetUserByEmail fetches an account by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	return account, nil
}

// UpdateUser updates non-empty user fields using a partial update.
func (s *DefaultUserService) UpdateUser(user models.User) (*models.User, error) {
	logger := utils.GetLogger()

	if user.ID == "" {
		return nil, fmt.Errorf("user ID is required for update")
	}

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if user.FirstName != "" {
		updateFields["firstName"] = user.FirstName
	}
	if user.LastName != "" {
		updateFields["lastName"] = user.LastName
	}
	if user.Email != "" {
		updateFields["email"] = user.Email
	}
	if user.ProfileImage != "" {
		updateFields["profileImage"] = user.ProfileImage
	}

	if len(updateFields) == 1 {
		logger.Warn("No updatable fields provided", zap.String("userID", user.ID))
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(user.ID, updateFields); err != nil {
		logger.Error("Failed to update user", zap.String("userID", user.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetUserByID(user.ID)
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetAllUsers lists every account. Admin only.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// MarkNotificationsRead flags every notification on the account as read.
func (s *DefaultUserService) MarkNotificationsRead(userID string) error {
	account, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	for i := range account.Notifications {
		account.Notifications[i].Read = true
	}
	if err := s.Repo.UpdateFields(userID, bson.M{"notifications": account.Notifications}); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
