package user

import (
	"fmt"
	"strings"
	"time"

	"fittribe/models"
	"fittribe/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

// Register creates a new account, hashes the password and returns an auth
// response with a fresh token.
func (s *DefaultUserService) Register(input RegistrationInput) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	switch input.Role {
	case "":
		input.Role = models.RoleClient
	case models.RoleClient, models.RoleTrainer:
		// allowed self-service roles
	default:
		return nil, fmt.Errorf("invalid role: %s", input.Role)
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.User{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Role:         input.Role,
		PasswordHash: string(hash),
	}

	token, err := utils.GenerateToken(account.ID, account.Email, account.Role, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	account.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account registered", zap.String("userID", account.ID), zap.String("role", account.Role))
	return &models.AuthResponse{
		ID:        account.ID,
		Token:     token,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Role:      account.Role,
	}, nil
}

// Authenticate verifies the credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.ID, account.Email, account.Role, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateFields(account.ID, bson.M{"tokenHash": utils.HashToken(token)}); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &models.AuthResponse{
		ID:           account.ID,
		Token:        token,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Email:        account.Email,
		Role:         account.Role,
		ProfileImage: account.ProfileImage,
	}, nil
}

// RevokeAuthToken clears the stored token hash, signing the user out everywhere.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateFields(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
