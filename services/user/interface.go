package user

import (
	userRepo "fittribe/database/repository/user"
	"fittribe/models"
)

type UserService interface {
	// Registration & authentication
	Register(input RegistrationInput) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	RevokeAuthToken(userID string) error

	// User management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user models.User) (*models.User, error)
	DeleteUser(userID string) error

	// Admin / utility
	GetAllUsers() ([]models.User, error)
	MarkNotificationsRead(userID string) error
}

// RegistrationInput is the validated registration payload.
type RegistrationInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
