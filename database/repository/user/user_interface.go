package userRepo

import (
	"fittribe/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository abstracts persistence for platform accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateFields(id string, fields bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(tokenHash string) (*models.User, error)
	GetAll() ([]models.User, error)
	AppendNotification(id string, notification models.Notification) error
}
