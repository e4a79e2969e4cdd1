package trainerRepo

import (
	"fittribe/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TrainerRepository abstracts persistence for trainer profiles.
type TrainerRepository interface {
	Create(trainer *models.Trainer) error
	Update(trainer *models.Trainer) error
	Delete(id string) error
	GetByID(id string) (*models.Trainer, error)
	GetAll() ([]models.Trainer, error)
	GetFeatured(limit int) ([]models.Trainer, error)
	UpdateFields(id string, fields bson.M) error
}
