package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	trainerRepo "fittribe/database/repository/trainer"
	"fittribe/services/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// StorageHandler handles trainer profile image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
	Trainers   trainerRepo.TrainerRepository
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, trainers trainerRepo.TrainerRepository) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, Trainers: trainers}
}

// UploadTrainerImageHandler uploads a profile image for a trainer and stores
// the resulting public ID on the trainer document.
func (h *StorageHandler) UploadTrainerImageHandler(c *gin.Context) {
	trainerID := c.Param("id")

	trainer, err := h.Trainers.GetByID(trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch trainer", "detail": err.Error()})
		return
	}
	if trainer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "trainer not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "trainers/images")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	if err := h.Trainers.UpdateFields(trainerID, bson.M{"profileImage": publicID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image reference", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicID": publicID})
}

// GetTrainerImageURLHandler resolves the trainer's image public ID to a URL.
func (h *StorageHandler) GetTrainerImageURLHandler(c *gin.Context) {
	trainerID := c.Param("id")

	trainer, err := h.Trainers.GetByID(trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch trainer", "detail": err.Error()})
		return
	}
	if trainer == nil || trainer.ProfileImage == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "trainer image not found"})
		return
	}

	url, err := h.StorageSvc.GetDownloadURL(c, "image", trainer.ProfileImage, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve image URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
