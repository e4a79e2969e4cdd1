package handlers

import (
	"net/http"
	"strconv"

	"fittribe/models"
	"fittribe/services/directory"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrainerHandler exposes the trainer directory endpoints.
type TrainerHandler struct {
	Directory directory.DirectoryService
}

// NewTrainerHandler creates a new TrainerHandler instance.
func NewTrainerHandler(svc directory.DirectoryService) *TrainerHandler {
	return &TrainerHandler{Directory: svc}
}

// SearchTrainers returns the trainers matching the query filters.
// Query params: name, specialty, minRating, maxPrice.
func (h *TrainerHandler) SearchTrainers(c *gin.Context) {
	var criteria models.SearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search criteria", "details": err.Error()})
		return
	}

	trainers, err := h.Directory.Search(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search trainers", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trainers": trainers,
		"count":    len(trainers),
	})
}

// GetTrainerByID returns a single trainer profile.
func (h *TrainerHandler) GetTrainerByID(c *gin.Context) {
	id := c.Param("id")

	trainer, err := h.Directory.GetTrainer(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch trainer", "details": err.Error()})
		return
	}
	if trainer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "trainer not found"})
		return
	}

	c.JSON(http.StatusOK, trainer)
}

// GetFeaturedTrainers returns the trainers highlighted on the landing page.
func (h *TrainerHandler) GetFeaturedTrainers(c *gin.Context) {
	limit := 4
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	trainers, err := h.Directory.GetFeatured(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch featured trainers", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trainers": trainers})
}

// ListSpecialties returns the canonical specialty list.
func (h *TrainerHandler) ListSpecialties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialties": h.Directory.ListSpecialties()})
}

// CreateTrainer adds a trainer profile. Admin only.
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var trainer models.Trainer
	if err := c.ShouldBindJSON(&trainer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if trainer.ID == "" {
		trainer.ID = uuid.New().String()
	}

	if err := h.Directory.CreateTrainer(c.Request.Context(), &trainer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create trainer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, trainer)
}

// UpdateTrainer replaces a trainer profile. Admin only.
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	var trainer models.Trainer
	if err := c.ShouldBindJSON(&trainer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	trainer.ID = c.Param("id")

	if err := h.Directory.UpdateTrainer(c.Request.Context(), &trainer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update trainer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, trainer)
}

// DeleteTrainer removes a trainer profile. Admin only.
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	id := c.Param("id")

	if err := h.Directory.DeleteTrainer(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete trainer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "trainer deleted"})
}
