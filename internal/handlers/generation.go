package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/services"
)

type GenerationHandler struct {
	log               *logger.Logger
	generationService services.GenerationService
}

func NewGenerationHandler(log *logger.Logger, gsvc services.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		log:               log.With("handler", "GenerationHandler"),
		generationService: gsvc,
	}
}

func parseRecordID(c *gin.Context) (uuid.UUID, bool) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_record_id", err)
		return uuid.Nil, false
	}
	return recordID, true
}

// POST /api/records/:id/generate/topics
func (h *GenerationHandler) GenerateTopics(c *gin.Context) {
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}
	topics, err := h.generationService.GenerateTopics(c.Request.Context(), recordID)
	if err != nil {
		respondContentError(c, err)
		return
	}
	RespondOK(c, gin.H{"topics": topics})
}

type generateQuestionsRequest struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count"`
}

// POST /api/records/:id/generate/questions
func (h *GenerationHandler) GenerateQuestions(c *gin.Context) {
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}
	var req generateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	questions, err := h.generationService.GenerateQuestions(c.Request.Context(), recordID, req.Topic, req.Count)
	if err != nil {
		respondContentError(c, err)
		return
	}
	RespondOK(c, gin.H{"questions": questions})
}

type generateBiographyRequest struct {
	Tone string `json:"tone"`
}

// POST /api/records/:id/generate/biography
func (h *GenerationHandler) GenerateBiography(c *gin.Context) {
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}
	var req generateBiographyRequest
	_ = c.ShouldBindJSON(&req)
	bio, err := h.generationService.GenerateBiography(c.Request.Context(), recordID, req.Tone)
	if err != nil {
		respondContentError(c, err)
		return
	}
	RespondOK(c, bio)
}

// POST /api/records/:id/generate/hook
func (h *GenerationHandler) GenerateAuthorityHook(c *gin.Context) {
	recordID, ok := parseRecordID(c)
	if !ok {
		return
	}
	hook, err := h.generationService.GenerateAuthorityHook(c.Request.Context(), recordID)
	if err != nil {
		respondContentError(c, err)
		return
	}
	RespondOK(c, hook)
}
