package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/meettonyg/guestify-backend/internal/catalog"
	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/pkg/errors"
	"github.com/meettonyg/guestify-backend/internal/services"
)

type ContentHandler struct {
	log            *logger.Logger
	contentService services.ContentService
}

func NewContentHandler(log *logger.Logger, csvc services.ContentService) *ContentHandler {
	return &ContentHandler{
		log:            log.With("handler", "ContentHandler"),
		contentService: csvc,
	}
}

func parseRecordAndGroup(c *gin.Context) (uuid.UUID, catalog.Group, bool) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_record_id", err)
		return uuid.Nil, "", false
	}
	group, err := catalog.ParseGroup(c.Param("group"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_group", err)
		return uuid.Nil, "", false
	}
	return recordID, group, true
}

func respondContentError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "record_not_found", err)
	case stderrors.Is(err, errors.ErrFieldNotConfigured):
		RespondError(c, http.StatusBadRequest, "field_not_configured", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}

// GET /api/records/:id/groups/:group
func (h *ContentHandler) GetGroup(c *gin.Context) {
	recordID, group, ok := parseRecordAndGroup(c)
	if !ok {
		return
	}
	result, err := h.contentService.Resolve(c.Request.Context(), recordID, group)
	if err != nil {
		respondContentError(c, err)
		return
	}
	payload := gin.H{"result": result}
	if group == catalog.GroupPositioning {
		composite, err := h.contentService.Composite(c.Request.Context(), recordID)
		if err != nil {
			respondContentError(c, err)
			return
		}
		payload["composite_string"] = composite
	}
	RespondOK(c, payload)
}

type saveGroupRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

// PUT /api/records/:id/groups/:group
func (h *ContentHandler) SaveGroup(c *gin.Context) {
	recordID, group, ok := parseRecordAndGroup(c)
	if !ok {
		return
	}
	var req saveGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	report, err := h.contentService.Save(c.Request.Context(), recordID, group, req.Values)
	if err != nil {
		respondContentError(c, err)
		return
	}
	RespondOK(c, report)
}
