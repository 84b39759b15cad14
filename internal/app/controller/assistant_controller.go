package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	apperrors "github.com/digimarketpro/digimarket-backend/internal/errors"
	"github.com/digimarketpro/digimarket-backend/internal/middleware"
)

// AssistantController is the HTTP surface of the shopping assistant; the
// websocket transport lives in internal/websocket.
type AssistantController struct {
	assistantService service.AssistantService
}

func NewAssistantController(assistantService service.AssistantService) *AssistantController {
	return &AssistantController{assistantService: assistantService}
}

type AskRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// Greeting returns the assistant's opening line
// GET /api/v1/assistant/greeting
func (ctrl *AssistantController) Greeting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"greeting": ctrl.assistantService.Greeting(c.Request.Context()),
	})
}

// Ask answers one question. A 204 means a newer question from the same
// session superseded this one and the reply was discarded.
// POST /api/v1/assistant/ask
func (ctrl *AssistantController) Ask(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "sessionId and message are required")
		return
	}

	reply, err := ctrl.assistantService.Ask(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrSuperseded) {
			c.Status(http.StatusNoContent)
			return
		}
		log.Error("Assistant request failed", err, map[string]interface{}{
			"session_id": req.SessionID,
		})
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.InternalExternalAPI, "The assistant is unavailable right now")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
