package handlers

import (
	"net/http"

	sessionRepo "multisport/database/repository/session"
	"multisport/models"
	"multisport/services/dialog"
	"multisport/services/navigation"
	"multisport/services/nlu"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DialogHandler exposes the conversational endpoints.
type DialogHandler struct {
	Manager  dialog.Manager
	NLU      nlu.Service
	Sessions sessionRepo.SessionStore
	Nav      navigation.Service
}

func NewDialogHandler(manager dialog.Manager, nluSvc nlu.Service, sessions sessionRepo.SessionStore, nav navigation.Service) *DialogHandler {
	return &DialogHandler{Manager: manager, NLU: nluSvc, Sessions: sessions, Nav: nav}
}

// dialogRequest is one dialog turn. Either raw text is provided and parsed
// here, or the caller (the robot's speech pipeline) sends a pre-parsed
// intent with entities.
type dialogRequest struct {
	SessionID string           `json:"session_id" binding:"required"`
	Text      string           `json:"text"`
	Intent    string           `json:"intent"`
	Entities  *models.Entities `json:"entities"`
	RawText   string           `json:"raw_text"`
}

// CreateSessionHandler allocates a new conversation session.
func (h *DialogHandler) CreateSessionHandler(c *gin.Context) {
	session, err := h.Sessions.Create(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": session.ID})
}

// DialogTurnHandler processes one utterance and returns the reply plus the
// structured action payload.
func (h *DialogHandler) DialogTurnHandler(c *gin.Context) {
	var req dialogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	var parse models.ParseResult
	if req.Intent != "" {
		parse = models.ParseResult{Intent: req.Intent, Confidence: 1.0, RawText: req.RawText}
		if parse.RawText == "" {
			parse.RawText = req.Text
		}
		if req.Entities != nil {
			parse.Entities = *req.Entities
		}
	} else {
		parse = h.NLU.Parse(req.Text)
	}

	text, action, err := h.Manager.Handle(c.Request.Context(), req.SessionID, parse)
	if err != nil {
		getLogger(c).Error("dialog turn failed",
			zap.String("session_id", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dialog turn failed"})
		return
	}

	resp := gin.H{
		"session_id": req.SessionID,
		"text":       text,
		"intent":     parse.Intent,
		"confidence": parse.Confidence,
	}
	if action != nil {
		resp["actions"] = action
	} else {
		resp["actions"] = gin.H{}
	}
	c.JSON(http.StatusOK, resp)
}

// NavigationHandler returns the route to a destination, for the tablet map.
func (h *DialogHandler) NavigationHandler(c *gin.Context) {
	key := nlu.NormalizeDestinationKey(c.Param("destination"))
	route, ok := h.Nav.Route(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown destination"})
		return
	}
	c.JSON(http.StatusOK, route)
}
