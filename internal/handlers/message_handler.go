package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trifectawealth/portal/internal/services/messages"
)

// MessageHandler handles messaging requests
type MessageHandler struct {
	service *messages.Service
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service *messages.Service) *MessageHandler {
	return &MessageHandler{service: service}
}

// Threads returns the conversation summaries, newest first
func (h *MessageHandler) Threads(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Threads())
}

// ListByThread returns every message in a thread
func (h *MessageHandler) ListByThread(c *gin.Context) {
	threadID, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.ListByThread(threadID))
}

// Get returns a single message
func (h *MessageHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	msg, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// Send stores a new outgoing message
func (h *MessageHandler) Send(c *gin.Context) {
	var input messages.SendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.service.Send(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// MarkRead marks a message as read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	msg, err := h.service.MarkRead(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}
