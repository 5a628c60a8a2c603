package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trifectawealth/portal/internal/services/alerts"
)

// AlertHandler handles compliance-alert requests
type AlertHandler struct {
	service *alerts.Service
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(service *alerts.Service) *AlertHandler {
	return &AlertHandler{service: service}
}

// ListByClient returns every alert for a client
func (h *AlertHandler) ListByClient(c *gin.Context) {
	clientID, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.ListByClient(clientID))
}

// ListActive returns the alerts currently due for surfacing to a client
func (h *AlertHandler) ListActive(c *gin.Context) {
	clientID, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.ListActive(clientID))
}

// Get returns a single alert
func (h *AlertHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	alert, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// Create creates a new alert
func (h *AlertHandler) Create(c *gin.Context) {
	var input alerts.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// Update merges a partial patch over an existing alert
func (h *AlertHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch alerts.UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.service.Update(id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// Delete removes an alert
func (h *AlertHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Snooze suppresses an alert for a number of hours
func (h *AlertHandler) Snooze(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input struct {
		Hours int `json:"hours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.service.Snooze(id, input.Hours)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// Activate returns a snoozed alert to the active state
func (h *AlertHandler) Activate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	alert, err := h.service.Activate(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}
