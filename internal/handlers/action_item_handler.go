package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trifectawealth/portal/internal/services/actionitems"
)

// ActionItemHandler handles action-item requests
type ActionItemHandler struct {
	service *actionitems.Service
}

// NewActionItemHandler creates a new action-item handler
func NewActionItemHandler(service *actionitems.Service) *ActionItemHandler {
	return &ActionItemHandler{service: service}
}

// List returns action items, optionally filtered by client
func (h *ActionItemHandler) List(c *gin.Context) {
	if clientID := queryInt(c, "client_id"); clientID != 0 {
		c.JSON(http.StatusOK, h.service.ListByClient(clientID))
		return
	}
	c.JSON(http.StatusOK, h.service.List())
}

// Get returns a single action item
func (h *ActionItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create creates a new action item
func (h *ActionItemHandler) Create(c *gin.Context) {
	var input actionitems.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update merges a partial patch over an existing action item
func (h *ActionItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch actionitems.UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Update(id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete removes an action item
func (h *ActionItemHandler) Delete(c *gin.Context) {
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
