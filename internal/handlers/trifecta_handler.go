package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trifectawealth/portal/internal/models"
	"github.com/trifectawealth/portal/internal/services/trifecta"
)

// TrifectaHandler handles trifecta-pillar requests
type TrifectaHandler struct {
	service *trifecta.Service
}

// NewTrifectaHandler creates a new trifecta handler
func NewTrifectaHandler(service *trifecta.Service) *TrifectaHandler {
	return &TrifectaHandler{service: service}
}

// List returns every pillar
func (h *TrifectaHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

// Get returns a single pillar
func (h *TrifectaHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pillar, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pillar)
}

// Create creates a new pillar
func (h *TrifectaHandler) Create(c *gin.Context) {
	var input models.TrifectaPillar
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pillar, err := h.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pillar)
}

// Update merges a partial patch over an existing pillar
func (h *TrifectaHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch trifecta.UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pillar, err := h.service.Update(id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pillar)
}

// Delete removes a pillar
func (h *TrifectaHandler) Delete(c *gin.Context) {
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
