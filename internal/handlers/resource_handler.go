package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trifectawealth/portal/internal/services/resources"
)

// ResourceHandler handles educational resource library requests
type ResourceHandler struct {
	service *resources.Service
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(service *resources.Service) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// List returns the resource library, optionally filtered by category or a
// free-text search query
func (h *ResourceHandler) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		out, err := h.service.ListByCategory(category)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}
	if query := c.Query("q"); query != "" {
		c.JSON(http.StatusOK, h.service.Search(query))
		return
	}
	c.JSON(http.StatusOK, h.service.List())
}

// Get returns a single resource
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resource, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

// Create registers a new resource
func (h *ResourceHandler) Create(c *gin.Context) {
	var input resources.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource, err := h.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resource)
}

// Update merges a partial patch over an existing resource
func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch resources.UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource, err := h.service.Update(id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

// Delete removes a resource
func (h *ResourceHandler) Delete(c *gin.Context) {
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

// Categories returns the distinct resource categories
func (h *ResourceHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Categories())
}

// Difficulties returns the difficulty levels present in the library
func (h *ResourceHandler) Difficulties(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Difficulties())
}
