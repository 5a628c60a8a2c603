package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trifectawealth/portal/internal/services/documents"
)

// DocumentHandler handles document-library requests
type DocumentHandler struct {
	service *documents.Service
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service *documents.Service) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// List returns the document library, optionally filtered by client
func (h *DocumentHandler) List(c *gin.Context) {
	if clientID := queryInt(c, "client_id"); clientID != 0 {
		c.JSON(http.StatusOK, h.service.ListByClient(clientID))
		return
	}
	c.JSON(http.StatusOK, h.service.List())
}

// Get returns a single document
func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Create registers a new document entry
func (h *DocumentHandler) Create(c *gin.Context) {
	var input documents.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// Update merges a partial patch over an existing document
func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch documents.UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.service.Update(id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Delete removes a document entry
func (h *DocumentHandler) Delete(c *gin.Context) {
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
