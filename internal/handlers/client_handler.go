package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trifectawealth/portal/internal/services/clients"
)

// ClientHandler handles client requests
type ClientHandler struct {
	service *clients.Service
}

// NewClientHandler creates a new client handler
func NewClientHandler(service *clients.Service) *ClientHandler {
	return &ClientHandler{service: service}
}

// List returns every client
func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

// Get returns a single client with derived foundation status
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	client, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Create creates a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var input clients.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// Update merges a partial patch over an existing client
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch clients.UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.service.Update(id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete removes a client
func (h *ClientHandler) Delete(c *gin.Context) {
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
