package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trifectawealth/portal/internal/services/appointments"
)

// AppointmentHandler handles appointment and slot requests
type AppointmentHandler struct {
	service *appointments.Service
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service *appointments.Service) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// ListAvailable returns unbooked slots, optionally filtered by type and advisor
func (h *AppointmentHandler) ListAvailable(c *gin.Context) {
	appointmentType := c.Query("type")
	advisorID := queryInt(c, "advisor_id")
	c.JSON(http.StatusOK, h.service.ListAvailable(appointmentType, advisorID))
}

// ListByClient returns every appointment for a client
func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	clientID, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.ListByClient(clientID))
}

// Get returns a single appointment
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	appt, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Book creates a new confirmed appointment from a chosen slot
func (h *AppointmentHandler) Book(c *gin.Context) {
	var input appointments.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.service.Book(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// Update applies an administrative correction to an appointment
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch appointments.UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.service.Update(id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Cancel flips an appointment to Cancelled
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	appt, err := h.service.Cancel(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Delete removes an appointment record
func (h *AppointmentHandler) Delete(c *gin.Context) {
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

// Types returns the bookable appointment categories
func (h *AppointmentHandler) Types(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Types())
}

// Advisors returns the advisory team roster
func (h *AppointmentHandler) Advisors(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Advisors())
}
