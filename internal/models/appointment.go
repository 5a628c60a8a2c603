package models

import "time"

// AppointmentStatus represents the lifecycle state of an appointment record.
// An "Available" record is an advisor slot with no client attached; booking
// creates a new Confirmed record rather than flipping the slot in place.
type AppointmentStatus string

const (
	AppointmentStatusAvailable AppointmentStatus = "Available"
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment is a single record type covering both open advisor slots and
// booked client appointments, discriminated by Status.
type Appointment struct {
	ID              int               `json:"id"`
	ClientID        *int              `json:"client_id,omitempty"`
	AdvisorID       int               `json:"advisor_id"`
	AdvisorName     string            `json:"advisor_name"`
	AdvisorTitle    string            `json:"advisor_title"`
	AppointmentType string            `json:"appointment_type"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	Duration        int               `json:"duration"`
	Location        string            `json:"location"`
	MeetingType     string            `json:"meeting_type"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	Reference       string            `json:"reference,omitempty"`
	CreatedAt       *time.Time        `json:"created_at,omitempty"`
}

// AppointmentTypeInfo describes a bookable appointment category.
type AppointmentTypeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Color       string `json:"color"`
}

// Advisor describes a member of the advisory team.
type Advisor struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Specialties []string `json:"specialties"`
	Avatar      string   `json:"avatar"`
}
