// Package appointments implements the appointment engine: advisor slots and
// booked appointments share one record type partitioned by status. Booking is
// create-on-book; the displayed slot record is left untouched.
package appointments

import (
	"fmt"
	"strings"
	"sync"

	"github.com/trifectawealth/portal/internal/apperrors"
	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/models"
	"github.com/trifectawealth/portal/internal/utils"
)

// Service owns the appointment collection.
type Service struct {
	mu     sync.Mutex
	appts  []models.Appointment
	nextID int
	clock  clock.Clock
}

// NewService creates an appointment engine seeded from the supplied records.
func NewService(seed []models.Appointment, clk clock.Clock) *Service {
	s := &Service{
		appts:  make([]models.Appointment, len(seed)),
		nextID: 1,
		clock:  clk,
	}
	copy(s.appts, seed)
	for _, a := range s.appts {
		if a.ID >= s.nextID {
			s.nextID = a.ID + 1
		}
	}
	return s
}

// BookInput carries the descriptive fields of a chosen slot plus the booking
// client.
type BookInput struct {
	ClientID        int    `json:"client_id"`
	AdvisorID       int    `json:"advisor_id"`
	AdvisorName     string `json:"advisor_name"`
	AdvisorTitle    string `json:"advisor_title"`
	AppointmentType string `json:"appointment_type"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Duration        int    `json:"duration"`
	Location        string `json:"location"`
	MeetingType     string `json:"meeting_type"`
	Notes           string `json:"notes"`
}

// UpdateInput is a partial patch for administrative corrections.
type UpdateInput struct {
	Status      *models.AppointmentStatus `json:"status"`
	Date        *string                   `json:"date"`
	Time        *string                   `json:"time"`
	Duration    *int                      `json:"duration"`
	Location    *string                   `json:"location"`
	MeetingType *string                   `json:"meeting_type"`
	Notes       *string                   `json:"notes"`
}

// List returns every appointment record.
func (s *Service) List() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Appointment, len(s.appts))
	copy(out, s.appts)
	return out
}

// Get returns a single appointment by id.
func (s *Service) Get(id int) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("appointment %d: %w", id, apperrors.ErrNotFound)
	}
	a := s.appts[i]
	return &a, nil
}

// ListAvailable returns unbooked slots, optionally narrowed by appointment
// type and advisor. Filters are exact matches; zero values mean "any".
func (s *Service) ListAvailable(appointmentType string, advisorID int) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Appointment
	for _, a := range s.appts {
		if a.Status != models.AppointmentStatusAvailable {
			continue
		}
		if appointmentType != "" && a.AppointmentType != appointmentType {
			continue
		}
		if advisorID != 0 && a.AdvisorID != advisorID {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ListByClient returns every appointment belonging to a client, regardless of
// status.
func (s *Service) ListByClient(clientID int) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Appointment
	for _, a := range s.appts {
		if a.ClientID != nil && *a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out
}

// Book creates a new Confirmed appointment from the supplied slot fields.
// The original Available record, if one exists, is not consumed.
func (s *Service) Book(input BookInput) (*models.Appointment, error) {
	if input.ClientID <= 0 {
		return nil, apperrors.NewValidationError("client_id", "must be a positive integer")
	}
	if strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.Time) == "" {
		return nil, apperrors.NewValidationError("date", "date and time are required")
	}

	now := s.clock.Now()
	clientID := input.ClientID
	appt := models.Appointment{
		ClientID:        &clientID,
		AdvisorID:       input.AdvisorID,
		AdvisorName:     input.AdvisorName,
		AdvisorTitle:    input.AdvisorTitle,
		AppointmentType: input.AppointmentType,
		Date:            input.Date,
		Time:            input.Time,
		Duration:        input.Duration,
		Location:        input.Location,
		MeetingType:     input.MeetingType,
		Status:          models.AppointmentStatusConfirmed,
		Notes:           input.Notes,
		Reference:       utils.BookingReference(now),
		CreatedAt:       &now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	appt.ID = s.nextID
	s.nextID++
	s.appts = append(s.appts, appt)
	return &appt, nil
}

// Update merges a partial patch over an existing appointment. Used for
// administrative corrections; the named transitions cover the normal flow.
func (s *Service) Update(id int, patch UpdateInput) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("appointment %d: %w", id, apperrors.ErrNotFound)
	}

	a := &s.appts[i]
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.Time != nil {
		a.Time = *patch.Time
	}
	if patch.Duration != nil {
		a.Duration = *patch.Duration
	}
	if patch.Location != nil {
		a.Location = *patch.Location
	}
	if patch.MeetingType != nil {
		a.MeetingType = *patch.MeetingType
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}

	updated := *a
	return &updated, nil
}

// Cancel flips an appointment to Cancelled. The record is retained and no
// corresponding Available slot is recreated. Cancelling an already-cancelled
// appointment is a no-op, not an error.
func (s *Service) Cancel(id int) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("appointment %d: %w", id, apperrors.ErrNotFound)
	}

	s.appts[i].Status = models.AppointmentStatusCancelled
	cancelled := s.appts[i]
	return &cancelled, nil
}

// Delete removes an appointment record permanently.
func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("appointment %d: %w", id, apperrors.ErrNotFound)
	}
	s.appts = append(s.appts[:i], s.appts[i+1:]...)
	return nil
}

func (s *Service) indexOf(id int) int {
	for i, a := range s.appts {
		if a.ID == id {
			return i
		}
	}
	return -1
}
