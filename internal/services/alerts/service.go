// Package alerts implements the compliance-alert engine: an in-memory store
// of alert records with the active/snoozed lifecycle and the reminder-window
// surfacing rules.
package alerts

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/trifectawealth/portal/internal/apperrors"
	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/models"
	"github.com/trifectawealth/portal/internal/timewindow"
)

// Service owns the compliance-alert collection. All mutation goes through the
// named transitions; reads never rewrite stored state.
type Service struct {
	mu     sync.Mutex
	alerts []models.ComplianceAlert
	nextID int
	clock  clock.Clock
}

// NewService creates an alert engine seeded from the supplied records. The id
// allocator starts above the highest seeded id.
func NewService(seed []models.ComplianceAlert, clk clock.Clock) *Service {
	s := &Service{
		alerts: make([]models.ComplianceAlert, len(seed)),
		nextID: 1,
		clock:  clk,
	}
	copy(s.alerts, seed)
	for _, a := range s.alerts {
		if a.ID >= s.nextID {
			s.nextID = a.ID + 1
		}
	}
	return s
}

// CreateInput carries the caller-supplied fields for a new alert.
type CreateInput struct {
	ClientID         int                  `json:"client_id"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Type             models.AlertType     `json:"type"`
	Priority         models.AlertPriority `json:"priority"`
	DueDate          *time.Time           `json:"due_date"`
	IsRecurring      bool                 `json:"is_recurring"`
	RecurringPattern string               `json:"recurring_pattern"`
	Customization    *CustomizationInput  `json:"customization"`
}

// CustomizationInput is the create-side view of the notification settings.
// Pointer fields distinguish "omitted" from an explicit false, so a partial
// customization object keeps the defaults for the fields it leaves out.
type CustomizationInput struct {
	ReminderDays []int `json:"reminder_days"`
	EmailEnabled *bool `json:"email_enabled"`
	SMSEnabled   *bool `json:"sms_enabled"`
}

// UpdateInput is a partial patch; nil fields are left unchanged. The record
// id can never be altered through an update. ClearDueDate removes the
// deadline entirely, since an absent due_date field only means "unchanged".
type UpdateInput struct {
	Title            *string                    `json:"title"`
	Description      *string                    `json:"description"`
	Type             *models.AlertType          `json:"type"`
	Priority         *models.AlertPriority      `json:"priority"`
	DueDate          *time.Time                 `json:"due_date"`
	ClearDueDate     bool                       `json:"clear_due_date"`
	Status           *models.AlertStatus        `json:"status"`
	IsRecurring      *bool                      `json:"is_recurring"`
	RecurringPattern *string                    `json:"recurring_pattern"`
	Customization    *models.AlertCustomization `json:"customization"`
}

// List returns every alert in the store.
func (s *Service) List() []models.ComplianceAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ComplianceAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// ListByClient returns every alert belonging to a client, unfiltered.
func (s *Service) ListByClient(clientID int) []models.ComplianceAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ComplianceAlert
	for _, a := range s.alerts {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out
}

// Get returns a single alert by id.
func (s *Service) Get(id int) (*models.ComplianceAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("compliance alert %d: %w", id, apperrors.ErrNotFound)
	}
	a := s.alerts[i]
	return &a, nil
}

// ListActive returns the alerts currently due for surfacing to a client,
// sorted ascending by due date with undated alerts last. An alert qualifies
// when it is active and inside its reminder window, when it is active with no
// deadline at all, or when its snooze has lapsed. Stored status is not
// rewritten; lapsed snoozes are reconciled per read.
func (s *Service) ListActive(clientID int) []models.ComplianceAlert {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.ComplianceAlert
	for _, a := range s.alerts {
		if a.ClientID != clientID {
			continue
		}
		switch a.Status {
		case models.AlertStatusSnoozed:
			if a.SnoozedUntil != nil && !now.Before(*a.SnoozedUntil) {
				out = append(out, a)
			}
		case models.AlertStatusActive:
			if a.DueDate == nil {
				// No deadline pressure: always surfaced while active.
				out = append(out, a)
			} else if timewindow.WithinReminderWindow(now, a.DueDate, a.Customization.ReminderDays) {
				out = append(out, a)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DueDate, out[j].DueDate
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.Before(*dj)
	})
	return out
}

// Create validates and stores a new alert, assigning the next id and stamping
// the audit timestamps.
func (s *Service) Create(input CreateInput) (*models.ComplianceAlert, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("title", "must not be blank")
	}
	if input.ClientID <= 0 {
		return nil, apperrors.NewValidationError("client_id", "must be a positive integer")
	}

	now := s.clock.Now()
	alert := models.ComplianceAlert{
		ClientID:         input.ClientID,
		Title:            strings.TrimSpace(input.Title),
		Description:      strings.TrimSpace(input.Description),
		Type:             input.Type,
		Priority:         input.Priority,
		DueDate:          input.DueDate,
		Status:           models.AlertStatusActive,
		IsRecurring:      input.IsRecurring,
		RecurringPattern: input.RecurringPattern,
		Customization: models.AlertCustomization{
			ReminderDays: []int{7, 1},
			EmailEnabled: true,
			SMSEnabled:   false,
		},
		CreatedDate: now,
		UpdatedDate: now,
	}
	if alert.Type == "" {
		alert.Type = models.AlertTypeGeneralCompliance
	}
	if alert.Priority == "" {
		alert.Priority = models.AlertPriorityMedium
	}
	if input.Customization != nil {
		if len(input.Customization.ReminderDays) > 0 {
			alert.Customization.ReminderDays = input.Customization.ReminderDays
		}
		if input.Customization.EmailEnabled != nil {
			alert.Customization.EmailEnabled = *input.Customization.EmailEnabled
		}
		if input.Customization.SMSEnabled != nil {
			alert.Customization.SMSEnabled = *input.Customization.SMSEnabled
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	alert.ID = s.nextID
	s.nextID++
	s.alerts = append(s.alerts, alert)
	return &alert, nil
}

// Update merges a partial patch over an existing alert and refreshes the
// updated timestamp.
func (s *Service) Update(id int, patch UpdateInput) (*models.ComplianceAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("compliance alert %d: %w", id, apperrors.ErrNotFound)
	}

	a := &s.alerts[i]
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Priority != nil {
		a.Priority = *patch.Priority
	}
	if patch.ClearDueDate {
		a.DueDate = nil
	} else if patch.DueDate != nil {
		a.DueDate = patch.DueDate
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.IsRecurring != nil {
		a.IsRecurring = *patch.IsRecurring
	}
	if patch.RecurringPattern != nil {
		a.RecurringPattern = *patch.RecurringPattern
	}
	if patch.Customization != nil {
		a.Customization = *patch.Customization
	}
	a.UpdatedDate = s.clock.Now()

	updated := *a
	return &updated, nil
}

// Delete removes an alert permanently.
func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("compliance alert %d: %w", id, apperrors.ErrNotFound)
	}
	s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
	return nil
}

// Snooze suppresses an alert for the given number of hours from now.
func (s *Service) Snooze(id, hours int) (*models.ComplianceAlert, error) {
	if hours <= 0 {
		return nil, apperrors.NewValidationError("hours", "must be a positive number of hours")
	}

	now := s.clock.Now()
	until := now.Add(time.Duration(hours) * time.Hour)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("compliance alert %d: %w", id, apperrors.ErrNotFound)
	}

	a := &s.alerts[i]
	a.Status = models.AlertStatusSnoozed
	a.SnoozedUntil = &until
	a.UpdatedDate = now

	updated := *a
	return &updated, nil
}

// Activate returns an alert to the active state and clears its snooze.
// Activating an already-active alert is a state no-op but still refreshes the
// updated timestamp.
func (s *Service) Activate(id int) (*models.ComplianceAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("compliance alert %d: %w", id, apperrors.ErrNotFound)
	}

	a := &s.alerts[i]
	a.Status = models.AlertStatusActive
	a.SnoozedUntil = nil
	a.UpdatedDate = s.clock.Now()

	updated := *a
	return &updated, nil
}

// indexOf returns the position of the alert with the given id, or -1. Callers
// must hold the mutex.
func (s *Service) indexOf(id int) int {
	for i, a := range s.alerts {
		if a.ID == id {
			return i
		}
	}
	return -1
}
