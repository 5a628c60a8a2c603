// Package actionitems manages the tasks assigned to clients by the advisory
// team, including the completion transition.
package actionitems

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/trifectawealth/portal/internal/apperrors"
	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/models"
)

// Service owns the action-item collection.
type Service struct {
	mu     sync.Mutex
	items  []models.ActionItem
	nextID int
	clock  clock.Clock
}

// NewService creates an action-item service seeded from the supplied records.
func NewService(seed []models.ActionItem, clk clock.Clock) *Service {
	s := &Service{
		items:  make([]models.ActionItem, len(seed)),
		nextID: 1,
		clock:  clk,
	}
	copy(s.items, seed)
	for _, it := range s.items {
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	return s
}

// CreateInput carries the caller-supplied fields for a new action item.
type CreateInput struct {
	ClientID    int                  `json:"client_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Priority    models.AlertPriority `json:"priority"`
	DueDate     *time.Time           `json:"due_date"`
	AssignedBy  string               `json:"assigned_by"`
}

// UpdateInput is a partial patch. ID, client id and creation date are always
// preserved.
type UpdateInput struct {
	Title       *string                  `json:"title"`
	Description *string                  `json:"description"`
	Category    *string                  `json:"category"`
	Priority    *models.AlertPriority    `json:"priority"`
	Status      *models.ActionItemStatus `json:"status"`
	DueDate     *time.Time               `json:"due_date"`
}

// List returns every action item.
func (s *Service) List() []models.ActionItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ActionItem, len(s.items))
	copy(out, s.items)
	return out
}

// ListByClient returns every action item belonging to a client.
func (s *Service) ListByClient(clientID int) []models.ActionItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ActionItem
	for _, it := range s.items {
		if it.ClientID == clientID {
			out = append(out, it)
		}
	}
	return out
}

// Get returns a single action item by id.
func (s *Service) Get(id int) (*models.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("action item %d: %w", id, apperrors.ErrNotFound)
	}
	it := s.items[i]
	return &it, nil
}

// Create validates and stores a new action item in the pending state.
func (s *Service) Create(input CreateInput) (*models.ActionItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("title", "must not be blank")
	}
	if input.ClientID <= 0 {
		return nil, apperrors.NewValidationError("client_id", "must be a positive integer")
	}

	item := models.ActionItem{
		ClientID:    input.ClientID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      models.ActionItemStatusPending,
		DueDate:     input.DueDate,
		CreatedDate: s.clock.Now(),
		AssignedBy:  input.AssignedBy,
	}
	if item.Category == "" {
		item.Category = "General"
	}
	if item.Priority == "" {
		item.Priority = models.AlertPriorityMedium
	}
	if item.AssignedBy == "" {
		item.AssignedBy = "System"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextID
	s.nextID++
	s.items = append(s.items, item)
	return &item, nil
}

// Update merges a partial patch over an existing item. Moving into completed
// stamps the completion date; moving out of completed clears it.
func (s *Service) Update(id int, patch UpdateInput) (*models.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("action item %d: %w", id, apperrors.ErrNotFound)
	}

	it := &s.items[i]
	if patch.Title != nil {
		it.Title = *patch.Title
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	if patch.Priority != nil {
		it.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		it.DueDate = patch.DueDate
	}
	if patch.Status != nil {
		switch {
		case *patch.Status == models.ActionItemStatusCompleted && it.Status != models.ActionItemStatusCompleted:
			now := s.clock.Now()
			it.CompletedDate = &now
		case *patch.Status != models.ActionItemStatusCompleted:
			it.CompletedDate = nil
		}
		it.Status = *patch.Status
	}

	updated := *it
	return &updated, nil
}

// Delete removes an action item permanently.
func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("action item %d: %w", id, apperrors.ErrNotFound)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

func (s *Service) indexOf(id int) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
