// Package clients manages the portal client records and their derived
// foundation status.
package clients

import (
	"fmt"
	"strings"
	"sync"

	"github.com/trifectawealth/portal/internal/apperrors"
	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/models"
)

// Service owns the client collection.
type Service struct {
	mu      sync.Mutex
	clients []models.Client
	nextID  int
	clock   clock.Clock
}

// NewService creates a client service seeded from the supplied records.
func NewService(seed []models.Client, clk clock.Clock) *Service {
	s := &Service{
		clients: make([]models.Client, len(seed)),
		nextID:  1,
		clock:   clk,
	}
	copy(s.clients, seed)
	for _, c := range s.clients {
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	return s
}

// CreateInput carries the caller-supplied fields for a new client.
type CreateInput struct {
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Phone      string                `json:"phone"`
	Company    string                `json:"company"`
	Operations models.OperationsData `json:"operations"`
}

// UpdateInput is a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	Name       *string                  `json:"name"`
	Email      *string                  `json:"email"`
	Phone      *string                  `json:"phone"`
	Company    *string                  `json:"company"`
	Operations *models.OperationsData   `json:"operations"`
	Foundation *models.FoundationStatus `json:"foundation"`
}

// List returns every client with derived foundation progress.
func (s *Service) List() []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	for i := range out {
		out[i].Foundation.OverallProgress = foundationProgress(out[i].Foundation)
	}
	return out
}

// Get returns a single client by id with derived foundation progress.
func (s *Service) Get(id int) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("client %d: %w", id, apperrors.ErrNotFound)
	}
	c := s.clients[i]
	c.Foundation.OverallProgress = foundationProgress(c.Foundation)
	return &c, nil
}

// Create stores a new client, stamping the join date.
func (s *Service) Create(input CreateInput) (*models.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name", "must not be blank")
	}

	client := models.Client{
		Name:       strings.TrimSpace(input.Name),
		Email:      input.Email,
		Phone:      input.Phone,
		Company:    input.Company,
		JoinDate:   s.clock.Now(),
		Operations: input.Operations,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	client.ID = s.nextID
	s.nextID++
	s.clients = append(s.clients, client)
	return &client, nil
}

// Update merges a partial patch over an existing client.
func (s *Service) Update(id int, patch UpdateInput) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("client %d: %w", id, apperrors.ErrNotFound)
	}

	c := &s.clients[i]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Company != nil {
		c.Company = *patch.Company
	}
	if patch.Operations != nil {
		c.Operations = *patch.Operations
	}
	if patch.Foundation != nil {
		c.Foundation = *patch.Foundation
	}

	updated := *c
	updated.Foundation.OverallProgress = foundationProgress(updated.Foundation)
	return &updated, nil
}

// Delete removes a client record permanently.
func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("client %d: %w", id, apperrors.ErrNotFound)
	}
	s.clients = append(s.clients[:i], s.clients[i+1:]...)
	return nil
}

// foundationProgress derives overall progress from the four milestone flags,
// 25 points each.
func foundationProgress(f models.FoundationStatus) int {
	progress := 0
	for _, done := range []bool{f.TrustCreated, f.AssetsFunded, f.SuccessorDesignated, f.LegacyFramework} {
		if done {
			progress += 25
		}
	}
	return progress
}

func (s *Service) indexOf(id int) int {
	for i, c := range s.clients {
		if c.ID == id {
			return i
		}
	}
	return -1
}
