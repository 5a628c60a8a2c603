// Package trifecta manages the three-pillar wealth-structure overview.
package trifecta

import (
	"fmt"
	"strings"
	"sync"

	"github.com/trifectawealth/portal/internal/apperrors"
	"github.com/trifectawealth/portal/internal/models"
)

// Service owns the pillar collection.
type Service struct {
	mu      sync.Mutex
	pillars []models.TrifectaPillar
	nextID  int
}

// NewService creates a pillar service seeded from the supplied records.
func NewService(seed []models.TrifectaPillar) *Service {
	s := &Service{
		pillars: make([]models.TrifectaPillar, len(seed)),
		nextID:  1,
	}
	copy(s.pillars, seed)
	for _, p := range s.pillars {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

// UpdateInput is a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Progress    *int    `json:"progress"`
}

// List returns every pillar.
func (s *Service) List() []models.TrifectaPillar {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.TrifectaPillar, len(s.pillars))
	copy(out, s.pillars)
	return out
}

// Get returns a single pillar by id.
func (s *Service) Get(id int) (*models.TrifectaPillar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("trifecta pillar %d: %w", id, apperrors.ErrNotFound)
	}
	p := s.pillars[i]
	return &p, nil
}

// Create stores a new pillar.
func (s *Service) Create(pillar models.TrifectaPillar) (*models.TrifectaPillar, error) {
	if strings.TrimSpace(pillar.Name) == "" {
		return nil, apperrors.NewValidationError("name", "must not be blank")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pillar.ID = s.nextID
	s.nextID++
	s.pillars = append(s.pillars, pillar)
	return &pillar, nil
}

// Update merges a partial patch over an existing pillar.
func (s *Service) Update(id int, patch UpdateInput) (*models.TrifectaPillar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("trifecta pillar %d: %w", id, apperrors.ErrNotFound)
	}

	p := &s.pillars[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}

	updated := *p
	return &updated, nil
}

// Delete removes a pillar permanently.
func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("trifecta pillar %d: %w", id, apperrors.ErrNotFound)
	}
	s.pillars = append(s.pillars[:i], s.pillars[i+1:]...)
	return nil
}

func (s *Service) indexOf(id int) int {
	for i, p := range s.pillars {
		if p.ID == id {
			return i
		}
	}
	return -1
}
