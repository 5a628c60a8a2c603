// Package resources manages the educational resource library.
package resources

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/trifectawealth/portal/internal/apperrors"
	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/models"
)

// difficultyOrder fixes the canonical ordering Difficulties reports in.
var difficultyOrder = []string{"Beginner", "Intermediate", "Advanced"}

// Service owns the resource collection.
type Service struct {
	mu        sync.Mutex
	resources []models.EducationalResource
	nextID    int
	clock     clock.Clock
}

// NewService creates a resource service seeded from the supplied records.
func NewService(seed []models.EducationalResource, clk clock.Clock) *Service {
	s := &Service{
		resources: make([]models.EducationalResource, len(seed)),
		nextID:    1,
		clock:     clk,
	}
	copy(s.resources, seed)
	for _, r := range s.resources {
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	return s
}

// CreateInput carries the caller-supplied fields for a new resource.
type CreateInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Difficulty  string   `json:"difficulty"`
	ReadTime    string   `json:"read_time"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	URL         string   `json:"url"`
}

// UpdateInput is a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Type        *string   `json:"type"`
	Difficulty  *string   `json:"difficulty"`
	ReadTime    *string   `json:"read_time"`
	Tags        *[]string `json:"tags"`
	Author      *string   `json:"author"`
	URL         *string   `json:"url"`
}

// List returns every resource.
func (s *Service) List() []models.EducationalResource {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.EducationalResource, len(s.resources))
	copy(out, s.resources)
	return out
}

// Get returns a single resource by id.
func (s *Service) Get(id int) (*models.EducationalResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("educational resource %d: %w", id, apperrors.ErrNotFound)
	}
	r := s.resources[i]
	return &r, nil
}

// ListByCategory returns every resource in the given category.
func (s *Service) ListByCategory(category string) ([]models.EducationalResource, error) {
	if strings.TrimSpace(category) == "" {
		return nil, apperrors.NewValidationError("category", "must not be blank")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.EducationalResource
	for _, r := range s.resources {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

// Search returns every resource whose title, description, or any tag
// contains the query, case-insensitively. A blank query returns the full
// library.
func (s *Service) Search(query string) []models.EducationalResource {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return s.List()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.EducationalResource
	for _, r := range s.resources {
		if matchesTerm(r, term) {
			out = append(out, r)
		}
	}
	return out
}

func matchesTerm(r models.EducationalResource, term string) bool {
	if strings.Contains(strings.ToLower(r.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), term) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Create validates and stores a new resource, stamping the publish date and
// filling the library defaults for the optional fields.
func (s *Service) Create(input CreateInput) (*models.EducationalResource, error) {
	required := []struct{ field, value string }{
		{"title", input.Title},
		{"description", input.Description},
		{"category", input.Category},
		{"type", input.Type},
		{"difficulty", input.Difficulty},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, apperrors.NewValidationError(f.field, "must not be blank")
		}
	}

	resource := models.EducationalResource{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Type:        input.Type,
		Difficulty:  input.Difficulty,
		ReadTime:    input.ReadTime,
		PublishDate: s.clock.Now(),
		Tags:        input.Tags,
		Author:      input.Author,
		URL:         input.URL,
	}
	if resource.ReadTime == "" {
		resource.ReadTime = "5 min read"
	}
	if resource.Tags == nil {
		resource.Tags = []string{}
	}
	if resource.Author == "" {
		resource.Author = "Trifecta Team"
	}
	if resource.URL == "" {
		resource.URL = "#"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	resource.ID = s.nextID
	s.nextID++
	s.resources = append(s.resources, resource)
	return &resource, nil
}

// Update merges a partial patch over an existing resource. The record id can
// never be altered through an update.
func (s *Service) Update(id int, patch UpdateInput) (*models.EducationalResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("educational resource %d: %w", id, apperrors.ErrNotFound)
	}

	r := &s.resources[i]
	if patch.Title != nil {
		r.Title = *patch.Title
	}
	if patch.Description != nil {
		r.Description = *patch.Description
	}
	if patch.Category != nil {
		r.Category = *patch.Category
	}
	if patch.Type != nil {
		r.Type = *patch.Type
	}
	if patch.Difficulty != nil {
		r.Difficulty = *patch.Difficulty
	}
	if patch.ReadTime != nil {
		r.ReadTime = *patch.ReadTime
	}
	if patch.Tags != nil {
		r.Tags = *patch.Tags
	}
	if patch.Author != nil {
		r.Author = *patch.Author
	}
	if patch.URL != nil {
		r.URL = *patch.URL
	}

	updated := *r
	return &updated, nil
}

// Delete removes a resource permanently.
func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("educational resource %d: %w", id, apperrors.ErrNotFound)
	}
	s.resources = append(s.resources[:i], s.resources[i+1:]...)
	return nil
}

// Categories returns the distinct categories in the library, sorted.
func (s *Service) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for _, r := range s.resources {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Difficulties returns the difficulty levels present in the library, in
// beginner-to-advanced order.
func (s *Service) Difficulties() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	present := make(map[string]bool)
	for _, r := range s.resources {
		present[r.Difficulty] = true
	}
	var out []string
	for _, d := range difficultyOrder {
		if present[d] {
			out = append(out, d)
		}
	}
	return out
}

func (s *Service) indexOf(id int) int {
	for i, r := range s.resources {
		if r.ID == id {
			return i
		}
	}
	return -1
}
