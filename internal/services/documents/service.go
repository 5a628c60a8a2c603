// Package documents manages the client document library.
package documents

import (
	"fmt"
	"strings"
	"sync"

	"github.com/trifectawealth/portal/internal/apperrors"
	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/models"
)

// Service owns the document collection.
type Service struct {
	mu     sync.Mutex
	docs   []models.Document
	nextID int
	clock  clock.Clock
}

// NewService creates a document service seeded from the supplied records.
func NewService(seed []models.Document, clk clock.Clock) *Service {
	s := &Service{
		docs:   make([]models.Document, len(seed)),
		nextID: 1,
		clock:  clk,
	}
	copy(s.docs, seed)
	for _, d := range s.docs {
		if d.ID >= s.nextID {
			s.nextID = d.ID + 1
		}
	}
	return s
}

// CreateInput carries the caller-supplied fields for a new document entry.
type CreateInput struct {
	ClientID   int    `json:"client_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	FileType   string `json:"file_type"`
	SizeBytes  int64  `json:"size_bytes"`
	UploadedBy string `json:"uploaded_by"`
}

// UpdateInput is a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

// List returns every document.
func (s *Service) List() []models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// ListByClient returns every document belonging to a client.
func (s *Service) ListByClient(clientID int) []models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Document
	for _, d := range s.docs {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out
}

// Get returns a single document by id.
func (s *Service) Get(id int) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("document %d: %w", id, apperrors.ErrNotFound)
	}
	d := s.docs[i]
	return &d, nil
}

// Create stores a new document entry, stamping the upload date.
func (s *Service) Create(input CreateInput) (*models.Document, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name", "must not be blank")
	}
	if input.ClientID <= 0 {
		return nil, apperrors.NewValidationError("client_id", "must be a positive integer")
	}

	doc := models.Document{
		ClientID:   input.ClientID,
		Name:       strings.TrimSpace(input.Name),
		Category:   input.Category,
		FileType:   input.FileType,
		SizeBytes:  input.SizeBytes,
		UploadedBy: input.UploadedBy,
		UploadDate: s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc.ID = s.nextID
	s.nextID++
	s.docs = append(s.docs, doc)
	return &doc, nil
}

// Update merges a partial patch over an existing document.
func (s *Service) Update(id int, patch UpdateInput) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("document %d: %w", id, apperrors.ErrNotFound)
	}

	d := &s.docs[i]
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Category != nil {
		d.Category = *patch.Category
	}

	updated := *d
	return &updated, nil
}

// Delete removes a document entry permanently.
func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("document %d: %w", id, apperrors.ErrNotFound)
	}
	s.docs = append(s.docs[:i], s.docs[i+1:]...)
	return nil
}

func (s *Service) indexOf(id int) int {
	for i, d := range s.docs {
		if d.ID == id {
			return i
		}
	}
	return -1
}
