// Package messages manages client/advisor conversations and their thread
// summaries.
package messages

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/trifectawealth/portal/internal/apperrors"
	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/models"
)

// Service owns the message collection.
type Service struct {
	mu           sync.Mutex
	messages     []models.Message
	nextID       int
	nextThreadID int
	clock        clock.Clock
}

// NewService creates a message service seeded from the supplied records.
func NewService(seed []models.Message, clk clock.Clock) *Service {
	s := &Service{
		messages:     make([]models.Message, len(seed)),
		nextID:       1,
		nextThreadID: 1,
		clock:        clk,
	}
	copy(s.messages, seed)
	for _, m := range s.messages {
		if m.ID >= s.nextID {
			s.nextID = m.ID + 1
		}
		if m.ThreadID >= s.nextThreadID {
			s.nextThreadID = m.ThreadID + 1
		}
	}
	return s
}

// SendInput carries the fields of an outgoing message. A zero ThreadID
// starts a new thread.
type SendInput struct {
	ThreadID      int                    `json:"thread_id"`
	Subject       string                 `json:"subject"`
	Content       string                 `json:"content"`
	SenderID      int                    `json:"sender_id"`
	SenderName    string                 `json:"sender_name"`
	SenderType    models.ParticipantType `json:"sender_type"`
	RecipientID   int                    `json:"recipient_id"`
	RecipientName string                 `json:"recipient_name"`
	RecipientType models.ParticipantType `json:"recipient_type"`
	Priority      models.MessagePriority `json:"priority"`
	Attachments   []string               `json:"attachments"`
}

// List returns every message.
func (s *Service) List() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// ListByThread returns every message in a thread.
func (s *Service) ListByThread(threadID int) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Message
	for _, m := range s.messages {
		if m.ThreadID == threadID {
			out = append(out, m)
		}
	}
	return out
}

// Get returns a single message by id.
func (s *Service) Get(id int) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("message %d: %w", id, apperrors.ErrNotFound)
	}
	m := s.messages[i]
	return &m, nil
}

// Threads summarises every conversation: the latest message per thread id
// plus aggregate unread state, message count and distinct participants,
// sorted newest first.
func (s *Service) Threads() []models.Thread {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest := make(map[int]models.Message)
	counts := make(map[int]int)
	unread := make(map[int]bool)
	participants := make(map[int][]string)
	seen := make(map[int]map[string]bool)

	for _, m := range s.messages {
		counts[m.ThreadID]++
		if !m.IsRead {
			unread[m.ThreadID] = true
		}
		if seen[m.ThreadID] == nil {
			seen[m.ThreadID] = make(map[string]bool)
		}
		for _, name := range []string{m.SenderName, m.RecipientName} {
			if name != "" && !seen[m.ThreadID][name] {
				seen[m.ThreadID][name] = true
				participants[m.ThreadID] = append(participants[m.ThreadID], name)
			}
		}
		if cur, ok := latest[m.ThreadID]; !ok || m.Timestamp.After(cur.Timestamp) {
			latest[m.ThreadID] = m
		}
	}

	threads := make([]models.Thread, 0, len(latest))
	for threadID, m := range latest {
		threads = append(threads, models.Thread{
			ThreadID:     threadID,
			Subject:      m.Subject,
			LastMessage:  m.Content,
			LastSender:   m.SenderName,
			Timestamp:    m.Timestamp,
			Priority:     m.Priority,
			HasUnread:    unread[threadID],
			MessageCount: counts[threadID],
			Participants: participants[threadID],
		})
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].Timestamp.After(threads[j].Timestamp)
	})
	return threads
}

// Send stores a new outgoing message. Messages start unread so the recipient
// side surfaces them.
func (s *Service) Send(input SendInput) (*models.Message, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("content", "must not be blank")
	}

	msg := models.Message{
		Subject:        input.Subject,
		Content:        input.Content,
		SenderID:       input.SenderID,
		SenderName:     input.SenderName,
		SenderType:     input.SenderType,
		RecipientID:    input.RecipientID,
		RecipientName:  input.RecipientName,
		RecipientType:  input.RecipientType,
		Timestamp:      s.clock.Now(),
		IsRead:         false,
		Priority:       input.Priority,
		HasAttachments: len(input.Attachments) > 0,
		Attachments:    input.Attachments,
	}
	if msg.Priority == "" {
		msg.Priority = models.MessagePriorityRoutine
	}
	if msg.RecipientType == "" {
		msg.RecipientType = models.ParticipantTypeAdvisor
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	msg.ID = s.nextID
	s.nextID++
	if input.ThreadID > 0 {
		msg.ThreadID = input.ThreadID
	} else {
		msg.ThreadID = s.nextThreadID
		s.nextThreadID++
	}
	s.messages = append(s.messages, msg)
	return &msg, nil
}

// MarkRead marks a message as read.
func (s *Service) MarkRead(id int) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("message %d: %w", id, apperrors.ErrNotFound)
	}
	s.messages[i].IsRead = true
	m := s.messages[i]
	return &m, nil
}

func (s *Service) indexOf(id int) int {
	for i, m := range s.messages {
		if m.ID == id {
			return i
		}
	}
	return -1
}
