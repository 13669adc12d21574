package cache

import (
	"context"
	"sync"
	"time"

	"github.com/DanRulev/conceptbot/internal/models"
)

// Cache keeps per-user conversational state in process memory.
type Cache struct {
	mu       sync.Mutex
	inputs   map[int64]models.PendingInput
	sessions map[int64]models.QuizSession
	now      func() time.Time
}

func NewCache() *Cache {
	return &Cache{
		inputs:   make(map[int64]models.PendingInput),
		sessions: make(map[int64]models.QuizSession),
		now:      time.Now,
	}
}

func (c *Cache) SetInput(userID int64, input models.PendingInput) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputs[userID] = input
}

func (c *Cache) GetInput(userID int64) (models.PendingInput, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	input, exists := c.inputs[userID]
	return input, exists
}

func (c *Cache) DeleteInput(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inputs, userID)
}

func (c *Cache) SetSession(_ context.Context, session models.QuizSession) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	session.UpdatedAt = c.now()
	c.sessions[session.UserID] = session
	return nil
}

func (c *Cache) GetSession(_ context.Context, userID int64) (models.QuizSession, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[userID]
	return session, exists, nil
}

func (c *Cache) DeleteSession(_ context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
	return nil
}

// ReapSessions drops sessions that have not been touched for longer than ttl.
func (c *Cache) ReapSessions(_ context.Context, ttl time.Duration) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-ttl)
	removed := 0
	for userID, session := range c.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(c.sessions, userID)
			removed++
		}
	}
	return removed, nil
}
