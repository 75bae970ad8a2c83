package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/khizerinam08/deal-checker/models"
)

// VoteCache keeps recently submitted votes for a short, explicit TTL so the
// has-voted lookup right after a submission does not hit the database.
// Scoped per (user, deal), never a source of truth.
type VoteCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]voteEntry
}

type voteEntry struct {
	vote      models.Vote
	expiresAt time.Time
}

func NewVoteCache(ttl time.Duration) *VoteCache {
	return &VoteCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]voteEntry),
	}
}

func cacheKey(userID string, dealID uint) string {
	return fmt.Sprintf("%s:%d", userID, dealID)
}

func (c *VoteCache) Put(userID string, vote models.Vote) {
	c.mu.Lock()
	c.entries[cacheKey(userID, vote.DealID)] = voteEntry{
		vote:      vote,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *VoteCache) Get(userID string, dealID uint) (models.Vote, bool) {
	key := cacheKey(userID, dealID)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return models.Vote{}, false
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a fresh Put may have raced us.
		if cur, ok := c.entries[key]; ok && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return models.Vote{}, false
	}

	return entry.vote, true
}
