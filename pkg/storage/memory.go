package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/matzehuels/cardpress/pkg/card"
	"github.com/matzehuels/cardpress/pkg/errors"
)

// Memory is a mutex-guarded in-memory Store for tests and local development.
type Memory struct {
	mu         sync.RWMutex
	games      map[int64]card.Game
	cards      map[int64]card.Card
	nextGameID int64
	nextCardID int64
	now        func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		games: make(map[int64]card.Game),
		cards: make(map[int64]card.Card),
		now:   time.Now,
	}
}

// CreateGame stores a new game, enforcing title uniqueness.
func (m *Memory) CreateGame(ctx context.Context, g card.Game) (*card.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.games {
		if existing.Title == g.Title {
			return nil, &errors.DuplicateTitleError{Title: g.Title, ExistingGameID: existing.ID}
		}
	}

	m.nextGameID++
	g.ID = m.nextGameID
	g.CreatedAt = m.now()
	g.UpdatedAt = g.CreatedAt
	m.games[g.ID] = g
	return &g, nil
}

// Games lists all games, most recently updated first.
func (m *Memory) Games(ctx context.Context) ([]card.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]card.Game, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Game fetches one game by ID.
func (m *Memory) Game(ctx context.Context, id int64) (*card.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeGameNotFound, "game %d not found", id)
	}
	return &g, nil
}

// GameByTitle fetches a game by exact title.
func (m *Memory) GameByTitle(ctx context.Context, title string) (*card.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, g := range m.games {
		if g.Title == title {
			return &g, nil
		}
	}
	return nil, errors.New(errors.ErrCodeGameNotFound, "game titled %q not found", title)
}

// UpdateGame applies a partial update.
func (m *Memory) UpdateGame(ctx context.Context, id int64, upd GameUpdate) (*card.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeGameNotFound, "game %d not found", id)
	}
	upd.apply(&g)
	g.UpdatedAt = m.now()
	m.games[id] = g
	return &g, nil
}

// DeleteGame removes a game and cascades to its cards.
func (m *Memory) DeleteGame(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errors.New(errors.ErrCodeGameNotFound, "game %d not found", id)
	}
	delete(m.games, id)
	for cardID, c := range m.cards {
		if c.GameID == id {
			delete(m.cards, cardID)
		}
	}
	return nil
}

// CreateCard stores a new card and bumps the parent game's UpdatedAt.
func (m *Memory) CreateCard(ctx context.Context, c card.Card) (*card.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[c.GameID]
	if !ok {
		return nil, errors.New(errors.ErrCodeGameNotFound, "game %d not found", c.GameID)
	}

	m.nextCardID++
	c.ID = m.nextCardID
	c.CreatedAt = m.now()
	c.UpdatedAt = c.CreatedAt
	if c.Width == 0 {
		c.Width = card.DefaultWidthMM
	}
	if c.Height == 0 {
		c.Height = card.DefaultHeightMM
	}
	m.cards[c.ID] = c

	g.UpdatedAt = m.now()
	m.games[g.ID] = g
	return &c, nil
}

// CardsByGame lists a game's cards in ascending Order.
func (m *Memory) CardsByGame(ctx context.Context, gameID int64) ([]card.Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []card.Card
	for _, c := range m.cards {
		if c.GameID == gameID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Card fetches one card by ID.
func (m *Memory) Card(ctx context.Context, id int64) (*card.Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cards[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeCardNotFound, "card %d not found", id)
	}
	return &c, nil
}

// UpdateCard applies a partial update and bumps the parent game's UpdatedAt.
func (m *Memory) UpdateCard(ctx context.Context, id int64, upd CardUpdate) (*card.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cards[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeCardNotFound, "card %d not found", id)
	}
	upd.apply(&c)
	c.UpdatedAt = m.now()
	m.cards[id] = c

	if g, ok := m.games[c.GameID]; ok {
		g.UpdatedAt = c.UpdatedAt
		m.games[g.ID] = g
	}
	return &c, nil
}

// DeleteCard removes a single card.
func (m *Memory) DeleteCard(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[id]; !ok {
		return errors.New(errors.ErrCodeCardNotFound, "card %d not found", id)
	}
	delete(m.cards, id)
	return nil
}

// Close does nothing for the in-memory store.
func (m *Memory) Close(ctx context.Context) error {
	return nil
}

// Ensure Memory implements Store.
var _ Store = (*Memory)(nil)
