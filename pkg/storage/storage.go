// Package storage persists games and cards behind a small record-store
// interface keyed by numeric IDs.
//
// Two backends are provided: an in-memory store for tests and local
// development, and a MongoDB store for deployments. Both enforce the same
// contract:
//
//   - Game titles are unique (case-sensitive, compared after trimming);
//     a colliding create fails with errors.DuplicateTitleError and leaves
//     no record behind.
//   - Deleting a game cascades to its cards.
//   - Creating or updating a card bumps the parent game's UpdatedAt, which
//     drives the "recently edited" ordering of Games.
//   - Missing records surface as GAME_NOT_FOUND / CARD_NOT_FOUND errors,
//     never as nil results.
package storage

import (
	"context"

	"github.com/matzehuels/cardpress/pkg/card"
)

// Store is the persistence interface consumed by the HTTP API and CLI.
type Store interface {
	// CreateGame stores a new game with a fresh ID and timestamps.
	// The title must already be normalized (see card.NormalizeTitle).
	CreateGame(ctx context.Context, g card.Game) (*card.Game, error)

	// Games lists all games, most recently updated first.
	Games(ctx context.Context) ([]card.Game, error)

	// Game fetches one game by ID.
	Game(ctx context.Context, id int64) (*card.Game, error)

	// GameByTitle fetches a game by exact (trimmed, case-sensitive) title.
	GameByTitle(ctx context.Context, title string) (*card.Game, error)

	// UpdateGame applies a partial update and returns the updated game.
	UpdateGame(ctx context.Context, id int64, upd GameUpdate) (*card.Game, error)

	// DeleteGame removes a game and all of its cards.
	DeleteGame(ctx context.Context, id int64) error

	// CreateCard stores a new card under an existing game and bumps the
	// game's UpdatedAt.
	CreateCard(ctx context.Context, c card.Card) (*card.Card, error)

	// CardsByGame lists a game's cards in ascending Order.
	CardsByGame(ctx context.Context, gameID int64) ([]card.Card, error)

	// Card fetches one card by ID.
	Card(ctx context.Context, id int64) (*card.Card, error)

	// UpdateCard applies a partial update, bumps the parent game's
	// UpdatedAt, and returns the updated card.
	UpdateCard(ctx context.Context, id int64, upd CardUpdate) (*card.Card, error)

	// DeleteCard removes a single card.
	DeleteCard(ctx context.Context, id int64) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// GameUpdate is a partial game mutation. Nil fields are left untouched.
type GameUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CardUpdate is a partial card mutation. Nil fields are left untouched.
type CardUpdate struct {
	Name          *string          `json:"name,omitempty"`
	ImageURL      *string          `json:"imageUrl,omitempty"`
	FrontImageURL *string          `json:"frontImageUrl,omitempty"`
	BackImageURL  *string          `json:"backImageUrl,omitempty"`
	Width         *float64         `json:"width,omitempty"`
	Height        *float64         `json:"height,omitempty"`
	Order         *int             `json:"order,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Attributes    *card.Attributes `json:"attributes,omitempty"`
}

// apply copies the set fields of the update onto c.
func (u CardUpdate) apply(c *card.Card) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.ImageURL != nil {
		c.ImageURL = *u.ImageURL
	}
	if u.FrontImageURL != nil {
		c.FrontImageURL = *u.FrontImageURL
	}
	if u.BackImageURL != nil {
		c.BackImageURL = *u.BackImageURL
	}
	if u.Width != nil {
		c.Width = *u.Width
	}
	if u.Height != nil {
		c.Height = *u.Height
	}
	if u.Order != nil {
		c.Order = *u.Order
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Attributes != nil {
		c.Attributes = u.Attributes
	}
}

// apply copies the set fields of the update onto g.
func (u GameUpdate) apply(g *card.Game) {
	if u.Title != nil {
		g.Title = *u.Title
	}
	if u.Description != nil {
		g.Description = *u.Description
	}
}
