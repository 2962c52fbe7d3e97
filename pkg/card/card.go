package card

import (
	"strings"
	"time"

	"github.com/matzehuels/cardpress/pkg/errors"
)

// Default physical card size in millimeters (standard poker card).
const (
	DefaultWidthMM  = 63
	DefaultHeightMM = 88
)

// Game groups the cards of one project. Titles are unique (case-sensitive,
// compared after trimming); UpdatedAt bumps whenever a child card is created
// or updated so listings can sort by recent activity.
type Game struct {
	ID          int64     `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// Card is a single authored card. Attributes holds the kind-specific fields;
// everything else is shared between the two kinds.
type Card struct {
	ID            int64       `json:"id" bson:"_id"`
	GameID        int64       `json:"gameId" bson:"game_id"`
	Name          string      `json:"name" bson:"name"`
	ImageURL      string      `json:"imageUrl" bson:"image_url"`
	FrontImageURL string      `json:"frontImageUrl,omitempty" bson:"front_image_url,omitempty"`
	BackImageURL  string      `json:"backImageUrl,omitempty" bson:"back_image_url,omitempty"`
	Width         float64     `json:"width" bson:"width"`
	Height        float64     `json:"height" bson:"height"`
	Order         int         `json:"order" bson:"order"`
	Description   string      `json:"description,omitempty" bson:"description,omitempty"`
	Attributes    *Attributes `json:"attributes,omitempty" bson:"attributes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" bson:"updated_at"`
}

// NormalizeTitle trims a game title and validates that something remains.
func NormalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", errors.NewField(errors.ErrCodeInvalidInput, "title", "game title must not be blank")
	}
	return trimmed, nil
}

// Validate checks the card's boundary invariants before a save: a non-blank
// name and, when attributes are present, a valid attribute shape.
func (c *Card) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.NewField(errors.ErrCodeInvalidInput, "name", "card name must not be blank")
	}
	if c.Attributes != nil {
		return c.Attributes.Validate()
	}
	return nil
}
