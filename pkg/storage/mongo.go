package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/cardpress/pkg/card"
	"github.com/matzehuels/cardpress/pkg/errors"
)

// Mongo is a MongoDB-backed Store. Numeric IDs are allocated from a
// counters collection so the API keeps the same ID shape as the in-memory
// backend.
type Mongo struct {
	client   *mongo.Client
	games    *mongo.Collection
	cards    *mongo.Collection
	counters *mongo.Collection
}

// NewMongo connects to MongoDB and prepares the collections and indexes.
func NewMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "pinging mongodb")
	}

	db := client.Database(database)
	s := &Mongo{
		client:   client,
		games:    db.Collection("games"),
		cards:    db.Collection("cards"),
		counters: db.Collection("counters"),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := s.games.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating title index")
	}
	_, err = s.cards.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "game_id", Value: 1}, {Key: "order", Value: 1}},
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating card index")
	}
	return nil
}

// nextID atomically increments and returns the named counter.
func (s *Mongo) nextID(ctx context.Context, name string) (int64, error) {
	res := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "allocating %s id", name)
	}
	return doc.Seq, nil
}

// CreateGame stores a new game, enforcing title uniqueness.
func (s *Mongo) CreateGame(ctx context.Context, g card.Game) (*card.Game, error) {
	if existing, err := s.GameByTitle(ctx, g.Title); err == nil {
		return nil, &errors.DuplicateTitleError{Title: g.Title, ExistingGameID: existing.ID}
	}

	id, err := s.nextID(ctx, "games")
	if err != nil {
		return nil, err
	}
	g.ID = id
	g.CreatedAt = time.Now().UTC()
	g.UpdatedAt = g.CreatedAt

	if _, err := s.games.InsertOne(ctx, g); err != nil {
		// The unique index closes the race between the pre-check and the
		// insert; map it back to the same duplicate error.
		if mongo.IsDuplicateKeyError(err) {
			if existing, lookupErr := s.GameByTitle(ctx, g.Title); lookupErr == nil {
				return nil, &errors.DuplicateTitleError{Title: g.Title, ExistingGameID: existing.ID}
			}
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "inserting game")
	}
	return &g, nil
}

// Games lists all games, most recently updated first.
func (s *Mongo) Games(ctx context.Context) ([]card.Game, error) {
	cur, err := s.games.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "listing games")
	}
	var out []card.Game
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decoding games")
	}
	return out, nil
}

// Game fetches one game by ID.
func (s *Mongo) Game(ctx context.Context, id int64) (*card.Game, error) {
	var g card.Game
	err := s.games.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeGameNotFound, "game %d not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "fetching game %d", id)
	}
	return &g, nil
}

// GameByTitle fetches a game by exact title.
func (s *Mongo) GameByTitle(ctx context.Context, title string) (*card.Game, error) {
	var g card.Game
	err := s.games.FindOne(ctx, bson.M{"title": title}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeGameNotFound, "game titled %q not found", title)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "fetching game by title")
	}
	return &g, nil
}

// UpdateGame applies a partial update.
func (s *Mongo) UpdateGame(ctx context.Context, id int64, upd GameUpdate) (*card.Game, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}

	var g card.Game
	err := s.games.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeGameNotFound, "game %d not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "updating game %d", id)
	}
	return &g, nil
}

// DeleteGame removes a game and cascades to its cards.
func (s *Mongo) DeleteGame(ctx context.Context, id int64) error {
	res, err := s.games.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "deleting game %d", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeGameNotFound, "game %d not found", id)
	}
	if _, err := s.cards.DeleteMany(ctx, bson.M{"game_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "deleting cards of game %d", id)
	}
	return nil
}

// CreateCard stores a new card and bumps the parent game's UpdatedAt.
func (s *Mongo) CreateCard(ctx context.Context, c card.Card) (*card.Card, error) {
	if _, err := s.Game(ctx, c.GameID); err != nil {
		return nil, err
	}

	id, err := s.nextID(ctx, "cards")
	if err != nil {
		return nil, err
	}
	c.ID = id
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	if c.Width == 0 {
		c.Width = card.DefaultWidthMM
	}
	if c.Height == 0 {
		c.Height = card.DefaultHeightMM
	}

	if _, err := s.cards.InsertOne(ctx, c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "inserting card")
	}
	s.touchGame(ctx, c.GameID)
	return &c, nil
}

// CardsByGame lists a game's cards in ascending Order.
func (s *Mongo) CardsByGame(ctx context.Context, gameID int64) ([]card.Card, error) {
	cur, err := s.cards.Find(ctx,
		bson.M{"game_id": gameID},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "listing cards")
	}
	var out []card.Card
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decoding cards")
	}
	return out, nil
}

// Card fetches one card by ID.
func (s *Mongo) Card(ctx context.Context, id int64) (*card.Card, error) {
	var c card.Card
	err := s.cards.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeCardNotFound, "card %d not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "fetching card %d", id)
	}
	return &c, nil
}

// UpdateCard applies a partial update and bumps the parent game's UpdatedAt.
func (s *Mongo) UpdateCard(ctx context.Context, id int64, upd CardUpdate) (*card.Card, error) {
	existing, err := s.Card(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	upd.apply(&updated)
	updated.UpdatedAt = time.Now().UTC()

	if _, err := s.cards.ReplaceOne(ctx, bson.M{"_id": id}, updated); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "updating card %d", id)
	}
	s.touchGame(ctx, updated.GameID)
	return &updated, nil
}

// DeleteCard removes a single card.
func (s *Mongo) DeleteCard(ctx context.Context, id int64) error {
	res, err := s.cards.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "deleting card %d", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeCardNotFound, "card %d not found", id)
	}
	return nil
}

// touchGame bumps a game's UpdatedAt. Best-effort: a failed touch does not
// fail the card write it follows.
func (s *Mongo) touchGame(ctx context.Context, gameID int64) {
	_, _ = s.games.UpdateOne(ctx,
		bson.M{"_id": gameID},
		bson.M{"$set": bson.M{"updated_at": time.Now().UTC()}},
	)
}

// Close disconnects from MongoDB.
func (s *Mongo) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure Mongo implements Store.
var _ Store = (*Mongo)(nil)
