// Package card defines the persisted entities of the card editor: games and
// the cards they contain.
//
// A card's attributes are a tagged union of the two supported kinds. Battle
// cards carry numeric attack/HP stats and a single effect text; party cards
// carry action/effect/win-condition texts, a player count, a difficulty, and
// an optional layout (design settings) for their two-sided rendering.
//
// Persisted blobs written by older clients have no explicit kind tag; for
// those the kind is inferred from the presence of party-only string fields.
// New writes always store the explicit tag.
package card
