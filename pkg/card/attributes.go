package card

import (
	"encoding/json"

	"github.com/matzehuels/cardpress/pkg/errors"
	"github.com/matzehuels/cardpress/pkg/style"
)

// Kind discriminates the two supported card shapes.
type Kind string

const (
	// KindBattle is a stat-driven card (monster, spell, trap).
	KindBattle Kind = "battle"
	// KindParty is a text-driven card with a two-sided layout.
	KindParty Kind = "party"
)

// Stat bounds for battle cards.
const (
	MinStat = 0
	MaxStat = 10
)

// BattleAttributes are the kind-specific fields of a battle card.
type BattleAttributes struct {
	Type   string `json:"type" bson:"type"` // monster, spell, or trap
	Attack int    `json:"attack" bson:"attack"`
	HP     int    `json:"hp" bson:"hp"`
	Effect string `json:"effect,omitempty" bson:"effect,omitempty"`
}

// PartyAttributes are the kind-specific fields of a party card.
// Layout holds the card's authored design settings; nil renders with every
// default of the style package.
type PartyAttributes struct {
	Type         string                `json:"type" bson:"type"` // action, event, or penalty
	Action       string                `json:"action,omitempty" bson:"action,omitempty"`
	Effect       string                `json:"effect,omitempty" bson:"effect,omitempty"`
	WinCondition string                `json:"winCondition,omitempty" bson:"win_condition,omitempty"`
	PlayerCount  string                `json:"playerCount,omitempty" bson:"player_count,omitempty"`
	Difficulty   string                `json:"difficulty,omitempty" bson:"difficulty,omitempty"` // easy, normal, or hard
	Layout       *style.DesignSettings `json:"layout,omitempty" bson:"layout,omitempty"`
}

// Attributes is the tagged union persisted in a card's attributes blob.
// Exactly one of Battle or Party is set for a valid value.
type Attributes struct {
	Kind   Kind              `json:"kind"`
	Battle *BattleAttributes `json:"battle,omitempty" bson:"battle,omitempty"`
	Party  *PartyAttributes  `json:"party,omitempty" bson:"party,omitempty"`
}

// NewBattle wraps battle attributes in a tagged union value.
func NewBattle(a BattleAttributes) *Attributes {
	return &Attributes{Kind: KindBattle, Battle: &a}
}

// NewParty wraps party attributes in a tagged union value.
func NewParty(a PartyAttributes) *Attributes {
	return &Attributes{Kind: KindParty, Party: &a}
}

// Design returns the authored design settings of a party card, or the zero
// value for battle cards and unset layouts. Renderers pass the result to
// style.Resolve, which treats both identically.
func (a *Attributes) Design() style.DesignSettings {
	if a != nil && a.Party != nil && a.Party.Layout != nil {
		return *a.Party.Layout
	}
	return style.DesignSettings{}
}

// MarshalJSON flattens the union into the persisted wire shape: the kind tag
// followed by the fields of the active variant.
func (a Attributes) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case KindParty:
		if a.Party == nil {
			return json.Marshal(struct {
				Kind Kind `json:"kind"`
			}{a.Kind})
		}
		return json.Marshal(struct {
			Kind Kind `json:"kind"`
			PartyAttributes
		}{a.Kind, *a.Party})
	default:
		if a.Battle == nil {
			return json.Marshal(struct {
				Kind Kind `json:"kind"`
			}{a.Kind})
		}
		return json.Marshal(struct {
			Kind Kind `json:"kind"`
			BattleAttributes
		}{a.Kind, *a.Battle})
	}
}

// attributesProbe mirrors the flat wire shape with every field of both
// variants, plus the fields the legacy-kind heuristic looks at.
type attributesProbe struct {
	Kind Kind `json:"kind"`

	Type   string `json:"type"`
	Attack int    `json:"attack"`
	HP     int    `json:"hp"`
	Effect string `json:"effect"`

	Action       any                   `json:"action"`
	WinCondition any                   `json:"winCondition"`
	PlayerCount  any                   `json:"playerCount"`
	Difficulty   string                `json:"difficulty"`
	Layout       *style.DesignSettings `json:"layout"`
}

// UnmarshalJSON decodes the flat wire shape back into the union. Blobs
// written before the explicit kind tag existed are classified by the
// presence of a party-only string field; everything else decodes as battle.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	var p attributesProbe
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	kind := p.Kind
	if kind == "" {
		kind = KindBattle
		if isString(p.Action) || isString(p.PlayerCount) || isString(p.WinCondition) {
			kind = KindParty
		}
	}

	switch kind {
	case KindParty:
		*a = Attributes{Kind: KindParty, Party: &PartyAttributes{
			Type:         p.Type,
			Action:       asString(p.Action),
			Effect:       p.Effect,
			WinCondition: asString(p.WinCondition),
			PlayerCount:  asString(p.PlayerCount),
			Difficulty:   p.Difficulty,
			Layout:       p.Layout,
		}}
	default:
		*a = Attributes{Kind: KindBattle, Battle: &BattleAttributes{
			Type:   p.Type,
			Attack: p.Attack,
			HP:     p.HP,
			Effect: p.Effect,
		}}
	}
	return nil
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// Validate checks the union shape and the active variant's fields.
func (a *Attributes) Validate() error {
	switch a.Kind {
	case KindBattle:
		if a.Battle == nil {
			return errors.New(errors.ErrCodeInvalidAttributes, "battle card has no battle attributes")
		}
		return a.Battle.Validate()
	case KindParty:
		if a.Party == nil {
			return errors.New(errors.ErrCodeInvalidAttributes, "party card has no party attributes")
		}
		return a.Party.Validate()
	}
	return errors.NewField(errors.ErrCodeInvalidAttributes, "kind", "unknown card kind %q", a.Kind)
}

// Validate checks battle enum and stat ranges. Out-of-range stats are
// rejected, never clamped.
func (b *BattleAttributes) Validate() error {
	switch b.Type {
	case "monster", "spell", "trap":
	default:
		return errors.NewField(errors.ErrCodeInvalidAttributes, "type", "battle card type must be monster, spell, or trap")
	}
	if b.Attack < MinStat || b.Attack > MaxStat {
		return errors.NewField(errors.ErrCodeInvalidAttributes, "attack", "attack must be between %d and %d", MinStat, MaxStat)
	}
	if b.HP < MinStat || b.HP > MaxStat {
		return errors.NewField(errors.ErrCodeInvalidAttributes, "hp", "hp must be between %d and %d", MinStat, MaxStat)
	}
	return nil
}

// Validate checks party enums. Difficulty is optional; when set it must be
// one of the supported levels.
func (p *PartyAttributes) Validate() error {
	switch p.Type {
	case "action", "event", "penalty":
	default:
		return errors.NewField(errors.ErrCodeInvalidAttributes, "type", "party card type must be action, event, or penalty")
	}
	switch p.Difficulty {
	case "", "easy", "normal", "hard":
	default:
		return errors.NewField(errors.ErrCodeInvalidAttributes, "difficulty", "difficulty must be easy, normal, or hard")
	}
	return nil
}
