package ai

import (
	"fmt"
	"strings"

	"github.com/matzehuels/cardpress/pkg/errors"
)

func balancePrompt(req BalanceRequest) string {
	var b strings.Builder
	b.WriteString("You are a balance assistant for a competitive card game in the style of ")
	b.WriteString("Yu-Gi-Oh or Hearthstone. Evaluate the card below and suggest appropriate ")
	b.WriteString("stats. Attack and HP normally fall between 0 and 10; cards with powerful ")
	b.WriteString("effects should get lower stats to compensate.\n\n")
	b.WriteString("Card:\n")
	fmt.Fprintf(&b, "- Name: %s\n", req.Name)
	fmt.Fprintf(&b, "- Type: %s\n", req.Type)
	fmt.Fprintf(&b, "- Attack: %d\n", req.Attack)
	fmt.Fprintf(&b, "- HP: %d\n", req.HP)
	fmt.Fprintf(&b, "- Effect: %s\n\n", req.Effect)
	b.WriteString("Respond with exactly one JSON object in this shape and nothing else:\n")
	b.WriteString(`{
  "suggested_attack": number,
  "suggested_hp": number,
  "reason": "short explanation of the suggestion"
}`)
	return b.String()
}

var consultInstructions = map[string]string{
	"improve": "Rewrite the effect text so it is clearer and more exciting while keeping the same mechanics.",
	"shorten": "Shorten the effect text as much as possible without losing any rules meaning.",
	"penalty": "Propose a fitting penalty clause that balances this effect, written in the same style.",
}

func consultPrompt(req ConsultRequest) (string, error) {
	instruction, ok := consultInstructions[req.PromptType]
	if !ok {
		return "", errors.NewField(errors.ErrCodeInvalidInput, "promptType",
			"promptType must be one of: %s", strings.Join(ConsultModes, ", "))
	}
	if strings.TrimSpace(req.Effect) == "" {
		return "", errors.NewField(errors.ErrCodeInvalidInput, "effect", "effect text is required")
	}

	var b strings.Builder
	b.WriteString("You are an editor for card game effect text. ")
	b.WriteString(instruction)
	b.WriteString(" Reply with the revised text only, no commentary.\n\n")
	fmt.Fprintf(&b, "Card: %s (%s)\n", req.Name, req.Type)
	fmt.Fprintf(&b, "Effect: %s\n", req.Effect)
	return b.String(), nil
}
