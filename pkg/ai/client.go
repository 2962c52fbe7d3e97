package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/cardpress/pkg/cache"
	"github.com/matzehuels/cardpress/pkg/card"
	"github.com/matzehuels/cardpress/pkg/errors"
	"github.com/matzehuels/cardpress/pkg/httputil"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 1024
	defaultCacheTTL  = 24 * time.Hour

	apiVersion  = "2023-06-01"
	httpTimeout = 60 * time.Second
)

// Config holds connection settings for the upstream messages endpoint.
// Zero values fall back to the public Anthropic API with the default model.
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	CacheTTL time.Duration
}

// Client calls the messages endpoint for balance suggestions and effect
// consultations. Create one with [NewClient] and share it across requests.
type Client struct {
	http  *http.Client
	cache cache.Cache
	cfg   Config
}

// NewClient creates a Client with the given configuration. Pass nil for c
// to disable caching.
func NewClient(cfg Config, c cache.Cache) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		http:  &http.Client{Timeout: httpTimeout},
		cache: c,
		cfg:   cfg,
	}
}

// BalanceRequest describes the battle card to evaluate.
type BalanceRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Attack int    `json:"attack"`
	HP     int    `json:"hp"`
	Effect string `json:"effect"`
}

// BalanceSuggestion is the structured verdict extracted from the model reply.
// Suggested stats are clamped into the valid stat range so they can always
// be applied to the card as-is.
type BalanceSuggestion struct {
	SuggestedAttack int    `json:"suggested_attack"`
	SuggestedHP     int    `json:"suggested_hp"`
	Reason          string `json:"reason"`
}

// ConsultModes lists the supported effect-consultation prompt types.
var ConsultModes = []string{"improve", "shorten", "penalty"}

// ConsultRequest asks for a rewrite of a card's effect text.
type ConsultRequest struct {
	PromptType string `json:"promptType"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Effect     string `json:"effect"`
}

// ConsultReply carries the model's free-text answer.
type ConsultReply struct {
	Reply string `json:"reply"`
}

// SuggestBalance evaluates a battle card's stats against its effect and
// returns recommended attack/HP values with a short reason.
func (c *Client) SuggestBalance(ctx context.Context, req BalanceRequest) (*BalanceSuggestion, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewField(errors.ErrCodeInvalidInput, "name", "card name is required")
	}

	key := cache.Key("suggest", c.cfg.Model, req)
	text, err := c.complete(ctx, key, balancePrompt(req))
	if err != nil {
		return nil, err
	}

	raw, ok := extractJSON(text)
	if !ok {
		return nil, errors.New(errors.ErrCodeUpstream, "no JSON object in balance reply")
	}
	var s BalanceSuggestion
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUpstream, err, "malformed balance reply")
	}
	s.SuggestedAttack = clampStat(s.SuggestedAttack)
	s.SuggestedHP = clampStat(s.SuggestedHP)
	return &s, nil
}

// Consult rewrites the card's effect text according to req.PromptType.
func (c *Client) Consult(ctx context.Context, req ConsultRequest) (*ConsultReply, error) {
	prompt, err := consultPrompt(req)
	if err != nil {
		return nil, err
	}

	key := cache.Key("consult", c.cfg.Model, req)
	text, err := c.complete(ctx, key, prompt)
	if err != nil {
		return nil, err
	}
	return &ConsultReply{Reply: strings.TrimSpace(text)}, nil
}

// messages endpoint wire types.
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// complete sends prompt to the messages endpoint and returns the reply text,
// consulting the cache first and retrying transient failures.
func (c *Client) complete(ctx context.Context, key, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.New(errors.ErrCodeUnsupported, "AI suggestions are not configured")
	}

	if data, hit, _ := c.cache.Get(ctx, key); hit {
		return string(data), nil
	}

	var text string
	err := httputil.RetryWithBackoff(ctx, func() error {
		reply, err := c.doRequest(ctx, prompt)
		if err != nil {
			return err
		}
		text = reply
		return nil
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeUpstream, err, "AI request failed")
	}

	_ = c.cache.Set(ctx, key, []byte(text), c.cfg.CacheTTL)
	return text, nil
}

func (c *Client) doRequest(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: defaultMaxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &httputil.RetryableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("messages endpoint returned status %d", resp.StatusCode)
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return "", &httputil.RetryableError{Err: err}
		}
		return "", err
	}

	var mr messagesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&mr); err != nil {
		return "", err
	}
	for _, block := range mr.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text block in reply")
}

// extractJSON returns the first balanced JSON object embedded in s. Models
// often wrap the object in prose or code fences, so the scanner tracks
// string literals to keep braces inside them from confusing the depth count.
func extractJSON(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func clampStat(v int) int {
	return min(max(v, card.MinStat), card.MaxStat)
}
