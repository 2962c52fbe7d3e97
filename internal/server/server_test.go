package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardpress/pkg/ai"
	"github.com/matzehuels/cardpress/pkg/card"
	"github.com/matzehuels/cardpress/pkg/storage"
	"github.com/matzehuels/cardpress/pkg/upload"
)

func newTestHandler(t *testing.T, aiClient *ai.Client) http.Handler {
	t.Helper()
	uploads, err := upload.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard)
	return New(storage.NewMemory(), uploads, aiClient, logger).Router()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func createGame(t *testing.T, h http.Handler, title string) card.Game {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/games", map[string]string{"title": title})
	if w.Code != http.StatusCreated {
		t.Fatalf("create game: status %d, body %s", w.Code, w.Body.String())
	}
	return decode[card.Game](t, w)
}

func TestGameLifecycle(t *testing.T) {
	h := newTestHandler(t, nil)

	g := createGame(t, h, "Monster Battle")
	if g.ID == 0 || g.Title != "Monster Battle" {
		t.Fatalf("created game = %+v", g)
	}

	w := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/games/%d", g.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get game: status %d", w.Code)
	}

	w = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/games/%d", g.ID),
		map[string]string{"description": "two player duels"})
	if w.Code != http.StatusOK {
		t.Fatalf("update game: status %d, body %s", w.Code, w.Body.String())
	}
	if got := decode[card.Game](t, w); got.Description != "two player duels" {
		t.Errorf("description = %q", got.Description)
	}

	w = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/games/%d", g.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete game: status %d", w.Code)
	}
	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/games/%d", g.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("deleted game fetch: status %d, want 404", w.Code)
	}
}

func TestCreateGameValidation(t *testing.T) {
	h := newTestHandler(t, nil)

	w := doJSON(t, h, http.MethodPost, "/api/games", map[string]string{"title": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank title: status %d, want 400", w.Code)
	}
	body := decode[errorBody](t, w)
	if body.Field != "title" {
		t.Errorf("field = %q, want title", body.Field)
	}
}

func TestDuplicateTitleConflict(t *testing.T) {
	h := newTestHandler(t, nil)
	g := createGame(t, h, "Party Night")

	w := doJSON(t, h, http.MethodPost, "/api/games", map[string]string{"title": "Party Night"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate title: status %d, want 409", w.Code)
	}
	body := decode[errorBody](t, w)
	if string(body.Code) != "DUPLICATE_TITLE" {
		t.Errorf("code = %q", body.Code)
	}
	if body.ExistingGameID != g.ID {
		t.Errorf("existingGameId = %d, want %d", body.ExistingGameID, g.ID)
	}

	// Only one game remains.
	games := decode[[]card.Game](t, doJSON(t, h, http.MethodGet, "/api/games", nil))
	if len(games) != 1 {
		t.Errorf("games = %d, want 1", len(games))
	}
}

func TestBattleCardFlow(t *testing.T) {
	h := newTestHandler(t, nil)
	g := createGame(t, h, "Monster Battle")

	w := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/games/%d/cards", g.ID), map[string]any{
		"name": "Cyber Dragon",
		"attributes": map[string]any{
			"kind": "battle", "type": "monster", "attack": 8, "hp": 5,
			"effect": "Destroy one card when summoned",
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create card: status %d, body %s", w.Code, w.Body.String())
	}
	c := decode[card.Card](t, w)
	if c.Attributes == nil || c.Attributes.Battle == nil {
		t.Fatalf("card attributes = %+v", c.Attributes)
	}
	if c.Attributes.Battle.Attack != 8 || c.Attributes.Battle.HP != 5 {
		t.Errorf("stats = %d/%d, want 8/5", c.Attributes.Battle.Attack, c.Attributes.Battle.HP)
	}
	if c.Width != card.DefaultWidthMM || c.Height != card.DefaultHeightMM {
		t.Errorf("size = %gx%g, want defaults", c.Width, c.Height)
	}

	cards := decode[[]card.Card](t, doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/games/%d/cards", g.ID), nil))
	if len(cards) != 1 || cards[0].Name != "Cyber Dragon" {
		t.Fatalf("cards = %+v", cards)
	}

	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/cards/%d/preview.svg", c.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("preview: status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("preview content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "ATK / 8") {
		t.Error("preview missing stats")
	}

	w = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/games/%d/print.svg", g.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("print sheet: status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Cyber Dragon") {
		t.Error("print sheet missing card")
	}
}

func TestOutOfRangeStatsRejected(t *testing.T) {
	h := newTestHandler(t, nil)
	g := createGame(t, h, "Monster Battle")

	for _, attack := range []int{11, -1} {
		w := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/games/%d/cards", g.ID), map[string]any{
			"name": "Overflow",
			"attributes": map[string]any{
				"kind": "battle", "type": "monster", "attack": attack, "hp": 5,
			},
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("attack %d: status %d, want 400", attack, w.Code)
		}
		body := decode[errorBody](t, w)
		if body.Field != "attack" {
			t.Errorf("attack %d: field = %q, want attack", attack, body.Field)
		}
	}

	// Nothing was stored, and in particular nothing clamped.
	cards := decode[[]card.Card](t, doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/games/%d/cards", g.ID), nil))
	if len(cards) != 0 {
		t.Errorf("cards = %d, want 0", len(cards))
	}
}

func TestPartyCardFooterUpdate(t *testing.T) {
	h := newTestHandler(t, nil)
	g := createGame(t, h, "Party Night")

	w := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/games/%d/cards", g.ID), map[string]any{
		"name": "Truth or Dare",
		"attributes": map[string]any{
			"kind": "party", "type": "action",
			"action": "Ask the player to your left", "playerCount": "3-6", "difficulty": "easy",
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create card: status %d, body %s", w.Code, w.Body.String())
	}
	c := decode[card.Card](t, w)

	// Default render carries the footer with its accent-tinted fallback.
	svg := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/cards/%d/preview.svg", c.ID), nil).Body.String()
	if !strings.Contains(svg, "3-6 / easy") {
		t.Error("default preview missing footer")
	}

	w = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/cards/%d", c.ID), map[string]any{
		"attributes": map[string]any{
			"kind": "party", "type": "action",
			"action": "Ask the player to your left", "playerCount": "3-6", "difficulty": "easy",
			"layout": map[string]any{"footer": map[string]any{"visible": false}},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update card: status %d, body %s", w.Code, w.Body.String())
	}

	svg = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/cards/%d/preview.svg", c.ID), nil).Body.String()
	if strings.Contains(svg, "3-6 / easy") {
		t.Error("footer still rendered after visible=false")
	}
}

func TestCardForMissingGame(t *testing.T) {
	h := newTestHandler(t, nil)
	w := doJSON(t, h, http.MethodPost, "/api/games/999/cards", map[string]any{"name": "Orphan"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	if body := decode[errorBody](t, w); string(body.Code) != "GAME_NOT_FOUND" {
		t.Errorf("code = %q", body.Code)
	}
}

func TestInvalidIDParam(t *testing.T) {
	h := newTestHandler(t, nil)
	for _, path := range []string{"/api/games/abc", "/api/cards/-4"} {
		w := doJSON(t, h, http.MethodGet, path, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", path, w.Code)
		}
	}
}

func TestUpload(t *testing.T) {
	h := newTestHandler(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "art.png")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("\x89PNG fake"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("upload: status %d, body %s", w.Code, w.Body.String())
	}
	res := decode[upload.Result](t, w)
	if !strings.HasPrefix(res.URL, "/uploads/") {
		t.Errorf("URL = %q", res.URL)
	}

	// Uploaded file is served back.
	w2 := doJSON(t, h, http.MethodGet, res.URL, nil)
	if w2.Code != http.StatusOK {
		t.Errorf("serve upload: status %d", w2.Code)
	}
}

func TestSuggestBalanceRoute(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{
				"type": "text",
				"text": `{"suggested_attack":6,"suggested_hp":4,"reason":"ok"}`,
			}},
		})
	}))
	defer upstream.Close()

	client := ai.NewClient(ai.Config{APIKey: "test", BaseURL: upstream.URL}, nil)
	h := newTestHandler(t, client)

	w := doJSON(t, h, http.MethodPost, "/api/balance/suggest", map[string]any{
		"name": "Cyber Dragon", "type": "monster", "attack": 9, "hp": 9,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	s := decode[ai.BalanceSuggestion](t, w)
	if s.SuggestedAttack != 6 || s.SuggestedHP != 4 {
		t.Errorf("suggestion = %+v", s)
	}
}

func TestSuggestBalanceUpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer upstream.Close()

	client := ai.NewClient(ai.Config{APIKey: "test", BaseURL: upstream.URL}, nil)
	h := newTestHandler(t, client)

	w := doJSON(t, h, http.MethodPost, "/api/balance/suggest", map[string]any{"name": "x"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status %d, want 502", w.Code)
	}
	if body := decode[errorBody](t, w); string(body.Code) != "UPSTREAM_ERROR" {
		t.Errorf("code = %q", body.Code)
	}
}

func TestConsultRoute(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "Draw a card."}},
		})
	}))
	defer upstream.Close()

	client := ai.NewClient(ai.Config{APIKey: "test", BaseURL: upstream.URL}, nil)
	h := newTestHandler(t, client)

	w := doJSON(t, h, http.MethodPost, "/api/consult", map[string]any{
		"promptType": "shorten", "effect": "You may draw one card from your deck",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	if reply := decode[ai.ConsultReply](t, w); reply.Reply != "Draw a card." {
		t.Errorf("reply = %q", reply.Reply)
	}
}

func TestAIRoutesWithoutClient(t *testing.T) {
	h := newTestHandler(t, nil)
	for _, path := range []string{"/api/balance/suggest", "/api/consult"} {
		w := doJSON(t, h, http.MethodPost, path, map[string]any{"name": "x", "promptType": "improve", "effect": "y"})
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: status %d, want 503", path, w.Code)
		}
	}
}
