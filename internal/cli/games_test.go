package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/cardpress/pkg/card"
)

func TestFetchGames(t *testing.T) {
	want := []card.Game{
		{ID: 2, Title: "Party Night", UpdatedAt: time.Now()},
		{ID: 1, Title: "Monster Battle", UpdatedAt: time.Now().Add(-time.Hour)},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/games" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(want)
	}))
	defer server.Close()

	games, err := fetchGames(server.URL)
	if err != nil {
		t.Fatalf("fetchGames error: %v", err)
	}
	if len(games) != 2 || games[0].Title != "Party Night" {
		t.Errorf("games = %+v", games)
	}
}

func TestFetchGamesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := fetchGames(server.URL); err == nil {
		t.Error("expected error for 500 response")
	}
}
