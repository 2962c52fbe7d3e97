package server

import (
	"net/http"

	"github.com/matzehuels/cardpress/pkg/card"
	"github.com/matzehuels/cardpress/pkg/storage"
)

type gameRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.store.Games(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if games == nil {
		games = []card.Game{}
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	title, err := card.NormalizeTitle(req.Title)
	if err != nil {
		s.writeError(w, err)
		return
	}

	g, err := s.store.CreateGame(r.Context(), card.Game{
		Title:       title,
		Description: req.Description,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g, err := s.store.Game(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var upd storage.GameUpdate
	if err := decodeJSON(r, &upd); err != nil {
		s.writeError(w, err)
		return
	}
	if upd.Title != nil {
		title, err := card.NormalizeTitle(*upd.Title)
		if err != nil {
			s.writeError(w, err)
			return
		}
		upd.Title = &title
	}

	g, err := s.store.UpdateGame(r.Context(), id, upd)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.DeleteGame(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
