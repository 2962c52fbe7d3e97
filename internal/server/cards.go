package server

import (
	"net/http"

	"github.com/matzehuels/cardpress/pkg/card"
	"github.com/matzehuels/cardpress/pkg/render"
	"github.com/matzehuels/cardpress/pkg/storage"
)

type cardRequest struct {
	Name          string           `json:"name"`
	ImageURL      string           `json:"imageUrl"`
	FrontImageURL string           `json:"frontImageUrl"`
	BackImageURL  string           `json:"backImageUrl"`
	Width         float64          `json:"width"`
	Height        float64          `json:"height"`
	Order         int              `json:"order"`
	Description   string           `json:"description"`
	Attributes    *card.Attributes `json:"attributes"`
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	gameID, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	cards, err := s.store.CardsByGame(r.Context(), gameID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if cards == nil {
		cards = []card.Card{}
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	gameID, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req cardRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	c := card.Card{
		GameID:        gameID,
		Name:          req.Name,
		ImageURL:      req.ImageURL,
		FrontImageURL: req.FrontImageURL,
		BackImageURL:  req.BackImageURL,
		Width:         req.Width,
		Height:        req.Height,
		Order:         req.Order,
		Description:   req.Description,
		Attributes:    req.Attributes,
	}
	if err := c.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	created, err := s.store.CreateCard(r.Context(), c)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	c, err := s.store.Card(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var upd storage.CardUpdate
	if err := decodeJSON(r, &upd); err != nil {
		s.writeError(w, err)
		return
	}
	if err := validateCardUpdate(upd); err != nil {
		s.writeError(w, err)
		return
	}

	c, err := s.store.UpdateCard(r.Context(), id, upd)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// validateCardUpdate checks the fields present in a partial update before
// they reach storage, so invalid attributes never overwrite valid ones.
func validateCardUpdate(upd storage.CardUpdate) error {
	if upd.Name != nil {
		probe := card.Card{Name: *upd.Name}
		if err := probe.Validate(); err != nil {
			return err
		}
	}
	if upd.Attributes != nil {
		if err := upd.Attributes.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.DeleteCard(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	c, err := s.store.Card(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(render.Preview(*c))
}

func (s *Server) handlePrintSheet(w http.ResponseWriter, r *http.Request) {
	gameID, err := idParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g, err := s.store.Game(r.Context(), gameID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	cards, err := s.store.CardsByGame(r.Context(), gameID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(render.PrintSheet(*g, cards))
}
