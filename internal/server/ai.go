package server

import (
	"net/http"

	"github.com/matzehuels/cardpress/pkg/ai"
	"github.com/matzehuels/cardpress/pkg/errors"
	"github.com/matzehuels/cardpress/pkg/upload"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if s.uploads == nil {
		s.writeError(w, errors.New(errors.ErrCodeUnsupported, "uploads are not configured"))
		return
	}

	// One extra MB of headroom for the multipart framing around a 10MB file.
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxFileSize+1<<20)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, errors.NewField(errors.ErrCodeInvalidUpload, "file", "no file in request"))
		return
	}
	defer file.Close()

	res, err := s.uploads.Save(header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSuggestBalance(w http.ResponseWriter, r *http.Request) {
	if s.ai == nil {
		s.writeError(w, errors.New(errors.ErrCodeUnsupported, "AI suggestions are not configured"))
		return
	}
	var req ai.BalanceRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	suggestion, err := s.ai.SuggestBalance(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}

func (s *Server) handleConsult(w http.ResponseWriter, r *http.Request) {
	if s.ai == nil {
		s.writeError(w, errors.New(errors.ErrCodeUnsupported, "AI suggestions are not configured"))
		return
	}
	var req ai.ConsultRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	reply, err := s.ai.Consult(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}
