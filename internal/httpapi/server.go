// Package httpapi exposes the facade as a small JSON API. Shapes follow the
// reference application's routes: validation failures are 400 with the
// error list, collaborator failures never surface as HTTP errors.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/outreachx/outreachx/internal/app"
	"github.com/outreachx/outreachx/internal/profile"
	"github.com/outreachx/outreachx/internal/store"
)

type Server struct {
	App      *app.App
	Messages store.Store
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/followup", s.handleFollowUp)
	mux.HandleFunc("POST /api/refine", s.handleRefine)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("GET /api/messages", s.handleListMessages)
	mux.HandleFunc("POST /api/messages", s.handleSaveMessage)
	mux.HandleFunc("GET /api/messages/{id}", s.handleGetMessage)
	mux.HandleFunc("DELETE /api/messages/{id}", s.handleDeleteMessage)
	return mux
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req profile.Request
	if !decode(w, r, &req) {
		return
	}
	res := s.App.Generate(r.Context(), req)
	if !res.Success {
		writeJSON(w, http.StatusBadRequest, res)
		return
	}
	s.save(profile.Message{
		ID:             res.MessageID,
		Text:           res.Message,
		GenerationType: res.GenerationType,
		Warnings:       res.Warnings,
	})
	writeJSON(w, http.StatusOK, res)
}

type followUpRequest struct {
	Request         profile.Request `json:"request"`
	PreviousMessage string          `json:"previousMessage"`
}

func (s *Server) handleFollowUp(w http.ResponseWriter, r *http.Request) {
	var req followUpRequest
	if !decode(w, r, &req) {
		return
	}
	res := s.App.GenerateFollowUp(r.Context(), req.Request, req.PreviousMessage)
	s.save(profile.Message{ID: res.MessageID, Text: res.Message, GenerationType: res.GenerationType})
	writeJSON(w, http.StatusOK, res)
}

type refineRequest struct {
	Message        string          `json:"message"`
	RefinementType string          `json:"refinementType"`
	Request        profile.Request `json:"request"`
}

func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	var req refineRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.App.Refine(r.Context(), req.Message, req.RefinementType, req.Request))
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req profile.Request
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.App.Validate(req))
}

func (s *Server) handleListMessages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Messages.List())
}

// handleSaveMessage stores a caller-supplied message, e.g. one edited by
// hand after generation. Messages without an id get one assigned.
func (s *Server) handleSaveMessage(w http.ResponseWriter, r *http.Request) {
	var msg profile.Message
	if !decode(w, r, &msg) {
		return
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	s.save(msg)
	writeJSON(w, http.StatusCreated, map[string]string{"id": msg.ID})
}

func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.Messages.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "message not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	s.Messages.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) save(msg profile.Message) {
	if s.Messages != nil {
		s.Messages.Put(store.Record{Message: msg})
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("write response failed")
	}
}
