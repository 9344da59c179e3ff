package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/anton/hh-resume-extractor/internal/db"
	"github.com/anton/hh-resume-extractor/internal/types"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"db":     err.Error(),
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLinkResume extracts the resume at the given URL and stores the
// record for the chat user. The pipeline's failure taxonomy maps onto the
// response status so the front-end can show a specific message.
func (s *Server) handleLinkResume(w http.ResponseWriter, r *http.Request) {
	var req types.LinkResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := s.extractor.ExtractResume(r.Context(), req.URL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.store.SaveResume(r.Context(), req.TelegramID, req.URL, record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":     id.String(),
		"record": record,
	})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("telegram_id")
	telegramID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid telegram ID")
		return
	}

	client, err := s.store.GetResume(r.Context(), telegramID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if client == nil {
		s.errorResponse(w, http.StatusNotFound, "No resume stored for this user")
		return
	}

	s.jsonResponse(w, http.StatusOK, client)
}

// handleListClients returns recently updated clients, newest first.
func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	clients, err := s.store.ListClients(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if clients == nil {
		clients = []db.Client{}
	}
	s.jsonResponse(w, http.StatusOK, clients)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("telegram_id")
	telegramID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid telegram ID")
		return
	}

	if err := s.store.DeleteClient(r.Context(), telegramID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "No resume stored for this user")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleExtract runs extraction without persisting anything.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := s.extractor.ExtractResume(r.Context(), req.URL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}
