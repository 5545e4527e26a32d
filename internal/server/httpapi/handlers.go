package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gamefolio/internal/common"
	"github.com/dmitrijs2005/gamefolio/internal/server/models"
	"github.com/dmitrijs2005/gamefolio/internal/server/services"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps the sentinel taxonomy onto status codes:
// validation → 422, not found → 404, everything else → 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrValidationRejected):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		s.logger.Error(r.Context(), "storage failure", "err", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.content.ListGames(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleInsertGame(w http.ResponseWriter, r *http.Request) {
	var fields services.GameFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	game, err := s.content.InsertGame(r.Context(), &fields)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "game created", "id", game.ID, "title", game.Title)
	writeJSON(w, http.StatusCreated, game)
}

func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	var fields services.GameFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	id := r.PathValue("id")
	if err := s.content.UpdateGame(r.Context(), id, &fields); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "game updated", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.content.DeleteGame(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "game deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.content.GetProfile(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	if err := s.content.PutProfile(r.Context(), &p); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "profile updated")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeleteProfile(r.Context()); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "profile cleared")
	w.WriteHeader(http.StatusNoContent)
}

type presignResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (s *Server) handlePresignImage(w http.ResponseWriter, r *http.Request) {
	if !s.images.Enabled() {
		writeError(w, http.StatusNotImplemented, "object storage not configured")
		return
	}

	key, url, err := s.images.GetPresignedPutURL(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "presign failure", "err", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, presignResponse{Key: key, URL: url})
}
