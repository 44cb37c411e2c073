package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/idilsaglam/wordlink/internal/game"
)

// Response is a standard API response
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status string `json:"status"`
}

// WordsResponse describes the pool sessions draw from
type WordsResponse struct {
	Source   string `json:"source"`
	Count    int    `json:"count"`
	Playable bool   `json:"playable"`
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{Status: "ok"})
}

// handleWords handles GET /api/words
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &WordsResponse{
		Source:   s.cfg.Pool.Source(),
		Count:    s.cfg.Pool.Len(),
		Playable: s.cfg.Pool.Len() > game.MinPoolSize,
	})
}

// handleIndex serves the game page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	file, err := s.webFS.Open("index.html")
	if err != nil {
		s.sendError(w, http.StatusNotFound, "NOT_FOUND", "Page not found")
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		s.sendError(w, http.StatusNotFound, "NOT_FOUND", "Page not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", stat.ModTime(), file.(io.ReadSeeker))
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(&Response{Success: true, Data: data}); err != nil {
		s.logger.Warn().Err(err).Msg("encode response")
	}
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error:   &ErrorInfo{Code: code, Message: message},
	}); err != nil {
		s.logger.Warn().Err(err).Msg("encode response")
	}
}
