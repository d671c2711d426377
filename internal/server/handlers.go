package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pthm/promptopt/internal/tools"
)

const maxBodyBytes = 1 << 20

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type toolInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Parameters  []tools.Param `json:"parameters"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Message: "Prompt Optimizer MCP Server is running",
	})
}

// handleListTools describes every registered tool
func (s *Server) handleListTools(w http.ResponseWriter, _ *http.Request) {
	list := make([]toolInfo, 0, len(s.registry.Tools()))
	for _, t := range s.registry.Tools() {
		list = append(list, toolInfo{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Params(),
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"tools": list})
}

// handleTool decodes the body as tool arguments and dispatches to name
func (s *Server) handleTool(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var args map[string]any
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&args); err != nil {
			s.fail(w, fmt.Errorf("%w: %v", ErrMalformedBody, err))
			return
		}
		if args == nil {
			s.fail(w, fmt.Errorf("%w: expected a JSON object", ErrMalformedBody))
			return
		}

		res, err := s.registry.Call(name, args)
		if err != nil {
			s.fail(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, res)
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("Request failed", "error", err)
	} else {
		s.log.Debug("Rejected request", "status", status, "error", err)
	}
	s.errorResponse(w, status, err.Error())
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("Error encoding JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
