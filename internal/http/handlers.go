package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kharcha/internal/log"
)

// envelope is the generic transport failure shape; tracker results carry
// their own success/message fields.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type addRequest struct {
	Message string `json:"message"`
}

type deleteRequest struct {
	Index *int `json:"index"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", log.FieldError, err)
	}
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	writeJSON(w, http.StatusMethodNotAllowed, envelope{
		Success: false,
		Message: "Method not allowed",
	})
}

// handleRoot serves the service banner and endpoint list.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: "Not found"})
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Personal Expense Tracker API is running.",
		"endpoints": map[string]string{
			"POST /add":           "Add a new transaction",
			"GET /summary":        "Get financial summary",
			"GET /transactions":   "Get all transactions",
			"DELETE /transaction": "Delete a transaction by index",
			"POST /reset":         "Reset all data",
		},
	})
}

// handleAdd accepts free text and routes it through extraction + append.
// An incomplete extraction is a 200 with success=false, matching the
// envelope contract; only transport problems are 4xx.
func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "Parse add request error", log.FieldError, err)
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "Field 'message' is required"})
		return
	}

	writeJSON(w, http.StatusOK, s.svc.Add(r.Context(), req.Message))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Summary(r.Context()))
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Transactions(r.Context()))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, http.MethodDelete)
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "Parse delete request error", log.FieldError, err)
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "Invalid request body"})
		return
	}
	if req.Index == nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "Field 'index' is required"})
		return
	}

	writeJSON(w, http.StatusOK, s.svc.Delete(r.Context(), *req.Index))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Reset(r.Context()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "expense-tracker-api",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
