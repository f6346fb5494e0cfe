package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cleverpad/internal/auth"
	"cleverpad/internal/notes"
	"cleverpad/internal/store"

	"go.uber.org/zap"
)

// Handlers bundles the HTTP endpoints with their dependencies.
type Handlers struct {
	auth   *auth.Service
	notes  *notes.Service
	logger *zap.Logger
}

func NewHandlers(authSvc *auth.Service, notesSvc *notes.Service, logger *zap.Logger) *Handlers {
	return &Handlers{auth: authSvc, notes: notesSvc, logger: logger}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type guestResponse struct {
	SessionID string `json:"session_id"`
	TokenType string `json:"token_type"`
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handlers) RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the CleverPad API!"})
}

func (h *Handlers) SignupHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	account, err := h.auth.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handlers) GuestHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, guestResponse{SessionID: h.auth.GuestLogin(), TokenType: "guest"})
}

func (h *Handlers) MeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	account, err := h.auth.Whoami(auth.IdentityFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *Handlers) NotesHandler(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		if r.URL.Query().Get("id") != "" {
			noteID, err := noteIDParam(r)
			if err != nil {
				http.Error(w, "Invalid note ID", http.StatusBadRequest)
				return
			}
			note, err := h.notes.Get(identity, noteID)
			if err != nil {
				h.writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, note)
			return
		}
		list, err := h.notes.List(identity)
		if err != nil {
			h.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)

	case http.MethodPost:
		var req noteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		note, err := h.notes.Create(identity, req.Title, req.Content)
		if err != nil {
			h.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, note)

	case http.MethodPut:
		noteID, err := noteIDParam(r)
		if err != nil {
			http.Error(w, "Invalid note ID", http.StatusBadRequest)
			return
		}
		var req noteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		note, err := h.notes.Update(identity, noteID, req.Title, req.Content)
		if err != nil {
			h.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, note)

	case http.MethodDelete:
		noteID, err := noteIDParam(r)
		if err != nil {
			http.Error(w, "Invalid note ID", http.StatusBadRequest)
			return
		}
		if err := h.notes.Delete(identity, noteID); err != nil {
			h.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func noteIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		http.Error(w, "E-mail already registered", http.StatusBadRequest)
	case errors.Is(err, auth.ErrInvalidCredentials):
		http.Error(w, "Incorrect e-mail or password", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrUnauthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		h.logger.Error("request failed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
