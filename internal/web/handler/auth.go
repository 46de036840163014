package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/kartgate/internal/services/auth"
	"github.com/mcoot/kartgate/internal/services/game"
	"github.com/mcoot/kartgate/internal/web/templates/layout"
	"github.com/mcoot/kartgate/internal/web/templates/pages"
)

// MsgUnknownAction is shown when the form is posted without a known button
const MsgUnknownAction = "Unknown action."

// AuthHandler serves the login page and handles its submissions
type AuthHandler struct {
	controller *auth.Controller
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(controller *auth.Controller, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		controller: controller,
		logger:     logger,
	}
}

// LoginPage renders the empty login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pages.Login(pages.LoginData{}))
}

// Submit handles the login form. Register and Login share the form; the
// clicked button decides the action.
func (h *AuthHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, pages.Login(pages.LoginData{Message: "Invalid form data."}))
		return
	}

	// fields are taken as typed, no trimming
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	action, err := auth.ParseAction(r.PostFormValue("action"))
	if err != nil {
		h.render(w, r, http.StatusBadRequest, pages.Login(pages.LoginData{Username: username, Message: MsgUnknownAction}))
		return
	}

	result := h.controller.Submit(action, username, password)
	if !result.Authenticated() {
		h.render(w, r, http.StatusOK, pages.Login(pages.LoginData{Username: username, Message: result.Message}))
		return
	}

	// The login form is replaced by the game for this player
	h.render(w, r, http.StatusOK, pages.Game(pages.GameData{
		PageData:   layout.PageData{Title: game.WindowTitle(result.PlayerName)},
		PlayerName: result.PlayerName,
	}))
}

func (h *AuthHandler) render(w http.ResponseWriter, r *http.Request, status int, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := page.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", slog.String("error", err.Error()))
	}
}
