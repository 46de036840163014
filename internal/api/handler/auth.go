package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/kartgate/internal/api/apierr"
	"github.com/mcoot/kartgate/internal/api/request"
	"github.com/mcoot/kartgate/internal/api/response"
	"github.com/mcoot/kartgate/internal/services/auth"
)

// AuthHandler handles register and login submissions
type AuthHandler struct {
	controller *auth.Controller
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(controller *auth.Controller) *AuthHandler {
	return &AuthHandler{
		controller: controller,
	}
}

// Submit handles POST /api/v1/submit.
// Rejected credentials are still a 200: the outcome and message carry the result.
func (h *AuthHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	action, err := auth.ParseAction(req.Action)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	result := h.controller.Submit(action, req.Username, req.Password)
	response.JSON(w, http.StatusOK, response.SubmitResponseFromResult(result))
}

// Health handles GET /api/v1/health
func Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
