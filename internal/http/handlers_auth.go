package httpx

import (
	"net/http"
	"time"

	"github.com/hireground/catalog-api/internal/service"
)

// AuthHandlers provides HTTP handlers for token issuance.
type AuthHandlers struct {
	Svc *service.AuthService
}

// tokenRequest is the wire shape of a token issuance request.
type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse follows the bearer token response convention.
type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IssueToken handles HTTP requests to exchange credentials for a bearer token.
func (h *AuthHandlers) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	res, err := h.Svc.IssueToken(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: res.Token,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt,
	})
}
