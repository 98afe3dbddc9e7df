package handler

import (
	"time"

	"github.com/userhub/account-api/internal/core/domain"
)

// --- Request / Response types ---

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type accountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// dataResponse wraps an account for register: {"data": {...}}.
type dataResponse struct {
	Data accountResponse `json:"data"`
}

// loginResponse reproduces the login envelope, access token included exactly
// once.
type loginResponse struct {
	StatusCode  int             `json:"status_code"`
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	Data        accountResponse `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}
