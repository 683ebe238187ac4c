package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
	SSEToken(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService jwt.Service
	apiKeyHash string
}

func NewAuthHandler(jwtService jwt.Service, apiKeyHash string) AuthHandler {
	return &authHandlerImpl{
		jwtService: jwtService,
		apiKeyHash: apiKeyHash,
	}
}

type tokenRequest struct {
	ClientID string `json:"client_id"`
	APIKey   string `json:"api_key"`
	Team     string `json:"team,omitempty"`
}

func (req *tokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "client_id is required"})
	}
	if validator.IsEmpty(req.APIKey) {
		errs = append(errs, validator.ValidationError{Field: "api_key", Message: "api_key is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// Token exchanges an API key for a board access token.
func (h *authHandlerImpl) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.apiKeyHash), []byte(req.APIKey)); err != nil {
		response.HandleError(w, auth.ErrInvalidCredentials)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(req.ClientID, req.Team)
	if err != nil {
		response.InternalServerError(w, "Failed to generate token")
		return
	}

	response.Success(w, tokenResponse{Token: token, ExpiresAt: expiresAt})
}

type sseTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// SSEToken issues a short-lived token for the event stream. The caller is
// already authenticated; claims carry through to the stream token.
func (h *authHandlerImpl) SSEToken(w http.ResponseWriter, r *http.Request) {
	clientID, team := claimsFromContext(r)
	if clientID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(clientID, team)
	if err != nil {
		response.InternalServerError(w, "Failed to generate SSE token")
		return
	}

	response.Success(w, sseTokenResponse{Token: token, ExpiresIn: expiresIn})
}

// Revoke invalidates the presented access token. Subsequent requests with the
// same token are rejected by the auth middleware.
func (h *authHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)
	if token == "" {
		response.Unauthorized(w, "Missing token")
		return
	}

	h.jwtService.RevokeToken(token)
	response.SuccessWithMessage(w, "Token revoked", nil)
}
