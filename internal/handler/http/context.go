package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// claimsFromContext pulls the client id and team out of the verified token.
func claimsFromContext(r *http.Request) (clientID string, team string) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", ""
	}
	clientID, _ = claims["client_id"].(string)
	team, _ = claims["team"].(string)
	return clientID, team
}

// boardSession reads the session id the UI sends with selection calls.
func boardSession(r *http.Request) string {
	return r.Header.Get("X-Board-Session")
}
