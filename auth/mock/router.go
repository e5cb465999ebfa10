package mock

import (
	"net/http"
)

// Handler routes HTTP requests to the appropriate mock endpoints.
type Handler struct {
	Service *AuthenticationService
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/authentication/sign-in":
		if h.Service.SignInHandler != nil {
			h.Service.SignInHandler(w, r)
		} else {
			h.Service.defaultSignInHandler(w, r)
		}
	case "/authentication/sign-up":
		if h.Service.SignUpHandler != nil {
			h.Service.SignUpHandler(w, r)
		} else {
			h.Service.defaultSignUpHandler(w, r)
		}
	case "/profile":
		if h.Service.ProfileHandler != nil {
			h.Service.ProfileHandler(w, r)
		} else {
			h.Service.defaultProfileHandler(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}
