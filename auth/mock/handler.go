package mock

import (
	"encoding/json"
	"net/http"
	"strings"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (*credentials, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}
	if creds.Username == "" || creds.Password == "" {
		http.Error(w, "Missing username or password", http.StatusBadRequest)
		return nil, false
	}
	return &creds, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// defaultSignInHandler handles /authentication/sign-in requests
func (s *AuthenticationService) defaultSignInHandler(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}
	acc, ok := s.lookup(creds.Username)
	if !ok || acc.Password != creds.Password {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}
	token, err := s.createJWT(acc)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       acc.ID,
		"role":     acc.Role,
		"token":    token,
		"username": acc.Username,
	})
}

// defaultSignUpHandler handles /authentication/sign-up requests
func (s *AuthenticationService) defaultSignUpHandler(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}
	if s.HasUser(creds.Username) {
		http.Error(w, "Username already taken", http.StatusConflict)
		return
	}
	id := s.AddUser(creds.Username, creds.Password, creds.Role)
	acc, _ := s.lookup(creds.Username)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       id,
		"username": acc.Username,
		"role":     acc.Role,
	})
}

// defaultProfileHandler serves the caller's profile and requires a valid bearer token
func (s *AuthenticationService) defaultProfileHandler(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		w.Header().Set("WWW-Authenticate", `Bearer realm="`+s.Issuer+`"`)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		http.Error(w, "Invalid authorization header", http.StatusBadRequest)
		return
	}
	claims, err := s.parseJWT(parts[1])
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       claims.Subject,
		"role":     claims.Role,
		"username": claims.Username,
	})
}
