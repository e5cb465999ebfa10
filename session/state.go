package session

import "github.com/viant/authsession/auth"

// GuestUsername is reported when no profile is set
const GuestUsername = "Guest"

// User represents the signed-in user profile
type User struct {
	ID       auth.ID `json:"id" yaml:"id"`
	Role     string  `json:"role" yaml:"role"`
	Username string  `json:"username" yaml:"username"`
}

// State represents authentication state, empty values stand for absent ones
type State struct {
	ID    auth.ID
	Role  string
	Token string
	User  *User
}

// SetUser sets id, role and profile together, nil resets all three
func (s *State) SetUser(user *User) {
	if user == nil {
		s.ID = ""
		s.Role = ""
		s.User = nil
		return
	}
	profile := *user
	s.ID = profile.ID
	s.Role = profile.Role
	s.User = &profile
}

// SetToken replaces the bearer token
func (s *State) SetToken(token string) {
	s.Token = token
}

// Clear resets every field
func (s *State) Clear() {
	*s = State{}
}

func (s *State) clone() State {
	ret := *s
	if s.User != nil {
		profile := *s.User
		ret.User = &profile
	}
	return ret
}
