package auth

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/viant/authsession/transport"
)

// ID is an opaque user identifier, it decodes from either a JSON string or number.
// null, "" and 0 decode to the empty ID.
type ID string

func (i *ID) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	switch {
	case text == "null":
		*i = ""
		return nil
	case strings.HasPrefix(text, `"`):
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*i = ID(value)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("invalid id %s: expected string or number", text)
	}
	*i = ID(normalizeNumber(number.String()))
	return nil
}

// normalizeNumber returns the canonical integer text for integral numbers (1.0, 1e3),
// zero as empty, and any other valid number text unchanged
func normalizeNumber(text string) string {
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		if value == 0 {
			return ""
		}
		return strconv.FormatInt(value, 10)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	if value == 0 {
		return ""
	}
	if value == math.Trunc(value) && math.Abs(value) <= maxExactInteger {
		return strconv.FormatInt(int64(value), 10)
	}
	return text
}

// maxExactInteger is the largest integer a float64 holds without loss
const maxExactInteger = 1 << 53

// String returns id text
func (i ID) String() string {
	return string(i)
}

// SignInRequest represents sign-in credentials
type SignInRequest struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// SignUpRequest represents registration data
type SignUpRequest struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Role     string `json:"role,omitempty" yaml:"role,omitempty"`
}

// SignInResponse represents sign-in payload
type SignInResponse struct {
	ID       ID     `json:"id"`
	Role     string `json:"role"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Validate checks that the payload carries a credential
func (r *SignInResponse) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token, validation.Required),
	)
}

// SignInEnvelope is the full sign-in response: transport metadata plus decoded payload
type SignInEnvelope struct {
	*transport.Response
	Data *SignInResponse
}
