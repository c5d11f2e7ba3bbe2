package credentials

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// Endpoint paths the sealed payloads are addressed to.
const (
	LoginPath     = "/login"
	RegisterPath  = "/register"
	ListUsersPath = "/list"
)

// Paging defaults of GET /list.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// Registration is the body of POST /register.
type Registration struct {
	FullName string `json:"fullName" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	Phone    string `json:"phone" validate:"required,number,min=9,max=15"`
}

// Envelope describes a request for an external HTTP transport.
type Envelope struct {
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Header map[string]string `json:"header,omitempty"`
	Body   json.RawMessage   `json:"body,omitempty"`
}

func newEnvelope(path string, body any) (Envelope, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Method: http.MethodPost, Path: path, Body: raw}, nil
}

// BuildListUsersEnvelope describes GET /list for one page of users.
// Values below 1 fall back to DefaultPage and DefaultPageSize. The bearer
// token is sent only when non-empty; obtaining it is up to the caller.
func BuildListUsersEnvelope(page, pageSize int, token string) Envelope {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	env := Envelope{Method: http.MethodGet, Path: ListUsersPath + "?" + query.Encode()}
	if token != "" {
		env.Header = map[string]string{"Authorization": "Bearer " + token}
	}
	return env
}
