package example

import (
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/drblury/decrouter/responder"
	"github.com/drblury/decrouter/router"
	"github.com/oklog/ulid/v2"
)

// User is the resource served by the users controller.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Users is an in-memory users controller.
type Users struct {
	resp *responder.Responder

	mu    sync.RWMutex
	users map[string]User
}

// NewUsers returns an empty Users controller.
func NewUsers(resp *responder.Responder) *Users {
	return &Users{resp: resp, users: make(map[string]User)}
}

// List returns every user, oldest first.
func (u *Users) List(w http.ResponseWriter, r *http.Request) {
	u.mu.RLock()
	out := make([]User, 0, len(u.users))
	for _, user := range u.users {
		out = append(out, user)
	}
	u.mu.RUnlock()

	// ULIDs sort by creation time.
	slices.SortFunc(out, func(a, b User) int { return strings.Compare(a.ID, b.ID) })
	u.resp.RespondWithJSON(w, r, http.StatusOK, out)
}

// Get returns the user named by the id path variable.
func (u *Users) Get(w http.ResponseWriter, r *http.Request) error {
	id := router.Param(r, "id")

	u.mu.RLock()
	user, ok := u.users[id]
	u.mu.RUnlock()
	if !ok {
		return responder.Errorf(http.StatusNotFound, "user %s not found", id)
	}

	u.resp.RespondWithJSON(w, r, http.StatusOK, user)
	return nil
}

// Create stores a new user. The name is required.
func (u *Users) Create(w http.ResponseWriter, r *http.Request) error {
	var body createUserRequest
	if !u.resp.ReadRequestBody(w, r, &body) {
		return nil
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		return responder.Errorf(http.StatusUnprocessableEntity, "name is required")
	}

	user := User{
		ID:        ulid.Make().String(),
		Name:      name,
		Email:     strings.TrimSpace(body.Email),
		CreatedAt: time.Now().UTC(),
	}

	u.mu.Lock()
	u.users[user.ID] = user
	u.mu.Unlock()

	w.Header().Set("Location", "/users/"+user.ID)
	u.resp.RespondWithJSON(w, r, http.StatusCreated, user)
	return nil
}

// Delete removes a user.
func (u *Users) Delete(w http.ResponseWriter, r *http.Request) error {
	id := router.Param(r, "id")

	u.mu.Lock()
	_, ok := u.users[id]
	delete(u.users, id)
	u.mu.Unlock()

	if !ok {
		return responder.Errorf(http.StatusNotFound, "user %s not found", id)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
