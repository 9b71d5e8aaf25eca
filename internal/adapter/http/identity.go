package http

import (
	"net/http"

	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/interfaces"
)

// identity resolves the acting user from the X-User-Email header against the
// registered profiles. The storefront trusts the caller-supplied identity,
// matching the original client-side model; real authentication is an external
// collaborator.
type identity struct {
	auth interfaces.AuthService
}

func (i identity) currentUser(r *http.Request) (*domain.User, bool) {
	email := r.Header.Get("X-User-Email")
	if email == "" {
		return nil, false
	}
	return i.auth.UserByEmail(r.Context(), email)
}

// requireUser writes a 401 and returns false when no valid identity is
// present.
func (i identity) requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := i.currentUser(r)
	if !ok {
		respondError(w, "Please login first", http.StatusUnauthorized, nil)
		return nil, false
	}
	return user, true
}

// requireAdmin additionally enforces the admin role with a 403.
func (i identity) requireAdmin(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := i.requireUser(w, r)
	if !ok {
		return nil, false
	}
	if user.Role != domain.RoleAdmin {
		respondError(w, "Access denied. Admins only.", http.StatusForbidden, nil)
		return nil, false
	}
	return user, true
}
