// Package auth implements the portal's login flow.
//
// The portal deliberately auto-registers unknown emails on first login (a
// low-friction signup for citizens), so Login has three outcomes:
//   - Known email, matching password → identity returned
//   - Known email, wrong password → LoginFailedError
//   - Unknown email → new citizen account created, identity returned
//
// The identity triple (user id, role, display name) is what the client
// keeps in browser-local storage; the server treats it as opaque afterwards.
package auth

import (
	"nivaran/internal/complaint"
	apperrors "nivaran/internal/errors"
)

// RoleCitizen is the default role for auto-registered accounts.
const RoleCitizen = "citizen"

// Identity is the session triple handed to the client on login.
type Identity struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	Name   string `json:"name"`
}

// Service runs logins against the user store.
type Service struct {
	store *complaint.Store
}

// NewService creates an auth service over the given store.
func NewService(store *complaint.Store) *Service {
	return &Service{store: store}
}

// Login authenticates, or auto-registers, the given credentials.
//
// name is only used when a new account is created; callers may pass a
// default display name for returning users.
func (s *Service) Login(name, email, password string) (Identity, bool, error) {
	user, err := s.store.UserByEmail(email)
	if err == nil {
		if user.Password != password {
			return Identity{}, false, apperrors.NewLoginFailedError("invalid password")
		}
		return Identity{UserID: user.ID, Role: user.Role, Name: user.Name}, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return Identity{}, false, err
	}

	// Unknown email: create the account on the spot.
	if name == "" {
		name = "Citizen"
	}
	user, err = s.store.CreateUser(name, email, password, RoleCitizen)
	if err != nil {
		return Identity{}, false, err
	}
	return Identity{UserID: user.ID, Role: user.Role, Name: user.Name}, true, nil
}
