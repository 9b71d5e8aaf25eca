// Package auth is the hardcoded credential list the storefront ships with.
// Not real authentication: the HTTP layer trusts a header-based identity and
// this service only answers "does this email+password pair exist" and "what
// role does this email have".
package auth

import (
	"context"
	"errors"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/storage"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type credential struct {
	user     domain.User
	password string
}

var defaultCredentials = []credential{
	{user: domain.User{Email: "admin@nadanruchi.qa", Name: "Admin", Role: domain.RoleAdmin}, password: "Nawaz@987"},
	{user: domain.User{Email: "arun@yopmail.com", Name: "Arun", Role: domain.RoleCustomer}, password: "Arun@987"},
	{user: domain.User{Email: "shobin@yopmail.com", Name: "Shobin", Role: domain.RoleCustomer}, password: "Shobin@987"},
	{user: domain.User{Email: "nazriya@yopmail.com", Name: "Nazriya", Role: domain.RoleCustomer}, password: "Nazriya@987"},
}

type Service struct {
	users  storage.Collection[domain.User]
	logger logger.Logger
}

func NewService(store storage.Store, log logger.Logger) *Service {
	return &Service{
		users:  storage.NewCollection[domain.User](store, storage.KeyUsers, log),
		logger: log,
	}
}

// SeedIfEmpty persists the default user profiles (without passwords) on
// first run.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	exists, err := s.users.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	profiles := make([]domain.User, 0, len(defaultCredentials))
	for _, c := range defaultCredentials {
		profiles = append(profiles, c.user)
	}
	return s.users.Save(ctx, profiles)
}

// Login checks the static credential list.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	for _, c := range defaultCredentials {
		if c.user.Email == email && c.password == password {
			if profile, ok := s.UserByEmail(ctx, email); ok {
				return profile, nil
			}
			user := c.user
			return &user, nil
		}
	}
	s.logger.Debug("login_rejected", "Invalid credentials", "", map[string]interface{}{"email": email})
	return nil, ErrInvalidCredentials
}

// UserByEmail resolves an acting user from the persisted profiles.
func (s *Service) UserByEmail(ctx context.Context, email string) (*domain.User, bool) {
	for _, u := range s.users.Load(ctx) {
		if u.Email == email {
			return &u, true
		}
	}
	return nil, false
}
