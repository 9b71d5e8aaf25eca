package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/storage"
)

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemory(), logger.Nop())
	require.NoError(t, svc.SeedIfEmpty(ctx))

	t.Run("admin", func(t *testing.T) {
		user, err := svc.Login(ctx, "admin@nadanruchi.qa", "Nawaz@987")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("customer", func(t *testing.T) {
		user, err := svc.Login(ctx, "arun@yopmail.com", "Arun@987")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCustomer, user.Role)
		assert.Equal(t, "Arun", user.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "arun@yopmail.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@yopmail.com", "Arun@987")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_UserByEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemory(), logger.Nop())
	require.NoError(t, svc.SeedIfEmpty(ctx))

	user, ok := svc.UserByEmail(ctx, "shobin@yopmail.com")
	require.True(t, ok)
	assert.Equal(t, "Shobin", user.Name)

	_, ok = svc.UserByEmail(ctx, "nobody@yopmail.com")
	assert.False(t, ok)
}

func TestService_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	svc := NewService(store, logger.Nop())

	require.NoError(t, svc.SeedIfEmpty(ctx))
	require.NoError(t, svc.SeedIfEmpty(ctx), "idempotent")

	users := storage.NewCollection[domain.User](store, storage.KeyUsers, logger.Nop()).Load(ctx)
	assert.Len(t, users, 4)
	for _, u := range users {
		assert.NotEmpty(t, u.Email)
	}
}
