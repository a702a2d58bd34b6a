package usecase

import (
	"context"
	"testing"

	"movie-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	auth, err := world.service.Auth.Register(ctx, &request.RegisterRequest{
		Username: "ramesh",
		Email:    "ramesh@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "ramesh", auth.Username)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := world.service.Auth.Register(ctx, &request.RegisterRequest{
			Username: "someone",
			Email:    "ramesh@example.com",
			Password: "secret123",
		})
		assert.ErrorContains(t, err, "email already registered")
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := world.service.Auth.Register(ctx, &request.RegisterRequest{
			Username: "ramesh",
			Email:    "other@example.com",
			Password: "secret123",
		})
		assert.ErrorContains(t, err, "username already taken")
	})

	t.Run("login with the right password", func(t *testing.T) {
		auth, err := world.service.Auth.Login(ctx, &request.LoginRequest{
			Email:    "ramesh@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, auth.Token)
	})

	t.Run("wrong password does not leak which part failed", func(t *testing.T) {
		_, err := world.service.Auth.Login(ctx, &request.LoginRequest{
			Email:    "ramesh@example.com",
			Password: "wrongpass",
		})
		assert.ErrorContains(t, err, "invalid credentials")
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, err := world.service.Auth.Login(ctx, &request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorContains(t, err, "invalid credentials")
	})
}

func TestLogout(t *testing.T) {
	world := newTestWorld()
	ctx := context.Background()

	auth, err := world.service.Auth.Register(ctx, &request.RegisterRequest{
		Username: "gita",
		Email:    "gita@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, world.service.Auth.Logout(ctx, auth.Token))

	session, err := world.repo.Session.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)

	t.Run("garbage token is rejected", func(t *testing.T) {
		assert.Error(t, world.service.Auth.Logout(ctx, "not-a-uuid"))
	})
}
