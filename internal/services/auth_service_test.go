package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_Validation(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	_, err := svcs.Auth.Register(ctx, "", "secret", "secret")
	require.Error(t, err)
	assert.Equal(t, "Username and password are required.", err.Error())

	_, err = svcs.Auth.Register(ctx, "alice", "secret", "other")
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match.", err.Error())
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	_, err := svcs.Auth.Register(ctx, "alice", "secret", "secret")
	require.NoError(t, err)

	_, err = svcs.Auth.Register(ctx, "alice", "other", "other")
	require.Error(t, err)
	assert.Equal(t, "Username already exists.", err.Error())
}

func TestAuthService_Login(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	registered, err := svcs.Auth.Register(ctx, "alice", "secret", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", registered.PasswordHash, "password must be stored hashed")

	user, err := svcs.Auth.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svcs.Auth.Login(ctx, "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password.", err.Error())

	// Unknown users get the same message as bad passwords
	_, err = svcs.Auth.Login(ctx, "nobody", "secret")
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password.", err.Error())
}
