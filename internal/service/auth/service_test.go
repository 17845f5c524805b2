package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/auth"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/snapshot"
	"github.com/shiftdesk/shiftdesk-go/internal/repository/memory"
)

func newAuthService(t *testing.T) (auth.AuthService, *memory.SessionRepository, snapshot.Store) {
	t.Helper()

	store, err := snapshot.NewSQLiteStore(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte("employee123"), bcrypt.MinCost)
	require.NoError(t, err)
	users := memory.NewUserRepository([]user.User{
		{ID: "2", Name: "佐藤 美咲", Role: user.RoleEmployee, Email: "sato@example.com", PasswordHash: string(hash)},
	})

	sessions, err := memory.NewSessionRepository(context.Background(), store)
	require.NoError(t, err)

	return NewAuthService(users, sessions), sessions, store
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	svc, sessions, _ := newAuthService(t)

	u, err := svc.Login(ctx, auth.LoginRequest{Email: "sato@example.com", Password: "employee123"})
	require.NoError(t, err)
	assert.Equal(t, "2", u.ID)

	current, err := sessions.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "2", current.ID)
}

func TestLoginPersistsSession(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newAuthService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "sato@example.com", Password: "employee123"})
	require.NoError(t, err)

	payload, err := store.Get(ctx, snapshot.KeyCurrentUser)
	require.NoError(t, err)
	assert.NotNil(t, payload)
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, sessions, _ := newAuthService(t)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "sato@example.com", "nope"},
		{"unknown email", "nobody@example.com", "employee123"},
		{"case-variant email", "Sato@example.com", "employee123"},
		{"case-variant password", "sato@example.com", "Employee123"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Login(ctx, auth.LoginRequest{Email: c.email, Password: c.password})
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

			current, err := sessions.Current(ctx)
			require.NoError(t, err)
			assert.Nil(t, current)
		})
	}
}

func TestLoginValidatesRequest(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "", Password: ""})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, _, store := newAuthService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "sato@example.com", Password: "employee123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	payload, err := store.Get(ctx, snapshot.KeyCurrentUser)
	require.NoError(t, err)
	assert.Nil(t, payload)
}
