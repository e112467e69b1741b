package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HotelOS/entity"
)

type fakeRepository struct {
	byToken map[string]*entity.UserProfile
	lookups int
}

func (f *fakeRepository) GetUserByToken(_ context.Context, token string) (*entity.UserProfile, error) {
	f.lookups++
	return f.byToken[token], nil
}

func (f *fakeRepository) GetUser(_ context.Context, uid string) (*entity.UserProfile, error) {
	return nil, nil
}

func (f *fakeRepository) GetAllUsers(_ context.Context) ([]entity.UserProfile, error) {
	return nil, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthenticateByTokenCachesProfile(t *testing.T) {
	repo := &fakeRepository{byToken: map[string]*entity.UserProfile{
		"tok-1": {UID: "u1", DisplayName: "Claire"},
	}}
	s := NewAuthService(discard())
	s.SetRepository(repo)

	user, err := s.AuthenticateByToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UID)

	_, err = s.AuthenticateByToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lookups)
}

func TestAuthenticateByTokenUnknownToken(t *testing.T) {
	s := NewAuthService(discard())
	s.SetRepository(&fakeRepository{byToken: map[string]*entity.UserProfile{}})

	_, err := s.AuthenticateByToken(context.Background(), "nope")
	assert.Error(t, err)
}

func TestAuthenticateWithoutRepository(t *testing.T) {
	s := NewAuthService(discard())

	_, err := s.AuthenticateByToken(context.Background(), "tok-1")
	assert.Error(t, err)
}

func TestInvalidateTokenForcesRelookup(t *testing.T) {
	repo := &fakeRepository{byToken: map[string]*entity.UserProfile{
		"tok-1": {UID: "u1"},
	}}
	s := NewAuthService(discard())
	s.SetRepository(repo)

	_, err := s.AuthenticateByToken(context.Background(), "tok-1")
	require.NoError(t, err)

	s.InvalidateToken("tok-1")

	_, err = s.AuthenticateByToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lookups)
}
